package testutils

import (
	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/domain/item"
)

// CreateTestWeapon creates a breakable weapon with a critical chance
func CreateTestWeapon(name string, minDamage, maxDamage, durability int) *item.Weapon {
	return &item.Weapon{
		Name:           name,
		Damage:         item.NewRange(minDamage, maxDamage),
		Durability:     durability,
		CriticalChance: 0.1,
	}
}

// CreateTestCharacter creates a fresh character carrying one of every item variant
func CreateTestCharacter(name string) *character.Character {
	char := character.New(name)
	char.AddItem(item.NewGold(10))
	char.AddItem(item.NewHealthPotion())
	char.AddItem(item.NewGeneric("Torch"))
	char.AddItem(CreateTestWeapon("Sword", 5, 15, 50))
	return char
}

// CreateEquippedCharacter creates a test character wielding its sword
func CreateEquippedCharacter(name string) *character.Character {
	char := CreateTestCharacter(name)
	if _, err := char.EquipByName("Sword"); err != nil {
		panic(err)
	}
	return char
}

// CreateLevelReadyCharacter creates a character one victory away from leveling
func CreateLevelReadyCharacter(name string) *character.Character {
	char := character.New(name)
	char.Exp = 95
	return char
}
