package item_test

import (
	"testing"

	"github.com/KirkDiggler/text-rpg/internal/domain/item"
	"github.com/stretchr/testify/assert"
)

func TestWeapon_Use(t *testing.T) {
	w := &item.Weapon{Name: "Dagger", Damage: item.Range{Min: 1, Max: 4}, Durability: 2}

	usable, broke := w.Use()
	assert.True(t, usable)
	assert.False(t, broke)
	assert.Equal(t, 1, w.Durability)

	// The swing that reaches zero breaks the weapon and deals nothing
	usable, broke = w.Use()
	assert.False(t, usable)
	assert.True(t, broke)
	assert.True(t, w.IsBroken())

	usable, broke = w.Use()
	assert.False(t, usable)
	assert.False(t, broke)
	assert.Equal(t, 0, w.Durability, "durability never goes negative")
}

func TestWeapon_UnbreakableNeverWears(t *testing.T) {
	w := item.NewWeapon("Sword", 5, 15)

	for i := 0; i < 100; i++ {
		usable, broke := w.Use()
		assert.True(t, usable)
		assert.False(t, broke)
	}
	assert.Equal(t, item.UnlimitedDurability, w.Durability)
}

func TestWeapon_CloneIsIndependent(t *testing.T) {
	original := &item.Weapon{
		Name:           "Flamebrand",
		Damage:         item.Range{Min: 10, Max: 20},
		Durability:     5,
		SpecialEffects: []string{"fire"},
	}

	clone := original.Clone().(*item.Weapon)
	clone.Durability = 1
	clone.SpecialEffects[0] = "ice"

	assert.Equal(t, 5, original.Durability)
	assert.True(t, original.HasEffect("fire"))
	assert.True(t, original.Equal(&item.Weapon{
		Name:           "Flamebrand",
		Damage:         item.Range{Min: 10, Max: 20},
		Durability:     5,
		SpecialEffects: []string{"fire"},
	}))
}

func TestNameMatches(t *testing.T) {
	assert.True(t, item.NameMatches(item.NewWeapon("Sword", 5, 15), "  sWORD "))
	assert.False(t, item.NameMatches(item.NewWeapon("Sword", 5, 15), "Axe"))
	assert.False(t, item.NameMatches(nil, "Sword"))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "Sword (5 - 15 damage)", item.NewWeapon("Sword", 5, 15).String())
	assert.Equal(t, "Gold x12", item.NewGold(12).String())
	assert.Equal(t, "Health Potion (heals 15 - 30)", item.NewHealthPotion().String())
	assert.True(t, item.IsHealthPotion(item.NewHealthPotion()))
	assert.False(t, item.IsHealthPotion(item.NewGeneric("Health Potion")))
}
