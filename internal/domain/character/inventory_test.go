package character_test

import (
	"testing"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/domain/item"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem_NilIsNoLoot(t *testing.T) {
	c := character.New("Aria")
	assert.False(t, c.AddItem(nil))
	assert.Zero(t, c.InventorySize())
}

func TestEquip_AliasesInventoryEntry(t *testing.T) {
	c := character.New("Aria")
	sword := &item.Weapon{Name: "Sword", Damage: item.Range{Min: 5, Max: 15}, Durability: 3}
	c.AddItem(sword)

	require.NoError(t, c.Equip(sword))

	c.EquippedWeapon().Durability--
	inv := c.Inventory()
	assert.Equal(t, 2, inv[0].(*item.Weapon).Durability, "durability loss is visible through the inventory")
	assert.Same(t, sword, c.EquippedWeapon())
}

func TestEquip_Failures(t *testing.T) {
	c := character.New("Aria")
	potion := item.NewHealthPotion()
	c.AddItem(potion)
	before := c.Snapshot()

	err := c.Equip(potion)
	assert.True(t, dnderr.IsItemNotEquippable(err))

	err = c.Equip(item.NewWeapon("Sword", 5, 15))
	assert.True(t, dnderr.IsItemNotFound(err), "an equal weapon that is not the inventory entry is absent")

	assert.Equal(t, before, c.Snapshot())
}

func TestEquip_TypedNilWeapon(t *testing.T) {
	c := character.New("Aria")
	var missing *item.Weapon

	assert.False(t, c.AddItem(missing))

	var err error
	assert.NotPanics(t, func() { err = c.Equip(missing) })
	assert.True(t, dnderr.IsItemNotEquippable(err))
	assert.Nil(t, c.EquippedWeapon())
}

func TestEquipByName(t *testing.T) {
	c := character.New("Aria")
	c.AddItem(item.NewGeneric("Torch"))
	axe := item.NewWeapon("Axe", 6, 16)
	c.AddItem(axe)

	w, err := c.EquipByName("aXe")
	require.NoError(t, err)
	assert.Same(t, axe, w)

	_, err = c.EquipByName("torch")
	assert.True(t, dnderr.IsItemNotEquippable(err))
	assert.Same(t, axe, c.EquippedWeapon(), "failed equip keeps the previous weapon")

	_, err = c.EquipByName("Bow")
	assert.True(t, dnderr.IsItemNotFound(err))
}

func TestEquipAt(t *testing.T) {
	c := character.New("Aria")
	c.AddItem(item.NewGold(3))
	c.AddItem(item.NewWeapon("Bow", 4, 14))

	_, err := c.EquipAt(0)
	assert.True(t, dnderr.IsItemNotEquippable(err))
	_, err = c.EquipAt(5)
	assert.True(t, dnderr.IsItemNotFound(err))

	w, err := c.EquipAt(1)
	require.NoError(t, err)
	assert.Equal(t, "Bow", w.Name)
	idx, ok := c.EquippedIndex()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestRemoveAt_KeepsEquippedReference(t *testing.T) {
	c := character.New("Aria")
	c.AddItem(item.NewHealthPotion())
	sword := item.NewWeapon("Sword", 5, 15)
	c.AddItem(sword)
	c.AddItem(item.NewHealthPotion())
	require.NoError(t, c.Equip(sword))

	taken, ok := c.TakeFirst(item.IsHealthPotion)
	require.True(t, ok)
	assert.True(t, item.IsHealthPotion(taken))

	assert.Same(t, sword, c.EquippedWeapon())
	idx, _ := c.EquippedIndex()
	assert.Equal(t, 0, idx)

	_, err := c.RemoveAt(0)
	require.NoError(t, err)
	assert.Nil(t, c.EquippedWeapon(), "removing the equipped weapon empties the slot")
	assert.Equal(t, 1, c.InventorySize())
}

func TestInventory_ReturnsCopy(t *testing.T) {
	c := character.New("Aria")
	c.AddItem(item.NewGeneric("Torch"))

	inv := c.Inventory()
	inv[0] = item.NewGeneric("Replaced")

	first, err := c.ItemAt(0)
	require.NoError(t, err)
	assert.Equal(t, "Torch", first.GetName())
}

func TestUnequip(t *testing.T) {
	c := character.New("Aria")
	sword := item.NewWeapon("Sword", 5, 15)
	c.AddItem(sword)
	require.NoError(t, c.Equip(sword))

	c.Unequip()

	assert.Nil(t, c.EquippedWeapon())
	assert.Equal(t, 1, c.InventorySize())
}
