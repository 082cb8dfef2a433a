package character

import (
	"github.com/KirkDiggler/text-rpg/internal/domain/item"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
)

const noWeapon = -1

// inventory is an ordered list of items in discovery order plus the index of
// the equipped weapon. The equipped slot aliases an inventory entry, it never
// holds a copy.
type inventory struct {
	items    []item.Item
	equipped int
}

func newInventory() inventory {
	return inventory{equipped: noWeapon}
}

// Inventory returns the items in discovery order.
// The slice is a copy; the items are shared with the character.
func (c *Character) Inventory() []item.Item {
	out := make([]item.Item, len(c.inventory.items))
	copy(out, c.inventory.items)
	return out
}

// InventorySize returns the number of inventory entries
func (c *Character) InventorySize() int {
	return len(c.inventory.items)
}

// ItemAt returns the inventory entry at index
func (c *Character) ItemAt(index int) (item.Item, error) {
	if index < 0 || index >= len(c.inventory.items) {
		return nil, dnderr.ItemNotFoundf("no item at position %d", index+1).
			WithMeta("index", index)
	}
	return c.inventory.items[index], nil
}

// AddItem appends an item. A nil item means "no loot" and adds nothing.
func (c *Character) AddItem(it item.Item) bool {
	if isNil(it) {
		return false
	}
	c.inventory.items = append(c.inventory.items, it)
	return true
}

// RemoveAt removes the entry at index and keeps the equipped slot pointing
// at the same weapon. Removing the equipped weapon unequips it.
func (c *Character) RemoveAt(index int) (item.Item, error) {
	removed, err := c.ItemAt(index)
	if err != nil {
		return nil, err
	}

	items := c.inventory.items
	c.inventory.items = append(items[:index:index], items[index+1:]...)

	switch {
	case c.inventory.equipped == index:
		c.inventory.equipped = noWeapon
	case c.inventory.equipped > index:
		c.inventory.equipped--
	}
	return removed, nil
}

// TakeFirst removes and returns the first entry matching the predicate
func (c *Character) TakeFirst(match func(item.Item) bool) (item.Item, bool) {
	for i, it := range c.inventory.items {
		if match(it) {
			removed, err := c.RemoveAt(i)
			return removed, err == nil
		}
	}
	return nil, false
}

// EquippedWeapon returns the equipped weapon or nil
func (c *Character) EquippedWeapon() *item.Weapon {
	if c.inventory.equipped == noWeapon {
		return nil
	}
	return c.inventory.items[c.inventory.equipped].(*item.Weapon)
}

// EquippedIndex returns the inventory index of the equipped weapon
func (c *Character) EquippedIndex() (int, bool) {
	return c.inventory.equipped, c.inventory.equipped != noWeapon
}

// Equip equips the given inventory entry, matched by identity
func (c *Character) Equip(it item.Item) error {
	if _, ok := it.(*item.Weapon); !ok || isNil(it) {
		return notEquippable(it)
	}

	for i, candidate := range c.inventory.items {
		if candidate == it {
			c.inventory.equipped = i
			return nil
		}
	}
	return dnderr.ItemNotFoundf("%s is not in the inventory", it.GetName()).
		WithMeta("item", it.GetName())
}

// EquipByName equips the first weapon whose name matches case-insensitively
func (c *Character) EquipByName(name string) (*item.Weapon, error) {
	var other item.Item
	for i, it := range c.inventory.items {
		if !item.NameMatches(it, name) {
			continue
		}
		if w, ok := it.(*item.Weapon); ok {
			c.inventory.equipped = i
			return w, nil
		}
		if other == nil {
			other = it
		}
	}

	if other != nil {
		return nil, notEquippable(other)
	}
	return nil, dnderr.ItemNotFoundf("weapon %q not found in inventory", name).
		WithMeta("item", name)
}

// EquipAt equips the weapon at the given inventory index
func (c *Character) EquipAt(index int) (*item.Weapon, error) {
	it, err := c.ItemAt(index)
	if err != nil {
		return nil, err
	}
	w, ok := it.(*item.Weapon)
	if !ok {
		return nil, notEquippable(it)
	}
	c.inventory.equipped = index
	return w, nil
}

// Unequip empties the weapon slot; the weapon stays in the inventory
func (c *Character) Unequip() {
	c.inventory.equipped = noWeapon
}

func notEquippable(it item.Item) error {
	name := "<nil>"
	if !isNil(it) {
		name = it.GetName()
	}
	return dnderr.ItemNotEquippablef("%s is not a weapon", name).
		WithMeta("item", name)
}

// isNil also catches typed nil pointers wrapped in the interface
func isNil(it item.Item) bool {
	switch v := it.(type) {
	case nil:
		return true
	case *item.Weapon:
		return v == nil
	case *item.Consumable:
		return v == nil
	case *item.Currency:
		return v == nil
	case *item.Generic:
		return v == nil
	}
	return false
}
