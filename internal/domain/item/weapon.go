package item

import (
	"fmt"
	"slices"
)

// UnlimitedDurability marks a weapon that never wears out.
// Weapons saved before durability existed load with this value.
const UnlimitedDurability = -1

// Weapon is an equippable item that deals damage in combat
type Weapon struct {
	Name           string
	Damage         Range
	Durability     int
	CriticalChance float64 // probability in [0, 1]
	SpecialEffects []string
}

// NewWeapon creates an unbreakable weapon with no critical chance
func NewWeapon(name string, minDamage, maxDamage int) *Weapon {
	return &Weapon{
		Name:       name,
		Damage:     NewRange(minDamage, maxDamage),
		Durability: UnlimitedDurability,
	}
}

func (w *Weapon) GetItemType() Type { return TypeWeapon }
func (w *Weapon) GetName() string   { return w.Name }
func (w *Weapon) sealed()           {}

func (w *Weapon) String() string {
	return fmt.Sprintf("%s (%d - %d damage)", w.Name, w.Damage.Min, w.Damage.Max)
}

// Clone implements Item
func (w *Weapon) Clone() Item {
	c := *w
	c.SpecialEffects = slices.Clone(w.SpecialEffects)
	return &c
}

// IsBreakable reports whether the weapon loses durability on use
func (w *Weapon) IsBreakable() bool {
	return w.Durability >= 0
}

// IsBroken reports whether the weapon has no uses left.
// A broken weapon stays in the inventory but deals no damage.
func (w *Weapon) IsBroken() bool {
	return w.Durability == 0
}

// Use consumes one use of the weapon.
// usable is false when the weapon was already broken or broke on this swing;
// justBroke is true only on the swing that took durability to zero.
func (w *Weapon) Use() (usable, justBroke bool) {
	switch {
	case !w.IsBreakable():
		return true, false
	case w.IsBroken():
		return false, false
	}

	w.Durability--
	if w.Durability == 0 {
		return false, true
	}
	return true, false
}

// HasEffect reports whether the weapon carries a special effect tag
func (w *Weapon) HasEffect(tag string) bool {
	return slices.Contains(w.SpecialEffects, tag)
}

// Equal compares every persisted field of two weapons
func (w *Weapon) Equal(other *Weapon) bool {
	if w == nil || other == nil {
		return w == other
	}
	return w.Name == other.Name &&
		w.Damage == other.Damage &&
		w.Durability == other.Durability &&
		w.CriticalChance == other.CriticalChance &&
		slices.Equal(w.SpecialEffects, other.SpecialEffects)
}
