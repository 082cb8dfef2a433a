package character

import (
	"fmt"

	"github.com/KirkDiggler/text-rpg/internal/domain/item"
)

// ItemView describes one inventory entry for display
type ItemView struct {
	Index       int
	Name        string
	Type        item.Type
	Description string
	Equipped    bool
	Broken      bool
}

// Snapshot is a read-only copy of the character for the shell to render
type Snapshot struct {
	Name           string
	Health         int
	Strength       int
	Intelligence   int
	Dexterity      int
	Level          int
	Exp            int
	BonusPoints    int
	EquippedWeapon *ItemView
	Inventory      []ItemView
}

// Snapshot copies the character state for display
func (c *Character) Snapshot() Snapshot {
	snap := Snapshot{
		Name:         c.name,
		Health:       c.Health,
		Strength:     c.Strength,
		Intelligence: c.Intelligence,
		Dexterity:    c.Dexterity,
		Level:        c.Level,
		Exp:          c.Exp,
		BonusPoints:  c.BonusPoints,
		Inventory:    make([]ItemView, 0, len(c.inventory.items)),
	}

	for i, it := range c.inventory.items {
		view := describe(i, it)
		view.Equipped = i == c.inventory.equipped
		if view.Equipped {
			equipped := view
			snap.EquippedWeapon = &equipped
		}
		snap.Inventory = append(snap.Inventory, view)
	}
	return snap
}

func describe(index int, it item.Item) ItemView {
	view := ItemView{
		Index: index,
		Name:  it.GetName(),
		Type:  it.GetItemType(),
	}
	if s, ok := it.(fmt.Stringer); ok {
		view.Description = s.String()
	} else {
		view.Description = it.GetName()
	}
	if w, ok := it.(*item.Weapon); ok {
		view.Broken = w.IsBroken()
		if view.Broken {
			view.Description += " [broken]"
		}
	}
	return view
}
