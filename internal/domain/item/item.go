// Package item defines the inventory entries a character can carry.
//
// Item is a closed sum type: *Weapon, *Consumable, *Currency and *Generic are
// the only implementations.
package item

import (
	"fmt"
	"strings"
)

// Type discriminates the item variants
type Type string

const (
	TypeWeapon     Type = "weapon"
	TypeConsumable Type = "consumable"
	TypeCurrency   Type = "currency"
	TypeGeneric    Type = "generic"
)

// Item is a single inventory entry
type Item interface {
	GetItemType() Type
	GetName() string

	// Clone returns an independent copy, so table templates are never
	// mutated through an inventory slot.
	Clone() Item

	sealed()
}

// Range is an inclusive integer interval
type Range struct {
	Min int
	Max int
}

// NewRange builds a range, swapping the bounds if they arrive reversed
func NewRange(a, b int) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Min: a, Max: b}
}

// Generic is a named item with no mechanical effect
type Generic struct {
	Name string
}

// NewGeneric creates a plain named item
func NewGeneric(name string) *Generic {
	return &Generic{Name: name}
}

func (g *Generic) GetItemType() Type { return TypeGeneric }
func (g *Generic) GetName() string   { return g.Name }
func (g *Generic) String() string    { return g.Name }
func (g *Generic) sealed()           {}

func (g *Generic) Clone() Item {
	c := *g
	return &c
}

// Currency is a stack of coins
type Currency struct {
	Name   string
	Amount int
}

// DefaultCurrencyName is used when a record carries an amount but no name
const DefaultCurrencyName = "Gold"

// NewGold creates a gold currency entry
func NewGold(amount int) *Currency {
	if amount < 0 {
		amount = 0
	}
	return &Currency{Name: DefaultCurrencyName, Amount: amount}
}

func (c *Currency) GetItemType() Type { return TypeCurrency }
func (c *Currency) GetName() string   { return c.Name }
func (c *Currency) sealed()           {}

func (c *Currency) String() string {
	return fmt.Sprintf("%s x%d", c.Name, c.Amount)
}

func (c *Currency) Clone() Item {
	cp := *c
	return &cp
}

// NameMatches compares item names the way the equip prompt always has:
// case-insensitively, ignoring surrounding whitespace.
func NameMatches(it Item, name string) bool {
	if it == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(it.GetName()), strings.TrimSpace(name))
}
