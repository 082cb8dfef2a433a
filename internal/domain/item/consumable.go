package item

import "fmt"

// ConsumableKind tags what a consumable does when used
type ConsumableKind string

const (
	ConsumableHealthPotion ConsumableKind = "health_potion"
)

// HealthPotionName is the display name of the standard potion
const HealthPotionName = "Health Potion"

// Consumable is an item removed from the inventory when used
type Consumable struct {
	Kind ConsumableKind
	Name string
	Heal Range
}

// NewHealthPotion creates the standard potion healing 15 to 30
func NewHealthPotion() *Consumable {
	return &Consumable{
		Kind: ConsumableHealthPotion,
		Name: HealthPotionName,
		Heal: Range{Min: 15, Max: 30},
	}
}

func (c *Consumable) GetItemType() Type { return TypeConsumable }
func (c *Consumable) GetName() string   { return c.Name }
func (c *Consumable) sealed()           {}

func (c *Consumable) String() string {
	if c.Heal.Max > 0 {
		return fmt.Sprintf("%s (heals %d - %d)", c.Name, c.Heal.Min, c.Heal.Max)
	}
	return c.Name
}

func (c *Consumable) Clone() Item {
	cp := *c
	return &cp
}

// IsHealthPotion reports whether an inventory entry is a usable health potion
func IsHealthPotion(it Item) bool {
	c, ok := it.(*Consumable)
	return ok && c.Kind == ConsumableHealthPotion
}
