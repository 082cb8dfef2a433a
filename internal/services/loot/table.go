package loot

import (
	"github.com/KirkDiggler/text-rpg/internal/domain/item"
)

// Tier is a named rarity bucket
type Tier string

const (
	TierCommon    Tier = "common"
	TierRare      Tier = "rare"
	TierEpic      Tier = "epic"
	TierLegendary Tier = "legendary"
)

// DefaultEmptyChance is the probability of coming away with nothing
const DefaultEmptyChance = 0.2

// TierTable is one weighted tier and its candidate items.
// Candidates are templates: every drop is a clone.
type TierTable struct {
	Tier   Tier
	Weight int
	Items  []item.Item
}

// Table is the full two-stage loot configuration
type Table struct {
	EmptyChance float64
	Tiers       []TierTable
}

// TotalWeight sums the positive tier weights
func (t *Table) TotalWeight() int {
	total := 0
	for _, tier := range t.Tiers {
		if tier.Weight > 0 {
			total += tier.Weight
		}
	}
	return total
}

// DefaultTable returns a fresh copy of the standard loot table
func DefaultTable() *Table {
	return &Table{
		EmptyChance: DefaultEmptyChance,
		Tiers: []TierTable{
			{
				Tier:   TierCommon,
				Weight: 60,
				Items: []item.Item{
					item.NewGold(10),
					item.NewGold(25),
					item.NewHealthPotion(),
					item.NewGeneric("Torch"),
					item.NewGeneric("Old Map"),
				},
			},
			{
				Tier:   TierRare,
				Weight: 25,
				Items: []item.Item{
					&item.Weapon{Name: "Sword", Damage: item.Range{Min: 5, Max: 15}, Durability: 50, CriticalChance: 0.05},
					&item.Weapon{Name: "Axe", Damage: item.Range{Min: 6, Max: 16}, Durability: 45, CriticalChance: 0.05},
					&item.Weapon{Name: "Bow", Damage: item.Range{Min: 4, Max: 14}, Durability: 40, CriticalChance: 0.10},
				},
			},
			{
				Tier:   TierEpic,
				Weight: 10,
				Items: []item.Item{
					&item.Weapon{
						Name:           "Flamebrand",
						Damage:         item.Range{Min: 10, Max: 20},
						Durability:     40,
						CriticalChance: 0.15,
						SpecialEffects: []string{"fire"},
					},
					&item.Weapon{
						Name:           "Frostbite Bow",
						Damage:         item.Range{Min: 9, Max: 18},
						Durability:     35,
						CriticalChance: 0.15,
						SpecialEffects: []string{"frost"},
					},
				},
			},
			{
				Tier:   TierLegendary,
				Weight: 5,
				Items: []item.Item{
					&item.Weapon{
						Name:           "Excalibur",
						Damage:         item.Range{Min: 20, Max: 35},
						Durability:     100,
						CriticalChance: 0.25,
						SpecialEffects: []string{"holy", "radiant"},
					},
				},
			},
		},
	}
}
