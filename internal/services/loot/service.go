package loot

//go:generate mockgen -destination=mock/mock_service.go -package=mockloot -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/text-rpg/internal/dice"
	"github.com/KirkDiggler/text-rpg/internal/domain/item"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
)

// Service defines the loot service interface
type Service interface {
	// GenerateLoot returns a fresh item, or nil when the draw comes up empty-handed
	GenerateLoot(ctx context.Context) (item.Item, error)

	// Draw is GenerateLoot with the rarity tier attached
	Draw(ctx context.Context) (*Drop, error)
}

// Drop is the result of a non-empty loot draw
type Drop struct {
	Tier Tier
	Item item.Item
}

type service struct {
	roller dice.Roller
	table  *Table
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller // Optional - time seeded roller if nil
	Table  *Table      // Optional - DefaultTable if nil
}

// NewService creates a new loot service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		roller: dice.NewRandomRoller(),
		table:  DefaultTable(),
	}

	if cfg != nil {
		if cfg.Roller != nil {
			svc.roller = cfg.Roller
		}
		if cfg.Table != nil {
			svc.table = cfg.Table
		}
	}

	return svc
}

// GenerateLoot implements Service
func (s *service) GenerateLoot(ctx context.Context) (item.Item, error) {
	drop, err := s.Draw(ctx)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, nil
	}
	return drop.Item, nil
}

// Draw implements Service.
// Stage one decides whether anything drops at all, stage two picks the tier
// by weight and then a candidate uniformly within it.
func (s *service) Draw(ctx context.Context) (*Drop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	empty, err := s.roller.Chance(s.table.EmptyChance)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll empty-handed chance")
	}
	if empty {
		return nil, nil
	}

	tier, err := s.pickTier()
	if err != nil {
		return nil, err
	}

	index, err := s.roller.Between(0, len(tier.Items)-1)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to pick %s loot", tier.Tier)
	}

	drop := &Drop{
		Tier: tier.Tier,
		Item: tier.Items[index].Clone(),
	}
	log.Printf("Loot drop: %s (%s)", drop.Item.GetName(), drop.Tier)

	return drop, nil
}

func (s *service) pickTier() (*TierTable, error) {
	total := s.table.TotalWeight()
	if total <= 0 {
		return nil, dnderr.Internalf("loot table has no weight")
	}

	roll, err := s.roller.Between(1, total)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll loot tier")
	}

	for i := range s.table.Tiers {
		tier := &s.table.Tiers[i]
		if tier.Weight <= 0 {
			continue
		}
		if roll <= tier.Weight {
			if len(tier.Items) == 0 {
				return nil, dnderr.Internalf("loot tier %s has no items", tier.Tier)
			}
			return tier, nil
		}
		roll -= tier.Weight
	}

	// Unreachable while roll stays within [1, total]
	return nil, dnderr.Internalf("loot tier roll out of range")
}
