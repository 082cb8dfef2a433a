package encounter

import (
	"context"
	"log"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/domain/game/combat"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
)

// conclude builds the outcome of a finished encounter and, on victory,
// grants experience, levels up, spends bonus points and rolls loot once.
func (s *service) conclude(ctx context.Context, char *character.Character, enc *combat.Encounter, chooser Chooser) (*Outcome, error) {
	outcome := &Outcome{
		Found:     true,
		Encounter: enc,
		Status:    enc.Status,
	}

	if enc.Status == combat.StatusVictory {
		if err := s.reward(ctx, char, enc, chooser, outcome); err != nil {
			outcome.Events = enc.EventsSince(0)
			return outcome, err
		}
	}

	log.Printf("Encounter %s ended: %s after %d rounds", enc.ID, enc.Status, enc.Round)
	outcome.Events = enc.EventsSince(0)
	return outcome, nil
}

func (s *service) reward(ctx context.Context, char *character.Character, enc *combat.Encounter, chooser Chooser, outcome *Outcome) error {
	exp, err := s.roller.Between(MinVictoryExp, MaxVictoryExp)
	if err != nil {
		return dnderr.Wrap(err, "failed to roll experience")
	}
	char.GainExp(exp)
	outcome.ExpGained = exp
	enc.AddEvent(combat.EventExpGained, exp, "", "You gained %d experience.", exp)

	if char.CanLevelUp() {
		result, err := char.LevelUp(s.roller)
		if err != nil {
			return err
		}
		outcome.LevelUp = result
		enc.AddEvent(combat.EventLevelUp, result.Level, "",
			"Congratulations, %s! You reached level %d (+%d health, +%d strength, +%d intelligence, +%d dexterity).",
			char.Name(), result.Level, result.Health, result.Strength, result.Intelligence, result.Dexterity)

		allocated, err := s.allocateBonusPoints(ctx, char, enc, chooser)
		outcome.Allocations = allocated
		if err != nil {
			return err
		}
	}

	drop, err := s.lootService.Draw(ctx)
	if err != nil {
		return dnderr.Wrap(err, "failed to generate loot")
	}
	if drop == nil {
		enc.AddEvent(combat.EventNoLoot, 0, "", "You found nothing of value.")
		return nil
	}

	char.AddItem(drop.Item)
	outcome.Loot = drop.Item
	outcome.LootTier = drop.Tier
	enc.AddEvent(combat.EventLootFound, 0, drop.Item.GetName(), "You found %s! It has been added to your inventory.", drop.Item)
	return nil
}

// allocateBonusPoints spends every available point through the chooser.
// Rejected choices are re-prompted; after too many, the remaining points stay
// banked for later.
func (s *service) allocateBonusPoints(ctx context.Context, char *character.Character, enc *combat.Encounter, chooser Chooser) ([]character.Attribute, error) {
	var allocated []character.Attribute
	invalid := 0

	for char.BonusPoints > 0 {
		if err := ctx.Err(); err != nil {
			return allocated, err
		}

		attr, err := chooser.ChooseAttribute(ctx, char.Snapshot())
		if err == nil {
			err = char.AllocateBonusPoint(attr)
		}
		if err == nil {
			allocated = append(allocated, attr)
			invalid = 0
			enc.AddEvent(combat.EventBonusAllocated, 1, "", "You allocated a bonus point to %s.", attr)
			continue
		}

		if !dnderr.IsInvalidChoice(err) {
			return allocated, dnderr.Wrap(err, "failed to allocate bonus point")
		}
		invalid++
		if invalid >= maxInvalidChoices {
			log.Printf("Leaving %d bonus points unspent for %s after %d invalid choices", char.BonusPoints, char.Name(), invalid)
			return allocated, nil
		}
	}

	return allocated, nil
}
