package character

import (
	"log"
	"strings"

	"github.com/KirkDiggler/text-rpg/internal/dice"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
)

const (
	// StartingHealth is the health of a freshly created character
	StartingHealth = 100

	// StartingAttribute is the strength, intelligence and dexterity of a new character
	StartingAttribute = 10

	// MaxNaturalHealth caps healing. Damage is not capped.
	MaxNaturalHealth = 100

	// LevelUpThreshold is the experience at which a victory triggers a level up
	LevelUpThreshold = 50
)

// Character owns every mutable progression field of the player.
// The inventory and the equipped slot are only reachable through methods so
// the equipped weapon always refers to an inventory entry.
type Character struct {
	name string

	Health       int
	Strength     int
	Intelligence int
	Dexterity    int
	Level        int
	Exp          int
	BonusPoints  int

	inventory inventory
}

// New creates a level 1 character with starting stats
func New(name string) *Character {
	return &Character{
		name:         name,
		Health:       StartingHealth,
		Strength:     StartingAttribute,
		Intelligence: StartingAttribute,
		Dexterity:    StartingAttribute,
		Level:        1,
		inventory:    newInventory(),
	}
}

// NewValidated creates a character after rejecting a blank name
func NewValidated(name string) (*Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}
	return New(name), nil
}

// Name returns the immutable character name
func (c *Character) Name() string {
	return c.name
}

// GainExp adds combat experience; non-positive amounts are ignored
func (c *Character) GainExp(amount int) {
	if amount <= 0 {
		return
	}
	c.Exp += amount
}

// CanLevelUp reports whether the experience threshold is reached
func (c *Character) CanLevelUp() bool {
	return c.Exp >= LevelUpThreshold
}

// LevelUpResult records the stat growth of one level up
type LevelUpResult struct {
	Level        int
	Health       int
	Strength     int
	Intelligence int
	Dexterity    int
}

// LevelUp advances one level, resets experience and grants a bonus point.
// All rolls are made before any field changes, so a roller error leaves the
// character untouched.
func (c *Character) LevelUp(roller dice.Roller) (*LevelUpResult, error) {
	if roller == nil {
		return nil, dnderr.InvalidArgument("roller is required")
	}

	health, err := roller.Between(5, 10)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll health growth")
	}
	gains := make([]int, 3)
	for i := range gains {
		gains[i], err = roller.Between(1, 3)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to roll attribute growth")
		}
	}

	c.Level++
	c.Exp = 0
	c.BonusPoints++
	c.Health += health
	c.Strength += gains[0]
	c.Intelligence += gains[1]
	c.Dexterity += gains[2]

	log.Printf("%s reached level %d", c.name, c.Level)

	return &LevelUpResult{
		Level:        c.Level,
		Health:       health,
		Strength:     gains[0],
		Intelligence: gains[1],
		Dexterity:    gains[2],
	}, nil
}

// AllocateBonusPoint spends one bonus point on one attribute.
// Invalid input leaves every field unchanged.
func (c *Character) AllocateBonusPoint(attr Attribute) error {
	if c.BonusPoints <= 0 {
		return dnderr.InvalidChoicef("no bonus points to allocate")
	}

	var target *int
	switch attr {
	case AttributeHealth:
		target = &c.Health
	case AttributeStrength:
		target = &c.Strength
	case AttributeIntelligence:
		target = &c.Intelligence
	case AttributeDexterity:
		target = &c.Dexterity
	default:
		return dnderr.InvalidChoicef("unknown attribute %q", attr).
			WithMeta("attribute", string(attr))
	}

	*target++
	c.BonusPoints--
	return nil
}

// Heal restores health up to MaxNaturalHealth and returns the amount gained.
// A character already above the cap keeps their health.
func (c *Character) Heal(amount int) int {
	if amount <= 0 || c.Health >= MaxNaturalHealth {
		return 0
	}

	before := c.Health
	c.Health += amount
	if c.Health > MaxNaturalHealth {
		c.Health = MaxNaturalHealth
	}
	return c.Health - before
}

// TakeDamage subtracts damage; health may go negative
func (c *Character) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	c.Health -= amount
}

// IsDefeated reports whether the character has no health left
func (c *Character) IsDefeated() bool {
	return c.Health <= 0
}
