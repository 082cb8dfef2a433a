package combat

import (
	"fmt"
	"strings"
	"time"

	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
)

// Status represents the current state of an encounter
type Status string

const (
	StatusInProgress Status = "in_progress" // Combat in progress
	StatusVictory    Status = "victory"     // Enemy defeated
	StatusDefeat     Status = "defeat"      // Character defeated
	StatusEscaped    Status = "escaped"     // Character fled
)

// IsTerminal reports whether the encounter has ended
func (s Status) IsTerminal() bool {
	return s == StatusVictory || s == StatusDefeat || s == StatusEscaped
}

// Action is the player's choice for one round
type Action string

const (
	ActionAttack        Action = "attack"
	ActionUseConsumable Action = "use"
	ActionFlee          Action = "flee"
)

// ParseAction accepts a menu number, the first letter or the full action name
func ParseAction(choice string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "1", "a", "attack":
		return ActionAttack, nil
	case "2", "u", "use", "potion":
		return ActionUseConsumable, nil
	case "3", "f", "flee", "r", "run":
		return ActionFlee, nil
	}
	return "", dnderr.InvalidChoicef("unknown action %q", choice).WithMeta("choice", choice)
}

const (
	// BaseEnemyHealth is added to the enemy strength to size its health pool
	BaseEnemyHealth = 50

	// UnarmedMinDamage and UnarmedMaxDamage bound a swing without a weapon
	UnarmedMinDamage = 5
	UnarmedMaxDamage = 10

	// MinEnemyMaxDamage is the floor of the enemy's damage ceiling
	MinEnemyMaxDamage = 5

	// FleeChancePerDexterity is the flee percentage granted per dexterity point
	FleeChancePerDexterity = 2
)

// EnemyHealthFor returns the starting health of an enemy of the given strength
func EnemyHealthFor(strength int) int {
	return BaseEnemyHealth + strength
}

// EnemyMaxDamage returns the top of the enemy damage roll
func EnemyMaxDamage(strength int) int {
	return max(MinEnemyMaxDamage, strength/2)
}

// FleeChance returns the flee success percentage, clamped to [0, 100]
func FleeChance(dexterity int) int {
	return min(max(dexterity*FleeChancePerDexterity, 0), 100)
}

// Encounter is one battle between the character and a single enemy
type Encounter struct {
	ID             string
	EnemyStrength  int
	EnemyHealth    int // may go negative; use DisplayEnemyHealth for output
	EnemyMaxHealth int
	Round          int
	Status         Status
	Log            []Event
	StartedAt      time.Time
	EndedAt        *time.Time
}

// NewEncounter creates an in-progress encounter against an enemy of the given strength
func NewEncounter(id string, enemyStrength int) *Encounter {
	health := EnemyHealthFor(enemyStrength)
	return &Encounter{
		ID:             id,
		EnemyStrength:  enemyStrength,
		EnemyHealth:    health,
		EnemyMaxHealth: health,
		Status:         StatusInProgress,
		Log:            []Event{},
		StartedAt:      time.Now(),
	}
}

// DisplayEnemyHealth returns the enemy health floored at zero
func (e *Encounter) DisplayEnemyHealth() int {
	return max(e.EnemyHealth, 0)
}

// AddEvent appends an event stamped with the current round
func (e *Encounter) AddEvent(kind EventKind, amount int, itemName, format string, args ...any) Event {
	ev := Event{
		Round:   e.Round,
		Kind:    kind,
		Amount:  amount,
		Item:    itemName,
		Message: fmt.Sprintf(format, args...),
	}
	e.Log = append(e.Log, ev)
	return ev
}

// EventsSince returns the events logged from index onward
func (e *Encounter) EventsSince(index int) []Event {
	if index >= len(e.Log) {
		return nil
	}
	out := make([]Event, len(e.Log)-index)
	copy(out, e.Log[index:])
	return out
}

func (e *Encounter) end(status Status) {
	now := time.Now()
	e.Status = status
	e.EndedAt = &now
}
