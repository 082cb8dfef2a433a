package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=mockencounter -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/text-rpg/internal/dice"
	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/domain/game/combat"
	"github.com/KirkDiggler/text-rpg/internal/domain/item"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
	"github.com/KirkDiggler/text-rpg/internal/services/loot"
	"github.com/KirkDiggler/text-rpg/internal/uuid"
)

const (
	// ExploreEncounterChance is the probability that exploring finds an enemy
	ExploreEncounterChance = 0.5

	// MinEnemyStrength and MaxEnemyStrength bound a randomly met enemy
	MinEnemyStrength = 5
	MaxEnemyStrength = 15

	// MinVictoryExp and MaxVictoryExp bound the experience of a win
	MinVictoryExp = 10
	MaxVictoryExp = 20

	// maxInvalidChoices caps consecutive rejected bonus point choices before
	// the remaining points are banked
	maxInvalidChoices = 5
)

// Service defines the encounter service interface
type Service interface {
	// Fight runs a round-based battle until victory, defeat or escape
	Fight(ctx context.Context, char *character.Character, enemyStrength int, chooser Chooser) (*Outcome, error)

	// Clash settles a battle by comparing strength alone
	Clash(ctx context.Context, char *character.Character, enemyStrength int, chooser Chooser) (*Outcome, error)

	// Explore may or may not find an enemy; found enemies are fought with Fight,
	// or with Clash when binary is set
	Explore(ctx context.Context, char *character.Character, chooser Chooser, binary bool) (*Outcome, error)
}

// Chooser is the player side of an encounter. The terminal shell implements it.
type Chooser interface {
	// ChooseAction picks the next round's action
	ChooseAction(ctx context.Context, view *RoundView) (combat.Action, error)

	// ChooseAttribute picks where one bonus point goes
	ChooseAttribute(ctx context.Context, snapshot character.Snapshot) (character.Attribute, error)
}

// RoundView is what the player sees before choosing an action
type RoundView struct {
	EncounterID    string
	Round          int
	EnemyStrength  int
	EnemyHealth    int
	EnemyMaxHealth int
	Character      character.Snapshot
	HasPotion      bool

	// Events produced since the previous prompt
	Events []combat.Event
}

// Outcome is the end result of an exploration or battle
type Outcome struct {
	// Found is false when exploring turned up nothing; the rest is then empty
	Found     bool
	Encounter *combat.Encounter
	Status    combat.Status

	ExpGained   int
	LevelUp     *character.LevelUpResult
	Allocations []character.Attribute
	Loot        item.Item
	LootTier    loot.Tier

	// Events is the complete narration, including rewards
	Events []combat.Event
}

// Victory reports whether the battle was won
func (o *Outcome) Victory() bool {
	return o != nil && o.Status == combat.StatusVictory
}

type service struct {
	roller        dice.Roller
	lootService   loot.Service
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller        dice.Roller    // Optional - time seeded roller if nil
	LootService   loot.Service   // Optional - default loot table over Roller if nil
	UUIDGenerator uuid.Generator // Optional - prefixed google UUIDs if nil
}

// NewService creates a new encounter service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}

	svc := &service{
		roller:        cfg.Roller,
		lootService:   cfg.LootService,
		uuidGenerator: cfg.UUIDGenerator,
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.lootService == nil {
		svc.lootService = loot.NewService(&loot.ServiceConfig{Roller: svc.roller})
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewPrefixedGenerator("enc_")
	}

	return svc
}

// Fight implements Service
func (s *service) Fight(ctx context.Context, char *character.Character, enemyStrength int, chooser Chooser) (*Outcome, error) {
	if char == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}
	if chooser == nil {
		return nil, dnderr.InvalidArgument("chooser is required")
	}

	enc := combat.NewEncounter(s.uuidGenerator.New(), enemyStrength)
	enc.AddEvent(combat.EventEncounterStarted, enemyStrength, "", "An enemy with strength %d appears!", enemyStrength)
	log.Printf("Encounter %s started: %s vs enemy strength %d", enc.ID, char.Name(), enemyStrength)

	// Rejected choices are re-prompted until the battle ends. Only a chooser
	// that cannot answer at all (closed input, cancelled ctx) stops it early.
	pending := enc.EventsSince(0)
	for !enc.Status.IsTerminal() {
		action, err := chooser.ChooseAction(ctx, s.roundView(enc, char, pending))
		if err == nil {
			var events []combat.Event
			events, err = enc.ResolveRound(char, action, s.roller)
			if err == nil {
				pending = events
				continue
			}
		}

		if !dnderr.IsInvalidChoice(err) {
			return nil, dnderr.Wrapf(err, "encounter %s round %d failed", enc.ID, enc.Round+1)
		}
		pending = nil
	}

	return s.conclude(ctx, char, enc, chooser)
}

// Clash implements Service
func (s *service) Clash(ctx context.Context, char *character.Character, enemyStrength int, chooser Chooser) (*Outcome, error) {
	if chooser == nil {
		return nil, dnderr.InvalidArgument("chooser is required")
	}

	enc, err := combat.ResolveByStrength(s.uuidGenerator.New(), char, enemyStrength)
	if err != nil {
		return nil, err
	}
	log.Printf("Encounter %s clashed: %s vs enemy strength %d, %s", enc.ID, char.Name(), enemyStrength, enc.Status)

	return s.conclude(ctx, char, enc, chooser)
}

// Explore implements Service
func (s *service) Explore(ctx context.Context, char *character.Character, chooser Chooser, binary bool) (*Outcome, error) {
	if char == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}

	found, err := s.roller.Chance(ExploreEncounterChance)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll exploration")
	}
	if !found {
		return &Outcome{Found: false}, nil
	}

	strength, err := s.roller.Between(MinEnemyStrength, MaxEnemyStrength)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll enemy strength")
	}

	var outcome *Outcome
	if binary {
		outcome, err = s.Clash(ctx, char, strength, chooser)
	} else {
		outcome, err = s.Fight(ctx, char, strength, chooser)
	}
	if err != nil {
		return nil, err
	}
	outcome.Found = true
	return outcome, nil
}

func (s *service) roundView(enc *combat.Encounter, char *character.Character, events []combat.Event) *RoundView {
	hasPotion := false
	for _, it := range char.Inventory() {
		if item.IsHealthPotion(it) {
			hasPotion = true
			break
		}
	}

	return &RoundView{
		EncounterID:    enc.ID,
		Round:          enc.Round + 1,
		EnemyStrength:  enc.EnemyStrength,
		EnemyHealth:    enc.DisplayEnemyHealth(),
		EnemyMaxHealth: enc.EnemyMaxHealth,
		Character:      char.Snapshot(),
		HasPotion:      hasPotion,
		Events:         events,
	}
}
