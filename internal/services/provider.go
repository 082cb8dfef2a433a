package services

import (
	"github.com/KirkDiggler/text-rpg/internal/dice"
	"github.com/KirkDiggler/text-rpg/internal/repositories/characters"
	characterService "github.com/KirkDiggler/text-rpg/internal/services/character"
	"github.com/KirkDiggler/text-rpg/internal/services/encounter"
	"github.com/KirkDiggler/text-rpg/internal/services/loot"
	"github.com/KirkDiggler/text-rpg/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	EncounterService encounter.Service
	LootService      loot.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	Roller              dice.Roller    // time seeded when nil
	UUIDGenerator       uuid.Generator // prefixed google UUIDs when nil
	Slot                string
	LootTable           *loot.Table
}

// NewProvider creates a new service provider with all services initialized.
// Loot and combat draw from the same roller, so one seed fixes a whole session.
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	lootSvc := loot.NewService(&loot.ServiceConfig{
		Roller: roller,
		Table:  cfg.LootTable,
	})

	charSvc := characterService.NewService(&characterService.ServiceConfig{
		Repository:  charRepo,
		DefaultSlot: cfg.Slot,
	})

	encounterSvc := encounter.NewService(&encounter.ServiceConfig{
		Roller:        roller,
		LootService:   lootSvc,
		UUIDGenerator: cfg.UUIDGenerator,
	})

	return &Provider{
		CharacterService: charSvc,
		EncounterService: encounterSvc,
		LootService:      lootSvc,
	}
}
