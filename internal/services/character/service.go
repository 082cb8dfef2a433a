package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/domain/item"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
	"github.com/KirkDiggler/text-rpg/internal/repositories/characters"
	"golang.org/x/sync/errgroup"
)

// Repository is an alias for the characters repository interface
type Repository = characters.Repository

// maxConcurrentLoads bounds ListSaves fan-out
const maxConcurrentLoads = 4

// Service defines the character session interface
type Service interface {
	// Create makes a fresh character and saves it right away
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Load restores the character in a slot. A missing, unreadable or defeated
	// save is not an error: the output reports Found false instead.
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Save writes the character to its slot
	Save(ctx context.Context, input *SaveInput) error

	// Equip wields an inventory weapon picked by index or by name
	Equip(ctx context.Context, input *EquipInput) (*item.Weapon, error)

	// AllocateBonusPoint spends one banked bonus point
	AllocateBonusPoint(ctx context.Context, input *AllocateInput) error

	// ListSaves summarises every stored slot
	ListSaves(ctx context.Context) ([]*SaveSummary, error)

	// Quit saves before the session ends. A failed save is reported in the
	// output, never returned as an error.
	Quit(ctx context.Context, input *SaveInput) *QuitOutput

	// Delete removes a slot
	Delete(ctx context.Context, slot string) error
}

// CreateInput contains the data needed to create a character
type CreateInput struct {
	Name string
	Slot string // default slot when empty
}

// CreateOutput contains the created character. SaveErr is set when the
// initial save failed; the character is still usable.
type CreateOutput struct {
	Character *character.Character
	SaveErr   error
}

// LoadInput names the slot to load
type LoadInput struct {
	Slot string
}

// LoadOutput is the result of a load
type LoadOutput struct {
	Character *character.Character
	Found     bool

	// Reason explains why nothing was found
	Reason error
}

// SaveInput pairs a character with its slot
type SaveInput struct {
	Slot      string
	Character *character.Character
}

// EquipInput selects a weapon. Index wins over Name when both are set.
type EquipInput struct {
	Character *character.Character
	Index     *int
	Name      string
}

// AllocateInput chooses where a bonus point goes
type AllocateInput struct {
	Character *character.Character
	Attribute character.Attribute
}

// SaveSummary describes one stored slot
type SaveSummary struct {
	Slot   string
	Name   string
	Level  int
	Health int

	// Err is set when the slot could not be read
	Err error
}

// QuitOutput reports the final save
type QuitOutput struct {
	Saved   bool
	SaveErr error
}

// service implements the Service interface
type service struct {
	repository  Repository
	defaultSlot string
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository  Repository // Required
	DefaultSlot string     // characters.DefaultSlot when empty
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:  cfg.Repository,
		defaultSlot: cfg.DefaultSlot,
	}
	if svc.defaultSlot == "" {
		svc.defaultSlot = characters.DefaultSlot
	}

	return svc
}

func (s *service) slot(slot string) string {
	if strings.TrimSpace(slot) == "" {
		return s.defaultSlot
	}
	return slot
}

// Create creates a new character
func (s *service) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required").
			WithMeta("operation", "Create")
	}

	char, err := character.NewValidated(input.Name)
	if err != nil {
		return nil, dnderr.Wrap(err, "invalid character name").
			WithMeta("operation", "Create")
	}

	output := &CreateOutput{Character: char}
	slot := s.slot(input.Slot)
	if err := s.repository.Save(ctx, slot, char); err != nil {
		log.Printf("Failed to save new character %s to slot %s: %v", char.Name(), slot, err)
		output.SaveErr = dnderr.Wrapf(err, "failed to save new character %s", char.Name()).
			WithMeta("slot", slot)
	}

	return output, nil
}

// Load loads a character
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	slot := ""
	if input != nil {
		slot = input.Slot
	}
	slot = s.slot(slot)

	char, err := s.repository.Load(ctx, slot)
	if err != nil {
		if dnderr.IsNoCharacter(err) {
			log.Printf("No character loaded from slot %s: %v", slot, err)
			return &LoadOutput{Reason: err}, nil
		}
		return nil, dnderr.Wrapf(err, "failed to load slot %s", slot).
			WithMeta("slot", slot)
	}

	if char.IsDefeated() {
		return &LoadOutput{
			Reason: dnderr.NotFoundf("%s was defeated", char.Name()).WithMeta("slot", slot),
		}, nil
	}

	return &LoadOutput{Character: char, Found: true}, nil
}

// Save saves a character
func (s *service) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Character == nil {
		return dnderr.InvalidArgument("character is required").
			WithMeta("operation", "Save")
	}

	slot := s.slot(input.Slot)
	if err := s.repository.Save(ctx, slot, input.Character); err != nil {
		return dnderr.Wrapf(err, "failed to save %s", input.Character.Name()).
			WithMeta("slot", slot)
	}

	log.Printf("Saved %s to slot %s", input.Character.Name(), slot)
	return nil
}

// Equip equips a weapon
func (s *service) Equip(ctx context.Context, input *EquipInput) (*item.Weapon, error) {
	if input == nil || input.Character == nil {
		return nil, dnderr.InvalidArgument("character is required").
			WithMeta("operation", "Equip")
	}

	if input.Index != nil {
		return input.Character.EquipAt(*input.Index)
	}
	return input.Character.EquipByName(input.Name)
}

// AllocateBonusPoint spends a bonus point
func (s *service) AllocateBonusPoint(ctx context.Context, input *AllocateInput) error {
	if input == nil || input.Character == nil {
		return dnderr.InvalidArgument("character is required").
			WithMeta("operation", "AllocateBonusPoint")
	}

	return input.Character.AllocateBonusPoint(input.Attribute)
}

// ListSaves lists stored characters
func (s *service) ListSaves(ctx context.Context) ([]*SaveSummary, error) {
	slots, err := s.repository.ListSlots(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list save slots")
	}

	summaries := make([]*SaveSummary, len(slots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)

	for i, slot := range slots {
		g.Go(func() error {
			summary := &SaveSummary{Slot: slot}
			char, err := s.repository.Load(gctx, slot)
			switch {
			case err == nil:
				summary.Name = char.Name()
				summary.Level = char.Level
				summary.Health = char.Health
			case dnderr.IsNoCharacter(err):
				summary.Err = err
			default:
				return err
			}
			summaries[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, dnderr.Wrap(err, "failed to load save summaries")
	}
	return summaries, nil
}

// Quit saves the character one last time
func (s *service) Quit(ctx context.Context, input *SaveInput) *QuitOutput {
	if err := s.Save(ctx, input); err != nil {
		log.Printf("Quitting without a save: %v", err)
		return &QuitOutput{SaveErr: err}
	}
	return &QuitOutput{Saved: true}
}

// Delete deletes a save slot
func (s *service) Delete(ctx context.Context, slot string) error {
	slot = s.slot(slot)
	if err := s.repository.Delete(ctx, slot); err != nil {
		return dnderr.Wrapf(err, "failed to delete slot %s", slot).
			WithMeta("slot", slot)
	}
	return nil
}
