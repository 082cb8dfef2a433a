package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"
	"regexp"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
)

// Repository defines the interface for character save persistence.
// A slot names one save record.
type Repository interface {
	// Load reconstructs the character stored in slot. It fails with
	// MissingSaveFile when there is no record and MalformedSaveData when the
	// record cannot be decoded.
	Load(ctx context.Context, slot string) (*character.Character, error)

	// Save replaces the record in slot with the character's current state
	Save(ctx context.Context, slot string, char *character.Character) error

	// Delete removes the record in slot
	Delete(ctx context.Context, slot string) error

	// ListSlots returns the stored slot names in ascending order
	ListSlots(ctx context.Context) ([]string, error)
}

// DefaultSlot is the slot used when none is configured
const DefaultSlot = "character_data"

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)

// ValidateSlot rejects slot names that could escape a save directory or key space
func ValidateSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return dnderr.InvalidArgumentf("invalid save slot %q", slot).WithMeta("slot", slot)
	}
	return nil
}
