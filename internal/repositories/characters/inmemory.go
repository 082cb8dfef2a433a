package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character repository.
// It keeps encoded records, so every load goes through the same decoder as
// the durable stores. Useful for testing and development.
type InMemoryRepository struct {
	mu    sync.RWMutex
	saves map[string][]byte
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		saves: make(map[string][]byte),
	}
}

// Load implements Repository
func (r *InMemoryRepository) Load(ctx context.Context, slot string) (*character.Character, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	r.mu.RLock()
	data, exists := r.saves[slot]
	r.mu.RUnlock()

	if !exists {
		return nil, dnderr.MissingSaveFilef("no save for slot %s", slot).WithMeta("slot", slot)
	}
	return Decode(data)
}

// Save implements Repository
func (r *InMemoryRepository) Save(ctx context.Context, slot string, char *character.Character) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	data, err := Encode(char)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves[slot] = data

	return nil
}

// Put stores raw record bytes as-is, for seeding legacy saves in tests
func (r *InMemoryRepository) Put(slot string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves[slot] = append([]byte(nil), data...)
}

// Raw returns the stored record bytes of a slot
func (r *InMemoryRepository) Raw(slot string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.saves[slot]
	return append([]byte(nil), data...), ok
}

// Delete implements Repository
func (r *InMemoryRepository) Delete(ctx context.Context, slot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.saves[slot]; !exists {
		return dnderr.MissingSaveFilef("no save for slot %s", slot).WithMeta("slot", slot)
	}
	delete(r.saves, slot)

	return nil
}

// ListSlots implements Repository
func (r *InMemoryRepository) ListSlots(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slots := make([]string, 0, len(r.saves))
	for slot := range r.saves {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	return slots, nil
}
