package dice

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller on top of an owned *rand.Rand
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a new time seeded dice roller
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller whose sequence is fully determined by seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid dice count %d", count)
	}
	if sides < 1 {
		return nil, fmt.Errorf("invalid dice size %d", sides)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls := make([]int, count)
	rawTotal := 0
	for i := 0; i < count; i++ {
		rolls[i] = r.rng.Intn(sides) + 1
		rawTotal += rolls[i]
	}

	return &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}

// Between implements Roller.Between
func (r *randomRoller) Between(minValue, maxValue int) (int, error) {
	if maxValue < minValue {
		return 0, fmt.Errorf("invalid range [%d, %d]", minValue, maxValue)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return minValue + r.rng.Intn(maxValue-minValue+1), nil
}

// Chance implements Roller.Chance
func (r *randomRoller) Chance(probability float64) (bool, error) {
	if probability <= 0 {
		return false, nil
	}
	if probability >= 1 {
		return true, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.Float64() < probability, nil
}
