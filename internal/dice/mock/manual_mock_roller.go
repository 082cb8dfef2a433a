package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/text-rpg/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results.
// Integer draws (Roll, Between) and probability draws (Chance) are scripted
// on separate queues.
type ManualMockRoller struct {
	mu          sync.Mutex
	rolls       []int
	rollIndex   int
	chances     []bool
	chanceIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls:   []int{},
		chances: []bool{},
	}
}

// SetNextRoll sets the next roll result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls sets multiple roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// SetChances sets the outcomes returned by Chance
func (m *ManualMockRoller) SetChances(chances []bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chances = chances
	m.chanceIndex = 0
}

// Reset clears all scripted results
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
	m.chances = []bool{}
	m.chanceIndex = 0
}

// Remaining returns how many integer rolls are still queued
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

// getNextRoll returns the next predetermined roll
func (m *ManualMockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls := make([]int, count)
	rawTotal := 0

	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
		rawTotal += roll
	}

	return &dice.RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}

// Between implements dice.Roller.Between
func (m *ManualMockRoller) Between(minValue, maxValue int) (int, error) {
	roll, err := m.getNextRoll()
	if err != nil {
		return 0, err
	}
	if roll < minValue || roll > maxValue {
		return 0, fmt.Errorf("invalid roll %d for range [%d, %d]", roll, minValue, maxValue)
	}
	return roll, nil
}

// Chance implements dice.Roller.Chance
func (m *ManualMockRoller) Chance(probability float64) (bool, error) {
	if probability <= 0 {
		return false, nil
	}
	if probability >= 1 {
		return true, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.chanceIndex >= len(m.chances) {
		return false, fmt.Errorf("no more predetermined chances available (used %d of %d)", m.chanceIndex, len(m.chances))
	}

	chance := m.chances[m.chanceIndex]
	m.chanceIndex++
	return chance, nil
}
