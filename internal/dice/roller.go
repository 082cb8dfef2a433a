package dice

// Roller provides an interface for every random draw the game makes.
// This allows us to inject a seeded or scripted implementation for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// Between returns a uniform integer in [minValue, maxValue]
	Between(minValue, maxValue int) (int, error)

	// Chance reports true with the given probability.
	// Probabilities <= 0 are always false and >= 1 always true
	// without consuming a draw.
	Chance(probability float64) (bool, error)
}
