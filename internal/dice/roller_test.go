package dice_test

import (
	"testing"

	"github.com/KirkDiggler/text-rpg/internal/dice"
	mockdice "github.com/KirkDiggler/text-rpg/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single d100 roll",
			setupRolls: []int{15},
			count:      1,
			sides:      100,
			wantTotal:  15,
			wantRolls:  []int{15},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      6,
			bonus:      3,
			wantTotal:  12, // 4+5+3
			wantRolls:  []int{4, 5},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      6,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}

func TestMockRoller_Between(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{7, 42})

	got, err := roller.Between(5, 10)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	// 42 is outside [1, 5] and must be rejected
	_, err = roller.Between(1, 5)
	assert.Error(t, err)

	_, err = roller.Between(1, 5)
	assert.Error(t, err, "queue exhausted")
}

func TestMockRoller_Chance(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetChances([]bool{true, false})

	// Certain outcomes never consume the queue
	hit, err := roller.Chance(0)
	require.NoError(t, err)
	assert.False(t, hit)
	hit, err = roller.Chance(1)
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = roller.Chance(0.5)
	require.NoError(t, err)
	assert.True(t, hit)
	hit, err = roller.Chance(0.5)
	require.NoError(t, err)
	assert.False(t, hit)

	_, err = roller.Chance(0.5)
	assert.Error(t, err)
}

func TestRandomRoller_BasicFunctionality(t *testing.T) {
	roller := dice.NewRandomRoller()

	result, err := roller.Roll(2, 6, 3)
	require.NoError(t, err)
	assert.Len(t, result.Rolls, 2)
	assert.GreaterOrEqual(t, result.Total, 5) // minimum: 1+1+3
	assert.LessOrEqual(t, result.Total, 15)   // maximum: 6+6+3

	for i := 0; i < 200; i++ {
		got, err := roller.Between(5, 10)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 5)
		assert.LessOrEqual(t, got, 10)
	}

	_, err = roller.Roll(0, 6, 0)
	assert.Error(t, err)
	_, err = roller.Between(10, 5)
	assert.Error(t, err)
}

func TestSeededRoller_IsReproducible(t *testing.T) {
	first := dice.NewSeededRoller(42)
	second := dice.NewSeededRoller(42)

	for i := 0; i < 50; i++ {
		a, err := first.Between(1, 1000)
		require.NoError(t, err)
		b, err := second.Between(1, 1000)
		require.NoError(t, err)
		assert.Equal(t, a, b)

		ca, err := first.Chance(0.3)
		require.NoError(t, err)
		cb, err := second.Chance(0.3)
		require.NoError(t, err)
		assert.Equal(t, ca, cb)
	}
}
