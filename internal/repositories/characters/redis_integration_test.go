//go:build integration

package characters_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/domain/item"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
	"github.com/KirkDiggler/text-rpg/internal/repositories/characters"
	"github.com/KirkDiggler/text-rpg/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := characters.NewRedisRepository(&characters.RedisRepoConfig{Client: client})
	ctx := context.Background()

	c := character.New("Aria")
	axe := item.NewWeapon("Axe", 6, 16)
	c.AddItem(axe)
	require.NoError(t, c.Equip(axe))

	require.NoError(t, repo.Save(ctx, "hero", c))

	loaded, err := repo.Load(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, c.Snapshot(), loaded.Snapshot())

	slots, err := repo.ListSlots(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"hero"}, slots)

	require.NoError(t, repo.Delete(ctx, "hero"))
	_, err = repo.Load(ctx, "hero")
	assert.True(t, dnderr.IsMissingSaveFile(err))
}

func TestRedisRepository_ConcurrentSavesLeaveOneWholeRecord(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := characters.NewRedisRepository(&characters.RedisRepoConfig{Client: client})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(level int) {
			defer wg.Done()
			c := character.New("Racer")
			c.Level = level
			// Losing the lock race is fine, a torn record is not
			_ = repo.Save(ctx, "race", c)
		}(i)
	}
	wg.Wait()

	loaded, err := repo.Load(ctx, "race")
	require.NoError(t, err)
	assert.Equal(t, "Racer", loaded.Name())
	assert.GreaterOrEqual(t, loaded.Level, 1)
}
