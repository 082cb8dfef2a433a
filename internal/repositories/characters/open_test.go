package characters_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/repositories/characters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Backends(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  *characters.StoreConfig
	}{
		{name: "file", cfg: &characters.StoreConfig{Backend: characters.BackendFile, Dir: dir}},
		{name: "default is file", cfg: &characters.StoreConfig{Dir: filepath.Join(dir, "nested")}},
		{name: "memory", cfg: &characters.StoreConfig{Backend: characters.BackendMemory}},
		{name: "sqlite", cfg: &characters.StoreConfig{Backend: characters.BackendSQLite, SQLitePath: filepath.Join(dir, "rpg.db")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := characters.Open(ctx, tt.cfg)
			require.NoError(t, err)
			defer func() { assert.NoError(t, store.Close()) }()

			require.NoError(t, store.Repository.Save(ctx, "hero", character.New("Aria")))
			loaded, err := store.Repository.Load(ctx, "hero")
			require.NoError(t, err)
			assert.Equal(t, "Aria", loaded.Name())
		})
	}
}

func TestOpen_Rejects(t *testing.T) {
	ctx := context.Background()

	_, err := characters.Open(ctx, nil)
	assert.Error(t, err)

	_, err = characters.Open(ctx, &characters.StoreConfig{Backend: "tape"})
	assert.ErrorContains(t, err, "unknown storage backend")

	_, err = characters.Open(ctx, &characters.StoreConfig{Backend: characters.BackendRedis, RedisURL: "not a url"})
	assert.ErrorContains(t, err, "failed to parse Redis URL")

	_, err = characters.Open(ctx, &characters.StoreConfig{Backend: characters.BackendSQLite})
	assert.Error(t, err)
}

func TestStore_CloseWithoutConnection(t *testing.T) {
	var store *characters.Store
	assert.NoError(t, store.Close())
}
