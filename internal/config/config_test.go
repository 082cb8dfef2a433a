package config_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/text-rpg/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageFile, cfg.Storage.Backend)
	assert.Equal(t, ".", cfg.Storage.SaveDir)
	assert.Equal(t, "character_data", cfg.Storage.Slot)
	assert.Empty(t, cfg.Storage.LegacyPaths)
	assert.Equal(t, "rpg.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 10*time.Second, cfg.Redis.LockTTL)
	assert.Equal(t, int64(0), cfg.Game.Seed)
	assert.False(t, cfg.Game.Binary())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("RPG_STORAGE", " Redis ")
	t.Setenv("RPG_SAVE_DIR", "/var/lib/rpg")
	t.Setenv("RPG_SAVE_SLOT", "hero")
	t.Setenv("RPG_LEGACY_SAVE_PATHS", "character_data.json, ,old/save.json")
	t.Setenv("REDIS_URL", "redis://cache:6380/2")
	t.Setenv("RPG_LOCK_TTL", "3s")
	t.Setenv("RPG_SEED", "42")
	t.Setenv("RPG_BATTLE_MODE", "binary")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageRedis, cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/rpg", cfg.Storage.SaveDir)
	assert.Equal(t, "hero", cfg.Storage.Slot)
	assert.Equal(t, []string{"character_data.json", "old/save.json"}, cfg.Storage.LegacyPaths)
	assert.Equal(t, "redis://cache:6380/2", cfg.Redis.URL)
	assert.Equal(t, 3*time.Second, cfg.Redis.LockTTL)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.True(t, cfg.Game.Binary())
}

func TestLoad_Rejects(t *testing.T) {
	for name, env := range map[string][2]string{
		"unknown storage": {"RPG_STORAGE", "postgres"},
		"unknown mode":    {"RPG_BATTLE_MODE", "realtime"},
		"bad seed":        {"RPG_SEED", "lucky"},
		"bad ttl":         {"RPG_LOCK_TTL", "soon"},
		"zero ttl":        {"RPG_LOCK_TTL", "0s"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
