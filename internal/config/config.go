package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends for save records
const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Battle modes for exploration encounters
const (
	BattleModeRounds = "rounds"
	BattleModeBinary = "binary"
)

// Config holds all configuration for the application.
// Every field has a default, so an empty environment is valid.
type Config struct {
	Storage StorageConfig
	Redis   RedisConfig
	Game    GameConfig
}

// StorageConfig selects and configures the save store
type StorageConfig struct {
	Backend     string   `env:"RPG_STORAGE" envDefault:"file"`
	SaveDir     string   `env:"RPG_SAVE_DIR" envDefault:"."`
	Slot        string   `env:"RPG_SAVE_SLOT" envDefault:"character_data"`
	LegacyPaths []string `env:"RPG_LEGACY_SAVE_PATHS" envSeparator:","`
	SQLitePath  string   `env:"RPG_SQLITE_PATH" envDefault:"rpg.db"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL     string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	LockTTL time.Duration `env:"RPG_LOCK_TTL" envDefault:"10s"`
}

// GameConfig holds gameplay switches
type GameConfig struct {
	// Seed fixes the random source; 0 seeds from the clock
	Seed       int64  `env:"RPG_SEED" envDefault:"0"`
	BattleMode string `env:"RPG_BATTLE_MODE" envDefault:"rounds"`
}

// Binary reports whether explorations use the strength clash
func (g GameConfig) Binary() bool {
	return g.BattleMode == BattleModeBinary
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	cfg.Game.BattleMode = strings.ToLower(strings.TrimSpace(cfg.Game.BattleMode))

	// Validate enumerations
	switch cfg.Storage.Backend {
	case StorageFile, StorageRedis, StorageSQLite, StorageMemory:
	default:
		return nil, fmt.Errorf("RPG_STORAGE must be one of file, redis, sqlite, memory; got %q", cfg.Storage.Backend)
	}
	switch cfg.Game.BattleMode {
	case BattleModeRounds, BattleModeBinary:
	default:
		return nil, fmt.Errorf("RPG_BATTLE_MODE must be rounds or binary; got %q", cfg.Game.BattleMode)
	}
	if cfg.Redis.LockTTL <= 0 {
		return nil, fmt.Errorf("RPG_LOCK_TTL must be positive")
	}

	var legacy []string
	for _, path := range cfg.Storage.LegacyPaths {
		if path = strings.TrimSpace(path); path != "" {
			legacy = append(legacy, path)
		}
	}
	cfg.Storage.LegacyPaths = legacy

	return cfg, nil
}
