package characters

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store backends accepted by Open
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// StoreConfig describes which save store to open
type StoreConfig struct {
	Backend     string
	Dir         string
	LegacyPaths []string
	SQLitePath  string
	RedisURL    string
	LockTTL     time.Duration
}

// Store is an opened repository plus whatever connection it holds
type Store struct {
	Repository Repository
	close      func() error
}

// Close releases the store's connection, if any
func (s *Store) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects the configured backend. A Redis server that does not answer
// is an error rather than a silent fallback, since saves would be lost.
func Open(ctx context.Context, cfg *StoreConfig) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("store config is required")
	}

	switch cfg.Backend {
	case BackendFile, "":
		log.Printf("Using save directory %s", cfg.Dir)
		return &Store{Repository: NewFileRepository(&FileRepoConfig{
			Dir:         cfg.Dir,
			LegacyPaths: cfg.LegacyPaths,
		})}, nil

	case BackendMemory:
		log.Println("Using in-memory saves, progress is lost on exit")
		return &Store{Repository: NewInMemoryRepository()}, nil

	case BackendSQLite:
		repo, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Printf("Using SQLite saves at %s", cfg.SQLitePath)
		return &Store{Repository: repo, close: repo.Close}, nil

	case BackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		client := redis.NewClient(opts)

		// Test connection
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Println("Successfully connected to Redis")

		return &Store{
			Repository: NewRedisRepository(&RedisRepoConfig{
				Client:  client,
				LockTTL: cfg.LockTTL,
			}),
			close: client.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}
