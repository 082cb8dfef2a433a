package characters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS saves (
  slot TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);`

// SQLiteRepository persists save records in a single SQLite table
type SQLiteRepository struct {
	sqlDB *sql.DB
}

// OpenSQLite opens (creating if needed) a SQLite save store
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Serializes writers so each save is exclusive
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle
func (s *SQLiteRepository) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load implements Repository
func (s *SQLiteRepository) Load(ctx context.Context, slot string) (*character.Character, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	var payload string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT payload FROM saves WHERE slot = ?`, slot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dnderr.MissingSaveFilef("no save for slot %s", slot).WithMeta("slot", slot)
	}
	if err != nil {
		return nil, fmt.Errorf("query save: %w", err)
	}

	char, err := Decode([]byte(payload))
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load slot %s", slot).WithMeta("slot", slot)
	}
	return char, nil
}

// Save implements Repository
func (s *SQLiteRepository) Save(ctx context.Context, slot string, char *character.Character) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	data, err := Encode(char)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO saves(slot, payload, updated_at)
		 VALUES(?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
		   payload=excluded.payload,
		   updated_at=excluded.updated_at`,
		slot,
		string(data),
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert save: %w", err)
	}
	return nil
}

// Delete implements Repository
func (s *SQLiteRepository) Delete(ctx context.Context, slot string) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("delete save: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete save: %w", err)
	}
	if n == 0 {
		return dnderr.MissingSaveFilef("no save for slot %s", slot).WithMeta("slot", slot)
	}
	return nil
}

// ListSlots implements Repository
func (s *SQLiteRepository) ListSlots(ctx context.Context) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT slot FROM saves ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	slots := []string{}
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scan save slot: %w", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	return slots, nil
}
