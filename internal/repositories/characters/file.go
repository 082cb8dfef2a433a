package characters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
)

const (
	saveExt  = ".json"
	lockExt  = ".lock"
	tempGlob = ".*.tmp"

	// DefaultStaleLockAge is how old a leftover lock file must be before it is
	// considered abandoned by a crashed process
	DefaultStaleLockAge = 30 * time.Second
)

// FileRepoConfig holds configuration for the file repository
type FileRepoConfig struct {
	// Dir holds one <slot>.json file per save
	Dir string

	// LegacyPaths are extra file names, relative to Dir unless absolute,
	// tried in order when the slot file does not exist
	LegacyPaths []string

	StaleLockAge time.Duration
}

// fileRepo stores each slot as an indented JSON file, replaced atomically
type fileRepo struct {
	mu           sync.Mutex
	dir          string
	legacyPaths  []string
	staleLockAge time.Duration
}

// NewFileRepository creates a new file-backed character repository
func NewFileRepository(cfg *FileRepoConfig) Repository {
	if cfg == nil {
		panic("FileRepoConfig cannot be nil")
	}

	dir := cfg.Dir
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}

	staleLockAge := cfg.StaleLockAge
	if staleLockAge <= 0 {
		staleLockAge = DefaultStaleLockAge
	}

	return &fileRepo{
		dir:          filepath.Clean(dir),
		legacyPaths:  append([]string(nil), cfg.LegacyPaths...),
		staleLockAge: staleLockAge,
	}
}

func (r *fileRepo) path(slot string) string {
	return filepath.Join(r.dir, slot+saveExt)
}

func (r *fileRepo) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.dir, path)
}

// Load implements Repository
func (r *fileRepo) Load(ctx context.Context, slot string) (*character.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	candidates := append([]string{r.path(slot)}, r.legacyPaths...)
	for i, candidate := range candidates {
		path := r.resolve(candidate)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read save file %s: %w", path, err)
		}

		if i > 0 {
			log.Printf("Loading slot %s from legacy save file %s", slot, path)
		}
		char, err := Decode(data)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to load save file %s", path).WithMeta("slot", slot)
		}
		return char, nil
	}

	return nil, dnderr.MissingSaveFilef("no save file for slot %s", slot).WithMeta("slot", slot)
}

// Save implements Repository
func (r *fileRepo) Save(ctx context.Context, slot string, char *character.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	data, err := Encode(char)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	unlock, err := r.lock(slot)
	if err != nil {
		return err
	}
	defer unlock()

	return r.writeAtomic(slot, data)
}

// lock takes the cross-process lock file of a slot for the duration of one save
func (r *fileRepo) lock(slot string) (func(), error) {
	path := r.path(slot) + lockExt

	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			_, _ = fmt.Fprintf(f, "%d\n", os.Getpid())
			_ = f.Close()
			return func() {
				if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
					log.Printf("Failed to release save lock %s: %v", path, err)
				}
			}, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("failed to create save lock: %w", err)
		}

		info, statErr := os.Stat(path)
		if statErr != nil || time.Since(info.ModTime()) < r.staleLockAge {
			break
		}
		log.Printf("Removing stale save lock %s", path)
		_ = os.Remove(path)
	}

	return nil, dnderr.Internalf("slot %s is being saved by another process", slot).WithMeta("slot", slot)
}

// writeAtomic replaces the slot file through a temp file and rename
func (r *fileRepo) writeAtomic(slot string, data []byte) error {
	tmp, err := os.CreateTemp(r.dir, slot+tempGlob)
	if err != nil {
		return fmt.Errorf("failed to create temp save file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save file: %w", err)
	}

	if err := os.Rename(tmpName, r.path(slot)); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

// Delete implements Repository
func (r *fileRepo) Delete(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return dnderr.MissingSaveFilef("no save file for slot %s", slot).WithMeta("slot", slot)
	}
	if err != nil {
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}

// ListSlots implements Repository
func (r *fileRepo) ListSlots(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list save directory: %w", err)
	}

	slots := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, saveExt) {
			continue
		}
		slot := strings.TrimSuffix(name, saveExt)
		if ValidateSlot(slot) != nil {
			continue
		}
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	return slots, nil
}
