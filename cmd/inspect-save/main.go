package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/text-rpg/internal/config"
	"github.com/KirkDiggler/text-rpg/internal/repositories/characters"
	"github.com/KirkDiggler/text-rpg/internal/services"
)

const usage = `Usage:
  inspect-save inspect <file>          report legacy shapes in a save file
  inspect-save fix <file>              rewrite a save file in the current shape
  inspect-save migrate <backend> [slot...]
                                       copy saves from RPG_STORAGE to another backend
  inspect-save delete <slot>           delete a slot from RPG_STORAGE`

func main() {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	args := os.Args[2:]

	switch os.Args[1] {
	case "inspect":
		err = inspect(args[0])
	case "fix":
		err = fix(args[0])
	case "migrate":
		err = migrate(ctx, cfg, args[0], args[1:])
	case "delete":
		err = deleteSlot(ctx, cfg, args[0])
	default:
		fmt.Println(usage)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", os.Args[1], err)
	}
}

func inspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	report, err := characters.Inspect(data)
	if err != nil {
		return err
	}

	log.Printf("Character: %s", report.Name)
	if report.Canonical() {
		log.Println("Save is already in the current shape, no fix needed")
		return nil
	}
	for _, finding := range report.Findings {
		log.Printf("  - %s", finding)
	}
	return nil
}

// fix keeps the original next to the rewritten file as <file>.bak
func fix(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	report, err := characters.Inspect(data)
	if err != nil {
		return err
	}
	if report.Canonical() {
		log.Println("Save is already in the current shape, no fix needed")
		return nil
	}

	char, err := characters.Decode(data)
	if err != nil {
		return err
	}
	fixed, err := characters.Encode(char)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path+".bak", data, 0o600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err := os.WriteFile(tmp, fixed, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	log.Printf("Fixed %d findings for %s, original kept at %s.bak", len(report.Findings), report.Name, path)
	return nil
}

func storeConfig(cfg *config.Config, backend string) *characters.StoreConfig {
	return &characters.StoreConfig{
		Backend:     backend,
		Dir:         cfg.Storage.SaveDir,
		LegacyPaths: cfg.Storage.LegacyPaths,
		SQLitePath:  cfg.Storage.SQLitePath,
		RedisURL:    cfg.Redis.URL,
		LockTTL:     cfg.Redis.LockTTL,
	}
}

func migrate(ctx context.Context, cfg *config.Config, backend string, slots []string) error {
	if backend == cfg.Storage.Backend {
		return fmt.Errorf("source and destination are both %s", backend)
	}

	src, err := characters.Open(ctx, storeConfig(cfg, cfg.Storage.Backend))
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := characters.Open(ctx, storeConfig(cfg, backend))
	if err != nil {
		return err
	}
	defer dst.Close()

	copied, err := characters.Migrate(ctx, src.Repository, dst.Repository, slots)
	log.Printf("Copied %d saves from %s to %s", copied, cfg.Storage.Backend, backend)
	return err
}

func deleteSlot(ctx context.Context, cfg *config.Config, slot string) error {
	store, err := characters.Open(ctx, storeConfig(cfg, cfg.Storage.Backend))
	if err != nil {
		return err
	}
	defer store.Close()

	provider := services.NewProvider(&services.ProviderConfig{CharacterRepository: store.Repository})
	if err := provider.CharacterService.Delete(ctx, slot); err != nil {
		return err
	}

	log.Printf("Deleted slot %s", slot)
	return nil
}
