package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/text-rpg/internal/config"
	"github.com/KirkDiggler/text-rpg/internal/dice"
	"github.com/KirkDiggler/text-rpg/internal/handlers/cli"
	"github.com/KirkDiggler/text-rpg/internal/repositories/characters"
	"github.com/KirkDiggler/text-rpg/internal/services"
	"github.com/KirkDiggler/text-rpg/internal/uuid"
)

func main() {
	// Diagnostics go to stderr so they never interleave with the game text
	log.SetOutput(os.Stderr)

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := characters.Open(ctx, &characters.StoreConfig{
		Backend:     cfg.Storage.Backend,
		Dir:         cfg.Storage.SaveDir,
		LegacyPaths: cfg.Storage.LegacyPaths,
		SQLitePath:  cfg.Storage.SQLitePath,
		RedisURL:    cfg.Redis.URL,
		LockTTL:     cfg.Redis.LockTTL,
	})
	if err != nil {
		log.Fatalf("Failed to open save store: %v", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Printf("Error closing save store: %v", closeErr)
		}
	}()

	providerConfig := &services.ProviderConfig{
		CharacterRepository: store.Repository,
		Slot:                cfg.Storage.Slot,
	}
	if cfg.Game.Seed != 0 {
		log.Printf("Using fixed seed %d", cfg.Game.Seed)
		providerConfig.Roller = dice.NewSeededRoller(cfg.Game.Seed)
		providerConfig.UUIDGenerator = uuid.NewSequenceGenerator("enc")
	}
	provider := services.NewProvider(providerConfig)

	game := cli.NewGame(&cli.GameConfig{
		CharacterService: provider.CharacterService,
		EncounterService: provider.EncounterService,
		Shell:            cli.NewShell(os.Stdin, os.Stdout),
		Slot:             cfg.Storage.Slot,
		Binary:           cfg.Game.Binary(),
	})

	if err := game.Run(ctx); err != nil {
		log.Printf("Game ended with error: %v", err)
		_ = store.Close()
		stop()
		os.Exit(1)
	}
}
