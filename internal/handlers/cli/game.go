package cli

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/domain/game/combat"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
	characterService "github.com/KirkDiggler/text-rpg/internal/services/character"
	"github.com/KirkDiggler/text-rpg/internal/services/encounter"
)

const (
	// maxNameAttempts bounds the character name prompt
	maxNameAttempts = 5

	// maxInvalidChoices bounds rejected bonus point choices in a row
	maxInvalidChoices = 5
)

// Game runs one terminal session: load or create, then the main menu
type Game struct {
	characterService characterService.Service
	encounterService encounter.Service
	shell            *Shell
	slot             string
	binary           bool

	char *character.Character
}

// GameConfig holds configuration for the game
type GameConfig struct {
	CharacterService characterService.Service // Required
	EncounterService encounter.Service        // Required
	Shell            *Shell                   // Required
	Slot             string
	Binary           bool // settle explorations with the strength clash
}

// NewGame creates a new game session
func NewGame(cfg *GameConfig) *Game {
	if cfg == nil {
		panic("GameConfig cannot be nil")
	}
	if cfg.CharacterService == nil || cfg.EncounterService == nil || cfg.Shell == nil {
		panic("character service, encounter service and shell are required")
	}

	return &Game{
		characterService: cfg.CharacterService,
		encounterService: cfg.EncounterService,
		shell:            cfg.Shell,
		slot:             cfg.Slot,
		binary:           cfg.Binary,
	}
}

// Character returns the character being played, nil before Run starts it
func (g *Game) Character() *character.Character {
	return g.char
}

// Run plays until the player quits, the character falls or input ends.
// Every exit path saves the character.
func (g *Game) Run(ctx context.Context) error {
	g.shell.Println("Welcome to the Text-based RPG!")

	if err := g.start(ctx); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	for {
		g.shell.PrintCharacter(g.char.Snapshot())
		choice, err := g.shell.Prompt(ctx, "Do you want to (E)xplore, (I)nventory, (A)llocate bonus points, (S)aves, or (Q)uit? ")
		if err != nil {
			g.quit(context.WithoutCancel(ctx))
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch strings.ToLower(choice) {
		case "e", "explore":
			done, err := g.explore(ctx)
			if err != nil || done {
				g.quit(context.WithoutCancel(ctx))
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		case "i", "inventory":
			if err := g.inventory(ctx); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
		case "a", "allocate":
			if err := g.allocate(ctx); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
		case "s", "saves":
			g.listSaves(ctx)
		case "q", "quit":
			g.quit(ctx)
			return nil
		default:
			g.shell.Println("Invalid choice. Try again.")
		}
	}
}

// start loads the saved character or creates a new one
func (g *Game) start(ctx context.Context) error {
	loaded, err := g.characterService.Load(ctx, &characterService.LoadInput{Slot: g.slot})
	if err != nil {
		return err
	}
	if loaded.Found {
		g.char = loaded.Character
		g.shell.Printf("Welcome back, %s!\n", g.char.Name())
		return nil
	}

	g.shell.Println("No character found. Let's create a new one.")
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name, err := g.shell.Prompt(ctx, "Enter your character's name: ")
		if err != nil {
			return err
		}

		created, err := g.characterService.Create(ctx, &characterService.CreateInput{Name: name, Slot: g.slot})
		if dnderr.IsInvalidArgument(err) {
			g.shell.Println("Your character needs a name.")
			continue
		}
		if err != nil {
			return err
		}

		g.char = created.Character
		if created.SaveErr != nil {
			g.shell.Printf("Could not save your new character: %v\n", created.SaveErr)
		}
		return nil
	}

	return dnderr.InvalidArgumentf("no character name after %d attempts", maxNameAttempts)
}

// explore reports done when the session should end
func (g *Game) explore(ctx context.Context) (bool, error) {
	outcome, err := g.encounterService.Explore(ctx, g.char, g.shell, g.binary)
	g.shell.PrintOutcome(outcome)
	if err != nil {
		return true, err
	}

	switch {
	case outcome.Status == combat.StatusDefeat:
		// A lost strength clash costs no health, so play goes on
		return g.char.IsDefeated(), nil
	case outcome.Victory():
		// Victories are milestones
		if err := g.characterService.Save(ctx, &characterService.SaveInput{Slot: g.slot, Character: g.char}); err != nil {
			log.Printf("Failed to save after victory: %v", err)
			g.shell.Printf("Could not save progress: %v\n", err)
		}
	}
	return false, nil
}

// inventory lists items and equips a weapon chosen by name or number
func (g *Game) inventory(ctx context.Context) error {
	g.shell.PrintInventory(g.char.Snapshot())

	choice, err := g.shell.Prompt(ctx, "Type the name or number of the weapon to equip or 'Q' to go back: ")
	if err != nil {
		return err
	}
	if choice == "" || strings.EqualFold(choice, "q") {
		return nil
	}

	input := &characterService.EquipInput{Character: g.char, Name: choice}
	if n, convErr := strconv.Atoi(choice); convErr == nil {
		index := n - 1
		input.Index = &index
	}

	weapon, err := g.characterService.Equip(ctx, input)
	switch {
	case err == nil:
		g.shell.Printf("You equipped %s.\n", weapon.Name)
	case dnderr.IsItemNotFound(err):
		g.shell.Println("Weapon not found in inventory.")
	case dnderr.IsItemNotEquippable(err):
		g.shell.Println("That item cannot be equipped.")
	default:
		return err
	}
	return nil
}

// allocate spends banked bonus points
func (g *Game) allocate(ctx context.Context) error {
	if g.char.BonusPoints == 0 {
		g.shell.Println("You have no bonus points to allocate.")
		return nil
	}

	invalid := 0
	for g.char.BonusPoints > 0 && invalid < maxInvalidChoices {
		attr, err := g.shell.ChooseAttribute(ctx, g.char.Snapshot())
		if err == nil {
			err = g.characterService.AllocateBonusPoint(ctx, &characterService.AllocateInput{
				Character: g.char,
				Attribute: attr,
			})
		}
		if err == nil {
			g.shell.Printf("You allocated a bonus point to %s.\n", attr)
			invalid = 0
			continue
		}
		if !dnderr.IsInvalidChoice(err) {
			return err
		}
		invalid++
	}
	return nil
}

func (g *Game) listSaves(ctx context.Context) {
	summaries, err := g.characterService.ListSaves(ctx)
	if err != nil {
		g.shell.Printf("Could not list saves: %v\n", err)
		return
	}
	if len(summaries) == 0 {
		g.shell.Println("No saves yet.")
		return
	}

	g.shell.Println("Saves:")
	for _, summary := range summaries {
		if summary.Err != nil {
			g.shell.Printf("  %s: unreadable (%v)\n", summary.Slot, summary.Err)
			continue
		}
		g.shell.Printf("  %s: %s, level %d, health %d\n", summary.Slot, summary.Name, summary.Level, summary.Health)
	}
}

func (g *Game) quit(ctx context.Context) {
	g.shell.Println("Saving progress and exiting the game. Goodbye!")
	output := g.characterService.Quit(ctx, &characterService.SaveInput{Slot: g.slot, Character: g.char})
	if !output.Saved {
		g.shell.Printf("Failed to save progress: %v\n", output.SaveErr)
	}
}
