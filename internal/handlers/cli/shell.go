package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/domain/game/combat"
	"github.com/KirkDiggler/text-rpg/internal/services/encounter"
)

// Shell reads player input line by line and renders game state as text.
// It is the encounter.Chooser of a terminal session.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer

	// events of the current encounter already printed
	encounterID string
	shown       int
}

var _ encounter.Chooser = (*Shell)(nil)

// NewShell creates a shell over the given input and output
func NewShell(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Printf writes formatted text
func (s *Shell) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// Println writes a line
func (s *Shell) Println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

// Prompt prints the question and returns the trimmed answer.
// It returns io.EOF when the input is exhausted.
func (s *Shell) Prompt(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.Printf("%s", question)
	if !s.in.Scan() {
		s.Println("")
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// ChooseAction implements encounter.Chooser
func (s *Shell) ChooseAction(ctx context.Context, view *encounter.RoundView) (combat.Action, error) {
	s.showEvents(view.EncounterID, view.Events)

	s.Printf("\nRound %d | Enemy health: %d/%d | Your health: %d\n",
		view.Round, view.EnemyHealth, view.EnemyMaxHealth, view.Character.Health)
	if view.Character.EquippedWeapon != nil {
		s.Printf("Wielding: %s\n", view.Character.EquippedWeapon.Description)
	}

	question := "Do you want to (A)ttack, (U)se a potion, or (F)lee? "
	if !view.HasPotion {
		question = "Do you want to (A)ttack, (U)se a potion (you have none), or (F)lee? "
	}
	answer, err := s.Prompt(ctx, question)
	if err != nil {
		return "", err
	}

	action, err := combat.ParseAction(answer)
	if err != nil {
		s.Println("Invalid choice. Try again.")
		return "", err
	}
	return action, nil
}

// ChooseAttribute implements encounter.Chooser
func (s *Shell) ChooseAttribute(ctx context.Context, snapshot character.Snapshot) (character.Attribute, error) {
	s.Printf("You have %d bonus points to allocate.\n", snapshot.BonusPoints)
	for i, attr := range character.BonusAttributes {
		s.Printf("%d. %s\n", i+1, titleCase(string(attr)))
	}

	answer, err := s.Prompt(ctx, fmt.Sprintf("Choose an attribute to allocate a bonus point (1-%d): ", len(character.BonusAttributes)))
	if err != nil {
		return "", err
	}

	attr, err := character.ParseAttribute(answer)
	if err != nil {
		s.Println("Invalid choice. Try again.")
		return "", err
	}
	return attr, nil
}

// showEvents prints encounter events, remembering how many were shown so the
// final outcome only prints the rest
func (s *Shell) showEvents(encounterID string, events []combat.Event) {
	if encounterID != s.encounterID {
		s.encounterID = encounterID
		s.shown = 0
	}
	for _, ev := range events {
		s.Println(ev.Message)
	}
	s.shown += len(events)
}

// PrintOutcome narrates what happened after the last prompt
func (s *Shell) PrintOutcome(outcome *encounter.Outcome) {
	if outcome == nil {
		return
	}
	if !outcome.Found {
		s.Println("The area seems peaceful. You found nothing.")
		return
	}

	events := outcome.Events
	if outcome.Encounter != nil {
		if outcome.Encounter.ID == s.encounterID && s.shown <= len(events) {
			events = events[s.shown:]
		}
		s.encounterID = outcome.Encounter.ID
		s.shown = len(outcome.Events)
	}
	for _, ev := range events {
		s.Println(ev.Message)
	}

	switch outcome.Status {
	case combat.StatusDefeat:
		s.Println("Game Over.")
	case combat.StatusEscaped:
		s.Println("You live to fight another day.")
	}
}

// PrintCharacter shows the character sheet
func (s *Shell) PrintCharacter(snap character.Snapshot) {
	s.Println("\n----- Character Info -----")
	s.Printf("Name: %s\n", snap.Name)
	s.Printf("Level: %d\n", snap.Level)
	s.Printf("Health: %d\n", snap.Health)
	s.Printf("Strength: %d\n", snap.Strength)
	s.Printf("Intelligence: %d\n", snap.Intelligence)
	s.Printf("Dexterity: %d\n", snap.Dexterity)
	s.Printf("Experience: %d\n", snap.Exp)
	s.Printf("Bonus Points: %d\n", snap.BonusPoints)
	if snap.EquippedWeapon != nil {
		s.Printf("Current Weapon: %s\n", snap.EquippedWeapon.Description)
	} else {
		s.Println("Current Weapon: None")
	}
	s.printItems(snap)
	s.Println("-------------------------")
}

// PrintInventory lists the inventory with menu numbers
func (s *Shell) PrintInventory(snap character.Snapshot) {
	s.printItems(snap)
}

func (s *Shell) printItems(snap character.Snapshot) {
	s.Println("Inventory:")
	if len(snap.Inventory) == 0 {
		s.Println("  (empty)")
		return
	}
	for _, view := range snap.Inventory {
		marker := ""
		if view.Equipped {
			marker = " (equipped)"
		}
		s.Printf("  %d. %s%s\n", view.Index+1, view.Description, marker)
	}
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
