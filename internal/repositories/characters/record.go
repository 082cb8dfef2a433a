package characters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/domain/item"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
)

// Record is the canonical stored shape of a character.
// Field order and key names follow the historical save file.
type Record struct {
	Name               string             `json:"name"`
	Health             int                `json:"health"`
	Strength           int                `json:"strength"`
	Intelligence       int                `json:"intelligence"`
	Dexterity          int                `json:"dexterity"`
	Level              int                `json:"level"`
	Exp                int                `json:"exp"`
	BonusPoints        int                `json:"bonus_points"`
	CurrentWeapon      *item.WeaponRecord `json:"current_weapon"`
	CurrentWeaponIndex *int               `json:"current_weapon_index,omitempty"`
	Inventory          []json.RawMessage  `json:"inventory"`
}

// looseRecord accepts every historical save: absent keys stay nil
type looseRecord struct {
	Name               *string           `json:"name"`
	Health             *int              `json:"health"`
	Strength           *int              `json:"strength"`
	Intelligence       *int              `json:"intelligence"`
	Dexterity          *int              `json:"dexterity"`
	Level              *int              `json:"level"`
	Exp                *int              `json:"exp"`
	BonusPoints        *int              `json:"bonus_points"`
	CurrentWeapon      json.RawMessage   `json:"current_weapon"`
	CurrentWeaponIndex *int              `json:"current_weapon_index"`
	Inventory          []json.RawMessage `json:"inventory"`
}

// ToRecord captures a character in its stored shape
func ToRecord(char *character.Character) (*Record, error) {
	if char == nil {
		return nil, dnderr.InvalidArgument("character cannot be nil")
	}

	rec := &Record{
		Name:         char.Name(),
		Health:       char.Health,
		Strength:     char.Strength,
		Intelligence: char.Intelligence,
		Dexterity:    char.Dexterity,
		Level:        char.Level,
		Exp:          char.Exp,
		BonusPoints:  char.BonusPoints,
		Inventory:    make([]json.RawMessage, 0, char.InventorySize()),
	}

	for i, it := range char.Inventory() {
		raw, err := item.ToRecord(it)
		if err != nil {
			return nil, fmt.Errorf("failed to store inventory entry %d: %w", i, err)
		}
		rec.Inventory = append(rec.Inventory, raw)
	}

	if index, ok := char.EquippedIndex(); ok {
		rec.CurrentWeapon = item.ToWeaponRecord(char.EquippedWeapon())
		rec.CurrentWeaponIndex = &index
	}

	return rec, nil
}

// Encode serializes a character as an indented save document
func Encode(char *character.Character) ([]byte, error) {
	rec, err := ToRecord(char)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal character: %w", err)
	}
	return data, nil
}

// Decode reconstructs a character from any historical save document.
// Undecodable documents fail with MalformedSaveData.
func Decode(data []byte) (*character.Character, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, dnderr.MalformedSaveData(nil, "save data is empty")
	}

	var rec looseRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, dnderr.MalformedSaveData(err, "failed to unmarshal save data")
	}
	if rec.Name == nil || strings.TrimSpace(*rec.Name) == "" {
		return nil, dnderr.MalformedSaveData(nil, "save data has no character name")
	}

	char := character.New(*rec.Name)
	setInt(&char.Health, rec.Health)
	setInt(&char.Strength, rec.Strength)
	setInt(&char.Intelligence, rec.Intelligence)
	setInt(&char.Dexterity, rec.Dexterity)
	setInt(&char.Level, rec.Level)
	setInt(&char.Exp, rec.Exp)
	setInt(&char.BonusPoints, rec.BonusPoints)

	for i, raw := range rec.Inventory {
		it, err := item.FromRecord(raw)
		if err != nil {
			log.Printf("Skipping unreadable inventory entry %d of %s: %v", i, char.Name(), err)
			continue
		}
		char.AddItem(it)
	}

	if err := restoreEquipped(char, rec.CurrentWeapon, rec.CurrentWeaponIndex); err != nil {
		return nil, err
	}

	return char, nil
}

// restoreEquipped points the equipped slot back at an inventory entry.
// Older saves stored a detached copy of the weapon, so the index hint is tried
// first, then a name and damage match, and as a last resort the weapon is
// added to the inventory.
func restoreEquipped(char *character.Character, raw json.RawMessage, hint *int) error {
	weapon, err := item.WeaponFromRecord(raw)
	if err != nil {
		log.Printf("Ignoring unreadable current weapon of %s: %v", char.Name(), err)
		return nil
	}
	if weapon == nil {
		return nil
	}

	inventory := char.Inventory()
	if hint != nil && *hint >= 0 && *hint < len(inventory) {
		if candidate, ok := inventory[*hint].(*item.Weapon); ok && candidate.Equal(weapon) {
			_, err := char.EquipAt(*hint)
			return err
		}
	}

	for i, it := range inventory {
		candidate, ok := it.(*item.Weapon)
		if ok && item.NameMatches(candidate, weapon.Name) && candidate.Damage == weapon.Damage {
			_, err := char.EquipAt(i)
			return err
		}
	}

	log.Printf("Current weapon %s of %s is not in the inventory, adding it", weapon.Name, char.Name())
	char.AddItem(weapon)
	_, err = char.EquipAt(char.InventorySize() - 1)
	return err
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
