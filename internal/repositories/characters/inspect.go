package characters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/KirkDiggler/text-rpg/internal/domain/item"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
)

var canonicalKeys = []string{
	"name", "health", "strength", "intelligence", "dexterity",
	"level", "exp", "bonus_points", "current_weapon", "inventory",
}

// Report lists the legacy shapes found in a save document
type Report struct {
	Name     string
	Findings []string
}

// Canonical reports whether the document already has the current shape
func (r *Report) Canonical() bool {
	return len(r.Findings) == 0
}

// Inspect examines a raw save document without changing it
func Inspect(data []byte) (*Report, error) {
	char, err := Decode(data)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, dnderr.MalformedSaveData(err, "failed to unmarshal save data")
	}

	report := &Report{Name: char.Name()}
	add := func(format string, args ...any) {
		report.Findings = append(report.Findings, fmt.Sprintf(format, args...))
	}

	if !bytes.Contains(bytes.TrimSpace(data), []byte("\n")) {
		add("document is not indented")
	}

	for _, key := range canonicalKeys {
		if _, ok := fields[key]; !ok {
			add("missing key %q", key)
		}
	}

	known := map[string]bool{"current_weapon_index": true}
	for _, key := range canonicalKeys {
		known[key] = true
	}
	var unknown []string
	for key := range fields {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		add("unknown key %q is ignored", key)
	}

	var inventory []json.RawMessage
	if raw, ok := fields["inventory"]; ok {
		_ = json.Unmarshal(raw, &inventory)
	}
	for i, raw := range inventory {
		inspectEntry(i, bytes.TrimSpace(raw), add)
	}

	if raw, ok := fields["current_weapon"]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		if _, hasHint := fields["current_weapon_index"]; !hasHint {
			add("current weapon has no inventory index")
		}
	}

	return report, nil
}

func inspectEntry(i int, raw []byte, add func(string, ...any)) {
	if len(raw) == 0 {
		return
	}

	switch raw[0] {
	case '"':
		it, _ := item.FromRecord(raw)
		if it != nil && it.GetItemType() != item.TypeGeneric {
			add("inventory[%d] is a plain string upgraded to %s", i, it.GetItemType())
		}
		return
	case 'n':
		add("inventory[%d] is null", i)
		return
	case '{':
	default:
		if _, err := item.FromRecord(raw); err != nil {
			add("inventory[%d] is unreadable and dropped: %v", i, err)
			return
		}
		add("inventory[%d] is a bare number", i)
		return
	}

	if _, err := item.FromRecord(raw); err != nil {
		add("inventory[%d] is unreadable and dropped: %v", i, err)
		return
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return
	}
	if _, camel := fields["damageRange"]; camel {
		add("inventory[%d] uses the damageRange key", i)
	}
	t, typed := fields["type"]
	if typed {
		var typ string
		_ = json.Unmarshal(t, &typ)
		if typ == "gold" || typ == "coins" || typ == "potion" {
			add("inventory[%d] uses the legacy type %q", i, typ)
		}
	}
	if _, amount := fields["amount"]; amount && !typed {
		add("inventory[%d] is an untyped coin record", i)
	}
}

// Migrate copies every listed slot from src to dst in the canonical shape.
// An empty slot list copies everything src holds.
func Migrate(ctx context.Context, src, dst Repository, slots []string) (int, error) {
	if len(slots) == 0 {
		var err error
		slots, err = src.ListSlots(ctx)
		if err != nil {
			return 0, err
		}
	}

	copied := 0
	for _, slot := range slots {
		char, err := src.Load(ctx, slot)
		if err != nil {
			return copied, dnderr.Wrapf(err, "failed to load slot %s", slot)
		}
		if err := dst.Save(ctx, slot, char); err != nil {
			return copied, dnderr.Wrapf(err, "failed to save slot %s", slot)
		}
		copied++
	}
	return copied, nil
}
