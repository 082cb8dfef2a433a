package item

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotWeapon is returned by WeaponFromRecord for records of another variant
var ErrNotWeapon = errors.New("record is not a weapon")

// WeaponRecord is the stored shape of a weapon
type WeaponRecord struct {
	Name              string   `json:"name"`
	DamageRange       []int    `json:"damage_range"`
	Durability        *int     `json:"durability,omitempty"`
	CriticalHitChance *float64 `json:"critical_hit_chance,omitempty"`
	SpecialEffects    []string `json:"special_effects,omitempty"`
}

// envelope is the stored shape of the small non-weapon records
type envelope struct {
	Type   string `json:"type,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Name   string `json:"name,omitempty"`
	Amount *int   `json:"amount,omitempty"`
	Heal   []int  `json:"heal,omitempty"`
}

// ToRecord converts an item to its minimal stored shape.
// Weapons become weapon records, generic items plain strings, currency and
// consumables small typed records.
func ToRecord(it Item) (json.RawMessage, error) {
	var shape any
	switch v := it.(type) {
	case *Weapon:
		shape = ToWeaponRecord(v)
	case *Consumable:
		shape = envelope{
			Type: string(TypeConsumable),
			Kind: string(v.Kind),
			Name: v.Name,
			Heal: []int{v.Heal.Min, v.Heal.Max},
		}
	case *Currency:
		amount := v.Amount
		shape = envelope{
			Type:   string(TypeCurrency),
			Name:   v.Name,
			Amount: &amount,
		}
	case *Generic:
		shape = v.Name
	case nil:
		return nil, errors.New("cannot store a nil item")
	default:
		return nil, fmt.Errorf("unknown item type %T", it)
	}

	data, err := json.Marshal(shape)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}
	return data, nil
}

// ToWeaponRecord converts a weapon to its stored shape
func ToWeaponRecord(w *Weapon) *WeaponRecord {
	if w == nil {
		return nil
	}

	rec := &WeaponRecord{
		Name:        w.Name,
		DamageRange: []int{w.Damage.Min, w.Damage.Max},
	}
	if w.IsBreakable() {
		durability := w.Durability
		rec.Durability = &durability
	}
	if w.CriticalChance > 0 {
		chance := w.CriticalChance
		rec.CriticalHitChance = &chance
	}
	if len(w.SpecialEffects) > 0 {
		rec.SpecialEffects = append([]string(nil), w.SpecialEffects...)
	}
	return rec
}

// FromRecord reconstructs an item from any historically stored shape.
//
// A record is a weapon iff it carries both a name and a damage range, and a
// coin stack iff it carries an amount. Strings and bare numbers from older
// saves are accepted, and unknown extra fields are ignored. A bare number is
// written back as a typed currency record. A JSON null yields (nil, nil).
func FromRecord(raw json.RawMessage) (Item, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '"':
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item name: %w", err)
		}
		return fromLegacyString(name), nil
	case '{':
		return fromObject(trimmed)
	case '[', 't', 'f':
		return nil, fmt.Errorf("unsupported item record %s", string(trimmed))
	default:
		var amount int
		if err := json.Unmarshal(trimmed, &amount); err != nil {
			return nil, fmt.Errorf("failed to unmarshal currency amount: %w", err)
		}
		return NewGold(amount), nil
	}
}

// WeaponFromRecord decodes a record that must be a weapon
func WeaponFromRecord(raw json.RawMessage) (*Weapon, error) {
	it, err := FromRecord(raw)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	w, ok := it.(*Weapon)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotWeapon, it.GetItemType())
	}
	return w, nil
}

// fromLegacyString handles saves that stored non-weapon loot as plain names
func fromLegacyString(name string) Item {
	if strings.EqualFold(strings.TrimSpace(name), HealthPotionName) {
		return NewHealthPotion()
	}
	return NewGeneric(name)
}

func fromObject(data []byte) (Item, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item record: %w", err)
	}

	if isWeaponRecord(fields) {
		return weaponFromFields(fields)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item record: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(env.Type)) {
	case string(TypeConsumable), "potion":
		return consumableFromEnvelope(env), nil
	case string(TypeCurrency), "gold", "coins":
		name := env.Name
		if name == "" {
			name = DefaultCurrencyName
		}
		amount := 0
		if env.Amount != nil {
			amount = max(*env.Amount, 0)
		}
		return &Currency{Name: name, Amount: amount}, nil
	}

	name := env.Name
	if name == "" {
		name = env.Type
	}

	// {name, amount} records from older saves are coin stacks
	if env.Amount != nil {
		if name == "" {
			name = DefaultCurrencyName
		}
		return &Currency{Name: name, Amount: max(*env.Amount, 0)}, nil
	}

	if name != "" {
		return fromLegacyString(name), nil
	}
	return nil, fmt.Errorf("item record has neither name nor type: %s", string(data))
}

func isWeaponRecord(fields map[string]json.RawMessage) bool {
	if _, ok := fields["name"]; !ok {
		return false
	}
	_, snake := fields["damage_range"]
	_, camel := fields["damageRange"]
	return snake || camel
}

func weaponFromFields(fields map[string]json.RawMessage) (*Weapon, error) {
	var name string
	if err := json.Unmarshal(fields["name"], &name); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weapon name: %w", err)
	}

	rangeRaw, ok := fields["damage_range"]
	if !ok {
		rangeRaw = fields["damageRange"]
	}
	var bounds []int
	if err := json.Unmarshal(rangeRaw, &bounds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal damage range of %q: %w", name, err)
	}
	if len(bounds) != 2 {
		return nil, fmt.Errorf("damage range of %q must have 2 values, got %d", name, len(bounds))
	}

	w := NewWeapon(name, bounds[0], bounds[1])

	if raw, ok := fields["durability"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &w.Durability); err != nil {
			return nil, fmt.Errorf("failed to unmarshal durability of %q: %w", name, err)
		}
		if w.Durability < 0 {
			w.Durability = UnlimitedDurability
		}
	}
	if raw, ok := fields["critical_hit_chance"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &w.CriticalChance); err != nil {
			return nil, fmt.Errorf("failed to unmarshal critical chance of %q: %w", name, err)
		}
		w.CriticalChance = clampProbability(w.CriticalChance)
	}
	if raw, ok := fields["special_effects"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &w.SpecialEffects); err != nil {
			return nil, fmt.Errorf("failed to unmarshal special effects of %q: %w", name, err)
		}
		if len(w.SpecialEffects) == 0 {
			w.SpecialEffects = nil
		}
	}

	return w, nil
}

func consumableFromEnvelope(env envelope) *Consumable {
	c := &Consumable{
		Kind: ConsumableKind(env.Kind),
		Name: env.Name,
	}
	if c.Kind == "" && strings.EqualFold(c.Name, HealthPotionName) {
		c.Kind = ConsumableHealthPotion
	}
	if c.Kind == ConsumableHealthPotion {
		defaults := NewHealthPotion()
		if c.Name == "" {
			c.Name = defaults.Name
		}
		c.Heal = defaults.Heal
	}
	if len(env.Heal) == 2 {
		c.Heal = NewRange(env.Heal[0], env.Heal[1])
	}
	if c.Name == "" {
		c.Name = string(c.Kind)
	}
	return c
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func clampProbability(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
