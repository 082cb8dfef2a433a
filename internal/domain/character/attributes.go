package character

import (
	"strconv"
	"strings"

	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
)

// Attribute is a stat that can receive bonus points
type Attribute string

const (
	AttributeHealth       Attribute = "health"
	AttributeStrength     Attribute = "strength"
	AttributeIntelligence Attribute = "intelligence"
	AttributeDexterity    Attribute = "dexterity"
)

// BonusAttributes lists the allocatable attributes in menu order
var BonusAttributes = []Attribute{
	AttributeHealth,
	AttributeStrength,
	AttributeIntelligence,
	AttributeDexterity,
}

// IsValid reports whether the attribute can receive a bonus point
func (a Attribute) IsValid() bool {
	for _, valid := range BonusAttributes {
		if a == valid {
			return true
		}
	}
	return false
}

// ParseAttribute accepts a 1-based menu number or an attribute name
func ParseAttribute(choice string) (Attribute, error) {
	choice = strings.ToLower(strings.TrimSpace(choice))

	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(BonusAttributes) {
			return BonusAttributes[n-1], nil
		}
		return "", dnderr.InvalidChoicef("choose an attribute between 1 and %d", len(BonusAttributes)).
			WithMeta("choice", choice)
	}

	attr := Attribute(choice)
	if !attr.IsValid() {
		return "", dnderr.InvalidChoicef("unknown attribute %q", choice).
			WithMeta("choice", choice)
	}
	return attr, nil
}
