// Package gacha holds the data model of the doodle progression game: catalog
// entries, owned doodles, equipment slots and the progression aggregate.
package gacha

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Rarity is the tier a summon roll lands on
type Rarity int

// Rarity tiers in ascending order of value
const (
	RarityUnspecified Rarity = iota
	RarityCommon
	RarityRare
	RarityLegendary
)

// Rarities lists every valid tier in ascending order
var Rarities = []Rarity{RarityCommon, RarityRare, RarityLegendary}

// String returns the display name used in saves and the catalog file
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityLegendary:
		return "Legendary"
	default:
		return "Unspecified"
	}
}

// Valid reports whether r is one of the three tiers
func (r Rarity) Valid() bool {
	return r >= RarityCommon && r <= RarityLegendary
}

// ParseRarity converts a tier name (case insensitive) to a Rarity
func ParseRarity(s string) (Rarity, error) {
	for _, r := range Rarities {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return RarityUnspecified, fmt.Errorf("unknown rarity %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MonsterTemplate is an immutable catalog entry a doodle is rolled from
type MonsterTemplate struct {
	ID       string
	Name     string
	Rarity   Rarity
	Base     float64
	Variance float64
	Image    string
}

// Area is a progression zone. Areas unlock strictly in catalog order.
type Area struct {
	Name           string
	Cost           float64
	StatMultiplier float64
	// LuckMultiplier divides the rarity thresholds
	LuckMultiplier float64
}

// Stats are the three rolled values of a doodle
type Stats struct {
	Attack  int
	Defense int
	Speed   int
}

// Vibe is the sum of the three stats
func (s Stats) Vibe() int {
	return s.Attack + s.Defense + s.Speed
}

// EntityTypeDoodle is the core.Entity type of an owned doodle
const EntityTypeDoodle = "doodle"

// Doodle is an owned, immutable creature instance
type Doodle struct {
	UID        string
	TemplateID string
	Name       string
	Rarity     Rarity
	Image      string
	Stats      Stats
	Vibe       int
}

var _ core.Entity = (*Doodle)(nil)

// GetID implements core.Entity
func (d *Doodle) GetID() string {
	return d.UID
}

// GetType implements core.Entity
func (d *Doodle) GetType() string {
	return EntityTypeDoodle
}

// Slot is an equipment bay. EquippedID is a weak reference into the
// inventory; empty means nothing is equipped.
type Slot struct {
	Level      int
	EquippedID string
}

// Empty reports whether nothing is referenced by the slot
func (s Slot) Empty() bool {
	return s.EquippedID == ""
}
