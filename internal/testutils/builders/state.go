// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
)

// StateBuilder provides a fluent interface for building test ProgressionState instances
type StateBuilder struct {
	state *gacha.ProgressionState
}

// NewStateBuilder creates a builder for a fresh game with the default balance
func NewStateBuilder() *StateBuilder {
	return &StateBuilder{
		state: gacha.NewProgressionState(gacha.DefaultStartingGold),
	}
}

// WithGold sets the balance
func (b *StateBuilder) WithGold(gold float64) *StateBuilder {
	b.state.Gold = gold
	return b
}

// WithDoodle adds a Common doodle whose stats sum to vibe
func (b *StateBuilder) WithDoodle(uid string, vibe int) *StateBuilder {
	atk := vibe / 3
	def := vibe / 3
	b.state.AddDoodle(&gacha.Doodle{
		UID:        uid,
		TemplateID: "m1",
		Name:       "Scrap-Ball",
		Rarity:     gacha.RarityCommon,
		Image:      "scrap_ball.png",
		Stats:      gacha.Stats{Attack: atk, Defense: def, Speed: vibe - atk - def},
		Vibe:       vibe,
	})
	return b
}

// WithDoodles adds n Common doodles named doodle-1..doodle-n with the given vibe
func (b *StateBuilder) WithDoodles(n, vibe int) *StateBuilder {
	for i := 1; i <= n; i++ {
		b.WithDoodle(fmt.Sprintf("doodle-%d", i), vibe)
	}
	return b
}

// WithSlot sets a slot level and reference without checking the inventory
func (b *StateBuilder) WithSlot(index, level int, equippedID string) *StateBuilder {
	b.state.Slots[index] = gacha.Slot{Level: level, EquippedID: equippedID}
	return b
}

// WithAreas sets the current and highest unlocked area
func (b *StateBuilder) WithAreas(current, unlocked int) *StateBuilder {
	b.state.AreaIndex = current
	b.state.UnlockedAreaIndex = unlocked
	return b
}

// Build returns a copy of the built state
func (b *StateBuilder) Build() *gacha.ProgressionState {
	return b.state.Clone()
}
