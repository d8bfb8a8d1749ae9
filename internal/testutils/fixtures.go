package testutils

import (
	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/testutils/builders"
)

// Progress stages for testing
const (
	StageFresh    = "fresh"
	StageEquipped = "equipped"
	StageLateGame = "late_game"
)

// CreateTestDoodle creates a legendary doodle with fixed stats
func CreateTestDoodle(uid string) *gacha.Doodle {
	return &gacha.Doodle{
		UID:        uid,
		TemplateID: "m5",
		Name:       "Ink-Dragon",
		Rarity:     gacha.RarityLegendary,
		Image:      "ink_dragon.png",
		Stats:      gacha.Stats{Attack: 61, Defense: 55, Speed: 72},
		Vibe:       188,
	}
}

// CreateTestState creates a progression state at various stages of a game
func CreateTestState(stage string) *gacha.ProgressionState {
	switch stage {
	case StageEquipped:
		return builders.NewStateBuilder().
			WithGold(42.5).
			WithDoodle("doodle-1", 100).
			WithDoodle("doodle-2", 5).
			WithDoodle("doodle-3", 18).
			WithSlot(0, 2, "doodle-1").
			WithSlot(1, 1, "doodle-2").
			Build()

	case StageLateGame:
		state := builders.NewStateBuilder().
			WithGold(12345.75).
			WithDoodles(5, 30).
			WithSlot(0, 4, "doodle-1").
			WithSlot(1, 3, "doodle-2").
			WithSlot(2, 2, "doodle-3").
			WithAreas(1, 2).
			Build()
		state.AddDoodle(CreateTestDoodle("doodle-legend"))
		return state

	default:
		return builders.NewStateBuilder().Build()
	}
}
