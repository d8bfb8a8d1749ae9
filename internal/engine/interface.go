// Package engine implements the game rules: rarity rolls, template picks,
// stat generation, costs and income accrual.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/doodle-api/internal/engine Engine

import (
	"time"

	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
)

// Engine provides game mechanics and rules calculations. Implementations
// hold a random source and are not safe for concurrent use.
type Engine interface {
	// Randomized rolls
	RollRarity(luck float64) gacha.Rarity
	PickTemplate(rarity gacha.Rarity) (gacha.MonsterTemplate, error)
	GenerateStats(template gacha.MonsterTemplate, mult float64) gacha.Stats
	NewDoodle(input *NewDoodleInput) (*NewDoodleOutput, error)

	// Economy
	SummonCost(areaIndex int) float64
	UpgradeCost(level int) float64
	Income(state *gacha.ProgressionState) int

	// Accrual
	Accrue(input *AccrueInput) (*AccrueOutput, error)
}

// NewDoodleInput names the area a doodle is summoned in and its unique id
type NewDoodleInput struct {
	UID       string
	AreaIndex int
}

// NewDoodleOutput is the freshly rolled doodle
type NewDoodleOutput struct {
	Doodle   *gacha.Doodle
	Template gacha.MonsterTemplate
	// Rolled is the tier the roll landed on before any pool fallback
	Rolled gacha.Rarity
}

// AccrueInput is the state and the wall-clock time to account for
type AccrueInput struct {
	State *gacha.ProgressionState
	// Elapsed is added to Carry before splitting into whole periods
	Elapsed time.Duration
	Carry   time.Duration
}

// AccrueOutput holds the credited copy of the state
type AccrueOutput struct {
	State *gacha.ProgressionState
	Ticks int
	// IncomePerTick is the income of a single period
	IncomePerTick int
	Credited      int
	// Carry is the part of Elapsed shorter than one period
	Carry time.Duration
}
