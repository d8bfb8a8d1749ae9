// Package simulation estimates summon outcomes for an area by running the
// roll engine many times against a seeded source
package simulation

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/KirkDiggler/doodle-api/internal/catalog"
	"github.com/KirkDiggler/doodle-api/internal/engine"
	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/errors"
	"github.com/KirkDiggler/doodle-api/internal/pkg/random"
)

//go:generate mockgen -destination=mock/mock_service.go -package=simulationmock github.com/KirkDiggler/doodle-api/internal/services/simulation Service

const (
	// DefaultTrials is used when RunInput.Trials is zero
	DefaultTrials = 100_000
	// MaxTrials caps a single run
	MaxTrials = 10_000_000

	cancelCheckEvery = 4096
)

// Service defines the simulation interface
type Service interface {
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// RunInput contains simulation parameters
type RunInput struct {
	AreaIndex int
	Trials    int
	Seed      uint64
	// Policy names a roll policy preset. Empty keeps the catalog policy.
	Policy string
}

// RunOutput contains observed and expected outcomes
type RunOutput struct {
	Area     gacha.Area
	Policy   catalog.RollPolicy
	Trials   int
	Observed map[gacha.Rarity]float64
	Expected map[gacha.Rarity]float64
	Counts   map[gacha.Rarity]int
	MeanVibe float64
	MaxVibe  int
	Duration time.Duration
}

// Config holds the dependencies for the simulation service
type Config struct {
	Catalog *catalog.Catalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

type service struct {
	catalog *catalog.Catalog
}

// NewService creates a simulation service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &service{catalog: cfg.Catalog}, nil
}

func (s *service) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	trials := input.Trials
	if trials == 0 {
		trials = DefaultTrials
	}
	if trials < 0 || trials > MaxTrials {
		return nil, errors.InvalidArgumentf("trials must be between 1 and %d", MaxTrials)
	}

	area, ok := s.catalog.Area(input.AreaIndex)
	if !ok {
		return nil, errors.OutOfRangef("area index %d out of range", input.AreaIndex)
	}

	cat := s.catalog
	if input.Policy != "" {
		policy, err := catalog.RollPolicyByName(input.Policy)
		if err != nil {
			return nil, err
		}
		if cat, err = cat.WithRollPolicy(policy); err != nil {
			return nil, err
		}
	}

	eng, err := engine.New(&engine.Config{
		Catalog: cat,
		Source:  random.NewSeeded(input.Seed),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build engine")
	}

	start := time.Now()
	counts := make(map[gacha.Rarity]int, len(gacha.Rarities))
	totalVibe := 0
	maxVibe := 0

	for i := 0; i < trials; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeCanceled, "simulation canceled")
			}
		}

		out, err := eng.NewDoodle(&engine.NewDoodleInput{UID: "sim", AreaIndex: input.AreaIndex})
		if err != nil {
			return nil, err
		}
		counts[out.Rolled]++
		totalVibe += out.Doodle.Vibe
		if out.Doodle.Vibe > maxVibe {
			maxVibe = out.Doodle.Vibe
		}
	}

	observed := make(map[gacha.Rarity]float64, len(gacha.Rarities))
	for _, r := range gacha.Rarities {
		observed[r] = float64(counts[r]) / float64(trials)
	}

	output := &RunOutput{
		Area:     area,
		Policy:   cat.RollPolicy(),
		Trials:   trials,
		Observed: observed,
		Expected: Expected(cat.RollPolicy(), area.LuckMultiplier),
		Counts:   counts,
		MeanVibe: float64(totalVibe) / float64(trials),
		MaxVibe:  maxVibe,
		Duration: time.Since(start),
	}

	slog.Info("Simulation finished",
		"area", area.Name,
		"trials", trials,
		"legendary", observed[gacha.RarityLegendary],
		"rare", observed[gacha.RarityRare],
		"mean_vibe", output.MeanVibe,
		"duration", output.Duration)

	return output, nil
}

// Expected returns the exact rarity probabilities for a uniform draw in
// [0, 100) against the luck-scaled thresholds
func Expected(policy catalog.RollPolicy, luck float64) map[gacha.Rarity]float64 {
	if luck <= 0 || math.IsNaN(luck) {
		luck = 1
	}
	high := math.Min(policy.HighThreshold/luck, 100)
	mid := math.Min(policy.MidThreshold/luck, high)

	return map[gacha.Rarity]float64{
		gacha.RarityLegendary: (100 - high) / 100,
		gacha.RarityRare:      (high - mid) / 100,
		gacha.RarityCommon:    mid / 100,
	}
}
