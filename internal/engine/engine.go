package engine

import (
	"math"
	"time"

	"github.com/KirkDiggler/doodle-api/internal/catalog"
	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/errors"
	"github.com/KirkDiggler/doodle-api/internal/pkg/random"
)

// DefaultPeriod is the accrual period of the idle loop
const DefaultPeriod = time.Second

type engine struct {
	catalog *catalog.Catalog
	source  random.Source
	period  time.Duration
}

// Config holds the dependencies of the engine
type Config struct {
	Catalog *catalog.Catalog
	Source  random.Source
	// Period defaults to DefaultPeriod
	Period time.Duration
}

// Validate checks the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if cfg.Source == nil {
		vb.RequiredField("Source")
	}
	if cfg.Period < 0 {
		vb.Field("Period", "must not be negative")
	}
	return vb.Build()
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	period := cfg.Period
	if period == 0 {
		period = DefaultPeriod
	}

	return &engine{
		catalog: cfg.Catalog,
		source:  cfg.Source,
		period:  period,
	}, nil
}

// RollRarity draws r in [0, 100) and compares it to the policy thresholds
// divided by luck. Luck at or below zero counts as 1.
func (e *engine) RollRarity(luck float64) gacha.Rarity {
	if luck <= 0 || math.IsNaN(luck) {
		luck = 1
	}
	policy := e.catalog.RollPolicy()
	r := e.source.Float64() * 100

	switch {
	case r > policy.HighThreshold/luck:
		return gacha.RarityLegendary
	case r > policy.MidThreshold/luck:
		return gacha.RarityRare
	default:
		return gacha.RarityCommon
	}
}

// PickTemplate picks uniformly among the templates of a tier, falling back
// to the Common pool when the tier is empty.
func (e *engine) PickTemplate(rarity gacha.Rarity) (gacha.MonsterTemplate, error) {
	pool := e.catalog.TemplatesByRarity(rarity)
	if len(pool) == 0 {
		pool = e.catalog.TemplatesByRarity(gacha.RarityCommon)
	}
	if len(pool) == 0 {
		return gacha.MonsterTemplate{}, errors.Configurationf("no %s or Common templates in catalog", rarity)
	}

	idx := int(e.source.Float64() * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	return pool[idx], nil
}

// GenerateStats draws each stat independently as
// floor((base + U[0, variance)) * mult).
func (e *engine) GenerateStats(template gacha.MonsterTemplate, mult float64) gacha.Stats {
	roll := func() int {
		return int(math.Floor((template.Base + e.source.Float64()*template.Variance) * mult))
	}
	return gacha.Stats{
		Attack:  roll(),
		Defense: roll(),
		Speed:   roll(),
	}
}

func (e *engine) NewDoodle(input *NewDoodleInput) (*NewDoodleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UID == "" {
		return nil, errors.InvalidArgument("uid is required")
	}
	area, ok := e.catalog.Area(input.AreaIndex)
	if !ok {
		return nil, errors.OutOfRangef("area index %d out of range", input.AreaIndex)
	}

	rolled := e.RollRarity(area.LuckMultiplier)
	template, err := e.PickTemplate(rolled)
	if err != nil {
		return nil, err
	}
	stats := e.GenerateStats(template, area.StatMultiplier)

	return &NewDoodleOutput{
		Doodle: &gacha.Doodle{
			UID:        input.UID,
			TemplateID: template.ID,
			Name:       template.Name,
			Rarity:     template.Rarity,
			Image:      template.Image,
			Stats:      stats,
			Vibe:       stats.Vibe(),
		},
		Template: template,
		Rolled:   rolled,
	}, nil
}

// SummonCost is SummonBase * (areaIndex + 1)
func (e *engine) SummonCost(areaIndex int) float64 {
	return e.catalog.Costs().SummonBase * float64(areaIndex+1)
}

// UpgradeCost is SlotUpgradeBase * level
func (e *engine) UpgradeCost(level int) float64 {
	return e.catalog.Costs().SlotUpgradeBase * float64(level)
}

// Income sums floor(vibe * level * rate) over the equipped slots. When
// something is equipped but the sum is zero the minimum income is paid.
// Slots whose doodle is missing from the inventory count as empty.
func (e *engine) Income(state *gacha.ProgressionState) int {
	if state == nil {
		return 0
	}
	costs := e.catalog.Costs()

	income := 0
	equipped := false
	for i, slot := range state.Slots {
		doodle, ok := state.ResolveSlot(i)
		if !ok {
			continue
		}
		equipped = true
		income += int(math.Floor(float64(doodle.Vibe) * float64(slot.Level) * costs.IncomeRate))
	}

	if equipped && income < costs.MinIncome {
		income = costs.MinIncome
	}
	return income
}

// Accrue credits one income payment per whole period in Elapsed+Carry to a
// copy of the state. The input state is not modified.
func (e *engine) Accrue(input *AccrueInput) (*AccrueOutput, error) {
	if input == nil || input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}
	if input.Elapsed < 0 || input.Carry < 0 {
		return nil, errors.InvalidArgument("elapsed time must not be negative")
	}

	total := input.Elapsed + input.Carry
	ticks := int(total / e.period)
	perTick := e.Income(input.State)
	credited := ticks * perTick

	next := input.State.Clone()
	next.Credit(float64(credited))

	return &AccrueOutput{
		State:         next,
		Ticks:         ticks,
		IncomePerTick: perTick,
		Credited:      credited,
		Carry:         total % e.period,
	}, nil
}
