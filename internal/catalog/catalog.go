// Package catalog holds the static game data: monster templates, areas, the
// rarity roll policy and the cost table. A Catalog is immutable once built.
package catalog

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/errors"
)

// RollPolicy holds the two rarity thresholds on the [0, 100) roll scale.
// Both are divided by the area luck before comparing.
type RollPolicy struct {
	HighThreshold float64 `yaml:"high_threshold"`
	MidThreshold  float64 `yaml:"mid_threshold"`
}

var (
	// RollPolicyDefault is the canonical balance: 10% legendary, 20% rare at luck 1
	RollPolicyDefault = RollPolicy{HighThreshold: 90, MidThreshold: 70}
	// RollPolicyStrict is the tighter preset: 2% legendary, 18% rare at luck 1
	RollPolicyStrict = RollPolicy{HighThreshold: 98, MidThreshold: 80}
)

// Roll policy preset names
const (
	PolicyNameDefault = "default"
	PolicyNameStrict  = "strict"
)

// RollPolicyByName returns a named preset
func RollPolicyByName(name string) (RollPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyNameDefault:
		return RollPolicyDefault, nil
	case PolicyNameStrict:
		return RollPolicyStrict, nil
	default:
		return RollPolicy{}, errors.InvalidArgumentf("unknown roll policy %q", name)
	}
}

// Validate checks the thresholds sit in (0, 100] with high >= mid
func (p RollPolicy) Validate() error {
	vb := errors.NewValidationBuilder()
	validateThresholds(p, "roll_policy", vb)
	return vb.Build()
}

// Costs is the economy table
type Costs struct {
	// SummonBase is multiplied by (area index + 1)
	SummonBase float64 `yaml:"summon_base"`
	// SlotUpgradeBase is multiplied by the current slot level
	SlotUpgradeBase float64 `yaml:"slot_upgrade_base"`
	StartingGold    float64 `yaml:"starting_gold"`
	// IncomeRate converts vibe*level into gold per tick
	IncomeRate float64 `yaml:"income_rate"`
	// MinIncome is paid when something is equipped but the sum floors to zero
	MinIncome int `yaml:"min_income"`
}

// DefaultCosts matches the shipped game balance
var DefaultCosts = Costs{
	SummonBase:      10,
	SlotUpgradeBase: 200,
	StartingGold:    gacha.DefaultStartingGold,
	IncomeRate:      0.1,
	MinIncome:       1,
}

// Catalog is the read-only lookup table for templates and areas
type Catalog struct {
	templates []gacha.MonsterTemplate
	byRarity  map[gacha.Rarity][]gacha.MonsterTemplate
	byID      map[string]gacha.MonsterTemplate
	areas     []gacha.Area
	policy    RollPolicy
	costs     Costs
}

// Config is the input to New
type Config struct {
	Templates  []gacha.MonsterTemplate
	Areas      []gacha.Area
	RollPolicy RollPolicy
	Costs      Costs
}

// Validate checks the catalog data is playable
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(cfg.Templates) == 0 {
		vb.RequiredField("monsters")
	}
	common := 0
	ids := make(map[string]bool, len(cfg.Templates))
	for i, t := range cfg.Templates {
		field := indexed("monsters", i)
		errors.ValidateRequired(field+".id", t.ID, vb)
		errors.ValidateRequired(field+".name", t.Name, vb)
		if ids[t.ID] && t.ID != "" {
			vb.Fieldf(field+".id", "duplicate id %s", t.ID)
		}
		ids[t.ID] = true
		if !t.Rarity.Valid() {
			vb.Field(field+".rarity", "must be Common, Rare or Legendary")
		}
		if t.Rarity == gacha.RarityCommon {
			common++
		}
		if t.Base < 0 {
			vb.Field(field+".base", "must not be negative")
		}
		if t.Variance < 0 {
			vb.Field(field+".variance", "must not be negative")
		}
	}
	if len(cfg.Templates) > 0 && common == 0 {
		vb.Field("monsters", "must contain at least one Common template")
	}

	if len(cfg.Areas) == 0 {
		vb.RequiredField("areas")
	}
	for i, a := range cfg.Areas {
		field := indexed("areas", i)
		errors.ValidateRequired(field+".name", a.Name, vb)
		if i == 0 && a.Cost != 0 {
			vb.Field(field+".cost", "first area must be free")
		}
		if a.Cost < 0 {
			vb.Field(field+".cost", "must not be negative")
		}
		errors.ValidatePositive(field+".mult", a.StatMultiplier, vb)
		errors.ValidatePositive(field+".luck", a.LuckMultiplier, vb)
	}

	validateThresholds(cfg.RollPolicy, "roll_policy", vb)

	errors.ValidatePositive("costs.summon_base", cfg.Costs.SummonBase, vb)
	errors.ValidatePositive("costs.slot_upgrade_base", cfg.Costs.SlotUpgradeBase, vb)
	errors.ValidatePositive("costs.income_rate", cfg.Costs.IncomeRate, vb)
	if cfg.Costs.StartingGold < 0 {
		vb.Field("costs.starting_gold", "must not be negative")
	}
	if cfg.Costs.MinIncome < 0 {
		vb.Field("costs.min_income", "must not be negative")
	}

	return vb.Build()
}

// New builds a validated catalog
func New(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid catalog")
	}
	return Build(cfg), nil
}

// Default returns the compiled-in catalog
func Default() *Catalog {
	return Build(defaultConfig())
}

// Build assembles a catalog without validating it
func Build(cfg *Config) *Catalog {
	c := &Catalog{
		templates: slices.Clone(cfg.Templates),
		byRarity:  make(map[gacha.Rarity][]gacha.MonsterTemplate),
		byID:      make(map[string]gacha.MonsterTemplate, len(cfg.Templates)),
		areas:     slices.Clone(cfg.Areas),
		policy:    cfg.RollPolicy,
		costs:     cfg.Costs,
	}
	for _, t := range c.templates {
		c.byRarity[t.Rarity] = append(c.byRarity[t.Rarity], t)
		c.byID[t.ID] = t
	}
	return c
}

// WithRollPolicy returns a copy of the catalog using a different policy
func (c *Catalog) WithRollPolicy(p RollPolicy) (*Catalog, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cp := *c
	cp.policy = p
	return &cp, nil
}

// TemplatesByRarity returns every template of the given tier in catalog order
func (c *Catalog) TemplatesByRarity(r gacha.Rarity) []gacha.MonsterTemplate {
	return slices.Clone(c.byRarity[r])
}

// Template looks a template up by id
func (c *Catalog) Template(id string) (gacha.MonsterTemplate, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Templates returns every template in catalog order
func (c *Catalog) Templates() []gacha.MonsterTemplate {
	return slices.Clone(c.templates)
}

// Area returns the area at index i
func (c *Catalog) Area(i int) (gacha.Area, bool) {
	if i < 0 || i >= len(c.areas) {
		return gacha.Area{}, false
	}
	return c.areas[i], true
}

// Areas returns every area in unlock order
func (c *Catalog) Areas() []gacha.Area {
	return slices.Clone(c.areas)
}

// AreaCount is the number of areas
func (c *Catalog) AreaCount() int {
	return len(c.areas)
}

// RollPolicy returns the rarity thresholds
func (c *Catalog) RollPolicy() RollPolicy {
	return c.policy
}

// Costs returns the economy table
func (c *Catalog) Costs() Costs {
	return c.costs
}

func validateThresholds(p RollPolicy, field string, vb *errors.ValidationBuilder) {
	if p.HighThreshold <= 0 || p.HighThreshold > 100 {
		vb.Field(field+".high_threshold", "must be greater than 0 and at most 100")
	}
	if p.MidThreshold <= 0 || p.MidThreshold > 100 {
		vb.Field(field+".mid_threshold", "must be greater than 0 and at most 100")
	}
	if p.MidThreshold > p.HighThreshold {
		vb.Field(field+".mid_threshold", "must not exceed high_threshold")
	}
}
