package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/errors"
)

// rawFile mirrors the YAML override file. Every section is optional; a
// present section replaces the compiled-in one.
type rawFile struct {
	Version    string         `yaml:"version"`
	RollPolicy *rawRollPolicy `yaml:"roll_policy"`
	Costs      *rawCosts      `yaml:"costs"`
	Monsters   []rawMonster   `yaml:"monsters"`
	Areas      []rawArea      `yaml:"areas"`
}

type rawRollPolicy struct {
	Preset        string   `yaml:"preset"`
	HighThreshold *float64 `yaml:"high_threshold"`
	MidThreshold  *float64 `yaml:"mid_threshold"`
}

type rawCosts struct {
	SummonBase      *float64 `yaml:"summon_base"`
	SlotUpgradeBase *float64 `yaml:"slot_upgrade_base"`
	StartingGold    *float64 `yaml:"starting_gold"`
	IncomeRate      *float64 `yaml:"income_rate"`
	MinIncome       *int     `yaml:"min_income"`
}

type rawMonster struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Rarity   string  `yaml:"rarity"`
	Base     float64 `yaml:"base"`
	Variance float64 `yaml:"variance"`
	Image    string  `yaml:"img"`
}

type rawArea struct {
	Name string  `yaml:"name"`
	Cost float64 `yaml:"cost"`
	Mult float64 `yaml:"mult"`
	Luck float64 `yaml:"luck"`
}

// LoadFile reads a YAML override file and merges it over the compiled-in
// defaults. The merged catalog is validated.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}
	return Parse(data)
}

// Parse merges YAML data over the compiled-in defaults
func Parse(data []byte) (*Catalog, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog yaml")
	}

	cfg, err := merge(defaultConfig(), raw)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

func defaultConfig() *Config {
	return &Config{
		Templates:  defaultTemplates,
		Areas:      defaultAreas,
		RollPolicy: RollPolicyDefault,
		Costs:      DefaultCosts,
	}
}

// merge applies the sections present in raw over base
func merge(base *Config, raw rawFile) (*Config, error) {
	out := *base

	if len(raw.Monsters) > 0 {
		vb := errors.NewValidationBuilder()
		out.Templates = make([]gacha.MonsterTemplate, 0, len(raw.Monsters))
		for i, m := range raw.Monsters {
			rarity, err := gacha.ParseRarity(m.Rarity)
			if err != nil {
				vb.Field(indexed("monsters", i)+".rarity", err.Error())
			}
			out.Templates = append(out.Templates, gacha.MonsterTemplate{
				ID:       m.ID,
				Name:     m.Name,
				Rarity:   rarity,
				Base:     m.Base,
				Variance: m.Variance,
				Image:    m.Image,
			})
		}
		if err := vb.Build(); err != nil {
			return nil, err
		}
	}

	if len(raw.Areas) > 0 {
		out.Areas = make([]gacha.Area, 0, len(raw.Areas))
		for _, a := range raw.Areas {
			out.Areas = append(out.Areas, gacha.Area{
				Name:           a.Name,
				Cost:           a.Cost,
				StatMultiplier: a.Mult,
				LuckMultiplier: a.Luck,
			})
		}
	}

	if p := raw.RollPolicy; p != nil {
		if p.Preset != "" {
			preset, err := RollPolicyByName(p.Preset)
			if err != nil {
				return nil, err
			}
			out.RollPolicy = preset
		}
		if p.HighThreshold != nil {
			out.RollPolicy.HighThreshold = *p.HighThreshold
		}
		if p.MidThreshold != nil {
			out.RollPolicy.MidThreshold = *p.MidThreshold
		}
	}

	if c := raw.Costs; c != nil {
		if c.SummonBase != nil {
			out.Costs.SummonBase = *c.SummonBase
		}
		if c.SlotUpgradeBase != nil {
			out.Costs.SlotUpgradeBase = *c.SlotUpgradeBase
		}
		if c.StartingGold != nil {
			out.Costs.StartingGold = *c.StartingGold
		}
		if c.IncomeRate != nil {
			out.Costs.IncomeRate = *c.IncomeRate
		}
		if c.MinIncome != nil {
			out.Costs.MinIncome = *c.MinIncome
		}
	}

	return &out, nil
}
