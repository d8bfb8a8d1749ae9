package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/doodle-api/internal/catalog"
	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/errors"
)

func TestDefaultCatalog(t *testing.T) {
	c := catalog.Default()

	assert.Len(t, c.Templates(), 6)
	assert.Equal(t, 3, c.AreaCount())
	assert.Equal(t, catalog.RollPolicyDefault, c.RollPolicy())
	assert.Equal(t, catalog.DefaultCosts, c.Costs())

	commons := c.TemplatesByRarity(gacha.RarityCommon)
	require.Len(t, commons, 2)
	assert.Equal(t, "Scrap-Ball", commons[0].Name)
	assert.Equal(t, "Pencil-Stub", commons[1].Name)
	assert.Len(t, c.TemplatesByRarity(gacha.RarityRare), 2)
	assert.Len(t, c.TemplatesByRarity(gacha.RarityLegendary), 2)
	assert.Empty(t, c.TemplatesByRarity(gacha.RarityUnspecified))

	dragon, ok := c.Template("m5")
	require.True(t, ok)
	assert.Equal(t, 50.0, dragon.Base)
	assert.Equal(t, 30.0, dragon.Variance)
	assert.Equal(t, "ink_dragon.png", dragon.Image)

	_, ok = c.Template("m99")
	assert.False(t, ok)

	studio, ok := c.Area(2)
	require.True(t, ok)
	assert.Equal(t, "Art Studio", studio.Name)
	assert.Equal(t, 2500.0, studio.Cost)
	assert.Equal(t, 3.0, studio.StatMultiplier)
	assert.Equal(t, 1.5, studio.LuckMultiplier)

	_, ok = c.Area(3)
	assert.False(t, ok)
	_, ok = c.Area(-1)
	assert.False(t, ok)
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c := catalog.Default()
	cfg := &catalog.Config{
		Templates:  c.Templates(),
		Areas:      c.Areas(),
		RollPolicy: c.RollPolicy(),
		Costs:      c.Costs(),
	}
	assert.NoError(t, cfg.Validate())
}

func TestLookupsReturnCopies(t *testing.T) {
	c := catalog.Default()

	commons := c.TemplatesByRarity(gacha.RarityCommon)
	commons[0].Name = "changed"
	areas := c.Areas()
	areas[0].Name = "changed"

	assert.Equal(t, "Scrap-Ball", c.TemplatesByRarity(gacha.RarityCommon)[0].Name)
	first, _ := c.Area(0)
	assert.Equal(t, "The Scrap Paper", first.Name)
}

func TestRollPolicyByName(t *testing.T) {
	testCases := []struct {
		name     string
		expected catalog.RollPolicy
		wantErr  bool
	}{
		{name: "", expected: catalog.RollPolicyDefault},
		{name: "default", expected: catalog.RollPolicyDefault},
		{name: " STRICT ", expected: catalog.RollPolicyStrict},
		{name: "generous", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := catalog.RollPolicyByName(tc.name)
			if tc.wantErr {
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p)
		})
	}
}

func TestWithRollPolicy(t *testing.T) {
	c, err := catalog.Default().WithRollPolicy(catalog.RollPolicyStrict)
	require.NoError(t, err)
	assert.Equal(t, catalog.RollPolicyStrict, c.RollPolicy())
	assert.Equal(t, catalog.RollPolicyDefault, catalog.Default().RollPolicy())

	_, err = catalog.Default().WithRollPolicy(catalog.RollPolicy{HighThreshold: 50, MidThreshold: 60})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewValidation(t *testing.T) {
	_, err := catalog.New(&catalog.Config{
		Templates: []gacha.MonsterTemplate{
			{ID: "r1", Name: "Rare Only", Rarity: gacha.RarityRare, Base: 1, Variance: 1},
			{ID: "r1", Name: "Duplicate", Rarity: gacha.RarityRare, Base: 1, Variance: 1},
		},
		Areas:      []gacha.Area{{Name: "Start", Cost: 10, StatMultiplier: 1, LuckMultiplier: -1}},
		RollPolicy: catalog.RollPolicy{HighThreshold: 120, MidThreshold: 70},
		Costs:      catalog.DefaultCosts,
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	msg := err.Error()
	assert.Contains(t, msg, "must contain at least one Common template")
	assert.Contains(t, msg, "monsters[1].id: duplicate id r1")
	assert.Contains(t, msg, "areas[0].cost: first area must be free")
	assert.Contains(t, msg, "areas[0].luck: must be greater than 0")
	assert.Contains(t, msg, "roll_policy.high_threshold")

	_, err = catalog.New(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadFileMergesSections(t *testing.T) {
	c, err := catalog.LoadFile("testdata/strict.yaml")
	require.NoError(t, err)

	assert.Equal(t, catalog.RollPolicyStrict, c.RollPolicy())
	assert.Equal(t, 25.0, c.Costs().SummonBase)
	assert.Equal(t, 200.0, c.Costs().SlotUpgradeBase, "fields missing from the file keep defaults")
	assert.Equal(t, 2, c.AreaCount())
	chalk, ok := c.Area(1)
	require.True(t, ok)
	assert.Equal(t, "Chalkboard", chalk.Name)
	assert.Len(t, c.Templates(), 6, "monsters section absent so defaults stay")
}

func TestLoadFileRejectsInvalidCatalog(t *testing.T) {
	_, err := catalog.LoadFile("testdata/invalid.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "areas[0].mult: must be greater than 0")
	assert.Contains(t, err.Error(), "must contain at least one Common template")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := catalog.LoadFile("testdata/does-not-exist.yaml")
	assert.True(t, errors.IsNotFound(err))
}

func TestParse(t *testing.T) {
	c, err := catalog.Parse([]byte(`
roll_policy:
  high_threshold: 95
monsters:
  - {id: c1, name: Eraser-Crumb, rarity: common, base: 2, variance: 1, img: crumb.png}
`))
	require.NoError(t, err)
	assert.Equal(t, 95.0, c.RollPolicy().HighThreshold)
	assert.Equal(t, 70.0, c.RollPolicy().MidThreshold)
	require.Len(t, c.Templates(), 1)
	assert.Equal(t, gacha.RarityCommon, c.Templates()[0].Rarity)
	assert.Empty(t, c.TemplatesByRarity(gacha.RarityLegendary))

	_, err = catalog.Parse([]byte(`monsters: [{id: x, name: X, rarity: mythic}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monsters[0].rarity")

	_, err = catalog.Parse([]byte("monsters: [unterminated"))
	assert.True(t, errors.IsInvalidArgument(err))
}
