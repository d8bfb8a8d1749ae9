package simulation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/doodle-api/internal/catalog"
	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/errors"
	"github.com/KirkDiggler/doodle-api/internal/services/simulation"
)

func newService(t *testing.T) simulation.Service {
	svc, err := simulation.NewService(&simulation.Config{Catalog: catalog.Default()})
	require.NoError(t, err)
	return svc
}

func TestExpected(t *testing.T) {
	testCases := []struct {
		name      string
		policy    catalog.RollPolicy
		luck      float64
		legendary float64
		rare      float64
		common    float64
	}{
		{name: "default policy base luck", policy: catalog.RollPolicyDefault, luck: 1, legendary: 0.10, rare: 0.20, common: 0.70},
		{name: "strict policy base luck", policy: catalog.RollPolicyStrict, luck: 1, legendary: 0.02, rare: 0.18, common: 0.80},
		{name: "art studio luck", policy: catalog.RollPolicyDefault, luck: 1.5, legendary: 0.40, rare: 0.1333, common: 0.4667},
		{name: "zero luck counts as one", policy: catalog.RollPolicyDefault, luck: 0, legendary: 0.10, rare: 0.20, common: 0.70},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := simulation.Expected(tc.policy, tc.luck)
			assert.InDelta(t, tc.legendary, got[gacha.RarityLegendary], 0.0001)
			assert.InDelta(t, tc.rare, got[gacha.RarityRare], 0.0001)
			assert.InDelta(t, tc.common, got[gacha.RarityCommon], 0.0001)
		})
	}
}

func TestRunMatchesExpectation(t *testing.T) {
	svc := newService(t)

	for _, areaIndex := range []int{0, 1, 2} {
		out, err := svc.Run(context.Background(), &simulation.RunInput{
			AreaIndex: areaIndex,
			Trials:    50_000,
			Seed:      42,
		})
		require.NoError(t, err)

		assert.Equal(t, 50_000, out.Trials)
		total := 0
		for _, r := range gacha.Rarities {
			assert.InDelta(t, out.Expected[r], out.Observed[r], 0.01, "area %d rarity %s", areaIndex, r)
			total += out.Counts[r]
		}
		assert.Equal(t, 50_000, total)
		assert.Greater(t, out.MeanVibe, 0.0)
		assert.GreaterOrEqual(t, float64(out.MaxVibe), out.MeanVibe)
	}
}

func TestRunIsReproducible(t *testing.T) {
	svc := newService(t)
	input := &simulation.RunInput{AreaIndex: 1, Trials: 2_000, Seed: 7}

	first, err := svc.Run(context.Background(), input)
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.Counts, second.Counts)
	assert.Equal(t, first.MeanVibe, second.MeanVibe)
}

func TestRunStrictPolicy(t *testing.T) {
	out, err := newService(t).Run(context.Background(), &simulation.RunInput{
		Trials: 20_000,
		Seed:   1,
		Policy: catalog.PolicyNameStrict,
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.RollPolicyStrict, out.Policy)
	assert.InDelta(t, 0.02, out.Observed[gacha.RarityLegendary], 0.01)
}

func TestRunValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Run(ctx, nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = svc.Run(ctx, &simulation.RunInput{Trials: -1})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = svc.Run(ctx, &simulation.RunInput{AreaIndex: 9})
	assert.Equal(t, errors.CodeOutOfRange, errors.GetCode(err))

	_, err = svc.Run(ctx, &simulation.RunInput{Policy: "generous"})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = simulation.NewService(&simulation.Config{})
	assert.Error(t, err)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newService(t).Run(ctx, &simulation.RunInput{Trials: 10})
	assert.Equal(t, errors.CodeCanceled, errors.GetCode(err))
}
