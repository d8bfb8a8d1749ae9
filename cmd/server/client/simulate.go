package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1 "github.com/KirkDiggler/doodle-api/internal/handlers/game/v1"
)

var (
	simulateArea   int
	simulateTrials int
	simulateSeed   uint64
	simulatePolicy string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a summon simulation on the server",
	Args:  cobra.NoArgs,
	RunE:  simulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simulateArea, "area", 0, "Area index")
	simulateCmd.Flags().IntVar(&simulateTrials, "trials", 100000, "Number of summons to simulate")
	simulateCmd.Flags().Uint64Var(&simulateSeed, "seed", 1, "Random seed")
	simulateCmd.Flags().StringVar(&simulatePolicy, "policy", "", "Roll policy preset (default or strict)")
}

func simulate(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Simulate(ctx, &v1.SimulateRequest{
		AreaIndex: simulateArea,
		Trials:    simulateTrials,
		Seed:      simulateSeed,
		Policy:    simulatePolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to simulate: %w", err)
	}

	fmt.Printf("%s, %d trials, thresholds %g/%g\n", resp.AreaName, resp.Trials, resp.HighThreshold, resp.MidThreshold)
	for _, rarity := range []string{"Common", "Rare", "Legendary"} {
		fmt.Printf("  %-10s observed %6.2f%%  expected %6.2f%%\n",
			rarity, resp.Observed[rarity]*100, resp.Expected[rarity]*100)
	}
	fmt.Printf("  mean vibe %.1f, best %d\n", resp.MeanVibe, resp.MaxVibe)
	return nil
}
