package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/services/simulation"
)

var (
	simTrials  int
	simSeed    uint64
	simPolicy  string
	simCatalog string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate summons in every area without a server",
	Long: `Runs the summon roll many times per area and compares the observed rarity
frequencies with the expected ones for the selected roll policy. Examples:

  simulate
  simulate --policy strict --trials 1000000`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simTrials, "trials", simulation.DefaultTrials, "Summons per area")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 1, "Random seed")
	simulateCmd.Flags().StringVar(&simPolicy, "policy", "", "Roll policy preset (default or strict)")
	simulateCmd.Flags().StringVar(&simCatalog, "catalog", "", "YAML catalog override")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(simCatalog)
	if err != nil {
		return err
	}

	svc, err := simulation.NewService(&simulation.Config{Catalog: cat})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "AREA\tCOMMON\tRARE\tLEGENDARY\tEXPECTED LEG.\tMEAN VIBE")

	for i := 0; i < cat.AreaCount(); i++ {
		out, err := svc.Run(context.Background(), &simulation.RunInput{
			AreaIndex: i,
			Trials:    simTrials,
			Seed:      simSeed,
			Policy:    simPolicy,
		})
		if err != nil {
			return fmt.Errorf("simulation of area %d failed: %w", i, err)
		}
		fmt.Fprintf(tw, "%s\t%.2f%%\t%.2f%%\t%.2f%%\t%.2f%%\t%.1f\n",
			out.Area.Name,
			out.Observed[gacha.RarityCommon]*100,
			out.Observed[gacha.RarityRare]*100,
			out.Observed[gacha.RarityLegendary]*100,
			out.Expected[gacha.RarityLegendary]*100,
			out.MeanVibe)
	}

	return tw.Flush()
}
