package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/doodle-api/internal/errors"
	v1 "github.com/KirkDiggler/doodle-api/internal/handlers/game/v1"
)

var summonCount int

var summonCmd = &cobra.Command{
	Use:   "summon",
	Short: "Summon doodles in the active area",
	Long: `Summon one or more doodles. Stops at the first rejected summon. Examples:

  summon
  summon --count 10`,
	Args: cobra.NoArgs,
	RunE: summon,
}

func init() {
	summonCmd.Flags().IntVar(&summonCount, "count", 1, "Number of summons")
}

func summon(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var last *v1.SummonResponse
	for i := 0; i < summonCount; i++ {
		resp, err := client.Summon(ctx, &v1.SummonRequest{})
		if err != nil {
			if errors.IsInsufficientFunds(errors.FromGRPCError(err)) && last != nil {
				fmt.Printf("Out of gold after %d summons\n", i)
				break
			}
			return fmt.Errorf("summon %d failed: %w", i+1, err)
		}
		d := resp.Doodle
		fmt.Printf("🎉 %s (%s) ATK %d DEF %d SPD %d, vibe %d [%s] for %g gold\n",
			d.Name, d.Rarity, d.Stats.Attack, d.Stats.Defense, d.Stats.Speed, d.Vibe, d.UID, resp.Cost)
		last = resp
	}

	if last != nil {
		printView(last.View)
	}
	return nil
}
