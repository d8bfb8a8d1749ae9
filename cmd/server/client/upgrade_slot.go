package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	v1 "github.com/KirkDiggler/doodle-api/internal/handlers/game/v1"
)

var upgradeSlotCmd = &cobra.Command{
	Use:   "upgrade-slot [slot]",
	Short: "Raise a slot level (0-2)",
	Args:  cobra.ExactArgs(1),
	RunE:  upgradeSlot,
}

func upgradeSlot(cmd *cobra.Command, args []string) error {
	slot, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid slot %q: %w", args[0], err)
	}

	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.UpgradeSlot(ctx, &v1.UpgradeSlotRequest{SlotIndex: slot})
	if err != nil {
		return fmt.Errorf("failed to upgrade slot: %w", err)
	}

	fmt.Printf("Slot %d is now level %d (paid %g, next %g)\n", slot, resp.Level, resp.Cost, resp.NextCost)
	printView(resp.View)
	return nil
}
