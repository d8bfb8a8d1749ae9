package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1 "github.com/KirkDiggler/doodle-api/internal/handlers/game/v1"
)

var changeAreaCmd = &cobra.Command{
	Use:   "change-area [prev|next]",
	Short: "Move to an adjacent unlocked area",
	Args:  cobra.ExactArgs(1),
	RunE:  changeArea,
}

var unlockAreaCmd = &cobra.Command{
	Use:   "unlock-area",
	Short: "Buy the next area and move there",
	Args:  cobra.NoArgs,
	RunE:  unlockArea,
}

func changeArea(cmd *cobra.Command, args []string) error {
	var direction int
	switch args[0] {
	case "prev":
		direction = -1
	case "next":
		direction = 1
	default:
		return fmt.Errorf("direction must be prev or next, got %q", args[0])
	}

	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ChangeArea(ctx, &v1.ChangeAreaRequest{Direction: direction})
	if err != nil {
		return fmt.Errorf("failed to change area: %w", err)
	}

	if !resp.Changed {
		fmt.Println("No unlocked area in that direction")
	}
	printView(resp.View)
	return nil
}

func unlockArea(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.UnlockNextArea(ctx, &v1.UnlockNextAreaRequest{})
	if err != nil {
		return fmt.Errorf("failed to unlock area: %w", err)
	}

	if resp.Changed {
		fmt.Printf("Unlocked area %d for %g gold\n", resp.AreaIndex, resp.Cost)
	} else {
		fmt.Println("Every area is already unlocked")
	}
	printView(resp.View)
	return nil
}
