package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1 "github.com/KirkDiggler/doodle-api/internal/handlers/game/v1"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show gold, area, slots and inventory",
	Args:  cobra.NoArgs,
	RunE:  getState,
}

func getState(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetState(ctx, &v1.GetStateRequest{})
	if err != nil {
		return fmt.Errorf("failed to get state: %w", err)
	}

	printView(resp.View)
	return nil
}
