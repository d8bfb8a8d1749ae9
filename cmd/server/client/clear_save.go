package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1 "github.com/KirkDiggler/doodle-api/internal/handlers/game/v1"
)

var clearSaveCmd = &cobra.Command{
	Use:   "clear-save",
	Short: "Wipe the saved game and start over",
	Args:  cobra.NoArgs,
	RunE:  clearSave,
}

func clearSave(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ClearSave(ctx, &v1.ClearSaveRequest{})
	if err != nil {
		return fmt.Errorf("failed to clear save: %w", err)
	}

	fmt.Printf("Save cleared (%d keys deleted)\n", resp.KeysDeleted)
	printView(resp.View)
	return nil
}
