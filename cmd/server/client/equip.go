package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	v1 "github.com/KirkDiggler/doodle-api/internal/handlers/game/v1"
)

var equipCmd = &cobra.Command{
	Use:   "equip [doodle-id]",
	Short: "Equip a doodle into the first empty slot",
	Args:  cobra.ExactArgs(1),
	RunE:  equip,
}

var unequipCmd = &cobra.Command{
	Use:   "unequip [slot]",
	Short: "Clear a slot (0-2)",
	Args:  cobra.ExactArgs(1),
	RunE:  unequip,
}

func equip(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Equip(ctx, &v1.EquipRequest{DoodleID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to equip: %w", err)
	}

	if resp.Changed {
		fmt.Printf("Equipped %s in slot %d\n", args[0], resp.SlotIndex)
	} else {
		fmt.Printf("%s is already in slot %d\n", args[0], resp.SlotIndex)
	}
	printView(resp.View)
	return nil
}

func unequip(cmd *cobra.Command, args []string) error {
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

	resp, err := client.Unequip(ctx, &v1.UnequipRequest{SlotIndex: slot})
	if err != nil {
		return fmt.Errorf("failed to unequip: %w", err)
	}

	if !resp.Changed {
		fmt.Printf("Slot %d was already empty\n", slot)
	}
	printView(resp.View)
	return nil
}
