// Package main is the entry point for the Doodle API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/doodle-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "doodle-api",
	Short: "Doodle idle gacha gRPC server",
	Long:  `Doodle API runs the idle gacha progression engine behind a gRPC interface.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
