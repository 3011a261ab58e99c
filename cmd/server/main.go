// Package main is the entry point for the One Night table server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/onenight-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "onenight-api",
	Short: "One Night Werewolf table server",
	Long:  `onenight-api deals One Night Werewolf rounds and runs them over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(dealCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
