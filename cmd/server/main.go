// Package main is the entry point for the memento editor service
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-memento-editor/cmd/server/client"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "memento-editor",
	Short: "Memento editor gRPC server",
	Long:  `Memento editor hosts player sessions for choosing memento items before a game starts.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
