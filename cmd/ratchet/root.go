package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ratchet",
	Short: "Ratchet is a declarative finite-state-machine toolkit",
	Long: `Ratchet compiles declarative machine definitions (Go builder or YAML
documents) into validated transition graphs, drives instances step by
step, and renders machines as Mermaid or PlantUML diagrams.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
