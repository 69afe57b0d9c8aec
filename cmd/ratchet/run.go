package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/ratchet"
	"github.com/aretw0/ratchet/internal/cli"
	"github.com/aretw0/ratchet/internal/logging"
	"github.com/aretw0/ratchet/internal/presentation/tui"
)

// runCmd simulates a machine interactively.
var runCmd = &cobra.Command{
	Use:   "run <machine.yaml>",
	Short: "Simulate a machine interactively",
	Long: `Drives a YAML-defined machine cycle by cycle. Each condition becomes a
y/n prompt, so you play the role of the hardware. Answers can also be
piped in, one line per prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Root().PersistentFlags().GetBool("debug")
		maxCycles, _ := cmd.Flags().GetInt("max-cycles")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		if !noBanner {
			tui.PrintBanner(ratchet.Version)
		}

		return cli.Run(cli.RunOptions{
			MachinePath: args[0],
			MaxCycles:   maxCycles,
			Logger:      logging.New(debug),
		})
	},
}

func init() {
	runCmd.Flags().Int("max-cycles", 100, "Stop after this many cycles")
	runCmd.Flags().Bool("no-banner", false, "Suppress the startup banner")
	rootCmd.AddCommand(runCmd)
}
