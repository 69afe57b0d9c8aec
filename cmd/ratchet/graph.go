package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/ratchet/internal/presentation/graph"
	yamladapter "github.com/aretw0/ratchet/pkg/adapters/yaml"
	"github.com/aretw0/ratchet/pkg/domain"
)

// graphCmd renders a machine definition as diagram markup.
var graphCmd = &cobra.Command{
	Use:   "graph <machine.yaml>",
	Short: "Export a machine graph visualization",
	Long:  `Parses a machine definition and outputs Mermaid (default) or PlantUML state-diagram markup.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		def, err := yamladapter.Load(args[0], nil)
		if err != nil {
			return err
		}
		g := domain.NewGraph(def)

		var markup string
		switch format {
		case "mermaid":
			markup = graph.GenerateMermaid(g)
		case "plantuml":
			markup = graph.GeneratePlantUML(g)
		default:
			return fmt.Errorf("unsupported format %q (use mermaid or plantuml)", format)
		}

		if outPath != "" {
			return os.WriteFile(outPath, []byte(markup), 0o644)
		}
		fmt.Print(markup)
		return nil
	},
}

func init() {
	graphCmd.Flags().StringP("format", "f", "mermaid", "Output format: mermaid or plantuml")
	graphCmd.Flags().StringP("out", "o", "", "Write markup to a file instead of stdout")
	rootCmd.AddCommand(graphCmd)
}
