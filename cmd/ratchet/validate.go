package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/ratchet/internal/validator"
	yamladapter "github.com/aretw0/ratchet/pkg/adapters/yaml"
	"github.com/aretw0/ratchet/pkg/domain"
)

// validateCmd checks the structural invariants of a machine definition.
var validateCmd = &cobra.Command{
	Use:   "validate <machine.yaml>",
	Short: "Validate a machine definition",
	Long: `Checks the structural invariants of a machine definition: exactly one
initial state, at least one final state, resolvable transition
endpoints, no duplicates, and reachability from the initial state.
Conditions are checked for presence only; binding them to Go functions
happens in the embedding program.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := yamladapter.Load(args[0], nil)
		if err != nil {
			return err
		}

		report := validator.Validate(domain.NewGraph(def))
		for _, e := range report.Errors {
			fmt.Printf("error: %s\n", e)
		}
		for _, w := range report.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
		if !report.OK() {
			return fmt.Errorf("machine %q is invalid (%d errors)", def.Name, len(report.Errors))
		}

		fmt.Printf("machine %q is structurally valid (%d states, %d transitions)\n",
			def.Name, len(def.States), len(def.Transitions))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
