package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/ratchet/internal/presentation/tui"
	yamladapter "github.com/aretw0/ratchet/pkg/adapters/yaml"
	"github.com/aretw0/ratchet/pkg/domain"
)

// describeCmd prints a rendered markdown summary of a machine.
var describeCmd = &cobra.Command{
	Use:   "describe <machine.yaml>",
	Short: "Show a readable summary of a machine definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := yamladapter.Load(args[0], nil)
		if err != nil {
			return err
		}

		render := tui.NewMarkdownRenderer()
		out, err := render(describeMarkdown(domain.NewGraph(def)))
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func describeMarkdown(g *domain.Graph) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", g.Name)
	if g.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", g.Description)
	}

	sb.WriteString("## States\n\n")
	for _, s := range g.States {
		var marks []string
		if s.Initial {
			marks = append(marks, "initial")
		}
		if s.Final {
			marks = append(marks, "final")
		}
		suffix := ""
		if len(marks) > 0 {
			suffix = fmt.Sprintf(" *(%s)*", strings.Join(marks, ", "))
		}
		if s.Description != "" {
			fmt.Fprintf(&sb, "- **%s**%s: %s\n", s.Name, suffix, s.Description)
		} else {
			fmt.Fprintf(&sb, "- **%s**%s\n", s.Name, suffix)
		}
	}

	sb.WriteString("\n## Transitions\n\n")
	for _, t := range g.Transitions {
		fmt.Fprintf(&sb, "- **%s**: `%s` → `%s` when `%s`\n", t.Name, t.From, t.To, t.Condition)
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
