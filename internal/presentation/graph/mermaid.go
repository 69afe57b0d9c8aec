// Package graph renders the read-only inspection view of a machine as
// diagram markup. Renderers consume only domain.Graph: they never touch
// the engine or a live instance.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/ratchet/pkg/domain"
)

// GenerateMermaid produces Mermaid stateDiagram-v2 markup.
// The initial state is entered from [*]; every final state exits to
// [*]; each edge is labeled "name: condition".
func GenerateMermaid(g *domain.Graph) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	for _, s := range g.States {
		safeID := sanitizeID(s.Name)
		if s.Description != "" {
			sb.WriteString(fmt.Sprintf("    %s : %s\n", safeID, escapeLabel(s.Description)))
		}
	}

	if g.Initial != "" {
		sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeID(g.Initial)))
	}

	for _, t := range g.Transitions {
		label := t.Name
		if t.Condition != "" {
			label = fmt.Sprintf("%s: %s", t.Name, t.Condition)
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s : %s\n",
			sanitizeID(t.From), sanitizeID(t.To), escapeLabel(label)))
	}

	for _, f := range g.Finals {
		sb.WriteString(fmt.Sprintf("    %s --> [*]\n", sanitizeID(f)))
	}

	return sb.String()
}

func sanitizeID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}

func escapeLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
