package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/ratchet/pkg/domain"
)

// GeneratePlantUML produces PlantUML state-diagram markup suitable for
// a PlantUML rendering server. Edges are labeled with the transition
// name and its condition identifier on a second line.
func GeneratePlantUML(g *domain.Graph) string {
	var sb strings.Builder
	sb.WriteString("@startuml\n")
	sb.WriteString(fmt.Sprintf("title State Diagram for %s\n", g.Name))

	for _, s := range g.States {
		if s.Description != "" {
			sb.WriteString(fmt.Sprintf("state %s as \"%s\"\n", s.Name, escapeLabel(s.Description)))
		} else {
			sb.WriteString(fmt.Sprintf("state %s\n", s.Name))
		}
	}

	if g.Initial != "" {
		sb.WriteString(fmt.Sprintf("[*] --> %s\n", g.Initial))
	}

	for _, t := range g.Transitions {
		label := t.Name
		if t.Condition != "" {
			label = fmt.Sprintf("%s:\\n  %s", t.Name, t.Condition)
		}
		sb.WriteString(fmt.Sprintf("%s --> %s : %s\n", t.From, t.To, label))
	}

	for _, f := range g.Finals {
		sb.WriteString(fmt.Sprintf("%s --> [*]\n", f))
	}

	sb.WriteString("@enduml\n")
	return sb.String()
}
