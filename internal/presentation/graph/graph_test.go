package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/ratchet/internal/presentation/graph"
	"github.com/aretw0/ratchet/pkg/domain"
)

func doorGraph() *domain.Graph {
	return &domain.Graph{
		Name:    "door",
		Initial: "open",
		Finals:  []string{"locked"},
		States: []domain.StateInfo{
			{Name: "open", Initial: true, Description: "anyone may pass"},
			{Name: "closed"},
			{Name: "locked", Final: true},
		},
		Transitions: []domain.TransitionInfo{
			{Name: "closing", From: "open", To: "closed", Condition: "is_shut"},
			{Name: "locking", From: "closed", To: "locked", Condition: "is_bolted"},
		},
	}
}

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(doorGraph())

	assert.True(t, strings.HasPrefix(out, "stateDiagram-v2\n"))
	assert.Contains(t, out, "open : anyone may pass")
	assert.Contains(t, out, "[*] --> open")
	assert.Contains(t, out, "open --> closed : closing: is_shut")
	assert.Contains(t, out, "closed --> locked : locking: is_bolted")
	assert.Contains(t, out, "locked --> [*]")
}

func TestGenerateMermaid_SanitizesIdentifiers(t *testing.T) {
	g := &domain.Graph{
		Name:    "jobs",
		Initial: "in-flight",
		States: []domain.StateInfo{
			{Name: "in-flight", Initial: true, Description: `the job is "live"`},
			{Name: "done", Final: true},
		},
		Finals: []string{"done"},
		Transitions: []domain.TransitionInfo{
			{Name: "finish", From: "in-flight", To: "done", Condition: "is_complete"},
		},
	}

	out := graph.GenerateMermaid(g)
	assert.Contains(t, out, "[*] --> in_flight")
	assert.Contains(t, out, "in_flight --> done")
	assert.Contains(t, out, "the job is 'live'")
	assert.NotContains(t, out, `"live"`)
}

func TestGeneratePlantUML(t *testing.T) {
	out := graph.GeneratePlantUML(doorGraph())

	assert.True(t, strings.HasPrefix(out, "@startuml\n"))
	assert.True(t, strings.HasSuffix(out, "@enduml\n"))
	assert.Contains(t, out, "title State Diagram for door")
	assert.Contains(t, out, `state open as "anyone may pass"`)
	assert.Contains(t, out, "state closed\n")
	assert.Contains(t, out, "[*] --> open")
	assert.Contains(t, out, `open --> closed : closing:\n  is_shut`)
	assert.Contains(t, out, "locked --> [*]")
}

func TestGeneratePlantUML_OmitsMissingPieces(t *testing.T) {
	g := &domain.Graph{
		Name: "fragment",
		States: []domain.StateInfo{
			{Name: "a"},
		},
		Transitions: []domain.TransitionInfo{
			{Name: "hop", From: "a", To: "a"},
		},
	}

	out := graph.GeneratePlantUML(g)
	assert.NotContains(t, out, "[*] -->", "no initial state means no entry edge")
	assert.Contains(t, out, "a --> a : hop\n", "a condition-less edge keeps a bare label")
}
