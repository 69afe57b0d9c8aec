package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/ratchet/internal/validator"
	"github.com/aretw0/ratchet/pkg/domain"
)

func doorGraph() *domain.Graph {
	return &domain.Graph{
		Name:    "door",
		Initial: "open",
		Finals:  []string{"locked"},
		States: []domain.StateInfo{
			{Name: "open", Initial: true},
			{Name: "closed"},
			{Name: "locked", Final: true},
		},
		Transitions: []domain.TransitionInfo{
			{Name: "closing", From: "open", To: "closed", Condition: "is_shut"},
			{Name: "locking", From: "closed", To: "locked", Condition: "is_bolted"},
		},
	}
}

func TestValidate_WellFormed(t *testing.T) {
	report := validator.Validate(doorGraph())
	assert.True(t, report.OK())
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
}

func TestValidate_StructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(g *domain.Graph)
		wantErr string
	}{
		{
			name: "no initial state",
			mutate: func(g *domain.Graph) {
				g.Initial = ""
				g.States[0].Initial = false
			},
			wantErr: "no initial state defined",
		},
		{
			name: "two initial states",
			mutate: func(g *domain.Graph) {
				g.States[1].Initial = true
			},
			wantErr: "more than one initial state defined",
		},
		{
			name: "no final state",
			mutate: func(g *domain.Graph) {
				g.Finals = nil
				g.States[2].Final = false
			},
			wantErr: "no final state defined",
		},
		{
			name: "no transitions",
			mutate: func(g *domain.Graph) {
				g.Transitions = nil
			},
			wantErr: "no transitions defined",
		},
		{
			name: "empty state name",
			mutate: func(g *domain.Graph) {
				g.States[1].Name = ""
			},
			wantErr: "state with empty name",
		},
		{
			name: "duplicate state name",
			mutate: func(g *domain.Graph) {
				g.States[1].Name = "open"
			},
			wantErr: `duplicate state name "open"`,
		},
		{
			name: "unknown source",
			mutate: func(g *domain.Graph) {
				g.Transitions[0].From = "ajar"
			},
			wantErr: `transition "closing": unknown source state "ajar"`,
		},
		{
			name: "unknown target",
			mutate: func(g *domain.Graph) {
				g.Transitions[1].To = "ajar"
			},
			wantErr: `transition "locking": unknown target state "ajar"`,
		},
		{
			name: "missing condition",
			mutate: func(g *domain.Graph) {
				g.Transitions[0].Condition = ""
			},
			wantErr: `transition "closing" has no condition`,
		},
		{
			name: "unnamed transition",
			mutate: func(g *domain.Graph) {
				g.Transitions[0].Name = ""
			},
			wantErr: "unnamed transition open -> closed",
		},
		{
			name: "duplicate transition",
			mutate: func(g *domain.Graph) {
				g.Transitions = append(g.Transitions, g.Transitions[0])
			},
			wantErr: `duplicate transition "closing" (open -> closed)`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := doorGraph()
			tc.mutate(g)
			report := validator.Validate(g)
			assert.False(t, report.OK())
			assert.Contains(t, report.Errors, tc.wantErr)
		})
	}
}

func TestValidate_CollectsEveryError(t *testing.T) {
	g := doorGraph()
	g.Finals = nil
	g.States[2].Final = false
	g.Transitions[0].Condition = ""

	report := validator.Validate(g)
	assert.Len(t, report.Errors, 2)
}

func TestValidate_ReachabilityWarnings(t *testing.T) {
	t.Run("unreachable state", func(t *testing.T) {
		g := doorGraph()
		g.States = append(g.States, domain.StateInfo{Name: "attic", Final: true})

		report := validator.Validate(g)
		assert.True(t, report.OK(), "reachability findings are warnings, not errors")
		assert.Contains(t, report.Warnings, `state "attic" is unreachable from "open"`)
	})

	t.Run("dead end", func(t *testing.T) {
		g := doorGraph()
		// Remove the way out of "closed" but keep the graph buildable.
		g.Transitions[1].From = "open"

		report := validator.Validate(g)
		assert.Contains(t, report.Warnings,
			`non-final state "closed" has no outgoing transitions (dead end)`)
	})

	t.Run("final dead end is fine", func(t *testing.T) {
		report := validator.Validate(doorGraph())
		assert.Empty(t, report.Warnings, "a final state needs no way out")
	})
}
