// Package validator performs structural validation of a machine graph
// for tooling. Unlike the model builder it does not need bound
// conditions, collects every problem instead of failing on the first,
// and also reports reachability findings the builder does not check.
package validator

import (
	"fmt"

	"github.com/aretw0/ratchet/pkg/domain"
)

// Report is the outcome of a validation pass. Errors are violations of
// the machine invariants; Warnings are reachability findings that do
// not prevent a model from building.
type Report struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the graph satisfies every structural invariant.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

// Validate checks the structural invariants of a machine graph:
// exactly one initial state, at least one final state, at least one
// transition, unique non-empty state names, known transition endpoints,
// and no duplicate (from, to, name) triples. It then walks the graph
// from the initial state and warns about unreachable states and
// non-final states with no way out.
func Validate(g *domain.Graph) *Report {
	r := &Report{}

	states := make(map[string]domain.StateInfo, len(g.States))
	var initials, finals int
	for _, s := range g.States {
		if s.Name == "" {
			r.Errors = append(r.Errors, "state with empty name")
			continue
		}
		if _, dup := states[s.Name]; dup {
			r.Errors = append(r.Errors, fmt.Sprintf("duplicate state name %q", s.Name))
			continue
		}
		states[s.Name] = s
		if s.Initial {
			initials++
		}
		if s.Final {
			finals++
		}
	}

	switch {
	case initials == 0:
		r.Errors = append(r.Errors, "no initial state defined")
	case initials > 1:
		r.Errors = append(r.Errors, "more than one initial state defined")
	}
	if finals == 0 {
		r.Errors = append(r.Errors, "no final state defined")
	}
	if len(g.Transitions) == 0 {
		r.Errors = append(r.Errors, "no transitions defined")
	}

	type edge struct{ from, to, name string }
	seen := make(map[edge]bool, len(g.Transitions))
	for _, t := range g.Transitions {
		if t.Name == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("unnamed transition %s -> %s", t.From, t.To))
		}
		if _, ok := states[t.From]; !ok {
			r.Errors = append(r.Errors, fmt.Sprintf("transition %q: unknown source state %q", t.Name, t.From))
		}
		if _, ok := states[t.To]; !ok {
			r.Errors = append(r.Errors, fmt.Sprintf("transition %q: unknown target state %q", t.Name, t.To))
		}
		if t.Condition == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("transition %q has no condition", t.Name))
		}
		key := edge{from: t.From, to: t.To, name: t.Name}
		if seen[key] {
			r.Errors = append(r.Errors, fmt.Sprintf("duplicate transition %q (%s -> %s)", t.Name, t.From, t.To))
		}
		seen[key] = true
	}

	if g.Initial != "" {
		crawl(g, states, r)
	}

	return r
}

// crawl walks the graph breadth-first from the initial state.
func crawl(g *domain.Graph, states map[string]domain.StateInfo, r *Report) {
	visited := make(map[string]bool, len(states))
	queue := []string{g.Initial}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true

		outgoing := g.Outgoing(current)
		if info, ok := states[current]; ok && !info.Final && len(outgoing) == 0 {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("non-final state %q has no outgoing transitions (dead end)", current))
		}
		for _, t := range outgoing {
			if !visited[t.To] {
				queue = append(queue, t.To)
			}
		}
	}

	for _, s := range g.States {
		if s.Name != "" && !visited[s.Name] {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("state %q is unreachable from %q", s.Name, g.Initial))
		}
	}
}
