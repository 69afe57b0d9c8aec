// Package model compiles a domain.Definition into an immutable,
// validated transition graph shared by every instance of a machine type.
package model

import (
	"github.com/aretw0/ratchet/pkg/domain"
)

// Stage is one precomputed step of a transition's callback pipeline:
// a resolved callback plus the event context it will receive.
type Stage struct {
	Fn    domain.Callback
	Event domain.Event
}

// Model is the frozen result of building a machine type. No field is
// mutated after Build returns, so concurrent readers need no locking.
type Model struct {
	name        string
	description string
	initial     *domain.State
	finals      map[*domain.State]bool
	states      []*domain.State
	transitions []*domain.Transition

	// outgoing preserves declaration order per source state; that
	// order is the runtime tie-break.
	outgoing   map[*domain.State][]*domain.Transition
	conditions map[*domain.Transition]domain.Condition
	pipelines  map[*domain.Transition][]Stage

	graph *domain.Graph
}

// Name returns the machine type name.
func (m *Model) Name() string { return m.name }

// Initial returns the machine's entry state.
func (m *Model) Initial() *domain.State { return m.initial }

// IsFinal reports whether s is a final state of this machine.
func (m *Model) IsFinal(s *domain.State) bool { return m.finals[s] }

// States returns the declared states in declaration order.
func (m *Model) States() []*domain.State { return m.states }

// Outgoing returns the transitions leaving s, in declaration order.
// The returned slice is shared and must not be modified.
func (m *Model) Outgoing(s *domain.State) []*domain.Transition { return m.outgoing[s] }

// Condition returns the resolved predicate guarding t.
func (m *Model) Condition(t *domain.Transition) domain.Condition { return m.conditions[t] }

// Pipeline returns the precomputed callback stages for t, in firing order.
func (m *Model) Pipeline(t *domain.Transition) []Stage { return m.pipelines[t] }

// Graph returns the inspection view of the built machine. The view is
// computed once at build time from the frozen model.
func (m *Model) Graph() *domain.Graph { return m.graph }
