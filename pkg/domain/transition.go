package domain

import "fmt"

// Transition is a directed edge between two states, guarded by a named
// condition. Like State, a Transition is immutable and compared by
// identity within one Definition.
type Transition struct {
	name        string
	description string
	source      *State
	target      *State
	condition   string
}

// TransitionOption configures a Transition at construction time.
type TransitionOption func(*Transition)

// Named sets the transition name. Transitions left unnamed inherit
// their registration name when added to a Definition.
func Named(name string) TransitionOption {
	return func(t *Transition) {
		t.name = name
	}
}

// Describe attaches a human-readable description to the transition.
func Describe(desc string) TransitionOption {
	return func(t *Transition) {
		t.description = desc
	}
}

// NewTransition creates an immutable transition descriptor.
// The condition is an identifier resolved against the Definition's
// condition table at model build time, never a live function reference.
func NewTransition(source, target *State, condition string, opts ...TransitionOption) *Transition {
	t := &Transition{
		source:    source,
		target:    target,
		condition: condition,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the transition name, possibly empty before registration.
func (t *Transition) Name() string { return t.name }

// Description returns the optional human-readable description.
func (t *Transition) Description() string { return t.description }

// Source returns the state this transition leaves.
func (t *Transition) Source() *State { return t.source }

// Target returns the state this transition enters.
func (t *Transition) Target() *State { return t.target }

// Condition returns the identifier of the guarding condition.
func (t *Transition) Condition() string { return t.condition }

// Renamed returns a copy of the transition carrying the given name.
// The receiver is left untouched; this is how registration names are
// applied without mutating a shared value.
func (t *Transition) Renamed(name string) *Transition {
	clone := *t
	clone.name = name
	return &clone
}

func (t *Transition) String() string {
	return fmt.Sprintf("Transition(%s: %s -> %s, cond=%s)",
		t.name, t.source.Name(), t.target.Name(), t.condition)
}
