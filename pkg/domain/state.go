package domain

import "fmt"

// State is a named node in a machine graph.
// States are immutable after construction and compared by identity:
// two States are the same state only if they are the same pointer
// within one Definition.
type State struct {
	name        string
	description string
	initial     bool
	final       bool
}

// StateOption configures a State at construction time.
type StateOption func(*State)

// Initial marks the state as the machine's entry point.
// A Definition must contain exactly one initial state.
func Initial() StateOption {
	return func(s *State) {
		s.initial = true
	}
}

// Final marks the state as terminal. Once an instance reaches a final
// state, Cycle becomes a no-op.
func Final() StateOption {
	return func(s *State) {
		s.final = true
	}
}

// WithDescription attaches a human-readable description to the state.
func WithDescription(desc string) StateOption {
	return func(s *State) {
		s.description = desc
	}
}

// NewState creates an immutable state descriptor.
func NewState(name string, opts ...StateOption) *State {
	s := &State{name: name}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the state's unique name within its machine.
func (s *State) Name() string { return s.name }

// Description returns the optional human-readable description.
func (s *State) Description() string { return s.description }

// Initial reports whether this is the machine's entry state.
func (s *State) Initial() bool { return s.initial }

// Final reports whether this state is terminal.
func (s *State) Final() bool { return s.final }

// To creates a Transition from this state to target, guarded by the
// named condition. It is a pure convenience constructor: no registration
// happens until the transition is added to a Definition.
func (s *State) To(target *State, condition string, opts ...TransitionOption) *Transition {
	return NewTransition(s, target, condition, opts...)
}

func (s *State) String() string {
	return fmt.Sprintf("State(%s initial=%t final=%t)", s.name, s.initial, s.final)
}
