package domain

// Instance is the view of a running machine handed to conditions and
// callbacks. It is implemented by the engine; user code never constructs
// one directly.
type Instance interface {
	// Name returns the instance name given at construction.
	Name() string
	// State returns the current state.
	State() *State
	// Context returns the opaque collaborator object supplied at
	// construction (e.g. a hardware facade). The engine never
	// interprets it.
	Context() any
}

// Condition is a predicate deciding whether a transition may fire.
// It receives the instance and the candidate transition, and must not
// assume it runs at most once per cycle: conditions earlier in
// declaration order are evaluated first and may preempt it.
type Condition func(m Instance, t *Transition) bool

// Callback is a lifecycle hook fired while a transition is being applied.
// The event describes which stage is firing and carries the transition
// or the entered/exited state. Callbacks cannot veto the transition.
type Callback func(m Instance, e Event)

// Definition is the declarative table describing one machine type:
// its states and transitions in declaration order, plus the named
// condition and callback functions the model builder resolves against.
//
// A Definition is data, not a validated machine. All structural
// invariants (exactly one initial state, resolvable conditions, ...)
// are enforced when the model is built on first construction.
type Definition struct {
	Name        string
	Description string

	// States in declaration order. Names must be unique and non-empty.
	States []*State

	// Transitions in declaration order. This order is the runtime
	// tie-break: first declared, first tried.
	Transitions []*Transition

	// Conditions maps condition identifiers to predicates.
	Conditions map[string]Condition

	// Callbacks maps lifecycle hook names (before_<t>, on_exit_<s>,
	// on_<t>, after_<t>, on_enter_<s>) to functions.
	Callbacks map[string]Callback
}

// StateByName returns the declared state with the given name, or nil.
func (d *Definition) StateByName(name string) *State {
	for _, s := range d.States {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// TransitionByName returns the declared transition with the given name, or nil.
func (d *Definition) TransitionByName(name string) *Transition {
	for _, t := range d.Transitions {
		if t.Name() == name {
			return t
		}
	}
	return nil
}
