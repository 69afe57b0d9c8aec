package dsl

import (
	"fmt"

	"github.com/aretw0/ratchet/pkg/domain"
)

// Builder accumulates a machine declaration and compiles it into a
// domain.Definition. Declaration order is preserved for both states and
// transitions; transition order is the runtime tie-break.
type Builder struct {
	name        string
	description string
	states      []*StateBuilder
	transitions []*TransitionBuilder
	conditions  map[string]domain.Condition
	callbacks   map[string]domain.Callback
	errs        []error
}

// New creates a builder for a machine type with the given name.
func New(name string) *Builder {
	return &Builder{
		name:       name,
		conditions: make(map[string]domain.Condition),
		callbacks:  make(map[string]domain.Callback),
	}
}

// Describe sets the machine description.
func (b *Builder) Describe(desc string) *Builder {
	b.description = desc
	return b
}

// State declares a new state. Re-declaring a name is recorded as an
// error and reported by Build.
func (b *Builder) State(name string) *StateBuilder {
	for _, sb := range b.states {
		if sb.name == name {
			b.errs = append(b.errs, fmt.Errorf("state %q declared twice", name))
			return sb
		}
	}
	sb := &StateBuilder{name: name}
	b.states = append(b.states, sb)
	return sb
}

// Transition declares a new transition under its registration name.
// Source, target and condition are attached with the fluent methods of
// the returned TransitionBuilder.
func (b *Builder) Transition(name string) *TransitionBuilder {
	tb := &TransitionBuilder{name: name}
	b.transitions = append(b.transitions, tb)
	return tb
}

// Condition registers a named predicate transitions can reference.
func (b *Builder) Condition(name string, fn domain.Condition) *Builder {
	b.conditions[name] = fn
	return b
}

// Callback registers a lifecycle hook under its full conventional name
// (before_<transition>, on_exit_<state>, ...). The stage helpers below
// are the usual way to do this.
func (b *Builder) Callback(name string, fn domain.Callback) *Builder {
	b.callbacks[name] = fn
	return b
}

// Before registers a hook fired before the named transition's pipeline.
func (b *Builder) Before(transition string, fn domain.Callback) *Builder {
	return b.Callback("before_"+transition, fn)
}

// On registers the named transition's main hook.
func (b *Builder) On(transition string, fn domain.Callback) *Builder {
	return b.Callback("on_"+transition, fn)
}

// After registers a hook fired after the named transition's main hook.
func (b *Builder) After(transition string, fn domain.Callback) *Builder {
	return b.Callback("after_"+transition, fn)
}

// OnExit registers a hook fired when the named state is being left.
func (b *Builder) OnExit(state string, fn domain.Callback) *Builder {
	return b.Callback("on_exit_"+state, fn)
}

// OnEnter registers a hook fired when the named state is being entered.
func (b *Builder) OnEnter(state string, fn domain.Callback) *Builder {
	return b.Callback("on_enter_"+state, fn)
}

// Build resolves state references and returns the declarative table.
// It fails fast on reference errors (unknown from/to states, duplicate
// state names); structural invariants such as exactly-one-initial are
// the model builder's job and surface on first construction.
func (b *Builder) Build() (*domain.Definition, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}

	def := &domain.Definition{
		Name:        b.name,
		Description: b.description,
		Conditions:  b.conditions,
		Callbacks:   b.callbacks,
	}

	byName := make(map[string]*domain.State, len(b.states))
	for _, sb := range b.states {
		s := sb.materialize()
		byName[sb.name] = s
		def.States = append(def.States, s)
	}

	for _, tb := range b.transitions {
		source, ok := byName[tb.from]
		if !ok {
			return nil, fmt.Errorf("transition %q: unknown source state %q", tb.name, tb.from)
		}
		target, ok := byName[tb.to]
		if !ok {
			return nil, fmt.Errorf("transition %q: unknown target state %q", tb.name, tb.to)
		}

		var opts []domain.TransitionOption
		if tb.description != "" {
			opts = append(opts, domain.Describe(tb.description))
		}
		t := domain.NewTransition(source, target, tb.condition, opts...)
		def.Transitions = append(def.Transitions, t.Renamed(tb.name))
	}

	return def, nil
}

// StateBuilder provides a fluent API for configuring one state.
type StateBuilder struct {
	name        string
	description string
	initial     bool
	final       bool
}

// Initial marks the state as the machine's entry point.
func (s *StateBuilder) Initial() *StateBuilder {
	s.initial = true
	return s
}

// Final marks the state as terminal.
func (s *StateBuilder) Final() *StateBuilder {
	s.final = true
	return s
}

// Desc sets the state description.
func (s *StateBuilder) Desc(desc string) *StateBuilder {
	s.description = desc
	return s
}

func (s *StateBuilder) materialize() *domain.State {
	var opts []domain.StateOption
	if s.initial {
		opts = append(opts, domain.Initial())
	}
	if s.final {
		opts = append(opts, domain.Final())
	}
	if s.description != "" {
		opts = append(opts, domain.WithDescription(s.description))
	}
	return domain.NewState(s.name, opts...)
}

// TransitionBuilder provides a fluent API for configuring one transition.
type TransitionBuilder struct {
	name        string
	description string
	from        string
	to          string
	condition   string
}

// From sets the source state by name.
func (t *TransitionBuilder) From(state string) *TransitionBuilder {
	t.from = state
	return t
}

// To sets the target state by name.
func (t *TransitionBuilder) To(state string) *TransitionBuilder {
	t.to = state
	return t
}

// When sets the guarding condition identifier.
func (t *TransitionBuilder) When(condition string) *TransitionBuilder {
	t.condition = condition
	return t
}

// Desc sets the transition description.
func (t *TransitionBuilder) Desc(desc string) *TransitionBuilder {
	t.description = desc
	return t
}
