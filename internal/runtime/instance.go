// Package runtime drives individual machine instances against a shared,
// immutable model.
package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/ratchet/internal/model"
	"github.com/aretw0/ratchet/pkg/domain"
)

// Instance is a single running machine. It holds a reference to the
// frozen model plus the only mutable piece: the current state.
//
// An Instance is not internally synchronized. It must be driven by one
// logical owner at a time; distinct instances may run concurrently
// without restriction since they share only the read-only model.
type Instance struct {
	name        string
	description string
	mdl         *model.Model
	current     *domain.State
	context     any
	logger      *slog.Logger
	hooks       domain.LifecycleHooks
}

// Option configures an Instance at construction time.
type Option func(*Instance)

// WithDescription attaches a human-readable description.
func WithDescription(desc string) Option {
	return func(i *Instance) {
		i.description = desc
	}
}

// WithContext attaches the opaque collaborator object conditions and
// callbacks may consult via Instance.Context.
func WithContext(ctx any) Option {
	return func(i *Instance) {
		i.context = ctx
	}
}

// WithLogger sets a structured logger for transition tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Instance) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(i *Instance) {
		i.hooks = hooks
	}
}

// New creates an instance positioned at the model's initial state.
func New(mdl *model.Model, name string, opts ...Option) *Instance {
	i := &Instance{
		name:    name,
		mdl:     mdl,
		current: mdl.Initial(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Name returns the instance name given at construction.
func (i *Instance) Name() string { return i.name }

// Description returns the optional instance description.
func (i *Instance) Description() string { return i.description }

// State returns the current state.
func (i *Instance) State() *domain.State { return i.current }

// Context returns the opaque collaborator object, or nil.
func (i *Instance) Context() any { return i.context }

// Is reports whether the instance currently sits on the named state.
func (i *Instance) Is(stateName string) bool {
	return i.current != nil && i.current.Name() == stateName
}

// Done reports whether the instance has reached a final state.
func (i *Instance) Done() bool {
	return i.current != nil && i.mdl.IsFinal(i.current)
}

// Cycle performs one evaluation step: it tries the current state's
// outgoing transitions in declaration order and fires the first one
// whose condition holds.
//
// It returns true if a transition fired. A false result is a normal
// outcome, not an error: either no condition held this cycle, or the
// instance is already terminal (distinguish with Done). Errors are
// reserved for instances in an unusable condition.
//
// Once a condition matches, the transition's callback pipeline runs
// synchronously and in order; only after the full pipeline completes is
// the current state advanced. Later candidates are never evaluated once
// one has matched, even if their conditions would also hold.
func (i *Instance) Cycle(ctx context.Context) (bool, error) {
	if i.mdl == nil || i.current == nil {
		return false, &domain.RuntimeStateError{
			Machine:  i.machineName(),
			Instance: i.name,
			Reason:   domain.ErrUninitializedInstance,
		}
	}

	if i.mdl.IsFinal(i.current) {
		i.emitCycle(ctx, false, true)
		return false, nil
	}

	candidates := i.mdl.Outgoing(i.current)
	if len(candidates) == 0 {
		// The model builder cannot produce this for a well-formed
		// reachable graph, but the runtime must not silently spin.
		return false, &domain.RuntimeStateError{
			Machine:  i.machineName(),
			Instance: i.name,
			State:    i.current.Name(),
			Reason:   domain.ErrNoOutgoingTransitions,
		}
	}

	for _, t := range candidates {
		cond := i.mdl.Condition(t)
		if !cond(i, t) {
			continue
		}

		for _, stage := range i.mdl.Pipeline(t) {
			stage.Fn(i, stage.Event)
		}

		// Commit is the pipeline's last step: a panicking callback
		// must not leave the instance observably transitioned.
		from := i.current
		i.current = t.Target()

		i.logger.Debug("transition fired",
			"machine", i.machineName(),
			"instance", i.name,
			"transition", t.Name(),
			"from", from.Name(),
			"to", i.current.Name(),
		)
		i.emitTransition(ctx, t, from)
		i.emitCycle(ctx, true, false)
		return true, nil
	}

	i.emitCycle(ctx, false, false)
	return false, nil
}

func (i *Instance) machineName() string {
	if i.mdl == nil {
		return ""
	}
	return i.mdl.Name()
}

func (i *Instance) emitTransition(ctx context.Context, t *domain.Transition, from *domain.State) {
	if i.hooks.OnTransition == nil {
		return
	}
	i.hooks.OnTransition(ctx, &domain.TransitionEvent{
		Timestamp:  time.Now(),
		Machine:    i.machineName(),
		Instance:   i.name,
		Transition: t.Name(),
		From:       from.Name(),
		To:         t.Target().Name(),
	})
}

func (i *Instance) emitCycle(ctx context.Context, fired, terminal bool) {
	if i.hooks.OnCycle == nil {
		return
	}
	i.hooks.OnCycle(ctx, &domain.CycleEvent{
		Timestamp: time.Now(),
		Machine:   i.machineName(),
		Instance:  i.name,
		State:     i.current.Name(),
		Fired:     fired,
		Terminal:  terminal,
	})
}
