package ratchet

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/ratchet/internal/model"
	"github.com/aretw0/ratchet/internal/runtime"
	"github.com/aretw0/ratchet/pkg/domain"
)

// Machine represents one machine type: a declarative Definition plus
// the lazily-built, immutable model every instance shares.
//
// The model is built exactly once, on the first Construct or Inspect
// call, behind a per-machine gate; unrelated machines never contend.
// A failed build is cached: every subsequent attempt fails with the
// same error, since building is a pure function of the definition.
type Machine struct {
	def    *domain.Definition
	logger *slog.Logger
	hooks  domain.LifecycleHooks

	buildOnce sync.Once
	mdl       *model.Model
	buildErr  error
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets a structured logger inherited by every instance.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks inherited by every
// instance (e.g. a metrics collector).
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// New creates a Machine from a definition. The definition is not
// validated here; validation happens once, when the model is first
// built.
func New(def *domain.Definition, opts ...Option) *Machine {
	m := &Machine{
		def:    def,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// build runs the one-time model construction. Safe for concurrent
// first-instantiation: all callers observe the same completed model
// (or the same error) before proceeding.
func (m *Machine) build() (*model.Model, error) {
	m.buildOnce.Do(func() {
		m.mdl, m.buildErr = model.Build(m.def)
	})
	return m.mdl, m.buildErr
}

// Name returns the machine type name.
func (m *Machine) Name() string {
	if m.def == nil {
		return ""
	}
	return m.def.Name
}

// Definition returns the underlying declarative table.
func (m *Machine) Definition() *domain.Definition { return m.def }

// Construct creates a new instance positioned at the initial state.
// The context object is an opaque collaborator (e.g. a hardware
// facade) that conditions and callbacks may consult; the engine never
// interprets it.
func (m *Machine) Construct(name string, opts ...InstanceOption) (*Instance, error) {
	mdl, err := m.build()
	if err != nil {
		return nil, err
	}

	rtOpts := []runtime.Option{
		runtime.WithLogger(m.logger),
		runtime.WithLifecycleHooks(m.hooks),
	}
	cfg := instanceConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.description != "" {
		rtOpts = append(rtOpts, runtime.WithDescription(cfg.description))
	}
	if cfg.context != nil {
		rtOpts = append(rtOpts, runtime.WithContext(cfg.context))
	}

	return &Instance{rt: runtime.New(mdl, name, rtOpts...)}, nil
}

// Inspect returns the read-only graph view of the built model: initial
// state, final states, and per-state outgoing transitions in the order
// the runtime tries them. It triggers the one-time build if needed.
func (m *Machine) Inspect() (*domain.Graph, error) {
	mdl, err := m.build()
	if err != nil {
		return nil, err
	}
	return mdl.Graph(), nil
}

type instanceConfig struct {
	description string
	context     any
}

// InstanceOption configures a single instance at construction.
type InstanceOption func(*instanceConfig)

// WithDescription attaches a human-readable description to the instance.
func WithDescription(desc string) InstanceOption {
	return func(c *instanceConfig) {
		c.description = desc
	}
}

// WithContext attaches the opaque collaborator object.
func WithContext(ctx any) InstanceOption {
	return func(c *instanceConfig) {
		c.context = ctx
	}
}

// Instance is a running machine. It wraps the internal runtime driver.
//
// An Instance must be driven by one logical owner at a time; concurrent
// Cycle calls on the same instance are not synchronized. The zero value
// is an unconstructed instance: accessors report empty results and
// Cycle fails with ErrUninitializedInstance.
type Instance struct {
	rt *runtime.Instance
}

// Name returns the instance name given at construction.
func (i *Instance) Name() string {
	if i == nil || i.rt == nil {
		return ""
	}
	return i.rt.Name()
}

// State returns the current state, or nil for an unconstructed instance.
func (i *Instance) State() *domain.State {
	if i == nil || i.rt == nil {
		return nil
	}
	return i.rt.State()
}

// Context returns the opaque collaborator object, or nil.
func (i *Instance) Context() any {
	if i == nil || i.rt == nil {
		return nil
	}
	return i.rt.Context()
}

// Is reports whether the instance currently sits on the named state.
func (i *Instance) Is(stateName string) bool {
	if i == nil || i.rt == nil {
		return false
	}
	return i.rt.Is(stateName)
}

// Done reports whether the instance has reached a final state.
func (i *Instance) Done() bool {
	if i == nil || i.rt == nil {
		return false
	}
	return i.rt.Done()
}

// Cycle performs one evaluation step: at most one transition fires.
// It returns true if one did. False with a nil error means either no
// condition held or the instance is terminal; use Done to distinguish.
func (i *Instance) Cycle(ctx context.Context) (bool, error) {
	if i == nil || i.rt == nil {
		return false, &domain.RuntimeStateError{Reason: domain.ErrUninitializedInstance}
	}
	return i.rt.Cycle(ctx)
}
