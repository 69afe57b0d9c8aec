package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/ratchet/pkg/domain"
)

// Metrics exposes engine activity as Prometheus counters. Wire it into
// a machine with Hooks:
//
//	m := observability.NewMetrics(prometheus.DefaultRegisterer)
//	machine := ratchet.New(def, ratchet.WithLifecycleHooks(m.Hooks()))
type Metrics struct {
	cycles      *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

// NewMetrics creates and registers the engine counters. Passing a nil
// registerer leaves the metrics unregistered, which tests use to avoid
// global-registry collisions.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ratchet",
			Name:      "cycles_total",
			Help:      "Cycle calls by machine and outcome (fired, idle, terminal).",
		}, []string{"machine", "outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ratchet",
			Name:      "transitions_total",
			Help:      "Fired transitions by machine and transition name.",
		}, []string{"machine", "transition"}),
	}
	if reg != nil {
		reg.MustRegister(m.cycles, m.transitions)
	}
	return m
}

// Hooks returns lifecycle hooks that feed the counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCycle: func(_ context.Context, e *domain.CycleEvent) {
			outcome := "idle"
			switch {
			case e.Fired:
				outcome = "fired"
			case e.Terminal:
				outcome = "terminal"
			}
			m.cycles.WithLabelValues(e.Machine, outcome).Inc()
		},
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			m.transitions.WithLabelValues(e.Machine, e.Transition).Inc()
		},
	}
}

// Cycles exposes the cycle counter, mainly for tests.
func (m *Metrics) Cycles() *prometheus.CounterVec { return m.cycles }

// Transitions exposes the transition counter, mainly for tests.
func (m *Metrics) Transitions() *prometheus.CounterVec { return m.transitions }
