// Package registry holds named condition and callback implementations
// for machines whose structure is defined outside Go code (e.g. YAML
// documents loaded by pkg/adapters/yaml).
package registry

import (
	"sync"

	"github.com/aretw0/ratchet/pkg/domain"
)

// Registry manages the available conditions and callbacks.
type Registry struct {
	mu         sync.RWMutex
	conditions map[string]domain.Condition
	callbacks  map[string]domain.Callback
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		conditions: make(map[string]domain.Condition),
		callbacks:  make(map[string]domain.Callback),
	}
}

// Condition registers a predicate under the given identifier.
// If the identifier exists, it is overwritten.
func (r *Registry) Condition(name string, fn domain.Condition) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conditions[name] = fn
	return r
}

// Callback registers a lifecycle hook under its full conventional name
// (before_<transition>, on_enter_<state>, ...).
func (r *Registry) Callback(name string, fn domain.Callback) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.callbacks[name] = fn
	return r
}

// Conditions returns a snapshot of the registered predicates.
func (r *Registry) Conditions() map[string]domain.Condition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]domain.Condition, len(r.conditions))
	for k, v := range r.conditions {
		out[k] = v
	}
	return out
}

// Callbacks returns a snapshot of the registered hooks.
func (r *Registry) Callbacks() map[string]domain.Callback {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]domain.Callback, len(r.callbacks))
	for k, v := range r.callbacks {
		out[k] = v
	}
	return out
}

// Bind copies the registry's snapshots into the definition's condition
// and callback tables, replacing whatever was there.
func (r *Registry) Bind(def *domain.Definition) {
	def.Conditions = r.Conditions()
	def.Callbacks = r.Callbacks()
}
