package model

import (
	"fmt"

	"github.com/aretw0/ratchet/pkg/domain"
)

// Build compiles a Definition into a frozen Model. It is a pure
// function of the definition: the same inputs always produce an
// equivalent model or fail with the same error. Build never invokes a
// condition or callback, it only resolves them.
func Build(def *domain.Definition) (*Model, error) {
	if def == nil {
		return nil, &domain.StateDefinitionError{Reason: domain.ErrMissingInitialState}
	}

	m := &Model{
		name:        def.Name,
		description: def.Description,
		finals:      make(map[*domain.State]bool),
		outgoing:    make(map[*domain.State][]*domain.Transition),
		conditions:  make(map[*domain.Transition]domain.Condition),
		pipelines:   make(map[*domain.Transition][]Stage),
	}

	declared := make(map[*domain.State]bool, len(def.States))
	seenNames := make(map[string]bool, len(def.States))

	for _, s := range def.States {
		if s.Name() == "" {
			return nil, &domain.StateDefinitionError{Machine: def.Name, Reason: domain.ErrUnnamedState}
		}
		if seenNames[s.Name()] {
			return nil, &domain.StateDefinitionError{
				Machine: def.Name, State: s.Name(), Reason: domain.ErrDuplicateState,
			}
		}
		seenNames[s.Name()] = true
		declared[s] = true

		if s.Initial() {
			if m.initial != nil {
				return nil, &domain.StateDefinitionError{
					Machine: def.Name, State: s.Name(), Reason: domain.ErrDuplicateInitialState,
				}
			}
			m.initial = s
		}
		if s.Final() {
			m.finals[s] = true
		}
		m.states = append(m.states, s)
	}

	// Index of (source, target, name) triples for duplicate detection.
	type edgeKey struct {
		source, target *domain.State
		name           string
	}
	seenEdges := make(map[edgeKey]bool, len(def.Transitions))

	for _, t := range def.Transitions {
		if t.Name() == "" {
			return nil, &domain.TransitionDefinitionError{
				Machine: def.Name, Reason: domain.ErrUnnamedTransition,
			}
		}
		if t.Source() == nil || t.Target() == nil {
			return nil, &domain.TransitionDefinitionError{
				Machine: def.Name, Transition: t.Name(), Reason: domain.ErrNilTransitionEndpoint,
			}
		}
		if !declared[t.Source()] || !declared[t.Target()] {
			return nil, &domain.TransitionDefinitionError{
				Machine: def.Name, Transition: t.Name(), Reason: domain.ErrUndeclaredState,
			}
		}

		cond, ok := def.Conditions[t.Condition()]
		if t.Condition() == "" || !ok || cond == nil {
			return nil, &domain.TransitionDefinitionError{
				Machine:    def.Name,
				Transition: t.Name(),
				Condition:  t.Condition(),
				Reason:     domain.ErrUnresolvedCondition,
			}
		}

		key := edgeKey{source: t.Source(), target: t.Target(), name: t.Name()}
		if seenEdges[key] {
			return nil, &domain.TransitionDefinitionError{
				Machine: def.Name, Transition: t.Name(), Reason: domain.ErrDuplicateTransition,
			}
		}
		seenEdges[key] = true

		m.transitions = append(m.transitions, t)
		m.outgoing[t.Source()] = append(m.outgoing[t.Source()], t)
		m.conditions[t] = cond
		m.pipelines[t] = buildPipeline(def, t)
	}

	if m.initial == nil {
		return nil, &domain.StateDefinitionError{Machine: def.Name, Reason: domain.ErrMissingInitialState}
	}
	if len(m.finals) == 0 {
		return nil, &domain.StateDefinitionError{Machine: def.Name, Reason: domain.ErrMissingFinalState}
	}
	if len(m.transitions) == 0 {
		return nil, &domain.TransitionDefinitionError{Machine: def.Name, Reason: domain.ErrNoTransitions}
	}

	m.graph = domain.NewGraph(&domain.Definition{
		Name:        m.name,
		Description: m.description,
		States:      m.states,
		Transitions: m.transitions,
	})

	return m, nil
}

// buildPipeline resolves the callback pipeline for one transition in
// the fixed five-stage order. Missing hooks are simply skipped; the
// event context for each present stage is precomputed here so the
// runtime never performs name-based lookup.
func buildPipeline(def *domain.Definition, t *domain.Transition) []Stage {
	stages := []struct {
		hook  string
		event domain.Event
	}{
		{
			hook:  fmt.Sprintf("before_%s", t.Name()),
			event: domain.Event{Type: domain.EventBefore, Transition: t},
		},
		{
			hook:  fmt.Sprintf("on_exit_%s", t.Source().Name()),
			event: domain.Event{Type: domain.EventExit, Transition: t, State: t.Source()},
		},
		{
			hook:  fmt.Sprintf("on_%s", t.Name()),
			event: domain.Event{Type: domain.EventOn, Transition: t},
		},
		{
			hook:  fmt.Sprintf("after_%s", t.Name()),
			event: domain.Event{Type: domain.EventAfter, Transition: t},
		},
		{
			hook:  fmt.Sprintf("on_enter_%s", t.Target().Name()),
			event: domain.Event{Type: domain.EventEnter, Transition: t, State: t.Target()},
		},
	}

	var pipeline []Stage
	for _, s := range stages {
		if fn, ok := def.Callbacks[s.hook]; ok && fn != nil {
			pipeline = append(pipeline, Stage{Fn: fn, Event: s.event})
		}
	}
	return pipeline
}
