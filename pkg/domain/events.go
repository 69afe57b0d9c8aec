package domain

import (
	"context"
	"time"
)

// EventType identifies a callback pipeline stage.
type EventType string

const (
	EventBefore EventType = "before"
	EventExit   EventType = "on_exit"
	EventOn     EventType = "on"
	EventAfter  EventType = "after"
	EventEnter  EventType = "on_enter"
)

// Event is the context handed to a stage callback. Transition is always
// set; State is set for the on_exit and on_enter stages (the state being
// left or entered).
type Event struct {
	Type       EventType
	Transition *Transition
	State      *State
}

// TransitionEvent describes a fired transition for observability hooks.
type TransitionEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	Machine    string    `json:"machine"`
	Instance   string    `json:"instance"`
	Transition string    `json:"transition"`
	From       string    `json:"from"`
	To         string    `json:"to"`
}

// CycleEvent describes the outcome of one Cycle call.
type CycleEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Machine   string    `json:"machine"`
	Instance  string    `json:"instance"`
	State     string    `json:"state"`
	// Fired reports whether a transition was applied this cycle.
	Fired bool `json:"fired"`
	// Terminal reports whether the instance was already at a final
	// state when the cycle started.
	Terminal bool `json:"terminal"`
}

// LifecycleHooks defines callbacks for engine observability. Hooks are
// best-effort observers: they run after the fact and cannot influence
// transition selection or abort a cycle.
type LifecycleHooks struct {
	OnTransition func(context.Context, *TransitionEvent)
	OnCycle      func(context.Context, *CycleEvent)
}
