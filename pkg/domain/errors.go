package domain

import (
	"errors"
	"fmt"
)

// Sentinel reasons for definition and runtime failures. They are wrapped
// by the typed errors below, so callers can match either the category
// (errors.As) or the exact reason (errors.Is).
var (
	ErrMissingInitialState   = errors.New("no initial state defined")
	ErrDuplicateInitialState = errors.New("more than one initial state defined")
	ErrMissingFinalState     = errors.New("no final state defined")
	ErrUnnamedState          = errors.New("state must have a name")
	ErrDuplicateState        = errors.New("duplicate state name")

	ErrNoTransitions         = errors.New("no transitions defined")
	ErrUnnamedTransition     = errors.New("transition must have a name")
	ErrUnresolvedCondition   = errors.New("condition is missing or not implemented")
	ErrDuplicateTransition   = errors.New("duplicate transition definition")
	ErrUndeclaredState       = errors.New("transition references an undeclared state")
	ErrNilTransitionEndpoint = errors.New("transition has no source or target state")

	ErrUninitializedInstance = errors.New("instance has no current state")
	ErrNoOutgoingTransitions = errors.New("no outgoing transitions for current state")
)

// StateDefinitionError reports a structural problem with a machine's
// state declarations. Raised at model build time.
type StateDefinitionError struct {
	Machine string
	State   string
	Reason  error
}

func (e *StateDefinitionError) Error() string {
	if e.State != "" {
		return fmt.Sprintf("machine %q: state %q: %v", e.Machine, e.State, e.Reason)
	}
	return fmt.Sprintf("machine %q: %v", e.Machine, e.Reason)
}

func (e *StateDefinitionError) Unwrap() error { return e.Reason }

// TransitionDefinitionError reports a structural problem with a machine's
// transition declarations. Raised at model build time.
type TransitionDefinitionError struct {
	Machine    string
	Transition string
	Condition  string
	Reason     error
}

func (e *TransitionDefinitionError) Error() string {
	switch {
	case e.Transition != "" && e.Condition != "":
		return fmt.Sprintf("machine %q: transition %q: condition %q: %v",
			e.Machine, e.Transition, e.Condition, e.Reason)
	case e.Transition != "":
		return fmt.Sprintf("machine %q: transition %q: %v", e.Machine, e.Transition, e.Reason)
	default:
		return fmt.Sprintf("machine %q: %v", e.Machine, e.Reason)
	}
}

func (e *TransitionDefinitionError) Unwrap() error { return e.Reason }

// RuntimeStateError reports an instance in an unusable condition at
// cycle time: constructed incorrectly, or parked on a reachable
// non-final state with no outgoing edges.
type RuntimeStateError struct {
	Machine  string
	Instance string
	State    string
	Reason   error
}

func (e *RuntimeStateError) Error() string {
	if e.State != "" {
		return fmt.Sprintf("machine %q: instance %q: state %q: %v",
			e.Machine, e.Instance, e.State, e.Reason)
	}
	return fmt.Sprintf("machine %q: instance %q: %v", e.Machine, e.Instance, e.Reason)
}

func (e *RuntimeStateError) Unwrap() error { return e.Reason }
