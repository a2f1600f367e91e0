package machine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSchema is matched by every schema validation error.
	ErrInvalidSchema = errors.New("machine: invalid schema")
	// ErrConfiguration is matched by every configuration error.
	ErrConfiguration = errors.New("machine: invalid configuration")
)

// ErrEmptyInitial is returned when the schema does not name an initial state.
type ErrEmptyInitial struct{}

func (e *ErrEmptyInitial) Error() string { return "machine: schema has no initial state" }

func (e *ErrEmptyInitial) Is(target error) bool { return target == ErrInvalidSchema }

// ErrUnknownInitial is returned when the initial state is not a key of the schema states.
type ErrUnknownInitial struct {
	State State
}

func (e *ErrUnknownInitial) Error() string {
	return fmt.Sprintf("machine: initial state %q is not defined", e.State)
}

func (e *ErrUnknownInitial) Is(target error) bool { return target == ErrInvalidSchema }

// ErrEmptyIdentifier is returned when a state key or one of its event keys is empty.
// Event is empty when the state key itself is the empty one.
type ErrEmptyIdentifier struct {
	State State
	Event Event
}

func (e *ErrEmptyIdentifier) Error() string {
	if e.State == "" {
		return "machine: schema defines a state with an empty name"
	}

	return fmt.Sprintf("machine: state %q defines an event with an empty name", e.State)
}

func (e *ErrEmptyIdentifier) Is(target error) bool { return target == ErrInvalidSchema }

// ErrUnknownTarget is returned when a transition points at a state the
// schema does not define. Accepting it would let the machine reach a state
// with no event table.
type ErrUnknownTarget struct {
	From   State
	Event  Event
	Target State
}

func (e *ErrUnknownTarget) Error() string {
	return fmt.Sprintf("machine: transition from state %q on event %q targets undefined state %q",
		e.From, e.Event, e.Target)
}

func (e *ErrUnknownTarget) Is(target error) bool { return target == ErrInvalidSchema }

// ErrMissingAction is returned by New under WithStrictActions when a
// transition names an action that has no handler.
type ErrMissingAction struct {
	From   State
	Event  Event
	Action Action
}

func (e *ErrMissingAction) Error() string {
	return fmt.Sprintf("machine: no handler for action %q on transition from state %q on event %q",
		e.Action, e.From, e.Event)
}

func (e *ErrMissingAction) Is(target error) bool { return target == ErrConfiguration }
