package machine

import (
	"log/slog"
	"sync"

	"github.com/enetx/g"
)

type (
	// State identifies a state in the schema.
	State g.String
	// Event identifies an event type that may trigger a transition.
	Event g.String
	// Action names a side effect registered through WithAction or WithActions.
	Action g.String

	// Handler is invoked for every action of a fired transition with the
	// event that fired it and the payload passed to Send (nil when omitted).
	Handler func(event Event, payload any)
	// Listener receives the new state whenever the current state changes.
	Listener func(state State)

	// Transition is a schema entry for a (state, event) pair.
	Transition struct {
		Target  State           `json:"target"`
		Actions g.Slice[Action] `json:"actions,omitempty"`
	}

	// Table maps the events a state accepts to their transitions.
	Table = g.Map[Event, Transition]

	// Schema is the static transition table of a machine.
	Schema struct {
		Initial State               `json:"initial"`
		States  g.Map[State, Table] `json:"states"`
	}

	// Message is an event together with its payload.
	Message struct {
		Type    Event
		Payload any
	}

	// Subscription is the handle of a registered Listener.
	Subscription struct {
		fn Listener
	}

	// Option configures a Machine at construction.
	Option func(*Machine)

	// Machine is a flat, synchronous state machine driven by a Schema.
	// It is not safe for concurrent use; see SyncMachine.
	Machine struct {
		schema      Schema
		actions     g.Map[Action, Handler]
		strict      bool
		logger      *slog.Logger
		current     State
		subscribers g.Slice[*Subscription]
	}

	// SyncMachine is a thread-safe wrapper around a Machine.
	// State access is guarded by a sync.RWMutex; the listeners and handlers
	// a Send runs are called outside of it.
	SyncMachine struct {
		m  *Machine
		mu sync.RWMutex
	}
)
