// Package machine provides a flat, table-driven finite state machine.
//
// A Machine is built from a Schema, a static table of states and the
// transitions each event triggers from them. Send looks up the transition
// for the current state, moves to its target, notifies subscribers when the
// state actually changed and then runs the transition's named actions.
// Events the current state does not handle are ignored, so a machine can be
// fed arbitrary event streams. Dispatch is synchronous and runs to
// completion before Send returns.
//
// Actions whose name has no registered handler are skipped, unless
// WithStrictActions is used, in which case New rejects the configuration.
package machine

import (
	"fmt"
	"log/slog"

	"github.com/enetx/g"
)

// New validates schema and returns a machine positioned at its initial state.
// The schema is copied, so the caller may reuse or modify it afterwards.
func New(schema Schema, opts ...Option) (*Machine, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("build machine: %w", err)
	}

	m := &Machine{
		schema:  schema.clone(),
		actions: make(g.Map[Action, Handler]),
		current: schema.Initial,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = slog.Default()
	}

	if m.strict {
		if err := m.schema.missingAction(m.actions); err != nil {
			return nil, fmt.Errorf("build machine: %w", err)
		}
	}

	return m, nil
}

// MustNew is like New but panics if the schema or configuration is invalid.
func MustNew(schema Schema, opts ...Option) *Machine {
	m, err := New(schema, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Clone returns a new machine with the same schema, handlers and logger,
// positioned at the initial state and without subscribers.
func (m *Machine) Clone() *Machine {
	return &Machine{
		schema:  m.schema,
		actions: m.actions.Clone(),
		strict:  m.strict,
		logger:  m.logger,
		current: m.schema.Initial,
	}
}

// Current returns the current state.
func (m *Machine) Current() State { return m.current }

// Matches reports whether the current state is one of states.
func (m *Machine) Matches(states ...State) bool {
	return g.SliceOf(states...).Contains(m.current)
}

// Can reports whether the current state has a transition for event.
func (m *Machine) Can(event Event) bool {
	return m.schema.States[m.current].Contains(event)
}

// Events returns the events accepted in the current state, sorted.
func (m *Machine) Events() g.Slice[Event] {
	return eventIDs(m.schema.States[m.current])
}

// States returns every state defined by the schema, sorted.
func (m *Machine) States() g.Slice[State] {
	return m.schema.stateIDs()
}

// Send dispatches event with an optional payload and returns the machine.
//
// If the current state has no transition for event nothing happens.
// Otherwise, when the target differs from the current state, the state is
// updated and every subscriber is called in subscription order with the
// current state. A self-transition leaves the state alone and notifies no
// one. The transition's actions then run in order with event and the payload.
//
// Only the first payload argument is used.
func (m *Machine) Send(event Event, payload ...any) *Machine {
	if st, ok := m.advance(event, payload); ok {
		st.run(m.Current)
	}

	return m
}

// SendMessage is Send for an event carried together with its payload.
func (m *Machine) SendMessage(msg Message) *Machine {
	return m.Send(msg.Type, msg.Payload)
}

// step is a fired transition whose callbacks have not run yet.
type step struct {
	event       Event
	payload     any
	subscribers g.Slice[*Subscription]
	handlers    g.Slice[Handler]
}

// advance applies the transition for event to the current state and
// resolves everything step.run needs, so callbacks can run without holding
// any lock. The subscriber list is a snapshot: subscribing or unsubscribing
// from inside a callback only affects later notifications.
func (m *Machine) advance(event Event, payload []any) (step, bool) {
	t, ok := m.schema.States[m.current][event]
	if !ok {
		m.logger.Debug("unmatched event ignored", "state", m.current, "event", event)
		return step{}, false
	}

	st := step{event: event}
	if len(payload) > 0 {
		st.payload = payload[0]
	}

	if t.Target != m.current {
		m.logger.Debug("state changed", "from", m.current, "to", t.Target, "event", event)

		m.current = t.Target
		st.subscribers = m.subscribers.Clone()
	}

	for _, name := range t.Actions {
		h := m.actions[name]
		if h == nil {
			m.logger.Debug("action skipped: no handler", "action", name, "event", event)
			continue
		}

		st.handlers.Push(h)
	}

	return st, true
}

// run notifies the subscribers and then invokes the handlers. Each
// subscriber receives the state current at the moment it is called, which
// differs from the transition target when an earlier callback sent another
// event.
func (st step) run(current func() State) {
	for _, sub := range st.subscribers {
		if sub.fn != nil {
			sub.fn(current())
		}
	}

	for _, h := range st.handlers {
		h(st.event, st.payload)
	}
}

// Subscribe registers fn to be called with the new state after every state
// change. It is not called for the current state. The returned handle
// identifies the registration for Unsubscribe.
func (m *Machine) Subscribe(fn Listener) *Subscription {
	sub := &Subscription{fn: fn}
	m.subscribers.Push(sub)

	return sub
}

// Unsubscribe removes every registration of sub. Unknown or nil handles are ignored.
func (m *Machine) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	m.subscribers = m.subscribers.
		Iter().
		Exclude(func(s *Subscription) bool { return s == sub }).
		Collect()
}

// Observe subscribes fn and returns a function that unsubscribes it.
// The cancel function is safe to call more than once.
func (m *Machine) Observe(fn Listener) (cancel func()) {
	sub := m.Subscribe(fn)
	return func() { m.Unsubscribe(sub) }
}

// Sync wraps the machine for concurrent use. The machine must not be used
// directly afterwards.
func (m *Machine) Sync() *SyncMachine {
	return &SyncMachine{m: m}
}
