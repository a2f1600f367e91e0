package machine

import "github.com/enetx/g"

// NewSync is like New but returns a thread-safe machine.
func NewSync(schema Schema, opts ...Option) (*SyncMachine, error) {
	m, err := New(schema, opts...)
	if err != nil {
		return nil, err
	}

	return m.Sync(), nil
}

// MustNewSync is like NewSync but panics if the schema or configuration is invalid.
func MustNewSync(schema Schema, opts ...Option) *SyncMachine {
	return MustNew(schema, opts...).Sync()
}

// Send is the thread-safe version of Machine.Send.
// The state changes under the lock; listeners and handlers run after it is
// released, so they may call back into the machine. A listener receives the
// state current when it is called, which other goroutines may already have
// moved on.
func (sm *SyncMachine) Send(event Event, payload ...any) *SyncMachine {
	sm.mu.Lock()
	st, ok := sm.m.advance(event, payload)
	sm.mu.Unlock()

	if ok {
		st.run(sm.Current)
	}

	return sm
}

// SendMessage is the thread-safe version of Machine.SendMessage.
func (sm *SyncMachine) SendMessage(msg Message) *SyncMachine {
	return sm.Send(msg.Type, msg.Payload)
}

// Current is the thread-safe version of Machine.Current.
func (sm *SyncMachine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.Current()
}

// Matches is the thread-safe version of Machine.Matches.
func (sm *SyncMachine) Matches(states ...State) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.Matches(states...)
}

// Can is the thread-safe version of Machine.Can.
func (sm *SyncMachine) Can(event Event) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.Can(event)
}

// Events is the thread-safe version of Machine.Events.
func (sm *SyncMachine) Events() g.Slice[Event] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.Events()
}

// States returns every state defined by the schema, sorted.
// The schema never changes, so no lock is taken.
func (sm *SyncMachine) States() g.Slice[State] {
	return sm.m.States()
}

// Subscribe is the thread-safe version of Machine.Subscribe.
func (sm *SyncMachine) Subscribe(fn Listener) *Subscription {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.Subscribe(fn)
}

// Unsubscribe is the thread-safe version of Machine.Unsubscribe.
func (sm *SyncMachine) Unsubscribe(sub *Subscription) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.m.Unsubscribe(sub)
}

// Observe is the thread-safe version of Machine.Observe.
func (sm *SyncMachine) Observe(fn Listener) func() {
	sub := sm.Subscribe(fn)
	return func() { sm.Unsubscribe(sub) }
}

// Clone returns a thread-safe copy of the machine positioned at the initial state.
func (sm *SyncMachine) Clone() *SyncMachine {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.Clone().Sync()
}

// ToDOT is the thread-safe version of Machine.ToDOT.
func (sm *SyncMachine) ToDOT() g.String {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.ToDOT()
}
