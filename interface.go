package machine

import "github.com/enetx/g"

// StateMachine is the surface shared by Machine and SyncMachine.
type StateMachine interface {
	Current() State
	Matches(...State) bool
	Can(Event) bool
	Events() g.Slice[Event]
	States() g.Slice[State]
	Subscribe(Listener) *Subscription
	Unsubscribe(*Subscription)
	Observe(Listener) func()
	ToDOT() g.String
}

// Interface compliance checks.
var (
	_ StateMachine = (*Machine)(nil)
	_ StateMachine = (*SyncMachine)(nil)
)
