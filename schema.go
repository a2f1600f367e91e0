package machine

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// Validate reports the first structural problem of the schema, checking
// states in sorted order so the reported error is stable.
// The returned error matches ErrInvalidSchema.
func (s Schema) Validate() error {
	if s.Initial == "" {
		return &ErrEmptyInitial{}
	}

	if !s.States.Contains(s.Initial) {
		return &ErrUnknownInitial{State: s.Initial}
	}

	for _, from := range s.stateIDs() {
		if from == "" {
			return &ErrEmptyIdentifier{}
		}

		table := s.States[from]
		for _, event := range eventIDs(table) {
			if event == "" {
				return &ErrEmptyIdentifier{State: from}
			}

			if target := table[event].Target; !s.States.Contains(target) {
				return &ErrUnknownTarget{From: from, Event: event, Target: target}
			}
		}
	}

	return nil
}

// clone returns a deep copy so that later changes to the caller's maps and
// slices cannot reach a running machine.
func (s Schema) clone() Schema {
	states := make(g.Map[State, Table], len(s.States))

	for from, table := range s.States {
		events := make(Table, len(table))
		for event, t := range table {
			events[event] = Transition{Target: t.Target, Actions: t.Actions.Clone()}
		}

		states[from] = events
	}

	return Schema{Initial: s.Initial, States: states}
}

// missingAction returns the first action named by a transition that has no
// usable handler in actions.
func (s Schema) missingAction(actions g.Map[Action, Handler]) error {
	for _, from := range s.stateIDs() {
		table := s.States[from]
		for _, event := range eventIDs(table) {
			for _, name := range table[event].Actions {
				if actions[name] == nil {
					return &ErrMissingAction{From: from, Event: event, Action: name}
				}
			}
		}
	}

	return nil
}

func (s Schema) stateIDs() g.Slice[State] {
	ids := s.States.Keys()
	ids.SortBy(cmp.Cmp)

	return ids
}

func eventIDs(table Table) g.Slice[Event] {
	ids := table.Keys()
	ids.SortBy(cmp.Cmp)

	return ids
}
