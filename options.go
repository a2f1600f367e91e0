package machine

import (
	"log/slog"

	"github.com/enetx/g"
)

// WithActions registers every handler in actions. Handlers registered
// later under the same name replace earlier ones.
func WithActions(actions g.Map[Action, Handler]) Option {
	return func(m *Machine) {
		for name, h := range actions {
			m.actions[name] = h
		}
	}
}

// WithAction registers a single handler.
func WithAction(name Action, h Handler) Option {
	return func(m *Machine) {
		m.actions[name] = h
	}
}

// WithLogger sets the logger used for debug tracing of dispatch.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithStrictActions makes New fail with ErrMissingAction if any transition
// names an action without a handler. Without it such actions are skipped.
func WithStrictActions() Option {
	return func(m *Machine) {
		m.strict = true
	}
}
