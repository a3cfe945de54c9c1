package session

import (
	"log/slog"
	"time"

	"github.com/studykit/studykit/pkg/secevent"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithStore sets the session record store.
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithEmitter sets the security event emitter.
func WithEmitter(emitter secevent.Emitter) Option {
	return func(m *Manager) {
		m.emitter = emitter
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// WithClock overrides the wall clock, used by tests to drive the timeout
// policy deterministically.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithClientAddressFunc overrides how the client address is extracted from
// a request.
func WithClientAddressFunc(fn ClientAddressFunc) Option {
	return func(m *Manager) {
		if fn != nil {
			m.clientAddr = fn
		}
	}
}
