package session

import (
	"time"

	"github.com/google/uuid"
)

// Fingerprint is the client origin captured at first authenticated use.
type Fingerprint struct {
	ClientAddress string `json:"client_address"`
	ClientAgent   string `json:"client_agent"`
}

// Record is the per-session state persisted in the Store. It is referenced
// by token only; nothing outside the Manager and the logout path mutates it.
type Record struct {
	Token          string       `json:"token"`
	UserID         uuid.UUID    `json:"user_id"`
	LoginAt        time.Time    `json:"login_at"`
	LastActivityAt time.Time    `json:"last_activity_at"`
	Fingerprint    *Fingerprint `json:"fingerprint,omitempty"`
}

// NewRecord creates a record for a fresh login. The fingerprint stays unset:
// it is bound lazily by the middleware on the first authenticated request.
func NewRecord(token string, userID uuid.UUID, now time.Time) *Record {
	return &Record{
		Token:          token,
		UserID:         userID,
		LoginAt:        now,
		LastActivityAt: now,
	}
}

// Bound reports whether the fingerprint has been captured.
func (r *Record) Bound() bool {
	return r != nil && r.Fingerprint != nil
}

// Bind captures the client origin. Binding is one-shot: once set the
// fingerprint is never overwritten.
func (r *Record) Bind(addr, agent string) {
	if r == nil || r.Fingerprint != nil {
		return
	}
	r.Fingerprint = &Fingerprint{ClientAddress: addr, ClientAgent: agent}
}

// Age returns the time elapsed since login.
func (r *Record) Age(now time.Time) time.Duration {
	return now.Sub(r.LoginAt)
}

// IdleTime returns the gap since the last validated request. A record that
// was never activated measures idleness from login.
func (r *Record) IdleTime(now time.Time) time.Duration {
	last := r.LastActivityAt
	if last.IsZero() {
		last = r.LoginAt
	}
	return now.Sub(last)
}
