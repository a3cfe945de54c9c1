package secevent

import (
	"fmt"
	"time"
)

// Severity classifies a security event.
type Severity string

const (
	// SeverityInfo covers expected, user-recoverable conditions such as
	// session timeouts.
	SeverityInfo Severity = "info"

	// SeverityWarning covers systemic conditions such as an unreachable
	// record store.
	SeverityWarning Severity = "warning"

	// SeverityCritical covers probable attacks such as fingerprint
	// mismatches.
	SeverityCritical Severity = "critical"
)

// Event is a single security event.
type Event struct {
	ID            string         `json:"id"`
	SessionID     string         `json:"session_id,omitempty"`
	UserID        string         `json:"user_id,omitempty"`
	Reason        string         `json:"reason"`
	Severity      Severity       `json:"severity"`
	ClientAddress string         `json:"client_address,omitempty"`
	ClientAgent   string         `json:"client_agent,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Validate checks that the event carries the required fields.
func (e *Event) Validate() error {
	if e.Reason == "" {
		return fmt.Errorf("%w: reason is required", ErrEventValidation)
	}
	if e.Severity == "" {
		return fmt.Errorf("%w: severity is required", ErrEventValidation)
	}
	return nil
}
