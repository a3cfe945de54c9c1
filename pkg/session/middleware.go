package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/studykit/studykit/pkg/secevent"
)

// Machine-readable reason codes carried in the 401 response body and in the
// emitted security events.
const (
	ReasonIdleTimeout      = "idle_timeout"
	ReasonAbsoluteTimeout  = "absolute_timeout"
	ReasonAddressMismatch  = "address_mismatch"
	ReasonAgentMismatch    = "agent_mismatch"
	ReasonUnauthenticated  = "unauthenticated"
	ReasonStoreUnavailable = "store_unavailable"
)

const rejectMessage = "Please log in again"

// rejectBody is the response contract on rejection.
type rejectBody struct {
	Success bool       `json:"success"`
	Error   string     `json:"error"`
	Data    rejectData `json:"data"`
}

type rejectData struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// Middleware is the per-request orchestrator. It loads the session record,
// evaluates the timeout policy, validates the fingerprint, updates the
// activity timestamp and either attaches the authenticated identity to the
// request context or destroys the session and answers 401.
//
// Requests without a session proceed unauthenticated; whether that is
// acceptable is decided downstream, typically by RequireAuth.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.cookies.GetSigned(r, m.cfg.CookieName)
		if err != nil || token == "" {
			next.ServeHTTP(w, r)
			return
		}

		record, err := m.store.Get(r.Context(), token)
		if err != nil {
			if errors.Is(err, ErrRecordNotFound) {
				m.cookies.Delete(w, m.cfg.CookieName)
				next.ServeHTTP(w, r)
				return
			}

			// Store unreachable: fail closed. The request continues without
			// an identity so protected routes reject it, and operators get a
			// systemic event distinct from per-user violations.
			m.log.ErrorContext(r.Context(), "session store unavailable", "error", err)
			m.emit(r, record, ReasonStoreUnavailable, secevent.SeverityWarning, nil)
			next.ServeHTTP(w, r)
			return
		}

		now := m.now()

		switch EvaluateTimeouts(record, m.cfg, now) {
		case VerdictAbsoluteExpired:
			m.terminate(w, r, record, ReasonAbsoluteTimeout, secevent.SeverityInfo, nil)
			return
		case VerdictIdleExpired:
			m.terminate(w, r, record, ReasonIdleTimeout, secevent.SeverityInfo, nil)
			return
		}

		if m.cfg.CheckClientAddress || m.cfg.CheckClientAgent {
			addr, agent := m.clientAddr(r), r.UserAgent()

			switch CheckFingerprint(record, addr, agent, m.cfg) {
			case FingerprintUnbound:
				// First authenticated request after login: the fingerprint
				// is bound here, not in the factory, so the login request
				// itself cannot poison it.
				record.Bind(addr, agent)
			case FingerprintAddressMismatch:
				m.terminate(w, r, record, ReasonAddressMismatch, secevent.SeverityCritical, forensics(record, addr, agent))
				return
			case FingerprintAgentMismatch:
				m.terminate(w, r, record, ReasonAgentMismatch, secevent.SeverityCritical, forensics(record, addr, agent))
				return
			}
		}

		record.LastActivityAt = now

		// Refresh, not Put: a record destroyed by a concurrent request must
		// stay destroyed. Losing this activity update is acceptable.
		ttl := m.cfg.AbsoluteTimeout - record.Age(now)
		if ttl < time.Minute {
			// A record at the ceiling must survive until the next request so
			// the user gets an explicit timeout rejection, not a vanished
			// session.
			ttl = time.Minute
		}
		if err := m.store.Refresh(r.Context(), record, ttl); err != nil && !errors.Is(err, ErrRecordNotFound) {
			m.log.WarnContext(r.Context(), "session activity update failed", "error", err)
		}

		if m.cfg.RenewOnActivity {
			if err := m.setCookie(w, token); err != nil {
				m.log.WarnContext(r.Context(), "session cookie renewal failed", "error", err)
			}
		}

		next.ServeHTTP(w, r.WithContext(WithRecord(r.Context(), record)))
	})
}

// RequireAuth rejects requests that carry no authenticated session.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserIDFromContext(r.Context()); !ok {
			writeReject(w, ReasonUnauthenticated, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// terminate destroys the record, emits the security event and sends the 401.
// Destruction failures are logged but never block the rejection: the
// user-facing outcome holds even when cleanup is best-effort.
func (m *Manager) terminate(w http.ResponseWriter, r *http.Request, record *Record, reason string, severity secevent.Severity, metadata map[string]any) {
	if err := m.store.Delete(r.Context(), record.Token); err != nil {
		m.log.ErrorContext(r.Context(), "session destroy failed", "error", err, "reason", reason)
	}

	m.emit(r, record, reason, severity, metadata)
	m.cookies.Delete(w, m.cfg.CookieName)
	writeReject(w, reason, rejectMessage)
}

func (m *Manager) emit(r *http.Request, record *Record, reason string, severity secevent.Severity, metadata map[string]any) {
	event := secevent.Event{
		Reason:        reason,
		Severity:      severity,
		ClientAddress: m.clientAddr(r),
		ClientAgent:   r.UserAgent(),
		Metadata:      metadata,
	}
	if record != nil {
		event.SessionID = record.Token
		event.UserID = record.UserID.String()
	}

	if err := m.emitter.Emit(r.Context(), event); err != nil {
		m.log.ErrorContext(r.Context(), "security event emission failed", "error", err, "reason", reason)
	}
}

// forensics captures both the recorded and the observed fingerprint for
// review of a probable hijacking attempt.
func forensics(record *Record, addr, agent string) map[string]any {
	return map[string]any{
		"recorded_address": record.Fingerprint.ClientAddress,
		"recorded_agent":   record.Fingerprint.ClientAgent,
		"observed_address": addr,
		"observed_agent":   agent,
	}
}

func writeReject(w http.ResponseWriter, reason, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(rejectBody{
		Error: http.StatusText(http.StatusUnauthorized),
		Data:  rejectData{Reason: reason, Message: message},
	})
}
