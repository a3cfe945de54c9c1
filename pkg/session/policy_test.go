package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/studykit/studykit/pkg/session"
)

func TestEvaluateTimeouts(t *testing.T) {
	t.Parallel()

	cfg := session.Config{
		IdleTimeout:     30 * time.Minute,
		AbsoluteTimeout: 8 * time.Hour,
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	record := func(loginAgo, activityAgo time.Duration) *session.Record {
		return &session.Record{
			Token:          "tok",
			UserID:         uuid.New(),
			LoginAt:        now.Add(-loginAgo),
			LastActivityAt: now.Add(-activityAgo),
		}
	}

	t.Run("fresh session is valid", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, session.VerdictValid, session.EvaluateTimeouts(record(time.Minute, time.Minute), cfg, now))
	})

	t.Run("idle gap over threshold expires", func(t *testing.T) {
		t.Parallel()
		r := record(time.Hour, 30*time.Minute+time.Millisecond)
		assert.Equal(t, session.VerdictIdleExpired, session.EvaluateTimeouts(r, cfg, now))
	})

	t.Run("idle gap exactly at threshold survives", func(t *testing.T) {
		t.Parallel()
		r := record(time.Hour, 30*time.Minute)
		assert.Equal(t, session.VerdictValid, session.EvaluateTimeouts(r, cfg, now))
	})

	t.Run("sub-millisecond overshoot is ignored", func(t *testing.T) {
		t.Parallel()
		r := record(time.Hour, 30*time.Minute+500*time.Microsecond)
		assert.Equal(t, session.VerdictValid, session.EvaluateTimeouts(r, cfg, now))
	})

	t.Run("absolute ceiling wins over fresh activity", func(t *testing.T) {
		t.Parallel()
		r := record(8*time.Hour+time.Millisecond, 0)
		assert.Equal(t, session.VerdictAbsoluteExpired, session.EvaluateTimeouts(r, cfg, now))
	})

	t.Run("absolute checked before idle", func(t *testing.T) {
		t.Parallel()
		// Both limits blown: the absolute verdict must be reported.
		r := record(9*time.Hour, 2*time.Hour)
		assert.Equal(t, session.VerdictAbsoluteExpired, session.EvaluateTimeouts(r, cfg, now))
	})

	t.Run("never-activated record idles from login", func(t *testing.T) {
		t.Parallel()
		r := record(31*time.Minute, 0)
		r.LastActivityAt = time.Time{}
		assert.Equal(t, session.VerdictIdleExpired, session.EvaluateTimeouts(r, cfg, now))
	})
}
