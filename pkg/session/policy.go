package session

import "time"

// Verdict is the outcome of the timeout policy for a single request.
type Verdict string

const (
	VerdictValid           Verdict = "valid"
	VerdictIdleExpired     Verdict = "idle_expired"
	VerdictAbsoluteExpired Verdict = "absolute_expired"
)

// EvaluateTimeouts computes idle and absolute expiry for a record at the
// given instant. It is a pure function over (record, config, now).
//
// Absolute expiry is checked first: a session kept fresh by automated
// polling must still die at its absolute ceiling. Comparisons are strict
// and made at millisecond resolution.
func EvaluateTimeouts(r *Record, cfg Config, now time.Time) Verdict {
	if r.Age(now).Truncate(time.Millisecond) > cfg.AbsoluteTimeout {
		return VerdictAbsoluteExpired
	}
	if r.IdleTime(now).Truncate(time.Millisecond) > cfg.IdleTimeout {
		return VerdictIdleExpired
	}
	return VerdictValid
}
