package session

// FingerprintResult is the outcome of comparing a request's origin against
// the fingerprint recorded at first authenticated use.
type FingerprintResult string

const (
	// FingerprintMatch means every checked dimension is identical.
	FingerprintMatch FingerprintResult = "match"

	// FingerprintUnbound means the record has no fingerprint yet. This is
	// the first authenticated request, not a failure; the caller binds the
	// current origin onto the record.
	FingerprintUnbound FingerprintResult = "unbound"

	FingerprintAddressMismatch FingerprintResult = "address_mismatch"
	FingerprintAgentMismatch   FingerprintResult = "agent_mismatch"
)

// CheckFingerprint compares the request origin with the recorded one. A
// dimension is only compared when its config flag is enabled; disabling a
// flag is an explicit operator bypass for NAT/proxy rotation.
//
// Equality is exact string match with no normalization. Any change in an
// observed value is a mismatch.
func CheckFingerprint(r *Record, addr, agent string, cfg Config) FingerprintResult {
	if !r.Bound() {
		return FingerprintUnbound
	}
	if cfg.CheckClientAddress && r.Fingerprint.ClientAddress != addr {
		return FingerprintAddressMismatch
	}
	if cfg.CheckClientAgent && r.Fingerprint.ClientAgent != agent {
		return FingerprintAgentMismatch
	}
	return FingerprintMatch
}
