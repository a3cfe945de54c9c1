package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// tokenBytes gives 256 bits of entropy per identifier.
const tokenBytes = 32

// GenerateToken creates an unforgeable session identifier from the
// cryptographically secure random source. If the source is unavailable the
// error aborts session creation; there is no weaker fallback.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
