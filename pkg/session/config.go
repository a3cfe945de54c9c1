package session

import (
	"fmt"
	"strings"
	"time"
)

// minSecretLength is the minimum entropy threshold for the signing secret.
const minSecretLength = 32

// Config holds the process-wide session security configuration. It is loaded
// once at startup and treated as immutable afterwards.
type Config struct {
	// Secret signs the session cookie. Comma-separated values enable key
	// rotation: the first secret signs, all verify.
	Secret string `env:"SESSION_SECRET,required"`

	// CookieName is the name of the session cookie (default: "sid")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// MaxAge bounds the cookie lifetime. Zero falls back to AbsoluteTimeout.
	MaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"0"`

	// IdleTimeout is the maximum gap between consecutive authenticated requests.
	IdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`

	// AbsoluteTimeout is the hard ceiling on session age from login,
	// regardless of activity.
	AbsoluteTimeout time.Duration `env:"SESSION_ABSOLUTE_TIMEOUT" envDefault:"8h"`

	// RenewOnActivity reissues the cookie with a fresh MaxAge window on
	// every valid request (rolling renewal).
	RenewOnActivity bool `env:"SESSION_RENEW_ON_ACTIVITY" envDefault:"true"`

	CheckClientAddress bool `env:"SESSION_CHECK_CLIENT_ADDRESS" envDefault:"true"`
	CheckClientAgent   bool `env:"SESSION_CHECK_CLIENT_AGENT" envDefault:"true"`

	// SecureCookies enables the Secure flag on session cookies
	// (required for production deployments)
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`

	// CleanupInterval for the memory store janitor (0 to disable)
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig returns the default session configuration without a secret.
// A secret must still be provided before the config passes Validate.
func DefaultConfig() Config {
	return Config{
		CookieName:         "sid",
		IdleTimeout:        30 * time.Minute,
		AbsoluteTimeout:    8 * time.Hour,
		RenewOnActivity:    true,
		CheckClientAddress: true,
		CheckClientAgent:   true,
		CleanupInterval:    5 * time.Minute,
	}
}

// Validate enforces the fail-fast startup invariants. A missing or weak
// secret must prevent the process from serving traffic; it is never a
// per-request error path.
func (c Config) Validate() error {
	secrets := c.secrets()
	if len(secrets) == 0 {
		return ErrMissingSecret
	}
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}
	return nil
}

// cookieMaxAge returns the effective cookie lifetime.
func (c Config) cookieMaxAge() time.Duration {
	if c.MaxAge > 0 {
		return c.MaxAge
	}
	return c.AbsoluteTimeout
}

// secrets splits the Secret field for key rotation support.
func (c Config) secrets() []string {
	if c.Secret == "" {
		return nil
	}

	parts := strings.Split(c.Secret, ",")
	secrets := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}
