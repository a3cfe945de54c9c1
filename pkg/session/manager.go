package session

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/studykit/studykit/pkg/clientip"
	"github.com/studykit/studykit/pkg/cookie"
	"github.com/studykit/studykit/pkg/secevent"
)

// ClientAddressFunc extracts the client address from a request.
type ClientAddressFunc func(r *http.Request) string

// Manager is the session factory and lifecycle owner. It validates the
// configuration at construction, creates records on login, destroys them on
// logout and provides the per-request security middleware.
type Manager struct {
	cfg        Config
	store      Store
	cookies    *cookie.Manager
	emitter    secevent.Emitter
	log        *slog.Logger
	now        func() time.Time
	clientAddr ClientAddressFunc
}

// New creates a session manager. It fails when the signing secret is missing
// or below the minimum entropy threshold; this happens at process startup,
// never per-request.
func New(cfg Config, opts ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cookies, err := cookie.New(cfg.secrets())
	if err != nil {
		return nil, err
	}

	m := &Manager{
		cfg:        cfg,
		cookies:    cookies,
		log:        slog.Default(),
		now:        time.Now,
		clientAddr: clientip.FromRequest,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(cfg.CleanupInterval)
	}
	if m.emitter == nil {
		m.emitter = secevent.NewLogEmitter(m.log)
	}

	return m, nil
}

// Login creates a session record for the user and attaches the signed
// session cookie to the response. The record's fingerprint stays unset until
// the first request passes through the middleware.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, userID uuid.UUID) (*Record, error) {
	token, err := GenerateToken()
	if err != nil {
		return nil, err
	}

	record := NewRecord(token, userID, m.now())
	if err := m.store.Put(ctx, record, m.cfg.AbsoluteTimeout); err != nil {
		return nil, err
	}

	if err := m.setCookie(w, token); err != nil {
		_ = m.store.Delete(ctx, token)
		return nil, err
	}

	return record, nil
}

// Destroy terminates the session attached to the request and clears the
// cookie. Destruction is terminal: the token is never re-accepted.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer m.cookies.Delete(w, m.cfg.CookieName)

	token, err := m.cookies.GetSigned(r, m.cfg.CookieName)
	if err != nil || token == "" {
		return nil
	}

	return m.store.Delete(ctx, token)
}

// DestroyToken removes a session record by identifier. Used by logout flows
// that hold the token directly.
func (m *Manager) DestroyToken(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}

// setCookie issues the session cookie with the security attributes derived
// from the config: HttpOnly always, Secure in production deployments,
// SameSite strict.
func (m *Manager) setCookie(w http.ResponseWriter, token string) error {
	opts := []cookie.Option{
		cookie.WithPath("/"),
		cookie.WithMaxAge(int(m.cfg.cookieMaxAge().Seconds())),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteStrictMode),
	}
	if m.cfg.SecureCookies {
		opts = append(opts, cookie.WithSecure(true))
	}

	return m.cookies.SetSigned(w, m.cfg.CookieName, token, opts...)
}
