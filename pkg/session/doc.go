// Package session implements the session security layer for the application:
// identifier generation, lifecycle management, timeout policy, fingerprint
// validation and the per-request middleware that ties them together.
//
// A Manager owns the session life-cycle. On login it generates a 256-bit
// identifier from crypto/rand, writes a Record to the configured Store and
// issues a signed cookie. On every subsequent request the middleware loads
// the record, evaluates the timeout policy (absolute expiry wins over idle),
// validates the client fingerprint and either attaches the authenticated
// identity to the request context or destroys the session and answers 401
// with a machine-readable reason code.
//
// # Fingerprint binding
//
// The fingerprint (client address + user agent) is NOT captured at login.
// It is bound lazily on the first request that passes through the
// middleware, so a login request arriving through a different proxy hop
// cannot poison it. Any later change in a checked dimension destroys the
// session and is reported as a probable hijacking attempt.
//
// # Usage
//
//	cfg := session.Config{
//	    Secret:          os.Getenv("SESSION_SECRET"),
//	    IdleTimeout:     30 * time.Minute,
//	    AbsoluteTimeout: 8 * time.Hour,
//	}
//	manager, err := session.New(cfg,
//	    session.WithStore(session.NewRedisStore(redisClient)),
//	    session.WithEmitter(secevent.NewLogEmitter(log)),
//	)
//	if err != nil {
//	    // missing or weak secret: the process must not serve traffic
//	    log.Fatal(err)
//	}
//
//	mux.Handle("/", manager.Middleware(routes))
//
// Login handlers call Manager.Login, logout handlers call Manager.Destroy.
// Downstream handlers read the identity via UserIDFromContext and must treat
// its absence as unauthenticated.
package session
