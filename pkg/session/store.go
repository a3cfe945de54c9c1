package session

import (
	"context"
	"time"
)

// Store is the durable backing for session records: any keyed storage with
// per-key TTL semantics. The Manager is the only writer.
type Store interface {
	// Get retrieves a record by token. Returns ErrRecordNotFound for
	// unknown or expired tokens; any other error means the store is
	// unreachable and the caller must fail closed.
	Get(ctx context.Context, token string) (*Record, error)

	// Put stores a record with the given TTL, creating or replacing it.
	Put(ctx context.Context, record *Record, ttl time.Duration) error

	// Refresh rewrites an existing record with a new TTL. Unlike Put it
	// must not recreate a record that has been deleted: destruction is a
	// one-way transition and a concurrent activity update must never
	// resurrect a destroyed session. Returns ErrRecordNotFound when the
	// token no longer exists.
	Refresh(ctx context.Context, record *Record, ttl time.Duration) error

	// Delete removes a record by token. Deleting an absent token is not
	// an error.
	Delete(ctx context.Context, token string) error
}
