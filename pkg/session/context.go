package session

import (
	"context"

	"github.com/google/uuid"
)

type recordContextKey struct{}

// WithRecord adds a session record to the context.
func WithRecord(ctx context.Context, record *Record) context.Context {
	return context.WithValue(ctx, recordContextKey{}, record)
}

// FromContext retrieves the session record from the context.
func FromContext(ctx context.Context) (*Record, bool) {
	record, ok := ctx.Value(recordContextKey{}).(*Record)
	return record, ok
}

// MustFromContext retrieves the session record from the context or panics.
func MustFromContext(ctx context.Context) *Record {
	record, ok := FromContext(ctx)
	if !ok {
		panic("session: record not found in context")
	}
	return record
}

// UserIDFromContext retrieves the authenticated identity bound to the
// session. Downstream handlers must treat a false return as unauthenticated.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	record, ok := FromContext(ctx)
	if !ok || record == nil {
		return uuid.Nil, false
	}
	return record.UserID, true
}
