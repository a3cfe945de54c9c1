package secevent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const insertEventQuery = `
	INSERT INTO security_events (
		id, session_id, user_id, reason, severity,
		client_address, client_agent, metadata, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// PGStorage persists security events in PostgreSQL. The schema lives in
// migrations/ and is applied with the pg package's goose helper.
type PGStorage struct {
	pool *pgxpool.Pool
}

// NewPGStorage creates a PostgreSQL-backed event storage.
func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	if pool == nil {
		panic("secevent: pgx pool cannot be nil")
	}
	return &PGStorage{pool: pool}
}

func (s *PGStorage) Store(ctx context.Context, event Event) error {
	var metadata []byte
	if len(event.Metadata) > 0 {
		var err error
		if metadata, err = json.Marshal(event.Metadata); err != nil {
			return fmt.Errorf("secevent: marshal metadata: %w", err)
		}
	}

	_, err := s.pool.Exec(ctx, insertEventQuery,
		event.ID,
		nullable(event.SessionID),
		nullable(event.UserID),
		event.Reason,
		string(event.Severity),
		nullable(event.ClientAddress),
		nullable(event.ClientAgent),
		metadata,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("secevent: store event: %w", err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
