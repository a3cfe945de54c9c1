package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studykit/studykit/pkg/session"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	newRecord := func() *session.Record {
		token, err := session.GenerateToken()
		require.NoError(t, err)
		return session.NewRecord(token, uuid.New(), time.Now())
	}

	t.Run("put then get", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(0)
		record := newRecord()

		require.NoError(t, store.Put(ctx, record, time.Hour))

		got, err := store.Get(ctx, record.Token)
		require.NoError(t, err)
		assert.Equal(t, record.Token, got.Token)
		assert.Equal(t, record.UserID, got.UserID)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(0)
		record := newRecord()
		require.NoError(t, store.Put(ctx, record, time.Hour))

		first, err := store.Get(ctx, record.Token)
		require.NoError(t, err)
		first.Bind("10.0.0.1", "curl")

		second, err := store.Get(ctx, record.Token)
		require.NoError(t, err)
		assert.False(t, second.Bound())
	})

	t.Run("unknown token not found", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(0)

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, session.ErrRecordNotFound)
	})

	t.Run("expired entry not found", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(0)
		record := newRecord()
		require.NoError(t, store.Put(ctx, record, -time.Second))

		_, err := store.Get(ctx, record.Token)
		assert.ErrorIs(t, err, session.ErrRecordNotFound)
	})

	t.Run("delete is terminal and idempotent", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(0)
		record := newRecord()
		require.NoError(t, store.Put(ctx, record, time.Hour))

		require.NoError(t, store.Delete(ctx, record.Token))
		require.NoError(t, store.Delete(ctx, record.Token))

		_, err := store.Get(ctx, record.Token)
		assert.ErrorIs(t, err, session.ErrRecordNotFound)
	})

	t.Run("refresh cannot resurrect a deleted record", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(0)
		record := newRecord()
		require.NoError(t, store.Put(ctx, record, time.Hour))
		require.NoError(t, store.Delete(ctx, record.Token))

		err := store.Refresh(ctx, record, time.Hour)
		assert.ErrorIs(t, err, session.ErrRecordNotFound)

		_, err = store.Get(ctx, record.Token)
		assert.ErrorIs(t, err, session.ErrRecordNotFound)
	})

	t.Run("refresh updates an existing record", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(0)
		record := newRecord()
		require.NoError(t, store.Put(ctx, record, time.Hour))

		record.LastActivityAt = record.LastActivityAt.Add(10 * time.Minute)
		require.NoError(t, store.Refresh(ctx, record, time.Hour))

		got, err := store.Get(ctx, record.Token)
		require.NoError(t, err)
		assert.Equal(t, record.LastActivityAt.Unix(), got.LastActivityAt.Unix())
	})

	t.Run("rejects nil and tokenless records", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(0)

		assert.ErrorIs(t, store.Put(ctx, nil, time.Hour), session.ErrInvalidRecord)
		assert.ErrorIs(t, store.Put(ctx, &session.Record{}, time.Hour), session.ErrInvalidRecord)
		assert.ErrorIs(t, store.Refresh(ctx, nil, time.Hour), session.ErrInvalidRecord)
	})

	t.Run("delete expired evicts only stale entries", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(0)
		live, stale := newRecord(), newRecord()
		require.NoError(t, store.Put(ctx, live, time.Hour))
		require.NoError(t, store.Put(ctx, stale, -time.Second))

		store.DeleteExpired()

		assert.Equal(t, 1, store.Len())
		_, err := store.Get(ctx, live.Token)
		assert.NoError(t, err)
	})
}
