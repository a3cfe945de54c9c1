package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "session:"

// RedisStore implements Store on top of a Redis client, relying on native
// per-key TTL semantics for expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: defaultKeyPrefix}
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Record, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("session: unmarshal record: %w", err)
	}

	return &record, nil
}

func (s *RedisStore) Put(ctx context.Context, record *Record, ttl time.Duration) error {
	data, err := s.marshal(record)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key(record.Token), data, ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Refresh(ctx context.Context, record *Record, ttl time.Duration) error {
	data, err := s.marshal(record)
	if err != nil {
		return err
	}

	// SET XX only succeeds while the key still exists, so a record deleted
	// by a concurrent request cannot be written back to life.
	ok, err := s.client.SetXX(ctx, s.key(record.Token), data, ttl).Result()
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if !ok {
		return ErrRecordNotFound
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) marshal(record *Record) ([]byte, error) {
	if record == nil || record.Token == "" {
		return nil, ErrInvalidRecord
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("session: marshal record: %w", err)
	}
	return data, nil
}
