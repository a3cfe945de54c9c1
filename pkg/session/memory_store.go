package session

import (
	"context"
	"sync"
	"time"
)

// memoryEntry pairs a record with its expiry deadline.
type memoryEntry struct {
	record    Record
	expiresAt time.Time
}

// MemoryStore implements Store in process memory. Suitable for tests and
// single-instance deployments; production setups use the Redis store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ticker  *time.Ticker
	done    chan struct{}
}

// NewMemoryStore creates an in-memory store. A positive cleanupInterval
// starts a janitor goroutine that evicts expired records.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		s.ticker = time.NewTicker(cleanupInterval)
		go s.cleanupLoop()
	}

	return s
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*Record, error) {
	s.mu.RLock()
	entry, exists := s.entries[token]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrRecordNotFound
	}

	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return nil, ErrRecordNotFound
	}

	record := entry.record
	return &record, nil
}

func (s *MemoryStore) Put(ctx context.Context, record *Record, ttl time.Duration) error {
	if record == nil || record.Token == "" {
		return ErrInvalidRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[record.Token] = memoryEntry{record: *record, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Refresh(ctx context.Context, record *Record, ttl time.Duration) error {
	if record == nil || record.Token == "" {
		return ErrInvalidRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[record.Token]; !exists {
		return ErrRecordNotFound
	}

	s.entries[record.Token] = memoryEntry{record: *record, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, token)
	return nil
}

// DeleteExpired evicts every record past its deadline.
func (s *MemoryStore) DeleteExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, token)
		}
	}
}

// Len returns the number of live entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() error {
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.done)
	}
	return nil
}

func (s *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-s.ticker.C:
			s.DeleteExpired()
		case <-s.done:
			return
		}
	}
}
