package store

import (
	"bytes"
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process fallback layer: a plain map guarded by a
// single mutex. It deliberately does not enforce TTLs; entries live until
// explicitly deleted or the process exits. Its job is to keep callers working
// when the backend is down, not to preserve expiry semantics, so callers that
// rely on TTL-based invalidation must treat it as best-effort.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewMemory creates an empty in-process store.
func NewMemory() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

// Get retrieves a value by key. It never fails.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(val), true, nil
}

// Set stores a value under key. The TTL is accepted for interface
// compatibility and ignored.
func (s *MemoryStore) Set(_ context.Context, key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = bytes.Clone(val)
	return nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Len reports the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
