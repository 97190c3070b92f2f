// Package store provides the two storage layers behind the cache manager: a
// Redis-backed distributed store and an in-process fallback store. Both
// operate on opaque []byte values; encoding is the manager's concern.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable classifies any backend transport failure (refused
// connection, timeout, protocol error). Implementations wrap it so callers
// can test with errors.Is without ever seeing a backend-specific error type.
var ErrUnavailable = errors.New("store: backend unavailable")

// Store is the contract shared by the distributed backend and the in-process
// fallback. Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves a value by key. The boolean indicates a hit. A nil error
	// with ok=false is a clean miss; a non-nil error wraps ErrUnavailable.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value under key with the given TTL. Implementations that
	// cannot enforce expiry may ignore the TTL.
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
