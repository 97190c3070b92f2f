// Package semantic caches AI model results keyed by a content fingerprint,
// so repeated requests for the same content and model reuse a previous
// result instead of recomputing it.
//
// The cache is gated on an API key: constructed without one it stays
// disabled, every lookup misses, and every store is a no-op. Disabled is an
// operating state, not an error.
package semantic

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	stash "github.com/Keksclan/goSquirrelStash"
)

const (
	// DefaultTTL is how long cached results live unless overridden.
	DefaultTTL = 24 * time.Hour

	// keyspace prefixes every semantic cache key.
	keyspace = "ai"

	// fingerprintLen is the number of hex characters kept from the content
	// hash. 64 bits of prefix is plenty for cache keying.
	fingerprintLen = 16
)

// Cache stores model results on top of a [stash.Manager]. It inherits the
// manager's storage mode and fail-soft behavior.
type Cache struct {
	mgr        *stash.Manager
	defaultTTL time.Duration
	enabled    bool
}

// New creates a semantic cache on top of mgr. Without a [WithAPIKey] option
// the cache is disabled, which is logged once here rather than on every
// call.
func New(mgr *stash.Manager, opts ...Option) *Cache {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.defaultTTL <= 0 {
		cfg.defaultTTL = DefaultTTL
	}

	c := &Cache{
		mgr:        mgr,
		defaultTTL: cfg.defaultTTL,
		enabled:    cfg.apiKey != "",
	}
	if !c.enabled {
		cfg.logger.Info("semantic cache: no API key configured, caching disabled")
	}
	return c
}

// Key derives the deterministic cache key for content under a model:
// "ai:{model}:{fingerprint}", where the fingerprint is the first 16 hex
// characters of the SHA-256 of the content bytes. Identical content for the
// same model always yields the same key.
func Key(content, modelID string) string {
	sum := sha256.Sum256([]byte(content))
	return keyspace + ":" + modelID + ":" + hex.EncodeToString(sum[:])[:fingerprintLen]
}

// GetResult returns the cached result for content under modelID. Absence,
// a degraded backend, and a disabled cache all report ("", false).
func (c *Cache) GetResult(ctx context.Context, content, modelID string) (string, bool) {
	if !c.enabled {
		return "", false
	}
	var result string
	if !c.mgr.Get(ctx, Key(content, modelID), &result) {
		return "", false
	}
	return result, true
}

// CacheResult stores result for content under modelID. A zero or negative
// ttl uses the semantic default. While disabled it is a no-op.
func (c *Cache) CacheResult(ctx context.Context, content, result, modelID string, ttl time.Duration) {
	if !c.enabled {
		return
	}
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.mgr.Set(ctx, Key(content, modelID), result, ttl)
}

// Enabled reports whether results are being cached.
func (c *Cache) Enabled() bool {
	return c.enabled
}
