package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultDialTimeout bounds the initial connection to the backend.
	DefaultDialTimeout = 5 * time.Second

	// DefaultOpTimeout bounds each read/write against the backend.
	DefaultOpTimeout = 3 * time.Second
)

// RedisConfig holds the settings for creating a RedisStore.
type RedisConfig struct {
	// URL is the backend endpoint in URL form, e.g. "redis://localhost:6379/0".
	URL string

	// KeyPrefix is prepended (with a ":" separator) to every key so that one
	// backend instance can be shared by several applications. Empty means no
	// prefix.
	KeyPrefix string

	// DialTimeout and OpTimeout default to DefaultDialTimeout and
	// DefaultOpTimeout when zero.
	DialTimeout time.Duration
	OpTimeout   time.Duration
}

// RedisStore is the distributed backend layer. Transport failures are
// classified as ErrUnavailable before they reach the caller; the underlying
// client's error types never escape this package.
type RedisStore struct {
	rdb    *redis.Client
	addr   string
	prefix string
}

// NewRedisStore creates a Redis-backed store from cfg. It returns an error
// only when the endpoint URL cannot be parsed; reachability is checked
// separately via Ping so the caller decides how to degrade.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	dial := cfg.DialTimeout
	if dial == 0 {
		dial = DefaultDialTimeout
	}
	op := cfg.OpTimeout
	if op == 0 {
		op = DefaultOpTimeout
	}
	opts.DialTimeout = dial
	opts.ReadTimeout = op
	opts.WriteTimeout = op

	prefix := cfg.KeyPrefix
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}

	return &RedisStore{
		rdb:    redis.NewClient(opts),
		addr:   opts.Addr,
		prefix: prefix,
	}, nil
}

func (s *RedisStore) fullKey(key string) string {
	return s.prefix + key
}

// Get retrieves a value by key. A missing key is (nil, false, nil); any
// transport failure is (nil, false, err) with err wrapping ErrUnavailable.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.rdb.Get(ctx, s.fullKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: get: %v", ErrUnavailable, err)
	}
	return val, true, nil
}

// Set stores a value under key. A ttl of zero or less means no automatic
// expiration.
func (s *RedisStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.rdb.Set(ctx, s.fullKey(key), val, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrUnavailable, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key succeeds.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.fullKey(key)).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrUnavailable, err)
	}
	return nil
}

// Ping checks the backend connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: ping: %v", ErrUnavailable, err)
	}
	return nil
}

// Addr returns the resolved backend address, for observability.
func (s *RedisStore) Addr() string {
	return s.addr
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
