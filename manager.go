package gosquirrelstash

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/Keksclan/goSquirrelStash/contextx"
	"github.com/Keksclan/goSquirrelStash/internal/codec"
	"github.com/Keksclan/goSquirrelStash/store"
	"github.com/Keksclan/goSquirrelStash/tracing"
)

// warnBurst is the number of degradation warnings allowed to fire
// back-to-back before the warn interval throttles them.
const warnBurst = 3

// Manager is the single entry point to the cache. It decides once, at
// construction, whether the distributed backend is reachable and routes
// every subsequent operation to either the backend or the in-process
// fallback store. The decision never changes for the Manager's lifetime.
//
// All operations fail soft: reads that cannot be served become misses,
// writes that cannot be stored are dropped, and no transport error ever
// reaches the caller.
//
//	cache := stash.New(stash.WithEndpoint("redis://localhost:6379"))
//	defer cache.Close()
//
//	cache.Set(ctx, "user:42", profile, stash.Seconds(300))
//
//	var p Profile
//	if cache.Get(ctx, "user:42", &p) {
//		// p is populated
//	}
type Manager struct {
	mode     Mode
	backend  *store.RedisStore  // nil in fallback mode
	fallback *store.MemoryStore // always allocated
	active   store.Store

	defaultTTL time.Duration
	log        logrus.FieldLogger
	warnLimit  *rate.Limiter
	tracing    *tracing.TracingConfig

	registry *prometheus.Registry
	metrics  *managerMetrics
}

// New creates a [Manager] by applying the supplied functional [Option]
// values, probing the configured backend once, and fixing the storage mode
// from the outcome. New never fails: an unparsable endpoint, a refused
// connection, or a probe timeout all yield a Manager in [ModeFallback].
func New(opts ...Option) *Manager {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.probeTimeout <= 0 {
		cfg.probeTimeout = DefaultProbeTimeout
	}
	if cfg.opTimeout <= 0 {
		cfg.opTimeout = DefaultOpTimeout
	}
	if cfg.defaultTTL <= 0 {
		cfg.defaultTTL = DefaultTTL
	}
	if cfg.warnInterval <= 0 {
		cfg.warnInterval = DefaultWarnInterval
	}
	if cfg.logger == nil {
		cfg.logger = logrus.StandardLogger()
	}

	m := &Manager{
		mode:       ModeFallback,
		fallback:   store.NewMemory(),
		defaultTTL: cfg.defaultTTL,
		log:        cfg.logger,
		warnLimit:  rate.NewLimiter(rate.Every(cfg.warnInterval), warnBurst),
		tracing:    cfg.tracing,
		registry:   prometheus.NewRegistry(),
	}
	m.active = m.fallback

	if cfg.endpoint == "" {
		m.log.Info("cache: no backend endpoint configured, serving from in-process store")
	} else if backend, err := probeBackend(cfg); err != nil {
		m.log.WithError(err).WithField("endpoint", cfg.endpoint).
			Warn("cache: backend unreachable, serving from in-process store")
	} else {
		m.mode = ModeBackend
		m.backend = backend
		m.active = backend
		m.log.WithField("endpoint", backend.Addr()).Info("cache: backend connected")
	}

	m.metrics = newManagerMetrics(m.registry, m.mode, m.fallback.Len)
	return m
}

// probeBackend dials the configured endpoint and verifies liveness once.
// Any failure here is final: the Manager never re-probes.
func probeBackend(cfg config) (*store.RedisStore, error) {
	backend, err := store.NewRedisStore(store.RedisConfig{
		URL:         cfg.endpoint,
		KeyPrefix:   cfg.keyPrefix,
		DialTimeout: cfg.probeTimeout,
		OpTimeout:   cfg.opTimeout,
	})
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.probeTimeout)
	defer cancel()
	if err := backend.Ping(ctx); err != nil {
		_ = backend.Close()
		return nil, err
	}
	return backend, nil
}

// Get retrieves the value cached under key into dest, which must be a
// non-nil pointer. It reports whether dest was populated. Absence, a
// degraded backend, and an undecodable payload all read as a miss; Get
// never panics or returns an error.
func (m *Manager) Get(ctx context.Context, key string, dest any) bool {
	ctx, end := tracing.StartOp(ctx, m.tracing, tracing.OpGet, key, m.mode.String())

	data, ok, err := m.active.Get(ctx, key)
	if err != nil {
		m.warnDegraded(ctx, "get", key, err)
		end(false, err)
		return false
	}
	if !ok {
		m.metrics.misses.Inc()
		m.opLog(ctx).WithField("key", key).Debug("cache: miss")
		end(false, nil)
		return false
	}
	if err := codec.Decode(data, dest); err != nil {
		m.metrics.misses.Inc()
		m.opLog(ctx).WithError(err).WithField("key", key).
			Debug("cache: stored payload not decodable, treating as miss")
		end(false, err)
		return false
	}

	m.metrics.hits.Inc()
	end(true, nil)
	return true
}

// Set stores value under key for ttl. A zero or negative ttl uses the
// Manager's default. A value that cannot be serialized, or a degraded
// backend, means the entry is simply not cached; Set never panics or
// returns an error.
func (m *Manager) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}
	ctx, end := tracing.StartOp(ctx, m.tracing, tracing.OpSet, key, m.mode.String())

	data, err := codec.Encode(value)
	if err != nil {
		m.opLog(ctx).WithError(err).WithField("key", key).
			Debug("cache: value not serializable, skipping")
		end(false, err)
		return
	}
	if err := m.active.Set(ctx, key, data, ttl); err != nil {
		m.warnDegraded(ctx, "set", key, err)
		end(false, err)
		return
	}

	m.metrics.sets.Inc()
	end(false, nil)
}

// Delete removes the entry under key. Deleting an absent key is a no-op,
// and a degraded backend is logged and ignored; Delete never panics or
// returns an error.
func (m *Manager) Delete(ctx context.Context, key string) {
	ctx, end := tracing.StartOp(ctx, m.tracing, tracing.OpDelete, key, m.mode.String())

	if err := m.active.Delete(ctx, key); err != nil {
		m.warnDegraded(ctx, "delete", key, err)
		end(false, err)
		return
	}

	m.metrics.deletes.Inc()
	end(false, nil)
}

// Mode returns the storage mode fixed at construction.
func (m *Manager) Mode() Mode {
	return m.mode
}

// Stats returns a snapshot of the Manager's operational state.
func (m *Manager) Stats() Stats {
	st := Stats{Mode: m.mode}
	switch m.mode {
	case ModeBackend:
		st.BackendEndpoint = m.backend.Addr()
	case ModeFallback:
		st.FallbackEntries = m.fallback.Len()
	}
	return st
}

// Close releases the backend client. In fallback mode it is a no-op.
func (m *Manager) Close() error {
	if m.backend == nil {
		return nil
	}
	return m.backend.Close()
}

// warnDegraded records a failed backend operation and logs it, throttled so
// a dead backend cannot flood the log from a hot path.
func (m *Manager) warnDegraded(ctx context.Context, op, key string, err error) {
	m.metrics.degraded.Inc()
	if !m.warnLimit.Allow() {
		return
	}
	m.opLog(ctx).WithError(err).WithFields(logrus.Fields{"op": op, "key": key}).
		Warn("cache: backend operation degraded")
}

// opLog returns the Manager's logger enriched with the request ID carried by
// ctx, when there is one.
func (m *Manager) opLog(ctx context.Context) logrus.FieldLogger {
	if id := contextx.RequestIDFromContext(ctx); id != "" {
		return m.log.WithField("request_id", id)
	}
	return m.log
}
