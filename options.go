package gosquirrelstash

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Keksclan/goSquirrelStash/tracing"
)

// Option configures a Manager.
type Option func(*config)

// WithEndpoint sets the backend endpoint in URL form, for example
// "redis://localhost:6379/0". Without an endpoint the Manager skips the
// liveness probe and serves from the in-process store.
func WithEndpoint(url string) Option {
	return func(c *config) {
		c.endpoint = url
	}
}

// WithKeyPrefix namespaces every key written through the backend, so several
// applications can share one Redis without colliding.
func WithKeyPrefix(prefix string) Option {
	return func(c *config) {
		c.keyPrefix = prefix
	}
}

// WithProbeTimeout bounds the construction-time liveness probe and any
// later reconnect dials.
func WithProbeTimeout(d time.Duration) Option {
	return func(c *config) {
		c.probeTimeout = d
	}
}

// WithOperationTimeout bounds individual backend reads and writes.
func WithOperationTimeout(d time.Duration) Option {
	return func(c *config) {
		c.opTimeout = d
	}
}

// WithDefaultTTL sets the expiry substituted when Set receives a zero or
// negative TTL.
func WithDefaultTTL(d time.Duration) Option {
	return func(c *config) {
		c.defaultTTL = d
	}
}

// WithWarnInterval throttles how often degraded backend operations log a
// warning.
func WithWarnInterval(d time.Duration) Option {
	return func(c *config) {
		c.warnInterval = d
	}
}

// WithLogger routes the Manager's logging through the supplied logger
// instead of the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = log
	}
}

// WithOpenTelemetry wraps every cache operation in a span using the supplied
// tracing configuration.
func WithOpenTelemetry(cfg *tracing.TracingConfig) Option {
	return func(c *config) {
		c.tracing = cfg
	}
}
