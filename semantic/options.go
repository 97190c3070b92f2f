package semantic

import (
	"time"

	"github.com/sirupsen/logrus"
)

// config holds the internal configuration assembled via functional options.
type config struct {
	apiKey     string
	defaultTTL time.Duration
	logger     logrus.FieldLogger
}

func defaultConfig() config {
	return config{
		defaultTTL: DefaultTTL,
		logger:     logrus.StandardLogger(),
	}
}

// Option configures a Cache.
type Option func(*config)

// WithAPIKey enables the cache. An empty key leaves it disabled.
func WithAPIKey(key string) Option {
	return func(c *config) {
		c.apiKey = key
	}
}

// WithDefaultTTL overrides the lifetime applied to results cached without an
// explicit TTL.
func WithDefaultTTL(d time.Duration) Option {
	return func(c *config) {
		c.defaultTTL = d
	}
}

// WithLogger routes the cache's logging through the supplied logger instead
// of the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = log
	}
}
