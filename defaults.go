package gosquirrelstash

import "time"

// Defaults applied by [New] when the corresponding option is not set.
const (
	// DefaultEndpoint is the conventional local Redis address.
	DefaultEndpoint = "redis://localhost:6379"

	// DefaultProbeTimeout bounds the construction-time liveness probe.
	DefaultProbeTimeout = 3 * time.Second

	// DefaultOpTimeout bounds individual backend operations.
	DefaultOpTimeout = 3 * time.Second

	// DefaultTTL is substituted when Set receives a zero or negative TTL.
	DefaultTTL = time.Hour

	// DefaultWarnInterval throttles degradation warnings.
	DefaultWarnInterval = 10 * time.Second
)

// DefaultOptions returns the recommended set of options for production use.
// Currently this targets a local Redis backend; additional defaults may be
// added in future versions.
func DefaultOptions() []Option {
	return []Option{
		WithEndpoint(DefaultEndpoint),
	}
}
