// Package gosquirrelstash provides a resilient two-tier cache: a distributed
// Redis backend when one is reachable at construction time, and an in-process
// fallback store when it is not. Every operation fails soft. A degraded
// backend turns reads into misses and drops writes instead of surfacing
// transport errors to the caller.
package gosquirrelstash

import "time"

// Mode identifies which storage layer a [Manager] routes operations to. It
// is decided once, during [New], and never changes for the Manager's
// lifetime.
type Mode int

const (
	// ModeBackend routes every operation to the distributed backend.
	ModeBackend Mode = iota
	// ModeFallback routes every operation to the in-process fallback store.
	ModeFallback
)

// String returns "backend" or "fallback".
func (m Mode) String() string {
	switch m {
	case ModeBackend:
		return "backend"
	case ModeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// MarshalText implements [encoding.TextMarshaler] so a Mode renders as its
// name in JSON payloads.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Stats is a point-in-time snapshot of a [Manager]'s operational state.
type Stats struct {
	// Mode is the storage mode fixed at construction.
	Mode Mode `json:"mode"`

	// BackendEndpoint is the resolved backend address. Empty in fallback
	// mode.
	BackendEndpoint string `json:"backend_endpoint,omitempty"`

	// FallbackEntries is the number of entries held by the in-process store.
	// Always zero in backend mode.
	FallbackEntries int `json:"fallback_entries"`
}

// Seconds converts a raw second count into a [time.Duration] TTL, for
// callers whose configuration carries TTLs as plain integers.
func Seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
