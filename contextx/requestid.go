// Package contextx carries request-scoped values across API boundaries. The
// cache attaches the request ID, when one is present, to its log entries so
// degraded operations can be correlated with the request that hit them.
package contextx

import "context"

// WithRequestID returns a derived context that carries the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request ID stored in ctx.
// It returns an empty string when no request ID is present.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
