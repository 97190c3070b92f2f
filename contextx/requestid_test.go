package contextx

import "testing"

func TestWithRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(t.Context(), "req-abc-123")
	got := RequestIDFromContext(ctx)
	if got != "req-abc-123" {
		t.Fatalf("got %q, want %q", got, "req-abc-123")
	}
}

func TestWithRequestIDOverride(t *testing.T) {
	ctx := WithRequestID(t.Context(), "outer")
	ctx = WithRequestID(ctx, "inner")
	if got := RequestIDFromContext(ctx); got != "inner" {
		t.Fatalf("got %q, want the innermost ID %q", got, "inner")
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	got := RequestIDFromContext(t.Context())
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
