// Package tracing provides OpenTelemetry spans around cache operations. It
// is entirely optional: tracing is only active when [TracingConfig] is
// wired in via the WithOpenTelemetry manager option.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names for the cache operations.
const (
	OpGet    = "cache.get"
	OpSet    = "cache.set"
	OpDelete = "cache.delete"
)

// TracingConfig holds the OpenTelemetry configuration used by the cache
// operation spans.
type TracingConfig struct {
	// TracerProvider supplies the Tracer used to create spans. When nil the
	// global otel.GetTracerProvider() is used.
	TracerProvider trace.TracerProvider
}

// tracer returns a configured [trace.Tracer].
func (c *TracingConfig) tracer() trace.Tracer {
	tp := c.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer("github.com/Keksclan/goSquirrelStash/tracing")
}

// EndFunc finishes a span opened by [StartOp]. hit reports whether a get
// found a value; err is the classified failure, nil on success.
type EndFunc func(hit bool, err error)

// StartOp starts a span covering a single cache operation and returns the
// derived context plus the function that ends the span. The span becomes a
// child of whatever span ctx already carries. If cfg is nil, StartOp is a
// no-op passthrough.
func StartOp(ctx context.Context, cfg *TracingConfig, op, key, mode string) (context.Context, EndFunc) {
	if cfg == nil {
		return ctx, func(bool, error) {}
	}

	ctx, span := cfg.tracer().Start(ctx, op, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("cache.key", key),
		attribute.String("cache.mode", mode),
	)

	return ctx, func(hit bool, err error) {
		if op == OpGet {
			span.SetAttributes(attribute.Bool("cache.hit", hit))
		}
		recordOutcome(span, err)
		span.End()
	}
}

// recordOutcome sets the span status from the operation result.
func recordOutcome(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
