package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("pressbox/internal/interfaces/httpapi")

// passthroughSpan is the non-recording span handed back when a helper
// should not open its own span.
var passthroughSpan = trace.SpanFromContext(context.Background())

// startSpan opens a child span only for handler entry points. Middleware
// and writer helpers get a passthrough span so a request renders as one
// handler span instead of a ladder of internals, and routes the otelhttp
// filter skipped (like /healthz) never grow root spans from helpers.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, passthroughSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
