// Package tracing provides OpenTelemetry instrumentation for the analytics
// services: a global tracer, an HTTP middleware that creates a span per
// request, and a local (no-export) provider suitable for the demo setup.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the analytics services.
var tracer = otel.Tracer("analytics-demo")

// GetTracer returns the global tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}

// InitProvider installs a local tracer provider and W3C trace-context
// propagation. No exporter is configured: spans exist so trace IDs flow
// through logs and response headers. The returned function shuts the
// provider down.
func InitProvider() func(context.Context) error {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown
}
