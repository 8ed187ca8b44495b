// Package telemetry wires the OpenTelemetry tracer provider used to stamp
// reconcile errors with a trace id. Exporter initialization is the only
// piece of telemetry this package owns; log-level configuration and OTLP
// environment variable parsing belong to the surrounding process.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config controls tracer provider construction.
type Config struct {
	// ServiceName is attached to every emitted span as a resource attribute.
	ServiceName string
	// OTLPEndpoint is the gRPC collector endpoint. Empty disables export:
	// Setup then installs a tracer provider that only ever produces spans
	// with invalid trace ids, which TraceIDFromContext renders as "".
	OTLPEndpoint string
}

// Shutdown flushes and stops the tracer provider installed by Setup.
type Shutdown func(ctx context.Context) error

// Setup installs a global TracerProvider per cfg and returns its shutdown
// function. Startup failures here are propagated to the caller and are
// expected to terminate the process with a non-zero exit code.
func Setup(ctx context.Context, cfg Config) (Shutdown, error) {
	if cfg.OTLPEndpoint == "" {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint), otlptracegrpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("building OTLP gRPC exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("building OTel resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

// TraceIDFromContext returns the hex trace id of the span active in ctx, or
// "" if ctx carries no valid span context. Controllers inject this into the
// error log field required by spec section 7.
func TraceIDFromContext(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
