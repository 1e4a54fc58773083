// Package otel configures OpenTelemetry tracing for portal binaries.
package otel

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Environment variables read by Setup.
const (
	EndpointEnv    = "PORTAL_OTEL_ENDPOINT"
	EnabledEnv     = "PORTAL_OTEL_ENABLED"
	SampleRatioEnv = "PORTAL_OTEL_SAMPLE_RATIO"
)

// Setup installs a global tracer provider exporting to PORTAL_OTEL_ENDPOINT
// over OTLP/HTTP.
//
// Tracing is opt-in: with no endpoint, or PORTAL_OTEL_ENABLED=false, Setup
// registers nothing and returns a no-op shutdown.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if strings.EqualFold(strings.TrimSpace(os.Getenv(EnabledEnv)), "false") {
		return noop, nil
	}
	endpoint := strings.TrimSpace(os.Getenv(EndpointEnv))
	if endpoint == "" {
		return noop, nil
	}
	ratio, err := sampleRatio(os.Getenv(SampleRatioEnv))
	if err != nil {
		return noop, err
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noop, err
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}

// sampleRatio parses the root sampling ratio. Empty means sample everything.
func sampleRatio(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	ratio, err := strconv.ParseFloat(raw, 64)
	if err != nil || ratio < 0 || ratio > 1 {
		return 0, fmt.Errorf("%s must be a number between 0 and 1, got %q", SampleRatioEnv, raw)
	}
	return ratio, nil
}
