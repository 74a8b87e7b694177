// Package telemetry wires OpenTelemetry tracing for content service calls.
package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Options configures tracing.
type Options struct {
	// Endpoint is the OTLP/HTTP collector, either a URL or host:port.
	// Empty disables tracing.
	Endpoint    string
	ServiceName string
	Version     string
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: with no endpoint Setup returns a no-op shutdown
// function and no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		return noop, nil
	}

	var exporterOpts []otlptracehttp.Option
	if strings.Contains(endpoint, "://") {
		exporterOpts = append(exporterOpts, otlptracehttp.WithEndpointURL(endpoint))
	} else {
		exporterOpts = append(exporterOpts, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return noop, err
	}

	res, err := newResource(ctx, opts)
	if err != nil {
		return noop, err
	}

	tp := NewTracerProvider(res, sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// NewTracerProvider builds an always-sampling provider for res.
func NewTracerProvider(res *resource.Resource, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	opts = append(opts,
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	return sdktrace.NewTracerProvider(opts...)
}

func newResource(ctx context.Context, opts Options) (*resource.Resource, error) {
	name := opts.ServiceName
	if name == "" {
		name = "webb"
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	return resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(name),
			semconv.ServiceVersion(version),
		),
	)
}
