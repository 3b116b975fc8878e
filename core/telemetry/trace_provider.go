package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/anoideaopen/signedmessage"

// CollectorEndpoint describes where spans are exported to.
type CollectorEndpoint struct {
	Endpoint string
	// CACerts is a base64 encoded PEM bundle. Empty means an insecure connection.
	CACerts string
}

// ShutdownFunc flushes and stops the installed provider.
type ShutdownFunc func(ctx context.Context) error

// InstallTraceProvider installs a global trace provider based on the http
// otlp exporter. Without an endpoint a noop provider is installed.
func InstallTraceProvider(
	settings *CollectorEndpoint,
	serviceName string,
) (ShutdownFunc, error) {
	var tracerProvider trace.TracerProvider = trace.NewNoopTracerProvider()
	shutdown := func(context.Context) error { return nil }

	defer func() {
		otel.SetTracerProvider(tracerProvider)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	}()

	if settings == nil || len(settings.Endpoint) == 0 {
		return shutdown, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(settings.Endpoint)}
	if settings.CACerts == "" {
		opts = append(opts, otlptracehttp.WithInsecure())
	} else {
		tlsConfig, err := getTLSConfig(settings.CACerts)
		if err != nil {
			return shutdown, err
		}
		opts = append(opts, otlptracehttp.WithTLSClientConfig(tlsConfig))
	}

	exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(opts...))
	if err != nil {
		return shutdown, fmt.Errorf("creating OTLP trace exporter: %w", err)
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName)))
	if err != nil {
		return shutdown, fmt.Errorf("creating resource: %w", err)
	}

	sdkProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(r))
	tracerProvider = sdkProvider

	return sdkProvider.Shutdown, nil
}

// Tracer returns the tracer of the globally installed provider.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
