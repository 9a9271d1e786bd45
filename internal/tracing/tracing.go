// Package tracing installs the process-wide OpenTelemetry tracer provider.
//
// Spans are exported over OTLP/HTTP when an endpoint is configured.
// Without one the global no-op provider stays in place.
package tracing

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"strhelpers/internal/config"
)

// Provider owns the SDK tracer provider, if one was installed.
type Provider struct {
	sdk *sdktrace.TracerProvider
}

// Setup builds an OTLP/HTTP exporter for cfg.Endpoint and installs a batching
// tracer provider as the global one. An empty endpoint returns a disabled Provider.
func Setup(ctx context.Context, cfg config.TracingConfig) (*Provider, error) {
	if cfg.Endpoint == "" {
		return &Provider{}, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpointHost(cfg.Endpoint))}
	if cfg.Insecure || strings.HasPrefix(cfg.Endpoint, "http://") {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		res = resource.Default()
	}

	sdk := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(sdk)

	return &Provider{sdk: sdk}, nil
}

// Enabled reports whether spans are being exported.
func (p *Provider) Enabled() bool {
	return p.sdk != nil
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}

// endpointHost strips the scheme, since otlptracehttp expects host:port.
func endpointHost(endpoint string) string {
	for _, prefix := range []string{"https://", "http://"} {
		if strings.HasPrefix(endpoint, prefix) {
			return strings.TrimSuffix(endpoint[len(prefix):], "/")
		}
	}
	return endpoint
}
