package app

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	metricsdk "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// OpenTelemetry bootstrap for the daemon. Traces export over OTLP/HTTP when
// an endpoint is configured; metrics surface through the process Prometheus
// registry, next to the bridge keeper counters. With no endpoint configured
// the bootstrap is a no-op.

const (
	serviceName = "silence-node"
	environment = "testnet"

	defaultTraceSampleRate = 0.1
)

// NormalizeRPCURL converts CometBFT-style RPC listen addresses into URLs an
// HTTP client can dial. tcp:// becomes http://, unix sockets pass through
// untouched, and blank input yields an empty string.
func NormalizeRPCURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "tcp://") {
		return "http://" + strings.TrimPrefix(trimmed, "tcp://")
	}
	return trimmed
}

// TelemetryConfig selects which telemetry backends to bring up.
type TelemetryConfig struct {
	// OTLPEndpoint is the host:port of an OTLP/HTTP trace collector.
	// Empty disables tracing.
	OTLPEndpoint string
	// PrometheusEnabled bridges the otel meter into the Prometheus registry.
	PrometheusEnabled bool
	// SampleRate is the parent-based trace sampling ratio in [0, 1].
	SampleRate float64
}

// TelemetryConfigFromEnv reads the telemetry settings the operator set for
// this process.
func TelemetryConfigFromEnv() TelemetryConfig {
	cfg := TelemetryConfig{
		OTLPEndpoint:      strings.TrimSpace(os.Getenv("SILENCE_OTLP_ENDPOINT")),
		PrometheusEnabled: os.Getenv("SILENCE_OTEL_PROMETHEUS") != "false",
		SampleRate:        defaultTraceSampleRate,
	}
	if raw := os.Getenv("SILENCE_TRACE_SAMPLE_RATE"); raw != "" {
		if rate, err := strconv.ParseFloat(raw, 64); err == nil && rate >= 0 && rate <= 1 {
			cfg.SampleRate = rate
		}
	}
	return cfg
}

// Telemetry owns the installed otel providers.
type Telemetry struct {
	meter    metric.Meter
	shutdown []func(context.Context) error
}

// InitTelemetry installs the global tracer and meter providers per cfg.
func InitTelemetry(cfg TelemetryConfig) (*Telemetry, error) {
	tel := &Telemetry{}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			attribute.String("environment", environment),
			attribute.String("chain.id", ChainID),
		),
	)
	if err != nil {
		return nil, err
	}

	if cfg.OTLPEndpoint != "" {
		endpoint := strings.TrimPrefix(NormalizeRPCURL(cfg.OTLPEndpoint), "http://")
		exp, err := otlptracehttp.New(
			context.Background(),
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		)
		if err != nil {
			return nil, err
		}

		tp := trace.NewTracerProvider(
			trace.WithBatcher(exp),
			trace.WithResource(res),
			trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRate))),
		)
		otel.SetTracerProvider(tp)
		tel.shutdown = append(tel.shutdown, tp.Shutdown)
	}

	if cfg.PrometheusEnabled {
		exporter, err := otelprom.New()
		if err != nil {
			return nil, err
		}

		provider := metricsdk.NewMeterProvider(
			metricsdk.WithResource(res),
			metricsdk.WithReader(exporter),
		)
		otel.SetMeterProvider(provider)
		tel.meter = provider.Meter(serviceName)
		tel.shutdown = append(tel.shutdown, provider.Shutdown)
	}

	return tel, nil
}

// Meter returns the installed meter, or nil when metrics are disabled.
func (t *Telemetry) Meter() metric.Meter {
	return t.meter
}

// Shutdown flushes and stops every installed provider.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range t.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
