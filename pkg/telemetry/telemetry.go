package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "comfytranslate"

	metricTranslationsTotal   = "translations.total"
	metricTranslationDuration = "translation.duration"
	metricTranslationsSuccess = "translations.success.total"
	metricTranslationsFailure = "translations.failure.total"
	metricPatternsDetected    = "patterns.detected.total"
)

// Provider manages OpenTelemetry setup and provides access to tracers and meters.
type Provider struct {
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider trace.TracerProvider
	meter          metric.Meter
	tracer         trace.Tracer

	translationsTotal   metric.Int64Counter
	translationDuration metric.Float64Histogram
	translationsSuccess metric.Int64Counter
	translationsFailure metric.Int64Counter
	patternsDetected    metric.Int64Counter

	mu sync.RWMutex
}

// Config holds telemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	EnableTracing  bool
	EnableMetrics  bool
}

// DefaultConfig returns default telemetry configuration.
func DefaultConfig() Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "0.1.0",
		Environment:    "development",
		EnableTracing:  true,
		EnableMetrics:  true,
	}
}

// NewProvider creates a telemetry provider with a Prometheus metrics exporter.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	provider := &Provider{}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if config.EnableMetrics {
		if err := provider.initMetrics(res); err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
	}

	if config.EnableTracing {
		provider.initTracing()
	}

	return provider, nil
}

func (p *Provider) initMetrics(res *resource.Resource) error {
	exporter, err := prometheus.New()
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)

	otel.SetMeterProvider(p.meterProvider)

	p.meter = p.meterProvider.Meter(serviceName)

	return p.createMetricInstruments()
}

func (p *Provider) initTracing() {
	// In production this would be configured with an OTLP or Jaeger exporter.
	p.tracerProvider = otel.GetTracerProvider()
	p.tracer = p.tracerProvider.Tracer(serviceName)
}

func (p *Provider) createMetricInstruments() error {
	var err error

	p.translationsTotal, err = p.meter.Int64Counter(
		metricTranslationsTotal,
		metric.WithDescription("Total number of translate calls"),
	)
	if err != nil {
		return err
	}

	p.translationDuration, err = p.meter.Float64Histogram(
		metricTranslationDuration,
		metric.WithDescription("Translate call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	p.translationsSuccess, err = p.meter.Int64Counter(
		metricTranslationsSuccess,
		metric.WithDescription("Total number of translate calls that completed without a parse failure"),
	)
	if err != nil {
		return err
	}

	p.translationsFailure, err = p.meter.Int64Counter(
		metricTranslationsFailure,
		metric.WithDescription("Total number of translate calls that failed before generation"),
	)
	if err != nil {
		return err
	}

	p.patternsDetected, err = p.meter.Int64Counter(
		metricPatternsDetected,
		metric.WithDescription("Total number of patterns detected, by type"),
	)
	if err != nil {
		return err
	}

	return nil
}

// Tracer returns the tracer for creating spans.
func (p *Provider) Tracer() trace.Tracer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracer
}

// Meter returns the meter for recording metrics.
func (p *Provider) Meter() metric.Meter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.meter
}

// RecordTranslation records metrics for one end-to-end translate call.
func (p *Provider) RecordTranslation(ctx context.Context, requestID string, duration time.Duration, success bool, nodeCount int) {
	if p.meter == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("request.id", requestID),
		attribute.Int("node.count", nodeCount),
	}

	p.translationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	p.translationDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if success {
		p.translationsSuccess.Add(ctx, 1, metric.WithAttributes(attrs...))
	} else {
		p.translationsFailure.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordPatternDetected records one occurrence of a detected pattern type.
func (p *Provider) RecordPatternDetected(ctx context.Context, patternType string) {
	if p.meter == nil {
		return
	}

	p.patternsDetected.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pattern.type", patternType),
	))
}

// Shutdown gracefully shuts down the telemetry provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown meter provider: %w", err)
		}
	}

	return nil
}
