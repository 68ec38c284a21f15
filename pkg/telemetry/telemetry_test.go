package telemetry

import (
	"context"
	"testing"
	"time"
)

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "default config",
			config: DefaultConfig(),
		},
		{
			name: "custom config",
			config: Config{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Environment:    "test",
				EnableTracing:  true,
				EnableMetrics:  true,
			},
		},
		{
			name: "metrics only",
			config: Config{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Environment:    "test",
				EnableTracing:  false,
				EnableMetrics:  true,
			},
		},
		{
			name: "tracing only",
			config: Config{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Environment:    "test",
				EnableTracing:  true,
				EnableMetrics:  false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(ctx, tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if provider == nil {
				t.Fatal("NewProvider() returned nil provider")
			}

			if tt.config.EnableTracing && provider.Tracer() == nil {
				t.Error("Tracer() returned nil when tracing is enabled")
			}
			if tt.config.EnableMetrics && provider.Meter() == nil {
				t.Error("Meter() returned nil when metrics are enabled")
			}

			if err := provider.Shutdown(ctx); err != nil {
				t.Errorf("Shutdown() error = %v", err)
			}
		})
	}
}

func TestRecordTranslation(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	tests := []struct {
		name      string
		requestID string
		duration  time.Duration
		success   bool
		nodeCount int
	}{
		{name: "successful translation", requestID: "req-1", duration: 100 * time.Millisecond, success: true, nodeCount: 5},
		{name: "failed translation", requestID: "req-2", duration: 10 * time.Millisecond, success: false, nodeCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider.RecordTranslation(ctx, tt.requestID, tt.duration, tt.success, tt.nodeCount)
		})
	}
}

func TestRecordPatternDetected(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	provider.RecordPatternDetected(ctx, "txt2img")
	provider.RecordPatternDetected(ctx, "controlnet")
}

func TestShutdown(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	if err := provider.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}

	// A second shutdown should not panic even if the SDK returns an error.
	_ = provider.Shutdown(ctx)
}

func TestProviderWithNilMetrics(t *testing.T) {
	ctx := context.Background()
	config := Config{
		ServiceName:    "test",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		EnableTracing:  true,
		EnableMetrics:  false,
	}

	provider, err := NewProvider(ctx, config)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	// Should not panic even with nil metrics.
	provider.RecordTranslation(ctx, "req-1", time.Second, true, 1)
	provider.RecordPatternDetected(ctx, "txt2img")
}
