package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rawdiffusion/comfytranslate/pkg/diagnostics"
)

func TestTelemetryObserver_FullLifecycle(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	obs := NewTelemetryObserver(provider)

	obs.OnEvent(ctx, diagnostics.Event{
		Type:       diagnostics.EventParseStart,
		Status:     diagnostics.StatusStarted,
		Timestamp:  time.Now(),
		RequestID:  "req-1",
		DocumentID: "doc-1",
	})

	obs.OnEvent(ctx, diagnostics.Event{
		Type:        diagnostics.EventPatternDetected,
		Status:      diagnostics.StatusSuccess,
		Timestamp:   time.Now(),
		RequestID:   "req-1",
		PatternType: "txt2img",
	})

	obs.OnEvent(ctx, diagnostics.Event{
		Type:      diagnostics.EventGenerationEnd,
		Status:    diagnostics.StatusSuccess,
		Timestamp: time.Now(),
		RequestID: "req-1",
		Metadata:  map[string]interface{}{"node_count": 3},
	})
}

func TestTelemetryObserver_RecordsFailure(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	obs := NewTelemetryObserver(provider)

	obs.OnEvent(ctx, diagnostics.Event{
		Type:      diagnostics.EventParseStart,
		Status:    diagnostics.StatusStarted,
		Timestamp: time.Now(),
		RequestID: "req-2",
	})

	obs.OnEvent(ctx, diagnostics.Event{
		Type:      diagnostics.EventGenerationEnd,
		Status:    diagnostics.StatusFailure,
		Timestamp: time.Now(),
		RequestID: "req-2",
		Error:     errors.New("boom"),
	})
}

func TestTelemetryObserver_EndWithoutStartDoesNotPanic(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	obs := NewTelemetryObserver(provider)

	obs.OnEvent(ctx, diagnostics.Event{
		Type:      diagnostics.EventGenerationEnd,
		Status:    diagnostics.StatusSuccess,
		Timestamp: time.Now(),
		RequestID: "req-orphan",
	})
}
