package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rawdiffusion/comfytranslate/pkg/diagnostics"
)

// TelemetryObserver implements diagnostics.Observer and records spans and
// metrics for a translate request's lifecycle.
type TelemetryObserver struct {
	provider *Provider

	mu         sync.Mutex
	spans      map[string]trace.Span
	startTimes map[string]time.Time
}

// NewTelemetryObserver creates a telemetry observer backed by provider.
func NewTelemetryObserver(provider *Provider) *TelemetryObserver {
	return &TelemetryObserver{
		provider:   provider,
		spans:      make(map[string]trace.Span),
		startTimes: make(map[string]time.Time),
	}
}

// OnEvent implements diagnostics.Observer.
func (o *TelemetryObserver) OnEvent(ctx context.Context, event diagnostics.Event) {
	switch event.Type {
	case diagnostics.EventParseStart:
		o.handleStart(ctx, event)
	case diagnostics.EventGenerationEnd:
		o.handleEnd(ctx, event)
	case diagnostics.EventPatternDetected:
		o.provider.RecordPatternDetected(ctx, event.PatternType)
	}
}

func (o *TelemetryObserver) handleStart(ctx context.Context, event diagnostics.Event) {
	_, span := o.provider.Tracer().Start(ctx, "translate",
		trace.WithAttributes(
			attribute.String("request.id", event.RequestID),
			attribute.String("document.id", event.DocumentID),
		),
	)

	o.mu.Lock()
	o.spans[event.RequestID] = span
	o.startTimes[event.RequestID] = event.Timestamp
	o.mu.Unlock()
}

func (o *TelemetryObserver) handleEnd(ctx context.Context, event diagnostics.Event) {
	o.mu.Lock()
	span, hasSpan := o.spans[event.RequestID]
	startTime, hasStart := o.startTimes[event.RequestID]
	delete(o.spans, event.RequestID)
	delete(o.startTimes, event.RequestID)
	o.mu.Unlock()

	var duration time.Duration
	if hasStart {
		duration = time.Since(startTime)
	}

	nodeCount := 0
	if val, ok := event.Metadata["node_count"]; ok {
		if count, ok := val.(int); ok {
			nodeCount = count
		}
	}

	success := event.Status == diagnostics.StatusSuccess
	o.provider.RecordTranslation(ctx, event.RequestID, duration, success, nodeCount)

	if hasSpan {
		if event.Error != nil {
			span.RecordError(event.Error)
			span.SetStatus(codes.Error, event.Error.Error())
		} else {
			span.SetStatus(codes.Ok, "translation completed")
		}
		span.End()
	}
}
