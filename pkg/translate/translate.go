// Package translate is the façade over pkg/graph, pkg/recognize, and
// pkg/codegen: it exposes the translator as a handful of pure functions
// plus the logging, diagnostics, and telemetry wiring a production call
// site needs around them.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rawdiffusion/comfytranslate/pkg/classify"
	"github.com/rawdiffusion/comfytranslate/pkg/codegen"
	"github.com/rawdiffusion/comfytranslate/pkg/config"
	"github.com/rawdiffusion/comfytranslate/pkg/diagnostics"
	"github.com/rawdiffusion/comfytranslate/pkg/graph"
	"github.com/rawdiffusion/comfytranslate/pkg/logging"
	"github.com/rawdiffusion/comfytranslate/pkg/recognize"
	"github.com/rawdiffusion/comfytranslate/pkg/telemetry"
)

var (
	defaultLogger     = logging.New(logging.DefaultConfig())
	defaultObservers  = diagnostics.NewManager()
	defaultClassify   = classify.NewRegistry()
	defaultConfig     = config.Default()
	telemetryProvider *telemetry.Provider
)

// SetConfig replaces the package-level resource limits and output
// preferences. cfg is not validated here; callers that need to reject a
// malformed Config should call cfg.Validate() themselves first.
func SetConfig(cfg *config.Config) {
	defaultConfig = cfg
}

// Observers returns the package-level observer manager. Callers register
// diagnostics.Observer implementations (a telemetry.TelemetryObserver, a
// custom logger, ...) on it before calling TranslateDocument/TranslateJSON.
func Observers() *diagnostics.Manager {
	return defaultObservers
}

// Classifiers returns the package-level extensible node classifier, letting
// callers register additional class_type → category rules at startup.
// Registered rules only participate in categorization once the active
// Config has EnableCustomClassifiers set (see SetConfig).
func Classifiers() *classify.Registry {
	return defaultClassify
}

// SetLogger replaces the package-level logger.
func SetLogger(l *logging.Logger) {
	defaultLogger = l
}

// SetTelemetryProvider registers a telemetry provider; once set, every
// translate call also notifies its TelemetryObserver-equivalent counters
// through the observer manager. Callers own the provider's lifecycle
// (Shutdown).
func SetTelemetryProvider(p *telemetry.Provider) {
	telemetryProvider = p
	if p != nil {
		defaultObservers.Register(telemetry.NewTelemetryObserver(p))
	}
}

// TranslateDocument translates a parsed workflow document (node id →
// {class_type, inputs}) into a Python/diffusers script. It never returns an
// error: parse-time findings (dangling links, cycles) degrade gracefully
// and are reported through the registered diagnostics.Observers, not the
// return value.
func TranslateDocument(doc map[string]any) string {
	ctx := context.Background()
	requestID := uuid.New().String()
	start := time.Now()
	logger := defaultLogger.WithRequestID(requestID)

	defaultObservers.Notify(ctx, diagnostics.Event{
		Type:      diagnostics.EventParseStart,
		Status:    diagnostics.StatusStarted,
		Timestamp: start,
		RequestID: requestID,
	})
	logger.Info("translation started")

	var classifier graph.Classifier
	if defaultConfig.EnableCustomClassifiers {
		classifier = defaultClassify
	}
	g, diag := graph.Parse(doc, classifier)

	if defaultConfig.MaxNodes > 0 && len(g.Nodes) > defaultConfig.MaxNodes {
		wrapped := fmt.Errorf("%w: %d nodes, max %d", ErrTooManyNodes, len(g.Nodes), defaultConfig.MaxNodes)
		logger.WithError(wrapped).Error("translation rejected")
		return fmt.Sprintf("# Error: %v", wrapped)
	}

	for _, dl := range diag.DanglingLinks {
		logger.WithNodeID(dl.NodeID).Warnf("dangling link dropped: input %q referenced missing node %q", dl.InputName, dl.SourceNode)
		defaultObservers.Notify(ctx, diagnostics.Event{
			Type:      diagnostics.EventDanglingLinkDropped,
			Status:    diagnostics.StatusCompleted,
			Timestamp: time.Now(),
			RequestID: requestID,
			NodeID:    dl.NodeID,
		})
	}
	for _, nodeID := range diag.CycleNodes {
		logger.WithNodeID(nodeID).Warn("node is part of a cycle and was not scheduled")
		defaultObservers.Notify(ctx, diagnostics.Event{
			Type:      diagnostics.EventCycleDetected,
			Status:    diagnostics.StatusCompleted,
			Timestamp: time.Now(),
			RequestID: requestID,
			NodeID:    nodeID,
		})
	}

	patterns := recognize.Analyze(g)
	for _, p := range patterns {
		defaultObservers.Notify(ctx, diagnostics.Event{
			Type:        diagnostics.EventPatternDetected,
			Status:      diagnostics.StatusSuccess,
			Timestamp:   time.Now(),
			RequestID:   requestID,
			PatternType: string(p.Type),
		})
	}

	code := codegen.Generate(patterns)

	logger.WithField("node_count", len(g.Nodes)).
		WithField("pattern_count", len(patterns)).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Info("translation completed")

	defaultObservers.Notify(ctx, diagnostics.Event{
		Type:        diagnostics.EventGenerationEnd,
		Status:      diagnostics.StatusSuccess,
		Timestamp:   time.Now(),
		RequestID:   requestID,
		ElapsedTime: time.Since(start),
		Metadata:    map[string]interface{}{"node_count": len(g.Nodes)},
	})

	return code
}

// TranslateJSON decodes a raw workflow document and translates it, matching
// the original system's wire contract: malformed JSON downgrades to a
// textual "# Error: ..." line rather than a Go error.
func TranslateJSON(data []byte) string {
	if len(data) == 0 {
		wrapped := fmt.Errorf("%w: %v", ErrInvalidDocument, ErrEmptyPayload)
		defaultLogger.WithError(wrapped).Error("translate_json: empty payload")
		return "# Error: Invalid JSON - empty payload"
	}
	if defaultConfig.MaxPayloadSize > 0 && len(data) > defaultConfig.MaxPayloadSize {
		wrapped := fmt.Errorf("%w: %d bytes, max %d", ErrPayloadTooLarge, len(data), defaultConfig.MaxPayloadSize)
		defaultLogger.WithError(wrapped).Error("translate_json: payload too large")
		return fmt.Sprintf("# Error: %v", wrapped)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		wrapped := fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		defaultLogger.WithError(wrapped).Error("translate_json: invalid JSON")
		return fmt.Sprintf("# Error: Invalid JSON - %v", err)
	}
	return TranslateDocument(doc)
}

// AnalyzeJSON parses and analyzes a workflow document without generating
// code, returning node/pattern counts and a build-log-style summary. The
// error return is reserved for I/O failures outside the documented
// {"error": "..."} JSON contract; a malformed document is reported through
// Report's custom MarshalJSON instead.
func AnalyzeJSON(data []byte) (*Report, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return &Report{errText: fmt.Sprintf("Invalid JSON: %v", err)}, nil
	}

	var classifier graph.Classifier
	if defaultConfig.EnableCustomClassifiers {
		classifier = defaultClassify
	}
	g, _ := graph.Parse(doc, classifier)
	patterns := recognize.Analyze(g)

	summaries := make([]PatternSummary, len(patterns))
	for i, p := range patterns {
		summaries[i] = PatternSummary{Type: string(p.Type), Config: p.Config, Nodes: p.Nodes}
	}

	return &Report{
		NodeCount:      len(g.Nodes),
		ExecutionOrder: g.ExecutionOrder,
		RootNodes:      g.RootNodes,
		TerminalNodes:  g.TerminalNodes,
		Patterns:       summaries,
		Summary:        recognize.Summarize(patterns),
	}, nil
}
