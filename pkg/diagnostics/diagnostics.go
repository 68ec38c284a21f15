// Package diagnostics provides an event-driven observer pattern for the
// translation pipeline. Consumers can watch parse, recognition, and
// generation stages without coupling to the façade implementation.
package diagnostics

import (
	"context"
	"time"
)

// EventType represents the kind of pipeline event being reported.
type EventType string

const (
	EventParseStart          EventType = "parse_start"
	EventParseEnd            EventType = "parse_end"
	EventDanglingLinkDropped EventType = "dangling_link_dropped"
	EventCycleDetected       EventType = "cycle_detected"
	EventPatternDetected     EventType = "pattern_detected"
	EventGenerationStart     EventType = "generation_start"
	EventGenerationEnd       EventType = "generation_end"
)

// ExecutionStatus represents the outcome of a pipeline stage.
type ExecutionStatus string

const (
	StatusStarted   ExecutionStatus = "started"
	StatusSuccess   ExecutionStatus = "success"
	StatusFailure   ExecutionStatus = "failure"
	StatusCompleted ExecutionStatus = "completed"
)

// Event carries metadata about a single pipeline occurrence.
type Event struct {
	Type      EventType       `json:"type"`
	Status    ExecutionStatus `json:"status"`
	Timestamp time.Time       `json:"timestamp"`

	// RequestID identifies a single translate call end to end.
	RequestID string `json:"request_id"`
	// DocumentID identifies the source workflow document, when known.
	DocumentID string `json:"document_id,omitempty"`

	// NodeID and ClassType are populated for node-scoped events
	// (dangling links, cycle membership).
	NodeID    string `json:"node_id,omitempty"`
	ClassType string `json:"class_type,omitempty"`

	// PatternType is populated for pattern-recognition events.
	PatternType string `json:"pattern_type,omitempty"`

	StartTime   time.Time     `json:"start_time,omitempty"`
	ElapsedTime time.Duration `json:"elapsed_time,omitempty"`

	Result interface{} `json:"result,omitempty"`
	Error  error       `json:"error,omitempty"`

	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Observer receives notifications about pipeline events.
type Observer interface {
	// OnEvent is called when a pipeline event occurs. The context can be
	// used for cancellation and passing request-scoped values.
	OnEvent(ctx context.Context, event Event)
}

// Logger defines the interface consumers implement to receive structured
// log lines from diagnostics' built-in observers, independent of pkg/logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
