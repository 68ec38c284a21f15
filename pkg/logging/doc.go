// Package logging provides structured logging capabilities for the translator.
//
// # Overview
//
// The logging package implements a structured logging system with support for
// multiple output formats, log levels, contextual information, and integration
// with a translate request's lifecycle (parse, recognize, generate).
//
// # Features
//
//   - Structured logging: JSON and text formats
//   - Log levels: DEBUG, INFO, WARN, ERROR
//   - Context propagation: request ID, document ID, node ID
//   - Level filtering: one minimum level per logger
//   - Performance: Minimal overhead for disabled log levels
//   - Thread-safe: Safe for concurrent use
//   - Flexible output: Write to any io.Writer
//
// # Log Levels
//
// The package supports standard log levels:
//
//   - DEBUG: Detailed diagnostic information
//   - INFO: General informational messages
//   - WARN: Warning messages for potential issues
//   - ERROR: Error messages for failures
//
// # Basic Usage
//
//	import "github.com/rawdiffusion/comfytranslate/pkg/logging"
//
//	// Create logger
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Output: os.Stdout,
//	})
//
//	// Log messages
//	logger.WithDocumentID("wf-123").Info("translation started")
//
//	logger.WithError(err).WithNodeID("5").Error("node resolution failed")
//
// # Context Integration
//
// The logger integrates with Go contexts for automatic field extraction:
//
//	// Logger carries request_id and document_id through context
//	logging.FromContext(ctx).WithNodeID(id).Debug("classifying node")
//
// # Structured Fields
//
// All log entries support structured fields, attached before the message
// is logged:
//
//	logger.WithFields(map[string]interface{}{
//	    "node_count":    7,
//	    "pattern_count": 2,
//	    "duration_ms":   145,
//	}).Info("translation completed")
//
// # Output Formats
//
// JSON Format (default):
//
//	{
//	  "time": "2024-01-15T10:30:00Z",
//	  "level": "INFO",
//	  "msg": "translation started",
//	  "request_id": "req-456",
//	  "document_id": "wf-123"
//	}
//
// Text Format (Pretty: true):
//
//	time=2024-01-15T10:30:00Z level=INFO msg="translation started" request_id=req-456 document_id=wf-123
//
// # Configuration
//
// Logger configuration options:
//
//	config := logging.Config{
//	    Level:         "debug",   // Minimum level: debug, info, warn, error
//	    Output:        os.Stdout, // Where to write logs
//	    Pretty:        false,     // true selects the text format
//	    IncludeCaller: true,      // Include file:line
//	}
//
// # Performance Considerations
//
//   - Disabled levels are filtered by the slog handler before a record is built
//   - The f-suffixed methods (Infof, Debugf, ...) format their message before
//     the level check
//   - Output is written directly to the configured io.Writer, unbuffered
//
// # Common Logging Patterns
//
// Translation start:
//
//	logger.WithDocumentID(id).Info("translation started")
//
// Node classification:
//
//	logger.WithNodeID(node.ID).WithClassType(node.ClassType).Debug("classifying node")
//
// Error logging:
//
//	logger.WithNodeID(node.ID).WithError(err).Error("node resolution failed")
//
// Completion:
//
//	logger.WithField("duration_ms", elapsed.Milliseconds()).
//	    WithField("node_count", len(graph.Nodes)).
//	    Info("translation completed")
//
// # Integration with Diagnostics
//
// The logging package is used alongside pkg/diagnostics, which reports
// parse-time and pattern-recognition findings as structured events rather
// than log lines; the façade logs the summary while diagnostics carries the
// machine-readable detail.
//
// # Best Practices
//
//   - Use structured fields instead of string formatting
//   - Include execution context (request_id, document_id, node_id, etc.)
//   - Log at appropriate levels (avoid debug in production)
//   - Add timing information for performance analysis
//   - Include error context (not just error message)
//   - Use consistent field names across the codebase
//
// # Thread Safety
//
// All logger operations are thread-safe and can be used concurrently
// from multiple goroutines without additional synchronization.
//
// # Testing
//
// For testing, use a logger with a buffer:
//
//	buf := &bytes.Buffer{}
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Output: buf, // JSON unless Pretty is set
//	})
//
//	// Execute code
//	// Verify log output
//	assert.Contains(t, buf.String(), "expected message")
package logging
