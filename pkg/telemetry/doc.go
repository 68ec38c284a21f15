// Package telemetry provides OpenTelemetry integration for distributed tracing
// and metrics over the translation pipeline. It enables observability with
// support for:
//   - Distributed tracing with one span per translate call
//   - Prometheus metrics for translation counts, duration, and outcomes
//   - Per-pattern-type detection counters
//   - A diagnostics.Observer adapter so telemetry wires into the same event
//     stream as logging and console output
package telemetry
