// Package observability provides OpenTelemetry tracing and metrics for
// pipeline translation.
//
// Translation is an in-memory transformation, but jobs lower large
// trees; a span per pipeline with per-node events and counters for
// nodes translated and tags bound make slow or failing lowerings
// diagnosable. Everything degrades to no-ops when no provider is
// initialized, so library consumers pay nothing by default.
package observability
