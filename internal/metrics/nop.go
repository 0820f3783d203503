// Package metrics provides internal metrics utilities for cqlbridge.
package metrics

import "github.com/cqlbridge/cqlbridge/types"

// NopMetrics is a no-op metrics collector that discards all metrics.
//
// This is used as the default metrics collector when no collector is
// configured, avoiding nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements types.MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A collector that discards all metrics
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// IncPrepareTotal discards the metric.
func (m *NopMetrics) IncPrepareTotal() {}

// IncPrepareError discards the metric.
func (m *NopMetrics) IncPrepareError() {}

// IncBindError discards the metric.
func (m *NopMetrics) IncBindError() {}

// IncExecuteTotal discards the metric.
func (m *NopMetrics) IncExecuteTotal(_ types.StatementKind) {}

// IncExecuteError discards the metric.
func (m *NopMetrics) IncExecuteError(_ types.StatementKind) {}

// ObserveExecuteDuration discards the metric.
func (m *NopMetrics) ObserveExecuteDuration(_ types.StatementKind, _ float64) {}
