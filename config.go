package cqlbridge

import (
	"github.com/cqlbridge/cqlbridge/internal/logging"
	"github.com/cqlbridge/cqlbridge/internal/metrics"
	"github.com/cqlbridge/cqlbridge/types"
)

// ClientConfig holds configuration for a cqlbridge Client.
type ClientConfig struct {
	// Consistency is the default consistency level applied to prepare and
	// execute round trips.
	Consistency types.Consistency

	// Logger receives structured diagnostics. Never nil after client
	// construction.
	Logger types.Logger

	// Metrics collects operational counters. Never nil after client
	// construction.
	Metrics types.MetricsCollector
}

// DefaultConfig returns a ClientConfig with sensible defaults.
//
// Defaults:
//   - Consistency: Quorum
//   - Logger: no-op
//   - Metrics: no-op
//
// Returns:
//   - *ClientConfig: Configuration with default settings
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Consistency: types.Quorum,
		Logger:      logging.NewNopLogger(),
		Metrics:     metrics.NewNopMetrics(),
	}
}

// Option configures a ClientConfig.
type Option func(*ClientConfig)

// WithConsistency sets the default consistency level for all statements
// prepared by the client.
//
// Parameters:
//   - c: Consistency level
//
// Returns:
//   - Option: Configuration option
func WithConsistency(c types.Consistency) Option {
	return func(cfg *ClientConfig) {
		cfg.Consistency = c
	}
}

// WithLogger sets the logger for the client and its statements.
//
// Parameters:
//   - logger: The logger implementation
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(cfg *ClientConfig) {
		cfg.Logger = logger
	}
}

// WithMetrics sets the metrics collector for the client and its statements.
//
// Parameters:
//   - collector: The metrics collector implementation (e.g. contrib/metrics/vm)
//
// Returns:
//   - Option: Configuration option
func WithMetrics(collector types.MetricsCollector) Option {
	return func(cfg *ClientConfig) {
		cfg.Metrics = collector
	}
}
