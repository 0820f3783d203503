// Package vm provides a VictoriaMetrics-based implementation of the MetricsCollector interface.
//
// This package uses github.com/VictoriaMetrics/metrics for lightweight,
// high-performance Prometheus-compatible metrics collection.
//
// # Basic Usage
//
// Create a collector with default prefix "cqlbridge":
//
//	collector := vm.New()
//	client, _ := cqlbridge.NewClient(session,
//	    cqlbridge.WithMetrics(collector),
//	)
//
// # Custom Prefix
//
// Use WithPrefix to customize the metric name prefix:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//
// This produces metrics like:
//   - myapp_prepare_total
//   - myapp_execute_duration_seconds{kind="mutation"}
//
// # Exposing Metrics
//
// Use the Handler method to expose metrics via HTTP:
//
//	http.HandleFunc("/metrics", collector.Handler)
//	http.ListenAndServe(":8080", nil)
//
// Or use WritePrometheus to write metrics to a custom writer:
//
//	collector.WritePrometheus(w)
//
// # Metrics Provided
//
// Prepare:
//   - {prefix}_prepare_total - Counter of prepare calls
//   - {prefix}_prepare_errors_total - Counter of prepare failures
//
// Bind:
//   - {prefix}_bind_errors_total - Counter of rejected bind calls
//
// Execute:
//   - {prefix}_execute_total{kind} - Counter of executions by statement kind
//   - {prefix}_execute_errors_total{kind} - Counter of execution failures
//   - {prefix}_execute_duration_seconds{kind} - Histogram of execution latencies
//
// # Performance Notes
//
// This implementation pre-creates all metrics at initialization time
// using the NewXXX pattern (instead of GetOrCreateXXX) for optimal
// performance in hot paths, as recommended by the VictoriaMetrics documentation.
//
// The metrics are registered with a dedicated Set that is registered
// globally, allowing standard Prometheus scraping.
package vm
