package types

// MetricsCollector defines methods for collecting operational metrics.
//
// Execute-scoped methods accept a StatementKind parameter for labeling.
// Implementations should be thread-safe as methods may be called
// concurrently from multiple statements sharing one client.
//
// Example usage with VictoriaMetrics (via contrib/metrics/vm):
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	client, _ := cqlbridge.NewClient(session,
//	    cqlbridge.WithMetrics(collector),
//	)
//
//	// Expose metrics via HTTP
//	http.HandleFunc("/metrics", collector.Handler)
type MetricsCollector interface {
	// IncPrepareTotal increments the total prepare operations counter.
	IncPrepareTotal()

	// IncPrepareError increments the prepare error counter.
	IncPrepareError()

	// IncBindError increments the bind error counter. Covers index
	// validation failures and coercion parse failures.
	IncBindError()

	// IncExecuteTotal increments the total execute operations counter.
	IncExecuteTotal(kind StatementKind)

	// IncExecuteError increments the execute error counter.
	IncExecuteError(kind StatementKind)

	// ObserveExecuteDuration records an execute round-trip duration in seconds.
	ObserveExecuteDuration(kind StatementKind, seconds float64)
}
