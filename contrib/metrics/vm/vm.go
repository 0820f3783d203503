package vm

import (
	"fmt"
	"io"
	"net/http"

	"github.com/VictoriaMetrics/metrics"

	"github.com/cqlbridge/cqlbridge/types"
)

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "cqlbridge"
//
// Parameters:
//   - prefix: The prefix to use for all metric names
//
// Returns:
//   - Option: A configuration option
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithMetricsSet sets the metrics set to use.
//
// If provided, the collector will register metrics with this set instead of
// creating a new one. The caller is responsible for exposing this set
// (e.g., via metrics.WritePrometheus or a custom handler).
//
// Parameters:
//   - set: The metrics set to use
//
// Returns:
//   - Option: A configuration option
func WithMetricsSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

// Collector implements types.MetricsCollector using VictoriaMetrics.
//
// All metrics are pre-created at initialization time for optimal performance.
// Thread-safe for concurrent use.
type Collector struct {
	set    *metrics.Set
	prefix string

	// Prepare metrics
	prepareTotal  *metrics.Counter
	prepareErrors *metrics.Counter

	// Bind metrics
	bindErrors *metrics.Counter

	// Execute metrics, split by statement kind
	executeTotalQuery       *metrics.Counter
	executeTotalMutation    *metrics.Counter
	executeErrorsQuery      *metrics.Counter
	executeErrorsMutation   *metrics.Counter
	executeDurationQuery    *metrics.Histogram
	executeDurationMutation *metrics.Histogram
}

// New creates a new VictoriaMetrics-based metrics collector.
//
// The collector creates its own metrics.Set and registers it globally.
// All metrics are pre-created at initialization for optimal performance.
//
// Parameters:
//   - opts: Configuration options (e.g., WithPrefix)
//
// Returns:
//   - *Collector: A new metrics collector ready for use
//
// Example:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	client, _ := cqlbridge.NewClient(session,
//	    cqlbridge.WithMetrics(collector),
//	)
func New(opts ...Option) *Collector {
	c := &Collector{
		prefix: "cqlbridge",
	}

	for _, opt := range opts {
		opt(c)
	}

	// If no set is provided, create a new one and register it globally.
	// If a set is provided, we assume the caller manages it.
	if c.set == nil {
		c.set = metrics.NewSet()
		metrics.RegisterSet(c.set)
	}

	c.initMetrics()

	return c
}

// initMetrics pre-creates all metrics with the configured prefix.
func (c *Collector) initMetrics() {
	p := c.prefix
	q := string(types.StatementQuery)
	m := string(types.StatementMutation)

	// Prepare metrics
	c.prepareTotal = c.set.NewCounter(fmt.Sprintf(`%s_prepare_total`, p))
	c.prepareErrors = c.set.NewCounter(fmt.Sprintf(`%s_prepare_errors_total`, p))

	// Bind metrics
	c.bindErrors = c.set.NewCounter(fmt.Sprintf(`%s_bind_errors_total`, p))

	// Execute metrics
	c.executeTotalQuery = c.set.NewCounter(fmt.Sprintf(`%s_execute_total{kind="%s"}`, p, q))
	c.executeTotalMutation = c.set.NewCounter(fmt.Sprintf(`%s_execute_total{kind="%s"}`, p, m))
	c.executeErrorsQuery = c.set.NewCounter(fmt.Sprintf(`%s_execute_errors_total{kind="%s"}`, p, q))
	c.executeErrorsMutation = c.set.NewCounter(fmt.Sprintf(`%s_execute_errors_total{kind="%s"}`, p, m))
	c.executeDurationQuery = c.set.NewHistogram(fmt.Sprintf(`%s_execute_duration_seconds{kind="%s"}`, p, q))
	c.executeDurationMutation = c.set.NewHistogram(fmt.Sprintf(`%s_execute_duration_seconds{kind="%s"}`, p, m))
}

func (c *Collector) Set() *metrics.Set {
	return c.set
}

// Handler returns an HTTP handler that exposes metrics in Prometheus format.
//
// Example:
//
//	http.HandleFunc("/metrics", collector.Handler)
func (c *Collector) Handler(w http.ResponseWriter, _ *http.Request) {
	c.set.WritePrometheus(w)
}

// WritePrometheus writes all metrics in Prometheus format to the given writer.
//
// Parameters:
//   - w: The writer to write metrics to
func (c *Collector) WritePrometheus(w io.Writer) {
	c.set.WritePrometheus(w)
}

// IncPrepareTotal increments the total prepare operations counter.
func (c *Collector) IncPrepareTotal() {
	c.prepareTotal.Inc()
}

// IncPrepareError increments the prepare error counter.
func (c *Collector) IncPrepareError() {
	c.prepareErrors.Inc()
}

// IncBindError increments the bind error counter.
func (c *Collector) IncBindError() {
	c.bindErrors.Inc()
}

// IncExecuteTotal increments the total execute operations counter.
func (c *Collector) IncExecuteTotal(kind types.StatementKind) {
	if kind == types.StatementMutation {
		c.executeTotalMutation.Inc()
	} else {
		c.executeTotalQuery.Inc()
	}
}

// IncExecuteError increments the execute error counter.
func (c *Collector) IncExecuteError(kind types.StatementKind) {
	if kind == types.StatementMutation {
		c.executeErrorsMutation.Inc()
	} else {
		c.executeErrorsQuery.Inc()
	}
}

// ObserveExecuteDuration records an execute operation duration in seconds.
func (c *Collector) ObserveExecuteDuration(kind types.StatementKind, seconds float64) {
	if kind == types.StatementMutation {
		c.executeDurationMutation.Update(seconds)
	} else {
		c.executeDurationQuery.Update(seconds)
	}
}

// Compile-time check that Collector implements types.MetricsCollector.
var _ types.MetricsCollector = (*Collector)(nil)
