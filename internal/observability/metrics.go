// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Source metrics
	SourcesGenerated prometheus.Counter
	EventsGenerated  prometheus.Counter

	// Simulation metrics
	RunsStarted    prometheus.Counter
	RunsCompleted  *prometheus.CounterVec
	RunDuration    prometheus.Histogram
	OrdersPlaced   *prometheus.CounterVec
	FillsExecuted  prometheus.Counter
	EventsConsumed prometheus.Counter

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "updown_sim_lab"
	}

	return &Metrics{
		// Source metrics
		SourcesGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "sources_generated_total",
			Help:      "Total number of trade event sources generated",
		}),
		EventsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "events_generated_total",
			Help:      "Total number of trade events generated",
		}),

		// Simulation metrics
		RunsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "runs_started_total",
			Help:      "Total number of simulation runs started",
		}),
		RunsCompleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "runs_completed_total",
			Help:      "Total number of simulation runs completed by status",
		}, []string{"status"}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "run_duration_seconds",
			Help:      "Simulation run duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		OrdersPlaced: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "orders_placed_total",
			Help:      "Total number of orders placed by side",
		}, []string{"side"}),
		FillsExecuted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "fills_executed_total",
			Help:      "Total number of order fills executed",
		}),
		EventsConsumed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "events_consumed_total",
			Help:      "Total number of trade events consumed by simulations",
		}),

		// Database metrics
		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"database", "operation"}),
		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_errors_total",
			Help:      "Total number of database query errors",
		}, []string{"database", "operation"}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordSourceGenerated records a generated source and its event count.
func RecordSourceGenerated(eventCount int) {
	DefaultMetrics.SourcesGenerated.Inc()
	DefaultMetrics.EventsGenerated.Add(float64(eventCount))
}

// RecordRunStarted increments the runs started counter.
func RecordRunStarted() {
	DefaultMetrics.RunsStarted.Inc()
}

// RecordRunCompleted records a finished run with its outcome and duration.
func RecordRunCompleted(status string, seconds float64) {
	DefaultMetrics.RunsCompleted.WithLabelValues(status).Inc()
	DefaultMetrics.RunDuration.Observe(seconds)
}

// RecordOrderPlaced increments the orders placed counter for a side.
func RecordOrderPlaced(side string) {
	DefaultMetrics.OrdersPlaced.WithLabelValues(side).Inc()
}

// RecordFillExecuted increments the fills executed counter.
func RecordFillExecuted() {
	DefaultMetrics.FillsExecuted.Inc()
}

// RecordEventConsumed increments the events consumed counter.
func RecordEventConsumed() {
	DefaultMetrics.EventsConsumed.Inc()
}

// RecordDBQuery records a database query duration.
func RecordDBQuery(database, operation string, seconds float64) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(database, operation).Observe(seconds)
}

// RecordDBQueryError increments the database query error counter.
func RecordDBQueryError(database, operation string) {
	DefaultMetrics.DBQueryErrors.WithLabelValues(database, operation).Inc()
}
