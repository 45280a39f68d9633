package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors exposed by the service.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     *prometheus.GaugeVec
	dbInUseConns    *prometheus.GaugeVec
	dbIdleConns     *prometheus.GaugeVec

	sweepRunsTotal   *prometheus.CounterVec
	sweepRowsUpdated *prometheus.CounterVec
	sweepRunDuration *prometheus.HistogramVec
}

// New registers and returns the service metrics on the default registry.
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries.",
			ConstLabels: labels,
		}, []string{"operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),

		dbOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Open database connections.",
			ConstLabels: labels,
		}, []string{"db"}),

		dbInUseConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Database connections currently in use.",
			ConstLabels: labels,
		}, []string{"db"}),

		dbIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Idle database connections.",
			ConstLabels: labels,
		}, []string{"db"}),

		sweepRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_sweep_runs_total",
			Help:        "Total number of booking status sweep runs.",
			ConstLabels: labels,
		}, []string{"status"}),

		sweepRowsUpdated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_sweep_rows_updated_total",
			Help:        "Booking rows advanced by the status sweep.",
			ConstLabels: labels,
		}, []string{"transition"}),

		sweepRunDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "booking_sweep_duration_seconds",
			Help:        "Booking status sweep latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest records a completed HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery records a completed database query.
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats records connection pool gauges.
func (m *Metrics) SetDBPoolStats(db string, open, inUse, idle int) {
	m.dbOpenConns.WithLabelValues(db).Set(float64(open))
	m.dbInUseConns.WithLabelValues(db).Set(float64(inUse))
	m.dbIdleConns.WithLabelValues(db).Set(float64(idle))
}

// ObserveSweep records one status sweep run.
func (m *Metrics) ObserveSweep(serviceName string, err error, started, completed int64, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.sweepRunsTotal.WithLabelValues(status).Inc()
	m.sweepRowsUpdated.WithLabelValues("confirmed_to_in_progress").Add(float64(started))
	m.sweepRowsUpdated.WithLabelValues("in_progress_to_completed").Add(float64(completed))
	m.sweepRunDuration.WithLabelValues(serviceName).Observe(duration.Seconds())
}
