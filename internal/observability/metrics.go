package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for ingestion and the HTTP API.
type Metrics struct {
	// Ingestion metrics.
	UploadsTotal   *prometheus.CounterVec // labels: outcome={success,stream_error,store_error,cancelled}
	RowsStored     prometheus.Counter
	RowsRejected   prometheus.Counter
	IngestDuration prometheus.Histogram

	// HTTP metrics.
	HTTPRequests        *prometheus.CounterVec   // labels: method, route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, route
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.UploadsTotal,
		m.RowsStored,
		m.RowsRejected,
		m.IngestDuration,
		m.HTTPRequests,
		m.HTTPRequestDuration,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as many
// as they need without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		UploadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_records",
			Name:      "uploads_total",
			Help:      "CSV uploads processed, by outcome.",
		}, []string{"outcome"}),
		RowsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_records",
			Name:      "rows_stored_total",
			Help:      "Observation rows stored from CSV uploads.",
		}),
		RowsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_records",
			Name:      "rows_rejected_total",
			Help:      "CSV lines skipped because they failed validation.",
		}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_records",
			Name:      "ingest_duration_seconds",
			Help:      "Duration of a complete CSV ingestion run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_records",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weather_records",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}
