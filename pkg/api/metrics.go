package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the API.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	fieldReadsTotal  *prometheus.CounterVec
	fieldWritesTotal *prometheus.CounterVec

	storeRepairs           prometheus.Gauge
	storePersists          prometheus.Gauge
	storeIntegrityFailures prometheus.Gauge
}

// NewMetrics creates and registers all metrics on the given registerer, so
// tests can use a private registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "persist_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "persist_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		fieldReadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "persist_field_reads_total",
				Help: "Total number of settings field reads",
			},
			[]string{"field"},
		),

		fieldWritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "persist_field_writes_total",
				Help: "Total number of settings field writes",
			},
			[]string{"field"},
		),

		storeRepairs: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "persist_store_repairs_total",
				Help: "Out-of-range values self-healed by read repair",
			},
		),

		storePersists: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "persist_store_persists_total",
				Help: "Completed persist operations",
			},
		),

		storeIntegrityFailures: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "persist_store_integrity_failures_total",
				Help: "Images rejected by the checksum gate",
			},
		),
	}
}

// RecordFieldRead records one field read.
func (m *Metrics) RecordFieldRead(field string) {
	m.fieldReadsTotal.WithLabelValues(field).Inc()
}

// RecordFieldWrite records one field write.
func (m *Metrics) RecordFieldWrite(field string) {
	m.fieldWritesTotal.WithLabelValues(field).Inc()
}

// UpdateStoreStats mirrors the store's counters into gauges.
func (m *Metrics) UpdateStoreStats(repairs, persists, integrityFailures uint64) {
	m.storeRepairs.Set(float64(repairs))
	m.storePersists.Set(float64(persists))
	m.storeIntegrityFailures.Set(float64(integrityFailures))
}

// InstrumentHandler instruments an HTTP handler with request metrics.
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		handler(rw, r)

		duration := time.Since(start)
		m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
