package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "voice2text"

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	registry *prometheus.Registry

	transcriptions  *prometheus.CounterVec
	transcribeTime  *prometheus.HistogramVec
	chunksPerUpload prometheus.Histogram
	uploadBytes     prometheus.Histogram
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
}

// New creates a Metrics instance with its own registry, including the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transcriptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcriptions_total",
			Help:      "Transcription requests by dispatch path and outcome.",
		}, []string{"path", "outcome", "kind"}),
		transcribeTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transcription_duration_seconds",
			Help:      "Wall time spent transcribing one upload.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 2400},
		}, []string{"path"}),
		chunksPerUpload: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunks_per_upload",
			Help:      "Number of chunks a large upload was split into.",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		}),
		uploadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_bytes",
			Help:      "Size of successfully transcribed uploads.",
			Buckets:   prometheus.ExponentialBuckets(64*1024, 4, 10),
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.transcriptions,
		m.transcribeTime,
		m.chunksPerUpload,
		m.uploadBytes,
		m.httpRequests,
		m.httpLatency,
	)
	return m
}

// RecordSuccess records a completed transcription.
func (m *Metrics) RecordSuccess(path string, elapsed time.Duration, chunks int, size int64) {
	m.transcriptions.WithLabelValues(path, OutcomeSuccess, "").Inc()
	m.transcribeTime.WithLabelValues(path).Observe(elapsed.Seconds())
	m.uploadBytes.Observe(float64(size))
	if path == "chunked" {
		m.chunksPerUpload.Observe(float64(chunks))
	}
}

// RecordFailure records a failed transcription with its error kind.
func (m *Metrics) RecordFailure(kind string) {
	m.transcriptions.WithLabelValues("", OutcomeFailure, kind).Inc()
}

// ObserveHTTP records one served HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
