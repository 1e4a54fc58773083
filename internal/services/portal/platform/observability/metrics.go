package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Backend call outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeUnauthorized = "unauthorized"
	OutcomeRejected     = "rejected"
	OutcomeUnavailable  = "unavailable"
)

// Metrics holds the portal Prometheus collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	backendRequests *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	exported        prometheus.Counter
}

// NewMetrics registers the portal collectors, plus Go and process
// collectors, on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "HTTP requests served, by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_backend_requests_total",
			Help: "Calls to the submissions backend, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		backendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_backend_request_duration_seconds",
			Help:    "Submissions backend call latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		exported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portal_submissions_exported_total",
			Help: "Submissions written to CSV exports.",
		}),
	}
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.backendRequests,
		m.backendDuration,
		m.exported,
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Instrument records request counts and latency. route maps a request path
// to a bounded label.
func (m *Metrics) Instrument(route func(string) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			recorder := newStatusRecorder(w)
			next.ServeHTTP(recorder, r)
			label := r.URL.Path
			if route != nil {
				label = route(label)
			}
			m.httpRequests.WithLabelValues(label, r.Method, recorder.statusLabel()).Inc()
			m.httpDuration.WithLabelValues(label, r.Method).Observe(time.Since(started).Seconds())
		})
	}
}

// ObserveBackend records one backend call.
func (m *Metrics) ObserveBackend(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.backendRequests.WithLabelValues(operation, outcome).Inc()
	m.backendDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// AddExported records n submissions written to an export.
func (m *Metrics) AddExported(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.exported.Add(float64(n))
}
