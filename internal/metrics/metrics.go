// Package metrics exposes Prometheus instrumentation for the builder
// service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service collectors on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	savesTotal      *prometheus.CounterVec
	publishesTotal  prometheus.Counter
	autosavePending prometheus.Gauge
	requestDuration *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		savesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "funnelflow",
			Name:      "saves_total",
			Help:      "Funnel writes by outcome.",
		}, []string{"outcome"}),
		publishesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "funnelflow",
			Name:      "publishes_total",
			Help:      "Funnels published.",
		}),
		autosavePending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "funnelflow",
			Name:      "autosave_pending",
			Help:      "Debounced writes currently awaiting their timer.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "funnelflow",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(m.savesTotal, m.publishesTotal, m.autosavePending, m.requestDuration)
	return m
}

// Handler serves the /metrics scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordPublish counts a successful publish.
func (m *Metrics) RecordPublish() { m.publishesTotal.Inc() }

// AutosavePending implements the session save observer.
func (m *Metrics) AutosavePending(n int) { m.autosavePending.Set(float64(n)) }

// AutosaveDone implements the session save observer.
func (m *Metrics) AutosaveDone(id string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.savesTotal.WithLabelValues(outcome).Inc()
}

// Middleware instruments handlers with the request duration histogram.
// The chi route pattern is used as the label, not the raw path, to keep
// cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		m.requestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
