package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lvlath_anneal"

// Metrics groups the Prometheus collectors exported on /metrics.
type Metrics struct {
	runs           *prometheus.CounterVec
	runDuration    prometheus.Histogram
	locations      prometheus.Histogram
	improvement    prometheus.Histogram
	httpDuration   *prometheus.HistogramVec
	responseStatus *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "The total number of annealing runs by outcome",
		}, []string{"outcome"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "The duration of a single annealing run",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		locations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_locations",
			Help:      "The number of locations per annealing run",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 10),
		}),
		improvement: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_improvement_ratio",
			Help:      "Best cost divided by initial cost",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "The duration of request",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "path"}),
		responseStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "response_status_code",
			Help:      "The status code of http response",
		}, []string{"status", "method", "path"}),
	}
	reg.MustRegister(m.runs, m.runDuration, m.locations, m.improvement, m.httpDuration, m.responseStatus)
	return m
}

func (m *Metrics) observeRun(n int, initialCost, bestCost float64, d time.Duration) {
	m.runs.WithLabelValues("ok").Inc()
	m.runDuration.Observe(d.Seconds())
	m.locations.Observe(float64(n))
	if initialCost > 0 {
		m.improvement.Observe(bestCost / initialCost)
	}
}

func (m *Metrics) observeFailure(outcome string) {
	m.runs.WithLabelValues(outcome).Inc()
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request duration and response status per route pattern.
// Requests that match no route share the "unmatched" label, so arbitrary URLs
// cannot grow the label set.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{w, http.StatusOK}

		next.ServeHTTP(rw, r)

		path := routePattern(r)
		m.httpDuration.With(prometheus.Labels{"method": r.Method, "path": path}).Observe(time.Since(start).Seconds())
		m.responseStatus.With(prometheus.Labels{
			"status": strconv.Itoa(rw.statusCode),
			"method": r.Method,
			"path":   path,
		}).Inc()
	})
}

// routePattern is only complete once the router has dispatched the request.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
