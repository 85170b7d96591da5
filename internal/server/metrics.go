package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments of one server. Each instance owns
// its registry, so several servers (or tests) can coexist in a process.
type Metrics struct {
	registry       *prometheus.Registry
	requestsTotal  *prometheus.CounterVec
	activeRequests prometheus.Gauge
	evaluations    *prometheus.CounterVec
	handler        http.Handler
}

// NewMetrics creates and registers the server metrics, plus the Go runtime
// and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keycalc_requests_total",
			Help: "Total number of HTTP requests by path and method.",
		}, []string{"path", "method"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "keycalc_active_requests",
			Help: "Number of HTTP requests being served.",
		}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keycalc_evaluations_total",
			Help: "Total number of evaluations by outcome (value or error).",
		}, []string{"outcome"}),
	}
	reg.MustRegister(
		m.requestsTotal,
		m.activeRequests,
		m.evaluations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveRequest counts one request.
func (m *Metrics) ObserveRequest(path, method string) {
	m.requestsTotal.WithLabelValues(path, method).Inc()
}

// ObserveEvaluation counts one evaluation outcome.
func (m *Metrics) ObserveEvaluation(outcome string) {
	m.evaluations.WithLabelValues(outcome).Inc()
}

// WritePrometheus writes the metrics in the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
