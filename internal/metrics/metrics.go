// Package metrics exposes Prometheus collectors for the HTTP surface and
// the goal list.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/templui/goalplanner/internal/model"
	"github.com/templui/goalplanner/internal/stats"
)

// GoalLister is satisfied by service.GoalService.
type GoalLister interface {
	Goals() []model.Goal
}

// Metrics owns a private registry so tests and multiple apps in one
// process do not collide on the global one.
type Metrics struct {
	registry *prometheus.Registry
	factory  promauto.Factory

	// HTTP request latency (seconds)
	HTTPRequestDuration *prometheus.HistogramVec

	// Persisted goal mutations
	GoalMutations *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		factory:  factory,
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
			[]string{"method", "route", "status"},
		),
		GoalMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goal_mutations_total",
				Help: "Total number of persisted goal mutations",
			},
			[]string{"operation"}, // operation: add, toggle
		),
	}
}

// GoalMutated is meant for service.WithMutationHook.
func (m *Metrics) GoalMutated(op string) {
	m.GoalMutations.WithLabelValues(op).Inc()
}

// WatchGoals registers gauges computed from goals at scrape time. Call it
// once per Metrics.
func (m *Metrics) WatchGoals(goals GoalLister) {
	m.factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "goals",
			Help: "Number of goals in the list",
		},
		func() float64 { return float64(len(goals.Goals())) },
	)
	m.factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "goals_completed",
			Help: "Number of completed goals",
		},
		func() float64 { return float64(stats.CompletedCount(goals.Goals())) },
	)
	m.factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "goals_completion_rate_percent",
			Help: "Rounded share of completed goals",
		},
		func() float64 { return float64(stats.CompletionRate(goals.Goals())) },
	)
}

// ObserveHTTPRequest records one request duration.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
