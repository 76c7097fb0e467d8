// Package metrics holds the Prometheus registry and collectors for the service.
// Everything registers against a dedicated registry so tests never collide with
// the global default.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the service-wide Prometheus registry exposed at /metrics.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path and response status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration observes request latency by method, path and response status.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// AllocationRuns counts allocation runs by outcome (completed, failed).
	AllocationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allocation_runs_total",
			Help: "Allocation runs by outcome.",
		},
		[]string{"outcome"},
	)

	// OrdersFulfilled counts orders assigned to a warehouse across all runs.
	OrdersFulfilled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "allocation_orders_fulfilled_total",
			Help: "Orders assigned to a warehouse across all allocation runs.",
		},
	)

	// OrdersUnfulfilled counts orders left without stock across all runs.
	OrdersUnfulfilled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "allocation_orders_unfulfilled_total",
			Help: "Orders left unfulfilled across all allocation runs.",
		},
	)

	// SolvingTime observes the wall time spent inside the allocation loop.
	SolvingTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "allocation_solving_time_seconds",
			Help:    "Wall time spent computing an allocation plan.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var regOnce sync.Once

// RegisterDefault registers all service collectors plus the standard Go and
// process collectors. Safe to call from multiple composition roots.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(AllocationRuns)
		Registry.MustRegister(OrdersFulfilled)
		Registry.MustRegister(OrdersUnfulfilled)
		Registry.MustRegister(SolvingTime)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
