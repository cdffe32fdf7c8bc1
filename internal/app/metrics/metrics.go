package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	operationsInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "agrilease",
			Subsystem: "gateway",
			Name:      "inflight_operations",
			Help:      "Current number of in-flight gateway operations per slice.",
		},
		[]string{"slice"},
	)

	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agrilease",
			Subsystem: "gateway",
			Name:      "operations_total",
			Help:      "Total number of settled gateway operations.",
		},
		[]string{"operation", "outcome"},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "agrilease",
			Subsystem: "gateway",
			Name:      "operation_duration_seconds",
			Help:      "Duration of gateway operations from dispatch to settlement.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"operation"},
	)

	staleSettlements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agrilease",
			Subsystem: "gateway",
			Name:      "stale_settlements_total",
			Help:      "Settlements discarded because a newer operation superseded them.",
		},
		[]string{"slice"},
	)
)

func init() {
	Registry.MustRegister(
		operationsInFlight,
		operationsTotal,
		operationDuration,
		staleSettlements,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// OperationStarted marks an operation dispatch against a slice.
func OperationStarted(slice string) {
	operationsInFlight.WithLabelValues(slice).Inc()
}

// RecordOperation records a settled operation.
func RecordOperation(slice, operation, outcome string, duration time.Duration) {
	if duration <= 0 {
		duration = time.Millisecond
	}
	operationsInFlight.WithLabelValues(slice).Dec()
	operationsTotal.WithLabelValues(operation, outcome).Inc()
	operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordStaleSettlement records a discarded settlement.
func RecordStaleSettlement(slice string) {
	staleSettlements.WithLabelValues(slice).Inc()
}
