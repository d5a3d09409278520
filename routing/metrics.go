package routing

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sproute"

// metrics groups the Engine's collectors. A nil *metrics records nothing.
type metrics struct {
	computations *prometheus.CounterVec
	duration     prometheus.Histogram
	reachable    prometheus.Gauge
	generation   prometheus.Gauge
	queries      *prometheus.CounterVec
}

// newMetrics registers the collectors on reg. Engines built on the same
// Registerer share one set of collectors.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}

	return &metrics{
		computations: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "computations_total",
			Help:      "Shortest-path tree computations by result.",
		}, []string{"result"})),
		duration: register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_duration_seconds",
			Help:      "Time spent building a shortest-path tree.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
		})),
		reachable: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reachable_switches",
			Help:      "Switches reachable from the source in the published tree.",
		})),
		generation: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_generation",
			Help:      "Number of trees published so far.",
		})),
		queries: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Distance and path queries by result.",
		}, []string{"result"})),
	}
}

// register adds c to reg, returning the collector already registered under
// the same descriptor when there is one. A collector reg rejects for any
// other reason is returned unregistered and keeps counting locally.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}

	return c
}

func (m *metrics) computed(took time.Duration, err error) {
	if m == nil {
		return
	}
	m.duration.Observe(took.Seconds())
	if err != nil {
		m.computations.WithLabelValues("error").Inc()
		return
	}
	m.computations.WithLabelValues("success").Inc()
}

func (m *metrics) published(generation uint64, reachable int) {
	if m == nil {
		return
	}
	m.generation.Set(float64(generation))
	m.reachable.Set(float64(reachable))
}

func (m *metrics) queried(result string) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(result).Inc()
}
