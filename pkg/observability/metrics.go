package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records tree activity as Prometheus series.
type Metrics struct {
	ticks      *prometheus.CounterVec
	leafErrors *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the arbor collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_ticks_total",
				Help: "Total number of tree ticks by resulting status",
			},
			[]string{"tree", "status"},
		),
		leafErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_leaf_errors_total",
				Help: "Total number of errors swallowed by leaf nodes",
			},
			[]string{"tree", "type"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "arbor_tick_duration_seconds",
				Help:    "Duration of a full tree tick",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"tree"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.ticks, m.leafErrors, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register arbor metrics: %w", err)
		}
	}
	return m, nil
}

// Hooks returns the callbacks that feed the collectors.
func (m *Metrics) Hooks() Hooks {
	return Hooks{
		OnTickEnd: func(e TickEvent) {
			m.ticks.WithLabelValues(e.Tree, e.Status.String()).Inc()
			m.duration.WithLabelValues(e.Tree).Observe(e.Duration.Seconds())
		},
		OnLeafError: func(e LeafErrorEvent) {
			m.leafErrors.WithLabelValues(e.Tree, e.Type).Inc()
		},
	}
}

// Ticks exposes the tick counter, mainly for tests.
func (m *Metrics) Ticks() *prometheus.CounterVec { return m.ticks }

// LeafErrors exposes the leaf error counter, mainly for tests.
func (m *Metrics) LeafErrors() *prometheus.CounterVec { return m.leafErrors }
