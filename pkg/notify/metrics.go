package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus collectors for a Center.
// A nil *metrics is valid and records nothing, so instrumentation stays
// optional without branching at every call site.
type metrics struct {
	added     *prometheus.CounterVec
	expired   prometheus.Counter
	dismissed prometheus.Counter
	cleared   prometheus.Counter
	active    prometheus.Gauge
}

// newMetrics registers the Center's collectors with the given registerer.
func newMetrics(registry prometheus.Registerer, namespace string) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		added: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "records_added_total",
			Help:      "Total number of notification records added, by kind",
		}, []string{"kind"}),

		expired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "records_expired_total",
			Help:      "Total number of records removed by timer expiry",
		}),

		dismissed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "records_dismissed_total",
			Help:      "Total number of records removed by explicit Remove",
		}),

		cleared: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "records_cleared_total",
			Help:      "Total number of records removed by Clear",
		}),

		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "records_active",
			Help:      "Number of records currently in the queue",
		}),
	}
}

func (m *metrics) recordAdded(kind Kind, active int) {
	if m == nil {
		return
	}
	m.added.WithLabelValues(kind.String()).Inc()
	m.active.Set(float64(active))
}

func (m *metrics) recordRemoved(cause removalCause, active int) {
	if m == nil {
		return
	}
	switch cause {
	case removalExpired:
		m.expired.Inc()
	case removalDismissed:
		m.dismissed.Inc()
	}
	m.active.Set(float64(active))
}

func (m *metrics) recordCleared(count int) {
	if m == nil {
		return
	}
	m.cleared.Add(float64(count))
	m.active.Set(0)
}
