package observability

import (
	"io"

	"github.com/aretw0/orbitsieve/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "orbitsieve"

// Metrics holds the collectors fed by the sieve hooks.
type Metrics struct {
	registry *prometheus.Registry

	Orbits          *prometheus.CounterVec
	Classifications *prometheus.CounterVec
	Overwrites      prometheus.Counter
	GroupOrder      prometheus.Gauge
}

// NewMetrics creates and registers the collectors on reg.
// A nil registry gets a fresh one.
func NewMetrics(reg *prometheus.Registry) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		registry: reg,
		Orbits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orbits_total",
				Help:      "Number of orbits opened, by outcome of the causality test.",
			},
			[]string{"outcome"},
		),
		Classifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "classifications_total",
				Help:      "Number of table entries written, by classification.",
			},
			[]string{"class"},
		),
		Overwrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overwrites_total",
			Help:      "Composite derivations replaced by a primitive one.",
		}),
		GroupOrder: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "group_order",
			Help:      "Order of the closed symmetry group.",
		}),
	}
	for _, c := range []prometheus.Collector{m.Orbits, m.Classifications, m.Overwrites, m.GroupOrder} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns sieve hooks that record into m. Existing hooks in next are
// still called after recording.
func (m *Metrics) Hooks(next domain.SieveHooks) domain.SieveHooks {
	return domain.SieveHooks{
		OnOrbitStart: func(e *domain.OrbitEvent) {
			outcome := "independent"
			if e.Zero {
				outcome = "zero"
			}
			m.Orbits.WithLabelValues(outcome).Inc()
			if next.OnOrbitStart != nil {
				next.OnOrbitStart(e)
			}
		},
		OnClassify: func(e *domain.ClassifyEvent) {
			m.Classifications.WithLabelValues(string(e.Entry.Classification())).Inc()
			if e.Overwrite {
				m.Overwrites.Inc()
			}
			if next.OnClassify != nil {
				next.OnClassify(e)
			}
		},
	}
}

// Dump writes every gathered metric family to w in the text exposition format.
func (m *Metrics) Dump(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
