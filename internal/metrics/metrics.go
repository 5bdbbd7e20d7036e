package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/cadenza/pkg/domain"
)

// Metrics bundles the Prometheus collectors for the serving surfaces. They
// live on a dedicated registry so embedding applications keep control of
// the default one.
type Metrics struct {
	Registry *prometheus.Registry

	GenerationsTotal prometheus.Counter
	GenerationErrors prometheus.Counter
	Substitutions    *prometheus.CounterVec
	GenerateDuration prometheus.Histogram
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		GenerationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cadenza",
			Name:      "generations_total",
			Help:      "Progressions generated.",
		}),
		GenerationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cadenza",
			Name:      "generation_errors_total",
			Help:      "Generate calls that returned an error.",
		}),
		Substitutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cadenza",
			Name:      "substitutions_total",
			Help:      "Substitution decisions that had an effect, by kind.",
		}, []string{"kind"}),
		GenerateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cadenza",
			Name:      "generate_duration_seconds",
			Help:      "Duration of Generate calls.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.Registry.MustRegister(
		m.GenerationsTotal,
		m.GenerationErrors,
		m.Substitutions,
		m.GenerateDuration,
	)
	return m
}

// Handler exposes the registry for a /metrics route.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks that feed the substitution counters. They
// can be combined with application hooks via domain.LifecycleHooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSubstitution: func(_ context.Context, ev *domain.SubstitutionEvent) {
			kind := "quality"
			if ev.Tritone {
				kind = "tritone"
			}
			m.Substitutions.WithLabelValues(kind).Inc()
		},
	}
}
