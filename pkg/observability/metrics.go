// Package observability exposes Prometheus collectors for the export
// pipeline and session activity. Metrics attach through lifecycle hooks,
// so the core packages stay free of any metrics dependency.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fableworks/storybook/pkg/domain"
)

// Metrics holds the Prometheus collectors for a single configurator
// instance. Create it with NewMetrics and register it on a registry,
// then pass Hooks() wherever lifecycle hooks are accepted.
type Metrics struct {
	pagesRasterized prometheus.Counter
	pageDuration    prometheus.Histogram
	exportsTotal    *prometheus.CounterVec
	exportDuration  prometheus.Histogram
	sessionSaves    prometheus.Counter
}

// NewMetrics creates the collector set. Nothing is registered yet; call
// Register with the registry of your choice.
func NewMetrics() *Metrics {
	return &Metrics{
		pagesRasterized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storybook_pages_rasterized_total",
			Help: "Total number of pages rasterized during exports",
		}),
		pageDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "storybook_page_raster_duration_seconds",
			Help:    "Time spent rasterizing a single page",
			Buckets: prometheus.DefBuckets,
		}),
		exportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storybook_exports_total",
				Help: "Total number of export runs by outcome",
			},
			[]string{"outcome"},
		),
		exportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "storybook_export_duration_seconds",
			Help:    "End to end duration of export runs",
			Buckets: prometheus.DefBuckets,
		}),
		sessionSaves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storybook_session_saves_total",
			Help: "Total number of session states written to the store",
		}),
	}
}

// Register adds all collectors to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.pagesRasterized,
		m.pageDuration,
		m.exportsTotal,
		m.exportDuration,
		m.sessionSaves,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	if err := m.Register(reg); err != nil {
		panic(err)
	}
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPageRasterized: func(_ context.Context, e *domain.PageEvent) {
			m.pagesRasterized.Inc()
			m.pageDuration.Observe(e.Duration.Seconds())
		},
		OnExportDone: func(_ context.Context, e *domain.ExportEvent) {
			outcome := "succeeded"
			if e.Err != nil {
				outcome = "failed"
			}
			m.exportsTotal.WithLabelValues(outcome).Inc()
			m.exportDuration.Observe(e.Duration.Seconds())
		},
		OnSessionSaved: func(_ context.Context, sessionID string) {
			m.sessionSaves.Inc()
		},
	}
}
