// Package metrics defines the Prometheus collectors for dataset analysis and
// exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Stage labels for StageDuration.
const (
	StageParse    = "parse"
	StageForest   = "forest"
	StageGrouping = "grouping"
	StageTotal    = "total"
)

// Status labels for DatasetsTotal.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Metrics holds all collectors. Each instance owns its registry so several
// instances (tests, server + batch) never collide.
type Metrics struct {
	Registry *prometheus.Registry

	DatasetsTotal    *prometheus.CounterVec
	StageDuration    *prometheus.HistogramVec
	ForestEdges      prometheus.Histogram
	GroupsDiscovered prometheus.Histogram
	DatasetsInFlight prometheus.Gauge
}

// New creates and registers all collectors on a fresh registry, together with
// the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		DatasetsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "simforest_datasets_total",
				Help: "Datasets analyzed, by forest method and outcome.",
			},
			[]string{"method", "status"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "simforest_stage_duration_seconds",
				Help:    "Time spent per analysis stage.",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"stage"},
		),
		ForestEdges: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "simforest_forest_edges",
				Help:    "Spanning-forest size per dataset.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		GroupsDiscovered: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "simforest_groups",
				Help:    "Similarity clusters per dataset.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		DatasetsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "simforest_datasets_in_flight",
				Help: "Datasets currently being analyzed.",
			},
		),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.DatasetsTotal,
		m.StageDuration,
		m.ForestEdges,
		m.GroupsDiscovered,
		m.DatasetsInFlight,
	)

	return m
}

// ObserveStage records d for stage. A nil receiver is a no-op.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// DatasetDone counts one finished dataset. A nil receiver is a no-op.
func (m *Metrics) DatasetDone(method, status string) {
	if m == nil {
		return
	}
	m.DatasetsTotal.WithLabelValues(method, status).Inc()
}

// ObserveResult records the sizes of one successful analysis. A nil receiver is a no-op.
func (m *Metrics) ObserveResult(forestEdges, groups int) {
	if m == nil {
		return
	}
	m.ForestEdges.Observe(float64(forestEdges))
	m.GroupsDiscovered.Observe(float64(groups))
}

// Track increments the in-flight gauge and returns the matching decrement.
func (m *Metrics) Track() (done func()) {
	if m == nil {
		return func() {}
	}
	m.DatasetsInFlight.Inc()

	return m.DatasetsInFlight.Dec
}

// Handler returns the scrape handler for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
