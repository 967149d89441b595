package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"catalogqc/auditor/pkg/config"
	"catalogqc/auditor/pkg/qc/master"
)

// MasterMetrics tracks the size of the master index.
//
// Metrics:
//   - <ns>_<sub>_master_entries: entries per master
//   - <ns>_<sub>_master_warnings: warnings raised while building the index
type MasterMetrics struct {
	entries  *prometheus.GaugeVec
	warnings prometheus.Gauge
}

// NewMasterMetrics creates and registers master metrics with the provided registry.
func NewMasterMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *MasterMetrics {
	mm := &MasterMetrics{
		entries: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "master_entries",
				Help:      "Number of entries in each master dataset",
			},
			[]string{"master"},
		),

		warnings: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "master_warnings",
				Help:      "Number of warnings raised by the last master index build",
			},
		),
	}

	registry.MustRegister(mm.entries, mm.warnings)
	return mm
}

// Update sets the gauges from index counts.
func (mm *MasterMetrics) Update(counts master.Counts, warnings int) {
	mm.entries.WithLabelValues("brands").Set(float64(counts.Brands))
	mm.entries.WithLabelValues("colors").Set(float64(counts.Colors))
	mm.entries.WithLabelValues("sizes").Set(float64(counts.Sizes))
	mm.entries.WithLabelValues("categories").Set(float64(counts.Categories))
	mm.entries.WithLabelValues("templates").Set(float64(counts.Templates))
	mm.entries.WithLabelValues("rules").Set(float64(counts.Rules))
	mm.warnings.Set(float64(warnings))
}
