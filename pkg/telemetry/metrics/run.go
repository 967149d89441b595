package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"catalogqc/auditor/pkg/config"
	"catalogqc/auditor/pkg/qc/engine"
)

// Run outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// RunMetrics tracks audit runs and row verdicts.
//
// Metrics:
//   - <ns>_<sub>_runs_total: runs by outcome
//   - <ns>_<sub>_run_duration_seconds: run duration histogram
//   - <ns>_<sub>_rows_total: audited rows by overall status
//   - <ns>_<sub>_check_failures_total: rows failing each check
//   - <ns>_<sub>_template_rows_total: audited rows by declared template and status
type RunMetrics struct {
	runsTotal     *prometheus.CounterVec
	runDuration   prometheus.Histogram
	rowsTotal     *prometheus.CounterVec
	checkFailures *prometheus.CounterVec
	templateRows  *prometheus.CounterVec
}

// NewRunMetrics creates and registers run metrics with the provided registry.
func NewRunMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *RunMetrics {
	rm := &RunMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "runs_total",
				Help:      "Total number of audit runs",
			},
			[]string{"outcome"},
		),

		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "run_duration_seconds",
				Help:      "Duration of audit runs in seconds",
				Buckets:   cfg.RunDurationBuckets,
			},
		),

		rowsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "rows_total",
				Help:      "Total number of audited content rows",
			},
			[]string{"status"},
		),

		checkFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "check_failures_total",
				Help:      "Total number of rows failing each check",
			},
			[]string{"check"},
		),

		templateRows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "template_rows_total",
				Help:      "Total number of audited content rows by declared template",
			},
			[]string{"template", "status"},
		),
	}

	registry.MustRegister(
		rm.runsTotal,
		rm.runDuration,
		rm.rowsTotal,
		rm.checkFailures,
		rm.templateRows,
	)

	return rm
}

// RecordRun records one run.
func (rm *RunMetrics) RecordRun(outcome string, duration time.Duration) {
	rm.runsTotal.WithLabelValues(outcome).Inc()
	rm.runDuration.Observe(duration.Seconds())
}

// RecordRow records one row verdict under the given template label.
func (rm *RunMetrics) RecordRow(v engine.RowVerdict, template string) {
	status := statusLabel(v.OverallStatus)
	rm.rowsTotal.WithLabelValues(status).Inc()
	rm.templateRows.WithLabelValues(template, status).Inc()

	if v.CategoryStatus == engine.Failed {
		rm.checkFailures.WithLabelValues(string(engine.CheckCategory)).Inc()
	}
	if v.TemplateStatus == engine.Failed {
		rm.checkFailures.WithLabelValues(string(engine.CheckTemplate)).Inc()
	}
	if v.HeaderStatus.Status == engine.Failed {
		rm.checkFailures.WithLabelValues(string(engine.CheckHeader)).Inc()
	}
	if v.ValueStatus == engine.Failed {
		rm.checkFailures.WithLabelValues(string(engine.CheckValue)).Inc()
	}
}

func statusLabel(s engine.Status) string {
	return strings.ToLower(string(s))
}
