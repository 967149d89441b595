package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"catalogqc/auditor/pkg/config"
	"catalogqc/auditor/pkg/qc/engine"
)

// Template label values for rows without a template and for templates
// beyond the cardinality limit.
const (
	noTemplate    = "none"
	otherTemplate = "other"
)

// maxTemplateLabels bounds the distinct template label values.
const maxTemplateLabels = 500

// Collector records audit metrics on a Prometheus registry.
// A nil Collector, or one whose configuration is disabled, records nothing.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	runMetrics    *RunMetrics
	masterMetrics *MasterMetrics

	templateLimiter *CardinalityLimiter
}

// NewCollector creates a collector with the given configuration. A nil
// registry gets a fresh one.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}
	if len(cfg.RunDurationBuckets) == 0 {
		cfg.RunDurationBuckets = append([]float64(nil), config.DefaultRunDurationBuckets...)
	}

	return &Collector{
		config:          cfg,
		registry:        registry,
		runMetrics:      NewRunMetrics(cfg, registry),
		masterMetrics:   NewMasterMetrics(cfg, registry),
		templateLimiter: NewCardinalityLimiter(maxTemplateLabels),
	}
}

// RecordRun records a completed audit run: its outcome, duration, row
// verdicts and the size of the masters it used.
func (c *Collector) RecordRun(report *engine.Report, duration time.Duration) {
	if c == nil || !c.config.Enabled {
		return
	}

	c.runMetrics.RecordRun(OutcomeOK, duration)
	for _, v := range report.Verdicts {
		template := v.Template
		if template == "" {
			template = noTemplate
		}
		if !c.templateLimiter.Allow(template) {
			template = otherTemplate
		}
		c.runMetrics.RecordRow(v, template)
	}
	c.masterMetrics.Update(report.Masters, len(report.Warnings))
}

// RecordRunError records a run that failed before producing a report.
func (c *Collector) RecordRunError(duration time.Duration) {
	if c == nil || !c.config.Enabled {
		return
	}
	c.runMetrics.RecordRun(OutcomeError, duration)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CardinalityLimiter prevents metric cardinality explosion by limiting
// the number of unique label values.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a new cardinality limiter with the specified
// maximum cardinality.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow reports whether a label value may be used: it is already tracked or
// the limit has not been reached.
func (cl *CardinalityLimiter) Allow(label string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[label]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	if _, exists := cl.current[label]; exists {
		return true
	}
	if len(cl.current) >= cl.maxCardinality {
		return false
	}
	cl.current[label] = struct{}{}
	return true
}

// Count returns the current cardinality.
func (cl *CardinalityLimiter) Count() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.current)
}
