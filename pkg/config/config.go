package config

import "time"

// Config is the root configuration structure for the auditor.
type Config struct {
	// Inputs locates the six CSV tables of an audit run.
	Inputs InputsConfig `yaml:"inputs"`

	// Audit controls how content rows are read and validated.
	Audit AuditConfig `yaml:"audit"`

	// Report controls where and how audit reports are written.
	Report ReportConfig `yaml:"report"`

	// Watch contains configuration for re-auditing when inputs change.
	Watch WatchConfig `yaml:"watch"`

	// Telemetry contains configuration for logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// InputsConfig names the input files. Relative file names are resolved
// against Dir.
type InputsConfig struct {
	// Dir is the directory holding the input files.
	// Default: "."
	Dir string `yaml:"dir"`

	// Brands is the brand master file. Default: "brands.csv"
	Brands string `yaml:"brands"`

	// Colors is the color master file. Default: "colors.csv"
	Colors string `yaml:"colors"`

	// Sizes is the size master file. Default: "sizes.csv"
	Sizes string `yaml:"sizes"`

	// Categories maps top-level categories to templates.
	// Default: "categories.csv"
	Categories string `yaml:"categories"`

	// TemplateRules lists per-template field rules.
	// Default: "template_rules.csv"
	TemplateRules string `yaml:"template_rules"`

	// Content is the batch being audited. Default: "content.csv"
	Content string `yaml:"content"`
}

// AuditConfig controls row validation.
type AuditConfig struct {
	// CategoryColumn holds the ">"-delimited category path.
	// Default: "1st Category"
	CategoryColumn string `yaml:"category_column"`

	// TemplateColumns hold the declared template; first non-blank wins.
	// Default: ["Template Name", "Template"]
	TemplateColumns []string `yaml:"template_columns"`

	// StrictDelimiters flags spaces around the pipe in multi-value cells.
	// Default: false
	StrictDelimiters bool `yaml:"strict_delimiters"`

	// Suggestions attaches "did you mean" hints to rejected values.
	// Default: true
	Suggestions bool `yaml:"suggestions"`
}

// ReportConfig controls report output.
type ReportConfig struct {
	// OutputDir is where report files are written.
	// Default: "reports"
	OutputDir string `yaml:"output_dir"`

	// FilePrefix starts every report file name.
	// Default: "QC_Report"
	FilePrefix string `yaml:"file_prefix"`

	// Format is the report format.
	// Options: "csv", "json"
	// Default: "csv"
	Format string `yaml:"format"`

	// MaxSummaryDiagnostics bounds the diagnostics quoted in the final
	// status column.
	// Default: 3
	MaxSummaryDiagnostics int `yaml:"max_summary_diagnostics"`

	// PassLabel is the final status of a passing row. Default: "Success"
	PassLabel string `yaml:"pass_label"`

	// FailLabel prefixes the final status of a failing row. Default: "Failed"
	FailLabel string `yaml:"fail_label"`

	// AllPassedRemark is the remark of a passing row.
	// Default: "All checks passed"
	AllPassedRemark string `yaml:"all_passed_remark"`
}

// WatchConfig contains configuration for watch mode.
type WatchConfig struct {
	// Enabled turns on watch mode for the run command.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Debounce is how long input changes must settle before a re-run.
	// Default: 500ms
	Debounce time.Duration `yaml:"debounce"`

	// Extensions are the file extensions that trigger a re-run.
	// Default: [".csv"]
	Extensions []string `yaml:"extensions"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains audit run tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains metrics collection configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "catalogqc"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "auditor"
	Subsystem string `yaml:"subsystem"`

	// ListenAddress serves the Prometheus endpoint in watch mode.
	// Empty disables the endpoint.
	// Default: ""
	ListenAddress string `yaml:"listen_address"`

	// Path is the HTTP path for the Prometheus metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// RunDurationBuckets defines histogram buckets for run duration (seconds).
	// Default: [0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30]
	RunDurationBuckets []float64 `yaml:"run_duration_buckets"`
}

// TracingConfig contains OpenTelemetry tracing configuration. Each audit run
// is one trace with load, evaluate and export spans.
type TracingConfig struct {
	// Enabled controls whether spans are exported.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "always"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of runs to sample (0.0 to 1.0).
	// Only used when Sampler is "ratio".
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio"`

	// Exporter determines the span exporter.
	// Options: "otlp"
	// Default: "otlp"
	Exporter string `yaml:"exporter"`

	// Endpoint is the OTLP gRPC collector endpoint.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// Insecure disables TLS for the collector connection.
	// Default: false
	Insecure bool `yaml:"insecure"`

	// Timeout bounds each export.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`

	// ServiceName is the service name in traces.
	// Default: "catalogqc-auditor"
	ServiceName string `yaml:"service_name"`
}
