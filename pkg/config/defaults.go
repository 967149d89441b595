package config

import "time"

// Default values for configuration fields.
const (
	// Inputs defaults
	DefaultInputsDir         = "."
	DefaultBrandsFile        = "brands.csv"
	DefaultColorsFile        = "colors.csv"
	DefaultSizesFile         = "sizes.csv"
	DefaultCategoriesFile    = "categories.csv"
	DefaultTemplateRulesFile = "template_rules.csv"
	DefaultContentFile       = "content.csv"

	// Audit defaults
	DefaultCategoryColumn   = "1st Category"
	DefaultStrictDelimiters = false
	DefaultSuggestions      = true

	// Report defaults
	DefaultReportOutputDir       = "reports"
	DefaultReportFilePrefix      = "QC_Report"
	DefaultReportFormat          = "csv"
	DefaultMaxSummaryDiagnostics = 3
	DefaultPassLabel             = "Success"
	DefaultFailLabel             = "Failed"
	DefaultAllPassedRemark       = "All checks passed"

	// Watch defaults
	DefaultWatchDebounce = 500 * time.Millisecond

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "text"
	DefaultMetricsEnabled   = true
	DefaultMetricsNamespace = "catalogqc"
	DefaultMetricsSubsystem = "auditor"
	DefaultPrometheusPath   = "/metrics"

	DefaultTracingSampler     = "always"
	DefaultTracingSampleRatio = 1.0
	DefaultTracingExporter    = "otlp"
	DefaultTracingEndpoint    = "localhost:4317"
	DefaultTracingTimeout     = 10 * time.Second
	DefaultTracingServiceName = "catalogqc-auditor"
)

// DefaultTemplateColumns are the content columns a row declares its template in.
var DefaultTemplateColumns = []string{"Template Name", "Template"}

// DefaultWatchExtensions are the file extensions watched for changes.
var DefaultWatchExtensions = []string{".csv"}

// DefaultRunDurationBuckets are the run duration histogram buckets in seconds.
var DefaultRunDurationBuckets = []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30}

// Default returns a configuration with every default applied, including the
// boolean defaults that ApplyDefaults cannot infer from zero values.
func Default() *Config {
	cfg := &Config{}
	cfg.Audit.StrictDelimiters = DefaultStrictDelimiters
	cfg.Audit.Suggestions = DefaultSuggestions
	cfg.Telemetry.Metrics.Enabled = DefaultMetricsEnabled
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Inputs defaults
	if cfg.Inputs.Dir == "" {
		cfg.Inputs.Dir = DefaultInputsDir
	}
	if cfg.Inputs.Brands == "" {
		cfg.Inputs.Brands = DefaultBrandsFile
	}
	if cfg.Inputs.Colors == "" {
		cfg.Inputs.Colors = DefaultColorsFile
	}
	if cfg.Inputs.Sizes == "" {
		cfg.Inputs.Sizes = DefaultSizesFile
	}
	if cfg.Inputs.Categories == "" {
		cfg.Inputs.Categories = DefaultCategoriesFile
	}
	if cfg.Inputs.TemplateRules == "" {
		cfg.Inputs.TemplateRules = DefaultTemplateRulesFile
	}
	if cfg.Inputs.Content == "" {
		cfg.Inputs.Content = DefaultContentFile
	}

	// Audit defaults
	if cfg.Audit.CategoryColumn == "" {
		cfg.Audit.CategoryColumn = DefaultCategoryColumn
	}
	if len(cfg.Audit.TemplateColumns) == 0 {
		cfg.Audit.TemplateColumns = append([]string(nil), DefaultTemplateColumns...)
	}

	// Report defaults
	if cfg.Report.OutputDir == "" {
		cfg.Report.OutputDir = DefaultReportOutputDir
	}
	if cfg.Report.FilePrefix == "" {
		cfg.Report.FilePrefix = DefaultReportFilePrefix
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = DefaultReportFormat
	}
	if cfg.Report.MaxSummaryDiagnostics == 0 {
		cfg.Report.MaxSummaryDiagnostics = DefaultMaxSummaryDiagnostics
	}
	if cfg.Report.PassLabel == "" {
		cfg.Report.PassLabel = DefaultPassLabel
	}
	if cfg.Report.FailLabel == "" {
		cfg.Report.FailLabel = DefaultFailLabel
	}
	if cfg.Report.AllPassedRemark == "" {
		cfg.Report.AllPassedRemark = DefaultAllPassedRemark
	}

	// Watch defaults
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultWatchDebounce
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultWatchExtensions...)
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultPrometheusPath
	}
	if len(cfg.Telemetry.Metrics.RunDurationBuckets) == 0 {
		cfg.Telemetry.Metrics.RunDurationBuckets = append([]float64(nil), DefaultRunDurationBuckets...)
	}
	if cfg.Telemetry.Tracing.Sampler == "" {
		cfg.Telemetry.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Telemetry.Tracing.SampleRatio == 0 {
		cfg.Telemetry.Tracing.SampleRatio = DefaultTracingSampleRatio
	}
	if cfg.Telemetry.Tracing.Exporter == "" {
		cfg.Telemetry.Tracing.Exporter = DefaultTracingExporter
	}
	if cfg.Telemetry.Tracing.Endpoint == "" {
		cfg.Telemetry.Tracing.Endpoint = DefaultTracingEndpoint
	}
	if cfg.Telemetry.Tracing.Timeout == 0 {
		cfg.Telemetry.Tracing.Timeout = DefaultTracingTimeout
	}
	if cfg.Telemetry.Tracing.ServiceName == "" {
		cfg.Telemetry.Tracing.ServiceName = DefaultTracingServiceName
	}
}
