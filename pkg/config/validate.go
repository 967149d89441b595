package config

import (
	"fmt"
	"net"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "report.format").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. All validation errors are collected and
// returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateInputs(&cfg.Inputs)...)
	errs = append(errs, validateAudit(&cfg.Audit)...)
	errs = append(errs, validateReport(&cfg.Report)...)
	errs = append(errs, validateWatch(&cfg.Watch)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateInputs validates input file configuration.
func validateInputs(cfg *InputsConfig) []FieldError {
	var errs []FieldError

	files := []struct {
		field string
		value string
	}{
		{"inputs.brands", cfg.Brands},
		{"inputs.colors", cfg.Colors},
		{"inputs.sizes", cfg.Sizes},
		{"inputs.categories", cfg.Categories},
		{"inputs.template_rules", cfg.TemplateRules},
		{"inputs.content", cfg.Content},
	}

	seen := make(map[string]string, len(files))
	for _, f := range files {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, FieldError{Field: f.field, Message: "file name is required"})
			continue
		}
		if other, dup := seen[f.value]; dup {
			errs = append(errs, FieldError{
				Field:   f.field,
				Message: fmt.Sprintf("file %q is already used by %s", f.value, other),
			})
			continue
		}
		seen[f.value] = f.field
	}

	return errs
}

// validateAudit validates audit configuration.
func validateAudit(cfg *AuditConfig) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(cfg.CategoryColumn) == "" {
		errs = append(errs, FieldError{
			Field:   "audit.category_column",
			Message: "category column is required",
		})
	}
	if len(cfg.TemplateColumns) == 0 {
		errs = append(errs, FieldError{
			Field:   "audit.template_columns",
			Message: "at least one template column is required",
		})
	}
	for i, col := range cfg.TemplateColumns {
		if strings.TrimSpace(col) == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("audit.template_columns[%d]", i),
				Message: "template column must not be blank",
			})
		}
	}

	return errs
}

// validateReport validates report configuration.
func validateReport(cfg *ReportConfig) []FieldError {
	var errs []FieldError

	validFormats := map[string]bool{"csv": true, "json": true}
	if !validFormats[cfg.Format] {
		errs = append(errs, FieldError{
			Field:   "report.format",
			Message: fmt.Sprintf("invalid report format %q: must be 'csv' or 'json'", cfg.Format),
		})
	}
	if strings.ContainsAny(cfg.FilePrefix, `/\`) {
		errs = append(errs, FieldError{
			Field:   "report.file_prefix",
			Message: "file prefix must not contain path separators",
		})
	}
	if cfg.MaxSummaryDiagnostics < 0 {
		errs = append(errs, FieldError{
			Field:   "report.max_summary_diagnostics",
			Message: "max summary diagnostics must not be negative",
		})
	}

	return errs
}

// validateWatch validates watch configuration.
func validateWatch(cfg *WatchConfig) []FieldError {
	var errs []FieldError

	if cfg.Debounce < 0 {
		errs = append(errs, FieldError{
			Field:   "watch.debounce",
			Message: "debounce must not be negative",
		})
	}
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("watch.extensions[%d]", i),
				Message: fmt.Sprintf("extension %q must start with '.'", ext),
			})
		}
	}

	return errs
}

// validateTelemetry validates telemetry configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Logging.Level),
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'json', 'text', or 'console'", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.path",
			Message: "metrics path must start with '/'",
		})
	}
	if cfg.Metrics.ListenAddress != "" {
		if _, _, err := net.SplitHostPort(cfg.Metrics.ListenAddress); err != nil {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.listen_address",
				Message: fmt.Sprintf("invalid listen address %q: %v", cfg.Metrics.ListenAddress, err),
			})
		}
	}
	for i := 1; i < len(cfg.Metrics.RunDurationBuckets); i++ {
		if cfg.Metrics.RunDurationBuckets[i] <= cfg.Metrics.RunDurationBuckets[i-1] {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.run_duration_buckets",
				Message: "buckets must be strictly increasing",
			})
			break
		}
	}

	if cfg.Tracing.Enabled {
		validSamplers := map[string]bool{"always": true, "never": true, "ratio": true}
		if !validSamplers[cfg.Tracing.Sampler] {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.sampler",
				Message: fmt.Sprintf("invalid sampler %q: must be 'always', 'never', or 'ratio'", cfg.Tracing.Sampler),
			})
		}
		if cfg.Tracing.Exporter != "otlp" {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.exporter",
				Message: fmt.Sprintf("unsupported exporter %q: must be 'otlp'", cfg.Tracing.Exporter),
			})
		}
		if cfg.Tracing.Endpoint == "" {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.endpoint",
				Message: "tracing endpoint is required when tracing is enabled",
			})
		}
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1.0 {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.sample_ratio",
			Message: "sample ratio must be between 0.0 and 1.0",
		})
	}

	return errs
}
