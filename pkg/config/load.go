package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix starts every environment variable override.
const EnvPrefix = "AUDITOR_"

// LoadConfig loads configuration from a YAML file at the specified path.
// Fields absent from the file keep their defaults. The result is validated.
// Environment variables are not consulted; use LoadConfigWithEnvOverrides
// for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention AUDITOR_SECTION_FIELD (e.g., AUDITOR_REPORT_FORMAT) and always
// take precedence over the file.
//
// An empty path skips the file and starts from defaults.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Malformed numeric, boolean and duration values are ignored.
func applyEnvOverrides(cfg *Config) {
	// Inputs overrides
	setString(&cfg.Inputs.Dir, "INPUTS_DIR")
	setString(&cfg.Inputs.Brands, "INPUTS_BRANDS")
	setString(&cfg.Inputs.Colors, "INPUTS_COLORS")
	setString(&cfg.Inputs.Sizes, "INPUTS_SIZES")
	setString(&cfg.Inputs.Categories, "INPUTS_CATEGORIES")
	setString(&cfg.Inputs.TemplateRules, "INPUTS_TEMPLATE_RULES")
	setString(&cfg.Inputs.Content, "INPUTS_CONTENT")

	// Audit overrides
	setString(&cfg.Audit.CategoryColumn, "AUDIT_CATEGORY_COLUMN")
	setList(&cfg.Audit.TemplateColumns, "AUDIT_TEMPLATE_COLUMNS")
	setBool(&cfg.Audit.StrictDelimiters, "AUDIT_STRICT_DELIMITERS")
	setBool(&cfg.Audit.Suggestions, "AUDIT_SUGGESTIONS")

	// Report overrides
	setString(&cfg.Report.OutputDir, "REPORT_OUTPUT_DIR")
	setString(&cfg.Report.FilePrefix, "REPORT_FILE_PREFIX")
	setString(&cfg.Report.Format, "REPORT_FORMAT")
	setInt(&cfg.Report.MaxSummaryDiagnostics, "REPORT_MAX_SUMMARY_DIAGNOSTICS")
	setString(&cfg.Report.PassLabel, "REPORT_PASS_LABEL")
	setString(&cfg.Report.FailLabel, "REPORT_FAIL_LABEL")
	setString(&cfg.Report.AllPassedRemark, "REPORT_ALL_PASSED_REMARK")

	// Watch overrides
	setBool(&cfg.Watch.Enabled, "WATCH_ENABLED")
	setDuration(&cfg.Watch.Debounce, "WATCH_DEBOUNCE")
	setList(&cfg.Watch.Extensions, "WATCH_EXTENSIONS")

	// Telemetry overrides
	setString(&cfg.Telemetry.Logging.Level, "TELEMETRY_LOGGING_LEVEL")
	setString(&cfg.Telemetry.Logging.Format, "TELEMETRY_LOGGING_FORMAT")
	setBool(&cfg.Telemetry.Logging.AddSource, "TELEMETRY_LOGGING_ADD_SOURCE")
	setBool(&cfg.Telemetry.Metrics.Enabled, "TELEMETRY_METRICS_ENABLED")
	setString(&cfg.Telemetry.Metrics.Namespace, "TELEMETRY_METRICS_NAMESPACE")
	setString(&cfg.Telemetry.Metrics.Subsystem, "TELEMETRY_METRICS_SUBSYSTEM")
	setString(&cfg.Telemetry.Metrics.ListenAddress, "TELEMETRY_METRICS_LISTEN_ADDRESS")
	setString(&cfg.Telemetry.Metrics.Path, "TELEMETRY_METRICS_PATH")
	setBool(&cfg.Telemetry.Tracing.Enabled, "TELEMETRY_TRACING_ENABLED")
	setString(&cfg.Telemetry.Tracing.Sampler, "TELEMETRY_TRACING_SAMPLER")
	setFloat(&cfg.Telemetry.Tracing.SampleRatio, "TELEMETRY_TRACING_SAMPLE_RATIO")
	setString(&cfg.Telemetry.Tracing.Endpoint, "TELEMETRY_TRACING_ENDPOINT")
	setBool(&cfg.Telemetry.Tracing.Insecure, "TELEMETRY_TRACING_INSECURE")
	setString(&cfg.Telemetry.Tracing.ServiceName, "TELEMETRY_TRACING_SERVICE_NAME")
}

func setString(dst *string, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		*dst = val
	}
}

func setBool(dst *bool, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*dst = b
		}
	}
}

func setInt(dst *int, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			*dst = i
		}
	}
}

func setFloat(dst *float64, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			*dst = f
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			*dst = d
		}
	}
}

// setList reads a comma-separated list, trimming entries and dropping blanks.
func setList(dst *[]string, key string) {
	val := os.Getenv(EnvPrefix + key)
	if val == "" {
		return
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}
