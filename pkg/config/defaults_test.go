package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input Config
		check func(*testing.T, *Config)
	}{
		{
			name:  "empty config gets all defaults",
			input: Config{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Inputs.Dir != DefaultInputsDir {
					t.Errorf("expected inputs dir %q, got %q", DefaultInputsDir, cfg.Inputs.Dir)
				}
				if cfg.Inputs.TemplateRules != DefaultTemplateRulesFile {
					t.Errorf("expected template rules file %q, got %q", DefaultTemplateRulesFile, cfg.Inputs.TemplateRules)
				}
				if cfg.Audit.CategoryColumn != DefaultCategoryColumn {
					t.Errorf("expected category column %q, got %q", DefaultCategoryColumn, cfg.Audit.CategoryColumn)
				}
				if diff := cmp.Diff(DefaultTemplateColumns, cfg.Audit.TemplateColumns); diff != "" {
					t.Errorf("template columns mismatch (-want +got):\n%s", diff)
				}
				if cfg.Report.MaxSummaryDiagnostics != DefaultMaxSummaryDiagnostics {
					t.Errorf("expected max summary %d, got %d", DefaultMaxSummaryDiagnostics, cfg.Report.MaxSummaryDiagnostics)
				}
				if cfg.Report.AllPassedRemark != DefaultAllPassedRemark {
					t.Errorf("expected remark %q, got %q", DefaultAllPassedRemark, cfg.Report.AllPassedRemark)
				}
				if cfg.Watch.Debounce != DefaultWatchDebounce {
					t.Errorf("expected debounce %v, got %v", DefaultWatchDebounce, cfg.Watch.Debounce)
				}
				if cfg.Telemetry.Metrics.Path != DefaultPrometheusPath {
					t.Errorf("expected prometheus path %q, got %q", DefaultPrometheusPath, cfg.Telemetry.Metrics.Path)
				}
				if cfg.Telemetry.Tracing.Enabled {
					t.Error("expected tracing disabled by default")
				}
				if cfg.Telemetry.Tracing.SampleRatio != DefaultTracingSampleRatio || cfg.Telemetry.Tracing.ServiceName != DefaultTracingServiceName {
					t.Errorf("tracing defaults not applied: %+v", cfg.Telemetry.Tracing)
				}
			},
		},
		{
			name: "existing values are preserved",
			input: Config{
				Inputs: InputsConfig{Dir: "/data", Content: "batch.csv"},
				Report: ReportConfig{Format: "json", PassLabel: "OK"},
				Watch:  WatchConfig{Debounce: 2 * time.Second, Extensions: []string{".tsv"}},
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Inputs.Dir != "/data" || cfg.Inputs.Content != "batch.csv" {
					t.Errorf("inputs overwritten: %+v", cfg.Inputs)
				}
				if cfg.Report.Format != "json" || cfg.Report.PassLabel != "OK" {
					t.Errorf("report overwritten: %+v", cfg.Report)
				}
				if cfg.Watch.Debounce != 2*time.Second {
					t.Errorf("expected debounce 2s, got %v", cfg.Watch.Debounce)
				}
				if diff := cmp.Diff([]string{".tsv"}, cfg.Watch.Extensions); diff != "" {
					t.Errorf("extensions mismatch (-want +got):\n%s", diff)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.input
			ApplyDefaults(&cfg)
			tt.check(t, &cfg)
		})
	}
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	first := &Config{}
	ApplyDefaults(first)
	second := *first
	ApplyDefaults(&second)

	if diff := cmp.Diff(*first, second); diff != "" {
		t.Errorf("second ApplyDefaults changed config (-first +second):\n%s", diff)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Audit.Suggestions {
		t.Error("expected suggestions enabled by default")
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics enabled by default")
	}
	if cfg.Audit.StrictDelimiters {
		t.Error("expected strict delimiters disabled by default")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}

	// Default must not alias the package-level slices.
	cfg.Audit.TemplateColumns[0] = "changed"
	if DefaultTemplateColumns[0] == "changed" {
		t.Error("Default() aliases DefaultTemplateColumns")
	}
}
