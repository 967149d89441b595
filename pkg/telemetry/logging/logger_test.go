package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"catalogqc/auditor/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "valid JSON config", config: Config{Level: "info", Format: "json"}},
		{name: "valid text config", config: Config{Level: "debug", Format: "text"}},
		{name: "valid console config", config: Config{Level: "warn", Format: "console"}},
		{name: "empty config uses defaults", config: Config{}},
		{name: "invalid log level", config: Config{Level: "invalid", Format: "json"}, wantErr: true},
		{name: "invalid format", config: Config{Level: "info", Format: "invalid"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.Writer = &bytes.Buffer{}
			logger, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && logger == nil {
				t.Fatal("New() returned nil logger")
			}
		})
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", Writer: buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Debug("hidden")
	logger.Info("Audit complete", "rows", 12, "failed", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line (debug filtered), got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "Audit complete" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["rows"] != float64(12) {
		t.Errorf("rows = %v, want 12", entry["rows"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
}

func TestLogger_ConsoleOmitsTime(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "console", Writer: buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Warn("Duplicate rule", "template", "Footwear")

	out := buf.String()
	if strings.Contains(out, "time=") {
		t.Errorf("console output should not include time: %q", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "template=Footwear") {
		t.Errorf("unexpected console output: %q", out)
	}
}

func TestLogger_TextIncludesTime(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "text", Writer: buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hello")
	if !strings.Contains(buf.String(), "time=") {
		t.Errorf("text output should include time: %q", buf.String())
	}
}

func TestLogger_ContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "debug", Format: "json", Writer: buf})
	if err != nil {
		t.Fatal(err)
	}

	ctx := WithRunID(context.Background(), "run-42")
	ctx = WithTable(ctx, "content")
	logger.ErrorContext(ctx, "Read failed", "line", 7)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["run_id"] != "run-42" || entry["table"] != "content" {
		t.Errorf("missing context fields: %v", entry)
	}
	if _, ok := entry["file"]; ok {
		t.Error("unset context field should not be logged")
	}
}

func TestLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", Writer: buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.With("component", "watch").Info("started")
	if !strings.Contains(buf.String(), `"component":"watch"`) {
		t.Errorf("expected component field: %q", buf.String())
	}

	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "component") {
		t.Error("With must not modify the parent logger")
	}
}

func TestLogger_Slog(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "warn", Format: "json", Writer: buf})
	if err != nil {
		t.Fatal(err)
	}
	if logger.Level() != slog.LevelWarn {
		t.Errorf("Level() = %v, want WARN", logger.Level())
	}

	logger.Slog().Info("filtered")
	logger.Slog().Warn("kept")
	if strings.Contains(buf.String(), "filtered") || !strings.Contains(buf.String(), "kept") {
		t.Errorf("Slog() should share the handler and level: %q", buf.String())
	}
}

func TestFromConfig(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := FromConfig(config.LoggingConfig{Level: "error", Format: "text", AddSource: true}, buf)
	if cfg.Level != "error" || cfg.Format != "text" || !cfg.AddSource || cfg.Writer != buf {
		t.Errorf("FromConfig() = %+v", cfg)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseLevel(%q) = %v, %v; want %v, wantErr %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
