package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"catalogqc/auditor/pkg/cli"
	"catalogqc/auditor/pkg/config"
	"catalogqc/auditor/pkg/telemetry/logging"
)

var inputFiles = map[string]string{
	"brands.csv":         "Brand\nNike\nAdidas\n",
	"colors.csv":         "Color\nRed\nNavy Blue\n",
	"sizes.csv":          "Size\nM\nL\n",
	"categories.csv":     "Category,Template Name\nShoes,Footwear\n",
	"template_rules.csv": "Template Name,Field Name,Field Type,Mandatory\nFootwear,Brand,Dropdown,Yes\nFootwear,Color Name,Dropdown,No\n",
	"content.csv":        "1st Category,Template Name,Brand,Color Name\nShoes>Running,Footwear,Nike,Red\nShoes,Footwear,Puma,Red\n",
}

// writeWorkspace writes the six inputs and a config into a temp dir and
// returns the dir and the config path.
func writeWorkspace(t *testing.T, extra string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	for name, body := range inputFiles {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := fmt.Sprintf(`inputs:
  dir: %q
report:
  output_dir: %q
telemetry:
  logging:
    level: error
%s`, dir, filepath.Join(dir, "reports"), extra)
	path := filepath.Join(dir, "auditor.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, path
}

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeTo(t, io.Discard, args...)
}

// executeTo runs the root command with stderr, and so the log, sent to errOut.
func executeTo(t *testing.T, errOut io.Writer, args ...string) (string, error) {
	t.Helper()
	runFlags = runOptions{output: "text"}
	mastersFlags.limit = 10
	verbose = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	dir, cfgPath := writeWorkspace(t, "")

	out, err := execute(t, "run", "--config", cfgPath, "--output", "json")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	var summary runSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("summary is not JSON: %v\n%s", err, out)
	}
	if summary.Stats.Total != 2 || summary.Stats.Passed != 1 || summary.Stats.Failed != 1 {
		t.Errorf("Stats = %+v, want 2 total / 1 passed / 1 failed", summary.Stats)
	}
	if summary.Masters.Brands != 2 || summary.Masters.Templates != 1 {
		t.Errorf("Masters = %+v", summary.Masters)
	}
	if filepath.Dir(summary.ReportPath) != filepath.Join(dir, "reports") {
		t.Errorf("ReportPath = %q, want inside reports/", summary.ReportPath)
	}
	if !strings.HasPrefix(filepath.Base(summary.ReportPath), "QC_Report_") || filepath.Ext(summary.ReportPath) != ".csv" {
		t.Errorf("ReportPath = %q, want QC_Report_*.csv", summary.ReportPath)
	}

	f, err := os.Open(summary.ReportPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("report has %d records, want header + 2 rows", len(records))
	}
	header := records[0]
	if got := header[len(header)-1]; got != "QC Final Status" {
		t.Errorf("last header = %q, want QC Final Status", got)
	}
	if got := records[1][len(header)-1]; got != "Success" {
		t.Errorf("row 1 final status = %q, want Success", got)
	}
	if got := records[2][len(header)-1]; !strings.HasPrefix(got, "Failed: ") || !strings.Contains(got, "puma") && !strings.Contains(got, "Puma") {
		t.Errorf("row 2 final status = %q, want failed brand", got)
	}
}

func TestRunCommand_VerboseLogsTableLoads(t *testing.T) {
	_, cfgPath := writeWorkspace(t, "    format: text\n")

	var logs bytes.Buffer
	if _, err := executeTo(t, &logs, "run", "--config", cfgPath, "--verbose"); err != nil {
		t.Fatalf("run error = %v", err)
	}
	for _, name := range []string{"brands", "colors", "sizes", "categories", "template_rules", "content"} {
		if !strings.Contains(logs.String(), "table="+name) {
			t.Errorf("log has no entry for table %s:\n%s", name, logs.String())
		}
	}
	if !strings.Contains(logs.String(), "Table loaded") {
		t.Errorf("log missing table load entries:\n%s", logs.String())
	}
}

func TestRunCommand_TextSummary(t *testing.T) {
	_, cfgPath := writeWorkspace(t, "")

	out, err := execute(t, "run", "--config", cfgPath)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	for _, want := range []string{"Rows:", "2 total, 1 passed, 1 failed", "2 brands"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRunCommand_FlagOverrides(t *testing.T) {
	dir, cfgPath := writeWorkspace(t, "")
	outDir := filepath.Join(dir, "json-out")

	out, err := execute(t, "run", "--config", cfgPath, "--format", "json", "--out", outDir, "--output", "json")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	var summary runSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(summary.ReportPath) != outDir || filepath.Ext(summary.ReportPath) != ".json" {
		t.Errorf("ReportPath = %q, want a .json file in %s", summary.ReportPath, outDir)
	}
	if summary.Format != "json" {
		t.Errorf("Format = %q, want json", summary.Format)
	}
}

func TestRunCommand_MissingInput(t *testing.T) {
	dir, cfgPath := writeWorkspace(t, "")
	if err := os.Remove(filepath.Join(dir, "colors.csv")); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "run", "--config", cfgPath)
	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("run error = %v, want *cli.CommandError", err)
	}
	if code := cli.ExitCode(err); code != cli.ExitFailed {
		t.Errorf("ExitCode = %d, want %d", code, cli.ExitFailed)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "reports")); !os.IsNotExist(statErr) {
		t.Error("no report directory should be created for a failed run")
	}
}

func TestRunCommand_InvalidConfig(t *testing.T) {
	_, cfgPath := writeWorkspace(t, "")
	f, err := os.OpenFile(cfgPath, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	// Appending a second report block is a YAML error.
	if _, err := f.WriteString("report:\n  format: xml\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	_, err = execute(t, "run", "--config", cfgPath)
	if code := cli.ExitCode(err); code != cli.ExitConfig {
		t.Errorf("ExitCode = %d, want %d (err = %v)", code, cli.ExitConfig, err)
	}
}

func TestRunCommand_InvalidFormatFlag(t *testing.T) {
	_, cfgPath := writeWorkspace(t, "")

	_, err := execute(t, "run", "--config", cfgPath, "--format", "xml")
	if code := cli.ExitCode(err); code != cli.ExitConfig {
		t.Errorf("ExitCode = %d, want %d (err = %v)", code, cli.ExitConfig, err)
	}
}

func TestRunCommand_MissingExplicitConfig(t *testing.T) {
	_, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if code := cli.ExitCode(err); code != cli.ExitConfig {
		t.Errorf("ExitCode = %d, want %d (err = %v)", code, cli.ExitConfig, err)
	}
}

func TestMastersStats(t *testing.T) {
	dir, cfgPath := writeWorkspace(t, "")
	// Content is not needed to inspect the masters.
	if err := os.Remove(filepath.Join(dir, "content.csv")); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "masters", "stats", "--config", cfgPath)
	if err != nil {
		t.Fatalf("masters stats error = %v", err)
	}
	for _, want := range []string{"2 brands", "2 colors", "1 templates", "2 rules", "Footwear"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMastersSearch(t *testing.T) {
	_, cfgPath := writeWorkspace(t, "")

	out, err := execute(t, "masters", "search", "colors", "navy", "--config", cfgPath, "--output", "json")
	if err != nil {
		t.Fatalf("masters search error = %v", err)
	}
	var result searchResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Matches) != 1 || result.Matches[0] != "navy blue" {
		t.Errorf("Matches = %v, want [navy blue]", result.Matches)
	}

	if _, err := execute(t, "masters", "search", "fabrics", "x", "--config", cfgPath); err == nil {
		t.Error("unknown dataset should fail")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Auditor "+Version) {
		t.Errorf("version output = %q", out)
	}
}

// syncBuffer is a bytes.Buffer safe for the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

func TestWatchSession(t *testing.T) {
	dir, _ := writeWorkspace(t, "")
	cfg := config.Default()
	cfg.Inputs.Dir = dir
	cfg.Report.OutputDir = filepath.Join(dir, "reports")
	cfg.Watch.Debounce = 50 * time.Millisecond
	cfg.Telemetry.Metrics.ListenAddress = "127.0.0.1:0"

	logger, err := logging.New(logging.Config{Level: "error", Writer: io.Discard})
	if err != nil {
		t.Fatal(err)
	}

	prevCfgFile := cfgFile
	cfgFile = ""
	defer func() { cfgFile = prevCfgFile }()

	out := &syncBuffer{}
	s, err := newWatchSession(watchCmd, cfg, logger, &cli.JSONFormatter{}, out)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	runs := func() int { return strings.Count(out.String(), `"run_id"`) }
	if !waitFor(t, 2*time.Second, func() bool { return runs() == 1 }) {
		t.Fatalf("initial audit not reported: %q", out.String())
	}
	if _, _, err := s.runs.Last(); err != nil {
		t.Errorf("last run error = %v", err)
	}

	// Give the watcher time to register before editing.
	time.Sleep(150 * time.Millisecond)
	content := filepath.Join(dir, "content.csv")
	if err := os.WriteFile(content, []byte("1st Category,Template Name,Brand\nShoes,Footwear,Nike\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, 3*time.Second, func() bool { return runs() >= 2 }) {
		t.Fatalf("change did not trigger a re-audit: %q", out.String())
	}

	// A broken input is recorded, not fatal.
	if err := os.Remove(filepath.Join(dir, "sizes.csv")); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, 3*time.Second, func() bool { _, _, err := s.runs.Last(); return err != nil }) {
		t.Error("failed audit not recorded by the run tracker")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watch session did not stop")
	}
}
