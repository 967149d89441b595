package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func resetSingleton() {
	globalConfig = nil
	initOnce = *new(sync.Once)
}

func TestInitialize(t *testing.T) {
	resetSingleton()
	t.Cleanup(resetSingleton)

	path := writeConfig(t, `
report:
  file_prefix: "Batch_QC"
`)

	if err := Initialize(path); err != nil {
		t.Fatalf("failed to initialize config: %v", err)
	}

	cfg := GetConfig()
	if cfg == nil {
		t.Fatal("expected non-nil config after initialization")
	}
	if cfg.Report.FilePrefix != "Batch_QC" {
		t.Errorf("expected prefix %q, got %q", "Batch_QC", cfg.Report.FilePrefix)
	}
}

func TestInitialize_MultipleCallsIgnored(t *testing.T) {
	resetSingleton()
	t.Cleanup(resetSingleton)

	first := writeConfig(t, "report:\n  file_prefix: first\n")
	second := writeConfig(t, "report:\n  file_prefix: second\n")

	if err := Initialize(first); err != nil {
		t.Fatal(err)
	}
	if err := Initialize(second); err != nil {
		t.Fatal(err)
	}
	if got := GetConfig().Report.FilePrefix; got != "first" {
		t.Errorf("expected first config to win, got %q", got)
	}
}

func TestReloadConfig(t *testing.T) {
	resetSingleton()
	t.Cleanup(resetSingleton)

	dir := t.TempDir()
	path := filepath.Join(dir, "auditor.yaml")
	if err := os.WriteFile(path, []byte("report:\n  format: csv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Initialize(path); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("report:\n  format: json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ReloadConfig(path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got := GetConfig().Report.Format; got != "json" {
		t.Errorf("expected reloaded format json, got %q", got)
	}

	// An invalid file leaves the current config in place.
	if err := os.WriteFile(path, []byte("report:\n  format: pdf\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ReloadConfig(path); err == nil {
		t.Fatal("expected reload error")
	}
	if got := GetConfig().Report.Format; got != "json" {
		t.Errorf("expected config unchanged after failed reload, got %q", got)
	}
}

func TestMustGetConfig_Panics(t *testing.T) {
	resetSingleton()
	t.Cleanup(resetSingleton)

	defer func() {
		if recover() == nil {
			t.Error("expected panic when config not initialized")
		}
	}()
	MustGetConfig()
}

func TestSetConfig(t *testing.T) {
	resetSingleton()
	t.Cleanup(resetSingleton)

	cfg := Default()
	SetConfig(cfg)
	if GetConfig() != cfg {
		t.Error("GetConfig() should return the config passed to SetConfig")
	}
}
