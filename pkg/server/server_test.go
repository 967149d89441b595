package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"catalogqc/auditor/pkg/config"
	"catalogqc/auditor/pkg/qc/engine"
	"catalogqc/auditor/pkg/telemetry/health"
	"catalogqc/auditor/pkg/telemetry/metrics"
)

func newTestServer(t *testing.T) (*Server, *health.RunTracker) {
	t.Helper()
	cfg := &config.MetricsConfig{Enabled: true}
	collector := metrics.NewCollector(cfg, prometheus.NewRegistry())
	collector.RecordRun(&engine.Report{Verdicts: []engine.RowVerdict{{OverallStatus: engine.Passed}}}, time.Millisecond)

	checker := health.New(time.Second)
	tracker := health.NewRunTracker()
	checker.RegisterCheck("last_run", tracker.Check)

	srv := New(Config{
		ListenAddress: "127.0.0.1:0",
		MetricsPath:   "/metrics",
		Version:       "0.1.0",
	}, collector.Handler(), checker, nil)
	return srv, tracker
}

func TestServer_Routes(t *testing.T) {
	srv, tracker := newTestServer(t)
	handler := srv.Handler()

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{"metrics", "/metrics", http.StatusOK, "catalogqc_auditor_runs_total"},
		{"liveness", "/health", http.StatusOK, `"status":"ok"`},
		{"not ready before first run", "/ready", http.StatusServiceUnavailable, "no audit run completed yet"},
		{"version", "/version", http.StatusOK, `"version":"0.1.0"`},
		{"unknown path", "/v1/chat", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q:\n%s", tt.wantBody, rec.Body.String())
			}
		})
	}

	tracker.Record("run-1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("/ready after run = %d, want 200", rec.Code)
	}
}

func TestServer_ListenAndServe(t *testing.T) {
	srv, _ := newTestServer(t)
	if srv.Addr() != "" {
		t.Errorf("Addr() before Listen = %q", srv.Addr())
	}
	if err := srv.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	if err := srv.Listen(); err == nil {
		t.Error("second Listen() should fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, body %s", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

func TestServer_ServeWithoutListen(t *testing.T) {
	srv, _ := newTestServer(t)
	if err := srv.Serve(context.Background()); err == nil {
		t.Error("Serve() without Listen should fail")
	}
}

func TestServer_RecoversPanics(t *testing.T) {
	srv := New(Config{MetricsPath: "/metrics"}, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), nil, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("code = %d, want 500", rec.Code)
	}
}
