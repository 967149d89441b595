package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNewFileWatcher(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "brands.csv")
	b := filepath.Join(dir, "notes.txt")

	fw, err := NewFileWatcher(&Config{Paths: []string{a, b}, Extensions: []string{".CSV"}}, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v", err)
	}
	defer func() { _ = fw.Stop() }()

	if diff := cmp.Diff([]string{a}, fw.Files()); diff != "" {
		t.Errorf("Files() mismatch (-want +got):\n%s", diff)
	}
	if len(fw.dirs) != 1 {
		t.Errorf("dirs = %v, want one shared parent", fw.dirs)
	}
	if fw.config.Debounce != DefaultDebounce {
		t.Errorf("Debounce = %v, want default", fw.config.Debounce)
	}
}

func TestNewFileWatcher_NoPaths(t *testing.T) {
	if _, err := NewFileWatcher(&Config{}, nil); err == nil {
		t.Error("expected error for empty paths")
	}
	if _, err := NewFileWatcher(&Config{Paths: []string{"a.txt"}, Extensions: []string{".csv"}}, nil); err == nil {
		t.Error("expected error when no path matches the extensions")
	}
}

func TestMatchEvent(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "content.csv")

	fw, err := NewFileWatcher(&Config{Paths: []string{watched}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = fw.Stop() }()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to watched file", fsnotify.Event{Name: watched, Op: fsnotify.Write}, true},
		{"rename onto watched file", fsnotify.Event{Name: watched, Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: watched, Op: fsnotify.Chmod}, false},
		{"sibling file", fsnotify.Event{Name: filepath.Join(dir, "QC_Report_1.csv"), Op: fsnotify.Create}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := fw.matchEvent(tt.event); got != tt.want {
				t.Errorf("matchEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileWatcher_Watch(t *testing.T) {
	dir := t.TempDir()
	brands := filepath.Join(dir, "brands.csv")
	colors := filepath.Join(dir, "colors.csv")
	other := filepath.Join(dir, "other.csv")
	for _, p := range []string{brands, colors, other} {
		writeFile(t, p, "x\n")
	}

	fw, err := NewFileWatcher(&Config{Paths: []string{brands, colors}, Debounce: 50 * time.Millisecond}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = fw.Stop() }()

	var (
		mu    sync.Mutex
		calls [][]string
	)
	fired := make(chan struct{}, 10)
	onChange := func(ctx context.Context, changed []string) error {
		mu.Lock()
		calls = append(calls, changed)
		mu.Unlock()
		fired <- struct{}{}
		return errors.New("handler errors are logged, not fatal")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- fw.Watch(ctx, onChange) }()

	time.Sleep(100 * time.Millisecond)

	writeFile(t, other, "ignored\n")
	writeFile(t, brands, "Brand\nNike\n")
	writeFile(t, colors, "Color\nRed\n")

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("onChange not called after file modification")
	}

	// Let any straggling events settle.
	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	var got []string
	for _, c := range calls {
		got = append(got, c...)
	}
	mu.Unlock()
	got = dedupe(got)

	if diff := cmp.Diff([]string{brands, colors}, got); diff != "" {
		t.Errorf("changed paths mismatch (-want +got):\n%s", diff)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Error("Watch() did not return after cancel")
	}
}

func TestFileWatcher_DoubleStart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.csv")
	writeFile(t, path, "x\n")

	fw, err := NewFileWatcher(&Config{Paths: []string{path}}, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fw.Watch(ctx, func(context.Context, []string) error { return nil }) }()
	time.Sleep(50 * time.Millisecond)

	if err := fw.Watch(ctx, nil); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Watch() error = %v, want ErrAlreadyRunning", err)
	}

	if err := fw.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}

func TestFileWatcher_StopWithoutWatch(t *testing.T) {
	fw, err := NewFileWatcher(&Config{Paths: []string{filepath.Join(t.TempDir(), "a.csv")}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := fw.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}

func TestDebouncer_Trigger(t *testing.T) {
	var (
		mu    sync.Mutex
		calls [][]string
	)
	d := NewDebouncer(100*time.Millisecond, func(keys []string) {
		mu.Lock()
		calls = append(calls, keys)
		mu.Unlock()
	})
	defer d.Stop()

	for _, k := range []string{"b", "a", "b", "c", "a"} {
		d.Trigger(k)
		time.Sleep(20 * time.Millisecond)
	}
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if diff := cmp.Diff([][]string{{"a", "b", "c"}}, calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	var count atomic.Int32
	d := NewDebouncer(100*time.Millisecond, func([]string) { count.Add(1) })

	d.Trigger("a")
	d.Stop()
	d.Trigger("b")
	time.Sleep(150 * time.Millisecond)

	if n := count.Load(); n != 0 {
		t.Errorf("callback called %d times after Stop(), want 0", n)
	}
}

func dedupe(in []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
