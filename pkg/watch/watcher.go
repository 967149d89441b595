package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when Config.Debounce is zero.
const DefaultDebounce = 500 * time.Millisecond

// ErrAlreadyRunning is returned by Watch when the watcher is already running.
var ErrAlreadyRunning = errors.New("watcher already running")

// Config contains configuration for the file watcher.
type Config struct {
	// Paths are the files to watch.
	Paths []string

	// Debounce is the quiet period after the last change before the
	// callback runs.
	Debounce time.Duration

	// Extensions, when set, further restricts Paths to these extensions.
	Extensions []string
}

// OnChange is called with the changed paths after each quiet period.
type OnChange func(ctx context.Context, changed []string) error

// FileWatcher watches a set of files for changes.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	config  Config

	files map[string]struct{}
	dirs  []string

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewFileWatcher creates a watcher for the configured paths.
func NewFileWatcher(cfg *Config, logger *slog.Logger) (*FileWatcher, error) {
	if cfg == nil || len(cfg.Paths) == 0 {
		return nil, errors.New("no paths to watch")
	}
	if logger == nil {
		logger = slog.Default()
	}

	config := *cfg
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}

	fw := &FileWatcher{
		logger: logger,
		config: config,
		files:  make(map[string]struct{}),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}

	seenDir := make(map[string]bool)
	for _, p := range config.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", p, err)
		}
		if !fw.hasValidExtension(abs) {
			continue
		}
		fw.files[abs] = struct{}{}
		if dir := filepath.Dir(abs); !seenDir[dir] {
			seenDir[dir] = true
			fw.dirs = append(fw.dirs, dir)
		}
	}
	if len(fw.files) == 0 {
		return nil, errors.New("no paths match the watched extensions")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	fw.watcher = watcher

	return fw, nil
}

// Watch blocks until the context is cancelled or Stop is called, invoking
// onChange after each burst of changes. Errors from onChange are logged and
// do not stop the watcher.
func (fw *FileWatcher) Watch(ctx context.Context, onChange OnChange) error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return ErrAlreadyRunning
	}
	fw.running = true
	fw.mu.Unlock()

	defer func() {
		fw.mu.Lock()
		fw.running = false
		fw.mu.Unlock()
		close(fw.doneCh)
	}()

	for _, dir := range fw.dirs {
		if err := fw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", dir, err)
		}
	}

	debounce := NewDebouncer(fw.config.Debounce, func(changed []string) {
		fw.logger.Info("Inputs changed", "files", changed)
		if err := onChange(ctx, changed); err != nil {
			fw.logger.Error("Change handler failed", "error", err)
		}
	})
	defer debounce.Stop()

	fw.logger.Info("File watcher started",
		"files", len(fw.files),
		"debounce_ms", fw.config.Debounce.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			fw.logger.Info("File watcher stopped (context cancelled)")
			return nil

		case <-fw.stopCh:
			fw.logger.Info("File watcher stopped")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			path, ok := fw.matchEvent(event)
			if !ok {
				continue
			}
			fw.logger.Debug("File event detected",
				"path", path,
				"op", event.Op.String(),
			)
			debounce.Trigger(path)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			fw.logger.Error("File watcher error", "error", err)
		}
	}
}

// Stop stops a running watcher and releases its resources.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	running := fw.running
	fw.mu.Unlock()

	if running {
		close(fw.stopCh)
		<-fw.doneCh
	}

	if err := fw.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// Files returns the absolute paths being watched.
func (fw *FileWatcher) Files() []string {
	out := make([]string, 0, len(fw.files))
	for f := range fw.files {
		out = append(out, f)
	}
	return out
}

// matchEvent returns the watched file an event concerns, if any.
// Pure chmod events are ignored.
func (fw *FileWatcher) matchEvent(event fsnotify.Event) (string, bool) {
	if event.Op == fsnotify.Chmod {
		return "", false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return "", false
	}
	_, ok := fw.files[abs]
	return abs, ok
}

// hasValidExtension checks a path against the configured extensions.
func (fw *FileWatcher) hasValidExtension(path string) bool {
	if len(fw.config.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, validExt := range fw.config.Extensions {
		if ext == strings.ToLower(validExt) {
			return true
		}
	}
	return false
}
