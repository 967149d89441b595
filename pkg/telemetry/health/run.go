package health

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNoRun is reported until the first audit run completes.
var ErrNoRun = errors.New("no audit run completed yet")

// RunTracker remembers the outcome of the latest audit run. Its Check
// method is a CheckFunc that fails while the latest run failed.
type RunTracker struct {
	mu    sync.RWMutex
	runID string
	at    time.Time
	err   error
	done  bool
	now   func() time.Time
}

// NewRunTracker creates a tracker with no recorded run.
func NewRunTracker() *RunTracker {
	return &RunTracker{now: time.Now}
}

// Record stores the outcome of a run. runID is empty for runs that failed
// before producing a report.
func (t *RunTracker) Record(runID string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.runID = runID
	t.err = err
	t.at = t.now()
	t.done = true
}

// Last returns the latest run ID, its time and its error.
func (t *RunTracker) Last() (runID string, at time.Time, err error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.done {
		return "", time.Time{}, ErrNoRun
	}
	return t.runID, t.at, t.err
}

// Check implements CheckFunc.
func (t *RunTracker) Check(ctx context.Context) error {
	_, at, err := t.Last()
	if err == nil || errors.Is(err, ErrNoRun) {
		return err
	}
	return fmt.Errorf("last audit at %s failed: %w", at.UTC().Format(time.RFC3339), err)
}
