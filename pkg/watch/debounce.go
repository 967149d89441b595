package watch

import (
	"sort"
	"sync"
	"time"
)

// Debouncer collects keys and calls its callback once no new key has arrived
// for the interval. The callback receives every key collected since the last
// call, sorted.
type Debouncer struct {
	interval time.Duration
	fn       func(keys []string)

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	stopped bool
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration, fn func(keys []string)) *Debouncer {
	return &Debouncer{
		interval: interval,
		fn:       fn,
		pending:  make(map[string]struct{}),
	}
}

// Trigger records a key and restarts the quiet period.
func (d *Debouncer) Trigger(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending[key] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped || len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}
	keys := make([]string, 0, len(d.pending))
	for k := range d.pending {
		keys = append(keys, k)
	}
	d.pending = make(map[string]struct{})
	d.timer = nil
	d.mu.Unlock()

	sort.Strings(keys)
	d.fn(keys)
}

// Stop cancels any pending callback. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = make(map[string]struct{})
}
