package engine

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period after the last input change before
// an evaluation fires.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer coalesces a burst of input-change events into a single
// callback after a quiet period. Each Trigger resets the timer; only the
// function from the latest Trigger runs.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

// NewDebouncer creates a debouncer with the given quiet period. A
// non-positive delay uses DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet period, replacing any
// previously scheduled function.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
