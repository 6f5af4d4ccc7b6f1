package search

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay is the quiet period after the last keystroke before a search runs.
const DefaultDelay = 300 * time.Millisecond

// Task is a debounced computation. gen identifies the trigger that scheduled
// it; ctx is cancelled as soon as a newer trigger supersedes it.
type Task func(ctx context.Context, gen uint64)

// Debouncer runs only the last of a burst of triggers, after delay of
// inactivity. Timer cancellation alone cannot order results of computations
// that are already running, so every trigger bumps a generation and callers
// must check IsCurrent before publishing a result.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	gen     uint64
	timer   *time.Timer
	cancel  context.CancelFunc
	stopped bool
}

// NewDebouncer creates a Debouncer. delay <= 0 uses DefaultDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules task and supersedes any pending or running task.
// It returns the new generation, or 0 after Stop.
func (d *Debouncer) Trigger(task Task) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return 0
	}
	d.supersedeLocked()

	d.gen++
	gen := d.gen
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.timer = time.AfterFunc(d.delay, func() {
		defer cancel()
		task(ctx, gen)
	})
	return gen
}

// Cancel drops the pending task and invalidates any running one.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.supersedeLocked()
	d.gen++
}

// Stop cancels everything; later triggers are ignored. Results of tasks that
// are still running will fail IsCurrent.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.supersedeLocked()
	d.gen++
	d.stopped = true
}

// IsCurrent reports whether gen is the latest trigger and the debouncer is live.
func (d *Debouncer) IsCurrent(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.stopped && gen != 0 && gen == d.gen
}

func (d *Debouncer) supersedeLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
