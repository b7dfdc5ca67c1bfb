package main

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// throttle limits widget redraws to one per interval. Updates arriving
// inside the interval replace each other, and the last one always runs.
type throttle struct {
	interval time.Duration
	run      func(func()) // fyne.Do outside of tests

	mu        sync.Mutex
	last      time.Time
	pending   func()
	scheduled bool
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: interval, run: fyne.Do}
}

// Do schedules fn on the UI thread, coalescing bursts.
func (t *throttle) Do(fn func()) {
	t.mu.Lock()
	t.pending = fn
	if t.scheduled {
		t.mu.Unlock()
		return
	}
	t.scheduled = true
	wait := t.interval - time.Since(t.last)
	t.mu.Unlock()

	if wait <= 0 {
		t.flush()
		return
	}
	time.AfterFunc(wait, t.flush)
}

func (t *throttle) flush() {
	t.mu.Lock()
	fn := t.pending
	t.pending = nil
	t.scheduled = false
	t.last = time.Now()
	t.mu.Unlock()

	if fn != nil {
		t.run(fn)
	}
}
