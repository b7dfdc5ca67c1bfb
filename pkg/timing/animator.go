package timing

import (
	"context"
	"math"
	"sync"
	"time"
)

// DefaultInterval is the animation step period of the timing diagram.
const DefaultInterval = 200 * time.Millisecond

// Steps returns the number of steps to animate for a converter needing
// maxSteps clock steps, capped at limit. The result is at least 1.
func Steps(maxSteps uint64, limit int) int {
	if limit <= 0 || maxSteps < uint64(limit) {
		if maxSteps == 0 {
			return 1
		}
		if maxSteps > math.MaxInt32 {
			return math.MaxInt32
		}
		return int(maxSteps)
	}
	return limit
}

// Progress returns the fill fraction of delay stage at the given step:
// min(1, step/(stage+1)).
func Progress(step, stage int) float64 {
	if stage < 0 || step <= 0 {
		return 0
	}
	return math.Min(1, float64(step)/float64(stage+1))
}

// Animator cycles a step counter on a fixed interval.
type Animator struct {
	interval time.Duration

	mu    sync.RWMutex
	step  int
	steps int

	callbacks []func(step, steps int)
	cbMu      sync.RWMutex
}

// New creates an animator advancing every interval.
func New(interval time.Duration) *Animator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Animator{
		interval: interval,
		steps:    1,
	}
}

// SetSteps changes the cycle length. The current step wraps into range.
func (a *Animator) SetSteps(n int) {
	if n < 1 {
		n = 1
	}
	a.mu.Lock()
	a.steps = n
	a.step %= n
	a.mu.Unlock()
}

// Step returns the current zero-based step and the cycle length.
func (a *Animator) Step() (step, steps int) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.step, a.steps
}

// OnStep registers a callback invoked from the Run goroutine after every
// advance.
func (a *Animator) OnStep(callback func(step, steps int)) {
	a.cbMu.Lock()
	defer a.cbMu.Unlock()
	a.callbacks = append(a.callbacks, callback)
}

// Advance moves to the next step, wrapping to 0 after the last one.
func (a *Animator) Advance() (step, steps int) {
	a.mu.Lock()
	a.step = (a.step + 1) % a.steps
	step, steps = a.step, a.steps
	a.mu.Unlock()

	a.cbMu.RLock()
	callbacks := make([]func(step, steps int), len(a.callbacks))
	copy(callbacks, a.callbacks)
	a.cbMu.RUnlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb(step, steps)
		}
	}
	return step, steps
}

// Run advances the animation every interval until ctx is cancelled.
func (a *Animator) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Advance()
		}
	}
}
