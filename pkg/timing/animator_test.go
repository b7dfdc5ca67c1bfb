package timing

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	tests := []struct {
		name     string
		maxSteps uint64
		limit    int
		want     int
	}{
		{name: "capped", maxSteps: 256, limit: 16, want: 16},
		{name: "exactly limit", maxSteps: 16, limit: 16, want: 16},
		{name: "below limit", maxSteps: 8, limit: 16, want: 8},
		{name: "no limit", maxSteps: 32, limit: 0, want: 32},
		{name: "zero steps", maxSteps: 0, limit: 16, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Steps(tt.maxSteps, tt.limit))
		})
	}
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(0, 0))
	assert.Equal(t, 1.0, Progress(1, 0))
	assert.Equal(t, 0.5, Progress(1, 1))
	assert.InDelta(t, 1.0/3, Progress(1, 2), 1e-12)
	assert.Equal(t, 1.0, Progress(15, 3))
	assert.Equal(t, 0.0, Progress(3, -1))
}

func TestAnimator_AdvanceWraps(t *testing.T) {
	a := New(0)
	a.SetSteps(3)

	s, n := a.Advance()
	assert.Equal(t, 1, s)
	assert.Equal(t, 3, n)
	a.Advance()
	s, _ = a.Advance()
	assert.Equal(t, 0, s)
}

func TestAnimator_SetStepsWrapsCurrent(t *testing.T) {
	a := New(time.Millisecond)
	a.SetSteps(16)
	for i := 0; i < 10; i++ {
		a.Advance()
	}

	a.SetSteps(4)
	s, n := a.Step()
	assert.Equal(t, 2, s) // 10 % 4
	assert.Equal(t, 4, n)

	a.SetSteps(0)
	_, n = a.Step()
	assert.Equal(t, 1, n)
}

func TestAnimator_RunNotifiesAndStops(t *testing.T) {
	a := New(5 * time.Millisecond)
	a.SetSteps(16)

	var calls atomic.Int32
	a.OnStep(func(step, steps int) {
		calls.Add(1)
		assert.Less(t, step, steps)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run(ctx)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	stopped := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())
}
