package trace

import (
	"context"
	"log"
	"sync"
	"time"
)

// Recorder timestamps output levels into a History and notifies listeners.
// Levels are queued with Record from the UI thread and consumed by Run.
type Recorder struct {
	history *History
	in      chan float64
	now     func() time.Time

	callbacks []func(points []Point)
	cbMu      sync.RWMutex
}

// NewRecorder creates a recorder feeding h. bufSize bounds the queue of
// pending levels.
func NewRecorder(h *History, bufSize int) *Recorder {
	if bufSize <= 0 {
		bufSize = 100
	}
	return &Recorder{
		history: h,
		in:      make(chan float64, bufSize),
		now:     time.Now,
	}
}

// History returns the history being fed.
func (r *Recorder) History() *History {
	return r.history
}

// Record queues a new output level. It never blocks; when the queue is
// full the level is dropped.
func (r *Recorder) Record(v float64) bool {
	select {
	case r.in <- v:
		return true
	default:
		log.Printf("Recorder queue full, dropping level %.4f", v)
		return false
	}
}

// OnUpdate registers a callback invoked with a copy of the history after
// every recorded level. Callbacks should return quickly.
func (r *Recorder) OnUpdate(callback func(points []Point)) {
	r.cbMu.Lock()
	defer r.cbMu.Unlock()
	r.callbacks = append(r.callbacks, callback)
}

// Run consumes queued levels until ctx is cancelled.
func (r *Recorder) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case v := <-r.in:
			r.history.Push(Point{Timestamp: r.now(), Voltage: v})
			r.notifyCallbacks()
		}
	}
}

// notifyCallbacks invokes all registered callbacks without holding locks.
func (r *Recorder) notifyCallbacks() {
	points := r.history.Points()

	r.cbMu.RLock()
	callbacks := make([]func(points []Point), len(r.callbacks))
	copy(callbacks, r.callbacks)
	r.cbMu.RUnlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb(points)
		}
	}
}
