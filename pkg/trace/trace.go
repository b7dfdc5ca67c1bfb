package trace

import (
	"math"
	"sync"
	"time"
)

// DefaultCapacity is the number of points kept by the oscilloscope trace.
const DefaultCapacity = 100

// Point is one recorded DAC output level.
type Point struct {
	Timestamp time.Time
	Voltage   float64 // V
}

// History is a bounded FIFO of output points.
// Points are ordered oldest first; pushing past capacity drops the oldest.
type History struct {
	mu       sync.RWMutex
	points   []Point
	capacity int
}

// NewHistory creates a history holding at most capacity points.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{
		points:   make([]Point, 0, capacity),
		capacity: capacity,
	}
}

// Push appends p, dropping the oldest point when full.
func (h *History) Push(p Point) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.points) == h.capacity {
		copy(h.points, h.points[1:])
		h.points = h.points[:len(h.points)-1]
	}
	h.points = append(h.points, p)
}

// Points returns a copy of the history, oldest first.
func (h *History) Points() []Point {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make([]Point, len(h.points))
	copy(result, h.points)
	return result
}

// Last returns the newest point. ok is false when the history is empty.
func (h *History) Last() (p Point, ok bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.points) == 0 {
		return Point{}, false
	}
	return h.points[len(h.points)-1], true
}

// Len returns the number of stored points.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.points)
}

// Capacity returns the maximum number of stored points.
func (h *History) Capacity() int {
	return h.capacity
}

// Reset drops all points.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.points = h.points[:0]
}

// Normalize maps a voltage to the visible trace height fraction: |v|/max,
// capped at 1. A non-positive max yields 0.
func Normalize(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Min(math.Abs(v)/max, 1)
}
