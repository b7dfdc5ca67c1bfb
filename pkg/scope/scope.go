package scope

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/signalforge/pkg/trace"
)

var (
	background = color.RGBA{R: 10, G: 10, B: 15, A: 255}
	amber      = color.RGBA{R: 217, G: 160, B: 70, A: 255}
	gridColor  = color.NRGBA{R: 217, G: 160, B: 70, A: 26}
	labelColor = color.RGBA{R: 136, G: 136, B: 136, A: 255}
)

// ScopeWidget is a custom Fyne widget that displays the DAC output level
// history as an oscilloscope trace.
type ScopeWidget struct {
	widget.BaseWidget

	label string

	// Data (protected by mu)
	mu         sync.RWMutex
	points     []trace.Point
	maxVoltage float64

	// Display buffer (reused for downsampling)
	display []trace.Point

	capacity         int
	maxDisplayPoints int
}

// New creates a new ScopeWidget. capacity is the trace length the x axis
// spans; maxDisplayPoints limits how many points are drawn.
func New(label string, capacity, maxDisplayPoints int) *ScopeWidget {
	if capacity <= 0 {
		capacity = trace.DefaultCapacity
	}
	if maxDisplayPoints <= 0 {
		maxDisplayPoints = capacity
	}
	s := &ScopeWidget{
		label:            label,
		maxVoltage:       1,
		display:          make([]trace.Point, 0, maxDisplayPoints),
		capacity:         capacity,
		maxDisplayPoints: maxDisplayPoints,
	}
	s.ExtendBaseWidget(s)
	s.Refresh()
	return s
}

// UpdateData replaces the trace. maxVoltage is the full-scale level.
// Must be called on the Fyne thread (use fyne.Do from goroutines).
func (s *ScopeWidget) UpdateData(points []trace.Point, maxVoltage float64) {
	s.mu.Lock()
	s.points = points
	s.display = trace.Downsample(s.display, points, s.maxDisplayPoints)
	s.maxVoltage = maxVoltage
	s.mu.Unlock()

	// Refresh outside the lock, the renderer takes a read lock.
	s.Refresh()
}

// CreateRenderer creates the widget renderer.
func (s *ScopeWidget) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(background)
	return &scopeRenderer{
		scope:   s,
		bg:      bg,
		objects: []fyne.CanvasObject{bg},
	}
}
