package scope

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/chewxy/math32"
	"github.com/itohio/signalforge/pkg/trace"
)

const (
	scopeHLines   = 4
	scopeVLines   = 10
	markerRadius  = 4
	traceMargin   = 0.05 // Fraction of height kept free above and below the trace
	traceStroke   = 2
	gridStroke    = 1
	scopeMinWidth = 400
	scopeMinH     = 150
)

// scopeRenderer renders the scope widget.
type scopeRenderer struct {
	scope *ScopeWidget

	bg *canvas.Rectangle

	objects []fyne.CanvasObject

	lastSize fyne.Size
}

// MinSize returns the minimum size of the widget.
func (r *scopeRenderer) MinSize() fyne.Size {
	return fyne.NewSize(scopeMinWidth, scopeMinH)
}

// Layout arranges the widget components.
func (r *scopeRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	if r.lastSize != size {
		r.lastSize = size
		r.scope.BaseWidget.Refresh()
	}
}

// Refresh rebuilds the grid, trace and level marker.
func (r *scopeRenderer) Refresh() {
	r.scope.mu.RLock()
	points := r.scope.display
	maxVoltage := r.scope.maxVoltage
	capacity := r.scope.capacity
	label := r.scope.label
	r.scope.mu.RUnlock()

	size := r.scope.Size()
	r.objects = []fyne.CanvasObject{r.bg}
	if size.Width == 0 || size.Height == 0 {
		return
	}

	r.drawGrid(size)

	if len(points) > 1 {
		r.drawTrace(size, points, capacity, maxVoltage)
	}
	if len(points) > 0 {
		r.drawMarker(size, points[len(points)-1].Voltage, maxVoltage)
	}

	if label != "" {
		text := canvas.NewText(label, amber)
		text.TextSize = 10
		text.TextStyle = fyne.TextStyle{Monospace: true}
		text.Move(fyne.NewPos(8, 6))
		r.objects = append(r.objects, text)
	}
}

// drawGrid draws the 4x10 oscilloscope graticule.
func (r *scopeRenderer) drawGrid(size fyne.Size) {
	for i := 0; i < scopeHLines+1; i++ {
		y := size.Height / scopeHLines * float32(i)
		r.objects = append(r.objects, gridLine(fyne.NewPos(0, y), fyne.NewPos(size.Width, y)))
	}
	for i := 0; i < scopeVLines+1; i++ {
		x := size.Width / scopeVLines * float32(i)
		r.objects = append(r.objects, gridLine(fyne.NewPos(x, 0), fyne.NewPos(x, size.Height)))
	}
}

// drawTrace draws the output history as connected segments.
func (r *scopeRenderer) drawTrace(size fyne.Size, points []trace.Point, capacity int, maxVoltage float64) {
	prev := tracePos(0, capacity, points[0].Voltage, maxVoltage, size)
	for i := 1; i < len(points); i++ {
		cur := tracePos(i, capacity, points[i].Voltage, maxVoltage, size)
		line := canvas.NewLine(amber)
		line.Position1 = prev
		line.Position2 = cur
		line.StrokeWidth = traceStroke
		r.objects = append(r.objects, line)
		prev = cur
	}
}

// drawMarker draws the current level dot at the right edge.
func (r *scopeRenderer) drawMarker(size fyne.Size, v, maxVoltage float64) {
	y := levelY(v, maxVoltage, size.Height)
	x := size.Width - 5

	dot := canvas.NewCircle(amber)
	dot.Position1 = fyne.NewPos(x-markerRadius, y-markerRadius)
	dot.Position2 = fyne.NewPos(x+markerRadius, y+markerRadius)
	r.objects = append(r.objects, dot)
}

// Objects returns all canvas objects for rendering.
func (r *scopeRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up resources.
func (r *scopeRenderer) Destroy() {}

// tracePos maps history index i and level v to widget coordinates.
// The x axis spans capacity points regardless of how many are stored.
func tracePos(i, capacity int, v, maxVoltage float64, size fyne.Size) fyne.Position {
	x := float32(i) / float32(capacity) * size.Width
	return fyne.NewPos(x, levelY(v, maxVoltage, size.Height))
}

// levelY maps a level to a y coordinate, keeping a margin at both edges.
func levelY(v, maxVoltage float64, height float32) float32 {
	n := float32(trace.Normalize(v, maxVoltage))
	return height - n*height*(1-2*traceMargin) - height*traceMargin
}

func gridLine(p1, p2 fyne.Position) *canvas.Line {
	line := canvas.NewLine(gridColor)
	line.Position1 = p1
	line.Position2 = p2
	line.StrokeWidth = gridStroke
	return line
}

// clamp01 limits f to [0, 1].
func clamp01(f float32) float32 {
	return math32.Max(0, math32.Min(1, f))
}
