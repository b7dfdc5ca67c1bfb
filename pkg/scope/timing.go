package scope

import (
	"fmt"
	"image/color"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/chewxy/math32"
	"github.com/itohio/signalforge/pkg/converter"
	"github.com/itohio/signalforge/pkg/timing"
)

// StageColors are the bar colors of the counter ADC step stages, in order.
var StageColors = []color.NRGBA{
	{R: 217, G: 160, B: 70, A: 255}, // comparator response
	{R: 45, G: 212, B: 191, A: 255}, // propagation
	{R: 168, G: 85, B: 247, A: 255}, // DAC settling
	{R: 249, G: 115, B: 22, A: 255}, // gate
}

const (
	barHeight   = 25
	barPitch    = 35
	barTop      = 30
	barInset    = 20
	timingMinW  = 500
	timingMinH  = 180
	stageAlpha  = 0x40
	counterSize = 14
)

// bar is the horizontal extent of one delay stage.
type bar struct {
	X, Width float32
}

// layoutBars places the stages end to end across width, each proportional
// to its share of the total delay.
func layoutBars(delays []converter.Delay, width float32) []bar {
	var total float64
	for _, d := range delays {
		total += d.Value
	}

	bars := make([]bar, len(delays))
	if total <= 0 {
		return bars
	}

	span := math32.Max(0, width-2*barInset)
	x := float32(barInset)
	for i, d := range delays {
		w := float32(d.Value/total) * span
		bars[i] = bar{X: x, Width: w}
		x += w
	}
	return bars
}

// TimingWidget draws one counter-type ADC step as a chain of delay bars,
// filled progressively as the animation advances.
type TimingWidget struct {
	widget.BaseWidget

	mu     sync.RWMutex
	delays []converter.Delay
	step   int
	steps  int
}

// NewTiming creates an empty timing diagram.
func NewTiming() *TimingWidget {
	t := &TimingWidget{steps: 1}
	t.ExtendBaseWidget(t)
	return t
}

// Update replaces the delay stages and the animated step count.
func (t *TimingWidget) Update(delays []converter.Delay, steps int) {
	t.mu.Lock()
	t.delays = delays
	t.steps = max(steps, 1)
	t.step %= t.steps
	t.mu.Unlock()

	t.Refresh()
}

// SetStep moves the animation to step. Must be called on the Fyne thread.
func (t *TimingWidget) SetStep(step int) {
	t.mu.Lock()
	t.step = step
	t.mu.Unlock()

	t.Refresh()
}

// CreateRenderer creates the widget renderer.
func (t *TimingWidget) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(background)
	return &timingRenderer{timing: t, bg: bg, objects: []fyne.CanvasObject{bg}}
}

type timingRenderer struct {
	timing  *TimingWidget
	bg      *canvas.Rectangle
	objects []fyne.CanvasObject
}

func (r *timingRenderer) MinSize() fyne.Size {
	return fyne.NewSize(timingMinW, timingMinH)
}

func (r *timingRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.Refresh()
}

func (r *timingRenderer) Refresh() {
	r.timing.mu.RLock()
	delays := r.timing.delays
	step := r.timing.step
	steps := r.timing.steps
	r.timing.mu.RUnlock()

	size := r.timing.Size()
	r.objects = []fyne.CanvasObject{r.bg}
	if size.Width == 0 || size.Height == 0 {
		return
	}

	bars := layoutBars(delays, size.Width)
	for i, b := range bars {
		c := StageColors[i%len(StageColors)]
		y := float32(barTop + i*barPitch)

		faded := c
		faded.A = stageAlpha
		back := canvas.NewRectangle(faded)
		back.Move(fyne.NewPos(b.X, y))
		back.Resize(fyne.NewSize(b.Width, barHeight))

		fill := canvas.NewRectangle(c)
		fill.Move(fyne.NewPos(b.X, y))
		fill.Resize(fyne.NewSize(b.Width*clamp01(float32(timing.Progress(step, i))), barHeight))

		border := canvas.NewRectangle(color.Transparent)
		border.StrokeColor = c
		border.StrokeWidth = 1
		border.Move(fyne.NewPos(b.X, y))
		border.Resize(fyne.NewSize(b.Width, barHeight))

		name := canvas.NewText(delays[i].Name, labelColor)
		name.TextSize = 10
		name.TextStyle = fyne.TextStyle{Monospace: true}
		name.Move(fyne.NewPos(b.X, y-14))

		value := canvas.NewText(strconv.FormatFloat(delays[i].Value, 'f', -1, 64)+"ns", labelColor)
		value.TextSize = 10
		value.TextStyle = fyne.TextStyle{Monospace: true}
		value.Move(fyne.NewPos(b.X+math32.Max(0, b.Width-35), y+6))

		r.objects = append(r.objects, back, fill, border, name, value)
	}

	counter := canvas.NewText(fmt.Sprintf("Step: %d/%d", step+1, steps), amber)
	counter.TextSize = counterSize
	counter.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	counter.Move(fyne.NewPos(size.Width-110, size.Height-30))
	r.objects = append(r.objects, counter)
}

func (r *timingRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *timingRenderer) Destroy() {}
