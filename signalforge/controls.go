package main

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/signalforge/pkg/config"
	"github.com/itohio/signalforge/pkg/converter"
)

var (
	activeColor   = color.RGBA{R: 217, G: 160, B: 70, A: 255}
	inactiveColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	warningColor  = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	accentColor   = color.RGBA{R: 45, G: 212, B: 191, A: 255}
)

// newResolutionSlider creates an integer slider over r that reports every
// change through onChange.
func newResolutionSlider(r config.Range, value int, onChange func(int)) (*widget.Slider, *widget.Label) {
	label := widget.NewLabel(fmt.Sprintf("%d-bit", value))
	slider := widget.NewSlider(r.Min, r.Max)
	slider.Step = 1
	slider.SetValue(float64(value))
	slider.OnChanged = func(v float64) {
		n := r.ClampInt(int(v))
		label.SetText(fmt.Sprintf("%d-bit", n))
		onChange(n)
	}
	return slider, label
}

// newFloatEntry creates an entry bound to a float parameter. Text that does
// not parse is ignored; parsed values are clamped to r before onChange.
func newFloatEntry(r config.Range, value float64, onChange func(float64)) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(strconv.FormatFloat(value, 'f', -1, 64))
	entry.OnChanged = func(text string) {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return
		}
		onChange(r.Clamp(v))
	}
	return entry
}

// bitPanel is a row of toggle buttons, one per bit, MSB first.
type bitPanel struct {
	box      *fyne.Container
	onChange func(bits string)

	bits       string
	resolution int
}

func newBitPanel(bits string, resolution int, onChange func(bits string)) *bitPanel {
	p := &bitPanel{box: container.NewHBox(), onChange: onChange}
	p.set(bits, resolution)
	return p
}

// set rebuilds the buttons for a new value or resolution.
func (p *bitPanel) set(bits string, resolution int) {
	p.bits = converter.NormalizeBits(bits, resolution)
	p.resolution = resolution

	objects := make([]fyne.CanvasObject, 0, resolution)
	for i := 0; i < resolution; i++ {
		idx := i
		btn := widget.NewButton(string(p.bits[i]), func() {
			p.set(converter.ToggleBit(p.bits, p.resolution, idx), p.resolution)
			p.onChange(p.bits)
		})
		if p.bits[i] == '1' {
			btn.Importance = widget.HighImportance
		}
		objects = append(objects, btn)
	}
	p.box.Objects = objects
	p.box.Refresh()
}

// valueText is a small monospace readout.
func valueText(size float32) *canvas.Text {
	t := canvas.NewText("", activeColor)
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	return t
}

// setText updates a canvas text in place.
func setText(t *canvas.Text, s string, c color.Color) {
	t.Text = s
	t.Color = c
	t.Refresh()
}

// readout pairs a caption with a value.
func readout(caption string, value fyne.CanvasObject) fyne.CanvasObject {
	return container.NewVBox(widget.NewLabelWithStyle(caption, fyne.TextAlignLeading, fyne.TextStyle{Italic: true}), value)
}

// formatCount renders an integer count with thousands separators.
func formatCount(n uint64) string {
	s := strconv.FormatUint(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
