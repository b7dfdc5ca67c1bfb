package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/signalforge/pkg/config"
	"github.com/itohio/signalforge/pkg/converter"
	"github.com/itohio/signalforge/pkg/scope"
	"github.com/itohio/signalforge/pkg/timing"
)

// counterPanel is the counter-type ADC tab.
type counterPanel struct {
	state   *appState
	content fyne.CanvasObject
	diagram *scope.TimingWidget

	total    *canvas.Text
	maxSteps *canvas.Text
	avgSteps *canvas.Text
	maxTime  *canvas.Text
	avgTime  *canvas.Text
	maxFreq  *canvas.Text
	avgFreq  *canvas.Text
}

func newCounterPanel(state *appState) *counterPanel {
	cfg := &state.cfg.CounterADC
	p := &counterPanel{
		state:    state,
		diagram:  scope.NewTiming(),
		total:    valueText(18),
		maxSteps: valueText(18),
		avgSteps: valueText(18),
		maxTime:  valueText(18),
		avgTime:  valueText(18),
		maxFreq:  valueText(22),
		avgFreq:  valueText(22),
	}

	resolution, resLabel := newResolutionSlider(config.CounterResolution, cfg.Resolution, func(n int) {
		cfg.Resolution = n
		p.recompute()
	})
	delay := func(v *float64) *widget.Entry {
		return newFloatEntry(config.GateDelay, *v, func(f float64) {
			*v = f
			p.recompute()
		})
	}

	controls := widget.NewCard("Configuration", "Per-step delays in ns", container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Resolution"), resLabel),
		resolution,
		widget.NewForm(
			widget.NewFormItem("Comparator response", delay(&cfg.ComparatorResponse)),
			widget.NewFormItem("Comparator propagation", delay(&cfg.ComparatorPropagation)),
			widget.NewFormItem("DAC settling", delay(&cfg.DACSettling)),
			widget.NewFormItem("AND gate propagation", delay(&cfg.ANDGatePropagation)),
		),
	))

	timingCard := widget.NewCard("Step timing", "One clock step of the counter", container.NewVBox(
		p.diagram,
		readout("Total delay per step", p.total),
	))

	results := widget.NewCard("Conversion analysis", "", container.NewVBox(
		container.NewGridWithColumns(2,
			readout("Max steps", p.maxSteps),
			readout("Avg steps", p.avgSteps),
			readout("Max conversion time", p.maxTime),
			readout("Avg conversion time", p.avgTime),
			readout("Max frequency (worst case)", p.maxFreq),
			readout("Avg frequency", p.avgFreq),
		),
		widget.NewLabel("f = 1 / (2 · t), the Nyquist limit for a conversion time t."),
	))

	p.content = container.NewVBox(timingCard, container.NewGridWithColumns(2, controls, results))
	p.recompute()
	return p
}

func (p *counterPanel) recompute() {
	cfg := p.state.cfg.CounterADC
	res := converter.CounterType(cfg)

	setText(p.total, fmt.Sprintf("%g ns", res.TotalDelayPerStep), activeColor)
	setText(p.maxSteps, formatCount(res.MaxSteps), activeColor)
	setText(p.avgSteps, formatCount(res.AvgSteps), activeColor)
	setText(p.maxTime, converter.FormatNanoseconds(res.MaxConversionTime), activeColor)
	setText(p.avgTime, converter.FormatNanoseconds(res.AvgConversionTime), activeColor)

	v, unit := converter.FormatFrequency(res.MaxFrequency)
	setText(p.maxFreq, v+" "+unit, warningColor)
	v, unit = converter.FormatFrequency(res.AvgFrequency)
	setText(p.avgFreq, v+" "+unit, accentColor)

	steps := timing.Steps(res.MaxSteps, p.state.cfg.Display.MaxAnimSteps)
	p.diagram.Update(cfg.Delays(), steps)
	if p.state.animator != nil {
		p.state.animator.SetSteps(steps)
	}
}

// flashPanel is the flash ADC tab.
type flashPanel struct {
	state   *appState
	content fyne.CanvasObject

	grid        *fyne.Container
	more        *widget.Label
	comparators *canvas.Text
	resistors   *canvas.Text
	convTime    *canvas.Text
	maxFreq     *canvas.Text
	warning     *widget.Label
}

// comparatorCell is the size of one comparator in the grid.
var comparatorCell = fyne.NewSize(14, 14)

func newFlashPanel(state *appState) *flashPanel {
	cfg := &state.cfg.FlashADC
	p := &flashPanel{
		state:       state,
		grid:        container.NewGridWrap(comparatorCell),
		more:        widget.NewLabel(""),
		comparators: valueText(22),
		resistors:   valueText(22),
		convTime:    valueText(18),
		maxFreq:     valueText(22),
		warning:     widget.NewLabel(""),
	}
	p.warning.Wrapping = fyne.TextWrapWord
	p.warning.Importance = widget.DangerImportance

	resolution, resLabel := newResolutionSlider(config.FlashResolution, cfg.Resolution, func(n int) {
		cfg.Resolution = n
		p.recompute()
	})
	delay := newFloatEntry(config.GateDelay, cfg.ComparatorDelay, func(v float64) {
		cfg.ComparatorDelay = v
		p.recompute()
	})

	controls := widget.NewCard("Configuration", "", container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Resolution"), resLabel),
		resolution,
		widget.NewForm(widget.NewFormItem("Comparator delay (ns)", delay)),
	))

	results := widget.NewCard("Conversion analysis", "", container.NewVBox(
		container.NewGridWithColumns(2,
			readout("Comparators (2ᴺ-1)", p.comparators),
			readout("Resistors (2ᴺ)", p.resistors),
			readout("Conversion time", p.convTime),
			readout("Max frequency", p.maxFreq),
		),
		widget.NewLabel("All comparators switch at once, so one delay converts any resolution."),
		p.warning,
	))

	bank := widget.NewCard("Comparator bank", "", container.NewVBox(p.grid, p.more))

	p.content = container.NewVBox(bank, container.NewGridWithColumns(2, controls, results))
	p.recompute()
	return p
}

func (p *flashPanel) recompute() {
	cfg := p.state.cfg.FlashADC
	res := converter.Flash(cfg)

	setText(p.comparators, formatCount(res.NumComparators), activeColor)
	setText(p.resistors, formatCount(res.NumResistors), activeColor)
	setText(p.convTime, converter.FormatNanoseconds(res.ConversionTime), activeColor)
	v, unit := converter.FormatFrequency(res.MaxFrequency)
	setText(p.maxFreq, v+" "+unit, accentColor)

	if res.HighComponentCount {
		p.warning.SetText(fmt.Sprintf("%s comparators exceed the practical limit of %d: die area and power grow with 2ᴺ.",
			formatCount(res.NumComparators), converter.HighComponentThreshold))
		p.warning.Show()
	} else {
		p.warning.Hide()
	}

	shown, hidden := comparatorGrid(res.NumComparators, p.state.cfg.Display.MaxComparators)
	cells := make([]fyne.CanvasObject, shown)
	for i := range cells {
		c := canvas.NewRectangle(activeColor)
		c.CornerRadius = 2
		cells[i] = c
	}
	p.grid.Objects = cells
	p.grid.Refresh()

	if hidden > 0 {
		p.more.SetText(fmt.Sprintf("+%s more", formatCount(hidden)))
		p.more.Show()
	} else {
		p.more.Hide()
	}
}

// comparatorGrid splits n comparators into the drawn cells and the
// remainder summarized as "+k more".
func comparatorGrid(n uint64, limit int) (shown int, hidden uint64) {
	if limit < 0 {
		limit = 0
	}
	if n <= uint64(limit) {
		return int(n), 0
	}
	return limit, n - uint64(limit)
}
