package main

import (
	"fmt"
	"math"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/signalforge/pkg/config"
	"github.com/itohio/signalforge/pkg/converter"
	"github.com/itohio/signalforge/pkg/scope"
	"github.com/itohio/signalforge/pkg/trace"
)

// maxSchematicBranches is how many weighted-resistor branches are drawn.
const maxSchematicBranches = 4

// outputTrace wires a recorder to a scope widget. Each DAC tab owns one.
type outputTrace struct {
	recorder *trace.Recorder
	scope    *scope.ScopeWidget
}

func newOutputTrace(state *appState, fullScale func() float64) *outputTrace {
	d := state.cfg.Display
	h := trace.NewHistory(d.HistoryPoints)
	o := &outputTrace{
		recorder: trace.NewRecorder(h, d.HistoryPoints),
		scope:    scope.New("OUTPUT", d.HistoryPoints, d.MaxDisplayPoints),
	}

	th := newThrottle(d.FrameInterval)
	o.recorder.OnUpdate(func(points []trace.Point) {
		th.Do(func() {
			o.scope.UpdateData(points, fullScale())
		})
	})
	go o.recorder.Run(state.ctx)

	return o
}

// weightedPanel is the binary weighted-resistor DAC tab.
type weightedPanel struct {
	state   *appState
	content fyne.CanvasObject

	bits      *bitPanel
	output    *outputTrace
	branches  *fyne.Container
	feedback  *canvas.Text
	voltage   *canvas.Text
	level     *canvas.Text
	current   *canvas.Text
	ratio     *canvas.Text
	ratioNote *widget.Label
}

func newWeightedPanel(state *appState) *weightedPanel {
	cfg := &state.cfg.WeightedResistor
	p := &weightedPanel{
		state:     state,
		branches:  container.NewVBox(),
		feedback:  valueText(12),
		voltage:   valueText(24),
		level:     valueText(24),
		current:   valueText(14),
		ratio:     valueText(16),
		ratioNote: widget.NewLabel(""),
	}
	p.ratioNote.Wrapping = fyne.TextWrapWord
	p.output = newOutputTrace(state, func() float64 { return weightedFullScale(*cfg) })
	p.bits = newBitPanel(cfg.BinaryInput, cfg.Resolution, func(bits string) {
		cfg.BinaryInput = bits
		p.recompute()
	})

	resolution, resLabel := newResolutionSlider(config.WeightedResolution, cfg.Resolution, func(n int) {
		cfg.Resolution = n
		p.bits.set(cfg.BinaryInput, n)
		cfg.BinaryInput = p.bits.bits
		p.recompute()
	})
	vref := newFloatEntry(config.VRef, cfg.VRef, func(v float64) {
		cfg.VRef = v
		p.recompute()
	})
	rbase := newFloatEntry(config.Resistor, cfg.RBase, func(v float64) {
		cfg.RBase = v
		p.recompute()
	})
	rfeedback := newFloatEntry(config.Resistor, cfg.RFeedback, func(v float64) {
		cfg.RFeedback = v
		p.recompute()
	})

	schematic := widget.NewCard("Circuit", "Inverting summing amplifier", container.NewVBox(
		p.branches,
		container.NewHBox(widget.NewLabel("Rf"), p.feedback),
	))

	controls := widget.NewCard("Configuration", "", container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Resolution"), resLabel),
		resolution,
		widget.NewLabel("Binary input (MSB first)"),
		p.bits.box,
	))

	params := widget.NewCard("Parameters", "", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("VRef (V)", vref),
			widget.NewFormItem("R base (Ω)", rbase),
			widget.NewFormItem("R feedback (Ω)", rfeedback),
		),
		readout("Resistor ratio (LSB:MSB)", p.ratio),
		p.ratioNote,
	))

	outputs := widget.NewCard("Output analysis", "", container.NewVBox(
		p.output.scope,
		container.NewGridWithColumns(2,
			readout("Voltage |Vout|", p.voltage),
			readout("Level", p.level),
		),
		readout("Summing current", p.current),
		widget.NewLabel("Vout = -Rf × Σ bᵢ · VRef / (R · 2ⁱ)"),
	))

	p.content = container.NewVBox(schematic, container.NewGridWithColumns(3, controls, params, outputs))
	p.recompute()
	return p
}

// recompute evaluates the engine for the current parameters and refreshes
// every readout.
func (p *weightedPanel) recompute() {
	cfg := p.state.cfg.WeightedResistor
	res := converter.WeightedResistor(cfg)

	setText(p.voltage, converter.FormatVoltage(math.Abs(res.OutputVoltage)), activeColor)
	setText(p.level, fmt.Sprintf("%d of %d", res.DecimalValue, res.MaxValue), activeColor)
	setText(p.current, fmt.Sprintf("%.4f mA", res.Current*1000), accentColor)
	setText(p.feedback, converter.FormatResistance(cfg.RFeedback), activeColor)

	ratioColor := accentColor
	note := "Resistor spread is manageable."
	if res.HighRatio {
		ratioColor = warningColor
		note = "High precision resistors are impractical at this ratio."
	}
	setText(p.ratio, formatCount(uint64(res.RangeRatio))+":1", ratioColor)
	p.ratioNote.SetText(note)

	branches := make([]fyne.CanvasObject, 0, maxSchematicBranches)
	for i, r := range res.Resistors {
		if i == maxSchematicBranches {
			break
		}
		c := inactiveColor
		if r.Active {
			c = activeColor
		}
		t := canvas.NewText(fmt.Sprintf("B%d  %s  %s", cfg.Resolution-1-i, string(res.Bits[i]), converter.FormatResistance(r.Value)), c)
		t.TextStyle = fyne.TextStyle{Monospace: true}
		branches = append(branches, t)
	}
	if len(res.Resistors) > maxSchematicBranches {
		branches = append(branches, widget.NewLabel(fmt.Sprintf("… %d more branches, LSB %s", len(res.Resistors)-maxSchematicBranches, converter.FormatResistance(res.ResistorRange))))
	}
	p.branches.Objects = branches
	p.branches.Refresh()

	p.output.recorder.Record(res.OutputVoltage)
}

// weightedFullScale is |Vout| with every bit set, the top of the scope.
func weightedFullScale(cfg converter.WeightedResistorConfig) float64 {
	cfg.BinaryInput = strings.Repeat("1", cfg.Resolution)
	return math.Abs(converter.WeightedResistor(cfg).OutputVoltage)
}

// r2rPanel is the R-2R ladder DAC tab.
type r2rPanel struct {
	state   *appState
	content fyne.CanvasObject

	bits    *bitPanel
	output  *outputTrace
	ladder  *fyne.Container
	voltage *canvas.Text
	level   *canvas.Text
	lsb     *canvas.Text
	rCount  *canvas.Text
	twoR    *canvas.Text
}

// maxLadderRungs is how many R-2R rungs are drawn.
const maxLadderRungs = 6

func newR2RPanel(state *appState) *r2rPanel {
	cfg := &state.cfg.R2RLadder
	p := &r2rPanel{
		state:   state,
		ladder:  container.NewHBox(),
		voltage: valueText(24),
		level:   valueText(24),
		lsb:     valueText(14),
		rCount:  valueText(18),
		twoR:    valueText(18),
	}
	p.output = newOutputTrace(state, func() float64 { return cfg.VRef })
	p.bits = newBitPanel(cfg.BinaryInput, cfg.Resolution, func(bits string) {
		cfg.BinaryInput = bits
		p.recompute()
	})

	resolution, resLabel := newResolutionSlider(config.R2RResolution, cfg.Resolution, func(n int) {
		cfg.Resolution = n
		p.bits.set(cfg.BinaryInput, n)
		cfg.BinaryInput = p.bits.bits
		p.recompute()
	})
	vref := newFloatEntry(config.VRef, cfg.VRef, func(v float64) {
		cfg.VRef = v
		p.recompute()
	})
	rvalue := newFloatEntry(config.UnitR, cfg.RValue, func(v float64) {
		cfg.RValue = v
		p.recompute()
	})

	schematic := widget.NewCard("Circuit", "R-2R ladder", p.ladder)

	controls := widget.NewCard("Configuration", "", container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Resolution"), resLabel),
		resolution,
		widget.NewLabel("Binary input (MSB first)"),
		p.bits.box,
	))

	params := widget.NewCard("Parameters", "", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("VRef (V)", vref),
			widget.NewFormItem("R value (Ω)", rvalue),
		),
		container.NewGridWithColumns(2,
			readout("R resistors", p.rCount),
			readout("2R resistors", p.twoR),
		),
		widget.NewLabel("Only a 2:1 ratio is required regardless of resolution."),
	))

	outputs := widget.NewCard("Output analysis", "", container.NewVBox(
		p.output.scope,
		container.NewGridWithColumns(2,
			readout("Voltage", p.voltage),
			readout("Level", p.level),
		),
		readout("LSB step", p.lsb),
		widget.NewLabel("Vout = VRef · D / 2ᴺ"),
	))

	p.content = container.NewVBox(schematic, container.NewGridWithColumns(3, controls, params, outputs))
	p.recompute()
	return p
}

func (p *r2rPanel) recompute() {
	cfg := p.state.cfg.R2RLadder
	res := converter.R2RLadder(cfg)

	setText(p.voltage, converter.FormatVoltage(res.OutputVoltage), activeColor)
	setText(p.level, fmt.Sprintf("%d of %d", res.DecimalValue, res.MaxValue), activeColor)
	setText(p.lsb, fmt.Sprintf("%.6f V", res.LSBVoltage), accentColor)
	setText(p.rCount, fmt.Sprintf("%d × %s", res.RCount, converter.FormatResistance(res.RValue)), activeColor)
	setText(p.twoR, fmt.Sprintf("%d × %s", res.TwoRCount, converter.FormatResistance(res.TwoRValue)), activeColor)

	rungs := min(cfg.Resolution, maxLadderRungs)
	objects := make([]fyne.CanvasObject, 0, rungs)
	for i := 0; i < rungs; i++ {
		c := inactiveColor
		if res.Bits[i] == '1' {
			c = activeColor
		}
		name := canvas.NewText(fmt.Sprintf("B%d", cfg.Resolution-1-i), c)
		name.TextStyle = fyne.TextStyle{Monospace: true}
		switchDot := canvas.NewCircle(c)
		switchDot.Resize(fyne.NewSize(10, 10))
		objects = append(objects, container.NewVBox(
			canvas.NewText("2R", c),
			container.NewGridWrap(fyne.NewSize(10, 10), switchDot),
			name,
		))
	}
	p.ladder.Objects = objects
	p.ladder.Refresh()

	p.output.recorder.Record(res.OutputVoltage)
}
