package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const theoryMarkdown = `# Converter Theory

## Binary weighted-resistor DAC

Each bit drives a resistor whose value halves from LSB to MSB: the MSB
branch uses R, the next R·2, and so on up to R·2^(N-1) for the LSB. The
branch currents sum into the virtual ground of an inverting amplifier:

    Vout = -Rf · Σ bᵢ · VRef / (R · 2ⁱ)

The circuit is simple, but the resistor spread is 2^(N-1):1. At 12 bits the
LSB resistor is 2048 times the MSB one, and matching that ratio precisely is
what limits this design to low resolutions.

## R-2R ladder DAC

Only two resistor values are needed, R and 2R. Every node of the ladder sees
the same Thevenin resistance, so each bit contributes exactly half of the
bit above it:

    Vout = VRef · D / 2ᴺ

The ratio stays 2:1 at any resolution. An N-bit ladder uses N resistors of
value R and N+1 of value 2R.

## Counter-type ADC

A counter drives an internal DAC upward one step per clock. A comparator
stops the counter once the DAC output passes the input voltage. Each step
waits for the comparator response, comparator propagation, DAC settling and
the AND gate delay, so a full-scale conversion takes 2ᴺ steps:

    t_max = 2ᴺ · t_step        f_max = 1 / (2 · t_max)

The average input needs about half as many steps.

## Flash ADC

A resistor string of 2ᴺ resistors sets 2ᴺ-1 reference levels, each feeding a
comparator. All comparators switch at once and a priority encoder reads the
result, so the conversion takes one comparator delay at any resolution. The
cost is hardware: the comparator count doubles with every added bit.
`

// newTheoryTab renders the theory notes.
func newTheoryTab() fyne.CanvasObject {
	text := widget.NewRichTextFromMarkdown(theoryMarkdown)
	text.Wrapping = fyne.TextWrapWord
	return container.NewVScroll(text)
}
