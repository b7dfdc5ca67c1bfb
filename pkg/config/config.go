package config

import (
	"fmt"
	"os"
	"time"

	"github.com/itohio/signalforge/pkg/converter"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
// It is the snapshot of every parameter the user can manipulate.
type Config struct {
	WeightedResistor converter.WeightedResistorConfig `yaml:"weighted_resistor"`
	R2RLadder        converter.R2RLadderConfig        `yaml:"r2r_ladder"`
	CounterADC       converter.CounterTypeConfig      `yaml:"counter_adc"`
	FlashADC         converter.FlashConfig            `yaml:"flash_adc"`
	Display          DisplayConfig                    `yaml:"display"`
}

// DisplayConfig contains presentation parameters.
type DisplayConfig struct {
	HistoryPoints    int           `yaml:"history_points"`     // Oscilloscope trace length
	StepInterval     time.Duration `yaml:"step_interval"`      // Timing diagram animation step
	MaxAnimSteps     int           `yaml:"max_anim_steps"`     // Cap on animated counter steps
	MaxComparators   int           `yaml:"max_comparators"`    // Comparators drawn in the flash grid
	FrameInterval    time.Duration `yaml:"frame_interval"`     // Minimum time between widget redraws
	MaxDisplayPoints int           `yaml:"max_display_points"` // Decimation limit for the trace
}

// Range is an inclusive bound for a numeric parameter.
type Range struct {
	Min, Max float64
}

// Clamp returns v limited to the range. A zero Max means unbounded above.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if r.Max > 0 && v > r.Max {
		return r.Max
	}
	return v
}

// ClampInt is Clamp for integer parameters.
func (r Range) ClampInt(v int) int {
	return int(r.Clamp(float64(v)))
}

// Valid input ranges. The engine does not validate, so everything passing
// through the UI is clamped to these first.
var (
	WeightedResolution = Range{Min: 2, Max: 12}
	R2RResolution      = Range{Min: 2, Max: 16}
	CounterResolution  = Range{Min: 4, Max: 16}
	FlashResolution    = Range{Min: 2, Max: 10}

	VRef      = Range{Min: 0.1}
	Resistor  = Range{Min: 100} // rBase and rFeedback
	UnitR     = Range{Min: 1}   // R-2R unit resistor
	GateDelay = Range{Min: 1}   // ns
)

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		WeightedResistor: converter.WeightedResistorConfig{
			Resolution:  4,
			BinaryInput: "1010",
			VRef:        5,
			RBase:       1000,
			RFeedback:   1000,
		},
		R2RLadder: converter.R2RLadderConfig{
			Resolution:  4,
			BinaryInput: "1010",
			VRef:        5,
			RValue:      10000,
		},
		CounterADC: converter.CounterTypeConfig{
			Resolution:            8,
			ComparatorResponse:    50,
			ComparatorPropagation: 20,
			DACSettling:           100,
			ANDGatePropagation:    10,
		},
		FlashADC: converter.FlashConfig{
			Resolution:      4,
			ComparatorDelay: 5,
		},
		Display: DisplayConfig{
			HistoryPoints:    100,
			StepInterval:     200 * time.Millisecond,
			MaxAnimSteps:     16,
			MaxComparators:   63,
			FrameInterval:    16 * time.Millisecond, // ~60 FPS
			MaxDisplayPoints: 400,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values. Loaded values are clamped.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()
	cfg.Clamp()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Clamp brings every parameter into its valid range and normalizes the
// binary inputs to their resolution.
func (c *Config) Clamp() {
	w := &c.WeightedResistor
	w.Resolution = WeightedResolution.ClampInt(w.Resolution)
	w.BinaryInput = converter.NormalizeBits(w.BinaryInput, w.Resolution)
	w.VRef = VRef.Clamp(w.VRef)
	w.RBase = Resistor.Clamp(w.RBase)
	w.RFeedback = Resistor.Clamp(w.RFeedback)

	r := &c.R2RLadder
	r.Resolution = R2RResolution.ClampInt(r.Resolution)
	r.BinaryInput = converter.NormalizeBits(r.BinaryInput, r.Resolution)
	r.VRef = VRef.Clamp(r.VRef)
	r.RValue = UnitR.Clamp(r.RValue)

	a := &c.CounterADC
	a.Resolution = CounterResolution.ClampInt(a.Resolution)
	a.ComparatorResponse = GateDelay.Clamp(a.ComparatorResponse)
	a.ComparatorPropagation = GateDelay.Clamp(a.ComparatorPropagation)
	a.DACSettling = GateDelay.Clamp(a.DACSettling)
	a.ANDGatePropagation = GateDelay.Clamp(a.ANDGatePropagation)

	f := &c.FlashADC
	f.Resolution = FlashResolution.ClampInt(f.Resolution)
	f.ComparatorDelay = GateDelay.Clamp(f.ComparatorDelay)
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.WeightedResistor.Resolution == 0 {
		c.WeightedResistor.Resolution = def.WeightedResistor.Resolution
	}
	if c.WeightedResistor.VRef == 0 {
		c.WeightedResistor.VRef = def.WeightedResistor.VRef
	}
	if c.WeightedResistor.RBase == 0 {
		c.WeightedResistor.RBase = def.WeightedResistor.RBase
	}
	if c.WeightedResistor.RFeedback == 0 {
		c.WeightedResistor.RFeedback = def.WeightedResistor.RFeedback
	}

	if c.R2RLadder.Resolution == 0 {
		c.R2RLadder.Resolution = def.R2RLadder.Resolution
	}
	if c.R2RLadder.VRef == 0 {
		c.R2RLadder.VRef = def.R2RLadder.VRef
	}
	if c.R2RLadder.RValue == 0 {
		c.R2RLadder.RValue = def.R2RLadder.RValue
	}

	if c.CounterADC.Resolution == 0 {
		c.CounterADC.Resolution = def.CounterADC.Resolution
	}
	if c.CounterADC.ComparatorResponse == 0 {
		c.CounterADC.ComparatorResponse = def.CounterADC.ComparatorResponse
	}
	if c.CounterADC.ComparatorPropagation == 0 {
		c.CounterADC.ComparatorPropagation = def.CounterADC.ComparatorPropagation
	}
	if c.CounterADC.DACSettling == 0 {
		c.CounterADC.DACSettling = def.CounterADC.DACSettling
	}
	if c.CounterADC.ANDGatePropagation == 0 {
		c.CounterADC.ANDGatePropagation = def.CounterADC.ANDGatePropagation
	}

	if c.FlashADC.Resolution == 0 {
		c.FlashADC.Resolution = def.FlashADC.Resolution
	}
	if c.FlashADC.ComparatorDelay == 0 {
		c.FlashADC.ComparatorDelay = def.FlashADC.ComparatorDelay
	}

	if c.Display.HistoryPoints == 0 {
		c.Display.HistoryPoints = def.Display.HistoryPoints
	}
	if c.Display.StepInterval == 0 {
		c.Display.StepInterval = def.Display.StepInterval
	}
	if c.Display.MaxAnimSteps == 0 {
		c.Display.MaxAnimSteps = def.Display.MaxAnimSteps
	}
	if c.Display.MaxComparators == 0 {
		c.Display.MaxComparators = def.Display.MaxComparators
	}
	if c.Display.FrameInterval == 0 {
		c.Display.FrameInterval = def.Display.FrameInterval
	}
	if c.Display.MaxDisplayPoints == 0 {
		c.Display.MaxDisplayPoints = def.Display.MaxDisplayPoints
	}
}
