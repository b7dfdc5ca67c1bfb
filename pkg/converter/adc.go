package converter

// HighComponentThreshold is the flash ADC comparator count above which the
// die area and power draw are flagged as impractical.
const HighComponentThreshold = 100

// nanosecond converts delays given in ns to seconds.
const nanosecond = 1e-9

// CounterTypeConfig holds the per-step delays (ns) of a counter-type ADC.
type CounterTypeConfig struct {
	Resolution            int     `yaml:"resolution"`
	ComparatorResponse    float64 `yaml:"comparator_response"`
	ComparatorPropagation float64 `yaml:"comparator_propagation"`
	DACSettling           float64 `yaml:"dac_settling"`
	ANDGatePropagation    float64 `yaml:"and_gate_propagation"`
}

// Delay is one named stage of a counter-type ADC step.
type Delay struct {
	Name  string
	Value float64 // ns
}

// Delays returns the step stages in signal order.
func (c CounterTypeConfig) Delays() []Delay {
	return []Delay{
		{Name: "Comparator Response", Value: c.ComparatorResponse},
		{Name: "Propagation Delay", Value: c.ComparatorPropagation},
		{Name: "DAC Settling", Value: c.DACSettling},
		{Name: "Gate Delay", Value: c.ANDGatePropagation},
	}
}

// CounterTypeResult holds the timing of a counter-type ADC.
type CounterTypeResult struct {
	TotalDelayPerStep float64 `yaml:"total_delay_per_step"` // ns
	MaxSteps          uint64  `yaml:"max_steps"`
	AvgSteps          uint64  `yaml:"avg_steps"`
	MaxConversionTime float64 `yaml:"max_conversion_time"` // ns
	AvgConversionTime float64 `yaml:"avg_conversion_time"` // ns
	MaxFrequency      float64 `yaml:"max_frequency"`       // Hz, Nyquist limit at worst case
	AvgFrequency      float64 `yaml:"avg_frequency"`       // Hz, Nyquist limit at average case
}

// CounterType evaluates a counter-type (ramp) ADC, which needs up to 2^N
// clock steps per conversion. The average case assumes a uniformly
// distributed input, i.e. half the maximum step count.
func CounterType(cfg CounterTypeConfig) CounterTypeResult {
	total := cfg.ComparatorResponse + cfg.ComparatorPropagation + cfg.DACSettling + cfg.ANDGatePropagation
	steps := levels(cfg.Resolution)

	maxTime := total * steps
	avgTime := total * steps / 2

	return CounterTypeResult{
		TotalDelayPerStep: total,
		MaxSteps:          uint64(steps),
		AvgSteps:          uint64(steps) / 2,
		MaxConversionTime: maxTime,
		AvgConversionTime: avgTime,
		MaxFrequency:      nyquist(maxTime),
		AvgFrequency:      nyquist(avgTime),
	}
}

// FlashConfig holds the inputs of a flash (parallel) ADC.
type FlashConfig struct {
	Resolution      int     `yaml:"resolution"`
	ComparatorDelay float64 `yaml:"comparator_delay"` // ns
}

// FlashResult holds the component count and timing of a flash ADC.
type FlashResult struct {
	NumComparators     uint64  `yaml:"num_comparators"`
	NumResistors       uint64  `yaml:"num_resistors"`
	ConversionTime     float64 `yaml:"conversion_time"` // ns
	MaxFrequency       float64 `yaml:"max_frequency"`   // Hz
	HighComponentCount bool    `yaml:"high_component_count"`
}

// Flash evaluates a flash ADC. All comparators switch in parallel, so the
// conversion time is a single comparator delay regardless of resolution.
func Flash(cfg FlashConfig) FlashResult {
	n := MaxCode(cfg.Resolution)

	return FlashResult{
		NumComparators:     n,
		NumResistors:       n + 1,
		ConversionTime:     cfg.ComparatorDelay,
		MaxFrequency:       nyquist(cfg.ComparatorDelay),
		HighComponentCount: n > HighComponentThreshold,
	}
}

// nyquist returns the highest signal frequency (Hz) that a converter with
// the given conversion time (ns) can sample.
func nyquist(conversionNs float64) float64 {
	return 1 / (2 * conversionNs * nanosecond)
}
