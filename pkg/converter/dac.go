package converter

// HighRatioThreshold is the weighted-resistor range ratio above which matching
// the resistor network becomes impractical to manufacture.
const HighRatioThreshold = 1000

// WeightedResistorConfig holds the inputs of a binary weighted-resistor DAC.
type WeightedResistorConfig struct {
	Resolution  int     `yaml:"resolution"`
	BinaryInput string  `yaml:"binary_input"`
	VRef        float64 `yaml:"vref"`       // Reference voltage (V)
	RBase       float64 `yaml:"r_base"`     // MSB resistor (Ω)
	RFeedback   float64 `yaml:"r_feedback"` // Op-amp feedback resistor (Ω)
}

// Resistor is one branch of the weighted-resistor network.
type Resistor struct {
	Value  float64 `yaml:"value"` // Ω
	Active bool    `yaml:"active"`
}

// WeightedResistorResult holds the derived outputs of a weighted-resistor DAC.
type WeightedResistorResult struct {
	Bits          string     `yaml:"bits"`
	DecimalValue  uint64     `yaml:"decimal_value"`
	MaxValue      uint64     `yaml:"max_value"`
	Resistors     []Resistor `yaml:"resistors"`
	Current       float64    `yaml:"current"`        // Summed branch current (A)
	OutputVoltage float64    `yaml:"output_voltage"` // Inverting amplifier output (V), negative
	ResistorRange float64    `yaml:"resistor_range"` // LSB resistor (Ω)
	RangeRatio    float64    `yaml:"range_ratio"`
	HighRatio     bool       `yaml:"high_ratio"`
}

// WeightedResistor evaluates a weighted-resistor DAC.
// Bit i (0 = MSB) drives a resistor of RBase*2^i into the op-amp summing node.
func WeightedResistor(cfg WeightedResistorConfig) WeightedResistorResult {
	bits := NormalizeBits(cfg.BinaryInput, cfg.Resolution)

	res := WeightedResistorResult{
		Bits:         bits,
		DecimalValue: DecimalValue(bits),
		MaxValue:     MaxCode(cfg.Resolution),
		Resistors:    make([]Resistor, len(bits)),
	}

	for i := 0; i < len(bits); i++ {
		r := cfg.RBase * levels(i)
		active := bits[i] == '1'
		res.Resistors[i] = Resistor{Value: r, Active: active}
		if active {
			res.Current += cfg.VRef / r
		}
	}

	res.OutputVoltage = -cfg.RFeedback * res.Current
	res.ResistorRange = cfg.RBase * levels(cfg.Resolution-1)
	res.RangeRatio = res.ResistorRange / cfg.RBase
	res.HighRatio = res.RangeRatio > HighRatioThreshold

	return res
}

// R2RLadderConfig holds the inputs of an R-2R ladder DAC.
type R2RLadderConfig struct {
	Resolution  int     `yaml:"resolution"`
	BinaryInput string  `yaml:"binary_input"`
	VRef        float64 `yaml:"vref"`    // Reference voltage (V)
	RValue      float64 `yaml:"r_value"` // Unit resistor R (Ω), informational
}

// R2RLadderResult holds the derived outputs of an R-2R ladder DAC.
type R2RLadderResult struct {
	Bits          string  `yaml:"bits"`
	DecimalValue  uint64  `yaml:"decimal_value"`
	MaxValue      uint64  `yaml:"max_value"`
	OutputVoltage float64 `yaml:"output_voltage"` // V
	LSBVoltage    float64 `yaml:"lsb_voltage"`    // V per code
	RCount        int     `yaml:"r_count"`
	TwoRCount     int     `yaml:"two_r_count"`
	RValue        float64 `yaml:"r_value"`
	TwoRValue     float64 `yaml:"two_r_value"`
}

// R2RLadder evaluates an R-2R ladder DAC: Vout = VRef * D / 2^N.
// The network only ever needs a 2:1 resistor ratio, whatever the resolution.
func R2RLadder(cfg R2RLadderConfig) R2RLadderResult {
	bits := NormalizeBits(cfg.BinaryInput, cfg.Resolution)
	d := DecimalValue(bits)
	full := levels(cfg.Resolution)

	return R2RLadderResult{
		Bits:          bits,
		DecimalValue:  d,
		MaxValue:      MaxCode(cfg.Resolution),
		OutputVoltage: cfg.VRef * float64(d) / full,
		LSBVoltage:    cfg.VRef / full,
		RCount:        cfg.Resolution,
		TwoRCount:     cfg.Resolution + 1,
		RValue:        cfg.RValue,
		TwoRValue:     2 * cfg.RValue,
	}
}
