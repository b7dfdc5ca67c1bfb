package main

import (
	"fmt"

	"github.com/itohio/signalforge/pkg/config"
	"github.com/itohio/signalforge/pkg/converter"
)

// Architectures accepted by -arch.
const (
	archAll      = "all"
	archWeighted = "weighted"
	archR2R      = "r2r"
	archCounter  = "counter"
	archFlash    = "flash"
)

// report is the YAML document printed to stdout. Only the requested
// architectures are filled in.
type report struct {
	WeightedResistor *converter.WeightedResistorResult `yaml:"weighted_resistor,omitempty"`
	R2RLadder        *converter.R2RLadderResult        `yaml:"r2r_ladder,omitempty"`
	CounterADC       *counterReport                    `yaml:"counter_adc,omitempty"`
	FlashADC         *converter.FlashResult            `yaml:"flash_adc,omitempty"`
}

// counterReport adds human readable timings to the raw counter result.
type counterReport struct {
	converter.CounterTypeResult `yaml:",inline"`

	MaxConversion string `yaml:"max_conversion"`
	AvgConversion string `yaml:"avg_conversion"`
	MaxRate       string `yaml:"max_rate"`
	AvgRate       string `yaml:"avg_rate"`
}

func frequency(hz float64) string {
	v, unit := converter.FormatFrequency(hz)
	return v + " " + unit
}

// buildReport evaluates the requested architecture(s) for cfg.
func buildReport(cfg *config.Config, arch string) (*report, error) {
	var r report
	all := arch == archAll

	switch arch {
	case archAll, archWeighted, archR2R, archCounter, archFlash:
	default:
		return nil, fmt.Errorf("unknown architecture %q", arch)
	}

	if all || arch == archWeighted {
		res := converter.WeightedResistor(cfg.WeightedResistor)
		r.WeightedResistor = &res
	}
	if all || arch == archR2R {
		res := converter.R2RLadder(cfg.R2RLadder)
		r.R2RLadder = &res
	}
	if all || arch == archCounter {
		res := converter.CounterType(cfg.CounterADC)
		r.CounterADC = &counterReport{
			CounterTypeResult: res,
			MaxConversion:     converter.FormatNanoseconds(res.MaxConversionTime),
			AvgConversion:     converter.FormatNanoseconds(res.AvgConversionTime),
			MaxRate:           frequency(res.MaxFrequency),
			AvgRate:           frequency(res.AvgFrequency),
		}
	}
	if all || arch == archFlash {
		res := converter.Flash(cfg.FlashADC)
		r.FlashADC = &res
	}

	return &r, nil
}
