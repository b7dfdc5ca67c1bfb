package converter

import (
	"fmt"
	"strconv"
)

// FormatFrequency scales hz to Hz, kHz, MHz or GHz with two decimals.
func FormatFrequency(hz float64) (value string, unit string) {
	switch {
	case hz >= 1e9:
		return strconv.FormatFloat(hz/1e9, 'f', 2, 64), "GHz"
	case hz >= 1e6:
		return strconv.FormatFloat(hz/1e6, 'f', 2, 64), "MHz"
	case hz >= 1e3:
		return strconv.FormatFloat(hz/1e3, 'f', 2, 64), "kHz"
	default:
		return strconv.FormatFloat(hz, 'f', 2, 64), "Hz"
	}
}

// FormatNanoseconds renders a duration given in ns as ns, µs or ms.
func FormatNanoseconds(ns float64) string {
	switch {
	case ns >= 1e6:
		return fmt.Sprintf("%.2f ms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.2f µs", ns/1e3)
	default:
		return strconv.FormatFloat(ns, 'f', -1, 64) + " ns"
	}
}

// FormatResistance renders ohms as Ω or kΩ.
func FormatResistance(ohms float64) string {
	if ohms >= 1000 {
		return strconv.FormatFloat(ohms/1000, 'f', -1, 64) + "kΩ"
	}
	return strconv.FormatFloat(ohms, 'f', -1, 64) + "Ω"
}

// FormatVoltage renders v with four decimals.
func FormatVoltage(v float64) string {
	return fmt.Sprintf("%.4f V", v)
}
