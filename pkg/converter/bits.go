package converter

import (
	"math"
	"strings"
)

// NormalizeBits left-pads bits with '0' up to resolution characters and then
// keeps the first resolution characters. Index 0 is the MSB.
func NormalizeBits(bits string, resolution int) string {
	if resolution <= 0 {
		return ""
	}
	if len(bits) < resolution {
		bits = strings.Repeat("0", resolution-len(bits)) + bits
	}
	return bits[:resolution]
}

// DecimalValue returns the unsigned MSB-first value of bits.
// Any character other than '1' counts as 0.
func DecimalValue(bits string) uint64 {
	var v uint64
	for i := 0; i < len(bits); i++ {
		v <<= 1
		if bits[i] == '1' {
			v |= 1
		}
	}
	return v
}

// MaxCode returns the largest code representable with resolution bits (2^N - 1).
func MaxCode(resolution int) uint64 {
	return uint64(1)<<uint(resolution) - 1
}

// levels returns 2^n as float64.
func levels(n int) float64 {
	return math.Ldexp(1, n)
}

// ToggleBit flips the bit at index i (0 = MSB) of the normalized bit string.
func ToggleBit(bits string, resolution, i int) string {
	b := []byte(NormalizeBits(bits, resolution))
	if i < 0 || i >= len(b) {
		return string(b)
	}
	if b[i] == '1' {
		b[i] = '0'
	} else {
		b[i] = '1'
	}
	return string(b)
}
