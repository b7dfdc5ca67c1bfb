// Package converter evaluates DAC and ADC converter architectures.
//
// Every function is a pure, closed-form mapping from a configuration to its
// derived outputs. Nothing is cached and no input is validated: callers clamp
// parameters into the documented ranges (see pkg/config) before calling.
package converter
