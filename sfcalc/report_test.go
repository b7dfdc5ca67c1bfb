package main

import (
	"testing"

	"github.com/itohio/signalforge/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildReport_All(t *testing.T) {
	r, err := buildReport(config.Default(), "all")
	require.NoError(t, err)

	require.NotNil(t, r.WeightedResistor)
	require.NotNil(t, r.R2RLadder)
	require.NotNil(t, r.CounterADC)
	require.NotNil(t, r.FlashADC)

	assert.InDelta(t, -6.25, r.WeightedResistor.OutputVoltage, 1e-9)
	assert.InDelta(t, 3.125, r.R2RLadder.OutputVoltage, 1e-9)
	assert.Equal(t, uint64(256), r.CounterADC.MaxSteps)
	assert.Equal(t, "46.08 µs", r.CounterADC.MaxConversion)
	assert.Equal(t, uint64(15), r.FlashADC.NumComparators)
}

func TestBuildReport_Single(t *testing.T) {
	r, err := buildReport(config.Default(), "flash")
	require.NoError(t, err)

	assert.Nil(t, r.WeightedResistor)
	assert.Nil(t, r.R2RLadder)
	assert.Nil(t, r.CounterADC)
	require.NotNil(t, r.FlashADC)
	assert.Equal(t, uint64(16), r.FlashADC.NumResistors)
}

func TestBuildReport_UnknownArch(t *testing.T) {
	_, err := buildReport(config.Default(), "sar")
	assert.Error(t, err)
}

func TestBuildReport_YAML(t *testing.T) {
	r, err := buildReport(config.Default(), "counter")
	require.NoError(t, err)

	data, err := yaml.Marshal(r)
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))

	require.Contains(t, doc, "counter_adc")
	assert.NotContains(t, doc, "flash_adc")
	assert.Equal(t, 256, doc["counter_adc"]["max_steps"])
	assert.Equal(t, "46.08 µs", doc["counter_adc"]["max_conversion"])
}
