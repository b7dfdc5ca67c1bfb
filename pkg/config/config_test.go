package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, 4, cfg.WeightedResistor.Resolution)
	assert.Equal(t, "1010", cfg.WeightedResistor.BinaryInput)
	assert.Equal(t, float64(5), cfg.WeightedResistor.VRef)
	assert.Equal(t, float64(1000), cfg.WeightedResistor.RBase)
	assert.Equal(t, float64(1000), cfg.WeightedResistor.RFeedback)
	assert.Equal(t, float64(10000), cfg.R2RLadder.RValue)
	assert.Equal(t, 8, cfg.CounterADC.Resolution)
	assert.Equal(t, float64(50), cfg.CounterADC.ComparatorResponse)
	assert.Equal(t, float64(20), cfg.CounterADC.ComparatorPropagation)
	assert.Equal(t, float64(100), cfg.CounterADC.DACSettling)
	assert.Equal(t, float64(10), cfg.CounterADC.ANDGatePropagation)
	assert.Equal(t, 4, cfg.FlashADC.Resolution)
	assert.Equal(t, float64(5), cfg.FlashADC.ComparatorDelay)
	assert.Equal(t, 100, cfg.Display.HistoryPoints)
	assert.Equal(t, 200*time.Millisecond, cfg.Display.StepInterval)
	assert.Equal(t, 16, cfg.Display.MaxAnimSteps)
	assert.Equal(t, 63, cfg.Display.MaxComparators)
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
weighted_resistor:
  resolution: 6
  binary_input: "110011"
  vref: 3.3
  r_base: 2200
  r_feedback: 4700

r2r_ladder:
  resolution: 12
  binary_input: "11"
  vref: 2.5
  r_value: 4700

counter_adc:
  resolution: 10
  comparator_response: 40
  comparator_propagation: 15
  dac_settling: 80
  and_gate_propagation: 5

flash_adc:
  resolution: 8
  comparator_delay: 2.5

display:
  history_points: 50
  step_interval: 100ms
  frame_interval: 33ms
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, 6, cfg.WeightedResistor.Resolution)
	assert.Equal(t, "110011", cfg.WeightedResistor.BinaryInput)
	assert.Equal(t, 3.3, cfg.WeightedResistor.VRef)
	assert.Equal(t, float64(2200), cfg.WeightedResistor.RBase)
	assert.Equal(t, float64(4700), cfg.WeightedResistor.RFeedback)

	assert.Equal(t, 12, cfg.R2RLadder.Resolution)
	assert.Equal(t, "000000000011", cfg.R2RLadder.BinaryInput) // padded to resolution
	assert.Equal(t, 2.5, cfg.R2RLadder.VRef)

	assert.Equal(t, 10, cfg.CounterADC.Resolution)
	assert.Equal(t, float64(80), cfg.CounterADC.DACSettling)
	assert.Equal(t, 8, cfg.FlashADC.Resolution)
	assert.Equal(t, 2.5, cfg.FlashADC.ComparatorDelay)

	assert.Equal(t, 50, cfg.Display.HistoryPoints)
	assert.Equal(t, 100*time.Millisecond, cfg.Display.StepInterval)
	assert.Equal(t, 33*time.Millisecond, cfg.Display.FrameInterval)
	assert.Equal(t, 16, cfg.Display.MaxAnimSteps) // default
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PartialYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
flash_adc:
  resolution: 6
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// Should use defaults for missing fields
	assert.Equal(t, 6, cfg.FlashADC.Resolution)
	assert.Equal(t, float64(5), cfg.FlashADC.ComparatorDelay)      // default
	assert.Equal(t, float64(1000), cfg.WeightedResistor.RBase)      // default
	assert.Equal(t, float64(100), cfg.CounterADC.DACSettling)       // default
	assert.Equal(t, 200*time.Millisecond, cfg.Display.StepInterval) // default
}

func TestLoad_ZeroFieldsUseDefaults(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
weighted_resistor:
  resolution: 0
  vref: 0
counter_adc:
  dac_settling: 0
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.WeightedResistor.Resolution)
	assert.Equal(t, float64(5), cfg.WeightedResistor.VRef)
	assert.Equal(t, float64(100), cfg.CounterADC.DACSettling)
}

func TestLoad_OutOfRangeIsClamped(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
weighted_resistor:
  resolution: 20
  r_base: 10
flash_adc:
  resolution: 1
  comparator_delay: -3
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.WeightedResistor.Resolution)
	assert.Len(t, cfg.WeightedResistor.BinaryInput, 12)
	assert.Equal(t, float64(100), cfg.WeightedResistor.RBase)
	assert.Equal(t, 2, cfg.FlashADC.Resolution)
	assert.Equal(t, float64(1), cfg.FlashADC.ComparatorDelay)
}

func TestSave(t *testing.T) {
	cfg := Default()
	cfg.R2RLadder.BinaryInput = "0110"
	cfg.CounterADC.Resolution = 12
	cfg.Display.StepInterval = 500 * time.Millisecond

	tmpfile, err := os.CreateTemp("", "test_save_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	err = cfg.Save(tmpfile.Name())
	require.NoError(t, err)

	// Load it back and verify
	loaded, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.Equal(t, "0110", loaded.R2RLadder.BinaryInput)
	assert.Equal(t, 12, loaded.CounterADC.Resolution)
	assert.Equal(t, 500*time.Millisecond, loaded.Display.StepInterval)
}

func TestClamp(t *testing.T) {
	cfg := Default()
	cfg.WeightedResistor.Resolution = 1
	cfg.WeightedResistor.BinaryInput = "111"
	cfg.WeightedResistor.VRef = 0
	cfg.WeightedResistor.RFeedback = 5
	cfg.R2RLadder.Resolution = 17
	cfg.R2RLadder.RValue = 0
	cfg.CounterADC.Resolution = 3
	cfg.CounterADC.ANDGatePropagation = 0.5
	cfg.FlashADC.Resolution = 11

	cfg.Clamp()

	assert.Equal(t, 2, cfg.WeightedResistor.Resolution)
	assert.Equal(t, "11", cfg.WeightedResistor.BinaryInput)
	assert.Equal(t, 0.1, cfg.WeightedResistor.VRef)
	assert.Equal(t, float64(100), cfg.WeightedResistor.RFeedback)
	assert.Equal(t, 16, cfg.R2RLadder.Resolution)
	assert.Len(t, cfg.R2RLadder.BinaryInput, 16)
	assert.Equal(t, float64(1), cfg.R2RLadder.RValue)
	assert.Equal(t, 4, cfg.CounterADC.Resolution)
	assert.Equal(t, float64(1), cfg.CounterADC.ANDGatePropagation)
	assert.Equal(t, 10, cfg.FlashADC.Resolution)
}

func TestRange_Clamp(t *testing.T) {
	r := Range{Min: 2, Max: 10}
	assert.Equal(t, float64(2), r.Clamp(-1))
	assert.Equal(t, float64(5), r.Clamp(5))
	assert.Equal(t, float64(10), r.Clamp(99))
	assert.Equal(t, 10, r.ClampInt(12))

	unbounded := Range{Min: 1}
	assert.Equal(t, 1e9, unbounded.Clamp(1e9))
}
