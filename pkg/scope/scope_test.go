package scope

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/itohio/signalforge/pkg/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelY(t *testing.T) {
	const h = 150

	// Zero sits on the bottom margin, full scale on the top margin.
	assert.InDelta(t, 142.5, levelY(0, 5, h), 1e-4)
	assert.InDelta(t, 7.5, levelY(5, 5, h), 1e-4)
	assert.InDelta(t, 75, levelY(2.5, 5, h), 1e-4)

	// Inverting DAC outputs are negative; magnitude is drawn and capped.
	assert.InDelta(t, 7.5, levelY(-6.25, 5, h), 1e-4)
}

func TestTracePos(t *testing.T) {
	size := fyne.NewSize(400, 150)

	p := tracePos(0, 100, 0, 5, size)
	assert.Equal(t, float32(0), p.X)

	p = tracePos(50, 100, 5, 5, size)
	assert.InDelta(t, 200, p.X, 1e-4)
	assert.InDelta(t, 7.5, p.Y, 1e-4)
}

func TestLayoutBars(t *testing.T) {
	delays := converter.CounterTypeConfig{
		ComparatorResponse:    50,
		ComparatorPropagation: 20,
		DACSettling:           100,
		ANDGatePropagation:    10,
	}.Delays()

	bars := layoutBars(delays, 500)
	require.Len(t, bars, 4)

	// 460px span shared 50:20:100:10 out of 180
	assert.InDelta(t, 20, bars[0].X, 1e-3)
	assert.InDelta(t, 460*50.0/180, bars[0].Width, 1e-3)
	assert.InDelta(t, bars[0].X+bars[0].Width, bars[1].X, 1e-3)

	last := bars[len(bars)-1]
	assert.InDelta(t, 480, last.X+last.Width, 1e-3)
}

func TestLayoutBars_ZeroTotal(t *testing.T) {
	bars := layoutBars([]converter.Delay{{Name: "a"}, {Name: "b"}}, 500)
	require.Len(t, bars, 2)
	assert.Equal(t, bar{}, bars[0])
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, float32(0), clamp01(-0.5))
	assert.Equal(t, float32(0.25), clamp01(0.25))
	assert.Equal(t, float32(1), clamp01(3))
}
