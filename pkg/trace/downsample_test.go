package trace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownsample_NoDownsampling(t *testing.T) {
	now := time.Now()
	points := []Point{
		{Timestamp: now, Voltage: 1.0},
		{Timestamp: now.Add(100 * time.Millisecond), Voltage: 1.1},
		{Timestamp: now.Add(200 * time.Millisecond), Voltage: 1.2},
	}

	// Test with nil dst
	result := Downsample(nil, points, 10)
	require.Equal(t, 3, len(result))
	assert.Equal(t, points, result)

	// Test with sufficient capacity dst
	dst := make([]Point, 0, 10)
	result = Downsample(dst, points, 10)
	require.Equal(t, 3, len(result))
	assert.Equal(t, points, result)
	// Should reuse dst
	assert.Equal(t, cap(dst), cap(result))
}

func TestDownsample_WithDownsampling(t *testing.T) {
	now := time.Now()
	points := make([]Point, 100)
	for i := 0; i < 100; i++ {
		points[i] = Point{
			Timestamp: now.Add(time.Duration(i) * 10 * time.Millisecond),
			Voltage:   float64(i) * 0.01,
		}
	}

	dst := make([]Point, 0, 20)
	result := Downsample(dst, points, 10)
	require.Equal(t, 10, len(result))
	assert.Equal(t, cap(dst), cap(result))

	// Should always include first point
	assert.Equal(t, points[0], result[0])
	assert.Equal(t, points[90], result[9])

	for i := 1; i < len(result); i++ {
		assert.True(t, result[i].Timestamp.After(result[i-1].Timestamp))
	}
}

func TestDownsample_SmallDst(t *testing.T) {
	points := make([]Point, 50)
	for i := range points {
		points[i] = Point{Voltage: float64(i)}
	}

	dst := make([]Point, 0, 2)
	result := Downsample(dst, points, 5)
	require.Len(t, result, 5)
	assert.Equal(t, 10.0, result[1].Voltage)
}

func TestDownsample_Empty(t *testing.T) {
	result := Downsample(nil, nil, 10)
	assert.Len(t, result, 0)
}
