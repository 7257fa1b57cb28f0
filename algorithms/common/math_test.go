package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRMS(t *testing.T) {
	assert.Equal(t, 0.0, RMS(nil))
	assert.Equal(t, 0.5, RMS([]float64{0.5, -0.5, 0.5, -0.5}))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(5.0, 0.0, 1.0))
	assert.Equal(t, 0.0, Clamp(-5.0, 0.0, 1.0))
	assert.Equal(t, 0.3, Clamp(0.3, 0.0, 1.0))
}

func TestParabolicPeak_RecoversVertex(t *testing.T) {
	// Samples of y = -(x-2.3)^2 around its vertex
	f := func(x float64) float64 { return -(x - 2.3) * (x - 2.3) }
	data := []float64{f(0), f(1), f(2), f(3), f(4)}

	assert.InDelta(t, 2.3, ParabolicPeak(data, 2), 1e-9)
}

func TestParabolicPeak_BoundaryReturnsIndex(t *testing.T) {
	data := []float64{3, 2, 1}
	assert.Equal(t, 0.0, ParabolicPeak(data, 0))
	assert.Equal(t, 2.0, ParabolicPeak(data, 2))
}
