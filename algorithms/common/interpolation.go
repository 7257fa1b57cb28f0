package common

import (
	"math"
)

// ParabolicPeak refines an integer peak index to a fractional position by
// fitting a parabola through the peak and its two neighbors. Returns the
// original index when the peak sits on a boundary or the fit degenerates.
func ParabolicPeak(data []float64, peakIndex int) float64 {
	if peakIndex <= 0 || peakIndex >= len(data)-1 {
		return float64(peakIndex)
	}

	y1 := data[peakIndex-1]
	y2 := data[peakIndex]
	y3 := data[peakIndex+1]

	denom := 2.0 * (2.0*y2 - y1 - y3)
	if math.Abs(denom) < 1e-10 {
		return float64(peakIndex)
	}

	offset := (y3 - y1) / denom
	return float64(peakIndex) + offset
}
