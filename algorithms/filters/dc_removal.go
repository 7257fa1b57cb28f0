package filters

// DCRemoval implements a DC blocking filter (first-order high-pass) to remove
// the DC component from microphone frames before loudness gating and
// autocorrelation. A constant offset inflates RMS and the zero-lag energy
// terms, so frames are blocked before any downstream analysis.
//
// Difference equation: y[n] = x[n] - x[n-1] + R * y[n-1]
type DCRemoval struct {
	poleLocation float64 // R parameter (0 < R < 1)

	// State variables
	x1 float64 // Previous input sample x[n-1]
	y1 float64 // Previous output sample y[n-1]
}

// NewDCRemoval creates a new DC removal filter with default settings.
// Uses a pole location of 0.9995, which gives a cutoff frequency of
// approximately 3.5 Hz at 44.1 kHz sample rate, so the low E string at
// 82.41 Hz passes with no measurable attenuation.
func NewDCRemoval() *DCRemoval {
	return &DCRemoval{poleLocation: 0.9995}
}

// NewDCRemovalWithPole creates a DC removal filter with an explicit pole
// location. Closer to 1 means a lower cutoff (more DC blocking).
func NewDCRemovalWithPole(poleLocation float64) *DCRemoval {
	if poleLocation <= 0 || poleLocation >= 1 {
		return NewDCRemoval()
	}
	return &DCRemoval{poleLocation: poleLocation}
}

// Process applies DC removal to a single sample
func (dc *DCRemoval) Process(input float64) float64 {
	output := input - dc.x1 + dc.poleLocation*dc.y1

	dc.x1 = input
	dc.y1 = output

	return output
}

// ProcessBuffer applies DC removal to an entire buffer of samples
func (dc *DCRemoval) ProcessBuffer(input []float64) []float64 {
	output := make([]float64, len(input))
	for i, sample := range input {
		output[i] = dc.Process(sample)
	}
	return output
}

// Reset clears the filter's internal state.
// Call this when processing discontinuous audio segments.
func (dc *DCRemoval) Reset() {
	dc.x1 = 0.0
	dc.y1 = 0.0
}

// PoleLocation returns the current pole location parameter
func (dc *DCRemoval) PoleLocation() float64 {
	return dc.poleLocation
}
