package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT provides Fast Fourier Transform functionality
type FFT struct {
	// No state needed for now
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the Fast Fourier Transform using mjibson/go-dsp.
// Takes []float64 input and returns []complex128 output.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	// mjibson/go-dsp handles all sizes efficiently, including non-power-of-2
	return fft.FFTReal(x)
}

// Magnitude computes the single-sided magnitude spectrum of a real signal.
// The result has len(x)/2+1 bins; bin k corresponds to k*sampleRate/len(x) Hz.
func (f *FFT) Magnitude(x []float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	spectrum := f.Compute(x)
	bins := len(x)/2 + 1
	if bins > len(spectrum) {
		bins = len(spectrum)
	}

	magnitude := make([]float64, bins)
	for i := 0; i < bins; i++ {
		magnitude[i] = cmplx.Abs(spectrum[i])
	}

	return magnitude
}

// BinFrequency converts a (possibly fractional) bin index to frequency in Hz
func (f *FFT) BinFrequency(bin float64, fftSize, sampleRate int) float64 {
	if fftSize <= 0 {
		return 0.0
	}
	return bin * float64(sampleRate) / float64(fftSize)
}
