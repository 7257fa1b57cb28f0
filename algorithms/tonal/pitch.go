package tonal

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/strumline/strumline/algorithms/common"
	"github.com/strumline/strumline/algorithms/filters"
	"github.com/strumline/strumline/algorithms/spectral"
	"github.com/strumline/strumline/algorithms/temporal"
	"github.com/strumline/strumline/algorithms/windowing"
)

// subharmonicRatio selects the shortest correlation lag whose peak is at
// least this fraction of the strongest peak, so a strong peak at twice the
// true period cannot drag the estimate an octave down.
const subharmonicRatio = 0.85

// fftPeakProminence is how far the in-band FFT peak must stand above the
// mean magnitude of the whole spectrum before the fallback path trusts it.
// Comparing against the full spectrum keeps window-leakage ripple from an
// out-of-band tone from passing as an in-band fundamental.
const fftPeakProminence = 4.0

// PitchEstimatorConfig holds the tunable parameters of the estimator
type PitchEstimatorConfig struct {
	MinFrequency float64 `json:"min_frequency"` // Lower edge of the detection band (Hz)
	MaxFrequency float64 `json:"max_frequency"` // Upper edge of the detection band (Hz)

	// MinConfidence is the normalized-correlation floor below which a best
	// lag is rejected. Raising it trades detection latency for fewer octave
	// and harmonic false positives; 0.35 works well for plucked strings.
	MinConfidence float64 `json:"min_confidence"`

	GateRMSFloor float64 `json:"gate_rms_floor"` // RMS noise floor for the signal gate
}

// DefaultPitchEstimatorConfig returns defaults tuned for guitar strings
func DefaultPitchEstimatorConfig() PitchEstimatorConfig {
	return PitchEstimatorConfig{
		MinFrequency:  50.0,
		MaxFrequency:  400.0,
		MinConfidence: 0.35,
		GateRMSFloor:  0.01,
	}
}

// PitchEstimator estimates the fundamental frequency of a single audio
// frame. The primary path is normalized autocorrelation over the lag range
// implied by the frequency band; when its best peak is not confident enough
// an FFT magnitude peak with parabolic interpolation serves as fallback.
// Frames that fail the loudness gate, produce no confident peak, or resolve
// outside the band yield no pitch, which is a normal outcome rather than an
// error.
type PitchEstimator struct {
	config   PitchEstimatorConfig
	gate     *temporal.SignalGate
	dcFilter *filters.DCRemoval
	fft      *spectral.FFT

	// Hann window cache, rebuilt when the frame size changes
	window *windowing.Hann
}

// NewPitchEstimator creates a pitch estimator with the given configuration
func NewPitchEstimator(config PitchEstimatorConfig) *PitchEstimator {
	return &PitchEstimator{
		config:   config,
		gate:     temporal.NewSignalGate(config.GateRMSFloor),
		dcFilter: filters.NewDCRemoval(),
		fft:      spectral.NewFFT(),
	}
}

// Estimate returns the fundamental frequency of the frame in Hz.
// The boolean is false when the frame carries no reliable pitch.
func (pe *PitchEstimator) Estimate(frame []float64, sampleRate int) (float64, bool) {
	if len(frame) == 0 || sampleRate <= 0 {
		return 0.0, false
	}

	cleaned := pe.dcFilter.ProcessBuffer(frame)

	if !pe.gate.Admit(cleaned) {
		return 0.0, false
	}

	freq, confidence := pe.estimateAutocorrelation(cleaned, sampleRate)
	if confidence >= pe.config.MinConfidence && pe.inBand(freq) {
		return freq, true
	}

	freq = pe.estimateFFTPeak(cleaned, sampleRate)
	if pe.inBand(freq) {
		return freq, true
	}

	return 0.0, false
}

// inBand reports whether a frequency falls inside the detection band
func (pe *PitchEstimator) inBand(freq float64) bool {
	return freq >= pe.config.MinFrequency && freq <= pe.config.MaxFrequency
}

// estimateAutocorrelation finds the repetition period via normalized
// cross-correlation of the frame with itself:
//
//	corr(L) = sum x[i]*x[i+L] / sqrt(sum x[i]^2 * sum x[i+L]^2)
//
// Returns the lag-derived frequency and the peak correlation value.
func (pe *PitchEstimator) estimateAutocorrelation(signal []float64, sampleRate int) (float64, float64) {
	minLag := int(float64(sampleRate) / pe.config.MaxFrequency)
	maxLag := int(float64(sampleRate) / pe.config.MinFrequency)

	if minLag < 2 {
		minLag = 2
	}
	if maxLag > len(signal)/2 {
		maxLag = len(signal) / 2
	}
	if minLag >= maxLag {
		return 0.0, 0.0
	}

	corr := make([]float64, maxLag+1)
	for lag := minLag; lag <= maxLag; lag++ {
		head := signal[:len(signal)-lag]
		tail := signal[lag:]

		num := floats.Dot(head, tail)
		energyProduct := floats.Dot(head, head) * floats.Dot(tail, tail)
		if energyProduct <= 1e-20 {
			continue
		}

		corr[lag] = num / math.Sqrt(energyProduct)
	}

	bestLag, bestValue := pe.pickFundamentalLag(corr, minLag, maxLag)
	if bestLag == 0 {
		return 0.0, 0.0
	}

	refinedLag := common.ParabolicPeak(corr, bestLag)
	if refinedLag <= 0 {
		return 0.0, 0.0
	}

	return float64(sampleRate) / refinedLag, bestValue
}

// pickFundamentalLag finds the strongest local maximum in the correlation,
// then prefers the shortest lag whose peak comes within subharmonicRatio of
// it. For a periodic signal peaks repeat at every multiple of the true
// period; the shortest qualifying lag is the fundamental.
func (pe *PitchEstimator) pickFundamentalLag(corr []float64, minLag, maxLag int) (int, float64) {
	strongest := 0.0
	for lag := minLag; lag <= maxLag && lag < len(corr)-1; lag++ {
		if corr[lag] > corr[lag-1] && corr[lag] > corr[lag+1] && corr[lag] > strongest {
			strongest = corr[lag]
		}
	}

	if strongest <= 0.0 {
		return 0, 0.0
	}

	for lag := minLag; lag <= maxLag && lag < len(corr)-1; lag++ {
		if corr[lag] > corr[lag-1] && corr[lag] > corr[lag+1] &&
			corr[lag] >= subharmonicRatio*strongest {
			return lag, corr[lag]
		}
	}

	return 0, 0.0
}

// estimateFFTPeak estimates frequency from the strongest in-band magnitude
// bin of the Hann-windowed spectrum, refined with parabolic interpolation
// across the three bins around the peak. Returns 0 when no in-band bin
// stands out from the spectrum as a whole.
func (pe *PitchEstimator) estimateFFTPeak(signal []float64, sampleRate int) float64 {
	if pe.window == nil || pe.window.Size() != len(signal) {
		pe.window = windowing.NewHann(len(signal))
	}

	magnitude := pe.fft.Magnitude(pe.window.Apply(signal))
	if len(magnitude) < 3 {
		return 0.0
	}

	binWidth := float64(sampleRate) / float64(len(signal))
	minBin := int(pe.config.MinFrequency / binWidth)
	maxBin := int(pe.config.MaxFrequency / binWidth)

	if minBin < 1 {
		minBin = 1
	}
	if maxBin > len(magnitude)-2 {
		maxBin = len(magnitude) - 2
	}
	if minBin >= maxBin {
		return 0.0
	}

	peakBin := 0
	peakValue := 0.0
	for bin := minBin; bin <= maxBin; bin++ {
		if magnitude[bin] > magnitude[bin-1] && magnitude[bin] > magnitude[bin+1] &&
			magnitude[bin] > peakValue {
			peakValue = magnitude[bin]
			peakBin = bin
		}
	}

	if peakBin == 0 {
		return 0.0
	}

	if peakValue < fftPeakProminence*common.Mean(magnitude) {
		return 0.0
	}

	refinedBin := common.ParabolicPeak(magnitude, peakBin)
	return pe.fft.BinFrequency(refinedBin, len(signal), sampleRate)
}

// Reset clears the DC filter state.
// Call between discontinuous audio segments.
func (pe *PitchEstimator) Reset() {
	pe.dcFilter.Reset()
}
