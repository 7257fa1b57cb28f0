package temporal

import (
	"github.com/strumline/strumline/algorithms/common"
)

// SignalGate decides whether a frame carries usable signal by comparing its
// RMS loudness against a fixed noise floor. The floor is tuned to pass
// plucked-string energy while rejecting room noise and silence.
type SignalGate struct {
	rmsFloor float64
}

// NewSignalGate creates a gate with the given RMS noise floor
func NewSignalGate(rmsFloor float64) *SignalGate {
	return &SignalGate{rmsFloor: rmsFloor}
}

// Admit reports whether the frame's RMS loudness clears the noise floor.
// An empty frame never clears the floor.
func (g *SignalGate) Admit(frame []float64) bool {
	if len(frame) == 0 {
		return false
	}
	return common.RMS(frame) >= g.rmsFloor
}

// Floor returns the configured RMS noise floor
func (g *SignalGate) Floor() float64 {
	return g.rmsFloor
}
