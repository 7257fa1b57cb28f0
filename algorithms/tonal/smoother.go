package tonal

import (
	"math"
)

// Smoother low-pass-filters successive raw pitch estimates into a stable
// working frequency using exponential smoothing. A raw value that jumps more
// than jumpRatio of the current smoothed value signals a new note rather
// than jitter, and is tracked with the larger jumpAlpha so the smoother does
// not lag behind a genuine pitch change.
type Smoother struct {
	alpha     float64
	jumpAlpha float64
	jumpRatio float64

	value  float64
	primed bool
}

// NewSmoother creates a smoother with the given base alpha, jump alpha and
// relative jump threshold
func NewSmoother(alpha, jumpAlpha, jumpRatio float64) *Smoother {
	return &Smoother{
		alpha:     alpha,
		jumpAlpha: jumpAlpha,
		jumpRatio: jumpRatio,
	}
}

// Smooth folds a raw estimate into the smoothed value and returns it.
// The first estimate after a reset initializes the smoothed value directly.
func (s *Smoother) Smooth(raw float64) float64 {
	if !s.primed {
		s.value = raw
		s.primed = true
		return s.value
	}

	a := s.alpha
	if math.Abs(raw-s.value) > s.value*s.jumpRatio {
		a = s.jumpAlpha
	}

	s.value += (raw - s.value) * a
	return s.value
}

// Value returns the current smoothed frequency and whether one exists
func (s *Smoother) Value() (float64, bool) {
	return s.value, s.primed
}

// Reset clears the smoothing memory. A silence gap must not leak into the
// next detected note's initial smoothed value, so silence resets rather than
// decays.
func (s *Smoother) Reset() {
	s.value = 0.0
	s.primed = false
}
