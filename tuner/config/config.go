package config

import (
	"fmt"
	"time"
)

// Config holds every tunable constant of the tuning core. All values are
// fixed at construction; the core is not runtime-reconfigurable.
type Config struct {
	// Signal gate
	GateRMSFloor float64 `json:"gate_rms_floor"`

	// Pitch estimation band and confidence
	MinFrequency  float64 `json:"min_frequency"`
	MaxFrequency  float64 `json:"max_frequency"`
	MinConfidence float64 `json:"min_confidence"`

	// Frequency smoothing
	SmoothingAlpha float64 `json:"smoothing_alpha"`
	JumpAlpha      float64 `json:"jump_alpha"`
	JumpRatio      float64 `json:"jump_ratio"`

	// Tuning confirmation
	ToleranceCents   float64       `json:"tolerance_cents"`
	ConfirmWindow    time.Duration `json:"confirm_window"`
	RequireNoteMatch bool          `json:"require_note_match"`
}

// DefaultConfig returns defaults tuned for six-string standard tuning
func DefaultConfig() *Config {
	return &Config{
		GateRMSFloor:     0.01,
		MinFrequency:     50.0,
		MaxFrequency:     400.0,
		MinConfidence:    0.35,
		SmoothingAlpha:   0.3,
		JumpAlpha:        0.5,
		JumpRatio:        0.1,
		ToleranceCents:   10.0,
		ConfirmWindow:    1200 * time.Millisecond,
		RequireNoteMatch: true,
	}
}

// Validate checks the configuration for values that would produce a
// meaningless pipeline
func (c *Config) Validate() error {
	if c.GateRMSFloor < 0 {
		return fmt.Errorf("gate RMS floor must be non-negative, got %v", c.GateRMSFloor)
	}
	if c.MinFrequency <= 0 {
		return fmt.Errorf("minimum frequency must be positive, got %v", c.MinFrequency)
	}
	if c.MaxFrequency <= c.MinFrequency {
		return fmt.Errorf("maximum frequency (%v) must exceed minimum frequency (%v)",
			c.MaxFrequency, c.MinFrequency)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("minimum confidence must be in [0, 1], got %v", c.MinConfidence)
	}
	if c.SmoothingAlpha <= 0 || c.SmoothingAlpha > 1 {
		return fmt.Errorf("smoothing alpha must be in (0, 1], got %v", c.SmoothingAlpha)
	}
	if c.JumpAlpha <= 0 || c.JumpAlpha > 1 {
		return fmt.Errorf("jump alpha must be in (0, 1], got %v", c.JumpAlpha)
	}
	if c.JumpRatio <= 0 {
		return fmt.Errorf("jump ratio must be positive, got %v", c.JumpRatio)
	}
	if c.ToleranceCents <= 0 {
		return fmt.Errorf("tolerance must be positive, got %v cents", c.ToleranceCents)
	}
	if c.ConfirmWindow <= 0 {
		return fmt.Errorf("confirmation window must be positive, got %v", c.ConfirmWindow)
	}
	return nil
}
