// Package tuner implements the core of a six-string guitar tuner: a pitch
// estimation pipeline (loudness gate, normalized autocorrelation with FFT
// fallback, exponential smoothing) feeding a per-string confirmation state
// machine. The host supplies one audio frame and timestamp per tick and
// renders the returned Status; capture and UI live outside this package.
package tuner

import (
	"errors"
	"fmt"
	"time"

	"github.com/strumline/strumline/algorithms/tonal"
	"github.com/strumline/strumline/logging"
	"github.com/strumline/strumline/tuner/config"
)

// Caller-facing input errors. Silence, out-of-band frequencies and low
// confidence are not errors; they surface as Status with HasPitch false.
var (
	ErrEmptyFrame        = errors.New("empty audio frame")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)

// Tuner wires the pipeline together. It is single-threaded and tick-driven:
// all computation happens synchronously inside ProcessTick, and session
// state is mutated from no other call.
type Tuner struct {
	config    *config.Config
	estimator *tonal.PitchEstimator
	smoother  *tonal.Smoother
	session   *Session
	logger    logging.Logger
}

// NewTuner creates a tuner from the given configuration. A nil config uses
// the defaults.
func NewTuner(cfg *config.Config) (*Tuner, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuner config: %w", err)
	}

	logger := logging.WithFields(logging.Fields{
		"component": "tuner",
	})

	return &Tuner{
		config: cfg,
		estimator: tonal.NewPitchEstimator(tonal.PitchEstimatorConfig{
			MinFrequency:  cfg.MinFrequency,
			MaxFrequency:  cfg.MaxFrequency,
			MinConfidence: cfg.MinConfidence,
			GateRMSFloor:  cfg.GateRMSFloor,
		}),
		smoother: tonal.NewSmoother(cfg.SmoothingAlpha, cfg.JumpAlpha, cfg.JumpRatio),
		session:  newSession(cfg, logger),
		logger:   logger,
	}, nil
}

// ProcessTick consumes one audio frame and returns the tuning status for
// this tick. Malformed input is the only error condition; a silent or noisy
// frame simply yields a status without pitch information.
func (t *Tuner) ProcessTick(frame []float64, sampleRate int, now time.Time) (Status, error) {
	if len(frame) == 0 {
		return Status{}, ErrEmptyFrame
	}
	if sampleRate <= 0 {
		return Status{}, fmt.Errorf("%w, got %d", ErrInvalidSampleRate, sampleRate)
	}

	raw, ok := t.estimator.Estimate(frame, sampleRate)

	var smoothed float64
	if ok {
		smoothed = t.smoother.Smooth(raw)
	} else {
		t.smoother.Reset()
	}

	status := t.session.Tick(now, smoothed, ok)

	if status.Confirmed {
		// Switching strings must not carry smoothing memory over
		t.smoother.Reset()
	}

	return status, nil
}

// Reset returns the session to the first string and clears all pipeline
// memory: smoothed frequency, pending deadline and terminal flag.
func (t *Tuner) Reset() {
	t.smoother.Reset()
	t.estimator.Reset()
	t.session.Reset()
	t.logger.Debug("session reset")
}

// Session exposes the session for progress inspection
func (t *Tuner) Session() *Session {
	return t.session
}

// Config returns the active configuration
func (t *Tuner) Config() *config.Config {
	return t.config
}
