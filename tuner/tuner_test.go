package tuner

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/strumline/strumline/tuner/config"
)

const (
	testSampleRate = 44100
	testFrameSize  = 4096
)

func sineFrame(freq, amplitude float64) []float64 {
	frame := make([]float64, testFrameSize)
	for i := range frame {
		ts := float64(i) / float64(testSampleRate)
		frame[i] = amplitude * math.Sin(2*math.Pi*freq*ts)
	}
	return frame
}

func newTestTuner(t *testing.T) *Tuner {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ToleranceCents = 15.0
	cfg.ConfirmWindow = time.Second
	tn, err := NewTuner(cfg)
	if err != nil {
		t.Fatalf("NewTuner: %v", err)
	}
	return tn
}

func TestNewTuner_NilConfigUsesDefaults(t *testing.T) {
	tn, err := NewTuner(nil)
	assert.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), tn.Config())
}

func TestNewTuner_RejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ToleranceCents = -3

	_, err := NewTuner(cfg)
	assert.Error(t, err)
}

func TestProcessTick_MalformedInput(t *testing.T) {
	tn := newTestTuner(t)
	now := time.Unix(0, 0)

	_, err := tn.ProcessTick(nil, testSampleRate, now)
	assert.ErrorIs(t, err, ErrEmptyFrame)

	_, err = tn.ProcessTick(sineFrame(110.0, 0.5), 0, now)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)

	_, err = tn.ProcessTick(sineFrame(110.0, 0.5), -48000, now)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)
}

func TestProcessTick_SilenceYieldsNoPitch(t *testing.T) {
	tn := newTestTuner(t)

	status, err := tn.ProcessTick(make([]float64, testFrameSize), testSampleRate, time.Unix(0, 0))
	assert.NoError(t, err)
	assert.False(t, status.HasPitch)
	assert.False(t, status.InTolerance)
	assert.Equal(t, "E2 (low E)", status.String.Label)
}

func TestProcessTick_SilenceClearsSmoothingMemory(t *testing.T) {
	tn := newTestTuner(t)
	now := time.Unix(0, 0)

	// Establish a smoothed value, interrupt with silence, then come back on
	// a different pitch: the new pitch must initialize directly instead of
	// being dragged toward the stale value.
	for i := 0; i < 3; i++ {
		_, err := tn.ProcessTick(sineFrame(82.41, 0.5), testSampleRate, now)
		assert.NoError(t, err)
		now = now.Add(100 * time.Millisecond)
	}

	_, err := tn.ProcessTick(make([]float64, testFrameSize), testSampleRate, now)
	assert.NoError(t, err)
	now = now.Add(100 * time.Millisecond)

	status, err := tn.ProcessTick(sineFrame(196.0, 0.5), testSampleRate, now)
	assert.NoError(t, err)
	assert.True(t, status.HasPitch)
	assert.InDelta(t, 196.0, status.Frequency, 1.0)
}

func TestTuner_FullSessionOnSineInput(t *testing.T) {
	tn := newTestTuner(t)
	now := time.Unix(0, 0)

	for i, target := range StandardTuning() {
		frame := sineFrame(target.Frequency, 0.5)
		confirmed := false

		for step := 0; step < 15; step++ {
			status, err := tn.ProcessTick(frame, testSampleRate, now)
			assert.NoError(t, err)
			now = now.Add(100 * time.Millisecond)

			if status.Confirmed {
				confirmed = true
				assert.Equal(t, target.Label, status.String.Label)
				break
			}
		}

		assert.True(t, confirmed, "string %d (%s) never confirmed", i+1, target.Label)
	}

	assert.Equal(t, StateAllTuned, tn.Session().State())

	status, err := tn.ProcessTick(sineFrame(110.0, 0.5), testSampleRate, now)
	assert.NoError(t, err)
	assert.True(t, status.Complete)
}

func TestTuner_ResetFromTerminalState(t *testing.T) {
	tn := newTestTuner(t)
	now := time.Unix(0, 0)

	// Drive the session to completion
	for _, target := range StandardTuning() {
		frame := sineFrame(target.Frequency, 0.5)
		for step := 0; step < 15; step++ {
			status, err := tn.ProcessTick(frame, testSampleRate, now)
			assert.NoError(t, err)
			now = now.Add(100 * time.Millisecond)
			if status.Confirmed {
				break
			}
		}
	}
	assert.Equal(t, StateAllTuned, tn.Session().State())

	tn.Reset()
	assert.Equal(t, 0, tn.Session().CurrentIndex())
	assert.Equal(t, StateListening, tn.Session().State())

	status, err := tn.ProcessTick(sineFrame(82.41, 0.5), testSampleRate, now)
	assert.NoError(t, err)
	assert.False(t, status.Complete)
	assert.True(t, status.InTolerance)
}

func TestStatus_SerializesToJSON(t *testing.T) {
	tn := newTestTuner(t)

	status, err := tn.ProcessTick(sineFrame(110.0, 0.5), testSampleRate, time.Unix(0, 0))
	assert.NoError(t, err)

	data, err := json.Marshal(status)
	assert.NoError(t, err)

	var decoded Status
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, status.String.Label, decoded.String.Label)
	assert.Equal(t, status.HasPitch, decoded.HasPitch)
}
