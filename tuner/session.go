package tuner

import (
	"math"
	"time"

	"github.com/strumline/strumline/algorithms/tonal"
	"github.com/strumline/strumline/logging"
	"github.com/strumline/strumline/tuner/config"
)

// State is the tuning progress state of a session
type State int

const (
	// StateListening waits for the current string to come into tolerance
	StateListening State = iota
	// StatePendingConfirm holds a deadline; the string must stay in
	// tolerance until it passes
	StatePendingConfirm
	// StateAllTuned is terminal; only Reset leaves it
	StateAllTuned
)

func (s State) String() string {
	switch s {
	case StateListening:
		return "listening"
	case StatePendingConfirm:
		return "pending_confirm"
	case StateAllTuned:
		return "all_tuned"
	default:
		return "unknown"
	}
}

// Status is the per-tick result the core exposes to its host. It is the only
// artifact the UI layer consumes.
type Status struct {
	String      TargetString `json:"string"`
	Frequency   float64      `json:"frequency"`    // smoothed, 0 when no pitch
	NoteName    string       `json:"note_name"`    // closest pitch class, "" when no pitch
	Cents       float64      `json:"cents"`        // deviation from target, meaningless when HasPitch is false
	HasPitch    bool         `json:"has_pitch"`    // whether this tick carried a usable pitch
	InTolerance bool         `json:"in_tolerance"` // within tolerance of the current target
	Confirmed   bool         `json:"confirmed"`    // current string confirmed on this tick
	Complete    bool         `json:"complete"`     // all six strings tuned
}

// Session owns per-session tuning progress across the six target strings.
// It is mutated only from the tick call; the confirmation deadline is a
// timestamp re-checked each tick, never a background timer, so a fired
// timer can never race a fresh no-signal tick.
type Session struct {
	targets          [6]TargetString
	toleranceCents   float64
	confirmWindow    time.Duration
	requireNoteMatch bool
	logger           logging.Logger

	index    int
	state    State
	deadline time.Time
}

// newSession creates a session at string 1 in the listening state
func newSession(cfg *config.Config, logger logging.Logger) *Session {
	return &Session{
		targets:          StandardTuning(),
		toleranceCents:   cfg.ToleranceCents,
		confirmWindow:    cfg.ConfirmWindow,
		requireNoteMatch: cfg.RequireNoteMatch,
		logger:           logger,
	}
}

// Tick advances the session by one tick given the latest smoothed frequency
// (hasPitch false means silence or no reliable periodicity) and the tick
// timestamp. Confirmation is granted only when the deadline has passed AND
// the latest frequency still judges in tolerance - the re-validation at the
// deadline is authoritative, not the crossing that armed it.
func (s *Session) Tick(now time.Time, freq float64, hasPitch bool) Status {
	target := s.targets[s.index]
	status := Status{String: target, Complete: s.state == StateAllTuned}

	if s.state == StateAllTuned {
		return status
	}

	if hasPitch {
		status.Frequency = freq
		status.NoteName = tonal.NoteName(freq)
		status.Cents = tonal.Cents(freq, target.Frequency)
		status.HasPitch = true
	}

	status.InTolerance = s.inTolerance(status)

	switch s.state {
	case StateListening:
		if status.InTolerance {
			s.state = StatePendingConfirm
			s.deadline = now.Add(s.confirmWindow)
		}
	case StatePendingConfirm:
		if !status.InTolerance {
			// Out of tolerance before the deadline: discard the pending
			// confirmation entirely, no partial credit carries over
			s.state = StateListening
			s.deadline = time.Time{}
		} else if !now.Before(s.deadline) {
			s.confirm(&status)
		}
	}

	return status
}

// inTolerance judges the current tick against the current target: signal
// must be present, |cents| within the inclusive tolerance, and (when the
// safeguard is on) the closest pitch class must match the target's. The
// note match rejects octave and adjacent-string false confirmations that
// the cents check alone cannot.
func (s *Session) inTolerance(status Status) bool {
	if !status.HasPitch {
		return false
	}
	if math.Abs(status.Cents) > s.toleranceCents {
		return false
	}
	if s.requireNoteMatch && status.NoteName != status.String.Note {
		return false
	}
	return true
}

// confirm advances past the current string or finishes the session
func (s *Session) confirm(status *Status) {
	status.Confirmed = true
	s.deadline = time.Time{}

	s.logger.Debug("string confirmed", logging.Fields{
		"string": s.targets[s.index].Label,
		"cents":  status.Cents,
	})

	if s.index == len(s.targets)-1 {
		s.state = StateAllTuned
		status.Complete = true
		s.logger.Info("all strings tuned")
		return
	}

	s.index++
	s.state = StateListening
}

// Reset returns the session to string 1, listening, with no pending
// deadline and the terminal flag cleared
func (s *Session) Reset() {
	s.index = 0
	s.state = StateListening
	s.deadline = time.Time{}
}

// CurrentIndex returns the zero-based index of the string being tuned
func (s *Session) CurrentIndex() int {
	return s.index
}

// CurrentTarget returns the string currently being tuned
func (s *Session) CurrentTarget() TargetString {
	return s.targets[s.index]
}

// State returns the session's progress state
func (s *Session) State() State {
	return s.state
}
