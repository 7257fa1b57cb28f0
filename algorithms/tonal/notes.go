package tonal

import (
	"math"
)

// referenceA4 is the tuning reference in Hz
const referenceA4 = 440.0

// pitchClassNames is the chromatic pitch class table starting at C
var pitchClassNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Cents returns the signed deviation of a detected frequency from a target
// frequency in cents (1200 cents per octave). Defined only for positive
// frequencies; returns 0 otherwise, which callers must treat as "no
// deviation information" rather than perfectly in tune.
func Cents(detected, target float64) float64 {
	if detected <= 0 || target <= 0 {
		return 0.0
	}
	return 1200.0 * math.Log2(detected/target)
}

// NoteName returns the name of the equal-tempered pitch class closest to the
// given frequency, referenced to A4 = 440 Hz. Rounding to the nearest
// semitone is intentional: the result identifies the closest pitch class,
// not an exact frequency. Returns "" for non-positive frequencies.
func NoteName(frequency float64) string {
	if frequency <= 0 {
		return ""
	}

	semitones := int(math.Round(12.0 * math.Log2(frequency/referenceA4)))

	// A4 is pitch class 9 (A) in a table starting at C
	index := (semitones + 9) % 12
	if index < 0 {
		index += 12
	}

	return pitchClassNames[index]
}
