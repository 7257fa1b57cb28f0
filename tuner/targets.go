package tuner

// TargetString is one string of the instrument: its pitch class, target
// frequency, position in tuning order and display label. Records are
// immutable; the standard tuning sequence is fixed and never reordered.
type TargetString struct {
	Note      string  `json:"note"`
	Frequency float64 `json:"frequency"`
	Ordinal   int     `json:"ordinal"` // 1-6, tuning order
	Label     string  `json:"label"`
}

// standardTuning is the fixed six-string sequence, low E first
var standardTuning = [6]TargetString{
	{Note: "E", Frequency: 82.41, Ordinal: 1, Label: "E2 (low E)"},
	{Note: "A", Frequency: 110.00, Ordinal: 2, Label: "A2"},
	{Note: "D", Frequency: 146.83, Ordinal: 3, Label: "D3"},
	{Note: "G", Frequency: 196.00, Ordinal: 4, Label: "G3"},
	{Note: "B", Frequency: 246.94, Ordinal: 5, Label: "B3"},
	{Note: "E", Frequency: 329.63, Ordinal: 6, Label: "E4 (high E)"},
}

// StandardTuning returns the six standard-tuning target strings in order.
// The array is returned by value so callers cannot mutate the sequence.
func StandardTuning() [6]TargetString {
	return standardTuning
}
