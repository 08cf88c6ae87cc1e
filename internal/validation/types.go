package validation

// #region outcome
// Outcome is the result of validating one snapshot.
type Outcome struct {
	Errors   []string // blocking, in check order
	Warnings []string // advisory, never block submission
}

// OK reports whether the snapshot may be submitted.
func (o Outcome) OK() bool {
	return len(o.Errors) == 0
}

// #endregion outcome

// #region config
// Config holds the plausibility thresholds behind the advisory warnings.
type Config struct {
	AgeMin             float64
	AgeMax             float64
	BPMin              float64
	BPMax              float64
	BPElevated         float64 // warn above, in addition to the range check
	CholesterolMin     float64
	CholesterolMax     float64
	CholesterolHigh    float64 // warn above, in addition to the range check
	PredictedMaxHRBase float64 // predicted max HR = base - age
	MaxHRTolerance     float64 // multiplier on the predicted max
}

// DefaultConfig returns the clinical thresholds used by the form.
func DefaultConfig() Config {
	return Config{
		AgeMin:             20,
		AgeMax:             100,
		BPMin:              50,
		BPMax:              250,
		BPElevated:         140,
		CholesterolMin:     100,
		CholesterolMax:     600,
		CholesterolHigh:    240,
		PredictedMaxHRBase: 220,
		MaxHRTolerance:     1.1,
	}
}

// #endregion config
