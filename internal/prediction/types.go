package prediction

import (
	"time"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
)

// #region request
// Request is the wire payload expected by the scoring service. Every field is required.
type Request struct {
	Age             float64 `json:"Age"`
	Sex             int     `json:"Sex"`
	ChestPainType   int     `json:"chest_pain_type"`
	BP              float64 `json:"BP"`
	Cholesterol     float64 `json:"Cholesterol"`
	FBSOver120      int     `json:"fbs_over_120"`
	EKGResults      int     `json:"ekg_results"`
	MaxHR           float64 `json:"Max_HR"`
	ExerciseAngina  int     `json:"exercise_angina"`
	STDepression    float64 `json:"ST_depression"`
	SlopeST         int     `json:"slope_st"`
	NumVesselsFluro int     `json:"num_vessels_fluro"`
	Thallium        float64 `json:"Thallium"`
}

// AsMap returns the payload keyed by wire name, for transports that do not use JSON tags.
func (r Request) AsMap() map[string]any {
	return map[string]any{
		"Age":               r.Age,
		"Sex":               r.Sex,
		"chest_pain_type":   r.ChestPainType,
		"BP":                r.BP,
		"Cholesterol":       r.Cholesterol,
		"fbs_over_120":      r.FBSOver120,
		"ekg_results":       r.EKGResults,
		"Max_HR":            r.MaxHR,
		"exercise_angina":   r.ExerciseAngina,
		"ST_depression":     r.STDepression,
		"slope_st":          r.SlopeST,
		"num_vessels_fluro": r.NumVesselsFluro,
		"Thallium":          r.Thallium,
	}
}

// #endregion request

// #region risk-level
// RiskLevel is the severity bucket assigned by the scoring service.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Valid reports whether r is one of the three known buckets.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// #endregion risk-level

// Prediction labels returned by the scoring service.
const (
	LabelPresence = "Presence"
	LabelAbsence  = "Absence"
)

// #region result
// Result is one completed assessment. It is never modified after creation.
type Result struct {
	ID          string
	Prediction  string
	RiskLevel   RiskLevel
	Probability float64
	Confidence  string
	Timestamp   time.Time
	Snapshot    form.Snapshot
}

// HasDisease reports whether the service predicted presence of heart disease.
func (r Result) HasDisease() bool {
	return r.Prediction == LabelPresence
}

// Clone returns a copy of r that shares no snapshot map with it.
func (r Result) Clone() Result {
	r.Snapshot = r.Snapshot.Clone()
	return r
}

// #endregion result
