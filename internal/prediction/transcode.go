package prediction

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
)

// #region transcode-error
// TranscodeError reports the first field that could not be converted to its wire type.
type TranscodeError struct {
	Field  string
	Value  string
	Reason string
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("transcode %s=%q: %s", e.Field, e.Value, e.Reason)
}

// #endregion transcode-error

// #region transcode
// Transcode converts a form snapshot into the scoring service payload.
// Identical snapshots always yield identical requests.
func Transcode(s form.Snapshot) (Request, error) {
	floats := make(map[string]float64)
	ints := make(map[string]int)

	for _, f := range form.Fields() {
		raw := s.Value(f.Name)
		if raw == "" {
			return Request{}, &TranscodeError{Field: f.Name, Value: raw, Reason: "missing value"}
		}
		switch f.Kind {
		case form.Continuous:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return Request{}, &TranscodeError{Field: f.Name, Value: raw, Reason: "not a number"}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Request{}, &TranscodeError{Field: f.Name, Value: raw, Reason: "not finite"}
			}
			floats[f.Name] = v
		case form.Categorical:
			code, err := strconv.Atoi(raw)
			if err != nil {
				return Request{}, &TranscodeError{Field: f.Name, Value: raw, Reason: "not an integer code"}
			}
			if !f.HasCode(code) {
				return Request{}, &TranscodeError{Field: f.Name, Value: raw, Reason: "unknown code"}
			}
			ints[f.Name] = code
		}
	}

	return Request{
		Age:             floats[form.Age],
		Sex:             ints[form.Sex],
		ChestPainType:   ints[form.ChestPainType],
		BP:              floats[form.BP],
		Cholesterol:     floats[form.Cholesterol],
		FBSOver120:      ints[form.FBSOver120],
		EKGResults:      ints[form.EKGResults],
		MaxHR:           floats[form.MaxHR],
		ExerciseAngina:  ints[form.ExerciseAngina],
		STDepression:    floats[form.STDepression],
		SlopeST:         ints[form.SlopeST],
		NumVesselsFluro: ints[form.NumVesselsFluro],
		Thallium:        float64(ints[form.Thallium]),
	}, nil
}

// #endregion transcode
