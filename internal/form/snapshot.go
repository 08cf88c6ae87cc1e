package form

import "strings"

// #region snapshot
// Snapshot maps field keys to raw, possibly partial, text values.
type Snapshot map[string]string

// Defaults returns a fresh snapshot holding every field's default value.
func Defaults() Snapshot {
	s := make(Snapshot, len(fields))
	for _, f := range fields {
		s[f.Name] = f.Default
	}
	return s
}

// Clone returns an independent copy of s.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Value returns the trimmed raw value for name.
func (s Snapshot) Value(name string) string {
	return strings.TrimSpace(s[name])
}

// Filled reports whether name holds a non-blank value.
func (s Snapshot) Filled(name string) bool {
	return s.Value(name) != ""
}

// #endregion snapshot

// #region completion

// Completion is the fraction of required fields that hold a value, in [0,1].
// It is informational only and never gates submission.
func Completion(s Snapshot) float64 {
	required := RequiredNames()
	if len(required) == 0 {
		return 1
	}
	filled := 0
	for _, name := range required {
		if s.Filled(name) {
			filled++
		}
	}
	return float64(filled) / float64(len(required))
}

// #endregion completion
