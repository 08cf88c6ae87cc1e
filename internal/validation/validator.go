package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
)

const (
	warnAge             = "Age should typically be between 20-100 years"
	warnBPRange         = "Blood pressure outside typical range (50-250 mm Hg)"
	warnBPElevated      = "Elevated blood pressure detected"
	warnCholRange       = "Cholesterol outside typical range (100-600 mg/dl)"
	warnCholHigh        = "High cholesterol level detected"
	warnHeartRateForAge = "Heart rate exceeds typical maximum for age"
)

// #region validator
// Validator checks a form snapshot before it is transcoded.
type Validator struct {
	config Config
}

// NewValidator creates a validator with the given thresholds.
func NewValidator(config Config) *Validator {
	return &Validator{config: config}
}

// Validate runs the blocking checks first, then the advisory ones. It has no side effects.
func (v *Validator) Validate(s form.Snapshot) Outcome {
	var out Outcome

	// --- Blocking pass ---

	// 1. Required fields, declaration order
	missing := map[string]bool{}
	for _, name := range form.RequiredNames() {
		if !s.Filled(name) {
			f, _ := form.Lookup(name)
			missing[name] = true
			out.Errors = append(out.Errors, fmt.Sprintf("%s is required", f.DisplayName()))
		}
	}

	// 2. Values the transcoder could not parse
	for _, f := range form.Fields() {
		if missing[f.Name] {
			continue
		}
		if msg := formatError(f, s.Value(f.Name)); msg != "" {
			out.Errors = append(out.Errors, msg)
		}
	}

	// --- Advisory pass ---
	c := v.config

	age, hasAge := number(s, form.Age)
	if hasAge && (age < c.AgeMin || age > c.AgeMax) {
		out.Warnings = append(out.Warnings, warnAge)
	}

	if bp, ok := number(s, form.BP); ok {
		if bp < c.BPMin || bp > c.BPMax {
			out.Warnings = append(out.Warnings, warnBPRange)
		}
		if bp > c.BPElevated {
			out.Warnings = append(out.Warnings, warnBPElevated)
		}
	}

	if chol, ok := number(s, form.Cholesterol); ok {
		if chol < c.CholesterolMin || chol > c.CholesterolMax {
			out.Warnings = append(out.Warnings, warnCholRange)
		}
		if chol > c.CholesterolHigh {
			out.Warnings = append(out.Warnings, warnCholHigh)
		}
	}

	if hr, ok := number(s, form.MaxHR); ok && hasAge && age != 0 && hr != 0 {
		predictedMax := c.PredictedMaxHRBase - age
		if hr > predictedMax*c.MaxHRTolerance {
			out.Warnings = append(out.Warnings, warnHeartRateForAge)
		}
	}

	return out
}

// #endregion validator

// #region helpers

// formatError describes why raw cannot be transcoded for f, or returns "".
// Blank optional continuous values are left to the required check.
func formatError(f form.Field, raw string) string {
	switch f.Kind {
	case form.Continuous:
		if raw == "" {
			return ""
		}
		if _, err := parseFinite(raw); err != nil {
			return fmt.Sprintf("%s must be a number", f.DisplayName())
		}
	case form.Categorical:
		code, err := strconv.Atoi(raw)
		if err != nil || !f.HasCode(code) {
			return fmt.Sprintf("%s must be one of %s", f.DisplayName(), joinCodes(f.Codes()))
		}
	}
	return ""
}

// number parses a filled continuous value; ok is false when absent or malformed.
func number(s form.Snapshot, name string) (float64, bool) {
	raw := s.Value(name)
	if raw == "" {
		return 0, false
	}
	f, err := parseFinite(raw)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseFinite(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not finite: %s", raw)
	}
	return f, nil
}

func joinCodes(codes []int) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ", ")
}

// #endregion helpers
