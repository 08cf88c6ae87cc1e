package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hassaan217/HeartGuard-AI/internal/form"
)

func snapshotWith(overrides map[string]string) form.Snapshot {
	s := form.Defaults()
	s[form.Age] = "35"
	s[form.Sex] = "0"
	s[form.BP] = "120"
	s[form.Cholesterol] = "180"
	s[form.MaxHR] = "160"
	s[form.STDepression] = "0"
	for k, v := range overrides {
		s[k] = v
	}
	return s
}

func TestValidateHealthyProfileIsClean(t *testing.T) {
	v := NewValidator(DefaultConfig())
	out := v.Validate(snapshotWith(nil))

	if !out.OK() {
		t.Fatalf("expected no errors, got %v", out.Errors)
	}
	if len(out.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", out.Warnings)
	}
}

func TestValidateElevatedValuesWarnOnly(t *testing.T) {
	v := NewValidator(DefaultConfig())
	out := v.Validate(snapshotWith(map[string]string{
		form.Age: "65", form.BP: "160", form.Cholesterol: "300", form.MaxHR: "120",
	}))

	if !out.OK() {
		t.Fatalf("expected pass, got errors %v", out.Errors)
	}
	want := []string{"Elevated blood pressure detected", "High cholesterol level detected"}
	if diff := cmp.Diff(want, out.Warnings); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateMissingFieldsInDeclarationOrder(t *testing.T) {
	v := NewValidator(DefaultConfig())
	out := v.Validate(snapshotWith(map[string]string{form.BP: "", form.Age: ""}))

	want := []string{"age is required", "bp is required"}
	if diff := cmp.Diff(want, out.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateAllRequiredMissing(t *testing.T) {
	v := NewValidator(DefaultConfig())
	out := v.Validate(form.Defaults())

	want := []string{
		"age is required",
		"sex is required",
		"bp is required",
		"cholesterol is required",
		"max hr is required",
		"st depression is required",
	}
	if diff := cmp.Diff(want, out.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if len(out.Warnings) != 0 {
		t.Fatalf("expected no warnings on an empty form, got %v", out.Warnings)
	}
}

func TestValidateWhitespaceCountsAsMissing(t *testing.T) {
	v := NewValidator(DefaultConfig())
	out := v.Validate(snapshotWith(map[string]string{form.Cholesterol: "   "}))
	if diff := cmp.Diff([]string{"cholesterol is required"}, out.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateFormatErrors(t *testing.T) {
	v := NewValidator(DefaultConfig())
	out := v.Validate(snapshotWith(map[string]string{
		form.Age:      "",
		form.BP:       "high",
		form.Sex:      "2",
		form.Thallium: "4",
	}))

	want := []string{
		"age is required",
		"sex must be one of 0, 1",
		"bp must be a number",
		"thallium must be one of 3, 6, 7",
	}
	if diff := cmp.Diff(want, out.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	v := NewValidator(DefaultConfig())
	out := v.Validate(snapshotWith(map[string]string{form.STDepression: "NaN"}))
	if diff := cmp.Diff([]string{"st depression must be a number"}, out.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateEmptyOptionalCategorical(t *testing.T) {
	v := NewValidator(DefaultConfig())
	out := v.Validate(snapshotWith(map[string]string{form.SlopeST: ""}))
	if diff := cmp.Diff([]string{"slope st must be one of 1, 2, 3"}, out.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateRangeWarningsAreNotExclusive(t *testing.T) {
	v := NewValidator(DefaultConfig())
	out := v.Validate(snapshotWith(map[string]string{
		form.Age: "15", form.BP: "260", form.Cholesterol: "650", form.MaxHR: "100",
	}))

	if !out.OK() {
		t.Fatalf("range checks must not block, got %v", out.Errors)
	}
	want := []string{
		"Age should typically be between 20-100 years",
		"Blood pressure outside typical range (50-250 mm Hg)",
		"Elevated blood pressure detected",
		"Cholesterol outside typical range (100-600 mg/dl)",
		"High cholesterol level detected",
	}
	if diff := cmp.Diff(want, out.Warnings); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateHeartRateForAge(t *testing.T) {
	v := NewValidator(DefaultConfig())

	// 220-70 = 150, limit 165
	out := v.Validate(snapshotWith(map[string]string{form.Age: "70", form.MaxHR: "170"}))
	if diff := cmp.Diff([]string{"Heart rate exceeds typical maximum for age"}, out.Warnings); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}

	out = v.Validate(snapshotWith(map[string]string{form.Age: "70", form.MaxHR: "165"}))
	if len(out.Warnings) != 0 {
		t.Fatalf("heart rate at the limit should not warn, got %v", out.Warnings)
	}

	out = v.Validate(snapshotWith(map[string]string{form.Age: "", form.MaxHR: "250"}))
	if len(out.Warnings) != 0 {
		t.Fatalf("heart rate check needs age, got %v", out.Warnings)
	}
}

func TestValidateCustomThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BPElevated = 110
	v := NewValidator(cfg)

	out := v.Validate(snapshotWith(nil))
	if diff := cmp.Diff([]string{"Elevated blood pressure detected"}, out.Warnings); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
}
