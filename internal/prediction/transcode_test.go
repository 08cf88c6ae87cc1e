package prediction

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hassaan217/HeartGuard-AI/internal/form"
)

func TestTranscodeHighRiskSample(t *testing.T) {
	s, _ := form.Sample(form.ProfileHighRisk)

	req, err := Transcode(s)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}

	want := Request{
		Age: 65, Sex: 1, ChestPainType: 4, BP: 160, Cholesterol: 300,
		FBSOver120: 1, EKGResults: 2, MaxHR: 120, ExerciseAngina: 1,
		STDepression: 4.0, SlopeST: 3, NumVesselsFluro: 2, Thallium: 7,
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestTranscodeIsDeterministic(t *testing.T) {
	s, _ := form.Sample(form.ProfileMediumRisk)
	a, errA := Transcode(s)
	b, errB := Transcode(s.Clone())
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v %v", errA, errB)
	}
	if a != b {
		t.Fatalf("same snapshot produced different requests: %+v vs %+v", a, b)
	}
}

func TestTranscodeTrimsWhitespace(t *testing.T) {
	s, _ := form.Sample(form.ProfileLowRisk)
	s[form.BP] = " 118.5 "
	req, err := Transcode(s)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	if req.BP != 118.5 {
		t.Fatalf("expected BP 118.5, got %v", req.BP)
	}
}

func TestTranscodeCategoricalRoundTrip(t *testing.T) {
	for _, f := range form.Fields() {
		if f.Kind != form.Categorical {
			continue
		}
		for _, code := range f.Codes() {
			s, _ := form.Sample(form.ProfileLowRisk)
			s[f.Name] = strconv.Itoa(code)
			req, err := Transcode(s)
			if err != nil {
				t.Fatalf("%s=%d: %v", f.Name, code, err)
			}
			got, ok := req.AsMap()[f.WireName]
			if !ok {
				t.Fatalf("wire key %s missing", f.WireName)
			}
			var n float64
			switch v := got.(type) {
			case int:
				n = float64(v)
			case float64:
				n = v
			}
			if n != float64(code) {
				t.Errorf("%s: sent %d, wire carries %v", f.Name, code, got)
			}
		}
	}
}

func TestTranscodeErrors(t *testing.T) {
	cases := []struct {
		field string
		value string
	}{
		{form.Age, ""},
		{form.Cholesterol, "abc"},
		{form.STDepression, "Inf"},
		{form.Sex, "1.5"},
		{form.Thallium, "5"},
	}
	for _, tc := range cases {
		s, _ := form.Sample(form.ProfileLowRisk)
		s[tc.field] = tc.value

		_, err := Transcode(s)
		var te *TranscodeError
		if !errors.As(err, &te) {
			t.Fatalf("%s=%q: expected TranscodeError, got %v", tc.field, tc.value, err)
		}
		if te.Field != tc.field {
			t.Errorf("expected field %s, got %s", tc.field, te.Field)
		}
	}
}

func TestRequestJSONKeys(t *testing.T) {
	s, _ := form.Sample(form.ProfileLowRisk)
	req, err := Transcode(s)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, f := range form.Fields() {
		if _, ok := decoded[f.WireName]; !ok {
			t.Errorf("JSON body missing %s", f.WireName)
		}
	}
	if len(decoded) != len(form.Fields()) {
		t.Errorf("expected %d keys, got %d", len(form.Fields()), len(decoded))
	}
}

func TestRiskLevelValid(t *testing.T) {
	for _, r := range []RiskLevel{RiskLow, RiskMedium, RiskHigh} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if RiskLevel("Severe").Valid() {
		t.Error("unknown level should be invalid")
	}
}
