package form

import "strings"

// Field keys, in form declaration order.
const (
	Age             = "age"
	Sex             = "sex"
	ChestPainType   = "chest_pain_type"
	BP              = "bp"
	Cholesterol     = "cholesterol"
	FBSOver120      = "fbs_over_120"
	EKGResults      = "ekg_results"
	MaxHR           = "max_hr"
	ExerciseAngina  = "exercise_angina"
	STDepression    = "st_depression"
	SlopeST         = "slope_st"
	NumVesselsFluro = "num_vessels_fluro"
	Thallium        = "thallium"
)

// #region table
var noYes = []Option{{0, "No"}, {1, "Yes"}}

var fields = []Field{
	{Name: Age, WireName: "Age", Label: "Age", Unit: "years", Kind: Continuous, Required: true, Min: 20, Max: 100},
	{Name: Sex, WireName: "Sex", Label: "Sex", Kind: Categorical, Required: true,
		Options: []Option{{0, "Female"}, {1, "Male"}}},
	{Name: ChestPainType, WireName: "chest_pain_type", Label: "Chest Pain Type", Kind: Categorical, Default: "1",
		Options: []Option{{1, "Typical angina"}, {2, "Atypical angina"}, {3, "Non-anginal pain"}, {4, "Asymptomatic"}}},
	{Name: BP, WireName: "BP", Label: "Blood Pressure", Unit: "mm Hg", Kind: Continuous, Required: true, Min: 50, Max: 250},
	{Name: Cholesterol, WireName: "Cholesterol", Label: "Cholesterol", Unit: "mg/dl", Kind: Continuous, Required: true, Min: 100, Max: 600},
	{Name: FBSOver120, WireName: "fbs_over_120", Label: "Fasting Blood Sugar > 120 mg/dl", Kind: Categorical, Default: "0",
		Options: noYes},
	{Name: EKGResults, WireName: "ekg_results", Label: "EKG Results", Kind: Categorical, Default: "0",
		Options: []Option{{0, "Normal"}, {1, "ST-T wave abnormality"}, {2, "Left ventricular hypertrophy"}}},
	{Name: MaxHR, WireName: "Max_HR", Label: "Max Heart Rate", Unit: "bpm", Kind: Continuous, Required: true, Min: 60, Max: 220},
	{Name: ExerciseAngina, WireName: "exercise_angina", Label: "Exercise Angina", Kind: Categorical, Default: "0",
		Options: noYes},
	{Name: STDepression, WireName: "ST_depression", Label: "ST Depression", Kind: Continuous, Required: true, Min: 0, Max: 10},
	{Name: SlopeST, WireName: "slope_st", Label: "Slope of ST Segment", Kind: Categorical, Default: "1",
		Options: []Option{{1, "Upsloping"}, {2, "Flat"}, {3, "Downsloping"}}},
	{Name: NumVesselsFluro, WireName: "num_vessels_fluro", Label: "Number of Vessels (Fluroscopy)", Kind: Categorical, Default: "0",
		Options: []Option{{0, "0 vessels"}, {1, "1 vessel"}, {2, "2 vessels"}, {3, "3 vessels"}}},
	{Name: Thallium, WireName: "Thallium", Label: "Thallium Scan Result", Kind: Categorical, Default: "3",
		Options: []Option{{3, "Normal"}, {6, "Fixed defect"}, {7, "Reversible defect"}}},
}

var byName = func() map[string]int {
	m := make(map[string]int, len(fields))
	for i, f := range fields {
		m[f.Name] = i
	}
	return m
}()

// #endregion table

// #region lookup

// Fields returns the schema in declaration order. The returned slice is a copy.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup returns the field named name.
func Lookup(name string) (Field, bool) {
	i, ok := byName[name]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}

// RequiredNames lists required field keys in declaration order.
func RequiredNames() []string {
	var names []string
	for _, f := range fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// #endregion lookup

func displayName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
