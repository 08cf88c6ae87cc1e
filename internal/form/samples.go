package form

import "sort"

// Profile names a preset patient used to prefill the form.
type Profile string

const (
	ProfileLowRisk    Profile = "lowRisk"
	ProfileMediumRisk Profile = "mediumRisk"
	ProfileHighRisk   Profile = "highRisk"
)

// #region presets
var samples = map[Profile]Snapshot{
	ProfileLowRisk: {
		Age: "35", Sex: "0", ChestPainType: "1", BP: "120", Cholesterol: "180",
		FBSOver120: "0", EKGResults: "0", MaxHR: "160", ExerciseAngina: "0",
		STDepression: "0", SlopeST: "1", NumVesselsFluro: "0", Thallium: "3",
	},
	ProfileMediumRisk: {
		Age: "54", Sex: "1", ChestPainType: "3", BP: "130", Cholesterol: "240",
		FBSOver120: "0", EKGResults: "0", MaxHR: "140", ExerciseAngina: "0",
		STDepression: "2.5", SlopeST: "2", NumVesselsFluro: "0", Thallium: "3",
	},
	ProfileHighRisk: {
		Age: "65", Sex: "1", ChestPainType: "4", BP: "160", Cholesterol: "300",
		FBSOver120: "1", EKGResults: "2", MaxHR: "120", ExerciseAngina: "1",
		STDepression: "4.0", SlopeST: "3", NumVesselsFluro: "2", Thallium: "7",
	},
}

// #endregion presets

// Sample returns a copy of the preset for p.
func Sample(p Profile) (Snapshot, bool) {
	s, ok := samples[p]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// Profiles lists the known preset names, sorted.
func Profiles() []Profile {
	out := make([]Profile, 0, len(samples))
	for p := range samples {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
