package form

// #region kind
// Kind distinguishes free numeric inputs from coded selections.
type Kind int

const (
	Continuous  Kind = iota // parsed as float64
	Categorical             // parsed as an integer code from Options
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// #endregion kind

// #region option
// Option is one entry of a categorical field's closed code set.
type Option struct {
	Code  int
	Label string
}

// #endregion option

// #region field
// Field describes a single clinical parameter of the assessment form.
type Field struct {
	Name     string // form key, e.g. "max_hr"
	WireName string // key expected by the scoring service, e.g. "Max_HR"
	Label    string
	Unit     string
	Kind     Kind
	Required bool
	Min      float64 // input bounds, continuous only
	Max      float64
	Options  []Option // categorical only, in display order
	Default  string
}

// DisplayName is the field key with underscores turned into spaces.
func (f Field) DisplayName() string {
	return displayName(f.Name)
}

// HasCode reports whether code belongs to the field's code set.
func (f Field) HasCode(code int) bool {
	for _, o := range f.Options {
		if o.Code == code {
			return true
		}
	}
	return false
}

// OptionLabel returns the label for code, or "" when the code is unknown.
func (f Field) OptionLabel(code int) string {
	for _, o := range f.Options {
		if o.Code == code {
			return o.Label
		}
	}
	return ""
}

// Codes returns the field's codes in display order.
func (f Field) Codes() []int {
	codes := make([]int, len(f.Options))
	for i, o := range f.Options {
		codes[i] = o.Code
	}
	return codes
}

// #endregion field
