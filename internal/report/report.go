package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
	"github.com/hassaan217/HeartGuard-AI/internal/prediction"
)

const (
	presenceAdvice = `- Consult with a cardiologist immediately
- Schedule further diagnostic tests
- Monitor blood pressure regularly
- Consider lifestyle modifications`

	absenceAdvice = `- Maintain healthy lifestyle
- Regular exercise recommended
- Annual check-ups advised
- Continue preventive measures`

	disclaimer = "This prediction is based on machine learning algorithms and should not replace " +
		"professional medical advice. Always consult with healthcare providers for accurate diagnosis."
)

// #region format
// Format renders r as a plain-text report. The output depends only on r.
func Format(r prediction.Result) string {
	var b strings.Builder

	b.WriteString("Heart Disease Prediction Report\n")
	b.WriteString("================================\n")
	fmt.Fprintf(&b, "Date: %s\n", r.Timestamp.Format("2006-01-02"))
	fmt.Fprintf(&b, "Time: %s\n", r.Timestamp.Format("15:04:05"))

	section(&b, "PREDICTION RESULT")
	fmt.Fprintf(&b, "Heart Disease: %s\n", r.Prediction)
	fmt.Fprintf(&b, "Risk Level: %s\n", r.RiskLevel)
	fmt.Fprintf(&b, "Probability: %.4f\n", r.Probability)
	fmt.Fprintf(&b, "Confidence: %s\n", r.Confidence)

	s := r.Snapshot
	section(&b, "PATIENT DATA")
	fmt.Fprintf(&b, "Age: %s years\n", s.Value(form.Age))
	fmt.Fprintf(&b, "Sex: %s\n", optionLabel(form.Sex, s.Value(form.Sex)))
	fmt.Fprintf(&b, "Blood Pressure: %s mm Hg\n", s.Value(form.BP))
	fmt.Fprintf(&b, "Cholesterol: %s mg/dl\n", s.Value(form.Cholesterol))
	fmt.Fprintf(&b, "Max Heart Rate: %s bpm\n", s.Value(form.MaxHR))

	section(&b, "RECOMMENDATIONS")
	if r.HasDisease() {
		b.WriteString(presenceAdvice)
	} else {
		b.WriteString(absenceAdvice)
	}
	b.WriteString("\n")

	section(&b, "DISCLAIMER")
	b.WriteString(disclaimer)
	b.WriteString("\n")

	return b.String()
}

// #endregion format

// #region export

// Filename is the export file name for r.
func Filename(r prediction.Result) string {
	return fmt.Sprintf("HeartGuard_Prediction_%s.txt", r.ID)
}

// Export writes the report for r into dir, creating it if needed, and returns the file path.
func Export(dir string, r prediction.Result) (string, error) {
	if r.ID == "" {
		return "", fmt.Errorf("export: result has no id")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, Filename(r))
	if err := os.WriteFile(path, []byte(Format(r)), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// #endregion export

// #region helpers
func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func optionLabel(field, raw string) string {
	f, ok := form.Lookup(field)
	if !ok {
		return raw
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return raw
	}
	if label := f.OptionLabel(code); label != "" {
		return label
	}
	return raw
}

// #endregion helpers
