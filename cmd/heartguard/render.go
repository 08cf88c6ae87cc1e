package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
	"github.com/hassaan217/HeartGuard-AI/internal/logging"
	"github.com/hassaan217/HeartGuard-AI/internal/prediction"
)

// #region styles
var (
	lowStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	mediumStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EAB308"))
	highStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	otherStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308"))
)

func riskStyle(level prediction.RiskLevel) lipgloss.Style {
	switch level {
	case prediction.RiskLow:
		return lowStyle
	case prediction.RiskMedium:
		return mediumStyle
	case prediction.RiskHigh:
		return highStyle
	default:
		return otherStyle
	}
}

// #endregion styles

// #region result
func renderResult(w io.Writer, r prediction.Result) {
	fmt.Fprintf(w, "Prediction:  %s\n", r.Prediction)
	fmt.Fprintf(w, "Risk level:  %s\n", riskStyle(r.RiskLevel).Render(string(r.RiskLevel)))
	fmt.Fprintf(w, "Probability: %.4f\n", r.Probability)
	fmt.Fprintf(w, "Confidence:  %s\n", r.Confidence)
	fmt.Fprintf(w, "Result ID:   %s\n", r.ID)
}

func renderWarnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		fmt.Fprintln(w, warnStyle.Render("warning: "+msg))
	}
}

func renderError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render("error: "+msg))
}

// #endregion result

// #region form
func renderFields(w io.Writer) {
	for _, f := range form.Fields() {
		req := ""
		if f.Required {
			req = " (required)"
		}
		fmt.Fprintf(w, "%-18s %s%s\n", f.Name, f.Label, req)
		switch f.Kind {
		case form.Continuous:
			unit := ""
			if f.Unit != "" {
				unit = " " + f.Unit
			}
			fmt.Fprintf(w, "%18s typical %s-%s%s\n", "",
				strconv.FormatFloat(f.Min, 'f', -1, 64), strconv.FormatFloat(f.Max, 'f', -1, 64), unit)
		case form.Categorical:
			opts := make([]string, len(f.Options))
			for i, o := range f.Options {
				opts[i] = fmt.Sprintf("%d=%s", o.Code, o.Label)
			}
			fmt.Fprintf(w, "%18s %s\n", "", strings.Join(opts, ", "))
		}
	}
}

func renderSnapshot(w io.Writer, s form.Snapshot, completion float64) {
	for _, f := range form.Fields() {
		v := s[f.Name]
		if v == "" {
			v = "-"
		} else if f.Kind == form.Categorical {
			if code, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				if label := f.OptionLabel(code); label != "" {
					v += " (" + label + ")"
				}
			}
		}
		fmt.Fprintf(w, "%-18s %s\n", f.Name, v)
	}
	fmt.Fprintf(w, "completion: %.0f%%\n", completion*100)
}

// #endregion form

// #region lists
func renderHistory(w io.Writer, results []prediction.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no predictions yet")
		return
	}
	for i, r := range results {
		fmt.Fprintf(w, "%d. %s  %s  %-8s %s  p=%.4f\n", i+1,
			r.Timestamp.Format("2006-01-02 15:04:05"), r.ID, r.Prediction,
			riskStyle(r.RiskLevel).Render(string(r.RiskLevel)), r.Probability)
	}
}

func renderAttempts(w io.Writer, entries []logging.AttemptEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no attempts yet")
		return
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-9s %6dms", e.StartedAt.Format("15:04:05"), e.Outcome, e.Duration().Milliseconds())
		if e.Kind != "" {
			line += "  " + e.Kind
		}
		if e.ResultID != "" {
			line += "  " + e.ResultID
		}
		if e.Message != "" {
			line += "  " + e.Message
		}
		fmt.Fprintln(w, line)
	}
}

// #endregion lists

// parseAssignment splits "field=value".
func parseAssignment(s string) (field, value string, err error) {
	field, value, ok := strings.Cut(s, "=")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return "", "", fmt.Errorf("expected field=value, got %q", s)
	}
	return field, strings.TrimSpace(value), nil
}
