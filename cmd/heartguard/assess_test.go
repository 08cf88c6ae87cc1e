package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
	"github.com/hassaan217/HeartGuard-AI/internal/logging"
	"github.com/hassaan217/HeartGuard-AI/internal/prediction"
	"github.com/hassaan217/HeartGuard-AI/internal/workflow"
)

// #region helpers
type stubPredictor struct{}

func (stubPredictor) Predict(_ context.Context, _ prediction.Request, snap form.Snapshot) (prediction.Result, error) {
	return prediction.Result{
		ID:          "abc123",
		Prediction:  prediction.LabelAbsence,
		RiskLevel:   prediction.RiskLow,
		Probability: 0.12,
		Confidence:  "88.00%",
		Timestamp:   time.Date(2026, 5, 2, 14, 30, 0, 0, time.UTC),
		Snapshot:    snap.Clone(),
	}, nil
}

func testSession(t *testing.T) *session {
	t.Helper()
	ledger, err := logging.OpenLedger()
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })
	return &session{
		ctrl:      workflow.NewController(stubPredictor{}, workflow.Options{Ledger: ledger}),
		ledger:    ledger,
		exportDir: t.TempDir(),
	}
}

func runScript(t *testing.T, s *session, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, runAssess(context.Background(), s, in, &out))
	return out.String()
}

// #endregion helpers

// #region assess-tests
func TestAssessSubmitAndExport(t *testing.T) {
	s := testSession(t)
	out := runScript(t, s,
		"sample lowRisk",
		"submit",
		"history",
		"export",
		"attempts",
		"quit",
	)

	assert.Contains(t, out, "loaded lowRisk sample")
	assert.Contains(t, out, "Prediction:  Absence")
	assert.Contains(t, out, "Probability: 0.1200")
	assert.Contains(t, out, "1. 2026-05-02 14:30:00  abc123")
	assert.Contains(t, out, "succeeded")

	path := filepath.Join(s.exportDir, "HeartGuard_Prediction_abc123.txt")
	assert.Contains(t, out, "report written to "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Heart Disease: Absence")
}

func TestAssessInvalidSubmit(t *testing.T) {
	s := testSession(t)
	out := runScript(t, s, "set age 45", "submit")

	assert.Contains(t, out, "sex is required, bp is required")
	assert.NotContains(t, out, "age is required")
	assert.Empty(t, s.ctrl.History())
}

func TestAssessErrors(t *testing.T) {
	s := testSession(t)
	out := runScript(t, s,
		"set weight 80",
		"sample extreme",
		"export",
		"export nope",
		"dance",
	)

	assert.Contains(t, out, "unknown field")
	assert.Contains(t, out, "unknown sample profile")
	assert.Contains(t, out, "no result to export")
	assert.Contains(t, out, `no result with id "nope" in history`)
	assert.Contains(t, out, `unknown command "dance"`)
}

func TestAssessShowAndReset(t *testing.T) {
	s := testSession(t)
	out := runScript(t, s, "sample highRisk", "show", "reset", "show")

	assert.Contains(t, out, "thallium           7 (Reversible defect)")
	assert.Contains(t, out, "completion: 100%")
	assert.Contains(t, out, "completion: 0%")
}

// #endregion assess-tests

// #region predict-tests
func TestFillForm(t *testing.T) {
	ctrl := workflow.NewController(stubPredictor{}, workflow.Options{})
	require.NoError(t, fillForm(ctrl, "mediumRisk", []string{"age=61", "bp = 150"}))

	snap := ctrl.Snapshot()
	assert.Equal(t, "61", snap[form.Age])
	assert.Equal(t, "150", snap[form.BP])
	assert.Equal(t, "240", snap[form.Cholesterol])

	assert.Error(t, fillForm(ctrl, "", []string{"age"}))
	assert.Error(t, fillForm(ctrl, "", []string{"=5"}))
	assert.ErrorIs(t, fillForm(ctrl, "", []string{"height=180"}), workflow.ErrUnknownField)
}

// #endregion predict-tests

// #region render-tests
func TestRiskStyle(t *testing.T) {
	assert.Equal(t, lowStyle, riskStyle(prediction.RiskLow))
	assert.Equal(t, mediumStyle, riskStyle(prediction.RiskMedium))
	assert.Equal(t, highStyle, riskStyle(prediction.RiskHigh))
	assert.Equal(t, otherStyle, riskStyle("Unknown"))
}

func TestRenderFields(t *testing.T) {
	var out bytes.Buffer
	renderFields(&out)
	text := out.String()

	assert.Contains(t, text, "age                Age (required)")
	assert.Contains(t, text, "typical 20-100 years")
	assert.Contains(t, text, "0=Female, 1=Male")
	assert.Contains(t, text, "3=Normal, 6=Fixed defect, 7=Reversible defect")
}

// #endregion render-tests
