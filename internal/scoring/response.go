package scoring

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
	"github.com/hassaan217/HeartGuard-AI/internal/prediction"
)

// #region wire-response
// response is the success payload of the scoring service.
type response struct {
	Prediction  string   `json:"prediction"`
	RiskLevel   string   `json:"risk_level"`
	Probability *float64 `json:"probability"`
	Confidence  string   `json:"confidence"`
}

// errorBody is the failure payload; detail may be any JSON value.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// #endregion wire-response

// #region decode

// decodeResult parses a success payload and stamps id, time and snapshot onto it.
func decodeResult(raw []byte, snap form.Snapshot, now time.Time) (prediction.Result, error) {
	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return prediction.Result{}, fmt.Errorf("decode response: %w", err)
	}
	switch resp.Prediction {
	case prediction.LabelPresence, prediction.LabelAbsence:
	default:
		return prediction.Result{}, fmt.Errorf("unknown prediction label %q", resp.Prediction)
	}
	risk := prediction.RiskLevel(resp.RiskLevel)
	if !risk.Valid() {
		return prediction.Result{}, fmt.Errorf("unknown risk level %q", resp.RiskLevel)
	}
	if resp.Probability == nil {
		return prediction.Result{}, fmt.Errorf("probability missing")
	}
	p := *resp.Probability
	if p < 0 || p > 1 {
		return prediction.Result{}, fmt.Errorf("probability %v outside [0,1]", p)
	}
	confidence := resp.Confidence
	if confidence == "" {
		confidence = fmt.Sprintf("%.2f%%", p*100)
	}

	return prediction.Result{
		ID:          uuid.NewString(),
		Prediction:  resp.Prediction,
		RiskLevel:   risk,
		Probability: p,
		Confidence:  confidence,
		Timestamp:   now,
		Snapshot:    snap.Clone(),
	}, nil
}

// detailFrom extracts a string detail from a failure body, or "".
func detailFrom(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(body.Detail, &s); err != nil {
		return ""
	}
	return s
}

// #endregion decode
