package logging

import "time"

// #region outcome
// Outcome is the terminal state of one submit attempt.
type Outcome string

const (
	OutcomeInvalid   Outcome = "invalid"   // blocked by validation, never sent
	OutcomeFailed    Outcome = "failed"    // transcode or exchange failure
	OutcomeSucceeded Outcome = "succeeded" // result recorded in history
	OutcomeBusy      Outcome = "busy"      // rejected, another submission in flight
)

// #endregion outcome

// #region attempt-entry
// AttemptEntry is a single row in the attempts table.
type AttemptEntry struct {
	ID          string
	Outcome     Outcome
	Kind        string // failure classification, empty on success
	Message     string // user-facing message, empty on success
	Warnings    []string
	ResultID    string
	RiskLevel   string
	Probability float64
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Duration is the wall time of the attempt.
func (e AttemptEntry) Duration() time.Duration {
	return e.FinishedAt.Sub(e.StartedAt)
}

// #endregion attempt-entry
