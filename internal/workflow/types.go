package workflow

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
	"github.com/hassaan217/HeartGuard-AI/internal/logging"
	"github.com/hassaan217/HeartGuard-AI/internal/prediction"
	"github.com/hassaan217/HeartGuard-AI/internal/scoring"
	"github.com/hassaan217/HeartGuard-AI/internal/validation"
)

// #region state

// State is the controller's position in the submit lifecycle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateInvalid
	StateTranscoding
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateInvalid:
		return "invalid"
	case StateTranscoding:
		return "transcoding"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// #endregion state

// #region status

// Status summarises how a Submit call ended.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusInvalid   Status = "invalid"
	StatusFailed    Status = "failed"
	StatusBusy      Status = "busy" // another submission was already in flight
)

// Outcome is returned by every Submit call. Result is set only on success.
type Outcome struct {
	Status   Status
	Result   prediction.Result
	Message  string
	Warnings []string
	Kind     scoring.Kind // failure classification, StatusFailed only

	// Unreachable is set when no response arrived, timeouts included.
	Unreachable bool
}

// #endregion status

// #region errors

var (
	ErrSubmitting     = errors.New("a prediction request is in progress")
	ErrUnknownField   = errors.New("unknown field")
	ErrUnknownProfile = errors.New("unknown sample profile")
)

const (
	msgPrepareFailed = "Failed to prepare prediction request."
	msgBusy          = "A prediction request is already in progress."
)

// #endregion errors

// #region collaborators

// Predictor performs the remote exchange. scoring.Client satisfies it.
type Predictor interface {
	Predict(ctx context.Context, req prediction.Request, snap form.Snapshot) (prediction.Result, error)
}

// Recorder stores one entry per submit attempt. *logging.Ledger satisfies it.
type Recorder interface {
	Record(e logging.AttemptEntry) error
}

// Options configures a Controller. Every field is optional.
type Options struct {
	Logger       *zap.Logger
	Ledger       Recorder
	Validator    *validation.Validator
	OnTransition func(from, to State)
	Now          func() time.Time
}

// #endregion collaborators
