package workflow

// #region imports
import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
	"github.com/hassaan217/HeartGuard-AI/internal/history"
	"github.com/hassaan217/HeartGuard-AI/internal/logging"
	"github.com/hassaan217/HeartGuard-AI/internal/prediction"
	"github.com/hassaan217/HeartGuard-AI/internal/scoring"
	"github.com/hassaan217/HeartGuard-AI/internal/validation"
)

// #endregion

// #region controller-struct

// Controller owns the form, the current result and the session history, and
// coordinates validation, transcoding and the remote exchange for each submit.
// mu is never held across the network call; gate admits one submission at a time.
type Controller struct {
	client       Predictor
	validator    *validation.Validator
	ledger       Recorder
	logger       *zap.Logger
	onTransition func(from, to State)
	now          func() time.Time
	gate         *semaphore.Weighted

	mu       sync.Mutex
	state    State
	snapshot form.Snapshot
	current  *prediction.Result
	errMsg   string
	warnings []string
	history  *history.Store
	pending  [][2]State // transitions not yet reported to onTransition
}

// #endregion

// #region constructor

// NewController returns an idle controller holding the default form.
func NewController(client Predictor, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	v := opts.Validator
	if v == nil {
		v = validation.NewValidator(validation.DefaultConfig())
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Controller{
		client:       client,
		validator:    v,
		ledger:       opts.Ledger,
		logger:       logger.Named("workflow"),
		onTransition: opts.OnTransition,
		now:          now,
		gate:         semaphore.NewWeighted(1),
		state:        StateIdle,
		snapshot:     form.Defaults(),
		history:      history.NewStore(),
	}
}

// #endregion

// #region edits

// Set stores a raw value for one field.
func (c *Controller) Set(field, value string) error {
	if _, ok := form.Lookup(field); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle {
		return ErrSubmitting
	}
	c.snapshot[field] = value
	return nil
}

// Reset restores the defaults and clears the current result and error.
// History is kept.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle {
		return ErrSubmitting
	}
	c.snapshot = form.Defaults()
	c.current = nil
	c.errMsg = ""
	c.warnings = nil
	c.logger.Debug("form reset")
	return nil
}

// LoadSample replaces the form with a preset patient. History is kept.
func (c *Controller) LoadSample(p form.Profile) error {
	snap, ok := form.Sample(p)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProfile, p)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle {
		return ErrSubmitting
	}
	c.snapshot = snap
	c.current = nil
	c.errMsg = ""
	c.warnings = nil
	c.logger.Debug("sample loaded", zap.String("profile", string(p)))
	return nil
}

// #endregion

// #region submit

// Submit validates the form and, if it passes, performs one prediction
// exchange. It never returns an error: every failure is folded into the
// Outcome and into Error(). A call made while another is outstanding returns
// StatusBusy without touching the client.
func (c *Controller) Submit(ctx context.Context) Outcome {
	entry := logging.AttemptEntry{ID: uuid.NewString(), StartedAt: c.now()}

	if !c.gate.TryAcquire(1) {
		c.logger.Info("submit rejected, request already in flight")
		out := Outcome{Status: StatusBusy, Message: msgBusy}
		c.record(entry, out)
		return out
	}
	defer c.gate.Release(1)

	c.mu.Lock()
	c.transition(StateValidating)
	snap := c.snapshot.Clone()
	c.unlockAndNotify()

	checked := c.validator.Validate(snap)
	for _, w := range checked.Warnings {
		c.logger.Warn("validation warning", zap.String("warning", w))
	}

	c.mu.Lock()
	c.warnings = append([]string(nil), checked.Warnings...)
	if !checked.OK() {
		msg := strings.Join(checked.Errors, ", ")
		c.errMsg = msg
		c.transition(StateInvalid)
		c.transition(StateIdle)
		c.unlockAndNotify()

		c.logger.Info("submit blocked by validation", zap.Strings("errors", checked.Errors))
		out := Outcome{Status: StatusInvalid, Message: msg, Warnings: checked.Warnings}
		c.record(entry, out)
		return out
	}
	c.transition(StateTranscoding)
	c.unlockAndNotify()

	req, err := prediction.Transcode(snap)
	if err != nil {
		// Validation accepted something the transcoder cannot encode.
		c.logger.Error("transcode failed after validation passed", zap.Error(err))
		return c.fail(entry, checked.Warnings, scoring.KindRequestFailure, msgPrepareFailed)
	}

	c.mu.Lock()
	c.errMsg = ""
	c.transition(StateSubmitting)
	c.unlockAndNotify()

	result, err := c.client.Predict(ctx, req, snap)
	if err != nil {
		kind := scoring.KindOf(err)
		c.logger.Warn("prediction failed",
			zap.String("kind", string(kind)),
			zap.Bool("unreachable", scoring.IsUnreachable(err)),
			zap.Error(err))
		out := c.fail(entry, checked.Warnings, kind, scoring.Message(err))
		out.Unreachable = scoring.IsUnreachable(err)
		return out
	}

	c.mu.Lock()
	c.history.Record(result)
	current := result.Clone()
	c.current = &current
	size := c.history.Len()
	c.transition(StateSucceeded)
	c.transition(StateIdle)
	c.unlockAndNotify()

	c.logger.Debug("result recorded", zap.String("id", result.ID), zap.Int("history", size))
	out := Outcome{Status: StatusSucceeded, Result: result, Warnings: checked.Warnings}
	c.record(entry, out)
	return out
}

// fail moves through Failed back to Idle. The current result and history are untouched.
func (c *Controller) fail(entry logging.AttemptEntry, warnings []string, kind scoring.Kind, msg string) Outcome {
	c.mu.Lock()
	c.errMsg = msg
	c.transition(StateFailed)
	c.transition(StateIdle)
	c.unlockAndNotify()

	out := Outcome{Status: StatusFailed, Message: msg, Warnings: warnings, Kind: kind}
	c.record(entry, out)
	return out
}

// #endregion

// #region transitions

// transition must be called with mu held.
func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	c.logger.Debug("transition", zap.Stringer("from", from), zap.Stringer("to", to))
	if c.onTransition != nil {
		c.pending = append(c.pending, [2]State{from, to})
	}
}

// unlockAndNotify releases mu, then reports queued transitions so the hook
// may call back into the controller.
func (c *Controller) unlockAndNotify() {
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, t := range pending {
		c.onTransition(t[0], t[1])
	}
}

// #endregion

// #region ledger

func (c *Controller) record(entry logging.AttemptEntry, out Outcome) {
	if c.ledger == nil {
		return
	}
	entry.FinishedAt = c.now()
	entry.Warnings = out.Warnings
	switch out.Status {
	case StatusSucceeded:
		entry.Outcome = logging.OutcomeSucceeded
		entry.ResultID = out.Result.ID
		entry.RiskLevel = string(out.Result.RiskLevel)
		entry.Probability = out.Result.Probability
	case StatusInvalid:
		entry.Outcome = logging.OutcomeInvalid
		entry.Message = out.Message
	case StatusBusy:
		entry.Outcome = logging.OutcomeBusy
		entry.Message = out.Message
	default:
		entry.Outcome = logging.OutcomeFailed
		entry.Kind = string(out.Kind)
		entry.Message = out.Message
	}
	if err := c.ledger.Record(entry); err != nil {
		c.logger.Warn("ledger write failed", zap.Error(err))
	}
}

// #endregion

// #region accessors

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Loading reports whether a request is on the wire.
func (c *Controller) Loading() bool {
	return c.State() == StateSubmitting
}

// Snapshot returns a copy of the form.
func (c *Controller) Snapshot() form.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot.Clone()
}

// Completion is the fraction of required fields that hold a value.
func (c *Controller) Completion() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return form.Completion(c.snapshot)
}

// Current returns the displayed result, if any.
func (c *Controller) Current() (prediction.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return prediction.Result{}, false
	}
	return c.current.Clone(), true
}

// Error returns the message of the last failed submit, or "".
func (c *Controller) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// LastWarnings returns the advisory warnings of the last submit.
func (c *Controller) LastWarnings() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.warnings...)
}

// History returns the session's results, newest first.
func (c *Controller) History() []prediction.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.All()
}

// Find returns a result from the session history by id.
func (c *Controller) Find(id string) (prediction.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Get(id)
}

// #endregion
