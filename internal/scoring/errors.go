package scoring

import (
	"errors"
	"fmt"
	"time"
)

// #region kind
// Kind classifies why a prediction exchange failed.
type Kind string

const (
	KindServerError    Kind = "server_error"    // service answered with a failure
	KindUnreachable    Kind = "unreachable"     // request sent, no response
	KindTimeout        Kind = "timeout"         // no response before the deadline
	KindRequestFailure Kind = "request_failure" // request never left the client
)

// #endregion kind

const (
	msgInvalidResponse = "Invalid response from prediction service"
	msgRequestFailure  = "Failed to make prediction request."
)

// #region error
// Error is returned by every client in this package.
type Error struct {
	Kind     Kind
	Status   string // HTTP status code or gRPC code name, server errors only
	Detail   string // message supplied by the service, if any
	Endpoint string
	Timeout  time.Duration
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("scoring %s", e.Kind)
	if e.Status != "" {
		msg += " (" + e.Status + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown to the person running the assessment.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindServerError:
		if e.Detail != "" {
			return e.Detail
		}
		return "Server error: " + e.Status
	case KindTimeout:
		return fmt.Sprintf("The prediction service did not respond within %s. Make sure the backend is running at %s.",
			e.Timeout, e.Endpoint)
	case KindUnreachable:
		return fmt.Sprintf("Cannot connect to the prediction service. Make sure the backend is running at %s.", e.Endpoint)
	default:
		return msgRequestFailure
	}
}

// IsUnreachable reports whether no response was received, timeouts included.
func (e *Error) IsUnreachable() bool {
	return e.Kind == KindUnreachable || e.Kind == KindTimeout
}

// #endregion error

// #region helpers

// Message converts any error from a client into user-facing text.
func Message(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.UserMessage()
	}
	return msgRequestFailure
}

// IsUnreachable reports whether err means the service gave no response.
func IsUnreachable(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.IsUnreachable()
}

// KindOf returns the classification of err, or KindRequestFailure for foreign errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindRequestFailure
}

// #endregion helpers
