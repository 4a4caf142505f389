package browser

import (
	"errors"
	"fmt"
)

// FailureKind names the condition that never became true, so a failing
// scenario reports which readiness signal it was blocked on.
type FailureKind string

const (
	FailureElementNotFound      FailureKind = "element_not_found"
	FailureVisibilityTimeout    FailureKind = "visibility_timeout"
	FailureAttributeTimeout     FailureKind = "attribute_timeout"
	FailureAnimationWaitTimeout FailureKind = "animation_wait_timeout"
	FailureNavigationTimeout    FailureKind = "navigation_timeout"
	FailureFlagTimeout          FailureKind = "flag_timeout"
	FailureRetryExhausted       FailureKind = "retry_exhausted"
)

// errPollTimeout marks a poll loop that ran out of budget. Callers wrap it
// into a StepError carrying the kind of condition that was being polled.
var errPollTimeout = errors.New("condition not satisfied within wait budget")

// StepError is a failed driver primitive. Kind identifies the wait that
// failed, Selector the element it targeted.
type StepError struct {
	Kind     FailureKind
	Selector string
	Detail   string
	Err      error
}

func (e *StepError) Error() string {
	msg := fmt.Sprintf("%s: %q", e.Kind, e.Selector)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// KindOf - extracts the failure kind from an error chain, or "" if the
// error did not originate from a driver primitive.
func KindOf(err error) FailureKind {
	var step *StepError
	if errors.As(err, &step) {
		return step.Kind
	}
	return ""
}
