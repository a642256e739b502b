package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidationFailed           = errors.New("completion validation failed")
	ErrBlockingFailure            = errors.New("blocking remote failure")
	ErrSignalConfirmationRequired = errors.New("signal failure requires operator confirmation")
	ErrSubmissionRejected         = errors.New("completion submission rejected")
)

// ValidationError lists every failed gate check. No remote call was made.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// BlockingError aborts the pipeline at Step.
type BlockingError struct {
	Step   string
	Reason string
	Err    error
}

func (e *BlockingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at %s: %s: %v", ErrBlockingFailure, e.Step, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s at %s: %s", ErrBlockingFailure, e.Step, e.Reason)
}

func (e *BlockingError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrBlockingFailure, e.Err}
	}
	return []error{ErrBlockingFailure}
}

// SignalConfirmationError is an overridable signal failure the operator
// declined or has not answered yet.
type SignalConfirmationError struct {
	Message string
}

func (e *SignalConfirmationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSignalConfirmationRequired, e.Message)
}

func (e *SignalConfirmationError) Unwrap() error { return ErrSignalConfirmationRequired }

// SubmissionError is a failure of the final commit call.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSubmissionRejected, e.Message)
}

func (e *SubmissionError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrSubmissionRejected, e.Err}
	}
	return []error{ErrSubmissionRejected}
}
