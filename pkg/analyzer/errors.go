package analyzer

import (
	"errors"

	"github.com/helmcode/news-analyzer/pkg/validator"
)

// FailureMessage is shown for every request failure, whatever the cause.
const FailureMessage = "Error analyzing text. Please try again."

// ValidationError means the input was rejected before any request was sent.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return "validation failed: " + e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// UserMessage is the notification text for this failure.
func (e *ValidationError) UserMessage() string { return validator.Message }

// RequestError covers network failures, non-2xx responses and unusable
// completions. Callers show FailureMessage; Err is kept for logs.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return "analysis request failed: " + e.Err.Error() }

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) UserMessage() string { return FailureMessage }

// UserMessage returns the notification text for err. Unclassified errors get
// the generic failure message.
func UserMessage(err error) string {
	var msg interface{ UserMessage() string }
	if errors.As(err, &msg) {
		return msg.UserMessage()
	}
	return FailureMessage
}

// IsValidation reports whether err came from input validation.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
