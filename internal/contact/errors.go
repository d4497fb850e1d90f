package contact

import (
	"errors"
	"fmt"
)

// Reason is the rule a submission broke.
type Reason int

const (
	// ReasonMissing means a required field was empty or whitespace-only.
	ReasonMissing Reason = iota
	// ReasonEmailShape means the email did not look like local@domain.tld.
	ReasonEmailShape
)

// String returns a human-readable name for the reason
func (r Reason) String() string {
	switch r {
	case ReasonMissing:
		return "missing"
	case ReasonEmailShape:
		return "email_shape"
	default:
		return fmt.Sprintf("Reason(%d)", r)
	}
}

// User-facing alert text for each reason.
const (
	MessageMissing    = "Please fill in all required fields."
	MessageEmailShape = "Please enter a valid email address."
)

// ValidationError describes why a submission was rejected.
type ValidationError struct {
	Field   string // Form field name, e.g. "email"
	Reason  Reason
	Message string // Text shown to the user
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s (%s): %s", e.Field, e.Reason, e.Message)
}

// NewValidationError builds a ValidationError with the stock message for reason.
func NewValidationError(field string, reason Reason) *ValidationError {
	msg := MessageMissing
	if reason == ReasonEmailShape {
		msg = MessageEmailShape
	}
	return &ValidationError{Field: field, Reason: reason, Message: msg}
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError extracts the *ValidationError from err, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
