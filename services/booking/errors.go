package booking

import (
	"errors"
	"fmt"
)

// BookingError carries a machine-readable code alongside the user-facing
// message. Validation failures and missing records are expected business
// outcomes and are reported through these, never through panics.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeValidation = "validationError"
	CodeNotFound   = "notFound"
)

// NewValidationError reports an unmet checkout or protocol precondition.
func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

// NewNotFoundError reports a missing draft session or booking record.
func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var be *BookingError
	return errors.As(err, &be) && be.Code == CodeValidation
}

// IsNotFound reports whether err is a missing-record failure.
func IsNotFound(err error) bool {
	var be *BookingError
	return errors.As(err, &be) && be.Code == CodeNotFound
}
