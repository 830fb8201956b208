package pod

import (
	"errors"
	"fmt"
)

// PODError carries a machine-readable code alongside the user-facing message.
type PODError struct {
	Code    string
	Message string
}

func (e *PODError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeValidation = "validationError"
	CodeNotFound   = "notFound"
)

// NewValidationError reports a protocol step attempted out of order or with
// missing proof artifacts.
func NewValidationError(msg string) error {
	return &PODError{Code: CodeValidation, Message: msg}
}

// NewNotFoundError reports a missing booking or proof-of-delivery record.
func NewNotFoundError(msg string) error {
	return &PODError{Code: CodeNotFound, Message: msg}
}

// IsValidation reports whether err is a protocol or input failure.
func IsValidation(err error) bool {
	var pe *PODError
	return errors.As(err, &pe) && pe.Code == CodeValidation
}

// IsNotFound reports whether err is a missing-record failure.
func IsNotFound(err error) bool {
	var pe *PODError
	return errors.As(err, &pe) && pe.Code == CodeNotFound
}
