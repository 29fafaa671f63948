package core

import "github.com/pkg/errors"

// FieldError pins a validation failure to a form field, named by its wire
// (json/form) tag. The web error handler renders a field->message map out of
// these as the 400 response body.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a request validation failure raised past struct-tag
// validation, such as a uniqueness clash against the repositories or a
// category name that resolves to nothing. Err carries the underlying
// sentinel; Fields pins the failure to form fields when known.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// Unwrap exposes the underlying sentinel to errors.Is checks.
func (err ValidationError) Unwrap() error { return err.Err }

// shutdown marks an error as unrecoverable. The web error handler traps it
// and stops the server gracefully instead of answering further requests.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown reports whether err, at its cause, was built by
// NewShutdownError. Wrapping does not hide it.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
