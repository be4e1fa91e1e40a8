package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnrecognizedFormat indicates that an uploaded statement does not look like a bank exchange file at all.
var ErrUnrecognizedFormat = errors.New("unrecognized statement format")

// ErrConfirmationRequired indicates that an import into a non-empty ledger needs an explicit
// replace or merge decision from the caller before anything is committed.
var ErrConfirmationRequired = errors.New("import strategy must be chosen before committing")

// ErrRegimeMisconfigured indicates that a tax regime configuration cannot be computed.
var ErrRegimeMisconfigured = errors.New("tax regime misconfigured")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
