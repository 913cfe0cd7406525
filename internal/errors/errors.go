// Package errors provides standardized domain errors with codes for the
// propdata API.
//
// Usage:
//
//	// In the engine or handlers - return typed errors
//	if table.Empty() {
//	    return errors.NoUsableData("no valid data found in the uploaded files")
//	}
//
//	// In handlers - check with errors.Is
//	if errors.Is(err, errors.ErrNoUsableData) {
//	    response.HandleError(w, err, logger)
//	    return
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	CodeValidation      Code = "VALIDATION"
	CodeUnsupportedFile Code = "UNSUPPORTED_FILE"
	CodeTooLarge        Code = "TOO_LARGE"
	CodeNoUsableData    Code = "NO_USABLE_DATA"
	CodeInternal        Code = "INTERNAL"
)

// HTTPStatus returns the appropriate HTTP status code for an error code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation, CodeUnsupportedFile, CodeNoUsableData:
		return http.StatusBadRequest
	case CodeTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrValidation      = &Error{Code: CodeValidation, Message: "validation error"}
	ErrUnsupportedFile = &Error{Code: CodeUnsupportedFile, Message: "unsupported file type"}
	ErrTooLarge        = &Error{Code: CodeTooLarge, Message: "upload too large"}
	ErrNoUsableData    = &Error{Code: CodeNoUsableData, Message: "no usable data"}
	ErrInternal        = &Error{Code: CodeInternal, Message: "internal error"}
)

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// UnsupportedFile creates an unsupported file error.
func UnsupportedFile(msg string) *Error {
	return &Error{Code: CodeUnsupportedFile, Message: msg}
}

// UnsupportedFilef creates an unsupported file error with formatted message.
func UnsupportedFilef(format string, args ...any) *Error {
	return &Error{Code: CodeUnsupportedFile, Message: fmt.Sprintf(format, args...)}
}

// TooLarge creates an upload-too-large error.
func TooLarge(msg string) *Error {
	return &Error{Code: CodeTooLarge, Message: msg}
}

// NoUsableData creates a no-usable-data error.
func NoUsableData(msg string) *Error {
	return &Error{Code: CodeNoUsableData, Message: msg}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}
