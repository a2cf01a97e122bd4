// Package errors defines the closed failure taxonomy shared by the entity
// constructors, the store, and ingestion callers.
//
// "Not found" for single-entity lookups is an expected outcome, not a
// failure, and is represented by the store as an explicit nil result rather
// than a value from this package.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code names one failure kind from the closed taxonomy.
type Code string

const (
	// CodeDatabase covers any underlying storage failure, including
	// constraint violations.
	CodeDatabase Code = "DATABASE"

	// CodeFileNotFound means a referenced file path does not exist. Raised
	// by ingestion callers, never by the store itself.
	CodeFileNotFound Code = "FILE_NOT_FOUND"

	// CodeUnsupportedFormat means the file extension maps to no known
	// book type.
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"

	// CodeParse is surfaced from external parsing collaborators and is
	// opaque to the core.
	CodeParse Code = "PARSE_ERROR"

	// CodeIO covers filesystem failures outside the store.
	CodeIO Code = "IO_ERROR"
)

// Error carries a taxonomy code alongside a message and optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a taxonomy error without an underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap classifies an existing error under a taxonomy code.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Is reports whether err (or anything it wraps) carries the given code.
func Is(err error, code Code) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf extracts the taxonomy code from err. The second return is false for
// errors that never passed through this package.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}
