// Package errors provides structured error types for ptable.
//
// Every configuration mistake a caller can make while describing a periodic
// table is reported as an [*Error] carrying a machine-readable [Code]. The
// renderer never substitutes defaults for these: a render call either
// succeeds completely or fails with one of the codes below.
//
// # Error Codes
//
//   - UNSUPPORTED_SHAPE: the frame shape is not known to the drawing backend
//   - COLOR_LENGTH: an explicit per-element colour list is not 103 long
//   - GRADIENT_LABEL_CONFLICT: a gradient channel also carries labels
//   - UNKNOWN_ELEMENT: a symbol or atomic number outside H..Lr
//   - UNKNOWN_PROPERTY, UNKNOWN_COLORMAP, INVALID_COLOR: bad gradient or colour values
//   - INVALID_CONFIG, INVALID_FORMAT, INVALID_FORMULA: malformed input
//   - IO_ERROR: reading or writing files
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnsupportedShape, "unsupported shape %q", name)
//	if errors.Is(err, errors.ErrCodeUnsupportedShape) {
//	    // caller asked for a shape we cannot draw
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors raised while resolving a table.
	ErrCodeUnsupportedShape      Code = "UNSUPPORTED_SHAPE"
	ErrCodeColorLength           Code = "COLOR_LENGTH"
	ErrCodeGradientLabelConflict Code = "GRADIENT_LABEL_CONFLICT"
	ErrCodeUnknownElement        Code = "UNKNOWN_ELEMENT"
	ErrCodeUnknownProperty       Code = "UNKNOWN_PROPERTY"
	ErrCodeUnknownColormap       Code = "UNKNOWN_COLORMAP"
	ErrCodeInvalidColor          Code = "INVALID_COLOR"

	// Input errors
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidFormula Code = "INVALID_FORMULA"

	// Filesystem errors
	ErrCodeIO Code = "IO_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
