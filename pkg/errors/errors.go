// Package errors provides structured error types for panelize.
//
// Every failure in the panelize pipeline is fatal, but callers still need to
// know which step failed. Errors therefore carry a machine-readable [Code]
// that names the failing operation (reading the input, parsing XML, reading
// a dimension attribute, writing the output, ...) alongside a human-readable
// message and an optional cause.
//
// # Error Codes
//
//   - INPUT_IO, OUTPUT_IO: file system failures
//   - PARSE_ERROR, SERIALIZE_ERROR: XML decoding and encoding
//   - MISSING_ATTRIBUTE, INVALID_LENGTH, INVALID_VIEWBOX: root element problems
//   - INVALID_GRID, INVALID_CONFIG, INVALID_PATH: user-supplied settings
//   - PREVIEW_ERROR: PNG rasterization
//   - INTERNAL_ERROR: anything unexpected
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingAttribute, "failed to find %s on svg node", "width")
//	if errors.Is(err, errors.ErrCodeMissingAttribute) {
//	    // Handle missing attribute
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInputIO, origErr, "failed to open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// I/O errors
	ErrCodeInputIO  Code = "INPUT_IO"
	ErrCodeOutputIO Code = "OUTPUT_IO"

	// Document errors
	ErrCodeParse            Code = "PARSE_ERROR"
	ErrCodeSerialize        Code = "SERIALIZE_ERROR"
	ErrCodeMissingAttribute Code = "MISSING_ATTRIBUTE"
	ErrCodeInvalidLength    Code = "INVALID_LENGTH"
	ErrCodeInvalidViewBox   Code = "INVALID_VIEWBOX"

	// Settings errors
	ErrCodeInvalidGrid   Code = "INVALID_GRID"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Preview errors
	ErrCodePreview Code = "PREVIEW_ERROR"

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
