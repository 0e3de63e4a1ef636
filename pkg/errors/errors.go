// Package errors provides structured error types for cliquebench.
//
// Errors carry a machine-readable [Code] so the CLI can tell configuration
// mistakes apart from solver failures without string matching:
//   - INVALID_*: bad parameters, formats or dataset files
//   - SOLVER_*: problems with the external clique solver
//   - PARSE_ERROR: malformed solver output or results files
//   - NO_DATA: nothing to plot or summarize
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "clique size %d exceeds node count %d", k, n)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // generation aborted for this call
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeSolverFailed, origErr, "run %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidDataset Code = "INVALID_DATASET"
	ErrCodeInvalidName    Code = "INVALID_NAME"

	// Solver errors
	ErrCodeSolverNotFound Code = "SOLVER_NOT_FOUND"
	ErrCodeSolverFailed   Code = "SOLVER_FAILED"

	// Output handling
	ErrCodeParse  Code = "PARSE_ERROR"
	ErrCodeNoData Code = "NO_DATA"

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
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the chain holds no *Error.
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
		return e.Message
	}
	return err.Error()
}
