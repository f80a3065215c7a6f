// Package errors provides structured error types and exit codes for xidgen.
package errors

import (
	"fmt"
)

// Exit codes. The generator's contract is binary: everything that is not a
// clean run exits 1.
const (
	ExitSuccess = 0 // Success
	ExitFailure = 1 // Usage, input, or schema error
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindUsage             // wrong argument count
	KindInput             // input archive missing or unreadable
	KindSchema            // worksheet header missing a required column
)

// XidgenError is the base error type for xidgen.
type XidgenError struct {
	Kind    ErrorKind
	Message string
	Sheet   string // Worksheet part name if applicable
	Cause   error  // Underlying error
}

func (e *XidgenError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%s: %s", e.Sheet, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *XidgenError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *XidgenError) ExitCode() int {
	return ExitFailure
}

// New creates a new runtime error.
func New(message string) *XidgenError {
	return &XidgenError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *XidgenError {
	return New(fmt.Sprintf(format, args...))
}

// Input creates a new input error.
func Input(message string) *XidgenError {
	return &XidgenError{
		Kind:    KindInput,
		Message: message,
	}
}

// Inputf creates a new input error with formatting.
func Inputf(format string, args ...interface{}) *XidgenError {
	return Input(fmt.Sprintf(format, args...))
}

// Schema creates a new schema error for a worksheet part.
func Schema(sheet, message string) *XidgenError {
	return &XidgenError{
		Kind:    KindSchema,
		Sheet:   sheet,
		Message: message,
	}
}

// Schemaf creates a new schema error with formatting.
func Schemaf(sheet, format string, args ...interface{}) *XidgenError {
	return Schema(sheet, fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *XidgenError {
	return &XidgenError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if xe, ok := err.(*XidgenError); ok {
		return xe.ExitCode()
	}
	return ExitFailure
}
