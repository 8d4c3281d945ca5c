// Package errors provides structured error types for fittool.
//
// All errors surfaced by the compiler, resolver, and FIT codec use these
// types to enable consistent error handling and categorization.
package errors

import (
	"fmt"
)

// ErrorCode represents a unique error identifier for categorization.
type ErrorCode string

// Common error codes used throughout fittool.
const (
	// Workout input errors
	CodeEmptyWorkout  ErrorCode = "EMPTY_WORKOUT"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeUnreadableDoc ErrorCode = "UNREADABLE_DOCUMENT"

	// FIT codec errors
	CodeEncodeError    ErrorCode = "ENCODE_ERROR"
	CodeDecodeError    ErrorCode = "DECODE_ERROR"
	CodeNotWorkoutFile ErrorCode = "NOT_WORKOUT_FILE"

	// Dictionary errors
	CodeDictionaryError ErrorCode = "DICTIONARY_ERROR"

	// General errors
	CodeValidationError ErrorCode = "VALIDATION_ERROR"
	CodeInternalError   ErrorCode = "INTERNAL_ERROR"
)

// Error is the base error type for all fittool errors. It provides
// structured error information including error codes and contextual
// metadata.
type Error struct {
	Code     ErrorCode         // Unique error code for categorization
	Message  string            // Human-readable error message
	Cause    error             // Underlying error (if any)
	Metadata map[string]string // Additional context
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on error code so sentinels work with errors.Is even after
// WithCause/WithMessage produce derived copies.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		Code:     e.Code,
		Message:  e.Message,
		Cause:    cause,
		Metadata: e.Metadata,
	}
}

// WithMessage adds a custom message.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{
		Code:     e.Code,
		Message:  msg,
		Cause:    e.Cause,
		Metadata: e.Metadata,
	}
}

// WithMetadata adds contextual metadata.
func (e *Error) WithMetadata(key, value string) *Error {
	meta := make(map[string]string)
	for k, v := range e.Metadata {
		meta[k] = v
	}
	meta[key] = value
	return &Error{
		Code:     e.Code,
		Message:  e.Message,
		Cause:    e.Cause,
		Metadata: meta,
	}
}

// Pre-defined sentinel errors for common cases.
// Use these with errors.Is() or wrap them with .WithCause().
var (
	ErrEmptyWorkout  = &Error{Code: CodeEmptyWorkout, Message: "workout contains no exercises"}
	ErrInvalidInput  = &Error{Code: CodeInvalidInput, Message: "invalid workout input"}
	ErrUnreadableDoc = &Error{Code: CodeUnreadableDoc, Message: "could not read workout document"}

	ErrEncode         = &Error{Code: CodeEncodeError, Message: "failed to encode FIT file"}
	ErrDecode         = &Error{Code: CodeDecodeError, Message: "failed to decode FIT file"}
	ErrNotWorkoutFile = &Error{Code: CodeNotWorkoutFile, Message: "file does not contain a FIT workout"}

	ErrDictionary = &Error{Code: CodeDictionaryError, Message: "exercise dictionary error"}

	ErrValidation = &Error{Code: CodeValidationError, Message: "validation error"}
	ErrInternal   = &Error{Code: CodeInternalError, Message: "internal error"}
)

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with a fittool Error.
func Wrap(cause error, code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// GetCode extracts the error code from an error, if available.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return CodeInternalError
}
