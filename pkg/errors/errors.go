// Package errors provides structured error types for photosheet.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes separate fatal run preconditions from per-image conditions:
//   - DIRECTORY_NOT_FOUND, INSUFFICIENT_IMAGES: whole-run failures
//   - UNREADABLE_IMAGE: per-image, degrades to backfill or skip
//   - INVALID_*: configuration and flag validation failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInsufficientImages, "need at least %d images, found %d", 4, n)
//	if errors.Is(err, errors.ErrCodeInsufficientImages) {
//	    // Handle the precondition failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeUnreadableImage, decodeErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Whole-run precondition failures
	ErrCodeDirectoryNotFound  Code = "DIRECTORY_NOT_FOUND"
	ErrCodeInsufficientImages Code = "INSUFFICIENT_IMAGES"

	// Per-image failures
	ErrCodeUnreadableImage Code = "UNREADABLE_IMAGE"

	// Configuration validation failures
	ErrCodeInvalidProfile Code = "INVALID_PROFILE"
	ErrCodeInvalidOptions Code = "INVALID_OPTIONS"

	// Unexpected internal errors
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
		return e.Message
	}
	return err.Error()
}
