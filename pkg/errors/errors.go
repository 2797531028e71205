// Package errors provides structured error types for sparkbar.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the chart engine, CLI and HTTP server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_TOO_SMALL / *_TOO_NARROW: Numeric constraints that cannot be met
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeBarGapTooSmall, "bar gap less than 1: %v", gap)
//	if errors.Is(err, errors.ErrCodeBarGapTooSmall) {
//	    // Handle validation error
//	}
//
//	// Invalid colors carry the offending slot
//	var ce *errors.ColorError
//	if stderrors.As(err, &ce) {
//	    fmt.Println(ce.Slot)
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Chart validation errors
	ErrCodeInvalidChartType        Code = "INVALID_CHART_TYPE"
	ErrCodeEmptyHeights            Code = "EMPTY_HEIGHTS"
	ErrCodeMinimumBarWidthTooSmall Code = "MINIMUM_BAR_WIDTH_TOO_SMALL"
	ErrCodeBarGapTooSmall          Code = "BAR_GAP_TOO_SMALL"
	ErrCodeInvalidColor            Code = "INVALID_COLOR"

	// Layout errors
	ErrCodeSurfaceTooNarrow Code = "SURFACE_TOO_NARROW"
	ErrCodeDegenerateScale  Code = "DEGENERATE_SCALE"

	// Input errors outside the chart itself
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

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
// It unwraps the error chain looking for an *Error or *ColorError with a
// matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var ce *ColorError
	if errors.As(err, &ce) {
		return ErrCodeInvalidColor
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

// ColorSlot names one of the three fill colors of a chart.
type ColorSlot string

// Fill color slots.
const (
	SlotMinus ColorSlot = "fillColorMinus"
	SlotZero  ColorSlot = "fillColorZero"
	SlotPlus  ColorSlot = "fillColorPlus"
)

// ColorError reports a fill color that is not a valid CSS color.
type ColorError struct {
	Slot  ColorSlot // Which fill color was rejected
	Value string    // The rejected value
}

// Error implements the error interface.
func (e *ColorError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %q", ErrCodeInvalidColor, e.Slot, e.Value)
}

// Code returns the error code for this error type.
func (e *ColorError) Code() Code {
	return ErrCodeInvalidColor
}
