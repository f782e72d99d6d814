// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for wedplan.

Every failure that leaves the data-access layer is an [AppError]. The console
only ever shows [AppError.Message]; the wrapped Cause is written to the
persistent error log.

Codes:

  - CONNECTION_UNAVAILABLE: no live database connection, operation skipped.
  - REFERENTIAL_VIOLATION: a foreign reference is missing or dependents block a delete.
  - UNIQUENESS_VIOLATION: a duplicate key was rejected.
  - EXECUTION_FAILED: any other statement failure.
  - SYNC_FAILED: a serial sequence could not be resynchronized.
  - VALIDATION_ERROR: input rejected before reaching the store.
  - NOT_FOUND: a row addressed by identity does not exist.
*/
package apperr

import (
	"errors"
	"fmt"
)

// # Codes

const (
	CodeConnectionUnavailable = "CONNECTION_UNAVAILABLE"
	CodeReferentialViolation  = "REFERENTIAL_VIOLATION"
	CodeUniquenessViolation   = "UNIQUENESS_VIOLATION"
	CodeExecutionFailed       = "EXECUTION_FAILED"
	CodeSyncFailed            = "SYNC_FAILED"
	CodeValidation            = "VALIDATION_ERROR"
	CodeNotFound              = "NOT_FOUND"
)

// AppError is the canonical error type for wedplan.
//
// # Security
//
// The Cause field is for the error log only and is never printed to the
// console, so SQL text and driver internals stay out of the interactive view.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "REFERENTIAL_VIOLATION").
	Code string
	// Message is a short human-readable description safe to show on the console.
	Message string
	// Cause is the underlying error, used for logging only.
	Cause error
	// Reference correlates the console message with the error log entry.
	Reference string
	// Dependents is the number of rows blocking a delete, when applicable.
	Dependents int64
	// Reported is set once Message has been shown on the console.
	Reported bool
	// Details holds per-field validation errors for VALIDATION_ERROR.
	Details []FieldError
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the input field name that failed validation.
	Field string
	// Message is the human-readable description of the failure.
	Message string
}

// Error implements the error interface. It returns the console-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Constructors

// ConnectionUnavailable reports that an operation was skipped because the
// store is not connected.
func ConnectionUnavailable() *AppError {
	return &AppError{
		Code:    CodeConnectionUnavailable,
		Message: "Database connection is not established",
	}
}

// ReferentialViolation creates a REFERENTIAL_VIOLATION error for a write that
// points at a missing parent row.
func ReferentialViolation(msg string, cause error) *AppError {
	return &AppError{Code: CodeReferentialViolation, Message: msg, Cause: cause}
}

// DependentRows creates a REFERENTIAL_VIOLATION error for a delete that was
// refused because count dependent rows still reference the target.
//
// Example:
//
//	apperr.DependentRows("groom", 7, 2) // "Unable to delete groom (ID: 7): 2 related orders"
func DependentRows(entity string, id int, count int64) *AppError {
	return &AppError{
		Code:       CodeReferentialViolation,
		Message:    fmt.Sprintf("Unable to delete %s (ID: %d): %d related orders", entity, id, count),
		Dependents: count,
	}
}

// UniquenessViolation creates a UNIQUENESS_VIOLATION error.
func UniquenessViolation(msg string, cause error) *AppError {
	return &AppError{Code: CodeUniquenessViolation, Message: msg, Cause: cause}
}

// ExecutionFailed wraps an unexpected store-level error.
func ExecutionFailed(msg string, cause error) *AppError {
	return &AppError{Code: CodeExecutionFailed, Message: msg, Cause: cause}
}

// SyncFailed reports a sequence that could not be resynchronized.
func SyncFailed(table string, cause error) *AppError {
	return &AppError{
		Code:    CodeSyncFailed,
		Message: fmt.Sprintf("Failed to synchronize sequence for %s", table),
		Cause:   cause,
	}
}

// NotFound creates a NOT_FOUND error for a named resource.
//
// Example:
//
//	apperr.NotFound("Groom") // Returns "Groom not found"
func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found"}
}

// ValidationError creates a VALIDATION_ERROR with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{Code: CodeValidation, Message: msg, Details: details}
}

// # Helpers

// MarkReported marks err's [*AppError] as already shown on the console and
// returns err unchanged.
func MarkReported(err error) error {
	if ae := As(err); ae != nil {
		ae.Reported = true
	}
	return err
}

// IsReported reports whether err was already shown on the console.
func IsReported(err error) bool {
	ae := As(err)
	return ae != nil && ae.Reported
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
