// Package errors provides structured error types for FormSight.
//
// All errors in FormSight should use these types to enable consistent
// error handling, logging, and retry logic across the codebase.
package errors

import (
	"fmt"
)

// ErrorCode represents a unique error identifier for categorization.
type ErrorCode string

// Common error codes used throughout FormSight.
const (
	// Geometry errors
	CodeDegenerateGeometry ErrorCode = "DEGENERATE_GEOMETRY"

	// Catalog errors
	CodeCatalogInvalid  ErrorCode = "CATALOG_INVALID"
	CodeExerciseUnknown ErrorCode = "EXERCISE_UNKNOWN"

	// Detector errors
	CodeDetectorUnavailable ErrorCode = "DETECTOR_UNAVAILABLE"
	CodeDetectorResponse    ErrorCode = "DETECTOR_RESPONSE"
	CodeInvalidImage        ErrorCode = "INVALID_IMAGE"
	CodeInvalidLandmarks    ErrorCode = "INVALID_LANDMARKS"

	// Infrastructure errors
	CodeStorageError ErrorCode = "STORAGE_ERROR"
	CodePubSubError  ErrorCode = "PUBSUB_ERROR"
	CodeSecretError  ErrorCode = "SECRET_ERROR"

	// General errors
	CodeValidationError ErrorCode = "VALIDATION_ERROR"
	CodeInternalError   ErrorCode = "INTERNAL_ERROR"
)

// FormSightError is the base error type for all FormSight errors.
// It provides structured error information including error codes,
// retry semantics, and contextual metadata.
type FormSightError struct {
	Code      ErrorCode         // Unique error code for categorization
	Message   string            // Human-readable error message
	Cause     error             // Underlying error (if any)
	Retryable bool              // Whether the operation can be retried
	Metadata  map[string]string // Additional context
}

// Error implements the error interface.
func (e *FormSightError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *FormSightError) Unwrap() error {
	return e.Cause
}

// Is matches any FormSightError carrying the same code, so copies made
// with WithCause/WithMessage/WithMetadata still satisfy errors.Is
// against the sentinel they derive from.
func (e *FormSightError) Is(target error) bool {
	fe, ok := target.(*FormSightError)
	return ok && fe.Code == e.Code
}

// WithCause wraps an underlying error.
func (e *FormSightError) WithCause(cause error) *FormSightError {
	return &FormSightError{
		Code:      e.Code,
		Message:   e.Message,
		Cause:     cause,
		Retryable: e.Retryable,
		Metadata:  e.Metadata,
	}
}

// WithMessage adds a custom message.
func (e *FormSightError) WithMessage(msg string) *FormSightError {
	return &FormSightError{
		Code:      e.Code,
		Message:   msg,
		Cause:     e.Cause,
		Retryable: e.Retryable,
		Metadata:  e.Metadata,
	}
}

// WithMetadata adds contextual metadata.
func (e *FormSightError) WithMetadata(key, value string) *FormSightError {
	meta := make(map[string]string)
	for k, v := range e.Metadata {
		meta[k] = v
	}
	meta[key] = value
	return &FormSightError{
		Code:      e.Code,
		Message:   e.Message,
		Cause:     e.Cause,
		Retryable: e.Retryable,
		Metadata:  meta,
	}
}

// Pre-defined sentinel errors for common cases.
// Use these with errors.Is() or wrap them with .WithCause().
var (
	// Geometry errors
	ErrDegenerateGeometry = &FormSightError{Code: CodeDegenerateGeometry, Message: "coincident points produce an undefined angle", Retryable: false}

	// Catalog errors
	ErrCatalogInvalid  = &FormSightError{Code: CodeCatalogInvalid, Message: "exercise catalog configuration is inconsistent", Retryable: false}
	ErrExerciseUnknown = &FormSightError{Code: CodeExerciseUnknown, Message: "exercise not in database", Retryable: false}

	// Detector errors
	ErrDetectorUnavailable = &FormSightError{Code: CodeDetectorUnavailable, Message: "pose detector unreachable", Retryable: true}
	ErrDetectorResponse    = &FormSightError{Code: CodeDetectorResponse, Message: "pose detector returned an unusable response", Retryable: false}
	ErrInvalidImage        = &FormSightError{Code: CodeInvalidImage, Message: "invalid image data", Retryable: false}
	ErrInvalidLandmarks    = &FormSightError{Code: CodeInvalidLandmarks, Message: "invalid landmark data", Retryable: false}

	// Infrastructure errors
	ErrStorage = &FormSightError{Code: CodeStorageError, Message: "storage operation failed", Retryable: true}
	ErrPubSub  = &FormSightError{Code: CodePubSubError, Message: "pub/sub operation failed", Retryable: true}
	ErrSecret  = &FormSightError{Code: CodeSecretError, Message: "secret access failed", Retryable: true}
)

// IsRetryable reports whether err (or any error it wraps) is a
// FormSightError marked retryable.
func IsRetryable(err error) bool {
	for err != nil {
		if fe, ok := err.(*FormSightError); ok {
			return fe.Retryable
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
