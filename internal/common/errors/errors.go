// Package errors provides standardized error handling for the matchmaking engine.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeProfileIncomplete ErrorCode = "PROFILE_INCOMPLETE"

	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodeResetNotRequested ErrorCode = "RESET_NOT_REQUESTED"
	ErrCodeSessionClosed     ErrorCode = "SESSION_CLOSED"

	ErrCodePoolSourceFailed   ErrorCode = "POOL_SOURCE_FAILED"
	ErrCodeCatalogInvalid     ErrorCode = "CATALOG_INVALID"
	ErrCodeSearchBackendError ErrorCode = "SEARCH_BACKEND_ERROR"

	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Is reports whether target carries the same error code.
func (e *StandardError) Is(target error) bool {
	var se *StandardError
	if errors.As(target, &se) {
		return se.Code == e.Code
	}
	return false
}

// CodeOf extracts the error code from err, or empty string for foreign errors.
func CodeOf(err error) ErrorCode {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// ==========================
// 2. Error Constructors
// ==========================

// NewProfileIncompleteError creates the non-retryable start-rejection error.
// Missing carries the exact ordered field list so callers can route the user
// to profile completion instead of crashing.
func NewProfileIncompleteError(missing []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileIncomplete,
		Message:   "Match profile is missing required fields",
		Details:   fmt.Sprintf("missing fields: %v", missing),
		Retryable: false,
		Metadata:  map[string]interface{}{"missingFields": missing},
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidTransitionError creates a non-retryable state machine error.
func NewInvalidTransitionError(from, requested string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidTransition,
		Message:   "Queue transition not allowed from current state",
		Details:   fmt.Sprintf("state %s does not accept %s", from, requested),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewResetNotRequestedError creates the error returned when a reset is
// confirmed without a pending confirmation step.
func NewResetNotRequestedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeResetNotRequested,
		Message:   "Reset confirmation without a pending reset request",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionClosedError creates the error returned for operations on a
// torn-down session.
func NewSessionClosedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionClosed,
		Message:   "Queue session has been closed",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPoolSourceError creates a retryable candidate pool backend error.
func NewPoolSourceError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePoolSourceFailed,
		Message:   "Candidate pool source failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogInvalidError creates a non-retryable seed catalog error.
func NewCatalogInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogInvalid,
		Message:   "Candidate catalog failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchBackendError creates a retryable browse search backend error.
func NewSearchBackendError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchBackendError,
		Message:   "Search backend query failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
