package domain

import (
	"errors"
	"fmt"
)

// ValidationError indicates bad input (invalid range, past dates).
// Safe to retry with corrected input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) error {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError indicates a business-rule or concurrency collision
// (duplicate key, analyst already assigned, pattern conflict). The caller
// should re-fetch state before retrying with different parameters.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

func NewConflictError(format string, args ...any) error {
	return ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ConfigurationError indicates missing reference data (no analyst for a
// rotation slot, missing monitoring kind). Not retryable until an operator
// fixes the data.
type ConfigurationError struct {
	Message string
}

func (e ConfigurationError) Error() string {
	return e.Message
}

func NewConfigurationError(format string, args ...any) error {
	return ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// StateError indicates an operation on a request that is no longer in the
// expected lifecycle state. The caller holds stale data and should refresh.
type StateError struct {
	Message string
}

func (e StateError) Error() string {
	return e.Message
}

func NewStateError(format string, args ...any) error {
	return StateError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var e ValidationError
	return errors.As(err, &e)
}

func IsConflictError(err error) bool {
	var e ConflictError
	return errors.As(err, &e)
}

func IsConfigurationError(err error) bool {
	var e ConfigurationError
	return errors.As(err, &e)
}

func IsStateError(err error) bool {
	var e StateError
	return errors.As(err, &e)
}
