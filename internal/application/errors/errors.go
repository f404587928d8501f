// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
)

// ValidationError indicates a request, filter or input document failed validation.
type ValidationError struct {
	Cause   error
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	if len(e.Details) > 0 {
		msg = fmt.Sprintf("%s (%d issues)", msg, len(e.Details))
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// WrapValidationError creates a validation error around a cause.
func WrapValidationError(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}

// GroupError indicates a plot group could not be resolved against the catalog.
type GroupError struct {
	Cause error
	Title string
	Index int // 1-based position in the plot set
}

func (e *GroupError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("plot group %d (%s): %v", e.Index, e.Title, e.Cause)
	}
	return fmt.Sprintf("plot group %d: %v", e.Index, e.Cause)
}

func (e *GroupError) Unwrap() error {
	return e.Cause
}
