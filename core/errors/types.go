// ABOUTME: Custom error types for the syndication core
// ABOUTME: Provides structured errors for argument, format, state and fetch failures

package errors

import (
	"errors"
	"fmt"
)

// ArgumentError represents an invalid argument passed to an operation
type ArgumentError struct {
	Name    string
	Message string
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument '%s': %s", e.Name, e.Message)
}

// FormatError represents malformed or unrecognized syndication content
type FormatError struct {
	Format  string
	Message string
}

// Error implements the error interface
func (e *FormatError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("format error: %s", e.Message)
	}
	return fmt.Sprintf("format error (%s): %s", e.Format, e.Message)
}

// StateError represents an operation invoked while its owner is in the wrong state
type StateError struct {
	Operation string
	State     string
}

// Error implements the error interface
func (e *StateError) Error() string {
	return fmt.Sprintf("operation %s not permitted in state %s", e.Operation, e.State)
}

// OutOfRangeError represents a value outside its permitted range
type OutOfRangeError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %v out of range for '%s': %s", e.Value, e.Field, e.Message)
}

// FetchError represents a failure to retrieve a remote resource
type FetchError struct {
	URL        string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed for %s: %d - %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch failed for %s: %s", e.URL, e.Message)
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IsArgument checks if an error is an ArgumentError
func IsArgument(err error) bool {
	var argErr *ArgumentError
	return errors.As(err, &argErr)
}

// IsFormat checks if an error is a FormatError
func IsFormat(err error) bool {
	var formatErr *FormatError
	return errors.As(err, &formatErr)
}

// IsState checks if an error is a StateError
func IsState(err error) bool {
	var stateErr *StateError
	return errors.As(err, &stateErr)
}

// IsOutOfRange checks if an error is an OutOfRangeError
func IsOutOfRange(err error) bool {
	var rangeErr *OutOfRangeError
	return errors.As(err, &rangeErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
