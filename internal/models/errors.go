package models

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by repositories when a record does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a unique or protected reference constraint would be violated
var ErrConflict = errors.New("conflict")

// ValidationError collects every validation failure of a single request
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a validation error from one or more messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
