package domain

import (
	"errors"
	"strings"
)

// ErrTaskNotFound is returned when a task does not exist for the caller.
// A task owned by another user maps to the same error so responses never
// reveal whether the id exists at all.
var ErrTaskNotFound = errors.New("task not found")

// ValidationError reports one or more malformed input fields. The message
// lists every violated constraint in one string.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, ", ")
}

// NewValidationError builds a ValidationError from constraint messages.
func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}
