package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrIllegalTransition is returned when a status change violates the
	// job/group/assignment state machine
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrEmptyGroup is returned when a group is created with zero jobs
	ErrEmptyGroup = errors.New("group must contain at least one job")

	// ErrNoEligibleMessage is returned when a chat-job trigger finds no
	// user (or pm) message to respond to
	ErrNoEligibleMessage = errors.New("no eligible message in thread")

	// ErrChainCorrupt is returned when a group-chain walk detects a cycle
	// or a dangling next pointer
	ErrChainCorrupt = errors.New("group chain corrupt")

	// ErrGuardianLinked is returned when attempting to unlink a
	// guardian-mode thread from its assignment
	ErrGuardianLinked = errors.New("guardian thread cannot be unlinked")
)

// MaxChainDepth bounds every group-chain walk. A chain longer than this
// is treated as corrupt.
const MaxChainDepth = 10000

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
