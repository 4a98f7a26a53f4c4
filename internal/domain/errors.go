package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicateKey reports an insert whose identifier is already taken.
	ErrDuplicateKey = errors.New("already exists")
	// ErrNotFound reports a reference to something that does not exist.
	ErrNotFound = errors.New("not found")

	// Account errors
	ErrAccountExists   = fmt.Errorf("account %w", ErrDuplicateKey)
	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)

	// Transaction errors
	ErrTransactionExists = fmt.Errorf("transaction %w", ErrDuplicateKey)

	// Transfer errors
	ErrSameAccount = &ValidationError{Field: "to_account_id", Reason: "cannot transfer to same account"}
)

// ValidationError describes malformed input for a single field.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
