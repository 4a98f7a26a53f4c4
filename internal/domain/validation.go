package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxAccountNameLength = 255
	MaxDescriptionLength = 1024
	MaxPageSize          = 1000
	DefaultPageSize      = 50
)

// ValidateAccountID rejects blank identifiers.
func ValidateAccountID(id string) error {
	if strings.TrimSpace(id) == "" {
		return NewValidationError("account_id", "account ID cannot be empty")
	}

	return nil
}

// ValidateAccountName validates account name
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return NewValidationError("name", "name cannot be empty")
	}

	if len(name) > MaxAccountNameLength {
		return NewValidationError("name", fmt.Sprintf("name exceeds %d characters", MaxAccountNameLength))
	}

	return nil
}

// ValidateAmount rejects zero and negative amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return NewValidationError("amount", "amount must be positive")
	}

	return nil
}

// ValidateDescription rejects blank or oversized descriptions.
func ValidateDescription(description string) error {
	description = strings.TrimSpace(description)

	if description == "" {
		return NewValidationError("description", "description cannot be empty")
	}

	if len(description) > MaxDescriptionLength {
		return NewValidationError("description", fmt.Sprintf("description exceeds %d characters", MaxDescriptionLength))
	}

	return nil
}

// ParseAmount parses user input into a decimal. Malformed input is a validation error;
// the sign is not checked here.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, NewValidationError("amount", "amount is required")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, NewValidationError("amount", fmt.Sprintf("%q is not a valid amount", s))
	}

	return d, nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
