package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a named store of value with a running balance.
// Balance may be negative (credit cards, loans).
type Account struct {
	ID          string
	Name        string
	Type        AccountType
	Balance     decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAccount creates a validated account holding initialBalance.
func NewAccount(id, name string, accountType AccountType, initialBalance decimal.Decimal) (*Account, error) {
	if err := ValidateAccountID(id); err != nil {
		return nil, err
	}

	if err := ValidateAccountName(name); err != nil {
		return nil, err
	}

	if !accountType.IsValid() {
		return nil, NewValidationError("type", "account type is required")
	}

	now := time.Now().UTC()

	return &Account{
		ID:        id,
		Name:      name,
		Type:      accountType,
		Balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateBalance adds delta to the balance.
func (a *Account) UpdateBalance(delta decimal.Decimal) {
	a.Balance = a.Balance.Add(delta)
	a.touch()
}

// SetName renames the account.
func (a *Account) SetName(name string) error {
	if err := ValidateAccountName(name); err != nil {
		return err
	}

	a.Name = name
	a.touch()

	return nil
}

// SetType changes the account type.
func (a *Account) SetType(accountType AccountType) error {
	if !accountType.IsValid() {
		return NewValidationError("type", "account type is required")
	}

	a.Type = accountType
	a.touch()

	return nil
}

// SetDescription replaces the free-text description.
func (a *Account) SetDescription(description string) {
	a.Description = description
	a.touch()
}

// HasSufficientFunds reports whether the balance covers amount.
func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// Clone returns a copy that shares no state with a.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}

func (a *Account) touch() {
	a.UpdatedAt = time.Now().UTC()
}
