package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single movement of money against one account.
// Amount is always strictly positive; direction comes from Type.
type Transaction struct {
	ID          string
	AccountID   string
	TransferID  string
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Category    Category
	Date        time.Time
	CreatedAt   time.Time
}

// NewTransaction builds a validated transaction dated at now.
func NewTransaction(
	id, accountID string,
	txType TransactionType,
	amount decimal.Decimal,
	description string,
	category Category,
	now time.Time,
) (*Transaction, error) {
	t := &Transaction{
		ID:          id,
		AccountID:   accountID,
		Type:        txType,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        now,
		CreatedAt:   now,
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks every field invariant. Construction and all setters go through it.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return NewValidationError("id", "transaction ID cannot be empty")
	}

	if err := ValidateAccountID(t.AccountID); err != nil {
		return err
	}

	if !t.Type.IsValid() {
		return NewValidationError("type", "transaction type is required")
	}

	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}

	if !t.Category.IsValid() {
		return NewValidationError("category", "category is required")
	}

	if t.Date.IsZero() {
		return NewValidationError("date", "transaction date is required")
	}

	return nil
}

// SetAmount replaces the amount, rejecting non-positive values.
func (t *Transaction) SetAmount(amount decimal.Decimal) error {
	return t.apply(func(c *Transaction) { c.Amount = amount })
}

// SetType replaces the direction.
func (t *Transaction) SetType(txType TransactionType) error {
	return t.apply(func(c *Transaction) { c.Type = txType })
}

// SetCategory replaces the category.
func (t *Transaction) SetCategory(category Category) error {
	return t.apply(func(c *Transaction) { c.Category = category })
}

// SetDescription replaces the description.
func (t *Transaction) SetDescription(description string) {
	t.Description = description
}

// SetDate overrides the transaction date. A zero time is rejected.
func (t *Transaction) SetDate(date time.Time) error {
	return t.apply(func(c *Transaction) { c.Date = date })
}

// SignedAmount is +Amount for income and -Amount for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// IsIncome reports whether t is an income transaction.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether t is an expense transaction.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// Clone returns a copy that shares no state with t.
func (t *Transaction) Clone() *Transaction {
	c := *t
	return &c
}

// apply mutates a copy, validates it and only then commits, so a failed setter leaves t unchanged.
func (t *Transaction) apply(mutate func(*Transaction)) error {
	c := *t
	mutate(&c)

	if err := c.Validate(); err != nil {
		return err
	}

	*t = c

	return nil
}
