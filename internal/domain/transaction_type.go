package domain

import "strings"

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

var transactionTypeInfo = map[TransactionType]enumInfo{
	TransactionTypeIncome:  {"Income", "Money coming in"},
	TransactionTypeExpense: {"Expense", "Money going out"},
}

// IsValid reports whether t is INCOME or EXPENSE.
func (t TransactionType) IsValid() bool {
	_, ok := transactionTypeInfo[t]
	return ok
}

// DisplayName returns the human-readable label.
func (t TransactionType) DisplayName() string {
	return transactionTypeInfo[t].display
}

// Description returns the static description.
func (t TransactionType) Description() string {
	return transactionTypeInfo[t].description
}

func (t TransactionType) String() string {
	return string(t)
}

// ParseTransactionType accepts "income"/"expense" in any case.
func ParseTransactionType(s string) (TransactionType, error) {
	s = strings.TrimSpace(s)
	for t := range transactionTypeInfo {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}

	return "", NewValidationError("type", "unknown transaction type "+quote(s))
}
