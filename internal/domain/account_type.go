package domain

import "strings"

// AccountType classifies an account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
	AccountTypeInvestment AccountType = "INVESTMENT"
	AccountTypeCash       AccountType = "CASH"
	AccountTypeLoan       AccountType = "LOAN"
	AccountTypeMortgage   AccountType = "MORTGAGE"
)

type enumInfo struct {
	display     string
	description string
}

var accountTypeOrder = []AccountType{
	AccountTypeChecking,
	AccountTypeSavings,
	AccountTypeCreditCard,
	AccountTypeInvestment,
	AccountTypeCash,
	AccountTypeLoan,
	AccountTypeMortgage,
}

var accountTypeInfo = map[AccountType]enumInfo{
	AccountTypeChecking:   {"Checking Account", "Daily transactions and bill payments"},
	AccountTypeSavings:    {"Savings Account", "Long-term savings with interest"},
	AccountTypeCreditCard: {"Credit Card", "Credit line for purchases"},
	AccountTypeInvestment: {"Investment Account", "Stocks, bonds, and other investments"},
	AccountTypeCash:       {"Cash", "Physical cash on hand"},
	AccountTypeLoan:       {"Loan Account", "Personal or business loans"},
	AccountTypeMortgage:   {"Mortgage", "Home or property loans"},
}

// AccountTypes returns every account type in declaration order.
func AccountTypes() []AccountType {
	return append([]AccountType(nil), accountTypeOrder...)
}

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	_, ok := accountTypeInfo[t]
	return ok
}

// DisplayName returns the human-readable label.
func (t AccountType) DisplayName() string {
	return accountTypeInfo[t].display
}

// Description returns the static description.
func (t AccountType) Description() string {
	return accountTypeInfo[t].description
}

func (t AccountType) String() string {
	return string(t)
}

// ParseAccountType accepts an identifier or display label, case-insensitively.
func ParseAccountType(s string) (AccountType, error) {
	s = strings.TrimSpace(s)
	for _, t := range accountTypeOrder {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, t.DisplayName()) {
			return t, nil
		}
	}

	return "", NewValidationError("type", "unknown account type "+quote(s))
}

func quote(s string) string {
	return `"` + s + `"`
}
