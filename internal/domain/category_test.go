package domain

import (
	"errors"
	"testing"
)

func TestCategoryPartition(t *testing.T) {
	income := map[Category]bool{
		CategorySalary:      true,
		CategoryFreelance:   true,
		CategoryInvestment:  true,
		CategoryBusiness:    true,
		CategoryGift:        true,
		CategoryOtherIncome: true,
	}

	all := Categories()
	if len(all) != 17 {
		t.Fatalf("expected 17 categories, got %d", len(all))
	}

	for _, c := range all {
		if c.IsIncome() == c.IsExpense() {
			t.Fatalf("%s must be exactly one of income or expense", c)
		}

		if c.IsIncome() != income[c] {
			t.Fatalf("%s: IsIncome() = %v", c, c.IsIncome())
		}

		if c.DisplayName() == "" || c.Description() == "" {
			t.Fatalf("%s: missing display metadata", c)
		}
	}

	if got := len(ExpenseCategories()); got != 11 {
		t.Fatalf("expected 11 expense categories, got %d", got)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"FOOD", CategoryFood},
		{"food", CategoryFood},
		{"Food & Dining", CategoryFood},
		{" investment returns ", CategoryInvestment},
		{"other_expense", CategoryOtherExpense},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if err != nil || got != tt.want {
			t.Fatalf("ParseCategory(%q) = %s, %v; want %s", tt.input, got, err, tt.want)
		}
	}

	if _, err := ParseCategory("Groceries"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseAccountType(t *testing.T) {
	got, err := ParseAccountType("credit card")
	if err != nil || got != AccountTypeCreditCard {
		t.Fatalf("expected CREDIT_CARD, got %s, %v", got, err)
	}

	got, err = ParseAccountType("mortgage")
	if err != nil || got != AccountTypeMortgage {
		t.Fatalf("expected MORTGAGE, got %s, %v", got, err)
	}

	if _, err := ParseAccountType("brokerage"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if len(AccountTypes()) != 7 {
		t.Fatalf("expected 7 account types, got %d", len(AccountTypes()))
	}
}

func TestParseTransactionType(t *testing.T) {
	got, err := ParseTransactionType("expense")
	if err != nil || got != TransactionTypeExpense {
		t.Fatalf("expected EXPENSE, got %s, %v", got, err)
	}

	if TransactionTypeIncome.DisplayName() != "Income" {
		t.Fatalf("unexpected display name %q", TransactionTypeIncome.DisplayName())
	}

	if _, err := ParseTransactionType("refund"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
