// Package bootstrap loads the demonstration dataset into a fresh ledger.
package bootstrap

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// Ledger is the subset of the ledger service used to load demo data.
type Ledger interface {
	AddAccount(account *domain.Account) error
	AddTransaction(tx *domain.Transaction) error
	AddTransfer(debit, credit *domain.Transaction) error
	Factory() *usecase.TransactionFactory
}

type demoAccount struct {
	id      string
	name    string
	kind    domain.AccountType
	balance string
}

type demoTransaction struct {
	accountID   string
	kind        domain.TransactionType
	amount      string
	description string
	category    domain.Category
}

var demoAccounts = []demoAccount{
	{"ACC_001", "Main Checking", domain.AccountTypeChecking, "2500.00"},
	{"ACC_002", "Emergency Savings", domain.AccountTypeSavings, "10000.00"},
	{"ACC_003", "Credit Card", domain.AccountTypeCreditCard, "-500.00"},
}

var demoTransactions = []demoTransaction{
	{"ACC_001", domain.TransactionTypeIncome, "3000.00", "Monthly Salary", domain.CategorySalary},
	{"ACC_001", domain.TransactionTypeIncome, "500.00", "Freelance Project", domain.CategoryFreelance},
	{"ACC_001", domain.TransactionTypeExpense, "1200.00", "Monthly Rent", domain.CategoryHousing},
	{"ACC_001", domain.TransactionTypeExpense, "150.00", "Weekly Groceries", domain.CategoryFood},
	{"ACC_001", domain.TransactionTypeExpense, "60.00", "Gas Station", domain.CategoryTransportation},
	{"ACC_001", domain.TransactionTypeExpense, "15.99", "Netflix Subscription", domain.CategoryEntertainment},
}

// LoadDemoData adds three accounts, six transactions and one savings transfer,
// in that order. It stops at the first failure.
func LoadDemoData(ledger Ledger) error {
	for _, a := range demoAccounts {
		account, err := domain.NewAccount(a.id, a.name, a.kind, decimal.RequireFromString(a.balance))
		if err != nil {
			return fmt.Errorf("demo account %s: %w", a.id, err)
		}
		if err := ledger.AddAccount(account); err != nil {
			return fmt.Errorf("demo account %s: %w", a.id, err)
		}
	}

	factory := ledger.Factory()

	for _, t := range demoTransactions {
		tx, err := factory.CreateTransaction(t.accountID, t.kind, decimal.RequireFromString(t.amount), t.description, t.category)
		if err != nil {
			return fmt.Errorf("demo transaction %q: %w", t.description, err)
		}
		if err := ledger.AddTransaction(tx); err != nil {
			return fmt.Errorf("demo transaction %q: %w", t.description, err)
		}
	}

	debit, credit, err := factory.CreateTransfer("ACC_001", "ACC_002", decimal.RequireFromString("500.00"), "Monthly Savings")
	if err != nil {
		return fmt.Errorf("demo transfer: %w", err)
	}
	if err := ledger.AddTransfer(debit, credit); err != nil {
		return fmt.Errorf("demo transfer: %w", err)
	}

	return nil
}
