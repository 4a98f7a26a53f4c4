package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
// A blank ID lets the ledger generate one.
type CreateAccountRequest struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	InitialBalance string `json:"initial_balance,omitempty"`
	Description    string `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() (usecase.CreateAccountInput, error) {
	accountType, err := domain.ParseAccountType(r.Type)
	if err != nil {
		return usecase.CreateAccountInput{}, err
	}

	balance := decimal.Zero
	if strings.TrimSpace(r.InitialBalance) != "" {
		balance, err = domain.ParseAmount(r.InitialBalance)
		if err != nil {
			return usecase.CreateAccountInput{}, err
		}
	}

	return usecase.CreateAccountInput{
		ID:             strings.TrimSpace(r.ID),
		Name:           r.Name,
		Type:           accountType,
		InitialBalance: balance,
		Description:    r.Description,
	}, nil
}

// UpdateAccountRequest represents a partial account update.
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput() (usecase.UpdateAccountInput, error) {
	input := usecase.UpdateAccountInput{
		Name:        r.Name,
		Description: r.Description,
	}

	if r.Type != nil {
		accountType, err := domain.ParseAccountType(*r.Type)
		if err != nil {
			return usecase.UpdateAccountInput{}, err
		}
		input.Type = &accountType
	}

	return input, nil
}

// CreateTransactionRequest represents a request to record income or an expense.
type CreateTransactionRequest struct {
	AccountID   string     `json:"account_id"`
	Type        string     `json:"type"`
	Amount      string     `json:"amount"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Date        *time.Time `json:"date,omitempty"`
}

// TransactionInput is a parsed CreateTransactionRequest.
type TransactionInput struct {
	AccountID   string
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Description string
	Category    domain.Category
	Date        *time.Time
}

// Parse converts the wire strings to domain values.
func (r *CreateTransactionRequest) Parse() (TransactionInput, error) {
	txType, err := domain.ParseTransactionType(r.Type)
	if err != nil {
		return TransactionInput{}, err
	}

	amount, err := domain.ParseAmount(r.Amount)
	if err != nil {
		return TransactionInput{}, err
	}

	category, err := domain.ParseCategory(r.Category)
	if err != nil {
		return TransactionInput{}, err
	}

	return TransactionInput{
		AccountID:   r.AccountID,
		Type:        txType,
		Amount:      amount,
		Description: r.Description,
		Category:    category,
		Date:        r.Date,
	}, nil
}

// CreateTransferRequest represents a request to move money between two accounts.
type CreateTransferRequest struct {
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
}

// ParseAmount parses the transfer amount.
func (r *CreateTransferRequest) ParseAmount() (decimal.Decimal, error) {
	return domain.ParseAmount(r.Amount)
}
