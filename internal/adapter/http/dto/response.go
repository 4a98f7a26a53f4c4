package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	TypeLabel   string          `json:"type_label"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Type:        string(a.Type),
		TypeLabel:   a.Type.DisplayName(),
		Balance:     a.Balance,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID            string          `json:"id"`
	AccountID     string          `json:"account_id"`
	TransferID    string          `json:"transfer_id,omitempty"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	SignedAmount  decimal.Decimal `json:"signed_amount"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	CategoryLabel string          `json:"category_label"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:            t.ID,
		AccountID:     t.AccountID,
		TransferID:    t.TransferID,
		Type:          string(t.Type),
		Amount:        t.Amount,
		SignedAmount:  t.SignedAmount(),
		Description:   t.Description,
		Category:      string(t.Category),
		CategoryLabel: t.Category.DisplayName(),
		Date:          t.Date,
		CreatedAt:     t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse wraps a list of transactions.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// TransferResponse carries both legs of a posted transfer.
type TransferResponse struct {
	TransferID string               `json:"transfer_id"`
	Debit      *TransactionResponse `json:"debit"`
	Credit     *TransactionResponse `json:"credit"`
}

// CanSpendResponse answers an advisory funds check.
type CanSpendResponse struct {
	AccountID string          `json:"account_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Allowed   bool            `json:"allowed"`
}

// BalanceResponse carries the ledger-wide balance.
type BalanceResponse struct {
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// MonthlySummaryResponse represents one calendar month of activity.
type MonthlySummaryResponse struct {
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// MonthlySummaryFromUseCase converts a usecase summary to response.
func MonthlySummaryFromUseCase(s usecase.MonthlySummary) *MonthlySummaryResponse {
	return &MonthlySummaryResponse{
		Month:    int(s.Month),
		Year:     s.Year,
		Income:   s.Income,
		Expenses: s.Expenses,
		Net:      s.Net,
	}
}

// CategoryAmount is one category line of a report.
type CategoryAmount struct {
	Category string          `json:"category"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryAmounts flattens a per-category map in declaration order of the categories.
func CategoryAmounts(amounts map[domain.Category]decimal.Decimal) []CategoryAmount {
	result := make([]CategoryAmount, 0, len(amounts))
	for _, c := range domain.Categories() {
		amount, ok := amounts[c]
		if !ok {
			continue
		}
		result = append(result, CategoryAmount{
			Category: string(c),
			Label:    c.DisplayName(),
			Amount:   amount,
		})
	}
	return result
}

// CategoryReportResponse holds expenses by category for one month.
type CategoryReportResponse struct {
	Month      int              `json:"month"`
	Year       int              `json:"year"`
	Categories []CategoryAmount `json:"categories"`
}

// BudgetResponse holds the monthly budget recommendations.
type BudgetResponse struct {
	Recommendations []CategoryAmount `json:"recommendations"`
}

// SummaryResponse is the dashboard view.
type SummaryResponse struct {
	TotalBalance decimal.Decimal        `json:"total_balance"`
	Accounts     []*AccountResponse     `json:"accounts"`
	Recent       []*TransactionResponse `json:"recent_transactions"`
}

// SummaryFromUseCase converts a usecase summary to response.
func SummaryFromUseCase(s usecase.Summary) *SummaryResponse {
	return &SummaryResponse{
		TotalBalance: s.TotalBalance,
		Accounts:     AccountsFromDomain(s.Accounts),
		Recent:       TransactionsFromDomain(s.Recent),
	}
}

// EnumResponse describes one value of a fixed enumeration.
type EnumResponse struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Kind        string `json:"kind,omitempty"`
}

// CategoriesFromDomain lists every category with its income/expense kind.
func CategoriesFromDomain() []EnumResponse {
	categories := domain.Categories()
	result := make([]EnumResponse, len(categories))
	for i, c := range categories {
		kind := string(domain.TransactionTypeExpense)
		if c.IsIncome() {
			kind = string(domain.TransactionTypeIncome)
		}
		result[i] = EnumResponse{
			Value:       string(c),
			Label:       c.DisplayName(),
			Description: c.Description(),
			Kind:        kind,
		}
	}
	return result
}

// AccountTypesFromDomain lists every account type.
func AccountTypesFromDomain() []EnumResponse {
	types := domain.AccountTypes()
	result := make([]EnumResponse, len(types))
	for i, t := range types {
		result[i] = EnumResponse{
			Value:       string(t),
			Label:       t.DisplayName(),
			Description: t.Description(),
		}
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
