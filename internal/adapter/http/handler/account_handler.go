package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(id string) (*domain.Account, bool)
	GetAllAccounts() []*domain.Account
	UpdateAccount(id string, input usecase.UpdateAccountInput) (*domain.Account, error)
	RemoveAccount(id string) error
	GetTransactionsForAccount(accountID string) []*domain.Transaction
	CanMakeTransaction(accountID string, amount decimal.Decimal, txType domain.TransactionType) bool
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	ledger AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledger AccountService) *AccountHandler {
	return &AccountHandler{ledger: ledger}
}

// Create creates a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid account", err)
		return
	}

	account, err := h.ledger.CreateAccount(input)
	if err != nil {
		writeDomainError(w, "failed to create account", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	account, ok := h.lookup(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists accounts in insertion order.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts := h.ledger.GetAllAccounts()

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    int64(len(accounts)),
	})
}

// Update applies a partial update.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid account update", err)
		return
	}

	account, err := h.ledger.UpdateAccount(id, input)
	if err != nil {
		writeDomainError(w, "failed to update account", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Delete removes an account together with its transactions.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.RemoveAccount(chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, "failed to remove account", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Transactions lists the account's transactions, newest first.
func (h *AccountHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	account, ok := h.lookup(w, r)
	if !ok {
		return
	}

	txs := h.ledger.GetTransactionsForAccount(account.ID)

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(txs),
		Total:        int64(len(txs)),
	})
}

// CanSpend answers whether the account could take a transaction of the given amount.
func (h *AccountHandler) CanSpend(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	query := r.URL.Query()

	amount, err := domain.ParseAmount(query.Get("amount"))
	if err != nil {
		writeDomainError(w, "invalid amount", err)
		return
	}

	txType := domain.TransactionTypeExpense
	if raw := query.Get("type"); raw != "" {
		txType, err = domain.ParseTransactionType(raw)
		if err != nil {
			writeDomainError(w, "invalid transaction type", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, dto.CanSpendResponse{
		AccountID: id,
		Type:      string(txType),
		Amount:    amount,
		Allowed:   h.ledger.CanMakeTransaction(id, amount, txType),
	})
}

func (h *AccountHandler) lookup(w http.ResponseWriter, r *http.Request) (*domain.Account, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return nil, false
	}

	account, ok := h.ledger.GetAccount(id)
	if !ok {
		err := fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		writeDomainError(w, "failed to get account", err)
		return nil, false
	}

	return account, true
}
