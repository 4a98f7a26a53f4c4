package handler

import (
	"net/http"
	"strings"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	Factory() *usecase.TransactionFactory
	AddTransaction(tx *domain.Transaction) error
	GetAllTransactions() []*domain.Transaction
	GetRecentTransactions(limit int) []*domain.Transaction
	SearchTransactions(term string) []*domain.Transaction
}

// TransactionHandler handles income and expense requests.
type TransactionHandler struct {
	ledger TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger TransactionService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// Create builds a transaction through the factory and posts it.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.Parse()
	if err != nil {
		writeDomainError(w, "invalid transaction", err)
		return
	}

	tx, err := h.ledger.Factory().CreateTransaction(input.AccountID, input.Type, input.Amount, input.Description, input.Category)
	if err != nil {
		writeDomainError(w, "invalid transaction", err)
		return
	}

	if input.Date != nil {
		if err := tx.SetDate(*input.Date); err != nil {
			writeDomainError(w, "invalid transaction", err)
			return
		}
	}

	if err := h.ledger.AddTransaction(tx); err != nil {
		writeDomainError(w, "failed to add transaction", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

// List returns every transaction in posting order. With ?q= it searches
// descriptions and category labels; with ?limit= it returns the most recent ones.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var txs []*domain.Transaction
	switch {
	case query.Has("q"):
		txs = h.ledger.SearchTransactions(query.Get("q"))
	case strings.TrimSpace(query.Get("limit")) != "":
		limit, _ := domain.ValidatePagination(parseIntQuery(r, "limit", usecase.DefaultRecentLimit), 0)
		txs = h.ledger.GetRecentTransactions(limit)
	default:
		txs = h.ledger.GetAllTransactions()
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(txs),
		Total:        int64(len(txs)),
	})
}
