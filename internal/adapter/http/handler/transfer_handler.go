package handler

import (
	"net/http"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	Factory() *usecase.TransactionFactory
	AddTransfer(debit, credit *domain.Transaction) error
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	ledger TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(ledger TransferService) *TransferHandler {
	return &TransferHandler{ledger: ledger}
}

// Create builds both legs of a transfer and posts them together.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	amount, err := req.ParseAmount()
	if err != nil {
		writeDomainError(w, "invalid transfer", err)
		return
	}

	debit, credit, err := h.ledger.Factory().CreateTransfer(req.FromAccountID, req.ToAccountID, amount, req.Description)
	if err != nil {
		writeDomainError(w, "invalid transfer", err)
		return
	}

	if err := h.ledger.AddTransfer(debit, credit); err != nil {
		writeDomainError(w, "failed to create transfer", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransferResponse{
		TransferID: debit.TransferID,
		Debit:      dto.TransactionFromDomain(debit),
		Credit:     dto.TransactionFromDomain(credit),
	})
}
