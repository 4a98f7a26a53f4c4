package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/domain"
)

func TestTransactionHandler_Create_Success(t *testing.T) {
	ledger := newTestLedger(t)
	seedAccount(t, ledger, "ACC_001", "2500.00")
	h := NewTransactionHandler(ledger)

	rec := serve(t, http.MethodPost, "/transactions", "/transactions", dto.CreateTransactionRequest{
		AccountID:   "ACC_001",
		Type:        "EXPENSE",
		Amount:      "15.99",
		Description: "Netflix",
		Category:    "ENTERTAINMENT",
	}, h.Create)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TransactionResponse
	decodeBody(t, rec, &resp)

	if !strings.HasPrefix(resp.ID, "TXN_") {
		t.Fatalf("expected TXN_ id, got %q", resp.ID)
	}

	if !resp.Date.Equal(testNow) {
		t.Fatalf("expected date from ledger clock, got %s", resp.Date)
	}

	account, _ := ledger.GetAccount("ACC_001")
	if !account.Balance.Equal(mustDecimal(t, "2484.01")) {
		t.Fatalf("expected balance 2484.01, got %s", account.Balance)
	}
}

func TestTransactionHandler_Create_DateOverride(t *testing.T) {
	ledger := newTestLedger(t)
	seedAccount(t, ledger, "ACC_001", "0")
	h := NewTransactionHandler(ledger)

	rec := serve(t, http.MethodPost, "/transactions", "/transactions",
		`{"account_id":"ACC_001","type":"income","amount":"3000","description":"Salary","category":"salary","date":"2026-01-31T09:00:00Z"}`,
		h.Create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	txs := ledger.GetAllTransactions()
	want := time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC)
	if len(txs) != 1 || !txs[0].Date.Equal(want) {
		t.Fatalf("expected posted date %s, got %+v", want, txs)
	}
}

func TestTransactionHandler_Create_Errors(t *testing.T) {
	ledger := newTestLedger(t)
	seedAccount(t, ledger, "ACC_001", "100")
	h := NewTransactionHandler(ledger)

	tests := []struct {
		name string
		body dto.CreateTransactionRequest
		want int
	}{
		{"zero amount", dto.CreateTransactionRequest{AccountID: "ACC_001", Type: "EXPENSE", Amount: "0", Description: "x", Category: "FOOD"}, http.StatusBadRequest},
		{"negative amount", dto.CreateTransactionRequest{AccountID: "ACC_001", Type: "EXPENSE", Amount: "-5", Description: "x", Category: "FOOD"}, http.StatusBadRequest},
		{"malformed amount", dto.CreateTransactionRequest{AccountID: "ACC_001", Type: "EXPENSE", Amount: "5,00", Description: "x", Category: "FOOD"}, http.StatusBadRequest},
		{"blank description", dto.CreateTransactionRequest{AccountID: "ACC_001", Type: "EXPENSE", Amount: "5", Description: " ", Category: "FOOD"}, http.StatusBadRequest},
		{"blank account", dto.CreateTransactionRequest{AccountID: "", Type: "EXPENSE", Amount: "5", Description: "x", Category: "FOOD"}, http.StatusBadRequest},
		{"unknown account", dto.CreateTransactionRequest{AccountID: "ACC_404", Type: "EXPENSE", Amount: "5", Description: "x", Category: "FOOD"}, http.StatusNotFound},
		{"zero date", dto.CreateTransactionRequest{AccountID: "ACC_001", Type: "EXPENSE", Amount: "5", Description: "x", Category: "FOOD", Date: new(time.Time)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, http.MethodPost, "/transactions", "/transactions", tt.body, h.Create)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}

	account, _ := ledger.GetAccount("ACC_001")
	if !account.Balance.Equal(mustDecimal(t, "100")) {
		t.Fatalf("rejected requests must not move the balance, got %s", account.Balance)
	}
}

func TestTransactionHandler_List(t *testing.T) {
	ledger := newTestLedger(t)
	seedAccount(t, ledger, "ACC_001", "0")
	seedTransaction(t, ledger, "ACC_001", domain.TransactionTypeExpense, "1200", "Monthly Rent", domain.CategoryHousing,
		testNow.AddDate(0, 0, -10))
	seedTransaction(t, ledger, "ACC_001", domain.TransactionTypeExpense, "150", "Groceries", domain.CategoryFood,
		testNow.AddDate(0, 0, -1))
	seedTransaction(t, ledger, "ACC_001", domain.TransactionTypeExpense, "15.99", "Netflix", domain.CategoryEntertainment,
		testNow.AddDate(0, 0, -5))
	h := NewTransactionHandler(ledger)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"all in posting order", "/transactions", []string{"Monthly Rent", "Groceries", "Netflix"}},
		{"recent limited", "/transactions?limit=2", []string{"Groceries", "Netflix"}},
		{"search by description", "/transactions?q=RENT", []string{"Monthly Rent"}},
		{"search by category label", "/transactions?q=dining", []string{"Groceries"}},
		{"blank search returns all newest first", "/transactions?q=", []string{"Groceries", "Netflix", "Monthly Rent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, http.MethodGet, "/transactions", tt.target, nil, h.List)

			var resp dto.ListTransactionsResponse
			decodeBody(t, rec, &resp)

			if len(resp.Transactions) != len(tt.want) {
				t.Fatalf("expected %d transactions, got %d", len(tt.want), len(resp.Transactions))
			}
			for i, desc := range tt.want {
				if resp.Transactions[i].Description != desc {
					t.Fatalf("position %d = %q, want %q", i, resp.Transactions[i].Description, desc)
				}
			}
		})
	}
}
