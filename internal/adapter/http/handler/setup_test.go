package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type sequenceIDGen struct{ n atomic.Int64 }

func (g *sequenceIDGen) Generate() string {
	return fmt.Sprintf("%06d", g.n.Add(1))
}

func newTestLedger(t *testing.T) *usecase.LedgerService {
	t.Helper()

	return usecase.NewLedgerService(&sequenceIDGen{},
		usecase.WithClock(fixedClock{now: testNow}),
		usecase.WithLocation(time.UTC),
	)
}

func seedAccount(t *testing.T, ledger *usecase.LedgerService, id, balance string) {
	t.Helper()

	account, err := domain.NewAccount(id, "Account "+id, domain.AccountTypeChecking, decimal.RequireFromString(balance))
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	if err := ledger.AddAccount(account); err != nil {
		t.Fatalf("add account: %v", err)
	}
}

func seedTransaction(t *testing.T, ledger *usecase.LedgerService, accountID string, txType domain.TransactionType,
	amount, description string, category domain.Category, date time.Time,
) {
	t.Helper()

	tx, err := ledger.Factory().CreateTransaction(accountID, txType, decimal.RequireFromString(amount), description, category)
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	if err := tx.SetDate(date); err != nil {
		t.Fatalf("set date: %v", err)
	}
	if err := ledger.AddTransaction(tx); err != nil {
		t.Fatalf("add transaction: %v", err)
	}
}

// serve routes one request through a chi router so URL params resolve.
func serve(t *testing.T, method, pattern, target string, body any, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}
