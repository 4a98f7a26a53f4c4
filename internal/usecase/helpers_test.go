package usecase_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type sequenceIDGen struct {
	n atomic.Int64
}

func (g *sequenceIDGen) Generate() string {
	return fmt.Sprintf("%06d", g.n.Add(1))
}

func newTestLedger(t *testing.T, opts ...usecase.Option) *usecase.LedgerService {
	t.Helper()

	base := []usecase.Option{
		usecase.WithClock(fixedClock{now: testNow}),
		usecase.WithLocation(time.UTC),
	}

	return usecase.NewLedgerService(&sequenceIDGen{}, append(base, opts...)...)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustAddAccount(t *testing.T, ledger *usecase.LedgerService, id, balance string) {
	t.Helper()

	account, err := domain.NewAccount(id, "Account "+id, domain.AccountTypeChecking, dec(balance))
	require.NoError(t, err)
	require.NoError(t, ledger.AddAccount(account))
}

func mustPost(
	t *testing.T,
	ledger *usecase.LedgerService,
	accountID string,
	txType domain.TransactionType,
	amount, description string,
	category domain.Category,
) *domain.Transaction {
	t.Helper()

	tx, err := ledger.Factory().CreateTransaction(accountID, txType, dec(amount), description, category)
	require.NoError(t, err)
	require.NoError(t, ledger.AddTransaction(tx))

	return tx
}

func mustPostAt(
	t *testing.T,
	ledger *usecase.LedgerService,
	accountID string,
	txType domain.TransactionType,
	amount, description string,
	category domain.Category,
	date time.Time,
) *domain.Transaction {
	t.Helper()

	tx, err := ledger.Factory().CreateTransaction(accountID, txType, dec(amount), description, category)
	require.NoError(t, err)
	require.NoError(t, tx.SetDate(date))
	require.NoError(t, ledger.AddTransaction(tx))

	return tx
}
