package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
	"github.com/iho/finledger/internal/usecase/mocks"
)

func TestLedgerService_AddAccountDuplicate(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "A", "1000.00")

	dup, err := domain.NewAccount("A", "Impostor", domain.AccountTypeCash, dec("1"))
	require.NoError(t, err)

	err = ledger.AddAccount(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.ErrorIs(t, err, domain.ErrAccountExists)

	stored, ok := ledger.GetAccount("A")
	require.True(t, ok)
	assert.Equal(t, "Account A", stored.Name)
	assert.True(t, stored.Balance.Equal(dec("1000")))
	assert.Len(t, ledger.GetAllAccounts(), 1)
}

func TestLedgerService_AddAccountRejectsNil(t *testing.T) {
	ledger := newTestLedger(t)
	assert.ErrorIs(t, ledger.AddAccount(nil), domain.ErrValidation)
}

func TestLedgerService_GetAccountMissing(t *testing.T) {
	ledger := newTestLedger(t)

	account, ok := ledger.GetAccount("nope")
	assert.False(t, ok)
	assert.Nil(t, account)
}

func TestLedgerService_ReturnsCopies(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "A", "100")
	mustPost(t, ledger, "A", domain.TransactionTypeExpense, "10", "Coffee", domain.CategoryFood)

	accounts := ledger.GetAllAccounts()
	accounts[0].Name = "mutated"
	accounts[0].UpdateBalance(dec("1000"))

	got, _ := ledger.GetAccount("A")
	assert.Equal(t, "Account A", got.Name)
	assert.True(t, got.Balance.Equal(dec("90")))
	assert.Len(t, ledger.GetAllAccounts(), 1)

	txs := ledger.GetAllTransactions()
	require.NoError(t, txs[0].SetAmount(dec("999")))
	txs[0] = nil

	again := ledger.GetAllTransactions()
	require.Len(t, again, 1)
	assert.True(t, again[0].Amount.Equal(dec("10")))
}

func TestLedgerService_AddAccountCopiesInput(t *testing.T) {
	ledger := newTestLedger(t)

	account, err := domain.NewAccount("A", "Main", domain.AccountTypeChecking, dec("5"))
	require.NoError(t, err)
	require.NoError(t, ledger.AddAccount(account))

	account.UpdateBalance(dec("100"))

	got, _ := ledger.GetAccount("A")
	assert.True(t, got.Balance.Equal(dec("5")))
}

func TestLedgerService_CreateAccount(t *testing.T) {
	ledger := newTestLedger(t)

	account, err := ledger.CreateAccount(usecase.CreateAccountInput{
		Name:        "Wallet",
		Type:        domain.AccountTypeCash,
		Description: "pocket money",
	})
	require.NoError(t, err)

	assert.Equal(t, "ACC_000001", account.ID)
	assert.True(t, account.Balance.IsZero())
	assert.Equal(t, testNow, account.CreatedAt)

	stored, ok := ledger.GetAccount(account.ID)
	require.True(t, ok)
	assert.Equal(t, "pocket money", stored.Description)

	_, err = ledger.CreateAccount(usecase.CreateAccountInput{Name: "", Type: domain.AccountTypeCash})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ledger.CreateAccount(usecase.CreateAccountInput{ID: account.ID, Name: "Again", Type: domain.AccountTypeCash})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestLedgerService_UpdateAccount(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "A", "0")

	name := "Joint Checking"
	savings := domain.AccountTypeSavings
	desc := "shared"

	updated, err := ledger.UpdateAccount("A", usecase.UpdateAccountInput{Name: &name, Type: &savings, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, savings, updated.Type)
	assert.Equal(t, desc, updated.Description)

	// A failing field leaves the whole update unapplied.
	empty := ""
	other := "Other"
	_, err = ledger.UpdateAccount("A", usecase.UpdateAccountInput{Description: &other, Name: &empty})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, _ := ledger.GetAccount("A")
	assert.Equal(t, name, got.Name)
	assert.Equal(t, desc, got.Description)

	_, err = ledger.UpdateAccount("missing", usecase.UpdateAccountInput{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerService_AddTransactionUpdatesBalance(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "A", "1000.00")

	mustPost(t, ledger, "A", domain.TransactionTypeIncome, "3000.00", "Monthly Salary", domain.CategorySalary)
	mustPost(t, ledger, "A", domain.TransactionTypeExpense, "15.99", "Netflix Subscription", domain.CategoryEntertainment)

	got, _ := ledger.GetAccount("A")
	assert.True(t, got.Balance.Equal(dec("3984.01")), "balance %s", got.Balance)
	assert.Len(t, ledger.GetAllTransactions(), 2)
}

func TestLedgerService_AddTransactionAllowsOverdraft(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "A", "10")

	assert.False(t, ledger.CanMakeTransaction("A", dec("50"), domain.TransactionTypeExpense))
	mustPost(t, ledger, "A", domain.TransactionTypeExpense, "50", "Dinner", domain.CategoryFood)

	got, _ := ledger.GetAccount("A")
	assert.True(t, got.Balance.Equal(dec("-40")))
}

func TestLedgerService_AddTransactionUnknownAccount(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "A", "0")

	tx, err := ledger.Factory().CreateIncomeTransaction("B", dec("1"), "stray", domain.CategoryGift)
	require.NoError(t, err)

	err = ledger.AddTransaction(tx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Empty(t, ledger.GetAllTransactions())
}

func TestLedgerService_AddTransactionRejectsInvalidAndDuplicates(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "A", "0")

	assert.ErrorIs(t, ledger.AddTransaction(nil), domain.ErrValidation)

	forged := &domain.Transaction{ID: "TXN_X", AccountID: "A", Type: domain.TransactionTypeIncome, Amount: dec("-5"), Category: domain.CategoryGift}
	assert.ErrorIs(t, ledger.AddTransaction(forged), domain.ErrValidation)

	tx := mustPost(t, ledger, "A", domain.TransactionTypeIncome, "5", "Gift", domain.CategoryGift)
	err := ledger.AddTransaction(tx)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	got, _ := ledger.GetAccount("A")
	assert.True(t, got.Balance.Equal(dec("5")))
}

func TestLedgerService_RemoveAccountCascades(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "A", "100")
	mustAddAccount(t, ledger, "B", "100")

	mustPost(t, ledger, "A", domain.TransactionTypeExpense, "10", "a1", domain.CategoryFood)
	mustPost(t, ledger, "B", domain.TransactionTypeExpense, "20", "b1", domain.CategoryFood)
	mustPost(t, ledger, "A", domain.TransactionTypeIncome, "30", "a2", domain.CategorySalary)

	require.NoError(t, ledger.RemoveAccount("A"))

	_, ok := ledger.GetAccount("A")
	assert.False(t, ok)

	remaining := ledger.GetAllTransactions()
	require.Len(t, remaining, 1)
	assert.Equal(t, "B", remaining[0].AccountID)
	assert.Empty(t, ledger.GetTransactionsForAccount("A"))

	err := ledger.RemoveAccount("A")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The identifier can be reused once removed.
	mustAddAccount(t, ledger, "A", "0")
	assert.Len(t, ledger.GetAllAccounts(), 2)
}

func TestLedgerService_GetTransactionsForAccountOrdering(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "A", "0")
	mustAddAccount(t, ledger, "B", "0")

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	first := mustPostAt(t, ledger, "A", domain.TransactionTypeIncome, "1", "first", domain.CategoryGift, jan)
	latest := mustPostAt(t, ledger, "A", domain.TransactionTypeIncome, "2", "latest", domain.CategoryGift, feb)
	mustPostAt(t, ledger, "B", domain.TransactionTypeIncome, "3", "other", domain.CategoryGift, feb)
	tieA := mustPostAt(t, ledger, "A", domain.TransactionTypeIncome, "4", "tie-a", domain.CategoryGift, jan)

	got := ledger.GetTransactionsForAccount("A")
	require.Len(t, got, 3)
	assert.Equal(t, latest.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
	assert.Equal(t, tieA.ID, got[2].ID)

	all := ledger.GetAllTransactions()
	assert.Equal(t, first.ID, all[0].ID, "GetAllTransactions keeps insertion order")
}

func TestLedgerService_RecentTransactions(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "A", "0")

	for day := 1; day <= 5; day++ {
		mustPostAt(t, ledger, "A", domain.TransactionTypeIncome, "1", "day", domain.CategoryGift,
			time.Date(2026, 2, day, 0, 0, 0, 0, time.UTC))
	}

	recent := ledger.GetRecentTransactions(2)
	require.Len(t, recent, 2)
	assert.Equal(t, 5, recent[0].Date.Day())
	assert.Equal(t, 4, recent[1].Date.Day())

	assert.Len(t, ledger.GetRecentTransactions(0), 5)
}

func TestLedgerService_TransferIsBalanceNeutral(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "ACC_001", "2500.00")
	mustAddAccount(t, ledger, "ACC_002", "10000.00")

	before := ledger.GetTotalBalance()

	debit, credit, err := ledger.Factory().CreateTransfer("ACC_001", "ACC_002", dec("500.00"), "Monthly Savings")
	require.NoError(t, err)
	require.NoError(t, ledger.AddTransfer(debit, credit))

	from, _ := ledger.GetAccount("ACC_001")
	to, _ := ledger.GetAccount("ACC_002")
	assert.True(t, from.Balance.Equal(dec("2000")))
	assert.True(t, to.Balance.Equal(dec("10500")))
	assert.True(t, ledger.GetTotalBalance().Equal(before))
}

func TestLedgerService_AddTransferRejectedCreditLeavesNoTrace(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockLedgerObserver(ctrl)
	observer.EXPECT().AccountAdded(gomock.Any()).Times(1)

	ledger := newTestLedger(t, usecase.WithObserver(observer))
	mustAddAccount(t, ledger, "SRC", "1000")

	debit, credit, err := ledger.Factory().CreateTransfer("SRC", "DST", dec("100"), "Savings")
	require.NoError(t, err)

	err = ledger.AddTransfer(debit, credit)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	src, _ := ledger.GetAccount("SRC")
	assert.True(t, src.Balance.Equal(dec("1000")), "balance %s", src.Balance)
	assert.Empty(t, ledger.GetAllTransactions())
}

func TestLedgerService_AddTransferRejectsRepostedLegs(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "SRC", "1000")
	mustAddAccount(t, ledger, "DST", "0")

	debit, credit, err := ledger.Factory().CreateTransfer("SRC", "DST", dec("100"), "Savings")
	require.NoError(t, err)
	require.NoError(t, ledger.AddTransfer(debit, credit))

	assert.ErrorIs(t, ledger.AddTransfer(debit, credit), domain.ErrDuplicateKey)
	assert.ErrorIs(t, ledger.AddTransfer(debit, debit), domain.ErrDuplicateKey)
	assert.ErrorIs(t, ledger.AddTransfer(debit, nil), domain.ErrValidation)

	src, _ := ledger.GetAccount("SRC")
	dst, _ := ledger.GetAccount("DST")
	assert.True(t, src.Balance.Equal(dec("900")))
	assert.True(t, dst.Balance.Equal(dec("100")))
	assert.Len(t, ledger.GetAllTransactions(), 2)
}

func TestLedgerService_AddTransferConcurrentWithRemoval(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "SRC", "1000")
	mustAddAccount(t, ledger, "DST", "0")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i == 25 {
				_ = ledger.RemoveAccount("DST")
			}

			debit, credit, err := ledger.Factory().CreateTransfer("SRC", "DST", dec("1"), "tick")
			if err != nil {
				return
			}
			if ledger.AddTransfer(debit, credit) == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	src, _ := ledger.GetAccount("SRC")
	want := dec("1000").Sub(decimal.NewFromInt(int64(succeeded)))
	assert.True(t, src.Balance.Equal(want), "balance %s, want %s", src.Balance, want)
	assert.Len(t, ledger.GetTransactionsForAccount("SRC"), succeeded)
	assert.Len(t, ledger.GetAllTransactions(), succeeded)
}

func TestLedgerService_Observer(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockLedgerObserver(ctrl)

	ledger := newTestLedger(t, usecase.WithObserver(observer))

	gomock.InOrder(
		observer.EXPECT().AccountAdded(gomock.Any()).Do(func(a *domain.Account) {
			assert.Equal(t, "A", a.ID)
		}),
		observer.EXPECT().TransactionPosted(gomock.Any(), gomock.Any()).Do(func(tx *domain.Transaction, balance decimal.Decimal) {
			assert.Equal(t, "A", tx.AccountID)
			assert.True(t, balance.Equal(dec("1")))
		}),
		observer.EXPECT().AccountRemoved(gomock.Any(), 1),
	)

	mustAddAccount(t, ledger, "A", "0")
	mustPost(t, ledger, "A", domain.TransactionTypeIncome, "1", "x", domain.CategoryGift)
	require.NoError(t, ledger.RemoveAccount("A"))

	// Failed operations do not notify.
	assert.Error(t, ledger.RemoveAccount("A"))
}

func TestLedgerService_ConcurrentPosting(t *testing.T) {
	ledger := newTestLedger(t)
	mustAddAccount(t, ledger, "A", "0")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := ledger.Factory().CreateIncomeTransaction("A", dec("0.10"), "tick", domain.CategoryGift)
			if err == nil {
				_ = ledger.AddTransaction(tx)
			}
			_ = ledger.GetTotalBalance()
		}()
	}
	wg.Wait()

	got, _ := ledger.GetAccount("A")
	assert.True(t, got.Balance.Equal(dec("5")), "balance %s", got.Balance)
	assert.Len(t, ledger.GetAllTransactions(), 50)
}
