package usecase

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
)

// LedgerService owns the account map and the transaction list and keeps them consistent.
// Every method is one critical section; returned values are copies.
type LedgerService struct {
	mu sync.RWMutex

	accounts     map[string]*domain.Account
	accountOrder []string
	transactions []*domain.Transaction
	txIDs        map[string]struct{}

	factory  *TransactionFactory
	idGen    IDGenerator
	clock    Clock
	location *time.Location
	observer LedgerObserver
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithClock sets the clock used for generated timestamps and budget windows.
func WithClock(clock Clock) Option {
	return func(s *LedgerService) { s.clock = clock }
}

// WithLocation sets the time zone used for month/year bucketing.
func WithLocation(loc *time.Location) Option {
	return func(s *LedgerService) { s.location = loc }
}

// WithObserver registers an observer for successful mutations.
func WithObserver(observer LedgerObserver) Option {
	return func(s *LedgerService) { s.observer = observer }
}

// NewLedgerService creates an empty ledger.
func NewLedgerService(idGen IDGenerator, opts ...Option) *LedgerService {
	s := &LedgerService{
		accounts: make(map[string]*domain.Account),
		txIDs:    make(map[string]struct{}),
		idGen:    idGen,
		clock:    SystemClock{},
		location: time.Local,
		observer: nopObserver{},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.factory = NewTransactionFactory(idGen, s.clock)

	return s
}

// Factory returns the transaction factory sharing this ledger's ID generator and clock.
func (s *LedgerService) Factory() *TransactionFactory {
	return s.factory
}

// AddAccount inserts account. The ledger stores its own copy.
func (s *LedgerService) AddAccount(account *domain.Account) error {
	if account == nil {
		return domain.NewValidationError("account", "account is required")
	}

	if err := domain.ValidateAccountID(account.ID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrAccountExists, account.ID)
	}

	stored := account.Clone()
	s.accounts[stored.ID] = stored
	s.accountOrder = append(s.accountOrder, stored.ID)

	s.observer.AccountAdded(stored.Clone())

	return nil
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	ID             string
	Name           string
	Type           domain.AccountType
	InitialBalance decimal.Decimal
	Description    string
}

// CreateAccount builds and inserts a new account. A blank ID is generated.
func (s *LedgerService) CreateAccount(input CreateAccountInput) (*domain.Account, error) {
	id := input.ID
	if id == "" {
		id = AccountIDPrefix + s.idGen.Generate()
	}

	account, err := domain.NewAccount(id, input.Name, input.Type, input.InitialBalance)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	account.Description = input.Description

	if err := s.AddAccount(account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount returns a copy of the account, or false if it does not exist.
func (s *LedgerService) GetAccount(id string) (*domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, false
	}

	return account.Clone(), true
}

// GetAllAccounts returns copies of all accounts in insertion order.
func (s *LedgerService) GetAllAccounts() []*domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Account, 0, len(s.accountOrder))
	for _, id := range s.accountOrder {
		result = append(result, s.accounts[id].Clone())
	}

	return result
}

// UpdateAccountInput holds optional field changes; nil fields are left alone.
type UpdateAccountInput struct {
	Name        *string
	Type        *domain.AccountType
	Description *string
}

// UpdateAccount applies field changes atomically: either all succeed or none are applied.
func (s *LedgerService) UpdateAccount(id string, input UpdateAccountInput) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}

	updated := account.Clone()

	if input.Name != nil {
		if err := updated.SetName(*input.Name); err != nil {
			return nil, err
		}
	}

	if input.Type != nil {
		if err := updated.SetType(*input.Type); err != nil {
			return nil, err
		}
	}

	if input.Description != nil {
		updated.SetDescription(*input.Description)
	}

	*account = *updated

	return account.Clone(), nil
}

// RemoveAccount deletes the account and every transaction that references it.
func (s *LedgerService) RemoveAccount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}

	delete(s.accounts, id)
	s.accountOrder = slices.DeleteFunc(s.accountOrder, func(other string) bool { return other == id })

	kept := s.transactions[:0]
	removed := 0
	for _, tx := range s.transactions {
		if tx.AccountID == id {
			delete(s.txIDs, tx.ID)
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	clear(s.transactions[len(kept):])
	s.transactions = kept

	s.observer.AccountRemoved(account.Clone(), removed)

	return nil
}

// AddTransaction posts tx: the owning account must exist, its balance moves by the
// signed amount and tx is appended to the ledger. Sufficient funds are not enforced.
func (s *LedgerService) AddTransaction(tx *domain.Transaction) error {
	if err := validatePosting(tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPosting(tx); err != nil {
		return err
	}

	s.post(tx)

	return nil
}

// AddTransfer posts both legs of a transfer in one critical section. Either both
// legs are applied or neither is.
func (s *LedgerService) AddTransfer(debit, credit *domain.Transaction) error {
	if err := validatePosting(debit); err != nil {
		return err
	}

	if err := validatePosting(credit); err != nil {
		return err
	}

	if debit.ID == credit.ID {
		return fmt.Errorf("%w: %s", domain.ErrTransactionExists, credit.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPosting(debit); err != nil {
		return err
	}

	if err := s.checkPosting(credit); err != nil {
		return err
	}

	s.post(debit)
	s.post(credit)

	return nil
}

func validatePosting(tx *domain.Transaction) error {
	if tx == nil {
		return domain.NewValidationError("transaction", "transaction is required")
	}

	return tx.Validate()
}

// checkPosting verifies referential integrity and ID uniqueness. Caller holds the lock.
func (s *LedgerService) checkPosting(tx *domain.Transaction) error {
	if _, ok := s.accounts[tx.AccountID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, tx.AccountID)
	}

	if _, exists := s.txIDs[tx.ID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrTransactionExists, tx.ID)
	}

	return nil
}

// post applies a checked transaction. Caller holds the lock.
func (s *LedgerService) post(tx *domain.Transaction) {
	account := s.accounts[tx.AccountID]

	stored := tx.Clone()
	account.UpdateBalance(stored.SignedAmount())
	s.transactions = append(s.transactions, stored)
	s.txIDs[stored.ID] = struct{}{}

	s.observer.TransactionPosted(stored.Clone(), account.Balance)
}

// GetTransactionsForAccount returns the account's transactions, most recent first.
// Transactions with equal dates keep insertion order.
func (s *LedgerService) GetTransactionsForAccount(accountID string) []*domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortByDateDesc(s.filter(func(tx *domain.Transaction) bool {
		return tx.AccountID == accountID
	}))
}

// GetAllTransactions returns copies of every transaction in insertion order.
func (s *LedgerService) GetAllTransactions() []*domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter(func(*domain.Transaction) bool { return true })
}

// GetRecentTransactions returns up to limit transactions, most recent first.
func (s *LedgerService) GetRecentTransactions(limit int) []*domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.recent(limit)
}

func (s *LedgerService) recent(limit int) []*domain.Transaction {
	all := sortByDateDesc(s.filter(func(*domain.Transaction) bool { return true }))
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	return all
}

// filter returns copies of matching transactions in insertion order. Caller holds the lock.
func (s *LedgerService) filter(keep func(*domain.Transaction) bool) []*domain.Transaction {
	result := make([]*domain.Transaction, 0)
	for _, tx := range s.transactions {
		if keep(tx) {
			result = append(result, tx.Clone())
		}
	}

	return result
}

func sortByDateDesc(txs []*domain.Transaction) []*domain.Transaction {
	slices.SortStableFunc(txs, func(a, b *domain.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	return txs
}
