package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// LedgerObserver is notified after each successful ledger mutation.
// Implementations must not call back into the ledger.
type LedgerObserver interface {
	AccountAdded(account *domain.Account)
	AccountRemoved(account *domain.Account, cascaded int)
	TransactionPosted(tx *domain.Transaction, balance decimal.Decimal)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a key so the request can be retried.
	Release(ctx context.Context, key string) error
}

// SystemClock is the wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type nopObserver struct{}

func (nopObserver) AccountAdded(*domain.Account) {}
func (nopObserver) AccountRemoved(*domain.Account, int) {}
func (nopObserver) TransactionPosted(*domain.Transaction, decimal.Decimal) {}
