package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// TransactionIDPrefix prefixes generated transaction and transfer IDs.
	TransactionIDPrefix = "TXN_"

	// AccountIDPrefix prefixes generated account IDs.
	AccountIDPrefix = "ACC_"

	// DebitSuffix and CreditSuffix mark the two legs of a transfer.
	DebitSuffix  = "_debit"
	CreditSuffix = "_credit"

	// BudgetWindowMonths is how far back budget recommendations look.
	BudgetWindowMonths = 3

	// DefaultRecentLimit is the number of transactions shown in a summary.
	DefaultRecentLimit = 10

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)

// BudgetBuffer is the 10% headroom added on top of the trailing average.
var BudgetBuffer = decimal.RequireFromString("1.1")
