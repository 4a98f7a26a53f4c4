package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Account metrics
	AccountsCreated  prometheus.Counter
	AccountsRemoved  prometheus.Counter
	AccountBalance   *prometheus.GaugeVec
	CascadedRemovals prometheus.Counter

	// Transaction metrics
	TransactionsPosted *prometheus.CounterVec
	TransactionAmount  *prometheus.HistogramVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// Idempotency metrics
	IdempotentReplays prometheus.Counter
}

// New creates all Prometheus metrics and registers them with reg.
// A nil reg registers with the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		// Account metrics
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "finledger_accounts_created_total",
			Help: "Total number of accounts added to the ledger",
		}),
		AccountsRemoved: factory.NewCounter(prometheus.CounterOpts{
			Name: "finledger_accounts_removed_total",
			Help: "Total number of accounts removed from the ledger",
		}),
		AccountBalance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "finledger_account_balance",
				Help: "Current account balance",
			},
			[]string{"account_id"},
		),
		CascadedRemovals: factory.NewCounter(prometheus.CounterOpts{
			Name: "finledger_transactions_cascaded_total",
			Help: "Total number of transactions deleted together with their account",
		}),

		// Transaction metrics
		TransactionsPosted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finledger_transactions_posted_total",
				Help: "Total transactions posted by type",
			},
			[]string{"type"},
		),
		TransactionAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finledger_transaction_amount",
				Help:    "Posted transaction amounts",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
			},
			[]string{"type"},
		),

		// API metrics
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finledger_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finledger_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "finledger_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),

		// Rate limiting metrics
		RateLimitHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finledger_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),

		// Idempotency metrics
		IdempotentReplays: factory.NewCounter(prometheus.CounterOpts{
			Name: "finledger_idempotent_replays_total",
			Help: "Total requests answered from the idempotency store",
		}),
	}
}

// AccountAdded records a new account and its opening balance.
func (m *Metrics) AccountAdded(account *domain.Account) {
	m.AccountsCreated.Inc()
	m.AccountBalance.WithLabelValues(account.ID).Set(account.Balance.InexactFloat64())
}

// AccountRemoved drops the balance series of the removed account.
func (m *Metrics) AccountRemoved(account *domain.Account, cascaded int) {
	m.AccountsRemoved.Inc()
	m.CascadedRemovals.Add(float64(cascaded))
	m.AccountBalance.DeleteLabelValues(account.ID)
}

// TransactionPosted counts the transaction and updates the account balance gauge.
func (m *Metrics) TransactionPosted(tx *domain.Transaction, balance decimal.Decimal) {
	m.TransactionsPosted.WithLabelValues(string(tx.Type)).Inc()
	m.TransactionAmount.WithLabelValues(string(tx.Type)).Observe(tx.Amount.InexactFloat64())
	m.AccountBalance.WithLabelValues(tx.AccountID).Set(balance.InexactFloat64())
}
