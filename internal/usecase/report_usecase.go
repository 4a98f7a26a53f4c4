package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
)

// MonthlySummary aggregates one calendar month.
type MonthlySummary struct {
	Month    time.Month
	Year     int
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// Summary is the dashboard view of the ledger.
type Summary struct {
	TotalBalance decimal.Decimal
	Accounts     []*domain.Account
	Recent       []*domain.Transaction
}

// GetTotalBalance sums every account balance; zero for an empty ledger.
func (s *LedgerService) GetTotalBalance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.totalBalance()
}

func (s *LedgerService) totalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, account := range s.accounts {
		total = total.Add(account.Balance)
	}

	return total
}

// GetMonthlyIncome sums income amounts dated in the given month.
func (s *LedgerService) GetMonthlyIncome(month time.Month, year int) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.monthlySum(domain.TransactionTypeIncome, month, year)
}

// GetMonthlyExpenses sums expense amounts dated in the given month.
func (s *LedgerService) GetMonthlyExpenses(month time.Month, year int) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.monthlySum(domain.TransactionTypeExpense, month, year)
}

// GetMonthlySummary returns income, expenses and their difference for the month.
func (s *LedgerService) GetMonthlySummary(month time.Month, year int) MonthlySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	income := s.monthlySum(domain.TransactionTypeIncome, month, year)
	expenses := s.monthlySum(domain.TransactionTypeExpense, month, year)

	return MonthlySummary{
		Month:    month,
		Year:     year,
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
	}
}

func (s *LedgerService) monthlySum(txType domain.TransactionType, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range s.transactions {
		if tx.Type == txType && s.inMonth(tx.Date, month, year) {
			total = total.Add(tx.Amount)
		}
	}

	return total
}

// GetExpensesByCategory groups the month's expenses by category.
// Categories without expenses are absent from the result.
func (s *LedgerService) GetExpensesByCategory(month time.Month, year int) map[domain.Category]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[domain.Category]decimal.Decimal)
	for _, tx := range s.transactions {
		if !tx.IsExpense() || !s.inMonth(tx.Date, month, year) {
			continue
		}

		sum, ok := result[tx.Category]
		if !ok {
			sum = decimal.Zero
		}
		result[tx.Category] = sum.Add(tx.Amount)
	}

	return result
}

// SearchTransactions matches term case-insensitively against the description or the
// category label. A blank term matches everything. Results are most recent first.
func (s *LedgerService) SearchTransactions(term string) []*domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(term) == "" {
		return sortByDateDesc(s.filter(func(*domain.Transaction) bool { return true }))
	}

	needle := strings.ToLower(term)

	return sortByDateDesc(s.filter(func(tx *domain.Transaction) bool {
		return strings.Contains(strings.ToLower(tx.Description), needle) ||
			strings.Contains(strings.ToLower(tx.Category.DisplayName()), needle)
	}))
}

// GetMonthlyBudgetRecommendations is BudgetRecommendationsAt evaluated at the current time.
func (s *LedgerService) GetMonthlyBudgetRecommendations() map[domain.Category]decimal.Decimal {
	return s.BudgetRecommendationsAt(s.clock.Now())
}

// BudgetRecommendationsAt returns, for every expense category, the average monthly spend over
// the three months before ref (rounded half-up to cents) plus a 10% buffer.
// Categories with no spend map to zero.
func (s *LedgerService) BudgetRecommendationsAt(ref time.Time) map[domain.Category]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	since := minusMonths(ref, BudgetWindowMonths)
	months := decimal.NewFromInt(BudgetWindowMonths)

	result := make(map[domain.Category]decimal.Decimal)
	for _, category := range domain.ExpenseCategories() {
		total := decimal.Zero
		for _, tx := range s.transactions {
			if tx.Category == category && tx.Date.After(since) {
				total = total.Add(tx.Amount)
			}
		}

		result[category] = total.DivRound(months, 2).Mul(BudgetBuffer)
	}

	return result
}

// CanMakeTransaction is advisory: false for unknown accounts, a funds check for expenses,
// always true for income. AddTransaction does not enforce it.
func (s *LedgerService) CanMakeTransaction(accountID string, amount decimal.Decimal, txType domain.TransactionType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return false
	}

	if txType == domain.TransactionTypeExpense {
		return account.HasSufficientFunds(amount)
	}

	return true
}

// GetSummary returns the total balance, every account and the most recent transactions.
func (s *LedgerService) GetSummary(recentLimit int) Summary {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(s.accountOrder))
	for _, id := range s.accountOrder {
		accounts = append(accounts, s.accounts[id].Clone())
	}

	return Summary{
		TotalBalance: s.totalBalance(),
		Accounts:     accounts,
		Recent:       s.recent(recentLimit),
	}
}

func (s *LedgerService) inMonth(t time.Time, month time.Month, year int) bool {
	local := t.In(s.location)
	return local.Month() == month && local.Year() == year
}

// minusMonths steps back n calendar months, clamping the day to the target month's length
// (May 31 minus 3 months is Feb 28/29, not Mar 3).
func minusMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month-time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	lastDay := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
