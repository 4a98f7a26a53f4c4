package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	GetTotalBalance() decimal.Decimal
	GetMonthlySummary(month time.Month, year int) usecase.MonthlySummary
	GetExpensesByCategory(month time.Month, year int) map[domain.Category]decimal.Decimal
	GetMonthlyBudgetRecommendations() map[domain.Category]decimal.Decimal
	GetSummary(recentLimit int) usecase.Summary
}

// ReportHandler serves read-only reports.
type ReportHandler struct {
	ledger   ReportService
	clock    usecase.Clock
	location *time.Location
}

// NewReportHandler creates a new ReportHandler. Missing month/year parameters
// default to the current month in location.
func NewReportHandler(ledger ReportService, clock usecase.Clock, location *time.Location) *ReportHandler {
	if clock == nil {
		clock = usecase.SystemClock{}
	}
	if location == nil {
		location = time.Local
	}

	return &ReportHandler{
		ledger:   ledger,
		clock:    clock,
		location: location,
	}
}

// Balance returns the ledger-wide balance.
func (h *ReportHandler) Balance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.BalanceResponse{TotalBalance: h.ledger.GetTotalBalance()})
}

// Monthly returns income, expenses and net for one month.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	month, year, err := parseMonthQuery(r, h.now())
	if err != nil {
		writeDomainError(w, "invalid period", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MonthlySummaryFromUseCase(h.ledger.GetMonthlySummary(month, year)))
}

// Categories returns expenses by category for one month.
func (h *ReportHandler) Categories(w http.ResponseWriter, r *http.Request) {
	month, year, err := parseMonthQuery(r, h.now())
	if err != nil {
		writeDomainError(w, "invalid period", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoryReportResponse{
		Month:      int(month),
		Year:       year,
		Categories: dto.CategoryAmounts(h.ledger.GetExpensesByCategory(month, year)),
	})
}

// Budget returns a recommended monthly budget per expense category.
func (h *ReportHandler) Budget(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.BudgetResponse{
		Recommendations: dto.CategoryAmounts(h.ledger.GetMonthlyBudgetRecommendations()),
	})
}

// Summary returns the dashboard view.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", usecase.DefaultRecentLimit)

	writeJSON(w, http.StatusOK, dto.SummaryFromUseCase(h.ledger.GetSummary(limit)))
}

func (h *ReportHandler) now() time.Time {
	return h.clock.Now().In(h.location)
}
