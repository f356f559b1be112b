package dashboard

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
)

const (
	trailingMonths   = 6
	recentLimit      = 5
	monthLabelLayout = "Jan"
)

// TransactionReader is the slice of the transaction store the aggregation
// needs.
type TransactionReader interface {
	ListByDateRange(start, end string) ([]*transaction.Transaction, error)
	ExpenseTotalsByMonth(startMonth, endMonth string) (map[string]float64, error)
}

// BudgetReader is the slice of the budget store the aggregation needs.
type BudgetReader interface {
	GetByMonth(month string) (*budget.MonthlyBudget, error)
}

// Service computes the dashboard aggregates. Stateless: each call performs
// a fixed sequence of store reads and either returns a full result or fails
// outright.
type Service struct {
	transactions TransactionReader
	budgets      BudgetReader
	clock        Clock
	logger       *slog.Logger
}

// NewService creates a new dashboard service
func NewService(transactions TransactionReader, budgets BudgetReader, clock Clock, logger *slog.Logger) *Service {
	return &Service{
		transactions: transactions,
		budgets:      budgets,
		clock:        clock,
		logger:       logger,
	}
}

// Stats aggregates the current month: income/expense totals, balance,
// remaining budget, category breakdown, the trailing six-month expense
// series and the five most recent current-month transactions.
func (s *Service) Stats() (*DashboardStats, error) {
	now := s.clock.Now()
	firstDay, lastDay := monthBounds(now)

	transactions, err := s.transactions.ListByDateRange(firstDay, lastDay)
	if err != nil {
		s.logger.Error("failed to fetch current month transactions", "error", err)
		return nil, internal.NewInternalError("failed to fetch dashboard stats", err)
	}

	var totalIncome, totalExpenses float64
	breakdown := make(map[string]float64)
	for _, t := range transactions {
		switch t.Type {
		case transaction.TypeIncome:
			totalIncome += t.Amount
		case transaction.TypeExpense:
			totalExpenses += t.Amount
			breakdown[t.Category] += t.Amount
		}
	}

	currentMonth := now.Format(budget.MonthLayout)
	b, err := s.budgets.GetByMonth(currentMonth)
	if err != nil {
		s.logger.Error("failed to fetch budget", "error", err, "month", currentMonth)
		return nil, internal.NewInternalError("failed to fetch dashboard stats", err)
	}

	// unclamped; clamping to zero is a display concern
	var budgetRemaining float64
	if b != nil {
		budgetRemaining = b.TotalBudget - totalExpenses
	}

	monthlyExpenses, err := s.trailingExpenseSeries(now)
	if err != nil {
		s.logger.Error("failed to fetch monthly expense series", "error", err)
		return nil, internal.NewInternalError("failed to fetch dashboard stats", err)
	}

	// first 5 of the month-scoped list in store order (date DESC), so a
	// sparse month yields fewer than 5 even when older records exist
	recent := transactions
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	if recent == nil {
		recent = []*transaction.Transaction{}
	}

	return &DashboardStats{
		TotalBalance:       totalIncome - totalExpenses,
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		BudgetRemaining:    budgetRemaining,
		CategoryBreakdown:  breakdown,
		MonthlyExpenses:    monthlyExpenses,
		RecentTransactions: recent,
	}, nil
}

// trailingExpenseSeries builds the six-entry series ending at the current
// month, oldest first, zero-filled for empty months. One grouped query
// covers the whole span.
func (s *Service) trailingExpenseSeries(now time.Time) ([]MonthlyExpense, error) {
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	months := make([]time.Time, 0, trailingMonths)
	for i := trailingMonths - 1; i >= 0; i-- {
		months = append(months, anchor.AddDate(0, -i, 0))
	}

	startMonth := months[0].Format(budget.MonthLayout)
	endMonth := months[len(months)-1].Format(budget.MonthLayout)
	totals, err := s.transactions.ExpenseTotalsByMonth(startMonth, endMonth)
	if err != nil {
		return nil, err
	}

	series := make([]MonthlyExpense, 0, trailingMonths)
	for _, m := range months {
		series = append(series, MonthlyExpense{
			Month:    m.Format(monthLabelLayout),
			Expenses: totals[m.Format(budget.MonthLayout)],
		})
	}
	return series, nil
}

// BudgetComparison joins a month's budget allocations with that month's
// expense breakdown.
func (s *Service) BudgetComparison(month string) ([]ComparisonRow, error) {
	if !budget.IsValidMonth(month) {
		return nil, internal.NewValidationError("Month must be in YYYY-MM format", internal.ErrCodeInvalidMonth)
	}

	b, err := s.budgets.GetByMonth(month)
	if err != nil {
		s.logger.Error("failed to fetch budget", "error", err, "month", month)
		return nil, internal.NewInternalError("failed to fetch budget comparison", err)
	}
	if b == nil {
		return []ComparisonRow{}, nil
	}

	breakdown, err := s.monthBreakdown(month)
	if err != nil {
		s.logger.Error("failed to fetch month breakdown", "error", err, "month", month)
		return nil, internal.NewInternalError("failed to fetch budget comparison", err)
	}

	return Compare(b.Budgets, breakdown), nil
}

// Insights evaluates the insight rules against the current month.
func (s *Service) Insights() ([]Insight, error) {
	now := s.clock.Now()
	currentMonth := now.Format(budget.MonthLayout)

	b, err := s.budgets.GetByMonth(currentMonth)
	if err != nil {
		s.logger.Error("failed to fetch budget", "error", err, "month", currentMonth)
		return nil, internal.NewInternalError("failed to generate insights", err)
	}

	breakdown, err := s.monthBreakdown(currentMonth)
	if err != nil {
		s.logger.Error("failed to fetch month breakdown", "error", err, "month", currentMonth)
		return nil, internal.NewInternalError("failed to generate insights", err)
	}

	var rows []ComparisonRow
	var totalBudget float64
	if b != nil {
		rows = Compare(b.Budgets, breakdown)
		totalBudget = b.TotalBudget
	}

	var totalExpenses float64
	for _, amount := range breakdown {
		totalExpenses += amount
	}

	return Generate(rows, totalBudget, totalExpenses), nil
}

func (s *Service) monthBreakdown(month string) (map[string]float64, error) {
	first, err := time.Parse(budget.MonthLayout, month)
	if err != nil {
		return nil, err
	}
	firstDay, lastDay := monthBounds(first)

	transactions, err := s.transactions.ListByDateRange(firstDay, lastDay)
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]float64)
	for _, t := range transactions {
		if t.IsExpense() {
			breakdown[t.Category] += t.Amount
		}
	}
	return breakdown, nil
}

// monthBounds returns the inclusive first and last day of t's calendar
// month as stored date strings.
func monthBounds(t time.Time) (string, string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(transaction.DateLayout), last.Format(transaction.DateLayout)
}
