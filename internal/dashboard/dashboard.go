package dashboard

import (
	"github.com/frahmantamala/finance-tracker/internal/transaction"
)

// MonthlyExpense is one point of the trailing six-month expense series.
type MonthlyExpense struct {
	Month    string  `json:"month"`
	Expenses float64 `json:"expenses"`
}

// DashboardStats is the per-request aggregate for the current calendar
// month. Never persisted.
type DashboardStats struct {
	TotalBalance       float64                    `json:"totalBalance"`
	TotalIncome        float64                    `json:"totalIncome"`
	TotalExpenses      float64                    `json:"totalExpenses"`
	BudgetRemaining    float64                    `json:"budgetRemaining"`
	CategoryBreakdown  map[string]float64         `json:"categoryBreakdown"`
	MonthlyExpenses    []MonthlyExpense           `json:"monthlyExpenses"`
	RecentTransactions []*transaction.Transaction `json:"recentTransactions"`
}

// ComparisonRow joins one budgeted category with its actual spending.
type ComparisonRow struct {
	Category     string  `json:"category"`
	Budget       float64 `json:"budget"`
	Actual       float64 `json:"actual"`
	Percentage   float64 `json:"percentage"`
	IsOverBudget bool    `json:"isOverBudget"`
}

// Insight is a short rule-generated observation about budget adherence.
type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Insight severity tags.
const (
	SeverityWarning  = "warning"
	SeverityPositive = "positive"
	SeverityAlert    = "alert"
	SeverityTrend    = "trend"
)
