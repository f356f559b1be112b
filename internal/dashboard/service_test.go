package dashboard_test

import (
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/dashboard"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// Mock transaction reader for testing
type mockTransactionReader struct {
	transactions []*transaction.Transaction
	totals       map[string]float64
	listErr      error
	totalsErr    error

	lastRangeStart string
	lastRangeEnd   string
	lastStartMonth string
	lastEndMonth   string
}

func (m *mockTransactionReader) ListByDateRange(start, end string) ([]*transaction.Transaction, error) {
	m.lastRangeStart = start
	m.lastRangeEnd = end
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.transactions, nil
}

func (m *mockTransactionReader) ExpenseTotalsByMonth(startMonth, endMonth string) (map[string]float64, error) {
	m.lastStartMonth = startMonth
	m.lastEndMonth = endMonth
	if m.totalsErr != nil {
		return nil, m.totalsErr
	}
	return m.totals, nil
}

// Mock budget reader for testing
type mockBudgetReader struct {
	budgets map[string]*budget.MonthlyBudget
	getErr  error
}

func (m *mockBudgetReader) GetByMonth(month string) (*budget.MonthlyBudget, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.budgets[month], nil
}

func expenseTxn(amount float64, category, date string) *transaction.Transaction {
	return &transaction.Transaction{
		ID:       date + "-" + category,
		Type:     transaction.TypeExpense,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func incomeTxn(amount float64, date string) *transaction.Transaction {
	return &transaction.Transaction{
		ID:     date + "-income",
		Type:   transaction.TypeIncome,
		Amount: amount,
		Date:   date,
	}
}

var _ = Describe("DashboardService", func() {
	var (
		service  *dashboard.Service
		mockTxns *mockTransactionReader
		mockBdgs *mockBudgetReader
		clock    fixedClock
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockTxns = &mockTransactionReader{totals: map[string]float64{}}
		mockBdgs = &mockBudgetReader{budgets: map[string]*budget.MonthlyBudget{}}
		clock = fixedClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = dashboard.NewService(mockTxns, mockBdgs, clock, logger)
	})

	Describe("Stats", func() {
		It("queries the current month with inclusive bounds", func() {
			_, err := service.Stats()
			Expect(err).ToNot(HaveOccurred())
			Expect(mockTxns.lastRangeStart).To(Equal("2024-06-01"))
			Expect(mockTxns.lastRangeEnd).To(Equal("2024-06-30"))
		})

		It("computes balance as income minus expenses", func() {
			mockTxns.transactions = []*transaction.Transaction{
				incomeTxn(3000, "2024-06-01"),
				incomeTxn(200, "2024-06-10"),
				expenseTxn(450, "Food & Dining", "2024-06-05"),
				expenseTxn(150, "Transportation", "2024-06-07"),
			}

			stats, err := service.Stats()

			Expect(err).ToNot(HaveOccurred())
			Expect(stats.TotalIncome).To(Equal(3200.0))
			Expect(stats.TotalExpenses).To(Equal(600.0))
			Expect(stats.TotalBalance).To(Equal(2600.0))
		})

		It("excludes income from the category breakdown and omits empty categories", func() {
			mockTxns.transactions = []*transaction.Transaction{
				incomeTxn(3000, "2024-06-01"),
				expenseTxn(100, "Food & Dining", "2024-06-05"),
				expenseTxn(50, "Food & Dining", "2024-06-06"),
				expenseTxn(30, "Shopping", "2024-06-07"),
			}

			stats, err := service.Stats()

			Expect(err).ToNot(HaveOccurred())
			Expect(stats.CategoryBreakdown).To(HaveLen(2))
			Expect(stats.CategoryBreakdown["Food & Dining"]).To(Equal(150.0))
			Expect(stats.CategoryBreakdown["Shopping"]).To(Equal(30.0))
			Expect(stats.CategoryBreakdown).ToNot(HaveKey("Travel"))
		})

		It("reports zero budget remaining when no budget exists for the month", func() {
			mockTxns.transactions = []*transaction.Transaction{
				expenseTxn(100, "Food & Dining", "2024-06-05"),
			}

			stats, err := service.Stats()

			Expect(err).ToNot(HaveOccurred())
			Expect(stats.BudgetRemaining).To(Equal(0.0))
		})

		It("leaves budget remaining unclamped when spending exceeds the budget", func() {
			mockBdgs.budgets["2024-06"] = &budget.MonthlyBudget{
				Month:       "2024-06",
				Budgets:     budget.CategoryAmounts{"Food & Dining": 100},
				TotalBudget: 100,
			}
			mockTxns.transactions = []*transaction.Transaction{
				expenseTxn(250, "Food & Dining", "2024-06-05"),
			}

			stats, err := service.Stats()

			Expect(err).ToNot(HaveOccurred())
			Expect(stats.BudgetRemaining).To(Equal(-150.0))
		})

		It("limits recent transactions to the first five in store order", func() {
			for day := 10; day > 3; day-- {
				mockTxns.transactions = append(mockTxns.transactions,
					expenseTxn(10, "Shopping", time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC).Format(transaction.DateLayout)))
			}

			stats, err := service.Stats()

			Expect(err).ToNot(HaveOccurred())
			Expect(stats.RecentTransactions).To(HaveLen(5))
			Expect(stats.RecentTransactions[0].Date).To(Equal("2024-06-10"))
			Expect(stats.RecentTransactions[4].Date).To(Equal("2024-06-06"))
		})

		It("returns fewer than five recent transactions for a sparse month", func() {
			mockTxns.transactions = []*transaction.Transaction{
				expenseTxn(10, "Shopping", "2024-06-02"),
			}

			stats, err := service.Stats()

			Expect(err).ToNot(HaveOccurred())
			Expect(stats.RecentTransactions).To(HaveLen(1))
		})

		It("builds six monthly entries oldest first, zero-filled", func() {
			mockTxns.totals = map[string]float64{
				"2024-04": 120,
				"2024-06": 75.5,
			}

			stats, err := service.Stats()

			Expect(err).ToNot(HaveOccurred())
			Expect(stats.MonthlyExpenses).To(HaveLen(6))
			Expect(mockTxns.lastStartMonth).To(Equal("2024-01"))
			Expect(mockTxns.lastEndMonth).To(Equal("2024-06"))

			labels := make([]string, 0, 6)
			for _, e := range stats.MonthlyExpenses {
				labels = append(labels, e.Month)
			}
			Expect(labels).To(Equal([]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}))

			Expect(stats.MonthlyExpenses[0].Expenses).To(Equal(0.0))
			Expect(stats.MonthlyExpenses[3].Expenses).To(Equal(120.0))
			Expect(stats.MonthlyExpenses[5].Expenses).To(Equal(75.5))
		})

		It("spans a year boundary in the monthly series", func() {
			clock = fixedClock{now: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)}
			service = dashboard.NewService(mockTxns, mockBdgs, clock, logger)

			stats, err := service.Stats()

			Expect(err).ToNot(HaveOccurred())
			Expect(mockTxns.lastStartMonth).To(Equal("2023-09"))
			Expect(mockTxns.lastEndMonth).To(Equal("2024-02"))
			Expect(stats.MonthlyExpenses[0].Month).To(Equal("Sep"))
			Expect(stats.MonthlyExpenses[5].Month).To(Equal("Feb"))
		})

		It("fails outright when the transaction store fails", func() {
			mockTxns.listErr = errors.New("connection refused")

			stats, err := service.Stats()

			Expect(err).To(HaveOccurred())
			Expect(stats).To(BeNil())
		})

		It("fails outright when the budget store fails", func() {
			mockBdgs.getErr = errors.New("connection refused")

			stats, err := service.Stats()

			Expect(err).To(HaveOccurred())
			Expect(stats).To(BeNil())
		})
	})

	Describe("BudgetComparison", func() {
		It("rejects a malformed month key", func() {
			_, err := service.BudgetComparison("June 2024")
			Expect(err).To(HaveOccurred())
		})

		It("returns no rows when no budget exists", func() {
			rows, err := service.BudgetComparison("2024-06")
			Expect(err).ToNot(HaveOccurred())
			Expect(rows).To(BeEmpty())
		})

		It("joins budgets with the month's actual spending", func() {
			mockBdgs.budgets["2024-06"] = &budget.MonthlyBudget{
				Month:       "2024-06",
				Budgets:     budget.CategoryAmounts{"Food & Dining": 100, "Travel": 1000},
				TotalBudget: 1100,
			}
			mockTxns.transactions = []*transaction.Transaction{
				expenseTxn(120, "Food & Dining", "2024-06-05"),
			}

			rows, err := service.BudgetComparison("2024-06")

			Expect(err).ToNot(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].Category).To(Equal("Food & Dining"))
			Expect(rows[0].Actual).To(Equal(120.0))
			Expect(rows[0].IsOverBudget).To(BeTrue())
			Expect(rows[1].Category).To(Equal("Travel"))
			Expect(rows[1].Actual).To(Equal(0.0))
		})
	})

	Describe("Insights", func() {
		It("produces the starter insight when no budget exists", func() {
			insights, err := service.Insights()

			Expect(err).ToNot(HaveOccurred())
			Expect(insights).To(HaveLen(1))
			Expect(insights[0].Title).To(Equal("Start Your Financial Journey"))
		})

		It("evaluates the rules against the current month", func() {
			mockBdgs.budgets["2024-06"] = &budget.MonthlyBudget{
				Month:       "2024-06",
				Budgets:     budget.CategoryAmounts{"Food & Dining": 100},
				TotalBudget: 100,
			}
			mockTxns.transactions = []*transaction.Transaction{
				expenseTxn(120, "Food & Dining", "2024-06-05"),
			}

			insights, err := service.Insights()

			Expect(err).ToNot(HaveOccurred())
			Expect(insights).To(HaveLen(1))
			Expect(insights[0].Title).To(Equal("Food & Dining Budget Exceeded"))
			Expect(insights[0].Type).To(Equal(dashboard.SeverityWarning))
		})
	})
})
