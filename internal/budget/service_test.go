package budget_test

import (
	"errors"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/budget"
)

// mockRepository keeps budgets in a map keyed by month, mirroring the
// single-row-per-month store semantics.
type mockRepository struct {
	byMonth   map[string]*budget.MonthlyBudget
	getErr    error
	upsertErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{byMonth: make(map[string]*budget.MonthlyBudget)}
}

func (m *mockRepository) GetByMonth(month string) (*budget.MonthlyBudget, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byMonth[month], nil
}

func (m *mockRepository) Upsert(b *budget.MonthlyBudget) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if existing, ok := m.byMonth[b.Month]; ok {
		b.CreatedAt = existing.CreatedAt
	}
	m.byMonth[b.Month] = b
	return nil
}

var _ = Describe("Service", func() {
	var (
		repo    *mockRepository
		service *budget.Service
	)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	BeforeEach(func() {
		repo = newMockRepository()
		service = budget.NewService(repo, testLogger)
	})

	Describe("GetBudget", func() {
		It("rejects a malformed month key", func() {
			_, err := service.GetBudget("2024-13")

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidMonth))
		})

		It("returns nil without error when no budget exists", func() {
			b, err := service.GetBudget("2024-06")
			Expect(err).ToNot(HaveOccurred())
			Expect(b).To(BeNil())
		})

		It("returns the stored document", func() {
			repo.byMonth["2024-06"] = &budget.MonthlyBudget{
				Month:       "2024-06",
				Budgets:     budget.CategoryAmounts{"Shopping": 300},
				TotalBudget: 300,
			}

			b, err := service.GetBudget("2024-06")
			Expect(err).ToNot(HaveOccurred())
			Expect(b.TotalBudget).To(Equal(float64(300)))
		})

		It("wraps store failures as internal errors", func() {
			repo.getErr = errors.New("connection refused")

			_, err := service.GetBudget("2024-06")

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInternal))
		})
	})

	Describe("UpsertBudget", func() {
		It("requires both month and budgets", func() {
			_, err := service.UpsertBudget(budget.UpsertBudgetDTO{Month: "2024-06"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal("Month and budgets are required"))
		})

		It("rejects a malformed month key", func() {
			_, err := service.UpsertBudget(budget.UpsertBudgetDTO{
				Month:   "June 2024",
				Budgets: map[string]interface{}{"Shopping": 300},
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidMonth))
		})

		It("computes the total from the coerced amounts", func() {
			stored, err := service.UpsertBudget(budget.UpsertBudgetDTO{
				Month: "2024-06",
				Budgets: map[string]interface{}{
					"Food & Dining": float64(500),
					"Shopping":      "300",
					"Travel":        "abc",
					"Healthcare":    true,
				},
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(stored.Budgets).To(Equal(budget.CategoryAmounts{
				"Food & Dining": 500,
				"Shopping":      300,
				"Travel":        0,
				"Healthcare":    0,
			}))
			Expect(stored.TotalBudget).To(Equal(float64(800)))
		})

		It("fully replaces the previous allocation map", func() {
			_, err := service.UpsertBudget(budget.UpsertBudgetDTO{
				Month: "2024-06",
				Budgets: map[string]interface{}{
					"Food & Dining": float64(500),
					"Shopping":      float64(300),
				},
			})
			Expect(err).ToNot(HaveOccurred())

			stored, err := service.UpsertBudget(budget.UpsertBudgetDTO{
				Month:   "2024-06",
				Budgets: map[string]interface{}{"Food & Dining": float64(600)},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(stored.Budgets).To(Equal(budget.CategoryAmounts{"Food & Dining": 600}))
			Expect(stored.TotalBudget).To(Equal(float64(600)))
		})

		It("accepts an empty budgets object as a zero-total document", func() {
			stored, err := service.UpsertBudget(budget.UpsertBudgetDTO{
				Month:   "2024-06",
				Budgets: map[string]interface{}{},
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(stored.Budgets).To(BeEmpty())
			Expect(stored.TotalBudget).To(BeZero())
		})

		It("wraps store failures as internal errors", func() {
			repo.upsertErr = errors.New("connection refused")

			_, err := service.UpsertBudget(budget.UpsertBudgetDTO{
				Month:   "2024-06",
				Budgets: map[string]interface{}{"Shopping": float64(300)},
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInternal))
		})
	})
})
