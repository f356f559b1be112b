package budget

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
)

// Repository interface defines the data access methods for monthly budgets
type Repository interface {
	// GetByMonth returns nil without error when no budget exists for the month.
	GetByMonth(month string) (*MonthlyBudget, error)
	Upsert(b *MonthlyBudget) error
}

// Service handles budget business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new budget service
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetBudget fetches one month's budget document. A nil result means no
// budget has been saved for that month.
func (s *Service) GetBudget(month string) (*MonthlyBudget, error) {
	if !IsValidMonth(month) {
		return nil, internal.NewValidationError("Month must be in YYYY-MM format", internal.ErrCodeInvalidMonth)
	}

	b, err := s.repo.GetByMonth(month)
	if err != nil {
		s.logger.Error("failed to get budget", "error", err, "month", month)
		return nil, internal.NewInternalError("failed to get budget", err)
	}
	return b, nil
}

// UpsertBudget fully replaces the month's allocation map and recomputes the
// persisted total from it. The row write is atomic: budgets and totalBudget
// never diverge in the store.
func (s *Service) UpsertBudget(dto UpsertBudgetDTO) (*MonthlyBudget, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("budget validation failed", "error", err)
		return nil, err
	}

	budgets := dto.CoercedBudgets()
	now := time.Now()
	b := &MonthlyBudget{
		Month:       dto.Month,
		Budgets:     budgets,
		TotalBudget: budgets.Total(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Upsert(b); err != nil {
		s.logger.Error("failed to upsert budget", "error", err, "month", dto.Month)
		return nil, internal.NewInternalError("failed to save budget", err)
	}

	// read back the stored document; the store guarantees read-after-write
	// for a single row
	stored, err := s.repo.GetByMonth(dto.Month)
	if err != nil {
		s.logger.Error("failed to read back budget", "error", err, "month", dto.Month)
		return nil, internal.NewInternalError("failed to save budget", err)
	}

	s.logger.Info("budget saved",
		"month", stored.Month,
		"categories", len(stored.Budgets),
		"total_budget", stored.TotalBudget)

	return stored, nil
}
