package transaction

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/google/uuid"
)

// Repository interface defines the data access methods for transactions
type Repository interface {
	Create(t *Transaction) error
	GetByID(id string) (*Transaction, error)
	List(limit int) ([]*Transaction, error)
	ListByDateRange(start, end string) ([]*Transaction, error)
	ExpenseTotalsByMonth(startMonth, endMonth string) (map[string]float64, error)
	Update(t *Transaction) error
	Delete(id string) error
}

// Service handles transaction business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new transaction service
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateTransaction validates the draft and persists it with a fresh id
// and audit timestamps.
func (s *Service) CreateTransaction(dto TransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("transaction validation failed", "error", err)
		return nil, err
	}

	now := time.Now()
	txn := &Transaction{
		ID:          uuid.NewString(),
		Type:        dto.Type,
		Amount:      dto.Amount,
		Category:    dto.Category,
		Description: dto.Description,
		Date:        dto.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(txn); err != nil {
		s.logger.Error("failed to create transaction", "error", err)
		return nil, internal.NewInternalError("failed to create transaction", err)
	}

	s.logger.Info("transaction created",
		"transaction_id", txn.ID,
		"type", txn.Type,
		"amount", txn.Amount,
		"category", txn.Category)

	return txn, nil
}

// ListTransactions returns up to limit transactions, most recent date first.
func (s *Service) ListTransactions(limit int) ([]*Transaction, error) {
	transactions, err := s.repo.List(limit)
	if err != nil {
		s.logger.Error("failed to list transactions", "error", err)
		return nil, internal.NewInternalError("failed to list transactions", err)
	}
	return transactions, nil
}

// UpdateTransaction replaces every user field of an existing transaction
// and refreshes updatedAt.
func (s *Service) UpdateTransaction(id string, dto TransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("transaction validation failed", "error", err, "transaction_id", id)
		return nil, err
	}

	txn := &Transaction{
		ID:          id,
		Type:        dto.Type,
		Amount:      dto.Amount,
		Category:    dto.Category,
		Description: dto.Description,
		Date:        dto.Date,
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Update(txn); err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("failed to update transaction", "error", err, "transaction_id", id)
		return nil, internal.NewInternalError("failed to update transaction", err)
	}

	s.logger.Info("transaction updated", "transaction_id", id)
	return txn, nil
}

// DeleteTransaction removes a transaction by id. Deleting an unknown id
// fails with not-found; a second delete is a no-op that fails the same way.
func (s *Service) DeleteTransaction(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return err
		}
		s.logger.Error("failed to delete transaction", "error", err, "transaction_id", id)
		return internal.NewInternalError("failed to delete transaction", err)
	}

	s.logger.Info("transaction deleted", "transaction_id", id)
	return nil
}
