package category

import (
	"log/slog"
)

type Repository interface {
	GetAll() ([]*Category, error)
	Create(c *Category) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetAllCategories returns the active reference categories.
func (s *Service) GetAllCategories() ([]CategoryResponse, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get categories from repository", "error", err)
		return nil, err
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		if c.IsActive {
			responses = append(responses, CategoryResponse{
				Name:        c.Name,
				Description: c.Description,
			})
		}
	}

	s.logger.Info("retrieved categories", "count", len(responses))
	return responses, nil
}
