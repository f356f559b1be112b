package postgres

import (
	"github.com/frahmantamala/finance-tracker/internal/budget"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetRepository implements budget.Repository using GORM
type BudgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) budget.Repository {
	return &BudgetRepository{db: db}
}

// GetByMonth retrieves one month's budget, nil when absent
func (r *BudgetRepository) GetByMonth(month string) (*budget.MonthlyBudget, error) {
	var b budget.MonthlyBudget
	err := r.db.Where("month = ?", month).First(&b).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Upsert inserts or fully replaces a month's budget as one atomic row
// write. created_at survives replacement; budgets, total_budget and
// updated_at always take the new values.
func (r *BudgetRepository) Upsert(b *budget.MonthlyBudget) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"budgets", "total_budget", "updated_at"}),
	}).Create(b).Error
}
