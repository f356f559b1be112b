package postgres

import (
	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	"gorm.io/gorm"
)

// TransactionRepository implements transaction.Repository using GORM
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) transaction.Repository {
	return &TransactionRepository{db: db}
}

// Create saves a new transaction
func (r *TransactionRepository) Create(t *transaction.Transaction) error {
	return r.db.Create(t).Error
}

// GetByID retrieves a transaction by its id
func (r *TransactionRepository) GetByID(id string) (*transaction.Transaction, error) {
	var t transaction.Transaction
	err := r.db.Where("id = ?", id).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrTransactionNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List retrieves up to limit transactions, descending by date
func (r *TransactionRepository) List(limit int) ([]*transaction.Transaction, error) {
	var transactions []*transaction.Transaction
	err := r.db.Order("date DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

// ListByDateRange retrieves transactions with date in [start, end],
// descending by date. Bounds are inclusive date strings; comparing them
// lexicographically is valid for the fixed-width ISO format.
func (r *TransactionRepository) ListByDateRange(start, end string) ([]*transaction.Transaction, error) {
	var transactions []*transaction.Transaction
	err := r.db.Where("date >= ? AND date <= ?", start, end).
		Order("date DESC").
		Find(&transactions).Error
	return transactions, err
}

// ExpenseTotalsByMonth sums expense amounts per YYYY-MM bucket in one
// grouped query over [startMonth, endMonth]. Months with no expenses are
// absent from the map; callers zero-fill.
func (r *TransactionRepository) ExpenseTotalsByMonth(startMonth, endMonth string) (map[string]float64, error) {
	var rows []struct {
		Month string
		Total float64
	}
	err := r.db.Model(&transaction.Transaction{}).
		Select("substr(date, 1, 7) AS month, SUM(amount) AS total").
		Where("type = ? AND substr(date, 1, 7) BETWEEN ? AND ?", transaction.TypeExpense, startMonth, endMonth).
		Group("substr(date, 1, 7)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(rows))
	for _, row := range rows {
		totals[row.Month] = row.Total
	}
	return totals, nil
}

// Update replaces the user fields of an existing transaction
func (r *TransactionRepository) Update(t *transaction.Transaction) error {
	result := r.db.Model(&transaction.Transaction{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"type":        t.Type,
			"amount":      t.Amount,
			"category":    t.Category,
			"description": t.Description,
			"date":        t.Date,
			"updated_at":  t.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction by id
func (r *TransactionRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&transaction.Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrTransactionNotFound
	}
	return nil
}
