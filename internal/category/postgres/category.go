package postgres

import (
	"github.com/frahmantamala/finance-tracker/internal/category"
	"gorm.io/gorm"
)

// CategoryRepository implements category.Repository using GORM
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAll() ([]*category.Category, error) {
	var categories []*category.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Create(c *category.Category) error {
	return r.db.Create(c).Error
}
