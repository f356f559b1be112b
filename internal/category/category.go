package category

import (
	"time"
)

// Category is a reference entry for the category picker. Transactions store
// free-text category labels; this table is a convention, not a constraint.
type Category struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"column:name;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"column:description"`
	IsActive    bool      `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

func NewCategory(name, description string) *Category {
	now := time.Now()
	return &Category{
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DefaultCategories is the fixed set the UI offers. Seeded once; the store
// layer never validates transaction categories against it.
var DefaultCategories = []struct {
	Name        string
	Description string
}{
	{"Food & Dining", "Groceries, restaurants and takeout"},
	{"Transportation", "Fuel, transit and ride sharing"},
	{"Shopping", "Clothing, electronics and general retail"},
	{"Entertainment", "Movies, games and subscriptions"},
	{"Bills & Utilities", "Rent, power, water and connectivity"},
	{"Healthcare", "Medical, dental and pharmacy"},
	{"Travel", "Flights, hotels and holidays"},
	{"Education", "Courses, books and tuition"},
}
