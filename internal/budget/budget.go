package budget

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// CategoryAmounts maps a category name to its allocated amount. Stored as a
// single JSON document column so the budget row replaces atomically.
type CategoryAmounts map[string]float64

func (c CategoryAmounts) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

func (c *CategoryAmounts) Scan(value interface{}) error {
	if value == nil {
		*c = CategoryAmounts{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported type %T for CategoryAmounts", value)
	}
}

// Total sums every allocation in the map.
func (c CategoryAmounts) Total() float64 {
	var total float64
	for _, amount := range c {
		total += amount
	}
	return total
}

// MonthlyBudget holds one month's per-category limits. The month key is the
// identity: at most one row per YYYY-MM. TotalBudget is derived from
// Budgets at write time and persisted alongside it.
type MonthlyBudget struct {
	Month       string          `json:"month" gorm:"primaryKey;column:month"`
	Budgets     CategoryAmounts `json:"budgets" gorm:"column:budgets;type:jsonb"`
	TotalBudget float64         `json:"totalBudget" gorm:"column:total_budget"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (MonthlyBudget) TableName() string {
	return "monthly_budgets"
}

// MonthLayout is the budget identity format.
const MonthLayout = "2006-01"

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsValidMonth reports whether s is a well-formed YYYY-MM key.
func IsValidMonth(s string) bool {
	return monthPattern.MatchString(s)
}
