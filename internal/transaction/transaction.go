package transaction

import (
	"time"
)

// Transaction is a single dated income or expense record. Date is kept as
// an ISO YYYY-MM-DD string so range queries reduce to lexicographic
// comparison on a fixed-width format.
type Transaction struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id"`
	Type        string    `json:"type" gorm:"column:type;not null"`
	Amount      float64   `json:"amount" gorm:"column:amount;not null"`
	Category    string    `json:"category" gorm:"column:category;not null"`
	Description string    `json:"description" gorm:"column:description;not null"`
	Date        string    `json:"date" gorm:"column:date;not null;index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// DateLayout is the stored calendar-date format.
const DateLayout = "2006-01-02"

func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}
