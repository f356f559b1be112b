package transaction

import (
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
)

// TransactionDTO is the request payload for creating a transaction and for
// replacing one via PUT. Edits are full field replacement, so both
// operations share the same shape and rules.
type TransactionDTO struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// Validate checks the write-boundary invariants. The category is free text:
// the fixed UI set is a convention, never enforced here.
func (dto TransactionDTO) Validate() error {
	if dto.Type == "" || dto.Category == "" || dto.Description == "" || dto.Date == "" {
		return internal.NewValidationError("All fields are required", internal.ErrCodeMissingField)
	}
	if dto.Type != TypeIncome && dto.Type != TypeExpense {
		return internal.NewValidationError("Type must be either 'income' or 'expense'", internal.ErrCodeInvalidType)
	}
	if dto.Amount <= 0 {
		return internal.NewValidationError("Amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	if _, err := time.Parse(DateLayout, dto.Date); err != nil {
		return internal.NewValidationError("Date must be in YYYY-MM-DD format", internal.ErrCodeInvalidDate)
	}
	return nil
}

// UpdatedFields echoes the replaced fields of a PUT, mirroring the update
// payload rather than the full stored document.
type UpdatedFields struct {
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
