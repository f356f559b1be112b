package budget

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/frahmantamala/finance-tracker/internal"
)

// UpsertBudgetDTO is the request payload for saving a month's budget. The
// amounts are accepted as arbitrary JSON values because clients send form
// input; anything that is not a usable number coerces to 0.
type UpsertBudgetDTO struct {
	Month   string                 `json:"month"`
	Budgets map[string]interface{} `json:"budgets"`
}

// Validate checks presence of both fields and the month key format.
func (dto UpsertBudgetDTO) Validate() error {
	if dto.Month == "" || dto.Budgets == nil {
		return internal.NewValidationError("Month and budgets are required", internal.ErrCodeMissingField)
	}
	if !IsValidMonth(dto.Month) {
		return internal.NewValidationError("Month must be in YYYY-MM format", internal.ErrCodeInvalidMonth)
	}
	return nil
}

// CoercedBudgets converts the raw amounts into a CategoryAmounts map,
// coercing non-numeric values to 0.
func (dto UpsertBudgetDTO) CoercedBudgets() CategoryAmounts {
	converted := make(CategoryAmounts, len(dto.Budgets))
	for category, raw := range dto.Budgets {
		converted[category] = coerceAmount(raw)
	}
	return converted
}

func coerceAmount(raw interface{}) float64 {
	var amount float64
	switch v := raw.(type) {
	case float64:
		amount = v
	case json.Number:
		amount, _ = v.Float64()
	case string:
		amount, _ = strconv.ParseFloat(v, 64)
	default:
		return 0
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}
