package budget

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/frahmantamala/finance-tracker/internal/transport"
)

type ServiceAPI interface {
	GetBudget(month string) (*MonthlyBudget, error)
	UpsertBudget(dto UpsertBudgetDTO) (*MonthlyBudget, error)
}

// Clock supplies "now" for defaulting the month query parameter.
type Clock interface {
	Now() time.Time
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Clock   Clock
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, clock Clock) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Clock:       clock,
	}
}

// GetBudget handles GET /budgets?month=YYYY-MM, defaulting to the current month.
func (h *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = h.Clock.Now().Format(MonthLayout)
	}

	b, err := h.Service.GetBudget(month)
	if err != nil {
		h.Logger.Error("GetBudget: service error", "error", err, "month", month)
		h.HandleServiceError(w, err)
		return
	}

	if b == nil {
		// absent months answer success with a null document
		h.WriteNullData(w, http.StatusOK)
		return
	}
	h.WriteData(w, http.StatusOK, b)
}

// UpsertBudget handles POST /budgets
func (h *Handler) UpsertBudget(w http.ResponseWriter, r *http.Request) {
	var dto UpsertBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpsertBudget: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.UpsertBudget(dto)
	if err != nil {
		h.Logger.Error("UpsertBudget: service error", "error", err, "month", dto.Month)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("UpsertBudget: budget saved", "month", b.Month, "total_budget", b.TotalBudget)
	h.WriteData(w, http.StatusOK, b)
}
