package dashboard

import (
	"net/http"

	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/transport"
)

type ServiceAPI interface {
	Stats() (*DashboardStats, error)
	BudgetComparison(month string) ([]ComparisonRow, error)
	Insights() ([]Insight, error)
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

// GetStats handles GET /dashboard/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats()
	if err != nil {
		h.Logger.Error("GetStats: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, stats)
}

// GetBudgetComparison handles GET /dashboard/budget-comparison?month=YYYY-MM,
// defaulting to the current month.
func (h *Handler) GetBudgetComparison(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = h.Clock.Now().Format(budget.MonthLayout)
	}

	rows, err := h.Service.BudgetComparison(month)
	if err != nil {
		h.Logger.Error("GetBudgetComparison: service error", "error", err, "month", month)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, rows)
}

// GetInsights handles GET /dashboard/insights
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.Service.Insights()
	if err != nil {
		h.Logger.Error("GetInsights: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, insights)
}
