package transaction

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

const defaultListLimit = 100

type ServiceAPI interface {
	CreateTransaction(dto TransactionDTO) (*Transaction, error)
	ListTransactions(limit int) ([]*Transaction, error)
	UpdateTransaction(id string, dto TransactionDTO) (*Transaction, error)
	DeleteTransaction(id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// ListTransactions handles GET /transactions
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= defaultListLimit {
			limit = l
		}
	}

	transactions, err := h.Service.ListTransactions(limit)
	if err != nil {
		h.Logger.Error("ListTransactions: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if transactions == nil {
		transactions = []*Transaction{}
	}
	h.WriteData(w, http.StatusOK, transactions)
}

// CreateTransaction handles POST /transactions
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateTransaction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, err := h.Service.CreateTransaction(dto)
	if err != nil {
		h.Logger.Error("CreateTransaction: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateTransaction: transaction created",
		"transaction_id", txn.ID,
		"type", txn.Type,
		"amount", txn.Amount)

	h.WriteData(w, http.StatusCreated, txn)
}

// UpdateTransaction handles PUT /transactions/{id}
func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		h.Logger.Error("UpdateTransaction: invalid transaction ID", "id", id)
		h.WriteError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateTransaction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, err := h.Service.UpdateTransaction(id, dto)
	if err != nil {
		h.Logger.Error("UpdateTransaction: service error", "error", err, "transaction_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, UpdatedFields{
		Type:        txn.Type,
		Amount:      txn.Amount,
		Category:    txn.Category,
		Description: txn.Description,
		Date:        txn.Date,
		UpdatedAt:   txn.UpdatedAt,
	})
}

// DeleteTransaction handles DELETE /transactions/{id}
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		h.Logger.Error("DeleteTransaction: invalid transaction ID", "id", id)
		h.WriteError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	if err := h.Service.DeleteTransaction(id); err != nil {
		h.Logger.Error("DeleteTransaction: service error", "error", err, "transaction_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, nil)
}
