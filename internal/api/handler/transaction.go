// internal/api/handler/transaction.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/domain"
	"finance-tracker/internal/service"
	"finance-tracker/internal/util"
)

// TransactionHandler handles HTTP requests for transaction CRUD operations.
type TransactionHandler struct {
	service service.TransactionService
	logger  *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc service.TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: svc,
		logger:  logger,
	}
}

// transactionID parses the {transactionID} URL parameter. A non-numeric id
// cannot name an existing record, so it reports not-found rather than a
// validation error.
func transactionID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "transactionID"), 10, 64)
	if err != nil {
		return 0, util.ErrNotFound
	}
	return id, nil
}

// List returns the authenticated user's transactions, optionally filtered.
// GET /api/transactions?type=&category=&start_date=&end_date=
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	query := service.ListQuery{
		Type:      r.URL.Query().Get("type"),
		Category:  r.URL.Query().Get("category"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	transactions, err := h.service.List(r.Context(), userID, query)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"transactions": transactions,
		"count":        len(transactions),
	})
}

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string         `json:"type"`
	Category    string         `json:"category"`
	Amount      *domain.Amount `json:"amount"`
	Date        string         `json:"date"`
	Description string         `json:"description"`
}

// Create records a new transaction for the authenticated user.
// POST /api/transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.Validationf("Invalid request body"))
		return
	}

	transaction, err := h.service.Create(r.Context(), userID, service.CreateInput{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, map[string]interface{}{
		"message":     "Transaction created successfully",
		"transaction": transaction,
	})
}

// Get returns a single transaction owned by the authenticated user.
// GET /api/transactions/{transactionID}
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	id, err := transactionID(r)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	transaction, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"transaction": transaction})
}

// Update applies a partial update to a transaction owned by the
// authenticated user.
// PUT /api/transactions/{transactionID}
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	id, err := transactionID(r)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	var patch domain.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, h.logger, util.Validationf("Invalid request body"))
		return
	}

	transaction, err := h.service.Update(r.Context(), userID, id, patch)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":     "Transaction updated successfully",
		"transaction": transaction,
	})
}

// Delete removes a transaction owned by the authenticated user.
// DELETE /api/transactions/{transactionID}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	id, err := transactionID(r)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{
		"message": "Transaction deleted successfully",
	})
}
