// internal/api/handler/stats.go
package handler

import (
	"log/slog"
	"net/http"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/service"
)

// StatsHandler handles aggregate statistics requests.
type StatsHandler struct {
	service service.TransactionService
	logger  *slog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc service.TransactionService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		service: svc,
		logger:  logger,
	}
}

// Summary returns per-type totals, the balance and the transaction count over
// the authenticated user's (optionally date-filtered) transactions.
// GET /api/stats/summary?start_date=&end_date=
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	summary, err := h.service.Summary(r.Context(),
		userID,
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, summary)
}

// ByCategory returns per-category totals for one transaction type,
// defaulting to expense.
// GET /api/stats/by-category?type=
func (h *StatsHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	txType, categories, err := h.service.ByCategory(r.Context(), userID, r.URL.Query().Get("type"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"type":       txType,
		"categories": categories,
	})
}
