// internal/api/handler/health.go
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger abstracts the database connectivity check. *sqlx.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports service and database health.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Health checks database connectivity.
// GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("Health check failed", "error", err)
		respondWithJSON(w, h.logger, http.StatusInternalServerError, map[string]string{
			"status":   "error",
			"message":  "Database unreachable",
			"database": "Connection failed",
		})
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{
		"status":   "ok",
		"message":  "Backend is running",
		"database": "PostgreSQL connected",
	})
}

// Home serves the API information index.
// GET /
func (h *HealthHandler) Home(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "Personal Finance Tracker API",
		"version": "1.0",
		"endpoints": map[string]interface{}{
			"auth": map[string]string{
				"register": "POST /api/register",
				"login":    "POST /api/login",
			},
			"transactions": map[string]string{
				"list":   "GET /api/transactions",
				"create": "POST /api/transactions",
				"get":    "GET /api/transactions/{id}",
				"update": "PUT /api/transactions/{id}",
				"delete": "DELETE /api/transactions/{id}",
			},
			"stats": map[string]string{
				"summary":     "GET /api/stats/summary",
				"by_category": "GET /api/stats/by-category",
			},
			"user": map[string]string{
				"profile": "GET /api/user/profile",
			},
		},
	})
}
