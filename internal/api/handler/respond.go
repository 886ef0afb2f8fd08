// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"finance-tracker/internal/util"
)

// DefaultTimeout bounds request handling time at the router level.
const DefaultTimeout = 60 * time.Second

// respondWithJSON sends a JSON response with the given status code.
func respondWithJSON(w http.ResponseWriter, logger *slog.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps application errors to HTTP status codes and sends a
// JSON error body. Unrecognized errors are logged and reported as a generic
// internal error so internals never leak to the client.
func respondWithError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrDuplicateEmail):
		statusCode = http.StatusBadRequest
		message = "Email already exists"
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error() // Validation errors carry a user-facing message
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = "Invalid email or password"
	case util.IsError(err, util.ErrInvalidToken):
		statusCode = http.StatusUnauthorized
		message = "Invalid or expired token"
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(w, logger, statusCode, map[string]string{"error": message})
}
