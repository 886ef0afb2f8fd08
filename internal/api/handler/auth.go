// internal/api/handler/auth.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/service"
	"finance-tracker/internal/util"
)

// AuthHandler handles registration, login and profile requests.
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new user registration.
// POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.Validationf("Invalid request body"))
		return
	}

	user, token, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, map[string]interface{}{
		"message":      "User created successfully",
		"user":         user,
		"access_token": token,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login.
// POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.Validationf("Invalid request body"))
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":      "Login successful",
		"user":         user,
		"access_token": token,
	})
}

// Profile returns the authenticated user's profile.
// GET /api/user/profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	user, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"user": user})
}
