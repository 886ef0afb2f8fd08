// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"finance-tracker/internal/api/handler"
	"finance-tracker/internal/auth"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	authHandler *handler.AuthHandler,
	transactionHandler *handler.TransactionHandler,
	statsHandler *handler.StatsHandler,
	healthHandler *handler.HealthHandler,
	tokens *auth.TokenManager,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer) // Panics become 500 responses instead of leaking internals
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Public endpoints
	r.Get("/", healthHandler.Home)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Everything below requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware)

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", transactionHandler.List)
				r.Post("/", transactionHandler.Create)
				r.Get("/{transactionID}", transactionHandler.Get)
				r.Put("/{transactionID}", transactionHandler.Update)
				r.Delete("/{transactionID}", transactionHandler.Delete)
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/summary", statsHandler.Summary)
				r.Get("/by-category", statsHandler.ByCategory)
			})

			r.Get("/user/profile", authHandler.Profile)
		})
	})

	return r
}
