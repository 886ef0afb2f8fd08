// internal/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"finance-tracker/internal/util"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// Middleware gates protected endpoints on a valid bearer token. The
// authenticated user id is extracted once here and placed in the request
// context; handlers read it with UserIDFromContext and thread it explicitly
// into every service call.
func (m *TokenManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthorized(w, "Missing or invalid authorization header")
			return
		}

		userID, err := m.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user id placed in the context
// by Middleware.
func UserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok {
		return 0, util.ErrInvalidToken
	}
	return userID, nil
}

// ContextWithUserID returns a context carrying the given user id. Used by
// handler tests to simulate an authenticated request.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
