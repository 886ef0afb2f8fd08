// internal/repository/user_repo.go
package repository

import (
	"context"

	"finance-tracker/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user using the provided DBExecutor. A duplicate
	// email reports util.ErrDuplicateEmail.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByEmail retrieves a user by their normalized email.
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
	// DeleteUser removes a user; owned transactions are cascade-deleted by
	// the schema. No HTTP endpoint exposes this, it exists for store-level
	// lifecycle management.
	DeleteUser(ctx context.Context, q DBExecutor, id int64) error
}
