// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// pqUniqueViolation is the Postgres error code for unique constraint violations.
const pqUniqueViolation = "23505"

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	// Methods receive a DBExecutor directly so they run against either the
	// pool or an open transaction.
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{}
}

// CreateUser inserts a new user into the database using the provided DBExecutor.
// The unique index on email is the last line of defense against duplicate
// registration races; violations surface as util.ErrDuplicateEmail.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, created_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := q.QueryRowContext(ctx, query, user.Name, user.Email, user.PasswordHash, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return util.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by their normalized email using the provided DBExecutor.
func (r *UserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`
	err := q.GetContext(ctx, &user, query, domain.NormalizeEmail(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email '%s': %w", email, err)
	}
	return &user, nil
}

// DeleteUser removes a user row. The transactions FK is declared
// ON DELETE CASCADE, so owned transactions disappear with the user.
func (r *UserRepository) DeleteUser(ctx context.Context, q repository.DBExecutor, id int64) error {
	result, err := q.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting user %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
