// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"finance-tracker/internal/domain"

	"github.com/shopspring/decimal"
)

// TransactionRepository defines the interface for transaction data operations.
// Every method that touches a specific row filters by both the transaction id
// and the owning user id, so cross-owner access is indistinguishable from
// absence.
type TransactionRepository interface {
	// CreateTransaction adds a new transaction record using the provided DBExecutor.
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// ListByUser retrieves the user's transactions matching the filter,
	// ordered by date descending (id descending on ties).
	ListByUser(ctx context.Context, q DBExecutor, userID int64, filter domain.TransactionFilter) ([]domain.Transaction, error)
	// GetByID retrieves a single transaction scoped to the owning user.
	GetByID(ctx context.Context, q DBExecutor, userID, id int64) (*domain.Transaction, error)
	// UpdateTransaction persists the mutable fields of an already-loaded
	// transaction, scoped to the owning user.
	UpdateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// DeleteTransaction removes a transaction scoped to the owning user,
	// reporting util.ErrNotFound when nothing was deleted.
	DeleteTransaction(ctx context.Context, q DBExecutor, userID, id int64) error
	// SumByType returns per-type amount sums and the total row count over the
	// user's transactions, optionally restricted to an inclusive date range.
	SumByType(ctx context.Context, q DBExecutor, userID int64, startDate, endDate *domain.Date) (map[domain.TransactionType]decimal.Decimal, int64, error)
	// SumByCategory returns per-category amount sums for the user's
	// transactions of the given type. Categories without matches are omitted.
	SumByCategory(ctx context.Context, q DBExecutor, userID int64, txType domain.TransactionType) ([]domain.CategoryTotal, error)
}
