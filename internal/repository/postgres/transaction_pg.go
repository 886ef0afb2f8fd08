// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct {
	// Methods receive a DBExecutor directly so they run against either the
	// pool or an open transaction.
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &TransactionRepository{}
}

// CreateTransaction inserts a new transaction record using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (user_id, type, category, amount, date, description, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := q.QueryRowContext(ctx, query,
		transaction.UserID,
		transaction.Type,
		transaction.Category,
		transaction.Amount,
		transaction.Date,
		transaction.Description,
		transaction.CreatedAt,
	).Scan(&transaction.ID)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ListByUser retrieves the user's transactions matching every supplied filter
// predicate, newest date first. The id tiebreak keeps ordering stable for
// transactions sharing a date.
func (r *TransactionRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, user_id, type, category, amount, date, description, created_at
		FROM transactions
		WHERE user_id = $1`)
	args := []interface{}{userID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		fmt.Fprintf(&sb, " AND type = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		fmt.Fprintf(&sb, " AND category = $%d", len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		fmt.Fprintf(&sb, " AND date <= $%d", len(args))
	}
	sb.WriteString(" ORDER BY date DESC, id DESC")

	transactions := []domain.Transaction{}
	if err := q.SelectContext(ctx, &transactions, sb.String(), args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %d: %w", userID, err)
	}
	return transactions, nil
}

// GetByID retrieves a single transaction scoped to the owning user. A row
// owned by a different user is reported as util.ErrNotFound, never as a
// distinct forbidden error.
func (r *TransactionRepository) GetByID(ctx context.Context, q repository.DBExecutor, userID, id int64) (*domain.Transaction, error) {
	var transaction domain.Transaction
	query := `SELECT id, user_id, type, category, amount, date, description, created_at
		FROM transactions WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &transaction, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction %d: %w", id, err)
	}
	return &transaction, nil
}

// UpdateTransaction persists the mutable fields of a transaction, scoped to
// the owning user.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `UPDATE transactions
		SET type = $1, category = $2, amount = $3, date = $4, description = $5
		WHERE id = $6 AND user_id = $7`
	result, err := q.ExecContext(ctx, query,
		transaction.Type,
		transaction.Category,
		transaction.Amount,
		transaction.Date,
		transaction.Description,
		transaction.ID,
		transaction.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", transaction.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating transaction %d: %w", transaction.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction scoped to the owning user.
// Repeating the delete reports util.ErrNotFound, not a silent no-op.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, q repository.DBExecutor, userID, id int64) error {
	result, err := q.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting transaction %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// typeSumRow is the scan target for the per-type aggregation query.
type typeSumRow struct {
	Type  domain.TransactionType `db:"type"`
	Total decimal.Decimal        `db:"total"`
	Count int64                  `db:"count"`
}

// SumByType aggregates amounts per transaction type over the user's
// transactions, optionally restricted to an inclusive date range.
func (r *TransactionRepository) SumByType(ctx context.Context, q repository.DBExecutor, userID int64, startDate, endDate *domain.Date) (map[domain.TransactionType]decimal.Decimal, int64, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT type, SUM(amount) AS total, COUNT(*) AS count
		FROM transactions
		WHERE user_id = $1`)
	args := []interface{}{userID}

	if startDate != nil {
		args = append(args, *startDate)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if endDate != nil {
		args = append(args, *endDate)
		fmt.Fprintf(&sb, " AND date <= $%d", len(args))
	}
	sb.WriteString(" GROUP BY type")

	rows := []typeSumRow{}
	if err := q.SelectContext(ctx, &rows, sb.String(), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to sum transactions by type for user %d: %w", userID, err)
	}

	sums := make(map[domain.TransactionType]decimal.Decimal, len(rows))
	var count int64
	for _, row := range rows {
		sums[row.Type] = row.Total
		count += row.Count
	}
	return sums, count, nil
}

// SumByCategory aggregates amounts per category for the user's transactions
// of the given type. Categories without matching transactions are omitted.
func (r *TransactionRepository) SumByCategory(ctx context.Context, q repository.DBExecutor, userID int64, txType domain.TransactionType) ([]domain.CategoryTotal, error) {
	query := `SELECT category, SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1 AND type = $2
		GROUP BY category
		ORDER BY total DESC`

	totals := []domain.CategoryTotal{}
	if err := q.SelectContext(ctx, &totals, query, userID, txType); err != nil {
		return nil, fmt.Errorf("failed to sum transactions by category for user %d: %w", userID, err)
	}
	return totals, nil
}
