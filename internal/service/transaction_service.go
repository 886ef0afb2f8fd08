// internal/service/transaction_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/util"
	"finance-tracker/pkg/db"
)

// ListQuery carries the raw listing filters as received from the query
// string. Empty fields are not applied.
type ListQuery struct {
	Type      string
	Category  string
	StartDate string
	EndDate   string
}

// CreateInput carries the fields of a transaction creation request. Amount is
// a pointer so a missing field is distinguishable from zero.
type CreateInput struct {
	Type        string
	Category    string
	Amount      *domain.Amount
	Date        string
	Description string
}

// TransactionService defines the interface for transaction business logic.
// Every operation is scoped to the authenticated user id passed explicitly
// by the caller.
type TransactionService interface {
	List(ctx context.Context, userID int64, query ListQuery) ([]domain.Transaction, error)
	Create(ctx context.Context, userID int64, input CreateInput) (*domain.Transaction, error)
	Get(ctx context.Context, userID, transactionID int64) (*domain.Transaction, error)
	// Update applies the supplied fields all-or-nothing: if any field fails
	// validation nothing is committed.
	Update(ctx context.Context, userID, transactionID int64, patch domain.TransactionPatch) (*domain.Transaction, error)
	Delete(ctx context.Context, userID, transactionID int64) error
	Summary(ctx context.Context, userID int64, startDate, endDate string) (*domain.Summary, error)
	// ByCategory sums amounts grouped by category for the given type,
	// defaulting to expense.
	ByCategory(ctx context.Context, userID int64, txType string) (domain.TransactionType, []domain.CategoryTotal, error)
}

// transactionService implements the TransactionService interface.
type transactionService struct {
	dbBeginner      db.DBTxBeginner
	dbExecutor      repository.DBExecutor
	transactionRepo repository.TransactionRepository
	beginTx         db.BeginTxFunc
	commitTx        db.CommitTxFunc
	rollbackTx      db.RollbackTxFunc
}

// NewTransactionService creates a new instance of TransactionService.
func NewTransactionService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	transactionRepo repository.TransactionRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) TransactionService {
	return &transactionService{
		dbBeginner:      dbBeginner,
		dbExecutor:      dbExecutor,
		transactionRepo: transactionRepo,
		beginTx:         beginTx,
		commitTx:        commitTx,
		rollbackTx:      rollbackTx,
	}
}

// parseDateFilter parses an optional "YYYY-MM-DD" query value.
func parseDateFilter(value string) (*domain.Date, error) {
	if value == "" {
		return nil, nil
	}
	date, err := domain.ParseDate(value)
	if err != nil {
		return nil, util.Validationf("Invalid date format. Use YYYY-MM-DD")
	}
	return &date, nil
}

// List returns the user's transactions matching the supplied filters,
// ordered by date descending.
func (s *transactionService) List(ctx context.Context, userID int64, query ListQuery) ([]domain.Transaction, error) {
	startDate, err := parseDateFilter(query.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDateFilter(query.EndDate)
	if err != nil {
		return nil, err
	}

	filter := domain.TransactionFilter{
		Type:      domain.TransactionType(query.Type),
		Category:  query.Category,
		StartDate: startDate,
		EndDate:   endDate,
	}

	transactions, err := s.transactionRepo.ListByUser(ctx, s.dbExecutor, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list: failed to fetch transactions: %w", err)
	}
	return transactions, nil
}

// Create validates the input and persists a new transaction owned by userID.
func (s *transactionService) Create(ctx context.Context, userID int64, input CreateInput) (*domain.Transaction, error) {
	if input.Type == "" {
		return nil, util.Validationf("Transaction type is required")
	}
	if input.Category == "" {
		return nil, util.Validationf("Category is required")
	}
	if input.Amount == nil {
		return nil, util.Validationf("Amount is required")
	}
	if input.Date == "" {
		return nil, util.Validationf("Date is required")
	}

	txType := domain.TransactionType(input.Type)
	if !txType.Valid() {
		return nil, util.Validationf("Invalid transaction type")
	}
	if !input.Amount.IsPositive() {
		return nil, util.Validationf("Amount must be greater than 0")
	}
	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, util.Validationf("Invalid date format. Use YYYY-MM-DD")
	}

	transaction := domain.NewTransaction(userID, txType, input.Category, *input.Amount, date, input.Description)

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create: transaction controller does not implement DBExecutor")
	}

	if err := s.transactionRepo.CreateTransaction(ctx, txExecutor, transaction); err != nil {
		return nil, fmt.Errorf("create: failed to create transaction: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create: failed to commit transaction: %w", err)
	}
	return transaction, nil
}

// Get retrieves a single transaction scoped to the owning user.
func (s *transactionService) Get(ctx context.Context, userID, transactionID int64) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, s.dbExecutor, userID, transactionID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("get: failed to fetch transaction %d: %w", transactionID, err)
	}
	return transaction, nil
}

// applyPatch validates each supplied patch field against the creation rules
// and applies it to the transaction. It fails fast on the first invalid
// field, before anything is persisted.
func applyPatch(transaction *domain.Transaction, patch domain.TransactionPatch) error {
	if patch.Type != nil {
		txType := domain.TransactionType(*patch.Type)
		if !txType.Valid() {
			return util.Validationf("Invalid transaction type")
		}
		transaction.Type = txType
	}
	if patch.Category != nil {
		if *patch.Category == "" {
			return util.Validationf("Category is required")
		}
		transaction.Category = *patch.Category
	}
	if patch.Amount != nil {
		if !patch.Amount.IsPositive() {
			return util.Validationf("Amount must be greater than 0")
		}
		transaction.Amount = *patch.Amount
	}
	if patch.Date != nil {
		date, err := domain.ParseDate(*patch.Date)
		if err != nil {
			return util.Validationf("Invalid date format. Use YYYY-MM-DD")
		}
		transaction.Date = date
	}
	if patch.Description != nil {
		transaction.Description = strings.TrimSpace(*patch.Description)
	}
	return nil
}

// Update applies a partial update to a transaction owned by userID. The whole
// patch is validated and persisted inside one database transaction, so a
// failure on any field leaves the record untouched.
func (s *transactionService) Update(ctx context.Context, userID, transactionID int64, patch domain.TransactionPatch) (*domain.Transaction, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("update: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("update: transaction controller does not implement DBExecutor")
	}

	transaction, err := s.transactionRepo.GetByID(ctx, txExecutor, userID, transactionID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("update: failed to fetch transaction %d: %w", transactionID, err)
	}

	if err := applyPatch(transaction, patch); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, txExecutor, transaction); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("update: failed to update transaction %d: %w", transactionID, err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("update: failed to commit transaction: %w", err)
	}
	return transaction, nil
}

// Delete removes a transaction owned by userID. Repeating the call yields
// util.ErrNotFound.
func (s *transactionService) Delete(ctx context.Context, userID, transactionID int64) error {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return fmt.Errorf("delete: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("delete: transaction controller does not implement DBExecutor")
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, txExecutor, userID, transactionID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrNotFound
		}
		return fmt.Errorf("delete: failed to delete transaction %d: %w", transactionID, err)
	}

	if err := s.commitTx(txController); err != nil {
		return fmt.Errorf("delete: failed to commit transaction: %w", err)
	}
	return nil
}

// Summary aggregates the user's (optionally date-filtered) transactions by
// type and computes the balance.
func (s *transactionService) Summary(ctx context.Context, userID int64, startDate, endDate string) (*domain.Summary, error) {
	start, err := parseDateFilter(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDateFilter(endDate)
	if err != nil {
		return nil, err
	}

	sums, count, err := s.transactionRepo.SumByType(ctx, s.dbExecutor, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("summary: failed to aggregate transactions: %w", err)
	}
	return domain.NewSummary(sums, count), nil
}

// ByCategory sums the user's transactions of the given type per category.
// An empty type defaults to expense, matching the API contract.
func (s *transactionService) ByCategory(ctx context.Context, userID int64, txType string) (domain.TransactionType, []domain.CategoryTotal, error) {
	resolved := domain.TransactionType(txType)
	if txType == "" {
		resolved = domain.TransactionTypeExpense
	}

	totals, err := s.transactionRepo.SumByCategory(ctx, s.dbExecutor, userID, resolved)
	if err != nil {
		return resolved, nil, fmt.Errorf("by category: failed to aggregate transactions: %w", err)
	}
	return resolved, totals, nil
}
