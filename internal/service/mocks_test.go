// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
	"finance-tracker/pkg/db"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController that also
// satisfies repository.DBExecutor by embedding MockDBExecutor, mirroring how
// *sqlx.Tx plays both roles.
type MockTxController struct {
	mock.Mock
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	args := m.Called(ctx, q, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, q repository.DBExecutor, id int64) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	args := m.Called(ctx, q, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, q, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, q repository.DBExecutor, userID, id int64) (*domain.Transaction, error) {
	args := m.Called(ctx, q, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	args := m.Called(ctx, q, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, q repository.DBExecutor, userID, id int64) error {
	args := m.Called(ctx, q, userID, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) SumByType(ctx context.Context, q repository.DBExecutor, userID int64, startDate, endDate *domain.Date) (map[domain.TransactionType]decimal.Decimal, int64, error) {
	args := m.Called(ctx, q, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(map[domain.TransactionType]decimal.Decimal), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) SumByCategory(ctx context.Context, q repository.DBExecutor, userID int64, txType domain.TransactionType) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, q, userID, txType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

// txFuncs wires a MockTxController into the injected transaction control
// functions, mirroring the production db.BeginTx/CommitTx/RollbackTx.
func txFuncs(tx *MockTxController) (db.BeginTxFunc, db.CommitTxFunc, db.RollbackTxFunc) {
	begin := func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
		return tx, nil
	}
	commit := func(controller db.TxController) error {
		return tx.Commit()
	}
	rollback := func(controller db.TxController) {
		_ = tx.Rollback()
	}
	return begin, commit, rollback
}
