// internal/api/handler/mocks_test.go
package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockTransactionService is a mock implementation of service.TransactionService.
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) List(ctx context.Context, userID int64, query service.ListQuery) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Create(ctx context.Context, userID int64, input service.CreateInput) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Get(ctx context.Context, userID, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Update(ctx context.Context, userID, transactionID int64, patch domain.TransactionPatch) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Delete(ctx context.Context, userID, transactionID int64) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) Summary(ctx context.Context, userID int64, startDate, endDate string) (*domain.Summary, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockTransactionService) ByCategory(ctx context.Context, userID int64, txType string) (domain.TransactionType, []domain.CategoryTotal, error) {
	args := m.Called(ctx, userID, txType)
	if args.Get(1) == nil {
		return args.Get(0).(domain.TransactionType), nil, args.Error(2)
	}
	return args.Get(0).(domain.TransactionType), args.Get(1).([]domain.CategoryTotal), args.Error(2)
}

// MockPinger is a mock implementation of Pinger.
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
