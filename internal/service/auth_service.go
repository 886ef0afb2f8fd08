// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/util"
	"finance-tracker/pkg/db"
)

// AuthService defines the interface for registration, login and profile logic.
type AuthService interface {
	// Register creates a user with a hashed password and returns it together
	// with a freshly issued session token.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	// Login verifies credentials and issues a fresh session token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// Profile returns the user bound to the authenticated id.
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	tokens     *auth.TokenManager
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	tokens *auth.TokenManager,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) AuthService {
	return &authService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		tokens:     tokens,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// MinPasswordLength is the minimum accepted password length on registration.
const MinPasswordLength = 6

// Register validates the input, persists a new user with a bcrypt-hashed
// password and returns the user plus an issued session token.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, "", util.Validationf("Name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, "", util.Validationf("Email is required")
	}
	if password == "" {
		return nil, "", util.Validationf("Password is required")
	}
	if !strings.Contains(email, "@") {
		return nil, "", util.Validationf("Invalid email format")
	}
	if len(password) < MinPasswordLength {
		return nil, "", util.Validationf("Password must be at least %d characters", MinPasswordLength)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, "", fmt.Errorf("register: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, "", fmt.Errorf("register: transaction controller does not implement DBExecutor")
	}

	_, err = s.userRepo.GetUserByEmail(ctx, txExecutor, email)
	if err == nil {
		return nil, "", util.ErrDuplicateEmail
	}
	if !errors.Is(err, util.ErrNotFound) {
		return nil, "", fmt.Errorf("register: failed to check existing user: %w", err)
	}

	user := domain.NewUser(name, email)
	user.PasswordHash = hash
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		if errors.Is(err, util.ErrDuplicateEmail) {
			return nil, "", util.ErrDuplicateEmail
		}
		return nil, "", fmt.Errorf("register: failed to create user: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, "", fmt.Errorf("register: failed to commit transaction: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("register: failed to issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies the credentials and issues a fresh session token.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if strings.TrimSpace(email) == "" {
		return nil, "", util.Validationf("Email is required")
	}
	if password == "" {
		return nil, "", util.Validationf("Password is required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			// Identical outcome for unknown email and wrong password, so a
			// caller cannot enumerate registered addresses.
			return nil, "", util.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("login: failed to issue token: %w", err)
	}
	return user, token, nil
}

// Profile returns the current user.
func (s *authService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("profile: failed to get user %d: %w", userID, err)
	}
	return user, nil
}
