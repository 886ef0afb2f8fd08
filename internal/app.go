// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "finance-tracker/internal/api"
	"finance-tracker/internal/api/handler"
	"finance-tracker/internal/auth"
	"finance-tracker/internal/config"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/repository/postgres"
	"finance-tracker/internal/service"
	"finance-tracker/internal/storage"
	"finance-tracker/internal/util"
	"finance-tracker/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB
	Tokens *auth.TokenManager

	// Repositories
	UserRepository        repository.UserRepository
	TransactionRepository repository.TransactionRepository

	// Services
	AuthService        service.AuthService
	TransactionService service.TransactionService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database and apply migrations
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if err := storage.RunMigrations(app.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database migrations applied.")

	// 4. Initialize token manager
	app.Tokens = auth.NewTokenManager(app.Config.JWTSecret, app.Config.TokenTTL)

	// 5. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 6. Initialize Services
	// Pass the concrete db.BeginTx, db.CommitTx, db.RollbackTx functions from pkg/db
	app.AuthService = service.NewAuthService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.UserRepository,
		app.Tokens,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.TransactionService = service.NewTransactionService(
		app.DB,
		app.DB,
		app.TransactionRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	transactionHandler := handler.NewTransactionHandler(app.TransactionService, app.Logger)
	statsHandler := handler.NewStatsHandler(app.TransactionService, app.Logger)
	healthHandler := handler.NewHealthHandler(app.DB, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, transactionHandler, statsHandler, healthHandler, app.Tokens, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
