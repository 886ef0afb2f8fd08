// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"finance-tracker/pkg/db" // Import db package for its Config struct
)

// DefaultTokenTTL is the session token validity window: 7 days from issuance.
const DefaultTokenTTL = 7 * 24 * time.Hour

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	DB         db.Config
	JWTSecret  string
	TokenTTL   time.Duration
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		dbPortStr = "5432"
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "postgres"
	}
	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "finance_tracker"
	}
	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbSSLMode == "" {
		dbSSLMode = "disable"
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		jwtSecret = "development-secret-key" // Local development only
	}

	tokenTTL := DefaultTokenTTL
	if ttlStr := os.Getenv("TOKEN_TTL"); ttlStr != "" {
		tokenTTL, err = time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
	}

	return &AppConfig{
		ServerPort: serverPort,
		DB: db.Config{
			URL:      os.Getenv("DATABASE_URL"), // Overrides the discrete fields when set
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
	}, nil
}
