package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration
type Config struct {
	Environment string

	// AWS configuration
	AWSRegion string
	AccountID string

	// DynamoDB tables
	BooksTable     string
	UserTable      string
	OwnerIndexName string // GSI on the books table keyed by owner uuid

	// Cognito
	UserPoolID string
	ClientID   string
	AuthFlow   string

	// SNS
	BookCreatedTopic string

	// Logging and features
	LogLevel      string
	EnableTracing bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		AWSRegion:   getEnv("AWS_REGION", getEnv("REGION", "us-east-2")),
		AccountID:   getEnv("ACCOUNT_ID", ""),

		BooksTable:     getEnv("BOOKS_TABLE", "books"),
		UserTable:      getEnv("USER_TABLE", "user"),
		OwnerIndexName: getEnv("OWNER_INDEX_NAME", "userUuid-index"),

		UserPoolID: getEnv("USER_POOL_ID", ""),
		ClientID:   getEnv("CLIENT_ID", ""),
		AuthFlow:   getEnv("AUTH_FLOW", "ADMIN_USER_PASSWORD_AUTH"),

		BookCreatedTopic: getEnv("BOOK_CREATED_TOPIC", "BookCreated"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.AccountID == "" {
			return fmt.Errorf("ACCOUNT_ID is required in production")
		}
		if c.BooksTable == "" {
			return fmt.Errorf("BOOKS_TABLE is required")
		}
		if c.UserTable == "" {
			return fmt.Errorf("USER_TABLE is required")
		}
	}

	return nil
}

// ValidateIdentity checks the configuration the login handler needs. The
// pool and client ids are only provisioned for that function, so the other
// handlers skip this check.
func (c *Config) ValidateIdentity() error {
	if c.UserPoolID == "" {
		return fmt.Errorf("USER_POOL_ID is required")
	}
	if c.ClientID == "" {
		return fmt.Errorf("CLIENT_ID is required")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
