package common

import (
	"os"
	"strconv"
	"time"

	"github.com/invoicerd/invoicerd/constants"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Extraction ExtractionConfig
	Export     ExportConfig
	Mail       MailConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// ExtractionConfig holds engine-related configuration
type ExtractionConfig struct {
	DefaultParsingMethod constants.ParsingMethod
	StrictRequiredFields bool
	WorkDir              string
	DocumentTimeout      time.Duration
}

// ExportConfig holds spreadsheet export configuration
type ExportConfig struct {
	CredentialsSource string
	SpreadsheetID     string
	SheetRange        string
}

// MailConfig holds mail collaborator configuration
type MailConfig struct {
	Query    string
	PageSize int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Extraction: ExtractionConfig{
			DefaultParsingMethod: constants.NormalizeParsingMethod(getEnv("DEFAULT_PARSING_METHOD", "hybrid")),
			StrictRequiredFields: getEnvAsBool("STRICT_REQUIRED_FIELDS", false),
			WorkDir:              getEnv("WORK_DIR", "./media"),
			DocumentTimeout:      getEnvAsDuration("DOCUMENT_TIMEOUT", 2*time.Minute),
		},
		Export: ExportConfig{
			CredentialsSource: getEnv("CREDENTIALS_SOURCE", "token.json"),
			SpreadsheetID:     getEnv("SPREADSHEET_ID", ""),
			SheetRange:        getEnv("SHEET_RANGE", "Sheet1!A:C"),
		},
		Mail: MailConfig{
			Query:    getEnv("MAIL_QUERY", "has:attachment invoice"),
			PageSize: getEnvAsInt("MAIL_PAGE_SIZE", 100),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Extraction.WorkDir == "" {
		return NewAppError("CONFIG_ERROR", "WORK_DIR is required", ErrInvalidInput)
	}
	return nil
}
