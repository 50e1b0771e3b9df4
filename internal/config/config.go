// Package config loads and validates the process configuration from the
// environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Backend selection
	DataBackend  string
	SQLiteDBPath string
	DataDir      string

	// AMQP
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets mirror (worker)
	GoogleSpreadsheetID string
	GoogleSheetName     string

	// Insight gateway
	GeminiAPIKey      string
	GeminiModel       string
	InsightSampleSize int
	InsightTimeout    time.Duration

	// Display-choice knobs. The truncation and window asymmetry between
	// expense and income views is a product decision, so it stays
	// configurable rather than hard-coded.
	ExpenseTopCategories int
	ExpenseWindowDays    int
	IncomeWindowDays     int
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		DataBackend:  getEnv("DATA_BACKEND", "memory"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/fintrack.db"),
		DataDir:      getEnv("DATA_DIR", "./data"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "fintrack"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "sync_transactions"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", "Transactions"),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", ""),
		InsightSampleSize: getEnvInt("INSIGHT_SAMPLE_SIZE", 50),
		InsightTimeout:    getEnvDuration("INSIGHT_TIMEOUT", 30*time.Second),

		ExpenseTopCategories: getEnvInt("EXPENSE_TOP_CATEGORIES", 6),
		ExpenseWindowDays:    getEnvInt("EXPENSE_WINDOW_DAYS", 30),
		IncomeWindowDays:     getEnvInt("INCOME_WINDOW_DAYS", 60),
	}
}

// Validate checks the configuration and returns a combined error listing
// everything wrong with it.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "memory", "sqlite":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [memory sqlite]", c.DataBackend))
	}

	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errs = append(errs, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.InsightSampleSize < 1 {
		errs = append(errs, fmt.Sprintf("invalid insight sample size %d: must be at least 1", c.InsightSampleSize))
	}
	if c.InsightTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid insight timeout %v: must be at least 1 second", c.InsightTimeout))
	}

	if c.ExpenseTopCategories < 0 {
		errs = append(errs, fmt.Sprintf("invalid expense top categories %d: must not be negative", c.ExpenseTopCategories))
	}
	if c.ExpenseWindowDays < 1 {
		errs = append(errs, fmt.Sprintf("invalid expense window %d: must be at least 1 day", c.ExpenseWindowDays))
	}
	if c.IncomeWindowDays < 1 {
		errs = append(errs, fmt.Sprintf("invalid income window %d: must be at least 1 day", c.IncomeWindowDays))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
