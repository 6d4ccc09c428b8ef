package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Store    StoreConfig
	Seed     SeedConfig
}

type AppConfig struct {
	Environment string
	LogLevel    string
	LogFormat   string
}

type DatabaseConfig struct {
	Driver          string
	SQLitePath      string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
	AutoMigrate     bool
}

// StoreConfig tunes the collection store.
type StoreConfig struct {
	// MaxRetries bounds how many times a read-modify-write is replayed
	// after losing a version race to another writer.
	MaxRetries int
}

type SeedConfig struct {
	Customers           int
	AccountsPerCustomer int
	TransactionsPerAcct int
	// RandomSeed makes demo data reproducible; 0 seeds from the clock.
	RandomSeed int
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFormat:   getEnv("LOG_FORMAT", "text"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "backoffice.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "backoffice"),
			Password:        getEnv("DB_PASSWORD", "backoffice"),
			Name:            getEnv("DB_NAME", "backoffice"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			LogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", true),
		},
		Store: StoreConfig{
			MaxRetries: getIntEnv("STORE_MAX_RETRIES", 5),
		},
		Seed: SeedConfig{
			Customers:           getIntEnv("SEED_CUSTOMERS", 10),
			AccountsPerCustomer: getIntEnv("SEED_ACCOUNTS_PER_CUSTOMER", 2),
			TransactionsPerAcct: getIntEnv("SEED_TRANSACTIONS_PER_ACCOUNT", 5),
			RandomSeed:          getIntEnv("SEED_RANDOM_SEED", 0),
		},
	}
}

// Validate reports configuration that cannot produce a working store.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return errors.New("DB_SQLITE_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return errors.New("DB_HOST and DB_NAME are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Store.MaxRetries < 1 {
		return errors.New("STORE_MAX_RETRIES must be at least 1")
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.App.Environment == "testing"
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *AppConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger from the app section.
func (c *AppConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.ToLower(c.LogFormat) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
