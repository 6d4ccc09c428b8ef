package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"backoffice/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

const migrationsDir = "migrations"

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies the embedded SQL migrations
type MigrationRunner struct {
	db         *sql.DB
	driver     string
	migrations fs.FS
	logger     *slog.Logger
}

// NewMigrationRunner creates a new migration runner for the given driver
func NewMigrationRunner(db *sql.DB, driver string, logger *slog.Logger) *MigrationRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &MigrationRunner{
		db:         db,
		driver:     driver,
		migrations: embeddedMigrations,
		logger:     logger,
	}
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	mr.logger.Info("waiting for database to be ready")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.PingContext(ctx)
		if err == nil {
			mr.logger.Info("database is ready")
			return nil
		}

		mr.logger.Warn("database not ready",
			slog.Int("attempt", i+1),
			slog.Int("max_attempts", maxRetries),
			slog.String("error", err.Error()),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	source, err := iofs.New(mr.migrations, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	var driver migratedb.Driver
	switch mr.driver {
	case config.DriverPostgres:
		driver, err = migratepg.WithInstance(mr.db, &migratepg.Config{})
	case config.DriverSQLite:
		driver, err = sqlite3.WithInstance(mr.db, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", mr.driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s migration driver: %w", mr.driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, mr.driver, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.logger.Warn("database is in dirty state, forcing version", slog.Uint64("version", uint64(version)))
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	mr.logger.Info("running migrations",
		slog.String("driver", mr.driver),
		slog.Uint64("current_version", uint64(version)),
	)

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mr.logger.Info("no new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.logger.Info("applied migrations", slog.Uint64("version", uint64(newVersion)))
	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled waits for the database and applies migrations when enabled
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB, cfg *config.DatabaseConfig, logger *slog.Logger) error {
	runner := NewMigrationRunner(db, cfg.Driver, logger)
	if !cfg.AutoMigrate {
		runner.logger.Info("auto-migration disabled")
		return nil
	}

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		runner.logger.Warn("failed to get migration status", slog.String("error", err.Error()))
	} else {
		runner.logger.Info("migration status", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	}

	return nil
}
