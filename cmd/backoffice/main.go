package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"backoffice/internal/config"
	"backoffice/internal/database"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
	"backoffice/internal/store"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	traceID := uuid.NewString()

	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printUsage(stderr)
		if len(args) == 0 {
			return apperrors.GetExitCode(apperrors.SystemInvalidCommand)
		}
		return 0
	}

	// A missing .env file is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return writeError(stderr, apperrors.New(apperrors.SystemConfigurationError, err), traceID)
	}

	logger := cfg.App.NewLogger()
	slog.SetDefault(logger)

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return writeError(stderr, apperrors.New(apperrors.SystemDatabaseError, err), traceID)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	a := newApp(cfg, db, logger)
	return a.execute(services.WithCorrelationID(ctx, traceID), traceID, args, stdout, stderr)
}

// newApp wires the store, repositories and services over an open database
func newApp(cfg *config.Config, db *database.DB, logger *slog.Logger) *app {
	metrics := services.NewPrometheusMetrics(nil)

	engine := store.NewEngine(store.NewGormBackend(db.DB),
		store.WithLogger(logger),
		store.WithMetrics(metrics),
		store.WithMaxRetries(cfg.Store.MaxRetries),
	)

	customerRepo := repositories.NewCustomerRepository(engine)
	accountRepo := repositories.NewAccountRepository(engine)
	transactionRepo := repositories.NewTransactionRepository(engine)
	loanRepo := repositories.NewLoanRepository(engine)

	events := services.NewEventLogger(logger)

	accountService := services.NewAccountService(accountRepo, customerRepo, events, metrics, logger)
	seeder := services.NewSeeder(customerRepo, accountRepo, transactionRepo, loanRepo,
		engine, events, metrics, uint64(cfg.Seed.RandomSeed))

	return &app{
		customers:    services.NewCustomerService(customerRepo, accountRepo, transactionRepo, loanRepo, events, metrics, logger),
		accounts:     accountService,
		transactions: services.NewTransactionService(transactionRepo, accountRepo, accountService, events, metrics, logger),
		loans:        services.NewLoanService(loanRepo, accountRepo, customerRepo, events, metrics, logger),
		dashboard:    services.NewDashboardService(customerRepo, accountRepo, transactionRepo, loanRepo),
		seeder:       seeder,
		migrate:      migrateFunc(db, logger),
		seedDefaults: cfg.Seed,
		logger:       logger,
	}
}

// MigrationStatus is printed by the migrate command
type MigrationStatus struct {
	Driver  string `json:"driver"`
	Version uint   `json:"version"`
	Dirty   bool   `json:"dirty"`
}

func migrateFunc(db *database.DB, logger *slog.Logger) func(ctx context.Context) (*MigrationStatus, error) {
	return func(ctx context.Context) (*MigrationStatus, error) {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		runner := database.NewMigrationRunner(sqlDB, db.Driver(), logger)
		if err := runner.WaitForDatabase(ctx); err != nil {
			return nil, err
		}
		if err := runner.RunMigrations(); err != nil {
			return nil, err
		}

		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return nil, err
		}
		return &MigrationStatus{Driver: db.Driver(), Version: version, Dirty: dirty}, nil
	}
}
