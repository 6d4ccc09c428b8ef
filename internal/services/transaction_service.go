package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/shopspring/decimal"
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	accountService  AccountServiceInterface
	events          EventLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	accountService AccountServiceInterface,
	events EventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		accountService:  accountService,
		events:          events,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateTransaction records a transaction. Account balances are not touched.
func (s *transactionService) CreateTransaction(ctx context.Context, input models.TransactionInput) (*models.Transaction, error) {
	transaction, err := models.NewTransaction(input, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	s.events.LogTransactionCreated(ctx, transaction.ID, transaction.AccountID, transaction.Type, transaction.Amount.StringFixed(2))
	s.metrics.IncrementCounter(MetricTransactionsCreated, map[string]string{
		"type":   transaction.Type,
		"status": transaction.Status,
	})
	return transaction, nil
}

// PostTransaction records a transaction against an existing account and, when
// the transaction is completed, applies it to the account balance. Deposits
// and refunds credit the account; every other type debits it.
func (s *transactionService) PostTransaction(ctx context.Context, input models.TransactionInput) (*models.Transaction, *models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, nil, err
	}
	if input.AccountNumber == "" {
		input.AccountNumber = account.AccountNumber
	}
	if input.CustomerID == "" {
		input.CustomerID = account.CustomerID
	}

	transaction, err := s.CreateTransaction(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	if !transaction.IsCompleted() {
		return transaction, account, nil
	}

	updated, err := s.accountService.UpdateAccountBalance(ctx, account.ID, transaction.Amount, transaction.IsCredit())
	if err != nil {
		s.logger.ErrorContext(ctx, "transaction recorded but balance update failed",
			slog.String("transaction_id", transaction.ID),
			slog.String("account_id", account.ID),
			slog.String("error", err.Error()),
		)
		return transaction, nil, fmt.Errorf("failed to apply transaction %s to balance: %w", transaction.ID, err)
	}
	return transaction, updated, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}

// ListTransactions returns the matching transactions newest first, truncated
// to filters.Limit when it is positive.
func (s *transactionService) ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if filters.Matches(t) {
			matched = append(matched, t)
		}
	}
	sortNewestFirst(matched)

	if filters.Limit > 0 && len(matched) > filters.Limit {
		matched = matched[:filters.Limit]
	}
	return matched, nil
}

// GetAccountTransactions returns an account's transactions in storage order
func (s *transactionService) GetAccountTransactions(ctx context.Context, accountID string) ([]models.Transaction, error) {
	return s.transactionRepo.GetByAccountID(ctx, accountID)
}

// UpdateTransaction replaces the whole stored record
func (s *transactionService) UpdateTransaction(ctx context.Context, id string, transaction *models.Transaction) error {
	if transaction.ID != id {
		return ErrIDMismatch
	}
	if err := transaction.Validate(); err != nil {
		return err
	}
	return s.transactionRepo.Update(ctx, transaction)
}

func (s *transactionService) UpdateTransactionStatus(ctx context.Context, id, status string) (*models.Transaction, error) {
	var oldStatus string
	transaction, err := s.transactionRepo.Modify(ctx, id, func(t *models.Transaction) error {
		oldStatus = t.Status
		return t.SetStatus(status)
	})
	if err != nil {
		return nil, err
	}
	s.events.LogTransactionStatusChange(ctx, id, oldStatus, transaction.Status)
	return transaction, nil
}

// CancelTransaction cancels a pending or completed transaction. A completed
// transaction that was posted keeps its effect on the balance.
func (s *transactionService) CancelTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var oldStatus string
	transaction, err := s.transactionRepo.Modify(ctx, id, func(t *models.Transaction) error {
		oldStatus = t.Status
		return t.Cancel()
	})
	if err != nil {
		return nil, err
	}
	s.events.LogTransactionStatusChange(ctx, id, oldStatus, transaction.Status)
	return transaction, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	return s.transactionRepo.Delete(ctx, id)
}

func (s *transactionService) GetTransactionStats(ctx context.Context) (*models.TransactionStats, error) {
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := computeTransactionStats(transactions)
	return &stats, nil
}

func computeTransactionStats(transactions []models.Transaction) models.TransactionStats {
	stats := models.TransactionStats{
		TotalTransactions: len(transactions),
		CompletedVolume:   decimal.Zero,
		TypeCount:         make(map[string]int),
		StatusCount:       make(map[string]int),
	}
	for _, t := range transactions {
		if t.IsCompleted() {
			stats.CompletedVolume = stats.CompletedVolume.Add(t.Amount)
		}
		stats.TypeCount[models.BucketKey(t.Type)]++
		stats.StatusCount[models.BucketKey(t.Status)]++
	}
	return stats
}

func sortNewestFirst(transactions []models.Transaction) {
	slices.SortStableFunc(transactions, func(a, b models.Transaction) int {
		if a.Date != b.Date {
			if a.Date > b.Date {
				return -1
			}
			return 1
		}
		switch {
		case a.Time > b.Time:
			return -1
		case a.Time < b.Time:
			return 1
		default:
			return 0
		}
	})
}
