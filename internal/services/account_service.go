package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/shopspring/decimal"
)

// maxAccountNumberAttempts bounds GenerateUniqueAccountNumber
const maxAccountNumberAttempts = 10

var (
	ErrAccountNumberExhausted = errors.New("could not allocate a unique account number")
	ErrIDMismatch             = errors.New("record id does not match the requested id")
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo  repositories.AccountRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	events       EventLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
	now          func() time.Time
}

// NewAccountService creates an account service
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	events EventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		events:       events,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// GenerateAccountNumber returns a random account number without checking for collisions
func (s *accountService) GenerateAccountNumber() string {
	return models.GenerateAccountNumber()
}

// GenerateUniqueAccountNumber draws account numbers until one is not in use
func (s *accountService) GenerateUniqueAccountNumber(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxAccountNumberAttempts; attempt++ {
		number := models.GenerateAccountNumber()
		exists, err := s.accountRepo.AccountNumberExists(ctx, number)
		if err != nil {
			return "", fmt.Errorf("failed to check account number: %w", err)
		}
		if !exists {
			return number, nil
		}
		s.logger.DebugContext(ctx, "account number collision", slog.Int("attempt", attempt))
	}
	return "", ErrAccountNumberExhausted
}

// CreateAccount opens an active account for an existing customer
func (s *accountService) CreateAccount(ctx context.Context, customerID, accountType string, initialBalance decimal.Decimal) (*models.Account, error) {
	if initialBalance.IsNegative() {
		return nil, models.ErrInvalidAmount
	}
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	number, err := s.GenerateUniqueAccountNumber(ctx)
	if err != nil {
		return nil, err
	}

	account, err := models.NewAccount(customerID, accountType, number, initialBalance, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.events.LogAccountCreated(ctx, account.ID, customerID, accountType)
	s.metrics.IncrementCounter(MetricAccountsCreated, map[string]string{"type": accountType})
	return account, nil
}

func (s *accountService) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

// GetAllAccounts lists accounts in storage order, narrowed by filters
func (s *accountService) GetAllAccounts(ctx context.Context, filters models.AccountFilters) ([]models.Account, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if filters.Matches(a) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// UpdateAccount replaces the whole stored record
func (s *accountService) UpdateAccount(ctx context.Context, id string, account *models.Account) error {
	if account.ID != id {
		return ErrIDMismatch
	}
	if err := account.Validate(); err != nil {
		return err
	}
	return s.accountRepo.Update(ctx, account)
}

func (s *accountService) DeleteAccount(ctx context.Context, id string) error {
	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.LogAccountDeleted(ctx, id)
	return nil
}

// CloseAccount marks the account closed. Its balance is left untouched.
func (s *accountService) CloseAccount(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.accountRepo.Modify(ctx, id, func(a *models.Account) error {
		return a.Close()
	})
	if err != nil {
		return nil, err
	}
	s.events.LogAccountClosed(ctx, id)
	return account, nil
}

// GetCustomerAccounts returns the customer's accounts in storage order
func (s *accountService) GetCustomerAccounts(ctx context.Context, customerID string) ([]models.Account, error) {
	return s.accountRepo.GetByCustomerID(ctx, customerID)
}

// UpdateAccountBalance credits or debits amount and stamps today's date as the
// last activity. Balances may go negative.
func (s *accountService) UpdateAccountBalance(ctx context.Context, accountID string, amount decimal.Decimal, isCredit bool) (*models.Account, error) {
	var oldBalance decimal.Decimal
	today := s.now()

	account, err := s.accountRepo.Modify(ctx, accountID, func(a *models.Account) error {
		oldBalance = a.Balance
		a.ApplyBalanceChange(amount, isCredit, today)
		return nil
	})
	if err != nil {
		return nil, err
	}

	direction := "debit"
	if isCredit {
		direction = "credit"
	}
	s.metrics.IncrementCounter(MetricBalanceUpdates, map[string]string{"direction": direction})
	s.events.LogBalanceUpdate(ctx, accountID, oldBalance.StringFixed(2), account.Balance.StringFixed(2), isCredit)
	return account, nil
}

// GetAccountStats scans the whole collection on every call
func (s *accountService) GetAccountStats(ctx context.Context) (*models.AccountStats, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := computeAccountStats(accounts)
	return &stats, nil
}

func computeAccountStats(accounts []models.Account) models.AccountStats {
	stats := models.AccountStats{
		TotalAccounts: len(accounts),
		TotalBalance:  decimal.Zero,
		TypeCount:     make(map[string]int),
		StatusCount:   make(map[string]int),
	}
	for _, a := range accounts {
		stats.TotalBalance = stats.TotalBalance.Add(a.Balance)
		stats.TypeCount[models.BucketKey(a.Type)]++
		stats.StatusCount[models.BucketKey(a.Status)]++
	}
	return stats
}
