package services

import (
	"context"
	"log/slog"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/shopspring/decimal"
)

// customerService implements CustomerServiceInterface
type customerService struct {
	customerRepo    repositories.CustomerRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	loanRepo        repositories.LoanRepositoryInterface
	events          EventLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

func NewCustomerService(
	customerRepo repositories.CustomerRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	loanRepo repositories.LoanRepositoryInterface,
	events EventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CustomerServiceInterface {
	return &customerService{
		customerRepo:    customerRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		loanRepo:        loanRepo,
		events:          events,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateCustomer adds an active customer dated today
func (s *customerService) CreateCustomer(ctx context.Context, input models.CustomerInput) (*models.Customer, error) {
	customer, err := models.NewCustomer(input, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.events.LogCustomerCreated(ctx, customer.ID)
	s.metrics.IncrementCounter(MetricCustomersCreated, nil)
	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.customerRepo.List(ctx)
}

// UpdateCustomer replaces the whole stored record
func (s *customerService) UpdateCustomer(ctx context.Context, id string, customer *models.Customer) error {
	if customer.ID != id {
		return ErrIDMismatch
	}
	if err := customer.Validate(); err != nil {
		return err
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return err
	}
	s.events.LogCustomerUpdated(ctx, id)
	return nil
}

// DeleteCustomer removes the customer only. Accounts, transactions and loans
// that reference it are kept.
func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.LogCustomerDeleted(ctx, id)
	s.metrics.IncrementCounter(MetricCustomersDeleted, nil)
	return nil
}

// GetCustomerOverview gathers a customer with the accounts, transactions and
// loans that reference it. A transaction belongs to the customer when it
// carries the customer id or one of the customer's account numbers.
func (s *customerService) GetCustomerOverview(ctx context.Context, id string) (*models.CustomerOverview, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.GetByCustomerID(ctx, id)
	if err != nil {
		return nil, err
	}

	numbers := make(map[string]struct{}, len(accounts))
	overview := &models.CustomerOverview{
		Customer:     *customer,
		Accounts:     accounts,
		TotalBalance: decimal.Zero,
	}
	for _, a := range accounts {
		numbers[a.AccountNumber] = struct{}{}
		overview.TotalBalance = overview.TotalBalance.Add(a.Balance)
		if a.IsActive() {
			overview.ActiveAccountCount++
		}
	}

	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	overview.Transactions = make([]models.Transaction, 0)
	for _, t := range transactions {
		_, owned := numbers[t.AccountNumber]
		if t.CustomerID == id || owned {
			overview.Transactions = append(overview.Transactions, t)
		}
	}

	overview.Loans, err = s.loanRepo.GetByCustomerID(ctx, id)
	if err != nil {
		return nil, err
	}
	return overview, nil
}
