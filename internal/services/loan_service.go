package services

import (
	"context"
	"log/slog"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/shopspring/decimal"
)

// Loan lifecycle events reported under MetricLoanEvents
const (
	loanEventApplication = "application"
	loanEventApproved    = "approved"
	loanEventPayment     = "payment"
	loanEventCompleted   = "completed"
)

// loanService implements LoanServiceInterface
type loanService struct {
	loanRepo     repositories.LoanRepositoryInterface
	accountRepo  repositories.AccountRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	events       EventLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
	now          func() time.Time
}

func NewLoanService(
	loanRepo repositories.LoanRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	events EventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LoanServiceInterface {
	return &loanService{
		loanRepo:     loanRepo,
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		events:       events,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateLoanApplication files a pending loan. The account number, customer id
// and customer name are filled in from the referenced records when missing.
func (s *loanService) CreateLoanApplication(ctx context.Context, input models.LoanInput) (*models.Loan, error) {
	if input.AccountID != "" {
		account, err := s.accountRepo.GetByID(ctx, input.AccountID)
		if err != nil {
			return nil, err
		}
		if input.AccountNumber == "" {
			input.AccountNumber = account.AccountNumber
		}
		if input.CustomerID == "" {
			input.CustomerID = account.CustomerID
		}
	}
	if input.CustomerID != "" && input.CustomerName == "" {
		customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
		if err != nil {
			return nil, err
		}
		input.CustomerName = customer.Name
	}

	loan, err := models.NewLoan(input, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	s.events.LogLoanApplication(ctx, loan.ID, loan.CustomerID, loan.Amount.StringFixed(2))
	s.metrics.IncrementCounter(MetricLoanEvents, map[string]string{"event": loanEventApplication})
	return loan, nil
}

func (s *loanService) GetLoan(ctx context.Context, id string) (*models.Loan, error) {
	return s.loanRepo.GetByID(ctx, id)
}

func (s *loanService) ListLoans(ctx context.Context) ([]models.Loan, error) {
	return s.loanRepo.List(ctx)
}

// UpdateLoan replaces the whole stored record
func (s *loanService) UpdateLoan(ctx context.Context, id string, loan *models.Loan) error {
	if loan.ID != id {
		return ErrIDMismatch
	}
	if err := loan.Validate(); err != nil {
		return err
	}
	return s.loanRepo.Update(ctx, loan)
}

func (s *loanService) ApproveLoan(ctx context.Context, id string) (*models.Loan, error) {
	loan, err := s.loanRepo.Modify(ctx, id, func(l *models.Loan) error {
		return l.Approve()
	})
	if err != nil {
		return nil, err
	}

	s.events.LogLoanApproved(ctx, id)
	s.metrics.IncrementCounter(MetricLoanEvents, map[string]string{"event": loanEventApproved})
	return loan, nil
}

// ApplyPayment records a repayment on an active loan
func (s *loanService) ApplyPayment(ctx context.Context, id string, amount decimal.Decimal) (*models.Loan, error) {
	loan, err := s.loanRepo.Modify(ctx, id, func(l *models.Loan) error {
		return l.ApplyPayment(amount)
	})
	if err != nil {
		return nil, err
	}

	completed := loan.Status == models.LoanStatusCompleted
	s.events.LogLoanPayment(ctx, id, amount.StringFixed(2), loan.RemainingBalance().StringFixed(2), completed)
	s.metrics.IncrementCounter(MetricLoanEvents, map[string]string{"event": loanEventPayment})
	if completed {
		s.metrics.IncrementCounter(MetricLoanEvents, map[string]string{"event": loanEventCompleted})
	}
	return loan, nil
}

func (s *loanService) DeleteLoan(ctx context.Context, id string) error {
	return s.loanRepo.Delete(ctx, id)
}

// GetLoanStats summarises the loan portfolio. Principal and amount paid only
// count active loans.
func (s *loanService) GetLoanStats(ctx context.Context) (*models.LoanStats, error) {
	loans, err := s.loanRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := computeLoanStats(loans)
	return &stats, nil
}

func computeLoanStats(loans []models.Loan) models.LoanStats {
	stats := models.LoanStats{
		TotalLoans:        len(loans),
		ActivePrincipal:   decimal.Zero,
		ActiveAmountPaid:  decimal.Zero,
		ActiveOutstanding: decimal.Zero,
	}
	for _, l := range loans {
		switch l.Status {
		case models.LoanStatusActive:
			stats.ActiveCount++
			stats.ActivePrincipal = stats.ActivePrincipal.Add(l.Amount)
			stats.ActiveAmountPaid = stats.ActiveAmountPaid.Add(l.AmountPaid)
			stats.ActiveOutstanding = stats.ActiveOutstanding.Add(l.RemainingBalance())
		case models.LoanStatusPending:
			stats.PendingCount++
		case models.LoanStatusCompleted:
			stats.CompletedCount++
		}
	}
	return stats
}
