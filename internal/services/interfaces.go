package services

import (
	"context"
	"time"

	"backoffice/internal/models"

	"github.com/shopspring/decimal"
)

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	GenerateAccountNumber() string
	GenerateUniqueAccountNumber(ctx context.Context) (string, error)
	CreateAccount(ctx context.Context, customerID, accountType string, initialBalance decimal.Decimal) (*models.Account, error)
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	GetAllAccounts(ctx context.Context, filters models.AccountFilters) ([]models.Account, error)
	UpdateAccount(ctx context.Context, id string, account *models.Account) error
	DeleteAccount(ctx context.Context, id string) error
	CloseAccount(ctx context.Context, id string) (*models.Account, error)
	GetCustomerAccounts(ctx context.Context, customerID string) ([]models.Account, error)
	UpdateAccountBalance(ctx context.Context, accountID string, amount decimal.Decimal, isCredit bool) (*models.Account, error)
	GetAccountStats(ctx context.Context) (*models.AccountStats, error)
}

// CustomerServiceInterface defines customer-related business operations
type CustomerServiceInterface interface {
	CreateCustomer(ctx context.Context, input models.CustomerInput) (*models.Customer, error)
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
	GetCustomerOverview(ctx context.Context, id string) (*models.CustomerOverview, error)
}

// TransactionServiceInterface defines transaction-related business operations
type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, input models.TransactionInput) (*models.Transaction, error)
	PostTransaction(ctx context.Context, input models.TransactionInput) (*models.Transaction, *models.Account, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error)
	GetAccountTransactions(ctx context.Context, accountID string) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, transaction *models.Transaction) error
	UpdateTransactionStatus(ctx context.Context, id, status string) (*models.Transaction, error)
	CancelTransaction(ctx context.Context, id string) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	GetTransactionStats(ctx context.Context) (*models.TransactionStats, error)
}

// LoanServiceInterface defines loan-related business operations
type LoanServiceInterface interface {
	CreateLoanApplication(ctx context.Context, input models.LoanInput) (*models.Loan, error)
	GetLoan(ctx context.Context, id string) (*models.Loan, error)
	ListLoans(ctx context.Context) ([]models.Loan, error)
	UpdateLoan(ctx context.Context, id string, loan *models.Loan) error
	ApproveLoan(ctx context.Context, id string) (*models.Loan, error)
	ApplyPayment(ctx context.Context, id string, amount decimal.Decimal) (*models.Loan, error)
	DeleteLoan(ctx context.Context, id string) error
	GetLoanStats(ctx context.Context) (*models.LoanStats, error)
}

// DashboardServiceInterface aggregates statistics across every collection
type DashboardServiceInterface interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// SeederInterface fills and clears the collections with demo data
type SeederInterface interface {
	SeedDemoData(ctx context.Context, customers, accountsPerCustomer, transactionsPerAccount int) (*SeedSummary, error)
	ResetAll(ctx context.Context) error
}

// EventLoggerInterface records structured domain events
type EventLoggerInterface interface {
	LogCustomerCreated(ctx context.Context, customerID string)
	LogCustomerUpdated(ctx context.Context, customerID string)
	LogCustomerDeleted(ctx context.Context, customerID string)
	LogAccountCreated(ctx context.Context, accountID, customerID, accountType string)
	LogAccountClosed(ctx context.Context, accountID string)
	LogAccountDeleted(ctx context.Context, accountID string)
	LogBalanceUpdate(ctx context.Context, accountID, oldBalance, newBalance string, isCredit bool)
	LogTransactionCreated(ctx context.Context, transactionID, accountID, transactionType, amount string)
	LogTransactionStatusChange(ctx context.Context, transactionID, oldStatus, newStatus string)
	LogLoanApplication(ctx context.Context, loanID, customerID, amount string)
	LogLoanApproved(ctx context.Context, loanID string)
	LogLoanPayment(ctx context.Context, loanID, amount, remaining string, completed bool)
	LogDemoDataSeeded(ctx context.Context, summary *SeedSummary, durationMs int64)
	LogCollectionsReset(ctx context.Context)
}

// MetricsRecorderInterface provides metrics recording capabilities
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
