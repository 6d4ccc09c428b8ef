package repositories

import (
	"context"

	"backoffice/internal/models"
)

// CustomerRepositoryInterface defines the contract for customer repository operations
type CustomerRepositoryInterface interface {
	List(ctx context.Context) ([]models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, customers []models.Customer) error
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	List(ctx context.Context) ([]models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]models.Account, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error)
	AccountNumberExists(ctx context.Context, accountNumber string) (bool, error)
	Update(ctx context.Context, account *models.Account) error
	Modify(ctx context.Context, id string, fn func(*models.Account) error) (*models.Account, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, accounts []models.Account) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	GetByAccountID(ctx context.Context, accountID string) ([]models.Transaction, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	Modify(ctx context.Context, id string, fn func(*models.Transaction) error) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, transactions []models.Transaction) error
}

// LoanRepositoryInterface defines the contract for loan repository operations
type LoanRepositoryInterface interface {
	List(ctx context.Context) ([]models.Loan, error)
	Create(ctx context.Context, loan *models.Loan) error
	GetByID(ctx context.Context, id string) (*models.Loan, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]models.Loan, error)
	GetByStatus(ctx context.Context, status string) ([]models.Loan, error)
	Update(ctx context.Context, loan *models.Loan) error
	Modify(ctx context.Context, id string, fn func(*models.Loan) error) (*models.Loan, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, loans []models.Loan) error
}
