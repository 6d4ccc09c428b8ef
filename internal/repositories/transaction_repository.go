package repositories

import (
	"context"
	"fmt"

	"backoffice/internal/models"
	"backoffice/internal/store"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	store *store.Store[models.Transaction]
}

// NewTransactionRepository creates a new transaction repository on the transactions collection
func NewTransactionRepository(engine *store.Engine) TransactionRepositoryInterface {
	return &transactionRepository{
		store: store.New[models.Transaction](engine, store.Transactions),
	}
}

func (r *transactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	transactions, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Create appends a transaction
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if transaction.ID == "" {
		return ErrMissingID
	}
	if err := r.store.Add(ctx, *transaction); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	transaction, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrTransactionNotFound, id)
	}
	return &transaction, nil
}

// GetByAccountID retrieves the transactions posted against an account
func (r *transactionRepository) GetByAccountID(ctx context.Context, accountID string) ([]models.Transaction, error) {
	transactions, err := r.store.Find(ctx, func(t models.Transaction) bool {
		return t.AccountID == accountID
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for account: %w", err)
	}
	return transactions, nil
}

// GetByCustomerID retrieves the transactions tagged with a customer
func (r *transactionRepository) GetByCustomerID(ctx context.Context, customerID string) ([]models.Transaction, error) {
	transactions, err := r.store.Find(ctx, func(t models.Transaction) bool {
		return t.CustomerID == customerID
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for customer: %w", err)
	}
	return transactions, nil
}

// Update replaces the stored transaction that has the same ID
func (r *transactionRepository) Update(ctx context.Context, transaction *models.Transaction) error {
	if err := r.store.Update(ctx, transaction.ID, *transaction); err != nil {
		return notFound(err, ErrTransactionNotFound, transaction.ID)
	}
	return nil
}

// Modify applies fn to the stored transaction in a single read-modify-write
func (r *transactionRepository) Modify(ctx context.Context, id string, fn func(*models.Transaction) error) (*models.Transaction, error) {
	transaction, err := r.store.Modify(ctx, id, fn)
	if err != nil {
		return nil, notFound(err, ErrTransactionNotFound, id)
	}
	return &transaction, nil
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return notFound(err, ErrTransactionNotFound, id)
	}
	return nil
}

func (r *transactionRepository) ReplaceAll(ctx context.Context, transactions []models.Transaction) error {
	if err := r.store.ReplaceAll(ctx, transactions); err != nil {
		return fmt.Errorf("failed to replace transactions: %w", err)
	}
	return nil
}
