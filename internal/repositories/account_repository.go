package repositories

import (
	"context"
	"fmt"

	"backoffice/internal/models"
	"backoffice/internal/store"
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	store *store.Store[models.Account]
}

// NewAccountRepository creates a new account repository on the accounts collection
func NewAccountRepository(engine *store.Engine) AccountRepositoryInterface {
	return &accountRepository{
		store: store.New[models.Account](engine, store.Accounts),
	}
}

func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Create appends an account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if account.ID == "" {
		return ErrMissingID
	}
	if err := r.store.Add(ctx, *account); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	account, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrAccountNotFound, id)
	}
	return &account, nil
}

// GetByCustomerID retrieves all accounts owned by a customer, in storage order
func (r *accountRepository) GetByCustomerID(ctx context.Context, customerID string) ([]models.Account, error) {
	accounts, err := r.store.Find(ctx, func(a models.Account) bool {
		return a.CustomerID == customerID
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts for customer: %w", err)
	}
	return accounts, nil
}

// GetByAccountNumber retrieves an account by account number
func (r *accountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	accounts, err := r.store.Find(ctx, func(a models.Account) bool {
		return a.AccountNumber == accountNumber
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get account by number: %w", err)
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: number %s", ErrAccountNotFound, accountNumber)
	}
	return &accounts[0], nil
}

// AccountNumberExists reports whether any account carries accountNumber
func (r *accountRepository) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	_, err := r.GetByAccountNumber(ctx, accountNumber)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, err
}

// Update replaces the stored account that has the same ID
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	if err := r.store.Update(ctx, account.ID, *account); err != nil {
		return notFound(err, ErrAccountNotFound, account.ID)
	}
	return nil
}

// Modify applies fn to the stored account in a single read-modify-write
func (r *accountRepository) Modify(ctx context.Context, id string, fn func(*models.Account) error) (*models.Account, error) {
	account, err := r.store.Modify(ctx, id, fn)
	if err != nil {
		return nil, notFound(err, ErrAccountNotFound, id)
	}
	return &account, nil
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return notFound(err, ErrAccountNotFound, id)
	}
	return nil
}

func (r *accountRepository) ReplaceAll(ctx context.Context, accounts []models.Account) error {
	if err := r.store.ReplaceAll(ctx, accounts); err != nil {
		return fmt.Errorf("failed to replace accounts: %w", err)
	}
	return nil
}
