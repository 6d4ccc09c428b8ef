package repositories

import (
	"context"
	"fmt"

	"backoffice/internal/models"
	"backoffice/internal/store"
)

// loanRepository implements LoanRepositoryInterface
type loanRepository struct {
	store *store.Store[models.Loan]
}

// NewLoanRepository creates a new loan repository on the loans collection
func NewLoanRepository(engine *store.Engine) LoanRepositoryInterface {
	return &loanRepository{
		store: store.New[models.Loan](engine, store.Loans),
	}
}

func (r *loanRepository) List(ctx context.Context) ([]models.Loan, error) {
	loans, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}

// Create appends a loan
func (r *loanRepository) Create(ctx context.Context, loan *models.Loan) error {
	if loan.ID == "" {
		return ErrMissingID
	}
	if err := r.store.Add(ctx, *loan); err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

// GetByID retrieves a loan by ID
func (r *loanRepository) GetByID(ctx context.Context, id string) (*models.Loan, error) {
	loan, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrLoanNotFound, id)
	}
	return &loan, nil
}

func (r *loanRepository) GetByCustomerID(ctx context.Context, customerID string) ([]models.Loan, error) {
	loans, err := r.store.Find(ctx, func(l models.Loan) bool {
		return l.CustomerID == customerID
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get loans for customer: %w", err)
	}
	return loans, nil
}

func (r *loanRepository) GetByStatus(ctx context.Context, status string) ([]models.Loan, error) {
	loans, err := r.store.Find(ctx, func(l models.Loan) bool {
		return l.Status == status
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get loans by status: %w", err)
	}
	return loans, nil
}

// Update replaces the stored loan that has the same ID
func (r *loanRepository) Update(ctx context.Context, loan *models.Loan) error {
	if err := r.store.Update(ctx, loan.ID, *loan); err != nil {
		return notFound(err, ErrLoanNotFound, loan.ID)
	}
	return nil
}

// Modify applies fn to the stored loan in a single read-modify-write
func (r *loanRepository) Modify(ctx context.Context, id string, fn func(*models.Loan) error) (*models.Loan, error) {
	loan, err := r.store.Modify(ctx, id, fn)
	if err != nil {
		return nil, notFound(err, ErrLoanNotFound, id)
	}
	return &loan, nil
}

func (r *loanRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return notFound(err, ErrLoanNotFound, id)
	}
	return nil
}

func (r *loanRepository) ReplaceAll(ctx context.Context, loans []models.Loan) error {
	if err := r.store.ReplaceAll(ctx, loans); err != nil {
		return fmt.Errorf("failed to replace loans: %w", err)
	}
	return nil
}
