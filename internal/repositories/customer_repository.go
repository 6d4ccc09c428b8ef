package repositories

import (
	"context"
	"fmt"

	"backoffice/internal/models"
	"backoffice/internal/store"
)

// customerRepository implements CustomerRepositoryInterface
type customerRepository struct {
	store *store.Store[models.Customer]
}

// NewCustomerRepository creates a new customer repository on the customers collection
func NewCustomerRepository(engine *store.Engine) CustomerRepositoryInterface {
	return &customerRepository{
		store: store.New[models.Customer](engine, store.Customers),
	}
}

func (r *customerRepository) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Create appends a customer
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.ID == "" {
		return ErrMissingID
	}
	if err := r.store.Add(ctx, *customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by ID
func (r *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCustomerNotFound, id)
	}
	return &customer, nil
}

// Update replaces the stored customer that has the same ID
func (r *customerRepository) Update(ctx context.Context, customer *models.Customer) error {
	if err := r.store.Update(ctx, customer.ID, *customer); err != nil {
		return notFound(err, ErrCustomerNotFound, customer.ID)
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return notFound(err, ErrCustomerNotFound, id)
	}
	return nil
}

func (r *customerRepository) ReplaceAll(ctx context.Context, customers []models.Customer) error {
	if err := r.store.ReplaceAll(ctx, customers); err != nil {
		return fmt.Errorf("failed to replace customers: %w", err)
	}
	return nil
}
