package repositories

import (
	"errors"
	"fmt"

	"backoffice/internal/store"
)

var (
	ErrCustomerNotFound    = fmt.Errorf("customer %w", store.ErrNotFound)
	ErrAccountNotFound     = fmt.Errorf("account %w", store.ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction %w", store.ErrNotFound)
	ErrLoanNotFound        = fmt.Errorf("loan %w", store.ErrNotFound)
	ErrAccountNumberExists = errors.New("account number already exists")
	ErrMissingID           = errors.New("record id is required")
)

// notFound swaps a bare store.ErrNotFound for the collection's sentinel
func notFound(err error, sentinel error, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", sentinel, id)
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
