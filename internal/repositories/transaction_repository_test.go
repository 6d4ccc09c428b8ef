package repositories

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransaction(t *testing.T, accountID, customerID, txType string, amount int64) *models.Transaction {
	t.Helper()
	tx, err := models.NewTransaction(models.TransactionInput{
		AccountID:     accountID,
		CustomerID:    customerID,
		AccountNumber: "ACT0000001",
		CustomerName:  "Jane Doe",
		Type:          txType,
		Description:   "test",
		Amount:        decimal.NewFromInt(amount),
	}, time.Date(2025, 3, 14, 9, 30, 15, 0, time.UTC))
	require.NoError(t, err)
	return tx
}

func TestTransactionRepository_Queries(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(store.NewEngine(store.NewMemoryBackend()))

	deposit := newTransaction(t, "A-1", "C-1", models.TransactionTypeDeposit, 100)
	withdrawal := newTransaction(t, "A-2", "C-1", models.TransactionTypeWithdrawal, 40)
	unrelated := newTransaction(t, "A-3", "C-2", models.TransactionTypeDeposit, 5)
	for _, tx := range []*models.Transaction{deposit, withdrawal, unrelated} {
		require.NoError(t, repo.Create(ctx, tx))
	}

	byAccount, err := repo.GetByAccountID(ctx, "A-1")
	require.NoError(t, err)
	require.Len(t, byAccount, 1)
	assert.Equal(t, deposit.ID, byAccount[0].ID)

	byCustomer, err := repo.GetByCustomerID(ctx, "C-1")
	require.NoError(t, err)
	require.Len(t, byCustomer, 2)
	assert.Equal(t, deposit.ID, byCustomer[0].ID)
	assert.Equal(t, withdrawal.ID, byCustomer[1].ID)
}

func TestTransactionRepository_ModifyAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(store.NewEngine(store.NewMemoryBackend()))

	tx := newTransaction(t, "A-1", "C-1", models.TransactionTypePayment, 75)
	require.NoError(t, repo.Create(ctx, tx))

	cancelled, err := repo.Modify(ctx, tx.ID, func(stored *models.Transaction) error {
		return stored.Cancel()
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCancelled, cancelled.Status)

	_, err = repo.Modify(ctx, tx.ID, func(stored *models.Transaction) error {
		return stored.Cancel()
	})
	assert.ErrorIs(t, err, models.ErrTransactionNotCancellable)

	require.NoError(t, repo.Delete(ctx, tx.ID))
	_, err = repo.GetByID(ctx, tx.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
	assert.ErrorIs(t, repo.Update(ctx, tx), ErrTransactionNotFound)
}
