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

func newLoan(t *testing.T, customerID string, amount int64) *models.Loan {
	t.Helper()
	loan, err := models.NewLoan(models.LoanInput{
		AccountID:     "A-1",
		CustomerID:    customerID,
		AccountNumber: "ACT0000001",
		CustomerName:  "Jane Doe",
		Type:          "personal",
		Amount:        decimal.NewFromInt(amount),
		InterestRate:  decimal.NewFromInt(6),
		Term:          12,
	}, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return loan
}

func TestLoanRepository_Queries(t *testing.T) {
	ctx := context.Background()
	repo := NewLoanRepository(store.NewEngine(store.NewMemoryBackend()))

	pending := newLoan(t, "C-1", 1000)
	active := newLoan(t, "C-1", 2000)
	require.NoError(t, active.Approve())
	other := newLoan(t, "C-2", 3000)
	for _, l := range []*models.Loan{pending, active, other} {
		require.NoError(t, repo.Create(ctx, l))
	}

	byCustomer, err := repo.GetByCustomerID(ctx, "C-1")
	require.NoError(t, err)
	assert.Len(t, byCustomer, 2)

	activeLoans, err := repo.GetByStatus(ctx, models.LoanStatusActive)
	require.NoError(t, err)
	require.Len(t, activeLoans, 1)
	assert.Equal(t, active.ID, activeLoans[0].ID)

	pendingLoans, err := repo.GetByStatus(ctx, models.LoanStatusPending)
	require.NoError(t, err)
	assert.Len(t, pendingLoans, 2)
}

func TestLoanRepository_ModifyApprove(t *testing.T) {
	ctx := context.Background()
	repo := NewLoanRepository(store.NewEngine(store.NewMemoryBackend()))

	loan := newLoan(t, "C-1", 1000)
	require.NoError(t, repo.Create(ctx, loan))

	approved, err := repo.Modify(ctx, loan.ID, func(l *models.Loan) error {
		return l.Approve()
	})
	require.NoError(t, err)
	assert.Equal(t, models.LoanStatusActive, approved.Status)

	stored, err := repo.GetByID(ctx, loan.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LoanStatusActive, stored.Status)

	_, err = repo.Modify(ctx, "L-missing", func(l *models.Loan) error { return l.Approve() })
	assert.ErrorIs(t, err, ErrLoanNotFound)
}
