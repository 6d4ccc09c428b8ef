package services

import (
	"context"

	"backoffice/internal/models"
	"backoffice/internal/repositories"
)

// RecentTransactionCount is how many transactions the dashboard lists
const RecentTransactionCount = 5

type dashboardService struct {
	customerRepo    repositories.CustomerRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	loanRepo        repositories.LoanRepositoryInterface
}

func NewDashboardService(
	customerRepo repositories.CustomerRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	loanRepo repositories.LoanRepositoryInterface,
) DashboardServiceInterface {
	return &dashboardService{
		customerRepo:    customerRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		loanRepo:        loanRepo,
	}
}

// GetDashboardStats reads every collection once and derives all summaries
func (s *dashboardService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.loanRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalCustomers: len(customers),
		CustomerStatus: make(map[string]int),
		Accounts:       computeAccountStats(accounts),
		Transactions:   computeTransactionStats(transactions),
		Loans:          computeLoanStats(loans),
	}
	for _, c := range customers {
		stats.CustomerStatus[models.BucketKey(c.Status)]++
	}

	sortNewestFirst(transactions)
	if len(transactions) > RecentTransactionCount {
		transactions = transactions[:RecentTransactionCount]
	}
	stats.RecentTransactions = transactions
	return stats, nil
}
