package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	seedHistoryDays   = 90
	seedCustomerYears = 3
	minOpeningBalance = 500
	maxOpeningBalance = 15000
)

// SeedSummary counts the records written by SeedDemoData
type SeedSummary struct {
	Customers    int `json:"customers"`
	Accounts     int `json:"accounts"`
	Transactions int `json:"transactions"`
	Loans        int `json:"loans"`
}

// CollectionResetter clears every collection
type CollectionResetter interface {
	ResetAll(ctx context.Context) error
}

type merchant struct {
	name     string
	category string
}

var merchantPool = []merchant{
	{"Whole Foods Market", "groceries"},
	{"Trader Joe's", "groceries"},
	{"Costco Wholesale", "groceries"},
	{"Starbucks", "dining"},
	{"Chipotle Mexican Grill", "dining"},
	{"Panera Bread", "dining"},
	{"Shell", "transportation"},
	{"Amtrak", "transportation"},
	{"Amazon.com", "shopping"},
	{"Home Depot", "shopping"},
	{"IKEA", "shopping"},
	{"Netflix", "entertainment"},
	{"Spotify", "entertainment"},
	{"Verizon Wireless", "utilities"},
	{"Duke Energy", "utilities"},
	{"CVS Pharmacy", "healthcare"},
	{"Delta Air Lines", "travel"},
	{"Marriott Hotels", "travel"},
}

var loanTypes = []string{"personal", "auto", "mortgage", "business", "student"}

// seeder implements SeederInterface
type seeder struct {
	customerRepo    repositories.CustomerRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	loanRepo        repositories.LoanRepositoryInterface
	resetter        CollectionResetter
	events          EventLoggerInterface
	metrics         MetricsRecorderInterface
	faker           *gofakeit.Faker
	now             func() time.Time
}

// NewSeeder creates a demo data seeder. A zero seed draws from the clock.
func NewSeeder(
	customerRepo repositories.CustomerRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	loanRepo repositories.LoanRepositoryInterface,
	resetter CollectionResetter,
	events EventLoggerInterface,
	metrics MetricsRecorderInterface,
	seed uint64,
) SeederInterface {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &seeder{
		customerRepo:    customerRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		loanRepo:        loanRepo,
		resetter:        resetter,
		events:          events,
		metrics:         metrics,
		faker:           gofakeit.New(seed),
		now:             time.Now,
	}
}

// SeedDemoData replaces all four collections with generated records. Account
// balances equal the opening balance plus the completed seeded transactions.
func (s *seeder) SeedDemoData(ctx context.Context, customerCount, accountsPerCustomer, transactionsPerAccount int) (*SeedSummary, error) {
	if customerCount < 0 || accountsPerCustomer < 0 || transactionsPerAccount < 0 {
		return nil, fmt.Errorf("seed counts must not be negative")
	}
	start := time.Now()
	now := s.now()

	customers := make([]models.Customer, 0, customerCount)
	accounts := make([]models.Account, 0, customerCount*accountsPerCustomer)
	transactions := make([]models.Transaction, 0, customerCount*accountsPerCustomer*transactionsPerAccount)
	loans := make([]models.Loan, 0)
	usedNumbers := make(map[string]struct{})

	for i := 0; i < customerCount; i++ {
		customer, err := s.fakeCustomer(now)
		if err != nil {
			return nil, err
		}

		for j := 0; j < accountsPerCustomer; j++ {
			account, err := s.fakeAccount(customer, usedNumbers, now)
			if err != nil {
				return nil, err
			}

			if j == 0 {
				customer.AccountType = account.Type
				customer.AccountNumber = account.AccountNumber
				opening := account.Balance
				customer.InitialDeposit = &opening
			}

			history, err := s.fakeHistory(customer, account, transactionsPerAccount, now)
			if err != nil {
				return nil, err
			}
			transactions = append(transactions, history...)
			accounts = append(accounts, *account)
		}

		if i%2 == 1 && accountsPerCustomer > 0 {
			first := accounts[len(accounts)-accountsPerCustomer]
			loan, err := s.fakeLoan(customer, &first, now)
			if err != nil {
				return nil, err
			}
			loans = append(loans, *loan)
		}
		customers = append(customers, *customer)
	}

	if err := s.customerRepo.ReplaceAll(ctx, customers); err != nil {
		return nil, err
	}
	if err := s.accountRepo.ReplaceAll(ctx, accounts); err != nil {
		return nil, err
	}
	if err := s.transactionRepo.ReplaceAll(ctx, transactions); err != nil {
		return nil, err
	}
	if err := s.loanRepo.ReplaceAll(ctx, loans); err != nil {
		return nil, err
	}

	summary := &SeedSummary{
		Customers:    len(customers),
		Accounts:     len(accounts),
		Transactions: len(transactions),
		Loans:        len(loans),
	}
	elapsed := time.Since(start)
	s.metrics.RecordProcessingTime(MetricSeedDuration, elapsed)
	s.events.LogDemoDataSeeded(ctx, summary, elapsed.Milliseconds())
	return summary, nil
}

// ResetAll empties every collection
func (s *seeder) ResetAll(ctx context.Context) error {
	if err := s.resetter.ResetAll(ctx); err != nil {
		return err
	}
	s.events.LogCollectionsReset(ctx)
	return nil
}

func (s *seeder) fakeCustomer(now time.Time) (*models.Customer, error) {
	added := s.faker.DateRange(now.AddDate(-seedCustomerYears, 0, 0), now)
	customer, err := models.NewCustomer(models.CustomerInput{
		Name:    s.faker.Name(),
		Email:   s.faker.Email(),
		Phone:   s.faker.Phone(),
		Address: fmt.Sprintf("%s, %s", s.faker.Street(), s.faker.City()),
	}, added)
	if err != nil {
		return nil, err
	}

	// one customer in five is inactive or pending
	switch s.faker.IntRange(1, 10) {
	case 1:
		customer.Status = models.CustomerStatusInactive
	case 2:
		customer.Status = models.CustomerStatusPending
	}
	customer.ImageSrc = fmt.Sprintf("https://i.pravatar.cc/150?u=%s", customer.ID)
	return customer, nil
}

func (s *seeder) fakeAccount(customer *models.Customer, used map[string]struct{}, now time.Time) (*models.Account, error) {
	number := models.GenerateAccountNumber()
	for _, taken := used[number]; taken; _, taken = used[number] {
		number = models.GenerateAccountNumber()
	}
	used[number] = struct{}{}

	opened, err := models.ParseDate(customer.DateAdded)
	if err != nil {
		return nil, err
	}
	balance := decimal.NewFromFloat(s.faker.Float64Range(minOpeningBalance, maxOpeningBalance)).Round(2)
	accountType := s.faker.RandomString([]string{
		models.AccountTypeChecking,
		models.AccountTypeSavings,
		models.AccountTypeMoneyMarket,
		models.AccountTypeCD,
		models.AccountTypeIRA,
	})

	account, err := models.NewAccount(customer.ID, accountType, number, balance, opened)
	if err != nil {
		return nil, err
	}
	if s.faker.IntRange(1, 20) == 1 {
		account.Status = models.AccountStatusSuspended
	}
	return account, nil
}

// fakeHistory generates count transactions within the last seedHistoryDays and
// applies the completed ones to the account in chronological order.
func (s *seeder) fakeHistory(customer *models.Customer, account *models.Account, count int, now time.Time) ([]models.Transaction, error) {
	when := make([]time.Time, count)
	for i := range when {
		when[i] = s.faker.DateRange(now.AddDate(0, 0, -seedHistoryDays), now)
	}
	slices.SortFunc(when, func(a, b time.Time) int { return a.Compare(b) })

	history := make([]models.Transaction, 0, count)
	for _, at := range when {
		input := s.fakeTransactionInput(customer, account)
		t, err := models.NewTransaction(input, at)
		if err != nil {
			return nil, err
		}
		if t.IsCompleted() {
			account.ApplyBalanceChange(t.Amount, t.IsCredit(), at)
		}
		history = append(history, *t)
	}
	return history, nil
}

func (s *seeder) fakeTransactionInput(customer *models.Customer, account *models.Account) models.TransactionInput {
	input := models.TransactionInput{
		AccountID:     account.ID,
		CustomerID:    customer.ID,
		AccountNumber: account.AccountNumber,
		CustomerName:  customer.Name,
	}

	roll := s.faker.IntRange(1, 100)
	switch {
	case roll <= 30:
		input.Type = models.TransactionTypeDeposit
		input.Description = fmt.Sprintf("Payroll deposit - %s", s.faker.Company())
		input.Amount = decimal.NewFromFloat(s.faker.Float64Range(500, 4000)).Round(2)
	case roll <= 50:
		input.Type = models.TransactionTypeWithdrawal
		input.Description = fmt.Sprintf("ATM withdrawal - %s", s.faker.City())
		input.Amount = decimal.NewFromInt(int64(s.faker.IntRange(2, 40) * 10))
	case roll <= 85:
		m := merchantPool[s.faker.IntRange(0, len(merchantPool)-1)]
		input.Type = models.TransactionTypePayment
		input.Description = fmt.Sprintf("%s (%s)", m.name, m.category)
		input.Amount = decimal.NewFromFloat(s.faker.Float64Range(5, 250)).Round(2)
	case roll <= 95:
		input.Type = models.TransactionTypeTransfer
		input.Description = "Transfer to external account"
		input.DestinationAccount = models.GenerateAccountNumber()
		input.Amount = decimal.NewFromFloat(s.faker.Float64Range(50, 1500)).Round(2)
	default:
		m := merchantPool[s.faker.IntRange(0, len(merchantPool)-1)]
		input.Type = models.TransactionTypeRefund
		input.Description = fmt.Sprintf("Refund - %s", m.name)
		input.Amount = decimal.NewFromFloat(s.faker.Float64Range(5, 150)).Round(2)
	}

	switch s.faker.IntRange(1, 20) {
	case 1:
		input.Status = models.TransactionStatusPending
	case 2:
		input.Status = models.TransactionStatusFailed
	}
	return input
}

// fakeLoan creates a loan that is pending, active with a few payments, or paid off
func (s *seeder) fakeLoan(customer *models.Customer, account *models.Account, now time.Time) (*models.Loan, error) {
	applied := s.faker.DateRange(now.AddDate(-1, 0, 0), now)
	loan, err := models.NewLoan(models.LoanInput{
		AccountID:     account.ID,
		CustomerID:    customer.ID,
		AccountNumber: account.AccountNumber,
		CustomerName:  customer.Name,
		Type:          s.faker.RandomString(loanTypes),
		Amount:        decimal.NewFromInt(int64(s.faker.IntRange(10, 500) * 100)),
		InterestRate:  decimal.NewFromFloat(s.faker.Float64Range(3, 12)).Round(2),
		Term:          s.faker.RandomInt([]int{12, 24, 36, 48, 60}),
		Purpose:       s.faker.Sentence(6),
	}, applied)
	if err != nil {
		return nil, err
	}

	if s.faker.IntRange(1, 3) == 1 {
		return loan, nil
	}
	if err := loan.Approve(); err != nil {
		return nil, err
	}

	payments := s.faker.IntRange(0, 6)
	for i := 0; i < payments && loan.IsActive(); i++ {
		payment := decimal.Min(loan.NextPaymentAmount, loan.RemainingBalance())
		if err := loan.ApplyPayment(payment); err != nil {
			return nil, err
		}
	}
	return loan, nil
}
