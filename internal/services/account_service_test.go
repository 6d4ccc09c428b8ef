package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/repositories"
	"backoffice/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// AccountServiceSuite defines the test suite for AccountServiceInterface
type AccountServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	ctx          context.Context
	accountRepo  *repository_mocks.MockAccountRepositoryInterface
	customerRepo *repository_mocks.MockCustomerRepositoryInterface
	metrics      *recordingMetrics
	service      *accountService
	testTime     time.Time
}

// SetupTest runs before each test in the suite
func (s *AccountServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.metrics = newRecordingMetrics()
	s.service = NewAccountService(
		s.accountRepo,
		s.customerRepo,
		NewEventLogger(discardLogger()),
		s.metrics,
		discardLogger(),
	).(*accountService)

	s.testTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.testTime }
}

// TearDownTest runs after each test in the suite
func (s *AccountServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAccountServiceSuite runs the test suite
func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) account(balance string) *models.Account {
	return &models.Account{
		ID:            "A-1",
		CustomerID:    "C-1",
		AccountNumber: "ACT0000001",
		Type:          models.AccountTypeChecking,
		Balance:       decimal.RequireFromString(balance),
		Status:        models.AccountStatusActive,
		OpenDate:      "2024-01-01",
	}
}

// expectModify runs the mutation the service passes to Modify against stored
func (s *AccountServiceSuite) expectModify(stored *models.Account) {
	s.accountRepo.EXPECT().Modify(s.ctx, stored.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fn func(*models.Account) error) (*models.Account, error) {
			if err := fn(stored); err != nil {
				return nil, err
			}
			updated := *stored
			return &updated, nil
		})
}

func (s *AccountServiceSuite) TestGenerateAccountNumber_Format() {
	number := s.service.GenerateAccountNumber()

	s.Len(number, 10)
	s.Equal(models.AccountNumberPrefix, number[:3])
}

func (s *AccountServiceSuite) TestGenerateUniqueAccountNumber_RetriesOnCollision() {
	gomock.InOrder(
		s.accountRepo.EXPECT().AccountNumberExists(s.ctx, gomock.Any()).Return(true, nil),
		s.accountRepo.EXPECT().AccountNumberExists(s.ctx, gomock.Any()).Return(false, nil),
	)

	number, err := s.service.GenerateUniqueAccountNumber(s.ctx)
	s.NoError(err)
	s.Regexp(`^ACT\d{7}$`, number)
}

func (s *AccountServiceSuite) TestGenerateUniqueAccountNumber_Exhausted() {
	s.accountRepo.EXPECT().AccountNumberExists(s.ctx, gomock.Any()).Return(true, nil).Times(maxAccountNumberAttempts)

	_, err := s.service.GenerateUniqueAccountNumber(s.ctx)
	s.ErrorIs(err, ErrAccountNumberExhausted)
}

func (s *AccountServiceSuite) TestCreateAccount_Success() {
	s.customerRepo.EXPECT().GetByID(s.ctx, "C-1").Return(&models.Customer{ID: "C-1"}, nil)
	s.accountRepo.EXPECT().AccountNumberExists(s.ctx, gomock.Any()).Return(false, nil)
	s.accountRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	account, err := s.service.CreateAccount(s.ctx, "C-1", models.AccountTypeSavings, decimal.NewFromInt(250))
	s.NoError(err)
	s.Equal("C-1", account.CustomerID)
	s.Equal(models.AccountTypeSavings, account.Type)
	s.Equal(models.AccountStatusActive, account.Status)
	s.Equal("2025-03-14", account.OpenDate)
	s.True(decimal.NewFromInt(250).Equal(account.Balance))
	s.Equal(1, s.metrics.counter(MetricAccountsCreated))
}

func (s *AccountServiceSuite) TestCreateAccount_CustomerNotFound() {
	s.customerRepo.EXPECT().GetByID(s.ctx, "C-404").Return(nil, repositories.ErrCustomerNotFound)

	_, err := s.service.CreateAccount(s.ctx, "C-404", models.AccountTypeSavings, decimal.Zero)
	s.ErrorIs(err, repositories.ErrCustomerNotFound)
}

func (s *AccountServiceSuite) TestCreateAccount_NegativeBalance() {
	_, err := s.service.CreateAccount(s.ctx, "C-1", models.AccountTypeSavings, decimal.NewFromInt(-1))
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *AccountServiceSuite) TestCreateAccount_InvalidType() {
	s.customerRepo.EXPECT().GetByID(s.ctx, "C-1").Return(&models.Customer{ID: "C-1"}, nil)
	s.accountRepo.EXPECT().AccountNumberExists(s.ctx, gomock.Any()).Return(false, nil)

	_, err := s.service.CreateAccount(s.ctx, "C-1", "crypto", decimal.Zero)
	s.ErrorIs(err, models.ErrInvalidAccountType)
}

func (s *AccountServiceSuite) TestUpdateAccountBalance_Credit() {
	stored := s.account("100.00")
	s.expectModify(stored)

	updated, err := s.service.UpdateAccountBalance(s.ctx, "A-1", decimal.NewFromInt(50), true)
	s.NoError(err)
	s.Equal("150.00", updated.Balance.StringFixed(2))
	s.Equal("2025-03-14", updated.LastActivityDate)
	s.Equal(1, s.metrics.counter(MetricBalanceUpdates))
}

func (s *AccountServiceSuite) TestUpdateAccountBalance_DebitBelowZero() {
	stored := s.account("30.00")
	s.expectModify(stored)

	updated, err := s.service.UpdateAccountBalance(s.ctx, "A-1", decimal.NewFromInt(50), false)
	s.NoError(err)
	s.Equal("-20.00", updated.Balance.StringFixed(2))
}

func (s *AccountServiceSuite) TestUpdateAccountBalance_NotFound() {
	s.accountRepo.EXPECT().Modify(s.ctx, "A-404", gomock.Any()).Return(nil, repositories.ErrAccountNotFound)

	updated, err := s.service.UpdateAccountBalance(s.ctx, "A-404", decimal.NewFromInt(50), true)
	s.Nil(updated)
	s.ErrorIs(err, repositories.ErrAccountNotFound)
	s.Zero(s.metrics.counter(MetricBalanceUpdates))
}

func (s *AccountServiceSuite) TestCloseAccount() {
	stored := s.account("12.00")
	s.expectModify(stored)

	closed, err := s.service.CloseAccount(s.ctx, "A-1")
	s.NoError(err)
	s.Equal(models.AccountStatusClosed, closed.Status)
	s.Equal("12.00", closed.Balance.StringFixed(2))
}

func (s *AccountServiceSuite) TestCloseAccount_AlreadyClosed() {
	stored := s.account("0")
	stored.Status = models.AccountStatusClosed
	s.expectModify(stored)

	_, err := s.service.CloseAccount(s.ctx, "A-1")
	s.ErrorIs(err, models.ErrAccountAlreadyClosed)
}

func (s *AccountServiceSuite) TestUpdateAccount_IDMismatch() {
	err := s.service.UpdateAccount(s.ctx, "A-2", s.account("1"))
	s.ErrorIs(err, ErrIDMismatch)
}

func (s *AccountServiceSuite) TestUpdateAccount_Validates() {
	account := s.account("1")
	account.Status = "frozen"

	err := s.service.UpdateAccount(s.ctx, account.ID, account)
	s.Error(err)
}

func (s *AccountServiceSuite) TestGetAllAccounts_Filters() {
	checking := s.account("10")
	savings := s.account("20")
	savings.ID = "A-2"
	savings.AccountNumber = "ACT0000002"
	savings.Type = models.AccountTypeSavings
	s.accountRepo.EXPECT().List(s.ctx).Return([]models.Account{*checking, *savings}, nil).Times(2)

	accounts, err := s.service.GetAllAccounts(s.ctx, models.AccountFilters{Type: models.AccountTypeSavings})
	s.NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal("A-2", accounts[0].ID)

	accounts, err = s.service.GetAllAccounts(s.ctx, models.AccountFilters{Search: "act0000001"})
	s.NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal("A-1", accounts[0].ID)
}

func (s *AccountServiceSuite) TestGetAccountStats_Empty() {
	s.accountRepo.EXPECT().List(s.ctx).Return([]models.Account{}, nil)

	stats, err := s.service.GetAccountStats(s.ctx)
	s.NoError(err)
	s.Equal(0, stats.TotalAccounts)
	s.True(stats.TotalBalance.IsZero())
	s.Empty(stats.TypeCount)
	s.Empty(stats.StatusCount)
}

func (s *AccountServiceSuite) TestGetAccountStats_IncludesNegativeAndUnknown() {
	a := s.account("100.50")
	b := s.account("-25.00")
	b.Status = models.AccountStatusClosed
	c := s.account("0")
	c.Type = ""
	c.Status = models.AccountStatusSuspended
	s.accountRepo.EXPECT().List(s.ctx).Return([]models.Account{*a, *b, *c}, nil)

	stats, err := s.service.GetAccountStats(s.ctx)
	s.NoError(err)
	s.Equal(3, stats.TotalAccounts)
	s.Equal("75.50", stats.TotalBalance.StringFixed(2))
	s.Equal(map[string]int{models.AccountTypeChecking: 2, models.UnknownBucket: 1}, stats.TypeCount)
	s.Equal(map[string]int{
		models.AccountStatusActive:    1,
		models.AccountStatusClosed:    1,
		models.AccountStatusSuspended: 1,
	}, stats.StatusCount)
}

func (s *AccountServiceSuite) TestGetCustomerAccounts() {
	s.accountRepo.EXPECT().GetByCustomerID(s.ctx, "C-1").Return([]models.Account{*s.account("1")}, nil)

	accounts, err := s.service.GetCustomerAccounts(s.ctx, "C-1")
	s.NoError(err)
	s.Len(accounts, 1)
}

func (s *AccountServiceSuite) TestDeleteAccount_NotFound() {
	s.accountRepo.EXPECT().Delete(s.ctx, "A-404").Return(repositories.ErrAccountNotFound)

	s.ErrorIs(s.service.DeleteAccount(s.ctx, "A-404"), repositories.ErrAccountNotFound)
}
