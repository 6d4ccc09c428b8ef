package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"backoffice/internal/config"
	"backoffice/internal/dto"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/models"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
	"backoffice/internal/services/service_mocks"
	"backoffice/internal/store"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AppTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	customers    *service_mocks.MockCustomerServiceInterface
	accounts     *service_mocks.MockAccountServiceInterface
	transactions *service_mocks.MockTransactionServiceInterface
	loans        *service_mocks.MockLoanServiceInterface
	dashboard    *service_mocks.MockDashboardServiceInterface
	seeder       *service_mocks.MockSeederInterface
	migrations   int
	app          *app
}

func (s *AppTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customers = service_mocks.NewMockCustomerServiceInterface(s.ctrl)
	s.accounts = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.transactions = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.loans = service_mocks.NewMockLoanServiceInterface(s.ctrl)
	s.dashboard = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.seeder = service_mocks.NewMockSeederInterface(s.ctrl)
	s.migrations = 0

	s.app = &app{
		customers:    s.customers,
		accounts:     s.accounts,
		transactions: s.transactions,
		loans:        s.loans,
		dashboard:    s.dashboard,
		seeder:       s.seeder,
		migrate: func(context.Context) (*MigrationStatus, error) {
			s.migrations++
			return &MigrationStatus{Driver: config.DriverSQLite, Version: 2}, nil
		},
		seedDefaults: config.SeedConfig{Customers: 10, AccountsPerCustomer: 2, TransactionsPerAcct: 5},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (s *AppTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) exec(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := s.app.execute(context.Background(), "trace-1", args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func (s *AppTestSuite) errorResponse(stderr string) apperrors.ErrorResponse {
	var response apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal([]byte(stderr), &response))
	return response
}

func (s *AppTestSuite) TestUnknownCommand() {
	code, stdout, stderr := s.exec("transfer", "A-1")

	s.Equal(2, code)
	s.Empty(stdout)
	response := s.errorResponse(stderr)
	s.Equal(string(apperrors.SystemInvalidCommand), response.Error.Code)
	s.Equal("trace-1", response.Error.TraceID)
}

func (s *AppTestSuite) TestMissingArguments() {
	code, _, stderr := s.exec("get", "accounts")

	s.Equal(2, code)
	response := s.errorResponse(stderr)
	s.Equal(string(apperrors.SystemInvalidCommand), response.Error.Code)
	s.Contains(response.Error.Details[0], "get <collection> <id>")
}

func (s *AppTestSuite) TestGetAccount() {
	account := &models.Account{ID: "A-1", CustomerID: "C-1", AccountNumber: "ACT1234567", Balance: decimal.RequireFromString("12.50")}
	s.accounts.EXPECT().GetAccount(gomock.Any(), "A-1").Return(account, nil)

	code, stdout, _ := s.exec("get", "accounts", "A-1")

	s.Equal(0, code)
	var got models.Account
	s.Require().NoError(json.Unmarshal([]byte(stdout), &got))
	s.Equal("ACT1234567", got.AccountNumber)
	s.True(got.Balance.Equal(decimal.RequireFromString("12.5")))
}

func (s *AppTestSuite) TestGetAccount_NotFound() {
	s.accounts.EXPECT().GetAccount(gomock.Any(), "A-9").
		Return(nil, fmt.Errorf("%w: A-9", repositories.ErrAccountNotFound))

	code, stdout, stderr := s.exec("get", "accounts", "A-9")

	s.Equal(3, code)
	s.Empty(stdout)
	response := s.errorResponse(stderr)
	s.Equal(string(apperrors.AccountNotFound), response.Error.Code)
	s.Equal("not_found", response.Error.Kind)
}

func (s *AppTestSuite) TestUnknownCollection() {
	code, _, stderr := s.exec("list", "widgets")

	s.Equal(2, code)
	s.Equal(string(apperrors.StoreUnknownCollection), s.errorResponse(stderr).Error.Code)
}

func (s *AppTestSuite) TestListCustomers_PersistenceFailure() {
	s.customers.EXPECT().ListCustomers(gomock.Any()).
		Return(nil, fmt.Errorf("failed to list customers: %w", store.ErrPersistence))

	code, _, stderr := s.exec("list", "customers")

	s.Equal(5, code)
	response := s.errorResponse(stderr)
	s.Equal(string(apperrors.StorePersistenceFailed), response.Error.Code)
	s.Equal("persistence_failed", response.Error.Kind)
}

func (s *AppTestSuite) TestListTransactions_Filters() {
	minAmount := decimal.RequireFromString("10")
	expected := models.TransactionFilters{
		AccountID: "A-1",
		Status:    models.TransactionStatusCompleted,
		StartDate: "2025-01-01",
		MinAmount: &minAmount,
		Limit:     5,
	}
	s.transactions.EXPECT().ListTransactions(gomock.Any(), expected).Return([]models.Transaction{{ID: "T-1"}}, nil)

	code, stdout, _ := s.exec("list", "transactions", "-account", "A-1", "-status", "completed", "-from", "2025-01-01", "-min-amount", "10", "-limit", "5")

	s.Equal(0, code)
	var got []models.Transaction
	s.Require().NoError(json.Unmarshal([]byte(stdout), &got))
	s.Len(got, 1)
}

func (s *AppTestSuite) TestListTransactions_BadFlag() {
	code, _, stderr := s.exec("list", "transactions", "-colour", "red")

	s.Equal(2, code)
	s.Equal(string(apperrors.SystemInvalidCommand), s.errorResponse(stderr).Error.Code)
}

func (s *AppTestSuite) TestListAccounts_InvalidBalance() {
	code, _, stderr := s.exec("list", "accounts", "-min-balance", "lots")

	s.Equal(2, code)
	response := s.errorResponse(stderr)
	s.Equal(string(apperrors.ValidationGeneral), response.Error.Code)
	s.Equal([]string{"min-balance: must be a decimal number"}, response.Error.Details)
}

func (s *AppTestSuite) TestAddCustomer() {
	s.customers.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.CustomerInput) (*models.Customer, error) {
			s.Equal("Ada Lovelace", input.Name)
			s.Equal("ada@example.com", input.Email)
			s.Require().NotNil(input.InitialDeposit)
			s.True(input.InitialDeposit.Equal(decimal.NewFromInt(500)))
			return &models.Customer{ID: "C-1", Name: input.Name, Email: input.Email}, nil
		})

	code, stdout, _ := s.exec("add", "customers", `{"name":"Ada Lovelace","email":"ada@example.com","initialDeposit":"500"}`)

	s.Equal(0, code)
	s.Contains(stdout, `"id": "C-1"`)
}

func (s *AppTestSuite) TestAddCustomer_InvalidEmail() {
	code, _, stderr := s.exec("add", "customers", `{"name":"Ada","email":"not-an-email"}`)

	s.Equal(2, code)
	response := s.errorResponse(stderr)
	s.Equal(string(apperrors.ValidationGeneral), response.Error.Code)
	s.Len(response.Error.Details, 1)
	s.Contains(response.Error.Details[0], "email")
}

func (s *AppTestSuite) TestAddCustomer_UnknownField() {
	code, _, stderr := s.exec("add", "customers", `{"name":"Ada","email":"ada@example.com","ssn":"123"}`)

	s.Equal(2, code)
	s.Equal(string(apperrors.ValidationGeneral), s.errorResponse(stderr).Error.Code)
}

func (s *AppTestSuite) TestAddAccount() {
	s.accounts.EXPECT().CreateAccount(gomock.Any(), "C-1", models.AccountTypeSavings, decimal.RequireFromString("250")).
		Return(&models.Account{ID: "A-2", CustomerID: "C-1", Type: models.AccountTypeSavings}, nil)

	code, stdout, _ := s.exec("add", "accounts", `{"customerId":"C-1","type":"savings","initialBalance":"250"}`)

	s.Equal(0, code)
	s.Contains(stdout, `"id": "A-2"`)
}

func (s *AppTestSuite) TestAddLoan() {
	s.loans.EXPECT().CreateLoanApplication(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.LoanInput) (*models.Loan, error) {
			s.Equal("A-1", input.AccountID)
			s.Equal(36, input.Term)
			return &models.Loan{ID: "L-1", Status: models.LoanStatusPending}, nil
		})

	code, _, _ := s.exec("add", "loans", `{"accountId":"A-1","type":"auto","amount":"12000","interestRate":"4.5","term":36}`)

	s.Equal(0, code)
}

func (s *AppTestSuite) TestUpdateAccount() {
	s.accounts.EXPECT().UpdateAccount(gomock.Any(), "A-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, account *models.Account) error {
			s.Equal(models.AccountStatusSuspended, account.Status)
			return nil
		})

	code, stdout, _ := s.exec("update", "accounts", "A-1", `{"id":"A-1","customerId":"C-1","accountNumber":"ACT1234567","type":"checking","balance":"10","status":"suspended","openDate":"2025-01-02"}`)

	s.Equal(0, code)
	s.Contains(stdout, `"status": "suspended"`)
}

func (s *AppTestSuite) TestUpdateTransaction_Malformed() {
	code, _, stderr := s.exec("update", "transactions", "T-1", `{"id":`)

	s.Equal(2, code)
	s.Contains(s.errorResponse(stderr).Error.Details[0], "malformed json")
}

func (s *AppTestSuite) TestDeleteLoan() {
	s.loans.EXPECT().DeleteLoan(gomock.Any(), "L-1").Return(nil)

	code, stdout, _ := s.exec("delete", "loans", "L-1")

	s.Equal(0, code)
	var got dto.DeleteResponse
	s.Require().NoError(json.Unmarshal([]byte(stdout), &got))
	s.Equal(dto.DeleteResponse{Collection: "loans", ID: "L-1", Deleted: true}, got)
}

func (s *AppTestSuite) TestCustomerAccounts() {
	s.accounts.EXPECT().GetCustomerAccounts(gomock.Any(), "C-1").Return([]models.Account{{ID: "A-1"}, {ID: "A-2"}}, nil)

	code, stdout, _ := s.exec("customer-accounts", "C-1")

	s.Equal(0, code)
	var got []models.Account
	s.Require().NoError(json.Unmarshal([]byte(stdout), &got))
	s.Len(got, 2)
}

func (s *AppTestSuite) TestBalance() {
	s.accounts.EXPECT().UpdateAccountBalance(gomock.Any(), "A-1", decimal.RequireFromString("25.50"), false).
		Return(&models.Account{ID: "A-1", Balance: decimal.RequireFromString("74.50")}, nil)

	code, stdout, _ := s.exec("balance", "A-1", "25.50", "DEBIT")

	s.Equal(0, code)
	s.Contains(stdout, `"balance": "74.5"`)
}

func (s *AppTestSuite) TestBalance_InvalidInput() {
	tests := []struct {
		name string
		args []string
	}{
		{"amount not a number", []string{"balance", "A-1", "abc", "credit"}},
		{"zero amount", []string{"balance", "A-1", "0", "credit"}},
		{"unknown direction", []string{"balance", "A-1", "5", "sideways"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			code, _, stderr := s.exec(tt.args...)
			s.Equal(2, code)
			s.Equal(string(apperrors.ValidationGeneral), s.errorResponse(stderr).Error.Code)
		})
	}
}

func (s *AppTestSuite) TestStats() {
	s.dashboard.EXPECT().GetDashboardStats(gomock.Any()).Return(&models.DashboardStats{TotalCustomers: 3}, nil)
	s.loans.EXPECT().GetLoanStats(gomock.Any()).Return(&models.LoanStats{}, nil)

	code, stdout, _ := s.exec("stats")
	s.Equal(0, code)
	s.Contains(stdout, `"totalCustomers": 3`)

	code, _, _ = s.exec("stats", "loans")
	s.Equal(0, code)

	code, _, stderr := s.exec("stats", "weather")
	s.Equal(2, code)
	s.Equal(string(apperrors.SystemInvalidCommand), s.errorResponse(stderr).Error.Code)
}

func (s *AppTestSuite) TestLoanPayment_PaymentTooLarge() {
	s.loans.EXPECT().ApplyPayment(gomock.Any(), "L-1", decimal.RequireFromString("900")).
		Return(nil, fmt.Errorf("%w: remaining 400.00", models.ErrPaymentExceedsBalance))

	code, _, stderr := s.exec("loan-payment", "L-1", "900")

	s.Equal(2, code)
	s.Equal(string(apperrors.LoanPaymentExceedsDebt), s.errorResponse(stderr).Error.Code)
}

func (s *AppTestSuite) TestApproveLoan_NotPending() {
	s.loans.EXPECT().ApproveLoan(gomock.Any(), "L-1").Return(nil, models.ErrLoanNotPending)

	code, _, stderr := s.exec("approve-loan", "L-1")

	s.Equal(4, code)
	s.Equal("conflict", s.errorResponse(stderr).Error.Kind)
}

func (s *AppTestSuite) TestCloseAccountAndCancelTransaction() {
	s.accounts.EXPECT().CloseAccount(gomock.Any(), "A-1").Return(&models.Account{ID: "A-1", Status: models.AccountStatusClosed}, nil)
	s.transactions.EXPECT().CancelTransaction(gomock.Any(), "T-1").Return(&models.Transaction{ID: "T-1", Status: models.TransactionStatusCancelled}, nil)

	code, stdout, _ := s.exec("close-account", "A-1")
	s.Equal(0, code)
	s.Contains(stdout, `"status": "closed"`)

	code, stdout, _ = s.exec("cancel-transaction", "T-1")
	s.Equal(0, code)
	s.Contains(stdout, `"status": "cancelled"`)
}

func (s *AppTestSuite) TestPostTransaction() {
	s.transactions.EXPECT().PostTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.TransactionInput) (*models.Transaction, *models.Account, error) {
			s.Equal(models.TransactionTypeDeposit, input.Type)
			return &models.Transaction{ID: "T-1", AccountID: input.AccountID},
				&models.Account{ID: input.AccountID, Balance: decimal.NewFromInt(150)}, nil
		})

	code, stdout, _ := s.exec("post-transaction", `{"accountId":"A-1","type":"deposit","amount":"50","description":"Cash"}`)

	s.Equal(0, code)
	var got dto.PostTransactionResponse
	s.Require().NoError(json.Unmarshal([]byte(stdout), &got))
	s.Equal("T-1", got.Transaction.ID)
	s.True(got.Account.Balance.Equal(decimal.NewFromInt(150)))
}

func (s *AppTestSuite) TestOverview() {
	s.customers.EXPECT().GetCustomerOverview(gomock.Any(), "C-1").
		Return(&models.CustomerOverview{Customer: models.Customer{ID: "C-1"}, ActiveAccountCount: 2}, nil)

	code, stdout, _ := s.exec("overview", "C-1")

	s.Equal(0, code)
	s.Contains(stdout, `"activeAccountCount": 2`)
}

func (s *AppTestSuite) TestSeed() {
	s.seeder.EXPECT().SeedDemoData(gomock.Any(), 10, 2, 5).Return(&services.SeedSummary{Customers: 10}, nil)
	s.seeder.EXPECT().SeedDemoData(gomock.Any(), 3, 1, 2).Return(&services.SeedSummary{Customers: 3}, nil)

	code, stdout, _ := s.exec("seed")
	s.Equal(0, code)
	s.Contains(stdout, `"customers": 10`)

	code, stdout, _ = s.exec("seed", "-customers", "3", "-accounts", "1", "-transactions", "2")
	s.Equal(0, code)
	s.Contains(stdout, `"customers": 3`)
}

func (s *AppTestSuite) TestResetAndMigrate() {
	s.seeder.EXPECT().ResetAll(gomock.Any()).Return(nil)

	code, stdout, _ := s.exec("reset")
	s.Equal(0, code)
	s.Contains(stdout, `"reset": true`)

	code, stdout, _ = s.exec("migrate")
	s.Equal(0, code)
	s.Equal(1, s.migrations)
	s.Contains(stdout, `"version": 2`)
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), nil, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2 without a command, got %d", code)
	}

	stderr.Reset()
	code = run(context.Background(), []string{"help"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0 for help, got %d", code)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("loan-payment <loanId> <amount>")) {
		t.Fatalf("usage does not list commands: %s", stderr.String())
	}
}

func (s *AppTestSuite) TestPanicIsReported() {
	s.dashboard.EXPECT().GetDashboardStats(gomock.Any()).DoAndReturn(func(context.Context) (*models.DashboardStats, error) {
		panic("nil map")
	})

	code, _, stderr := s.exec("stats", "dashboard")

	s.Equal(1, code)
	response := s.errorResponse(stderr)
	s.Equal(string(apperrors.SystemInternalError), response.Error.Code)
	s.Equal("internal", response.Error.Kind)
}
