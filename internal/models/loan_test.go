package models

import (
	"testing"

	"backoffice/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LoanTestSuite struct {
	suite.Suite
	loan *Loan
}

func TestLoanTestSuite(t *testing.T) {
	suite.Run(t, new(LoanTestSuite))
}

func (s *LoanTestSuite) SetupTest() {
	loan, err := NewLoan(LoanInput{
		AccountID:     "A-1",
		CustomerID:    "C1",
		AccountNumber: "ACT0000001",
		CustomerName:  "Jane Doe",
		Type:          "personal",
		Amount:        decimal.NewFromInt(1200),
		InterestRate:  decimal.Zero,
		Term:          12,
		Purpose:       "Home office",
	}, fixedNow)
	s.Require().NoError(err)
	s.loan = loan
}

func (s *LoanTestSuite) TestNewLoan_Schedule() {
	s.Equal(LoanStatusPending, s.loan.Status)
	s.Equal("2025-03-21", s.loan.StartDate)
	s.Equal("2025-04-21", s.loan.NextPaymentDate)
	s.Equal(12, s.loan.MonthsRemaining)
	s.Equal("100", s.loan.NextPaymentAmount.String())
	s.True(s.loan.AmountPaid.IsZero())
	s.Contains(s.loan.ID, LoanIDPrefix)
}

func (s *LoanTestSuite) TestApprove() {
	s.Require().NoError(s.loan.Approve())
	s.Equal(LoanStatusActive, s.loan.Status)

	s.ErrorIs(s.loan.Approve(), ErrLoanNotPending)
}

func (s *LoanTestSuite) TestApplyPayment_RequiresActive() {
	s.ErrorIs(s.loan.ApplyPayment(decimal.NewFromInt(100)), ErrLoanNotActive)
}

func (s *LoanTestSuite) TestApplyPayment_Partial() {
	s.Require().NoError(s.loan.Approve())

	s.Require().NoError(s.loan.ApplyPayment(decimal.NewFromInt(100)))

	s.Equal("100", s.loan.AmountPaid.String())
	s.Equal(11, s.loan.MonthsRemaining)
	s.Equal("2025-05-21", s.loan.NextPaymentDate)
	s.Equal(LoanStatusActive, s.loan.Status)
	s.Equal("8.33", s.loan.PercentagePaid().String())
}

func (s *LoanTestSuite) TestApplyPayment_ClampsNextPaymentToRemaining() {
	s.Require().NoError(s.loan.Approve())
	s.Require().NoError(s.loan.ApplyPayment(decimal.NewFromInt(1150)))

	s.Equal("50", s.loan.RemainingBalance().String())
	s.Equal("50", s.loan.NextPaymentAmount.String())
}

func (s *LoanTestSuite) TestApplyPayment_FullPayoffCompletes() {
	s.Require().NoError(s.loan.Approve())

	s.Require().NoError(s.loan.ApplyPayment(decimal.NewFromInt(1200)))

	s.Equal(LoanStatusCompleted, s.loan.Status)
	s.Equal(0, s.loan.MonthsRemaining)
	s.True(s.loan.NextPaymentAmount.IsZero())
	s.True(s.loan.RemainingBalance().IsZero())
	s.Equal("100", s.loan.PercentagePaid().String())
}

func (s *LoanTestSuite) TestApplyPayment_Rejections() {
	s.Require().NoError(s.loan.Approve())

	s.ErrorIs(s.loan.ApplyPayment(decimal.Zero), ErrInvalidPayment)
	s.ErrorIs(s.loan.ApplyPayment(decimal.NewFromInt(-5)), ErrInvalidPayment)
	s.ErrorIs(s.loan.ApplyPayment(decimal.NewFromFloat(1200.01)), ErrPaymentExceedsBalance)
	s.True(s.loan.AmountPaid.IsZero())
}

func (s *LoanTestSuite) TestValidate_AmountPaidCannotExceedAmount() {
	s.loan.AmountPaid = decimal.NewFromInt(1300)

	err := s.loan.Validate()

	s.ErrorIs(err, validation.ErrInvalid)
	s.Contains(err.Error(), "amountPaid")
}

func TestNewLoan_InputErrors(t *testing.T) {
	_, err := NewLoan(LoanInput{Type: "auto", Amount: decimal.Zero, Term: 12}, fixedNow)
	assert.ErrorIs(t, err, ErrInvalidPrincipal)

	_, err = NewLoan(LoanInput{Type: "auto", Amount: decimal.NewFromInt(10), Term: 0}, fixedNow)
	assert.ErrorIs(t, err, ErrInvalidLoanTerm)

	_, err = NewLoan(LoanInput{Amount: decimal.NewFromInt(10), Term: 1}, fixedNow)
	assert.ErrorIs(t, err, validation.ErrInvalid)
}

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal int64
		rate      string
		term      int
		expected  string
	}{
		{"twelve percent over a year", 10000, "12", 12, "888.49"},
		{"five and a half over five years", 25000, "5.5", 60, "477.53"},
		{"zero rate splits evenly", 1200, "0", 12, "100"},
		{"zero term", 1000, "5", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(decimal.NewFromInt(tt.principal), decimal.RequireFromString(tt.rate), tt.term)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestLoan_PercentagePaidZeroAmount(t *testing.T) {
	l := Loan{}
	require.True(t, l.PercentagePaid().IsZero())
}
