package models

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/validation"

	"github.com/shopspring/decimal"
)

const (
	LoanStatusPending   = "pending"
	LoanStatusActive    = "active"
	LoanStatusCompleted = "completed"

	// LoanStartDelayDays is the gap between application and loan start.
	LoanStartDelayDays = 7
)

var (
	ErrLoanNotPending        = errors.New("loan is not pending")
	ErrLoanNotActive         = errors.New("loan is not active")
	ErrInvalidPayment        = errors.New("payment amount must be positive")
	ErrPaymentExceedsBalance = errors.New("payment exceeds remaining loan balance")
	ErrInvalidLoanTerm       = errors.New("loan term must be at least one month")
	ErrInvalidPrincipal      = errors.New("loan amount must be positive")
)

var hundred = decimal.NewFromInt(100)

// Loan represents a loan and its repayment progress.
// AccountID and CustomerID are soft references.
type Loan struct {
	ID                string          `json:"id" validate:"required"`
	AccountID         string          `json:"accountId"`
	CustomerID        string          `json:"customerId,omitempty"`
	AccountNumber     string          `json:"accountNumber"`
	CustomerName      string          `json:"customerName"`
	Type              string          `json:"type" validate:"required"`
	Amount            decimal.Decimal `json:"amount" validate:"gt=0"`
	AmountPaid        decimal.Decimal `json:"amountPaid" validate:"gte=0"`
	InterestRate      decimal.Decimal `json:"interestRate" validate:"gte=0"`
	Term              int             `json:"term" validate:"gte=1"`
	MonthsRemaining   int             `json:"monthsRemaining" validate:"gte=0"`
	StartDate         string          `json:"startDate" validate:"required,iso_date"`
	NextPaymentDate   string          `json:"nextPaymentDate" validate:"omitempty,iso_date"`
	NextPaymentAmount decimal.Decimal `json:"nextPaymentAmount" validate:"gte=0"`
	Status            string          `json:"status" validate:"loan_status"`
	Purpose           string          `json:"purpose,omitempty"`
}

// GetID returns the loan identifier
func (l Loan) GetID() string {
	return l.ID
}

// LoanInput holds the caller-supplied fields of a loan application
type LoanInput struct {
	AccountID     string
	CustomerID    string
	AccountNumber string
	CustomerName  string
	Type          string
	Amount        decimal.Decimal
	InterestRate  decimal.Decimal
	Term          int
	Purpose       string
}

// NewLoan builds a pending loan application. The loan starts a week after now and
// the first payment falls one month after the start.
func NewLoan(in LoanInput, now time.Time) (*Loan, error) {
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidPrincipal
	}
	if in.Term < 1 {
		return nil, ErrInvalidLoanTerm
	}

	start := now.AddDate(0, 0, LoanStartDelayDays)
	l := &Loan{
		ID:                NewID(LoanIDPrefix),
		AccountID:         in.AccountID,
		CustomerID:        in.CustomerID,
		AccountNumber:     in.AccountNumber,
		CustomerName:      in.CustomerName,
		Type:              in.Type,
		Amount:            in.Amount,
		AmountPaid:        decimal.Zero,
		InterestRate:      in.InterestRate,
		Term:              in.Term,
		MonthsRemaining:   in.Term,
		StartDate:         FormatDate(start),
		NextPaymentDate:   FormatDate(start.AddDate(0, 1, 0)),
		NextPaymentAmount: MonthlyPayment(in.Amount, in.InterestRate, in.Term),
		Status:            LoanStatusPending,
		Purpose:           in.Purpose,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate validates the loan fields, including amountPaid <= amount
func (l *Loan) Validate() error {
	if err := validation.GetValidator().Struct(l); err != nil {
		return err
	}
	if l.AmountPaid.GreaterThan(l.Amount) {
		return validation.FieldError("amountPaid", "must not exceed amount")
	}
	return nil
}

// Approve moves a pending loan to active
func (l *Loan) Approve() error {
	if l.Status != LoanStatusPending {
		return fmt.Errorf("%w: status is %s", ErrLoanNotPending, l.Status)
	}
	l.Status = LoanStatusActive
	return nil
}

// ApplyPayment records a payment against an active loan. The loan completes
// when the remaining balance reaches zero.
func (l *Loan) ApplyPayment(amount decimal.Decimal) error {
	if l.Status != LoanStatusActive {
		return fmt.Errorf("%w: status is %s", ErrLoanNotActive, l.Status)
	}
	if !amount.IsPositive() {
		return ErrInvalidPayment
	}
	if amount.GreaterThan(l.RemainingBalance()) {
		return ErrPaymentExceedsBalance
	}

	l.AmountPaid = l.AmountPaid.Add(amount)
	if l.MonthsRemaining > 0 {
		l.MonthsRemaining--
	}

	if l.RemainingBalance().IsZero() {
		l.Status = LoanStatusCompleted
		l.MonthsRemaining = 0
		l.NextPaymentAmount = decimal.Zero
		return nil
	}

	if l.NextPaymentDate != "" {
		next, err := AddMonths(l.NextPaymentDate, 1)
		if err != nil {
			return err
		}
		l.NextPaymentDate = next
	}
	if l.NextPaymentAmount.GreaterThan(l.RemainingBalance()) {
		l.NextPaymentAmount = l.RemainingBalance()
	}
	return nil
}

// RemainingBalance returns amount minus amountPaid
func (l *Loan) RemainingBalance() decimal.Decimal {
	return l.Amount.Sub(l.AmountPaid)
}

// PercentagePaid returns amountPaid as a percentage of amount, rounded to two places
func (l *Loan) PercentagePaid() decimal.Decimal {
	if l.Amount.IsZero() {
		return decimal.Zero
	}
	return l.AmountPaid.Div(l.Amount).Mul(hundred).Round(2)
}

// IsActive returns true if the loan is active
func (l *Loan) IsActive() bool {
	return l.Status == LoanStatusActive
}

// MonthlyPayment returns the amortised payment for principal at annualRatePct
// percent over termMonths, rounded to cents. A zero rate splits the principal evenly.
func MonthlyPayment(principal, annualRatePct decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths < 1 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termMonths))
	if annualRatePct.IsZero() {
		return principal.Div(n).Round(2)
	}

	r := annualRatePct.Div(hundred).Div(decimal.NewFromInt(12))
	growth := decimal.NewFromInt(1).Add(r).Pow(n)
	return principal.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1))).Round(2)
}
