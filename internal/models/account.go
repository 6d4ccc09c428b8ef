package models

import (
	"errors"
	"time"

	"backoffice/internal/validation"

	"github.com/shopspring/decimal"
)

const (
	AccountTypeChecking    = "checking"
	AccountTypeSavings     = "savings"
	AccountTypeMoneyMarket = "money_market"
	AccountTypeCD          = "cd"
	AccountTypeIRA         = "ira"

	AccountStatusActive    = "active"
	AccountStatusInactive  = "inactive"
	AccountStatusSuspended = "suspended"
	AccountStatusClosed    = "closed"
)

var (
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrAccountAlreadyClosed = errors.New("account is already closed")
)

// Account represents a bank account. CustomerID is a soft reference.
type Account struct {
	ID               string          `json:"id" validate:"required"`
	CustomerID       string          `json:"customerId" validate:"required"`
	AccountNumber    string          `json:"accountNumber" validate:"required,account_number"`
	Type             string          `json:"type" validate:"account_type"`
	Balance          decimal.Decimal `json:"balance"`
	Status           string          `json:"status" validate:"account_status"`
	OpenDate         string          `json:"openDate" validate:"required,iso_date"`
	LastActivityDate string          `json:"lastActivityDate,omitempty" validate:"omitempty,iso_date"`
}

// GetID returns the account identifier
func (a Account) GetID() string {
	return a.ID
}

// NewAccount builds an active account opened on the given day.
// The balance may start negative only if the caller passes one; no floor is applied.
func NewAccount(customerID, accountType, accountNumber string, initialBalance decimal.Decimal, now time.Time) (*Account, error) {
	if !IsValidAccountType(accountType) {
		return nil, ErrInvalidAccountType
	}

	a := &Account{
		ID:            NewID(AccountIDPrefix),
		CustomerID:    customerID,
		AccountNumber: accountNumber,
		Type:          accountType,
		Balance:       initialBalance,
		Status:        AccountStatusActive,
		OpenDate:      FormatDate(now),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate validates the account fields
func (a *Account) Validate() error {
	return validation.GetValidator().Struct(a)
}

// IsActive returns true if the account is active
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// Close closes the account
func (a *Account) Close() error {
	if a.Status == AccountStatusClosed {
		return ErrAccountAlreadyClosed
	}
	a.Status = AccountStatusClosed
	return nil
}

// ApplyBalanceChange adds amount for a credit or subtracts it for a debit and
// stamps the activity date.
func (a *Account) ApplyBalanceChange(amount decimal.Decimal, isCredit bool, now time.Time) {
	if isCredit {
		a.Balance = a.Balance.Add(amount)
	} else {
		a.Balance = a.Balance.Sub(amount)
	}
	a.LastActivityDate = FormatDate(now)
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	for _, t := range validation.AccountTypes {
		if t == accountType {
			return true
		}
	}
	return false
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	for _, s := range validation.AccountStatuses {
		if s == status {
			return true
		}
	}
	return false
}
