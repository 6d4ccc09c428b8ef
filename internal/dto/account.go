package dto

import (
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the document accepted by `add accounts`
type CreateAccountRequest struct {
	CustomerID     string          `json:"customerId" validate:"required"`
	Type           string          `json:"type" validate:"required,account_type"`
	InitialBalance decimal.Decimal `json:"initialBalance" validate:"gte=0"`
}

// BalanceChangeRequest is built from the arguments of the `balance` command
type BalanceChangeRequest struct {
	AccountID string          `json:"accountId" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"gt=0"`
	Direction string          `json:"direction" validate:"required,oneof=credit debit"`
}

// IsCredit reports whether the change adds to the balance
func (r BalanceChangeRequest) IsCredit() bool {
	return r.Direction == "credit"
}
