package models

import (
	"errors"
	"time"

	"backoffice/internal/validation"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeTransfer   = "transfer"
	TransactionTypePayment    = "payment"
	TransactionTypeRefund     = "refund"

	TransactionStatusCompleted = "completed"
	TransactionStatusPending   = "pending"
	TransactionStatusCancelled = "cancelled"
	TransactionStatusFailed    = "failed"
)

var (
	ErrInvalidAmount             = errors.New("transaction amount must not be negative")
	ErrTransactionNotCancellable = errors.New("only pending or completed transactions can be cancelled")
	ErrInvalidTransactionStatus  = errors.New("invalid transaction status")
	ErrInvalidTransactionType    = errors.New("invalid transaction type")
	ErrDestinationRequired       = errors.New("transfer requires a destination account")
)

// Transaction represents a posted or pending movement of money.
// AccountID and CustomerID are soft references.
type Transaction struct {
	ID                 string          `json:"id" validate:"required"`
	AccountID          string          `json:"accountId"`
	CustomerID         string          `json:"customerId,omitempty"`
	AccountNumber      string          `json:"accountNumber"`
	CustomerName       string          `json:"customerName"`
	Type               string          `json:"type" validate:"transaction_type"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount" validate:"gte=0"`
	Date               string          `json:"date" validate:"required,iso_date"`
	Time               string          `json:"time" validate:"omitempty,clock_time"`
	Status             string          `json:"status" validate:"transaction_status"`
	Reference          string          `json:"reference"`
	DestinationAccount string          `json:"destinationAccount,omitempty"`
}

// GetID returns the transaction identifier
func (t Transaction) GetID() string {
	return t.ID
}

// TransactionInput holds the caller-supplied fields of a new transaction
type TransactionInput struct {
	AccountID          string
	CustomerID         string
	AccountNumber      string
	CustomerName       string
	Type               string
	Description        string
	Amount             decimal.Decimal
	Reference          string
	DestinationAccount string
	Status             string
}

// NewTransaction stamps date, time, identifier and reference. Status defaults to completed.
func NewTransaction(in TransactionInput, now time.Time) (*Transaction, error) {
	if in.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if in.Type == TransactionTypeTransfer && in.DestinationAccount == "" {
		return nil, ErrDestinationRequired
	}

	t := &Transaction{
		ID:                 NewID(TransactionIDPrefix),
		AccountID:          in.AccountID,
		CustomerID:         in.CustomerID,
		AccountNumber:      in.AccountNumber,
		CustomerName:       in.CustomerName,
		Type:               in.Type,
		Description:        in.Description,
		Amount:             in.Amount,
		Date:               FormatDate(now),
		Time:               FormatTime(now),
		Status:             in.Status,
		Reference:          in.Reference,
		DestinationAccount: in.DestinationAccount,
	}
	if t.Status == "" {
		t.Status = TransactionStatusCompleted
	}
	if t.Reference == "" {
		t.Reference = GenerateTransactionReference()
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	return validation.GetValidator().Struct(t)
}

// IsCredit reports whether posting the transaction increases the account balance
func (t *Transaction) IsCredit() bool {
	return t.Type == TransactionTypeDeposit || t.Type == TransactionTypeRefund
}

// IsCompleted returns true if the transaction is completed
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// Cancel marks a pending or completed transaction as cancelled
func (t *Transaction) Cancel() error {
	if t.Status != TransactionStatusPending && t.Status != TransactionStatusCompleted {
		return ErrTransactionNotCancellable
	}
	t.Status = TransactionStatusCancelled
	return nil
}

// SetStatus moves the transaction to any known status
func (t *Transaction) SetStatus(status string) error {
	if !IsValidTransactionStatus(status) {
		return ErrInvalidTransactionStatus
	}
	t.Status = status
	return nil
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	for _, v := range validation.TransactionTypes {
		if v == transactionType {
			return true
		}
	}
	return false
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	for _, v := range validation.TransactionStatuses {
		if v == status {
			return true
		}
	}
	return false
}
