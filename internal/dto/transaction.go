package dto

import (
	"backoffice/internal/models"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the document accepted by `add transactions`
// and `post-transaction`
type CreateTransactionRequest struct {
	AccountID          string          `json:"accountId" validate:"required"`
	CustomerID         string          `json:"customerId"`
	AccountNumber      string          `json:"accountNumber" validate:"omitempty,account_number"`
	CustomerName       string          `json:"customerName"`
	Type               string          `json:"type" validate:"required,transaction_type"`
	Description        string          `json:"description" validate:"omitempty,max=255"`
	Amount             decimal.Decimal `json:"amount" validate:"gt=0"`
	Reference          string          `json:"reference"`
	DestinationAccount string          `json:"destinationAccount"`
	Status             string          `json:"status" validate:"omitempty,transaction_status"`
}

func (r CreateTransactionRequest) ToInput() models.TransactionInput {
	return models.TransactionInput{
		AccountID:          r.AccountID,
		CustomerID:         r.CustomerID,
		AccountNumber:      r.AccountNumber,
		CustomerName:       r.CustomerName,
		Type:               r.Type,
		Description:        r.Description,
		Amount:             r.Amount,
		Reference:          r.Reference,
		DestinationAccount: r.DestinationAccount,
		Status:             r.Status,
	}
}

// PostTransactionResponse pairs a recorded transaction with the account it moved
type PostTransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
	Account     *models.Account     `json:"account"`
}
