package dto

import (
	"backoffice/internal/models"

	"github.com/shopspring/decimal"
)

// CreateLoanRequest is the document accepted by `add loans`
type CreateLoanRequest struct {
	AccountID    string          `json:"accountId" validate:"required"`
	Type         string          `json:"type" validate:"required,max=50"`
	Amount       decimal.Decimal `json:"amount" validate:"gt=0"`
	InterestRate decimal.Decimal `json:"interestRate" validate:"gte=0"`
	Term         int             `json:"term" validate:"min=1,max=480"`
	Purpose      string          `json:"purpose" validate:"omitempty,max=255"`
}

func (r CreateLoanRequest) ToInput() models.LoanInput {
	return models.LoanInput{
		AccountID:    r.AccountID,
		Type:         r.Type,
		Amount:       r.Amount,
		InterestRate: r.InterestRate,
		Term:         r.Term,
		Purpose:      r.Purpose,
	}
}
