package dto

import (
	"backoffice/internal/models"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest is the document accepted by `add customers`
type CreateCustomerRequest struct {
	Name           string           `json:"name" validate:"required,min=1,max=100"`
	Email          string           `json:"email" validate:"required,email"`
	Phone          string           `json:"phone" validate:"omitempty,max=30"`
	Address        string           `json:"address" validate:"omitempty,max=500"`
	AccountType    string           `json:"accountType" validate:"omitempty,account_type"`
	InitialDeposit *decimal.Decimal `json:"initialDeposit" validate:"omitempty,gte=0"`
}

func (r CreateCustomerRequest) ToInput() models.CustomerInput {
	return models.CustomerInput{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		AccountType:    r.AccountType,
		InitialDeposit: r.InitialDeposit,
	}
}

// DeleteResponse reports a removed record
type DeleteResponse struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Deleted    bool   `json:"deleted"`
}
