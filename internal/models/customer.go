package models

import (
	"strings"
	"time"

	"backoffice/internal/validation"

	"github.com/shopspring/decimal"
)

const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
	CustomerStatusPending  = "pending"
)

// Customer represents a bank customer
type Customer struct {
	ID             string           `json:"id" validate:"required"`
	Name           string           `json:"name" validate:"required"`
	Email          string           `json:"email" validate:"required,email"`
	Phone          string           `json:"phone"`
	Address        string           `json:"address"`
	AccountType    string           `json:"accountType"`
	Status         string           `json:"status" validate:"customer_status"`
	DateAdded      string           `json:"dateAdded" validate:"required,iso_date"`
	ImageSrc       string           `json:"imageSrc,omitempty"`
	InitialDeposit *decimal.Decimal `json:"initialDeposit,omitempty" validate:"omitempty,gte=0"`
	AccountNumber  string           `json:"accountNumber,omitempty"`
}

// GetID returns the customer identifier
func (c Customer) GetID() string {
	return c.ID
}

// CustomerInput holds the caller-supplied fields of a new customer
type CustomerInput struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	AccountType    string
	InitialDeposit *decimal.Decimal
}

// NewCustomer builds an active customer added on the given day
func NewCustomer(in CustomerInput, now time.Time) (*Customer, error) {
	c := &Customer{
		ID:             NewID(CustomerIDPrefix),
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Phone:          in.Phone,
		Address:        in.Address,
		AccountType:    in.AccountType,
		Status:         CustomerStatusActive,
		DateAdded:      FormatDate(now),
		InitialDeposit: in.InitialDeposit,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate validates the customer fields
func (c *Customer) Validate() error {
	return validation.GetValidator().Struct(c)
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}
