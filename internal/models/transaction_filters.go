package models

import (
	"github.com/shopspring/decimal"
)

// TransactionFilters contains filtering options for transaction queries.
// Dates compare as YYYY-MM-DD strings.
type TransactionFilters struct {
	AccountID  string
	CustomerID string
	Type       string
	Status     string
	StartDate  string
	EndDate    string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Limit      int
}

// Matches reports whether t passes every set criterion except Limit
func (f TransactionFilters) Matches(t Transaction) bool {
	if f.AccountID != "" && t.AccountID != f.AccountID {
		return false
	}
	if f.CustomerID != "" && t.CustomerID != f.CustomerID {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.StartDate != "" && t.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && t.Date > f.EndDate {
		return false
	}
	if f.MinAmount != nil && t.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && t.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}
