package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountFilters contains filter criteria for account queries
type AccountFilters struct {
	CustomerID string
	Status     string
	Type       string
	Search     string
	MinBalance *decimal.Decimal
	MaxBalance *decimal.Decimal
}

// Matches reports whether a passes every set criterion. Search matches the
// account number or id case-insensitively.
func (f AccountFilters) Matches(a Account) bool {
	if f.CustomerID != "" && a.CustomerID != f.CustomerID {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Type != "" && a.Type != f.Type {
		return false
	}
	if f.MinBalance != nil && a.Balance.LessThan(*f.MinBalance) {
		return false
	}
	if f.MaxBalance != nil && a.Balance.GreaterThan(*f.MaxBalance) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.AccountNumber), q) && !strings.Contains(strings.ToLower(a.ID), q) {
			return false
		}
	}
	return true
}
