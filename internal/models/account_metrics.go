package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// UnknownBucket is the key used in frequency maps for a blank type or status.
const UnknownBucket = "unknown"

// AccountStats is derived from a full scan of the accounts collection.
// TotalBalance includes closed and suspended accounts.
type AccountStats struct {
	TotalAccounts int             `json:"totalAccounts"`
	TotalBalance  decimal.Decimal `json:"totalBalance"`
	TypeCount     map[string]int  `json:"typeCount"`
	StatusCount   map[string]int  `json:"statusCount"`
}

// TransactionStats summarises the transactions collection
type TransactionStats struct {
	TotalTransactions int             `json:"totalTransactions"`
	CompletedVolume   decimal.Decimal `json:"completedVolume"`
	TypeCount         map[string]int  `json:"typeCount"`
	StatusCount       map[string]int  `json:"statusCount"`
}

// LoanStats is the loan portfolio summary
type LoanStats struct {
	TotalLoans        int             `json:"totalLoans"`
	ActiveCount       int             `json:"activeCount"`
	PendingCount      int             `json:"pendingCount"`
	CompletedCount    int             `json:"completedCount"`
	ActivePrincipal   decimal.Decimal `json:"activePrincipal"`
	ActiveAmountPaid  decimal.Decimal `json:"activeAmountPaid"`
	ActiveOutstanding decimal.Decimal `json:"activeOutstanding"`
}

// DashboardStats combines the per-collection summaries
type DashboardStats struct {
	TotalCustomers     int              `json:"totalCustomers"`
	CustomerStatus     map[string]int   `json:"customerStatus"`
	Accounts           AccountStats     `json:"accounts"`
	Transactions       TransactionStats `json:"transactions"`
	Loans              LoanStats        `json:"loans"`
	RecentTransactions []Transaction    `json:"recentTransactions"`
}

// CustomerOverview is one customer with everything that references them
type CustomerOverview struct {
	Customer           Customer        `json:"customer"`
	Accounts           []Account       `json:"accounts"`
	Transactions       []Transaction   `json:"transactions"`
	Loans              []Loan          `json:"loans"`
	TotalBalance       decimal.Decimal `json:"totalBalance"`
	ActiveAccountCount int             `json:"activeAccountCount"`
}

// BucketKey returns value, or UnknownBucket when value is blank
func BucketKey(value string) string {
	if strings.TrimSpace(value) == "" {
		return UnknownBucket
	}
	return value
}
