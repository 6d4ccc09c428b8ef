package models

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const (
	// DateLayout is the calendar-date format stored in every record.
	DateLayout = time.DateOnly
	// TimeLayout is the wall-clock format of Transaction.Time.
	TimeLayout = time.TimeOnly

	AccountNumberPrefix        = "ACT"
	TransactionReferencePrefix = "TRX"

	CustomerIDPrefix    = "C-"
	AccountIDPrefix     = "A-"
	TransactionIDPrefix = "T-"
	LoanIDPrefix        = "L-"
)

// NewID returns prefix followed by a random UUID.
func NewID(prefix string) string {
	return prefix + uuid.NewString()
}

// GenerateAccountNumber returns "ACT" and 7 zero-padded random digits.
// Uniqueness against stored accounts is checked by the account service.
func GenerateAccountNumber() string {
	return fmt.Sprintf("%s%07d", AccountNumberPrefix, rand.IntN(10_000_000))
}

// GenerateTransactionReference returns "TRX" and 8 random digits without a leading zero.
func GenerateTransactionReference() string {
	return fmt.Sprintf("%s%d", TransactionReferencePrefix, 10_000_000+rand.IntN(90_000_000))
}

// FormatDate renders t as a stored calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime renders the wall-clock part of t.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseDate parses a stored calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// AddMonths moves a stored date forward by n calendar months.
func AddMonths(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, n, 0)), nil
}
