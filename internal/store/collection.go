package store

import (
	"fmt"
)

// Collection names one independently persisted record set.
type Collection string

const (
	Customers    Collection = "customers"
	Accounts     Collection = "accounts"
	Transactions Collection = "transactions"
	Loans        Collection = "loans"
)

// AllCollections lists every collection in a stable order.
var AllCollections = []Collection{Customers, Accounts, Transactions, Loans}

// Valid reports whether c is one of the known collections
func (c Collection) Valid() bool {
	switch c {
	case Customers, Accounts, Transactions, Loans:
		return true
	default:
		return false
	}
}

func (c Collection) String() string {
	return string(c)
}

// ParseCollection converts a name into a Collection
func ParseCollection(name string) (Collection, error) {
	c := Collection(name)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return c, nil
}
