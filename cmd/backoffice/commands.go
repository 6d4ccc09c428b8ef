package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"backoffice/internal/dto"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/models"
	"backoffice/internal/store"
	"backoffice/internal/validation"

	"github.com/shopspring/decimal"
)

func cmdMigrate(ctx context.Context, a *app, _ []string) (any, error) {
	return a.migrate(ctx)
}

func cmdSeed(ctx context.Context, a *app, args []string) (any, error) {
	fs := newFlagSet("seed")
	customers := fs.Int("customers", a.seedDefaults.Customers, "number of customers")
	accounts := fs.Int("accounts", a.seedDefaults.AccountsPerCustomer, "accounts per customer")
	transactions := fs.Int("transactions", a.seedDefaults.TransactionsPerAcct, "transactions per account")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	return a.seeder.SeedDemoData(ctx, *customers, *accounts, *transactions)
}

func cmdReset(ctx context.Context, a *app, _ []string) (any, error) {
	if err := a.seeder.ResetAll(ctx); err != nil {
		return nil, err
	}
	return map[string]bool{"reset": true}, nil
}

func cmdList(ctx context.Context, a *app, args []string) (any, error) {
	collection, err := store.ParseCollection(args[0])
	if err != nil {
		return nil, err
	}

	switch collection {
	case store.Customers:
		return a.customers.ListCustomers(ctx)
	case store.Accounts:
		filters, err := parseAccountFilters(args[1:])
		if err != nil {
			return nil, err
		}
		return a.accounts.GetAllAccounts(ctx, filters)
	case store.Transactions:
		filters, err := parseTransactionFilters(args[1:])
		if err != nil {
			return nil, err
		}
		return a.transactions.ListTransactions(ctx, filters)
	default:
		return a.loans.ListLoans(ctx)
	}
}

func cmdGet(ctx context.Context, a *app, args []string) (any, error) {
	collection, err := store.ParseCollection(args[0])
	if err != nil {
		return nil, err
	}
	id := args[1]

	switch collection {
	case store.Customers:
		return a.customers.GetCustomer(ctx, id)
	case store.Accounts:
		return a.accounts.GetAccount(ctx, id)
	case store.Transactions:
		return a.transactions.GetTransaction(ctx, id)
	default:
		return a.loans.GetLoan(ctx, id)
	}
}

func cmdAdd(ctx context.Context, a *app, args []string) (any, error) {
	collection, err := store.ParseCollection(args[0])
	if err != nil {
		return nil, err
	}
	body := args[1]

	switch collection {
	case store.Customers:
		var req dto.CreateCustomerRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return a.customers.CreateCustomer(ctx, req.ToInput())
	case store.Accounts:
		var req dto.CreateAccountRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return a.accounts.CreateAccount(ctx, req.CustomerID, req.Type, req.InitialBalance)
	case store.Transactions:
		var req dto.CreateTransactionRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return a.transactions.CreateTransaction(ctx, req.ToInput())
	default:
		var req dto.CreateLoanRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return a.loans.CreateLoanApplication(ctx, req.ToInput())
	}
}

func cmdUpdate(ctx context.Context, a *app, args []string) (any, error) {
	collection, err := store.ParseCollection(args[0])
	if err != nil {
		return nil, err
	}
	id, body := args[1], args[2]

	switch collection {
	case store.Customers:
		var customer models.Customer
		if err := decodeRecord(body, &customer); err != nil {
			return nil, err
		}
		return &customer, a.customers.UpdateCustomer(ctx, id, &customer)
	case store.Accounts:
		var account models.Account
		if err := decodeRecord(body, &account); err != nil {
			return nil, err
		}
		return &account, a.accounts.UpdateAccount(ctx, id, &account)
	case store.Transactions:
		var transaction models.Transaction
		if err := decodeRecord(body, &transaction); err != nil {
			return nil, err
		}
		return &transaction, a.transactions.UpdateTransaction(ctx, id, &transaction)
	default:
		var loan models.Loan
		if err := decodeRecord(body, &loan); err != nil {
			return nil, err
		}
		return &loan, a.loans.UpdateLoan(ctx, id, &loan)
	}
}

func cmdDelete(ctx context.Context, a *app, args []string) (any, error) {
	collection, err := store.ParseCollection(args[0])
	if err != nil {
		return nil, err
	}
	id := args[1]

	switch collection {
	case store.Customers:
		err = a.customers.DeleteCustomer(ctx, id)
	case store.Accounts:
		err = a.accounts.DeleteAccount(ctx, id)
	case store.Transactions:
		err = a.transactions.DeleteTransaction(ctx, id)
	default:
		err = a.loans.DeleteLoan(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return &dto.DeleteResponse{Collection: collection.String(), ID: id, Deleted: true}, nil
}

func cmdCustomerAccounts(ctx context.Context, a *app, args []string) (any, error) {
	return a.accounts.GetCustomerAccounts(ctx, args[0])
}

func cmdBalance(ctx context.Context, a *app, args []string) (any, error) {
	amount, err := parseAmount("amount", args[1])
	if err != nil {
		return nil, err
	}

	req := dto.BalanceChangeRequest{
		AccountID: args[0],
		Amount:    amount,
		Direction: strings.ToLower(args[2]),
	}
	if err := validation.GetValidator().Struct(req); err != nil {
		return nil, err
	}
	return a.accounts.UpdateAccountBalance(ctx, req.AccountID, req.Amount, req.IsCredit())
}

func cmdStats(ctx context.Context, a *app, args []string) (any, error) {
	kind := "dashboard"
	if len(args) > 0 {
		kind = args[0]
	}

	switch kind {
	case "accounts":
		return a.accounts.GetAccountStats(ctx)
	case "transactions":
		return a.transactions.GetTransactionStats(ctx)
	case "loans":
		return a.loans.GetLoanStats(ctx)
	case "dashboard":
		return a.dashboard.GetDashboardStats(ctx)
	default:
		return nil, apperrors.New(apperrors.SystemInvalidCommand, fmt.Errorf("unknown stats kind %q", kind))
	}
}

func cmdCloseAccount(ctx context.Context, a *app, args []string) (any, error) {
	return a.accounts.CloseAccount(ctx, args[0])
}

func cmdApproveLoan(ctx context.Context, a *app, args []string) (any, error) {
	return a.loans.ApproveLoan(ctx, args[0])
}

func cmdLoanPayment(ctx context.Context, a *app, args []string) (any, error) {
	amount, err := parseAmount("amount", args[1])
	if err != nil {
		return nil, err
	}
	return a.loans.ApplyPayment(ctx, args[0], amount)
}

func cmdCancelTransaction(ctx context.Context, a *app, args []string) (any, error) {
	return a.transactions.CancelTransaction(ctx, args[0])
}

func cmdPostTransaction(ctx context.Context, a *app, args []string) (any, error) {
	var req dto.CreateTransactionRequest
	if err := decodeRequest(args[0], &req); err != nil {
		return nil, err
	}

	transaction, account, err := a.transactions.PostTransaction(ctx, req.ToInput())
	if err != nil {
		return nil, err
	}
	return &dto.PostTransactionResponse{Transaction: transaction, Account: account}, nil
}

func cmdOverview(ctx context.Context, a *app, args []string) (any, error) {
	return a.customers.GetCustomerOverview(ctx, args[0])
}

func parseAccountFilters(args []string) (models.AccountFilters, error) {
	var filters models.AccountFilters
	var minBalance, maxBalance string

	fs := newFlagSet("list accounts")
	fs.StringVar(&filters.CustomerID, "customer", "", "customer id")
	fs.StringVar(&filters.Status, "status", "", "account status")
	fs.StringVar(&filters.Type, "type", "", "account type")
	fs.StringVar(&filters.Search, "search", "", "account number or id fragment")
	fs.StringVar(&minBalance, "min-balance", "", "minimum balance")
	fs.StringVar(&maxBalance, "max-balance", "", "maximum balance")
	if err := parseFlags(fs, args); err != nil {
		return filters, err
	}

	var err error
	if filters.MinBalance, err = parseOptionalAmount("min-balance", minBalance); err != nil {
		return filters, err
	}
	if filters.MaxBalance, err = parseOptionalAmount("max-balance", maxBalance); err != nil {
		return filters, err
	}
	return filters, nil
}

func parseTransactionFilters(args []string) (models.TransactionFilters, error) {
	var filters models.TransactionFilters
	var minAmount, maxAmount string

	fs := newFlagSet("list transactions")
	fs.StringVar(&filters.AccountID, "account", "", "account id")
	fs.StringVar(&filters.CustomerID, "customer", "", "customer id")
	fs.StringVar(&filters.Type, "type", "", "transaction type")
	fs.StringVar(&filters.Status, "status", "", "transaction status")
	fs.StringVar(&filters.StartDate, "from", "", "first date, YYYY-MM-DD")
	fs.StringVar(&filters.EndDate, "to", "", "last date, YYYY-MM-DD")
	fs.StringVar(&minAmount, "min-amount", "", "minimum amount")
	fs.StringVar(&maxAmount, "max-amount", "", "maximum amount")
	fs.IntVar(&filters.Limit, "limit", 0, "maximum number of transactions, newest first")
	if err := parseFlags(fs, args); err != nil {
		return filters, err
	}

	var err error
	if filters.MinAmount, err = parseOptionalAmount("min-amount", minAmount); err != nil {
		return filters, err
	}
	if filters.MaxAmount, err = parseOptionalAmount("max-amount", maxAmount); err != nil {
		return filters, err
	}
	if filters.Limit < 0 {
		return filters, validation.FieldError("limit", "must not be negative")
	}
	return filters, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return apperrors.New(apperrors.SystemInvalidCommand, fmt.Errorf("%s: %w", fs.Name(), err))
	}
	if fs.NArg() > 0 {
		return apperrors.New(apperrors.SystemInvalidCommand, fmt.Errorf("%s: unexpected argument %q", fs.Name(), fs.Arg(0)))
	}
	return nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, validation.FieldError(field, "must be a decimal number")
	}
	return amount, nil
}

func parseOptionalAmount(field, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	amount, err := parseAmount(field, raw)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// decodeRequest reads a create document and checks its tags
func decodeRequest(body string, v any) error {
	if err := decodeRecord(body, v); err != nil {
		return err
	}
	return validation.GetValidator().Struct(v)
}

// decodeRecord reads a full record. Unknown fields are rejected.
func decodeRecord(body string, v any) error {
	dec := json.NewDecoder(strings.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed json: %v", validation.ErrInvalid, err)
	}
	return nil
}
