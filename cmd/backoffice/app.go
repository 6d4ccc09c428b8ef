package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sort"

	"backoffice/internal/config"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/services"
)

type app struct {
	customers    services.CustomerServiceInterface
	accounts     services.AccountServiceInterface
	transactions services.TransactionServiceInterface
	loans        services.LoanServiceInterface
	dashboard    services.DashboardServiceInterface
	seeder       services.SeederInterface
	migrate      func(ctx context.Context) (*MigrationStatus, error)
	seedDefaults config.SeedConfig
	logger       *slog.Logger
}

type command struct {
	usage   string
	minArgs int
	run     func(ctx context.Context, a *app, args []string) (any, error)
}

var commands = map[string]command{
	"migrate":            {usage: "migrate", run: cmdMigrate},
	"seed":               {usage: "seed [-customers N] [-accounts N] [-transactions N]", run: cmdSeed},
	"reset":              {usage: "reset", run: cmdReset},
	"list":               {usage: "list <collection> [filters]", minArgs: 1, run: cmdList},
	"get":                {usage: "get <collection> <id>", minArgs: 2, run: cmdGet},
	"add":                {usage: "add <collection> <json>", minArgs: 2, run: cmdAdd},
	"update":             {usage: "update <collection> <id> <json>", minArgs: 3, run: cmdUpdate},
	"delete":             {usage: "delete <collection> <id>", minArgs: 2, run: cmdDelete},
	"customer-accounts":  {usage: "customer-accounts <customerId>", minArgs: 1, run: cmdCustomerAccounts},
	"balance":            {usage: "balance <accountId> <amount> credit|debit", minArgs: 3, run: cmdBalance},
	"stats":              {usage: "stats [accounts|transactions|loans|dashboard]", run: cmdStats},
	"close-account":      {usage: "close-account <accountId>", minArgs: 1, run: cmdCloseAccount},
	"approve-loan":       {usage: "approve-loan <loanId>", minArgs: 1, run: cmdApproveLoan},
	"loan-payment":       {usage: "loan-payment <loanId> <amount>", minArgs: 2, run: cmdLoanPayment},
	"cancel-transaction": {usage: "cancel-transaction <transactionId>", minArgs: 1, run: cmdCancelTransaction},
	"post-transaction":   {usage: "post-transaction <json>", minArgs: 1, run: cmdPostTransaction},
	"overview":           {usage: "overview <customerId>", minArgs: 1, run: cmdOverview},
}

// execute runs one command and returns the process exit status
func (a *app) execute(ctx context.Context, traceID string, args []string, stdout, stderr io.Writer) (code int) {
	name := args[0]

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("panic recovered",
				slog.String("trace_id", traceID),
				slog.String("command", name),
				slog.String("panic", fmt.Sprintf("%v", r)),
				slog.String("stack_trace", string(debug.Stack())),
			)
			code = writeError(stderr, apperrors.New(apperrors.SystemInternalError, nil), traceID)
		}
	}()

	cmd, ok := commands[name]
	if !ok {
		return writeError(stderr, apperrors.New(apperrors.SystemInvalidCommand, fmt.Errorf("unknown command %q", name)), traceID)
	}
	if len(args)-1 < cmd.minArgs {
		return writeError(stderr, apperrors.New(apperrors.SystemInvalidCommand, fmt.Errorf("usage: backoffice %s", cmd.usage)), traceID)
	}

	result, err := cmd.run(ctx, a, args[1:])
	if err != nil {
		appErr := services.Classify(err)
		a.logger.Debug("command failed",
			slog.String("command", name),
			slog.String("code", string(appErr.Code)),
			slog.String("error", err.Error()),
		)
		return writeError(stderr, appErr, traceID)
	}

	if err := writeJSON(stdout, result); err != nil {
		a.logger.Error("failed to write output", slog.String("error", err.Error()))
		return 1
	}
	return 0
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeError(w io.Writer, err *apperrors.AppError, traceID string) int {
	response := apperrors.FromAppError(err, traceID)
	if encodeErr := writeJSON(w, response); encodeErr != nil {
		fmt.Fprintln(w, response.String())
	}
	return response.GetExitCode()
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: backoffice <command> [arguments]")
	fmt.Fprintln(w, "\ncollections: customers, accounts, transactions, loans")
	fmt.Fprintln(w, "\ncommands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}
