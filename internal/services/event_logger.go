package services

import (
	"context"
	"log/slog"
	"time"
)

type correlationIDKey struct{}

// WithCorrelationID tags ctx so every event logged under it carries id
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// EventLogger writes one structured record per domain event
type EventLogger struct {
	logger *slog.Logger
}

func NewEventLogger(logger *slog.Logger) EventLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventLogger{
		logger: logger,
	}
}

func (el *EventLogger) info(ctx context.Context, msg, eventType string, attrs ...slog.Attr) {
	el.log(ctx, slog.LevelInfo, msg, eventType, attrs...)
}

func (el *EventLogger) log(ctx context.Context, level slog.Level, msg, eventType string, attrs ...slog.Attr) {
	base := []slog.Attr{
		slog.String("event_type", eventType),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}
	el.logger.LogAttrs(ctx, level, msg, append(base, attrs...)...)
}

func (el *EventLogger) LogCustomerCreated(ctx context.Context, customerID string) {
	el.info(ctx, "customer created", "customer_created",
		slog.String("customer_id", customerID),
	)
}

func (el *EventLogger) LogCustomerUpdated(ctx context.Context, customerID string) {
	el.info(ctx, "customer updated", "customer_updated",
		slog.String("customer_id", customerID),
	)
}

// LogCustomerDeleted is logged at warn level; accounts keep pointing at the removed id.
func (el *EventLogger) LogCustomerDeleted(ctx context.Context, customerID string) {
	el.log(ctx, slog.LevelWarn, "customer deleted", "customer_deleted",
		slog.String("customer_id", customerID),
	)
}

func (el *EventLogger) LogAccountCreated(ctx context.Context, accountID, customerID, accountType string) {
	el.info(ctx, "account created", "account_created",
		slog.String("account_id", accountID),
		slog.String("customer_id", customerID),
		slog.String("account_type", accountType),
	)
}

func (el *EventLogger) LogAccountClosed(ctx context.Context, accountID string) {
	el.info(ctx, "account closed", "account_closed",
		slog.String("account_id", accountID),
	)
}

func (el *EventLogger) LogAccountDeleted(ctx context.Context, accountID string) {
	el.log(ctx, slog.LevelWarn, "account deleted", "account_deleted",
		slog.String("account_id", accountID),
	)
}

func (el *EventLogger) LogBalanceUpdate(ctx context.Context, accountID, oldBalance, newBalance string, isCredit bool) {
	direction := "debit"
	if isCredit {
		direction = "credit"
	}
	el.info(ctx, "balance update", "balance_update",
		slog.String("account_id", accountID),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.String("direction", direction),
	)
}

func (el *EventLogger) LogTransactionCreated(ctx context.Context, transactionID, accountID, transactionType, amount string) {
	el.info(ctx, "transaction created", "transaction_created",
		slog.String("transaction_id", transactionID),
		slog.String("account_id", accountID),
		slog.String("transaction_type", transactionType),
		slog.String("amount", amount),
	)
}

func (el *EventLogger) LogTransactionStatusChange(ctx context.Context, transactionID, oldStatus, newStatus string) {
	el.info(ctx, "transaction state change", "transaction_state_change",
		slog.String("transaction_id", transactionID),
		slog.String("old_status", oldStatus),
		slog.String("new_status", newStatus),
	)
}

func (el *EventLogger) LogLoanApplication(ctx context.Context, loanID, customerID, amount string) {
	el.info(ctx, "loan application submitted", "loan_application",
		slog.String("loan_id", loanID),
		slog.String("customer_id", customerID),
		slog.String("amount", amount),
	)
}

func (el *EventLogger) LogLoanApproved(ctx context.Context, loanID string) {
	el.info(ctx, "loan approved", "loan_approved",
		slog.String("loan_id", loanID),
	)
}

func (el *EventLogger) LogLoanPayment(ctx context.Context, loanID, amount, remaining string, completed bool) {
	el.info(ctx, "loan payment applied", "loan_payment",
		slog.String("loan_id", loanID),
		slog.String("amount", amount),
		slog.String("remaining", remaining),
		slog.Bool("completed", completed),
	)
}

func (el *EventLogger) LogDemoDataSeeded(ctx context.Context, summary *SeedSummary, durationMs int64) {
	el.info(ctx, "demo data seeded", "demo_data_seeded",
		slog.Int("customers", summary.Customers),
		slog.Int("accounts", summary.Accounts),
		slog.Int("transactions", summary.Transactions),
		slog.Int("loans", summary.Loans),
		slog.Int64("duration_ms", durationMs),
	)
}

func (el *EventLogger) LogCollectionsReset(ctx context.Context) {
	el.log(ctx, slog.LevelWarn, "collections reset", "collections_reset")
}
