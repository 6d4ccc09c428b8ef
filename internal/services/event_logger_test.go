package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureEvents(t *testing.T) (EventLoggerInterface, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewEventLogger(logger), &buf
}

func decodeEvents(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var event map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &event))
		events = append(events, event)
	}
	return events
}

func TestEventLogger_BalanceUpdate(t *testing.T) {
	events, buf := captureEvents(t)
	ctx := WithCorrelationID(context.Background(), "req-42")

	events.LogBalanceUpdate(ctx, "A-1", "100.00", "150.00", true)

	logged := decodeEvents(t, buf)
	require.Len(t, logged, 1)
	assert.Equal(t, "balance update", logged[0]["msg"])
	assert.Equal(t, "balance_update", logged[0]["event_type"])
	assert.Equal(t, "req-42", logged[0]["correlation_id"])
	assert.Equal(t, "credit", logged[0]["direction"])
	assert.Equal(t, "150.00", logged[0]["new_balance"])
}

func TestEventLogger_DeletionsAreWarnings(t *testing.T) {
	events, buf := captureEvents(t)

	events.LogCustomerDeleted(context.Background(), "C-1")
	events.LogAccountDeleted(context.Background(), "A-1")
	events.LogCollectionsReset(context.Background())

	for _, event := range decodeEvents(t, buf) {
		assert.Equal(t, "WARN", event["level"])
		assert.Equal(t, "", event["correlation_id"])
	}
}

func TestEventLogger_SeedSummary(t *testing.T) {
	events, buf := captureEvents(t)

	events.LogDemoDataSeeded(context.Background(), &SeedSummary{Customers: 2, Accounts: 4, Transactions: 8, Loans: 1}, 12)

	logged := decodeEvents(t, buf)
	require.Len(t, logged, 1)
	assert.Equal(t, "demo_data_seeded", logged[0]["event_type"])
	assert.EqualValues(t, 4, logged[0]["accounts"])
	assert.EqualValues(t, 12, logged[0]["duration_ms"])
}

func TestNewEventLogger_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NewEventLogger(nil).LogLoanApproved(context.Background(), "L-1")
	})
}
