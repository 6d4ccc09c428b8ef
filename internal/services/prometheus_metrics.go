package services

import (
	"time"

	"backoffice/internal/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Service-level metric names reported through MetricsRecorderInterface.
const (
	MetricBalanceUpdates      = "account_balance_update"
	MetricAccountsCreated     = "account_created"
	MetricCustomersCreated    = "customer_created"
	MetricCustomersDeleted    = "customer_deleted"
	MetricTransactionsCreated = "transaction_created"
	MetricLoanEvents          = "loan_event"
	MetricSeedDuration        = "seed_duration"
)

type PrometheusMetrics struct {
	storeOperations        *prometheus.CounterVec
	storeOperationDuration prometheus.Histogram
	storeCollectionItems   *prometheus.GaugeVec
	balanceUpdates         *prometheus.CounterVec
	accountsCreated        *prometheus.CounterVec
	customersCreated       prometheus.Counter
	customersDeleted       prometheus.Counter
	transactionsCreated    *prometheus.CounterVec
	loanEvents             *prometheus.CounterVec
	seedDuration           prometheus.Histogram
}

// NewPrometheusMetrics registers the collectors on reg. A nil reg uses the
// default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		storeOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_operations_total",
				Help: "Total number of collection store operations",
			},
			[]string{"collection", "operation", "result"},
		),
		storeOperationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "store_operation_duration_seconds",
				Help:    "Collection store operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		storeCollectionItems: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "store_collection_items",
				Help: "Number of records in each collection after the last write",
			},
			[]string{"collection"},
		),
		balanceUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_balance_updates_total",
				Help: "Total number of account balance updates",
			},
			[]string{"direction"},
		),
		accountsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_created_total",
				Help: "Total number of accounts opened by type",
			},
			[]string{"type"},
		),
		customersCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_created_total",
				Help: "Total number of customers created",
			},
		),
		customersDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_deleted_total",
				Help: "Total number of customers deleted",
			},
		),
		transactionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_created_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type", "status"},
		),
		loanEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loan_events_total",
				Help: "Total number of loan lifecycle events",
			},
			[]string{"event"},
		),
		seedDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "seed_duration_milliseconds",
				Help:    "Demo data seeding duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case store.MetricOperations:
		m.storeOperations.WithLabelValues(tags["collection"], tags["operation"], tags["result"]).Inc()
	case MetricBalanceUpdates:
		if direction := tags["direction"]; direction != "" {
			m.balanceUpdates.WithLabelValues(direction).Inc()
		}
	case MetricAccountsCreated:
		m.accountsCreated.WithLabelValues(tags["type"]).Inc()
	case MetricCustomersCreated:
		m.customersCreated.Inc()
	case MetricCustomersDeleted:
		m.customersDeleted.Inc()
	case MetricTransactionsCreated:
		m.transactionsCreated.WithLabelValues(tags["type"], tags["status"]).Inc()
	case MetricLoanEvents:
		if event := tags["event"]; event != "" {
			m.loanEvents.WithLabelValues(event).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case store.MetricOperationDuration:
		m.storeOperationDuration.Observe(duration.Seconds())
	case MetricSeedDuration:
		m.seedDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case store.MetricCollectionItems:
		if collection := tags["collection"]; collection != "" {
			m.storeCollectionItems.WithLabelValues(collection).Set(value)
		}
	}
}

type noopMetrics struct{}

// NewNoopMetrics returns a recorder that discards everything
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
