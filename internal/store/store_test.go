package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"backoffice/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (n note) GetID() string { return n.ID }

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.CollectionSnapshot{}))
	return db
}

type recordingMetrics struct {
	mu       sync.Mutex
	counters []map[string]string
	gauges   map[string]float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{gauges: make(map[string]float64)}
}

func (m *recordingMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters = append(m.counters, tags)
}

func (m *recordingMetrics) RecordProcessingTime(string, time.Duration) {}

func (m *recordingMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[tags["collection"]] = value
}

func (m *recordingMetrics) results(operation string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, tags := range m.counters {
		if tags["operation"] == operation {
			out = append(out, tags["result"])
		}
	}
	return out
}

type StoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	db      *gorm.DB
	backend Backend
	metrics *recordingMetrics
	engine  *Engine
	notes   *Store[note]
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = setupSQLite(s.T())
	s.backend = NewGormBackend(s.db)
	s.metrics = newRecordingMetrics()
	s.engine = NewEngine(s.backend, WithMetrics(s.metrics))
	s.notes = New[note](s.engine, Customers)
}

func (s *StoreTestSuite) version() int64 {
	snap, err := s.backend.Load(s.ctx, Customers)
	s.Require().NoError(err)
	return snap.Version
}

func (s *StoreTestSuite) TestList_EmptyCollection() {
	items, err := s.notes.List(s.ctx)

	s.NoError(err)
	s.NotNil(items)
	s.Empty(items)
}

func (s *StoreTestSuite) TestAdd_PreservesAppendOrder() {
	for i := 1; i <= 5; i++ {
		s.Require().NoError(s.notes.Add(s.ctx, note{ID: fmt.Sprintf("n%d", i), Text: "x"}))
	}

	items, err := s.notes.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 5)
	for i, it := range items {
		s.Equal(fmt.Sprintf("n%d", i+1), it.ID)
	}
	s.Equal(int64(5), s.version())
	s.Equal(float64(5), s.metrics.gauges["customers"])
}

func (s *StoreTestSuite) TestUpdate_ReplacesOnlyMatchingRecord() {
	s.Require().NoError(s.notes.ReplaceAll(s.ctx, []note{{ID: "a", Text: "1"}, {ID: "b", Text: "2"}, {ID: "c", Text: "3"}}))

	s.Require().NoError(s.notes.Update(s.ctx, "b", note{ID: "b", Text: "changed"}))

	items, err := s.notes.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]note{{ID: "a", Text: "1"}, {ID: "b", Text: "changed"}, {ID: "c", Text: "3"}}, items)
}

func (s *StoreTestSuite) TestUpdate_MissingIDLeavesSnapshotUntouched() {
	s.Require().NoError(s.notes.Add(s.ctx, note{ID: "a", Text: "1"}))
	before := s.version()

	err := s.notes.Update(s.ctx, "zzz", note{ID: "zzz"})

	s.ErrorIs(err, ErrNotFound)
	s.Equal(before, s.version())
	items, _ := s.notes.List(s.ctx)
	s.Equal([]note{{ID: "a", Text: "1"}}, items)
	s.Contains(s.metrics.results("update"), ResultNotFound)
}

func (s *StoreTestSuite) TestDelete() {
	s.Require().NoError(s.notes.ReplaceAll(s.ctx, []note{{ID: "a"}, {ID: "b"}, {ID: "c"}}))

	s.Require().NoError(s.notes.Delete(s.ctx, "b"))

	items, err := s.notes.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]note{{ID: "a"}, {ID: "c"}}, items)
}

func (s *StoreTestSuite) TestDelete_MissingID() {
	s.Require().NoError(s.notes.ReplaceAll(s.ctx, []note{{ID: "a"}}))
	before := s.version()

	s.ErrorIs(s.notes.Delete(s.ctx, "b"), ErrNotFound)
	s.Equal(before, s.version())

	count, err := s.notes.Count(s.ctx)
	s.NoError(err)
	s.Equal(1, count)
}

func (s *StoreTestSuite) TestReplaceAll_OverwritesAndAcceptsEmpty() {
	s.Require().NoError(s.notes.ReplaceAll(s.ctx, []note{{ID: "a"}, {ID: "b"}}))
	s.Require().NoError(s.notes.ReplaceAll(s.ctx, nil))

	items, err := s.notes.List(s.ctx)
	s.NoError(err)
	s.NotNil(items)
	s.Empty(items)
	s.Equal(int64(2), s.version())
}

func (s *StoreTestSuite) TestGetAndFind() {
	s.Require().NoError(s.notes.ReplaceAll(s.ctx, []note{{ID: "a", Text: "keep"}, {ID: "b", Text: "drop"}, {ID: "c", Text: "keep"}}))

	got, err := s.notes.Get(s.ctx, "c")
	s.NoError(err)
	s.Equal("keep", got.Text)

	_, err = s.notes.Get(s.ctx, "x")
	s.ErrorIs(err, ErrNotFound)

	found, err := s.notes.Find(s.ctx, func(n note) bool { return n.Text == "keep" })
	s.NoError(err)
	s.Equal([]note{{ID: "a", Text: "keep"}, {ID: "c", Text: "keep"}}, found)
}

func (s *StoreTestSuite) TestModify() {
	s.Require().NoError(s.notes.Add(s.ctx, note{ID: "a", Text: "1"}))

	updated, err := s.notes.Modify(s.ctx, "a", func(n *note) error {
		n.Text = "2"
		return nil
	})
	s.Require().NoError(err)
	s.Equal("2", updated.Text)

	boom := errors.New("rule violated")
	_, err = s.notes.Modify(s.ctx, "a", func(n *note) error { return boom })
	s.ErrorIs(err, boom)

	_, err = s.notes.Modify(s.ctx, "missing", func(n *note) error { return nil })
	s.ErrorIs(err, ErrNotFound)

	got, _ := s.notes.Get(s.ctx, "a")
	s.Equal("2", got.Text)
}

func (s *StoreTestSuite) TestCollectionsAreIndependent() {
	loans := New[note](s.engine, Loans)
	s.Require().NoError(s.notes.Add(s.ctx, note{ID: "a"}))
	s.Require().NoError(loans.Add(s.ctx, note{ID: "l"}))

	counts, err := s.engine.Counts(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[Collection]int{Customers: 1, Accounts: 0, Transactions: 0, Loans: 1}, counts)

	s.Require().NoError(s.engine.Reset(s.ctx, Loans))
	items, _ := loans.List(s.ctx)
	s.Empty(items)
	items, _ = s.notes.List(s.ctx)
	s.Len(items, 1)
}

func (s *StoreTestSuite) TestResetAll() {
	s.Require().NoError(s.notes.Add(s.ctx, note{ID: "a"}))
	s.Require().NoError(s.engine.ResetAll(s.ctx))

	count, err := s.notes.Count(s.ctx)
	s.NoError(err)
	s.Zero(count)
}

func (s *StoreTestSuite) TestMalformedPayloadIsPersistenceError() {
	s.Require().NoError(s.db.Create(&models.CollectionSnapshot{
		Name:      string(Customers),
		Payload:   `{"not":"an array"}`,
		Version:   1,
		UpdatedAt: time.Now(),
	}).Error)

	_, err := s.notes.List(s.ctx)
	s.ErrorIs(err, ErrPersistence)

	err = s.notes.Add(s.ctx, note{ID: "a"})
	s.ErrorIs(err, ErrPersistence)
	s.Equal(int64(1), s.version())
	s.Contains(s.metrics.results("add"), ResultError)
}

func (s *StoreTestSuite) TestUnknownCollection() {
	bogus := New[note](s.engine, Collection("ledgers"))
	s.ErrorIs(bogus.Add(s.ctx, note{ID: "a"}), ErrUnknownCollection)
	s.ErrorIs(s.engine.Reset(s.ctx, Collection("ledgers")), ErrUnknownCollection)
}

func (s *StoreTestSuite) TestConcurrentWritersAcrossEngines() {
	other := New[note](NewEngine(s.backend, WithMaxRetries(100)), Customers)
	mine := New[note](NewEngine(s.backend, WithMaxRetries(100)), Customers)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.NoError(mine.Add(s.ctx, note{ID: fmt.Sprintf("m%d", i)}))
		}(i)
		go func(i int) {
			defer wg.Done()
			s.NoError(other.Add(s.ctx, note{ID: fmt.Sprintf("o%d", i)}))
		}(i)
	}
	wg.Wait()

	count, err := s.notes.Count(s.ctx)
	s.NoError(err)
	s.Equal(20, count)
}

func (s *StoreTestSuite) TestRoundTripAccount() {
	accounts := New[models.Account](s.engine, Accounts)
	original := models.Account{
		ID:               "A-1",
		CustomerID:       "C1",
		AccountNumber:    "ACT0000042",
		Type:             models.AccountTypeMoneyMarket,
		Balance:          decimal.RequireFromString("100.50"),
		Status:           models.AccountStatusSuspended,
		OpenDate:         "2024-06-01",
		LastActivityDate: "2025-01-05",
	}
	s.Require().NoError(accounts.Add(s.ctx, original))

	items, err := accounts.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)

	want, _ := json.Marshal(original)
	got, _ := json.Marshal(items[0])
	s.JSONEq(string(want), string(got))
	s.True(original.Balance.Equal(items[0].Balance))
}

// conflictingBackend reports a version conflict on the first n saves.
type conflictingBackend struct {
	Backend
	mu        sync.Mutex
	conflicts int
	saves     int
}

func (b *conflictingBackend) Save(ctx context.Context, c Collection, payload []byte, count int, expected int64) (int64, error) {
	b.mu.Lock()
	b.saves++
	if b.conflicts > 0 {
		b.conflicts--
		b.mu.Unlock()
		return 0, ErrVersionConflict
	}
	b.mu.Unlock()
	return b.Backend.Save(ctx, c, payload, count, expected)
}

func TestStore_RetriesVersionConflicts(t *testing.T) {
	backend := &conflictingBackend{Backend: NewMemoryBackend(), conflicts: 3}
	notes := New[note](NewEngine(backend, WithMaxRetries(3)), Accounts)

	require.NoError(t, notes.Add(context.Background(), note{ID: "a"}))
	assert.Equal(t, 4, backend.saves)
}

func TestStore_GivesUpAfterMaxRetries(t *testing.T) {
	backend := &conflictingBackend{Backend: NewMemoryBackend(), conflicts: 10}
	metrics := newRecordingMetrics()
	notes := New[note](NewEngine(backend, WithMaxRetries(2), WithMetrics(metrics)), Accounts)

	err := notes.Add(context.Background(), note{ID: "a"})

	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.Equal(t, 3, backend.saves)
	assert.Equal(t, []string{ResultConflict}, metrics.results("add"))
}

func TestStore_CancelledContext(t *testing.T) {
	notes := New[note](NewEngine(NewMemoryBackend()), Transactions)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, notes.Add(ctx, note{ID: "a"}), context.Canceled)
}

func TestMemoryBackend_VersionCheck(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	v, err := b.Save(ctx, Loans, []byte(`[]`), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = b.Save(ctx, Loans, []byte(`[]`), 0, 0)
	assert.ErrorIs(t, err, ErrVersionConflict)

	require.NoError(t, b.Reset(ctx, Loans))
	snap, err := b.Load(ctx, Loans)
	require.NoError(t, err)
	assert.Zero(t, snap.Version)
}

func TestGormBackend_InsertConflict(t *testing.T) {
	ctx := context.Background()
	b := NewGormBackend(setupSQLite(t))

	_, err := b.Save(ctx, Accounts, []byte(`[]`), 0, 0)
	require.NoError(t, err)

	_, err = b.Save(ctx, Accounts, []byte(`[{"id":"x"}]`), 1, 0)
	assert.ErrorIs(t, err, ErrVersionConflict)

	_, err = b.Save(ctx, Accounts, []byte(`[{"id":"x"}]`), 1, 7)
	assert.ErrorIs(t, err, ErrVersionConflict)

	v, err := b.Save(ctx, Accounts, []byte(`[{"id":"x"}]`), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	snap, err := b.Load(ctx, Accounts)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Count)
	assert.JSONEq(t, `[{"id":"x"}]`, string(snap.Payload))
}

func TestParseCollection(t *testing.T) {
	for _, c := range AllCollections {
		parsed, err := ParseCollection(string(c))
		assert.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := ParseCollection("users")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}
