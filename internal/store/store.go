package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrPersistence       = errors.New("persistence operation failed")
	ErrVersionConflict   = errors.New("collection was modified concurrently")
	ErrUnknownCollection = errors.New("unknown collection")
)

// DefaultMaxRetries bounds how often a read-modify-write is retried after a
// version conflict.
const DefaultMaxRetries = 5

// Metric names reported through MetricsRecorder.
const (
	MetricOperations        = "store_operation"
	MetricOperationDuration = "store_operation_duration"
	MetricCollectionItems   = "store_collection_items"
)

// Operation result tags.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultConflict = "conflict"
	ResultError    = "error"
)

// Record is anything stored in a collection
type Record interface {
	GetID() string
}

// MetricsRecorder receives store operation metrics
type MetricsRecorder interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

// Engine owns the backend handle and serialises writers per collection
// inside one process. Writers in other processes are detected through the
// snapshot version.
type Engine struct {
	backend    Backend
	logger     *slog.Logger
	metrics    MetricsRecorder
	maxRetries int

	mu    sync.Mutex
	locks map[Collection]*sync.Mutex
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for persistence failures
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder
func WithMetrics(metrics MetricsRecorder) Option {
	return func(e *Engine) {
		if metrics != nil {
			e.metrics = metrics
		}
	}
}

// WithMaxRetries sets how many times a conflicting write is retried
func WithMaxRetries(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxRetries = n
		}
	}
}

// NewEngine creates an Engine over backend
func NewEngine(backend Backend, opts ...Option) *Engine {
	e := &Engine{
		backend:    backend,
		logger:     slog.Default(),
		metrics:    noopMetrics{},
		maxRetries: DefaultMaxRetries,
		locks:      make(map[Collection]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) lock(c Collection) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.locks[c]
	if !ok {
		l = &sync.Mutex{}
		e.locks[c] = l
	}
	return l
}

// Reset removes the persisted snapshot of c
func (e *Engine) Reset(ctx context.Context, c Collection) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}

	l := e.lock(c)
	l.Lock()
	defer l.Unlock()

	if err := e.backend.Reset(ctx, c); err != nil {
		e.logger.ErrorContext(ctx, "collection reset failed",
			slog.String("collection", c.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: reset %s: %w", ErrPersistence, c, err)
	}
	e.metrics.RecordGauge(MetricCollectionItems, 0, map[string]string{"collection": c.String()})
	return nil
}

// ResetAll resets every collection
func (e *Engine) ResetAll(ctx context.Context) error {
	for _, c := range AllCollections {
		if err := e.Reset(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// Counts returns the persisted item count of every collection without decoding payloads
func (e *Engine) Counts(ctx context.Context) (map[Collection]int, error) {
	counts := make(map[Collection]int, len(AllCollections))
	for _, c := range AllCollections {
		snap, err := e.backend.Load(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("%w: load %s: %w", ErrPersistence, c, err)
		}
		counts[c] = snap.Count
	}
	return counts, nil
}

// Store is a typed view over one collection. Every mutation rewrites the
// whole collection with a compare-and-swap on the snapshot version.
type Store[T Record] struct {
	engine     *Engine
	collection Collection
}

// New returns the typed store for collection c
func New[T Record](engine *Engine, c Collection) *Store[T] {
	return &Store[T]{
		engine:     engine,
		collection: c,
	}
}

// Collection returns the collection this store addresses
func (s *Store[T]) Collection() Collection {
	return s.collection
}

// List returns the whole collection in persisted order. An unwritten
// collection yields an empty, non-nil slice.
func (s *Store[T]) List(ctx context.Context) (items []T, err error) {
	defer s.observe("list", time.Now(), &err)

	items, _, err = s.load(ctx)
	return items, err
}

// Get returns the first record whose id equals id
func (s *Store[T]) Get(ctx context.Context, id string) (item T, err error) {
	defer s.observe("get", time.Now(), &err)

	items, _, err := s.load(ctx)
	if err != nil {
		return item, err
	}
	for _, it := range items {
		if it.GetID() == id {
			return it, nil
		}
	}
	return item, fmt.Errorf("%w: %s %s", ErrNotFound, s.collection, id)
}

// Find returns the records matching pred in persisted order
func (s *Store[T]) Find(ctx context.Context, pred func(T) bool) ([]T, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]T, 0)
	for _, it := range items {
		if pred(it) {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

// Count returns the number of records in the collection
func (s *Store[T]) Count(ctx context.Context) (int, error) {
	items, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// ReplaceAll overwrites the collection with items
func (s *Store[T]) ReplaceAll(ctx context.Context, items []T) error {
	replacement := make([]T, len(items))
	copy(replacement, items)

	return s.mutate(ctx, "replace_all", func([]T) ([]T, error) {
		return replacement, nil
	})
}

// Add appends item to the collection
func (s *Store[T]) Add(ctx context.Context, item T) error {
	return s.mutate(ctx, "add", func(items []T) ([]T, error) {
		return append(items, item), nil
	})
}

// Update replaces every record whose id equals id with item. When none
// matches, ErrNotFound is returned and nothing is written.
func (s *Store[T]) Update(ctx context.Context, id string, item T) error {
	return s.mutate(ctx, "update", func(items []T) ([]T, error) {
		found := false
		for i := range items {
			if items[i].GetID() == id {
				items[i] = item
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s %s", ErrNotFound, s.collection, id)
		}
		return items, nil
	})
}

// Delete removes every record whose id equals id. When none matches,
// ErrNotFound is returned and nothing is written.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete", func(items []T) ([]T, error) {
		kept := items[:0]
		for _, it := range items {
			if it.GetID() != id {
				kept = append(kept, it)
			}
		}
		if len(kept) == len(items) {
			return nil, fmt.Errorf("%w: %s %s", ErrNotFound, s.collection, id)
		}
		return kept, nil
	})
}

// Modify applies fn to the record with the given id inside one
// read-modify-write cycle and returns the stored result.
func (s *Store[T]) Modify(ctx context.Context, id string, fn func(*T) error) (updated T, err error) {
	err = s.mutate(ctx, "modify", func(items []T) ([]T, error) {
		for i := range items {
			if items[i].GetID() != id {
				continue
			}
			if err := fn(&items[i]); err != nil {
				return nil, err
			}
			updated = items[i]
			return items, nil
		}
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, s.collection, id)
	})
	return updated, err
}

func (s *Store[T]) mutate(ctx context.Context, operation string, fn func([]T) ([]T, error)) (err error) {
	defer s.observe(operation, time.Now(), &err)

	if !s.collection.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, s.collection)
	}

	l := s.engine.lock(s.collection)
	l.Lock()
	defer l.Unlock()

	for attempt := 0; ; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		items, version, loadErr := s.load(ctx)
		if loadErr != nil {
			return loadErr
		}

		next, fnErr := fn(items)
		if fnErr != nil {
			return fnErr
		}

		err = s.save(ctx, next, version)
		if !errors.Is(err, ErrVersionConflict) || attempt >= s.engine.maxRetries {
			return err
		}

		s.engine.logger.WarnContext(ctx, "collection version conflict, retrying",
			slog.String("collection", s.collection.String()),
			slog.String("operation", operation),
			slog.Int("attempt", attempt+1),
		)
	}
}

func (s *Store[T]) load(ctx context.Context) ([]T, int64, error) {
	snap, err := s.engine.backend.Load(ctx, s.collection)
	if err != nil {
		s.logFailure(ctx, "load", err)
		return nil, 0, fmt.Errorf("%w: load %s: %w", ErrPersistence, s.collection, err)
	}

	items := make([]T, 0, snap.Count)
	if len(snap.Payload) > 0 {
		if err := json.Unmarshal(snap.Payload, &items); err != nil {
			s.logFailure(ctx, "decode", err)
			return nil, 0, fmt.Errorf("%w: decode %s: %w", ErrPersistence, s.collection, err)
		}
		if items == nil {
			items = make([]T, 0)
		}
	}
	return items, snap.Version, nil
}

func (s *Store[T]) save(ctx context.Context, items []T, version int64) error {
	if items == nil {
		items = make([]T, 0)
	}

	payload, err := json.Marshal(items)
	if err != nil {
		s.logFailure(ctx, "encode", err)
		return fmt.Errorf("%w: encode %s: %w", ErrPersistence, s.collection, err)
	}

	if _, err := s.engine.backend.Save(ctx, s.collection, payload, len(items), version); err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return err
		}
		s.logFailure(ctx, "save", err)
		return fmt.Errorf("%w: save %s: %w", ErrPersistence, s.collection, err)
	}

	s.engine.metrics.RecordGauge(MetricCollectionItems, float64(len(items)), map[string]string{
		"collection": s.collection.String(),
	})
	return nil
}

func (s *Store[T]) logFailure(ctx context.Context, stage string, err error) {
	s.engine.logger.ErrorContext(ctx, "collection persistence failed",
		slog.String("collection", s.collection.String()),
		slog.String("stage", stage),
		slog.String("error", err.Error()),
	)
}

func (s *Store[T]) observe(operation string, start time.Time, err *error) {
	s.engine.metrics.IncrementCounter(MetricOperations, map[string]string{
		"collection": s.collection.String(),
		"operation":  operation,
		"result":     resultOf(*err),
	})
	s.engine.metrics.RecordProcessingTime(MetricOperationDuration, time.Since(start))
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrNotFound):
		return ResultNotFound
	case errors.Is(err, ErrVersionConflict):
		return ResultConflict
	default:
		return ResultError
	}
}
