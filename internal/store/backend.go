package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is one collection as persisted. A collection that was never
// written loads as a zero Snapshot.
type Snapshot struct {
	Payload []byte
	Count   int
	Version int64
}

// Backend persists whole-collection snapshots. Save must fail with
// ErrVersionConflict when the stored version differs from expectedVersion.
type Backend interface {
	Load(ctx context.Context, c Collection) (Snapshot, error)
	Save(ctx context.Context, c Collection, payload []byte, count int, expectedVersion int64) (int64, error)
	Reset(ctx context.Context, c Collection) error
}

type gormBackend struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormBackend stores snapshots in the collection_snapshots table
func NewGormBackend(db *gorm.DB) Backend {
	return &gormBackend{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (b *gormBackend) Load(ctx context.Context, c Collection) (Snapshot, error) {
	var row models.CollectionSnapshot
	err := b.db.WithContext(ctx).Where("name = ?", string(c)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return Snapshot{
		Payload: []byte(row.Payload),
		Count:   row.ItemCount,
		Version: row.Version,
	}, nil
}

func (b *gormBackend) Save(ctx context.Context, c Collection, payload []byte, count int, expectedVersion int64) (int64, error) {
	newVersion := expectedVersion + 1

	if expectedVersion == 0 {
		row := models.CollectionSnapshot{
			Name:      string(c),
			Payload:   string(payload),
			ItemCount: count,
			Version:   newVersion,
			UpdatedAt: b.now(),
		}
		result := b.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if result.Error != nil {
			return 0, fmt.Errorf("failed to insert snapshot: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return 0, ErrVersionConflict
		}
		return newVersion, nil
	}

	result := b.db.WithContext(ctx).
		Model(&models.CollectionSnapshot{}).
		Where("name = ? AND version = ?", string(c), expectedVersion).
		Updates(map[string]interface{}{
			"payload":    string(payload),
			"item_count": count,
			"version":    newVersion,
			"updated_at": b.now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update snapshot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrVersionConflict
	}
	return newVersion, nil
}

func (b *gormBackend) Reset(ctx context.Context, c Collection) error {
	err := b.db.WithContext(ctx).Where("name = ?", string(c)).Delete(&models.CollectionSnapshot{}).Error
	if err != nil {
		return fmt.Errorf("failed to reset snapshot: %w", err)
	}
	return nil
}
