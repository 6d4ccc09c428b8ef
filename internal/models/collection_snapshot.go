package models

import (
	"time"
)

// CollectionSnapshot is the persisted form of one whole collection: a JSON
// array of records plus a version used for compare-and-swap writes.
type CollectionSnapshot struct {
	Name      string    `gorm:"type:varchar(32);primaryKey" json:"name"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	ItemCount int       `gorm:"not null;default:0" json:"item_count"`
	Version   int64     `gorm:"not null;default:0" json:"version"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for CollectionSnapshot
func (CollectionSnapshot) TableName() string {
	return "collection_snapshots"
}
