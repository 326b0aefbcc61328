package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry stores one whole JSON collection under a fixed key.
type KVEntry struct {
	Key       string         `gorm:"size:128;primaryKey"`
	Value     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
