package database

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zaqqye/facetrack_backend/internal/models"
)

// KVStore keeps whole JSON collections in the kv_entries table.
type KVStore struct {
	DB *gorm.DB
}

func NewKVStore(db *gorm.DB) *KVStore {
	return &KVStore{DB: db}
}

func (s *KVStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var entry models.KVEntry
	err := s.DB.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "load %s", key)
	}
	return []byte(entry.Value), true, nil
}

// Save upserts every key inside one transaction.
func (s *KVStore) Save(ctx context.Context, values map[string][]byte) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	// stable lock order
	sort.Strings(keys)

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, k := range keys {
			entry := models.KVEntry{Key: k, Value: datatypes.JSON(values[k])}
			err := tx.Clauses(upsertOnKey()).Create(&entry).Error
			if err != nil {
				return errors.Wrapf(err, "save %s", k)
			}
		}
		return nil
	})
}

// upsertOnKey overwrites the value of an existing key, keeping created_at.
func upsertOnKey() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}
}
