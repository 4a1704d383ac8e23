package sqlkv

import (
	"context"
	"encoding/hex"

	"lendbook/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

// keyColumnSize width of kv_entries.store_key, see core.KVEntry
const keyColumnSize = 640

type kvStore struct {
	db *db.DB
}

// New sql backed kv store, keys are hex encoded into kv_entries.store_key
func New(db *db.DB) core.KVStore {
	return &kvStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.KVEntry{})
		if err := tx.AutoMigrate(core.KVEntry{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func storeKey(key []byte) string {
	return hex.EncodeToString(key)
}

func (s *kvStore) Get(ctx context.Context, key []byte) ([]byte, error) {
	var entry core.KVEntry
	err := s.db.View().Where("store_key = ?", storeKey(key)).First(&entry).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, core.ErrKeyNotFound
	}

	if err != nil {
		return nil, err
	}

	return entry.Value, nil
}

func (s *kvStore) Has(ctx context.Context, key []byte) (bool, error) {
	var count int
	if err := s.db.View().Model(core.KVEntry{}).Where("store_key = ?", storeKey(key)).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *kvStore) Write(ctx context.Context, writes []core.KVWrite) error {
	return s.db.Tx(func(tx *db.DB) error {
		for _, w := range writes {
			k := storeKey(w.Key)
			if w.Delete {
				if err := tx.Update().Where("store_key = ?", k).Delete(core.KVEntry{}).Error; err != nil {
					return err
				}

				continue
			}

			entry := core.KVEntry{StoreKey: k}
			if err := tx.Update().Where("store_key = ?", k).
				Assign(core.KVEntry{Value: w.Value}).
				FirstOrCreate(&entry).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Iterate lower case hex keeps byte order, so ordering by store_key is key order
func (s *kvStore) Iterate(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error {
	var entries []*core.KVEntry
	if err := s.db.View().Where("store_key LIKE ?", storeKey(prefix)+"%").Order("store_key").Find(&entries).Error; err != nil {
		return err
	}

	for _, entry := range entries {
		key, err := hex.DecodeString(entry.StoreKey)
		if err != nil {
			return err
		}

		if err := fn(key, entry.Value); err != nil {
			return err
		}
	}

	return nil
}

func (s *kvStore) Close() error {
	return nil
}
