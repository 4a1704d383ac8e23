package core

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound returned by KVStore.Get when the key is absent
var ErrKeyNotFound = errors.New("kv: key not found")

// KVWrite a single put or delete inside a batch
type KVWrite struct {
	Key    []byte
	Value  []byte
	Delete bool
}

// KVStore persistent key value storage. Write applies the whole batch or nothing.
type KVStore interface {
	Get(ctx context.Context, key []byte) ([]byte, error)
	Has(ctx context.Context, key []byte) (bool, error)
	Write(ctx context.Context, writes []KVWrite) error
	// Iterate calls fn for every key with the prefix, in key order.
	// key and value are only valid during the call.
	Iterate(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error
	Close() error
}

// KVEntry sql row backing the sql KVStore
type KVEntry struct {
	StoreKey  string    `sql:"size:640;PRIMARY_KEY" json:"store_key"`
	Value     []byte    `json:"value"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName gorm table name
func (KVEntry) TableName() string {
	return "kv_entries"
}
