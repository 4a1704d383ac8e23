package kv

import (
	"context"
	"errors"

	"lendbook/core"
)

// Tx buffers writes over a KVStore. Reads see the buffered writes first,
// Commit hands the whole buffer to the store as one batch.
type Tx struct {
	store core.KVStore
	dirty map[string]int
	order []core.KVWrite
}

// Begin start a transaction over store
func Begin(store core.KVStore) *Tx {
	return &Tx{
		store: store,
		dirty: make(map[string]int),
	}
}

// Get value of key, core.ErrKeyNotFound if absent or deleted in this tx
func (tx *Tx) Get(ctx context.Context, key []byte) ([]byte, error) {
	if idx, ok := tx.dirty[string(key)]; ok {
		w := tx.order[idx]
		if w.Delete {
			return nil, core.ErrKeyNotFound
		}

		return w.Value, nil
	}

	return tx.store.Get(ctx, key)
}

// Lookup like Get but reports absence as found == false
func (tx *Tx) Lookup(ctx context.Context, key []byte) (value []byte, found bool, err error) {
	value, err = tx.Get(ctx, key)
	if errors.Is(err, core.ErrKeyNotFound) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return value, true, nil
}

// Has reports whether key exists
func (tx *Tx) Has(ctx context.Context, key []byte) (bool, error) {
	if idx, ok := tx.dirty[string(key)]; ok {
		return !tx.order[idx].Delete, nil
	}

	return tx.store.Has(ctx, key)
}

// Put buffer a write
func (tx *Tx) Put(key, value []byte) {
	tx.set(core.KVWrite{Key: key, Value: value})
}

// Delete buffer a delete
func (tx *Tx) Delete(key []byte) {
	tx.set(core.KVWrite{Key: key, Delete: true})
}

func (tx *Tx) set(w core.KVWrite) {
	k := string(w.Key)
	if idx, ok := tx.dirty[k]; ok {
		tx.order[idx] = w
		return
	}

	tx.dirty[k] = len(tx.order)
	tx.order = append(tx.order, w)
}

// Len number of buffered writes
func (tx *Tx) Len() int {
	return len(tx.order)
}

// Commit write every buffered change in one batch. The tx must not be reused.
func (tx *Tx) Commit(ctx context.Context) error {
	if len(tx.order) == 0 {
		return nil
	}

	writes := tx.order
	tx.Discard()
	return tx.store.Write(ctx, writes)
}

// Discard drop every buffered change
func (tx *Tx) Discard() {
	tx.dirty = make(map[string]int)
	tx.order = nil
}
