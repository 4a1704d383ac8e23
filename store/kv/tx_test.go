package kv

import (
	"context"
	"errors"
	"testing"

	"lendbook/core"
	"lendbook/store/leveldb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxReadYourWrites(t *testing.T) {
	ctx := context.Background()
	store, err := leveldb.OpenMemory()
	require.Nil(t, err)
	defer store.Close()

	require.Nil(t, store.Write(ctx, []core.KVWrite{{Key: []byte("a"), Value: []byte("1")}}))

	tx := Begin(store)
	tx.Put([]byte("b"), []byte("2"))
	tx.Delete([]byte("a"))

	v, err := tx.Get(ctx, []byte("b"))
	require.Nil(t, err)
	assert.Equal(t, "2", string(v))

	_, err = tx.Get(ctx, []byte("a"))
	assert.True(t, errors.Is(err, core.ErrKeyNotFound))

	ok, err := tx.Has(ctx, []byte("a"))
	require.Nil(t, err)
	assert.False(t, ok)

	// nothing reaches the store before commit
	v, err = store.Get(ctx, []byte("a"))
	require.Nil(t, err)
	assert.Equal(t, "1", string(v))

	ok, err = store.Has(ctx, []byte("b"))
	require.Nil(t, err)
	assert.False(t, ok)

	require.Nil(t, tx.Commit(ctx))

	ok, err = store.Has(ctx, []byte("a"))
	require.Nil(t, err)
	assert.False(t, ok)

	v, err = store.Get(ctx, []byte("b"))
	require.Nil(t, err)
	assert.Equal(t, "2", string(v))
}

func TestTxLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store, err := leveldb.OpenMemory()
	require.Nil(t, err)
	defer store.Close()

	tx := Begin(store)
	tx.Put([]byte("k"), []byte("1"))
	tx.Delete([]byte("k"))
	tx.Put([]byte("k"), []byte("3"))
	assert.Equal(t, 1, tx.Len())

	require.Nil(t, tx.Commit(ctx))
	v, err := store.Get(ctx, []byte("k"))
	require.Nil(t, err)
	assert.Equal(t, "3", string(v))
}

func TestTxDiscard(t *testing.T) {
	ctx := context.Background()
	store, err := leveldb.OpenMemory()
	require.Nil(t, err)
	defer store.Close()

	tx := Begin(store)
	tx.Put([]byte("k"), []byte("v"))
	tx.Discard()
	require.Nil(t, tx.Commit(ctx))

	_, found, err := Begin(store).Lookup(ctx, []byte("k"))
	require.Nil(t, err)
	assert.False(t, found)
}
