package cache

import (
	"context"
	"errors"
	"testing"

	"lendbook/core"
	"lendbook/store/leveldb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheFollowsWrites(t *testing.T) {
	ctx := context.Background()
	backend, err := leveldb.OpenMemory()
	require.Nil(t, err)
	defer backend.Close()

	store := Cache(backend, 16)
	require.Nil(t, store.Write(ctx, []core.KVWrite{{Key: []byte("k"), Value: []byte("1")}}))

	v, err := store.Get(ctx, []byte("k"))
	require.Nil(t, err)
	assert.Equal(t, "1", string(v))

	require.Nil(t, store.Write(ctx, []core.KVWrite{{Key: []byte("k"), Value: []byte("2")}}))
	v, err = store.Get(ctx, []byte("k"))
	require.Nil(t, err)
	assert.Equal(t, "2", string(v))

	require.Nil(t, store.Write(ctx, []core.KVWrite{{Key: []byte("k"), Delete: true}}))
	_, err = store.Get(ctx, []byte("k"))
	assert.True(t, errors.Is(err, core.ErrKeyNotFound))

	ok, err := store.Has(ctx, []byte("k"))
	require.Nil(t, err)
	assert.False(t, ok)
}

func TestCacheServesFromMemory(t *testing.T) {
	ctx := context.Background()
	backend, err := leveldb.OpenMemory()
	require.Nil(t, err)
	defer backend.Close()

	require.Nil(t, backend.Write(ctx, []core.KVWrite{{Key: []byte("k"), Value: []byte("1")}}))

	store := Cache(backend, 16)
	v, err := store.Get(ctx, []byte("k"))
	require.Nil(t, err)
	assert.Equal(t, "1", string(v))

	// a write behind the cache's back is not observed
	require.Nil(t, backend.Write(ctx, []core.KVWrite{{Key: []byte("k"), Value: []byte("2")}}))
	v, err = store.Get(ctx, []byte("k"))
	require.Nil(t, err)
	assert.Equal(t, "1", string(v))
}
