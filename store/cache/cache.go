package cache

import (
	"context"

	"lendbook/core"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

// Cache wraps a kv store with an lru read cache. Committed writes refresh the
// cached entries, so the cache never serves a value older than the store.
func Cache(store core.KVStore, capacity int) core.KVStore {
	if capacity <= 0 {
		capacity = 4096
	}

	return &cacheKVStore{
		KVStore: store,
		cache:   gcache.New(capacity).LRU().Build(),
		sf:      &singleflight.Group{},
	}
}

type cacheKVStore struct {
	core.KVStore
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cacheKVStore) Get(ctx context.Context, key []byte) ([]byte, error) {
	k := string(key)
	if v, err := s.cache.Get(k); err == nil {
		if value, ok := v.([]byte); ok {
			return value, nil
		}
	}

	v, err, _ := s.sf.Do(k, func() (interface{}, error) {
		value, err := s.KVStore.Get(ctx, key)
		if err != nil {
			return nil, err
		}

		_ = s.cache.Set(k, value)
		return value, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]byte), nil
}

func (s *cacheKVStore) Has(ctx context.Context, key []byte) (bool, error) {
	if _, err := s.cache.Get(string(key)); err == nil {
		return true, nil
	}

	return s.KVStore.Has(ctx, key)
}

func (s *cacheKVStore) Write(ctx context.Context, writes []core.KVWrite) error {
	if err := s.KVStore.Write(ctx, writes); err != nil {
		// the store may be partially applied on some engines, drop what we know
		for _, w := range writes {
			s.cache.Remove(string(w.Key))
		}

		return err
	}

	for _, w := range writes {
		k := string(w.Key)
		if w.Delete {
			s.cache.Remove(k)
		} else {
			_ = s.cache.Set(k, w.Value)
		}
	}

	return nil
}
