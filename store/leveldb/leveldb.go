package leveldb

import (
	"context"
	"errors"

	"lendbook/core"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

type kvStore struct {
	db   *leveldb.DB
	sync bool
}

// Open creates or opens a leveldb database at path
func Open(path string) (core.KVStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}

	return &kvStore{db: db, sync: true}, nil
}

// OpenMemory leveldb on memory storage, for tests and throwaway nodes
func OpenMemory() (core.KVStore, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}

	return &kvStore{db: db}, nil
}

func (s *kvStore) Get(ctx context.Context, key []byte) ([]byte, error) {
	v, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, core.ErrKeyNotFound
	}

	return v, err
}

func (s *kvStore) Has(ctx context.Context, key []byte) (bool, error) {
	return s.db.Has(key, nil)
}

func (s *kvStore) Write(ctx context.Context, writes []core.KVWrite) error {
	batch := new(leveldb.Batch)
	for _, w := range writes {
		if w.Delete {
			batch.Delete(w.Key)
		} else {
			batch.Put(w.Key, w.Value)
		}
	}

	return s.db.Write(batch, &opt.WriteOptions{Sync: s.sync})
}

func (s *kvStore) Iterate(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error {
	it := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()

	for it.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := fn(it.Key(), it.Value()); err != nil {
			return err
		}
	}

	return it.Error()
}

func (s *kvStore) Close() error {
	return s.db.Close()
}
