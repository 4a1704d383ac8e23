package cmd

import (
	"lendbook/core"
	"lendbook/service/entropy"
	"lendbook/service/events"
	"lendbook/service/lending"
	"lendbook/service/session"
	"lendbook/store/cache"
	"lendbook/store/leveldb"
	"lendbook/store/sqlkv"

	"github.com/fox-one/pkg/store/db"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func provideConfig() *core.Config {
	return &cfg
}

func provideSystem() *core.System {
	return &core.System{
		Admins:  cfg.Admins,
		Version: rootCmd.Version,
	}
}

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

// ---------------store-----------------------------------------

func provideKVStore() core.KVStore {
	var (
		store core.KVStore
		err   error
	)

	switch cfg.Store.Engine {
	case core.StoreEngineMemory:
		store, err = leveldb.OpenMemory()
	case core.StoreEngineSQL:
		store = sqlkv.New(provideDatabase())
	default:
		store, err = leveldb.Open(cfg.Store.Path)
	}

	if err != nil {
		panic(err)
	}

	if cfg.Store.CacheCapacity > 0 {
		store = cache.Cache(store, cfg.Store.CacheCapacity)
	}

	return store
}

// ------------------service------------------------------------

func provideSession() core.Session {
	return session.New(cfg.Session)
}

func provideEntropy() core.EntropySource {
	return entropy.New(cfg.App)
}

func provideEventBus() *events.Bus {
	bus := events.New()
	if err := bus.SubscribeAll(events.Log); err != nil {
		panic(err)
	}

	return bus
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func provideModule(store core.KVStore, sink core.EventSink, reg prometheus.Registerer) *lending.Module {
	return lending.New(store, provideSystem(), provideEntropy(), sink, lending.NewMetrics(reg))
}
