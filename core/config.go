package core

import (
	"github.com/fox-one/pkg/store/db"
)

// Config lendbook config
type Config struct {
	App     App           `json:"app"`
	Store   Store         `json:"store"`
	DB      db.Config     `json:"db"`
	Session SessionConfig `json:"session"`
	Auditor Auditor       `json:"auditor"`
	Admins  []string      `json:"admins"`
}

// App app config
type App struct {
	// unix seconds of block 0
	Genesis         int64  `json:"genesis"`
	SecondsPerBlock int64  `json:"seconds_per_block"`
	EntropySalt     string `json:"entropy_salt"`
}

const (
	// StoreEngineLevelDB file backed leveldb
	StoreEngineLevelDB = "leveldb"
	// StoreEngineMemory in memory leveldb, state is lost on exit
	StoreEngineMemory = "memory"
	// StoreEngineSQL gorm backed table
	StoreEngineSQL = "sql"
)

// Store state storage config
type Store struct {
	Engine        string `json:"engine"`
	Path          string `json:"path"`
	CacheCapacity int    `json:"cache_capacity"`
}

// SessionConfig jwt session config
type SessionConfig struct {
	Secret        string `json:"secret"`
	Issuer        string `json:"issuer"`
	CacheCapacity int    `json:"cache_capacity"`
}

// Auditor ledger invariant auditor config
type Auditor struct {
	Spec string `json:"spec"`
}
