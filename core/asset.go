package core

import (
	"github.com/holiman/uint256"
)

const (
	// MaxAssetNameLength token name limit in bytes
	MaxAssetNameLength = 64
	// MaxAssetTickerLength token ticker limit in bytes
	MaxAssetTickerLength = 32
)

// AssetID sequentially allocated asset identifier, never reused. Zero is never allocated.
type AssetID uint64

// Asset registered token
type Asset struct {
	ID          AssetID      `json:"id"`
	Name        string       `json:"name"`
	Ticker      string       `json:"ticker"`
	TotalSupply *uint256.Int `json:"total_supply"`
}
