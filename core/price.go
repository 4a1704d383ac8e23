package core

import (
	"github.com/holiman/uint256"
)

// PriceScale one unit of an asset is worth price/PriceScale units of the reference asset
const PriceScale = 10000

// BasisPoints denominator of every rate (interest, amortgage)
const BasisPoints = 10000

// Price admin set exchange rate of an asset
type Price struct {
	Asset AssetID      `json:"asset"`
	Value *uint256.Int `json:"value"`
}
