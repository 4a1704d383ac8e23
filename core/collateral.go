package core

import (
	"github.com/holiman/uint256"
)

// CollateralStatus escrow lifecycle state
type CollateralStatus uint8

const (
	// CollateralCreated deposited, not yet bound to an order
	CollateralCreated CollateralStatus = iota
	// CollateralHot escrow activated against an order
	CollateralHot
	// CollateralCanceled terminal
	CollateralCanceled
	// CollateralFilled terminal
	CollateralFilled
)

func (s CollateralStatus) String() string {
	switch s {
	case CollateralCreated:
		return "created"
	case CollateralHot:
		return "hot"
	case CollateralCanceled:
		return "canceled"
	case CollateralFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// Collateral a single escrowed deposit tied to an external order, keyed by (Account, Hash)
type Collateral struct {
	Account string           `json:"account"`
	Amount  *uint256.Int     `json:"amount"`
	Asset   AssetID          `json:"asset"`
	OrderID Hash             `json:"order_id"`
	Status  CollateralStatus `json:"status"`
	Hash    Hash             `json:"hash"`
}

// IsFinished only finished collaterals may be removed
func (c *Collateral) IsFinished() bool {
	return c.Status == CollateralCanceled || c.Status == CollateralFilled
}
