package core

import (
	"github.com/holiman/uint256"
)

// BorrowOrder a request to borrow BTotal of BToken against STotal of SToken
type BorrowOrder struct {
	ID    Hash   `json:"id"`
	Owner string `json:"owner"`
	// requested total and asset
	BTotal *uint256.Int `json:"btotal"`
	BToken AssetID      `json:"btoken_id"`
	// already funded, starts at zero
	Already  *uint256.Int `json:"already"`
	Duration uint64       `json:"duration"`
	// offered collateral, reserved from the owner's free balance
	STotal *uint256.Int `json:"stotal"`
	SToken AssetID      `json:"stoken_id"`
	// yearly rate in basis points, 500 = 5.00%
	Interest uint32 `json:"interest"`
}

// BorrowRequest create_borrow arguments
type BorrowRequest struct {
	BTotal   *uint256.Int
	BToken   AssetID
	Duration uint64
	STotal   *uint256.Int
	SToken   AssetID
	Interest uint32
}

// SupplyOrder an offer to lend Total of SToken
type SupplyOrder struct {
	ID     Hash         `json:"id"`
	Owner  string       `json:"owner"`
	Total  *uint256.Int `json:"total"`
	SToken AssetID      `json:"stoken"`
	// acceptable borrow collateral assets
	Tokens []AssetID `json:"tokens"`
	// acceptable collateralization ratio in basis points
	Amortgage uint32 `json:"amortgage"`
	Duration  uint64 `json:"duration"`
	// minimum acceptable yearly rate in basis points
	Interest uint32 `json:"interest"`
}

// SupplyRequest create_supply arguments
type SupplyRequest struct {
	Total     *uint256.Int
	SToken    AssetID
	Tokens    []AssetID
	Amortgage uint32
	Duration  uint64
	Interest  uint32
}
