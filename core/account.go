package core

import (
	"github.com/holiman/uint256"
)

// MaxAccountLength account id limit in bytes, keeps every storage key within the sql key column
const MaxAccountLength = 128

// AccountBalance per (asset, account) holding.
//
// Balance always equals Free + Reserved: transfers move Balance and Free together,
// reservations move value between Free and Reserved.
type AccountBalance struct {
	Asset    AssetID      `json:"asset"`
	Account  string       `json:"account"`
	Balance  *uint256.Int `json:"balance"`
	Free     *uint256.Int `json:"free"`
	Reserved *uint256.Int `json:"reserved"`
}

// NewAccountBalance zero valued holding
func NewAccountBalance(asset AssetID, account string) *AccountBalance {
	return &AccountBalance{
		Asset:    asset,
		Account:  account,
		Balance:  uint256.NewInt(0),
		Free:     uint256.NewInt(0),
		Reserved: uint256.NewInt(0),
	}
}

// Consistent reports whether balance == free + reserved
func (b *AccountBalance) Consistent() bool {
	sum, overflow := new(uint256.Int).AddOverflow(b.Free, b.Reserved)
	return !overflow && sum.Eq(b.Balance)
}

// Allowance delegated spending right of spender over owner's asset
type Allowance struct {
	Asset   AssetID      `json:"asset"`
	Owner   string       `json:"owner"`
	Spender string       `json:"spender"`
	Value   *uint256.Int `json:"value"`
}
