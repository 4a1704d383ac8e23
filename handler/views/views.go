package views

import (
	"lendbook/core"
	"lendbook/pkg/number"

	"github.com/shopspring/decimal"
)

// Asset asset view
type Asset struct {
	ID          core.AssetID `json:"id"`
	Name        string       `json:"name"`
	Ticker      string       `json:"ticker"`
	TotalSupply string       `json:"total_supply"`
}

// AssetView asset view
func AssetView(a *core.Asset) Asset {
	return Asset{
		ID:          a.ID,
		Name:        a.Name,
		Ticker:      a.Ticker,
		TotalSupply: number.String(a.TotalSupply),
	}
}

// Balance balance view
type Balance struct {
	Asset    core.AssetID `json:"asset"`
	Account  string       `json:"account"`
	Balance  string       `json:"balance"`
	Free     string       `json:"free"`
	Reserved string       `json:"reserved"`
}

// BalanceView balance view
func BalanceView(b *core.AccountBalance) Balance {
	return Balance{
		Asset:    b.Asset,
		Account:  b.Account,
		Balance:  number.String(b.Balance),
		Free:     number.String(b.Free),
		Reserved: number.String(b.Reserved),
	}
}

// Allowance allowance view
type Allowance struct {
	Asset   core.AssetID `json:"asset"`
	Owner   string       `json:"owner"`
	Spender string       `json:"spender"`
	Value   string       `json:"value"`
}

// Price price view, Rate is Value scaled down by core.PriceScale
type Price struct {
	Asset core.AssetID    `json:"asset"`
	Value string          `json:"value"`
	Rate  decimal.Decimal `json:"rate"`
}

// Collateral collateral view
type Collateral struct {
	Account string       `json:"account"`
	Amount  string       `json:"amount"`
	Asset   core.AssetID `json:"asset"`
	OrderID core.Hash    `json:"order_id"`
	Status  string       `json:"status"`
	Hash    core.Hash    `json:"hash"`
}

// CollateralView collateral view
func CollateralView(c *core.Collateral) Collateral {
	return Collateral{
		Account: c.Account,
		Amount:  number.String(c.Amount),
		Asset:   c.Asset,
		OrderID: c.OrderID,
		Status:  c.Status.String(),
		Hash:    c.Hash,
	}
}
