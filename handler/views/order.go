package views

import (
	"lendbook/core"
	"lendbook/pkg/number"

	"github.com/shopspring/decimal"
)

// BorrowOrder borrow order view
type BorrowOrder struct {
	ID       core.Hash       `json:"id"`
	Owner    string          `json:"owner"`
	BTotal   string          `json:"btotal"`
	BToken   core.AssetID    `json:"btoken_id"`
	Already  string          `json:"already"`
	Duration uint64          `json:"duration"`
	STotal   string          `json:"stotal"`
	SToken   core.AssetID    `json:"stoken_id"`
	Interest decimal.Decimal `json:"interest"`
}

// BorrowOrderView borrow order view
func BorrowOrderView(o *core.BorrowOrder) BorrowOrder {
	return BorrowOrder{
		ID:       o.ID,
		Owner:    o.Owner,
		BTotal:   number.String(o.BTotal),
		BToken:   o.BToken,
		Already:  number.String(o.Already),
		Duration: o.Duration,
		STotal:   number.String(o.STotal),
		SToken:   o.SToken,
		Interest: number.Percent(o.Interest),
	}
}

// BorrowOrdersView borrow orders view
func BorrowOrdersView(orders []*core.BorrowOrder) []BorrowOrder {
	items := make([]BorrowOrder, 0, len(orders))
	for _, o := range orders {
		items = append(items, BorrowOrderView(o))
	}

	return items
}

// SupplyOrder supply order view
type SupplyOrder struct {
	ID        core.Hash       `json:"id"`
	Owner     string          `json:"owner"`
	Total     string          `json:"total"`
	SToken    core.AssetID    `json:"stoken"`
	Tokens    []core.AssetID  `json:"tokens"`
	Amortgage decimal.Decimal `json:"amortgage"`
	Duration  uint64          `json:"duration"`
	Interest  decimal.Decimal `json:"interest"`
}

// SupplyOrderView supply order view
func SupplyOrderView(o *core.SupplyOrder) SupplyOrder {
	return SupplyOrder{
		ID:        o.ID,
		Owner:     o.Owner,
		Total:     number.String(o.Total),
		SToken:    o.SToken,
		Tokens:    o.Tokens,
		Amortgage: number.Percent(o.Amortgage),
		Duration:  o.Duration,
		Interest:  number.Percent(o.Interest),
	}
}

// SupplyOrdersView supply orders view
func SupplyOrdersView(orders []*core.SupplyOrder) []SupplyOrder {
	items := make([]SupplyOrder, 0, len(orders))
	for _, o := range orders {
		items = append(items, SupplyOrderView(o))
	}

	return items
}
