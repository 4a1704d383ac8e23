package number

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Decimal v scaled down by 10^exp
func Decimal(v *uint256.Int, exp int32) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(v.ToBig(), -exp)
}

// Percent basis points as a percentage, 500 -> 5
func Percent(bp uint32) decimal.Decimal {
	return decimal.New(int64(bp), -2)
}
