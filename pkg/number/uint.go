package number

import (
	"lendbook/core"

	"github.com/holiman/uint256"
)

// Zero new zero value
func Zero() *uint256.Int {
	return uint256.NewInt(0)
}

// Add returns a + b, ErrArithmeticOverflow on overflow. Operands are not modified.
func Add(a, b *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, core.ErrArithmeticOverflow
	}

	return z, nil
}

// Sub returns a - b, ErrArithmeticOverflow on underflow
func Sub(a, b *uint256.Int) (*uint256.Int, error) {
	z, underflow := new(uint256.Int).SubOverflow(a, b)
	if underflow {
		return nil, core.ErrArithmeticOverflow
	}

	return z, nil
}

// Mul returns a * b, ErrArithmeticOverflow on overflow
func Mul(a, b *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return nil, core.ErrArithmeticOverflow
	}

	return z, nil
}

// Parse parse a base 10 unsigned integer
func Parse(s string) (*uint256.Int, error) {
	if s == "" {
		return nil, core.ErrInvalidAmount
	}

	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, core.ErrInvalidAmount
	}

	return v, nil
}

// String base 10 representation, nil renders as 0
func String(v *uint256.Int) string {
	if v == nil {
		return "0"
	}

	return v.Dec()
}
