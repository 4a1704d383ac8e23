package number

import (
	"math"
	"testing"

	"lendbook/core"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedArithmetic(t *testing.T) {
	max := new(uint256.Int).SetAllOne()
	one := uint256.NewInt(1)

	_, err := Add(max, one)
	assert.ErrorIs(t, err, core.ErrArithmeticOverflow)

	_, err = Sub(Zero(), one)
	assert.ErrorIs(t, err, core.ErrArithmeticOverflow)

	_, err = Mul(max, uint256.NewInt(2))
	assert.ErrorIs(t, err, core.ErrArithmeticOverflow)

	a := uint256.NewInt(math.MaxUint64)
	sum, err := Add(a, one)
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", sum.Dec())
	assert.Equal(t, uint64(math.MaxUint64), a.Uint64(), "operands must not change")

	product, err := Mul(uint256.NewInt(100), uint256.NewInt(200))
	require.NoError(t, err)
	assert.Equal(t, uint64(20000), product.Uint64())
}

func TestParse(t *testing.T) {
	v, err := Parse("1000000")
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000), v.Uint64())

	for _, s := range []string{"", "-1", "1.5", "abc"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, core.ErrInvalidAmount, s)
	}

	assert.Equal(t, "0", String(nil))
}
