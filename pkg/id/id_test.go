package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollateralHash(t *testing.T) {
	order := Sum("order")

	h1 := CollateralHash("alice", 1, order)
	h2 := CollateralHash("alice", 1, order)
	assert.Equal(t, h1, h2, "must be deterministic")

	assert.NotEqual(t, h1, CollateralHash("alice", 2, order))
	assert.NotEqual(t, h1, CollateralHash("bob", 1, order))
	assert.NotEqual(t, h1, CollateralHash("alice", 1, Sum("other")))
}

func TestOrderID(t *testing.T) {
	seed := BlockSeed("salt", 100)

	a := OrderID(seed, "alice", 0)
	b := OrderID(seed, "alice", 1)
	assert.NotEqual(t, a, b, "nonce must separate ids in the same block")
	assert.NotEqual(t, a, OrderID(BlockSeed("salt", 101), "alice", 0))
	assert.False(t, a.IsZero())
}

func TestFieldFraming(t *testing.T) {
	// ("ab", "c") and ("a", "bc") must not collide
	assert.NotEqual(t, Sum("ab", "c"), Sum("a", "bc"))
	assert.NotEqual(t, Sum(uint64(1)), Sum("1"))
}
