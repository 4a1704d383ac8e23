package ledger

import (
	"context"
	"strings"
	"testing"

	"lendbook/core"
	"lendbook/store/kv"
	"lendbook/store/leveldb"
	"lendbook/store/state"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T) *state.State {
	store, err := leveldb.OpenMemory()
	require.Nil(t, err)
	t.Cleanup(func() { store.Close() })
	return state.New(kv.Begin(store))
}

func u(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

func holding(t *testing.T, st *state.State, asset core.AssetID, account string) *core.AccountBalance {
	b, err := st.BalanceOrZero(context.Background(), asset, account)
	require.Nil(t, err)
	return b
}

func totalBalance(t *testing.T, st *state.State, asset core.AssetID, accounts ...string) uint64 {
	var sum uint64
	for _, account := range accounts {
		sum += holding(t, st, asset, account).Balance.Uint64()
	}

	return sum
}

func TestInit(t *testing.T) {
	ctx := context.Background()
	st := newState(t)
	s := New()

	usdt, err := s.Init(ctx, st, "admin", "Tether", "USDT", u(1000000))
	require.Nil(t, err)
	assert.Equal(t, core.AssetID(1), usdt)

	eth, err := s.Init(ctx, st, "admin", "Ether", "ETH", u(1000))
	require.Nil(t, err)
	assert.Equal(t, core.AssetID(2), eth)

	b := holding(t, st, usdt, "admin")
	assert.Equal(t, uint64(1000000), b.Balance.Uint64())
	assert.Equal(t, uint64(1000000), b.Free.Uint64())
	assert.True(t, b.Reserved.IsZero())

	asset, found, err := st.Asset(ctx, eth)
	require.Nil(t, err)
	require.True(t, found)
	assert.Equal(t, "ETH", asset.Ticker)
	assert.Equal(t, uint64(1000), asset.TotalSupply.Uint64())

	_, err = s.Init(ctx, st, "admin", strings.Repeat("n", core.MaxAssetNameLength+1), "X", u(1))
	assert.Equal(t, core.ErrNameTooLong, err)

	_, err = s.Init(ctx, st, "admin", "X", strings.Repeat("t", core.MaxAssetTickerLength+1), u(1))
	assert.Equal(t, core.ErrTickerTooLong, err)

	next, err := st.NextAssetID(ctx)
	require.Nil(t, err)
	assert.Equal(t, core.AssetID(3), next)
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	st := newState(t)
	s := New()

	asset, err := s.Init(ctx, st, "alice", "Tether", "USDT", u(100))
	require.Nil(t, err)

	require.Nil(t, s.Transfer(ctx, st, asset, "alice", "bob", u(30)))
	assert.Equal(t, uint64(70), holding(t, st, asset, "alice").Free.Uint64())
	assert.Equal(t, uint64(30), holding(t, st, asset, "bob").Free.Uint64())
	assert.Equal(t, uint64(100), totalBalance(t, st, asset, "alice", "bob"))

	t.Run("insufficient balance", func(t *testing.T) {
		assert.Equal(t, core.ErrInsufficientBalance, s.Transfer(ctx, st, asset, "bob", "alice", u(31)))
	})

	t.Run("reserved funds are not transferable", func(t *testing.T) {
		require.Nil(t, s.Reserve(ctx, st, asset, "bob", u(20)))
		assert.Equal(t, core.ErrInsufficientFree, s.Transfer(ctx, st, asset, "bob", "alice", u(11)))
		require.Nil(t, s.Transfer(ctx, st, asset, "bob", "alice", u(10)))
		assert.True(t, holding(t, st, asset, "bob").Consistent())
	})

	t.Run("missing source record", func(t *testing.T) {
		assert.Equal(t, core.ErrBalanceNotFound, s.Transfer(ctx, st, asset, "carol", "alice", u(0)))
	})

	t.Run("transfer to self mints nothing", func(t *testing.T) {
		before := holding(t, st, asset, "alice").Balance.Uint64()
		require.Nil(t, s.Transfer(ctx, st, asset, "alice", "alice", u(50)))
		assert.Equal(t, before, holding(t, st, asset, "alice").Balance.Uint64())
	})

	assert.Equal(t, uint64(100), totalBalance(t, st, asset, "alice", "bob"))

	events := st.Events()
	last, ok := events[len(events)-1].(core.TransferEvent)
	require.True(t, ok)
	assert.Equal(t, "alice", last.To)
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	st := newState(t)
	s := New()

	asset, err := s.Init(ctx, st, "alice", "Tether", "USDT", u(100))
	require.Nil(t, err)

	assert.Equal(t, core.ErrBalanceNotFound, s.Approve(ctx, st, asset, "bob", "alice", u(1)))

	require.Nil(t, s.Approve(ctx, st, asset, "alice", "bob", u(10)))
	require.Nil(t, s.Approve(ctx, st, asset, "alice", "bob", u(5)))

	a, found, err := st.Allowance(ctx, asset, "alice", "bob")
	require.Nil(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(15), a.Value.Uint64())

	max := new(uint256.Int).SetAllOne()
	assert.Equal(t, core.ErrArithmeticOverflow, s.Approve(ctx, st, asset, "alice", "bob", max))
}

func TestTransferFrom(t *testing.T) {
	ctx := context.Background()
	st := newState(t)
	s := New()

	asset, err := s.Init(ctx, st, "alice", "Tether", "USDT", u(100))
	require.Nil(t, err)

	assert.Equal(t, core.ErrAllowanceNotFound, s.TransferFrom(ctx, st, asset, "alice", "bob", u(1)))

	require.Nil(t, s.Approve(ctx, st, asset, "alice", "bob", u(40)))
	assert.Equal(t, core.ErrInsufficientAllowance, s.TransferFrom(ctx, st, asset, "alice", "bob", u(41)))

	mark := len(st.Events())
	require.Nil(t, s.TransferFrom(ctx, st, asset, "alice", "bob", u(25)))

	a, _, err := st.Allowance(ctx, asset, "alice", "bob")
	require.Nil(t, err)
	assert.Equal(t, uint64(15), a.Value.Uint64())
	assert.Equal(t, uint64(25), holding(t, st, asset, "bob").Balance.Uint64())

	events := st.Events()[mark:]
	require.Len(t, events, 2)
	approval, ok := events[0].(core.ApprovalEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(15), approval.Value.Uint64())
	_, ok = events[1].(core.TransferEvent)
	assert.True(t, ok)
}

func TestReserve(t *testing.T) {
	ctx := context.Background()
	st := newState(t)
	s := New()

	asset, err := s.Init(ctx, st, "alice", "Tether", "USDT", u(100))
	require.Nil(t, err)

	require.Nil(t, s.Reserve(ctx, st, asset, "alice", u(60)))
	b := holding(t, st, asset, "alice")
	assert.Equal(t, uint64(100), b.Balance.Uint64())
	assert.Equal(t, uint64(40), b.Free.Uint64())
	assert.Equal(t, uint64(60), b.Reserved.Uint64())
	assert.True(t, b.Consistent())

	assert.Equal(t, core.ErrInsufficientFree, s.Reserve(ctx, st, asset, "alice", u(41)))
	assert.Equal(t, core.ErrInsufficientReserved, s.Unreserve(ctx, st, asset, "alice", u(61)))
	assert.Equal(t, core.ErrBalanceNotFound, s.Reserve(ctx, st, asset, "bob", u(0)))

	require.Nil(t, s.Unreserve(ctx, st, asset, "alice", u(60)))
	b = holding(t, st, asset, "alice")
	assert.Equal(t, uint64(100), b.Free.Uint64())
	assert.True(t, b.Reserved.IsZero())
	assert.True(t, b.Consistent())
}
