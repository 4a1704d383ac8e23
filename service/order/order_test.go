package order

import (
	"context"
	"testing"

	"lendbook/core"
	"lendbook/pkg/id"
	"lendbook/service/entropy"
	"lendbook/service/ledger"
	"lendbook/service/oracle"
	"lendbook/store/kv"
	"lendbook/store/leveldb"
	"lendbook/store/state"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	st     *state.State
	ledger *ledger.Service
	orders *Service
	usdt   core.AssetID
	eth    core.AssetID
}

// usdt is worth 1.0, eth 20.0. x holds 10 eth and no usdt record.
func setup(t *testing.T) *fixture {
	ctx := context.Background()
	store, err := leveldb.OpenMemory()
	require.Nil(t, err)
	t.Cleanup(func() { store.Close() })

	st := state.New(kv.Begin(store))
	l := ledger.New()
	o := oracle.New()

	usdt, err := l.Init(ctx, st, "admin", "Tether", "USDT", uint256.NewInt(1000000))
	require.Nil(t, err)
	eth, err := l.Init(ctx, st, "admin", "Ether", "ETH", uint256.NewInt(1000))
	require.Nil(t, err)

	require.Nil(t, o.SetPrice(ctx, st, usdt, uint256.NewInt(10000)))
	require.Nil(t, o.SetPrice(ctx, st, eth, uint256.NewInt(200000)))
	require.Nil(t, l.Transfer(ctx, st, eth, "admin", "x", uint256.NewInt(10)))

	return &fixture{
		st:     st,
		ledger: l,
		orders: New(l, o, entropy.Static(id.Sum("seed"))),
		usdt:   usdt,
		eth:    eth,
	}
}

func (f *fixture) borrow(btotal, stotal uint64) *core.BorrowRequest {
	return &core.BorrowRequest{
		BTotal:   uint256.NewInt(btotal),
		BToken:   f.usdt,
		Duration: 30,
		STotal:   uint256.NewInt(stotal),
		SToken:   f.eth,
		Interest: 500,
	}
}

func (f *fixture) holding(t *testing.T, asset core.AssetID, account string) *core.AccountBalance {
	b, err := f.st.BalanceOrZero(context.Background(), asset, account)
	require.Nil(t, err)
	return b
}

func TestCreateBorrowUndercollateralized(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.orders.CreateBorrow(ctx, f.st, "x", f.borrow(100, 1))
	assert.Equal(t, core.ErrInsufficientCollaterals, err)

	b := f.holding(t, f.eth, "x")
	assert.Equal(t, uint64(10), b.Free.Uint64())
	assert.True(t, b.Reserved.IsZero())

	nonce, err := f.st.Nonce(ctx)
	require.Nil(t, err)
	assert.Equal(t, uint64(0), nonce)
}

func TestCreateBorrow(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	o, err := f.orders.CreateBorrow(ctx, f.st, "x", f.borrow(100, 10))
	require.Nil(t, err)

	b := f.holding(t, f.eth, "x")
	assert.True(t, b.Free.IsZero())
	assert.Equal(t, uint64(10), b.Reserved.Uint64())
	assert.True(t, b.Consistent())

	got, found, err := f.st.BorrowOrder(ctx, o.ID)
	require.Nil(t, err)
	require.True(t, found)
	assert.Equal(t, "x", got.Owner)
	assert.True(t, got.Already.IsZero())
	assert.Equal(t, uint32(500), got.Interest)

	count, err := f.st.BorrowOrderCount(ctx)
	require.Nil(t, err)
	assert.Equal(t, uint64(1), count)

	owned, err := f.st.OwnedBorrowCount(ctx, "x")
	require.Nil(t, err)
	assert.Equal(t, uint64(1), owned)

	nonce, err := f.st.Nonce(ctx)
	require.Nil(t, err)
	assert.Equal(t, uint64(1), nonce)

	events := f.st.Events()
	_, ok := events[len(events)-2].(core.ReserveEvent)
	assert.True(t, ok)
	created, ok := events[len(events)-1].(core.CreateBorrowEvent)
	require.True(t, ok)
	assert.Equal(t, o.ID, created.ID)
}

func TestCreateBorrowValueComparison(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	// 100 × 200 against 50 × 300, both assets priced 1.0
	l := ledger.New()
	a, err := l.Init(ctx, f.st, "y", "A", "A", uint256.NewInt(1000))
	require.Nil(t, err)
	b, err := l.Init(ctx, f.st, "y", "B", "B", uint256.NewInt(1000))
	require.Nil(t, err)

	o := oracle.New()
	require.Nil(t, o.SetPrice(ctx, f.st, a, uint256.NewInt(200)))
	require.Nil(t, o.SetPrice(ctx, f.st, b, uint256.NewInt(300)))

	_, err = f.orders.CreateBorrow(ctx, f.st, "y", &core.BorrowRequest{
		BTotal: uint256.NewInt(100),
		BToken: a,
		STotal: uint256.NewInt(50),
		SToken: b,
	})
	assert.Equal(t, core.ErrInsufficientCollaterals, err)
}

func TestCreateBorrowPreconditions(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.orders.CreateBorrow(ctx, f.st, "x", f.borrow(0, 10))
	assert.Equal(t, core.ErrInvalidAmount, err)

	_, err = f.orders.CreateBorrow(ctx, f.st, "nobody", f.borrow(1, 1))
	assert.Equal(t, core.ErrBalanceNotFound, err)

	req := f.borrow(1, 1)
	req.BToken = 99
	_, err = f.orders.CreateBorrow(ctx, f.st, "x", req)
	assert.Equal(t, core.ErrAssetNotFound, err)

	unpriced, err := f.ledger.Init(ctx, f.st, "admin", "Unpriced", "UNP", uint256.NewInt(1))
	require.Nil(t, err)
	req = f.borrow(1, 1)
	req.BToken = unpriced
	_, err = f.orders.CreateBorrow(ctx, f.st, "x", req)
	assert.Equal(t, core.ErrPriceNotFound, err)
}

func TestOrderIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	a, err := f.orders.CreateBorrow(ctx, f.st, "x", f.borrow(10, 1))
	require.Nil(t, err)
	b, err := f.orders.CreateBorrow(ctx, f.st, "x", f.borrow(10, 1))
	require.Nil(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCancelBorrowSwapRemove(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	var ids []core.Hash
	for i := 0; i < 3; i++ {
		o, err := f.orders.CreateBorrow(ctx, f.st, "x", f.borrow(20, 1))
		require.Nil(t, err)
		ids = append(ids, o.ID)
	}

	assert.Equal(t, core.ErrOperationForbidden, f.orders.CancelBorrow(ctx, f.st, "admin", ids[0]))
	assert.Equal(t, core.ErrOrderNotFound, f.orders.CancelBorrow(ctx, f.st, "x", id.Sum("missing")))

	require.Nil(t, f.orders.CancelBorrow(ctx, f.st, "x", ids[0]))

	count, err := f.st.BorrowOrderCount(ctx)
	require.Nil(t, err)
	assert.Equal(t, uint64(2), count)

	first, _, err := f.st.BorrowOrderAt(ctx, 0)
	require.Nil(t, err)
	second, _, err := f.st.BorrowOrderAt(ctx, 1)
	require.Nil(t, err)
	assert.Equal(t, []core.Hash{ids[2], ids[1]}, []core.Hash{first, second})

	b := f.holding(t, f.eth, "x")
	assert.Equal(t, uint64(8), b.Free.Uint64())
	assert.Equal(t, uint64(2), b.Reserved.Uint64())

	_, found, err := f.st.BorrowOrder(ctx, ids[0])
	require.Nil(t, err)
	assert.False(t, found)
}

func TestSupply(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	req := &core.SupplyRequest{
		Total:     uint256.NewInt(4),
		SToken:    f.eth,
		Tokens:    []core.AssetID{f.usdt},
		Amortgage: 15000,
		Duration:  30,
		Interest:  300,
	}

	_, err := f.orders.CreateSupply(ctx, f.st, "x", &core.SupplyRequest{Total: uint256.NewInt(1), SToken: f.eth})
	assert.Equal(t, core.ErrInvalidTokens, err)

	bad := *req
	bad.Tokens = []core.AssetID{f.usdt, 42}
	_, err = f.orders.CreateSupply(ctx, f.st, "x", &bad)
	assert.Equal(t, core.ErrAssetNotFound, err)

	bad = *req
	bad.Total = uint256.NewInt(11)
	_, err = f.orders.CreateSupply(ctx, f.st, "x", &bad)
	assert.Equal(t, core.ErrInsufficientFree, err)

	o, err := f.orders.CreateSupply(ctx, f.st, "x", req)
	require.Nil(t, err)
	assert.Equal(t, uint64(4), f.holding(t, f.eth, "x").Reserved.Uint64())

	owned, err := f.st.OwnedSupplyCount(ctx, "x")
	require.Nil(t, err)
	assert.Equal(t, uint64(1), owned)

	require.Nil(t, f.orders.CancelSupply(ctx, f.st, "x", o.ID))
	b := f.holding(t, f.eth, "x")
	assert.Equal(t, uint64(10), b.Free.Uint64())
	assert.True(t, b.Reserved.IsZero())

	count, err := f.st.SupplyOrderCount(ctx)
	require.Nil(t, err)
	assert.Equal(t, uint64(0), count)
}
