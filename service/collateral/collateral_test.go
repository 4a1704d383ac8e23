package collateral

import (
	"context"
	"testing"

	"lendbook/core"
	"lendbook/pkg/id"
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

var orderID = id.Sum("order")

func TestAddConflicts(t *testing.T) {
	ctx := context.Background()
	st := newState(t)
	s := New()

	hash, err := s.Add(ctx, st, "alice", uint256.NewInt(10), 1, orderID)
	require.Nil(t, err)
	assert.Equal(t, id.CollateralHash("alice", 1, orderID), hash)

	_, err = s.Add(ctx, st, "alice", uint256.NewInt(99), 1, orderID)
	assert.Equal(t, core.ErrCollateralConflicts, err)

	// a different asset is a different deposit
	_, err = s.Add(ctx, st, "alice", uint256.NewInt(10), 2, orderID)
	assert.Nil(t, err)

	c, found, err := st.Collateral(ctx, "alice", hash)
	require.Nil(t, err)
	require.True(t, found)
	assert.Equal(t, core.CollateralCreated, c.Status)
	assert.Equal(t, uint64(10), c.Amount.Uint64())
}

func TestLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel removes", func(t *testing.T) {
		st := newState(t)
		s := New()
		hash, err := s.Add(ctx, st, "alice", uint256.NewInt(1), 1, orderID)
		require.Nil(t, err)

		require.Nil(t, s.Cancel(ctx, st, "alice", hash))
		exist, err := st.HasCollateral(ctx, "alice", hash)
		require.Nil(t, err)
		assert.False(t, exist)

		events := st.Events()
		removed, ok := events[len(events)-1].(core.CollateralRemoveEvent)
		require.True(t, ok)
		assert.Equal(t, core.CollateralCanceled, removed.Status)
	})

	t.Run("fill needs hot", func(t *testing.T) {
		st := newState(t)
		s := New()
		hash, err := s.Add(ctx, st, "alice", uint256.NewInt(1), 1, orderID)
		require.Nil(t, err)

		assert.Equal(t, core.ErrCollateralStatus, s.Fill(ctx, st, "alice", hash))
		require.Nil(t, s.MakeHot(ctx, st, "alice", hash))
		assert.Equal(t, core.ErrCollateralStatus, s.MakeHot(ctx, st, "alice", hash))
		assert.Equal(t, core.ErrCollateralStatus, s.Cancel(ctx, st, "alice", hash))
		require.Nil(t, s.Fill(ctx, st, "alice", hash))

		exist, err := st.HasCollateral(ctx, "alice", hash)
		require.Nil(t, err)
		assert.False(t, exist)
	})

	t.Run("remove unfinished", func(t *testing.T) {
		st := newState(t)
		s := New()
		hash, err := s.Add(ctx, st, "alice", uint256.NewInt(1), 1, orderID)
		require.Nil(t, err)

		assert.Equal(t, core.ErrCollateralNotFinished, s.Remove(ctx, st, "alice", hash))
		exist, err := st.HasCollateral(ctx, "alice", hash)
		require.Nil(t, err)
		assert.True(t, exist)
	})

	t.Run("missing", func(t *testing.T) {
		st := newState(t)
		s := New()
		assert.Equal(t, core.ErrCollateralNotFound, s.MakeHot(ctx, st, "alice", orderID))
		assert.Equal(t, core.ErrCollateralNotFound, s.Remove(ctx, st, "alice", orderID))
	})
}
