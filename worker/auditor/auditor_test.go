package auditor

import (
	"context"
	"testing"

	"lendbook/core"
	"lendbook/store/kv"
	"lendbook/store/leveldb"
	"lendbook/store/state"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudit(t *testing.T) {
	ctx := context.Background()
	store, err := leveldb.OpenMemory()
	require.Nil(t, err)
	defer store.Close()

	st := state.New(kv.Begin(store))

	good := core.NewAccountBalance(1, "alice")
	good.Balance.SetUint64(10)
	good.Free.SetUint64(4)
	good.Reserved.SetUint64(6)
	require.Nil(t, st.PutBalance(good))

	bad := core.NewAccountBalance(1, "bob")
	bad.Balance = uint256.NewInt(10)
	bad.Free = uint256.NewInt(10)
	bad.Reserved = uint256.NewInt(1)
	require.Nil(t, st.PutBalance(bad))
	require.Nil(t, st.Tx().Commit(ctx))

	w, err := New(core.Auditor{}, store)
	require.Nil(t, err)

	violations, err := w.Audit(ctx)
	require.Nil(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "bob", violations[0].Account)
}

func TestInvalidSpec(t *testing.T) {
	_, err := New(core.Auditor{Spec: "not a spec"}, nil)
	assert.NotNil(t, err)
}
