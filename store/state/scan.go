package state

import (
	"context"
	"encoding/json"

	"lendbook/core"

	"github.com/pkg/errors"
)

// ScanBalances walk every committed balance record in key order
func ScanBalances(ctx context.Context, store core.KVStore, fn func(b *core.AccountBalance) error) error {
	return store.Iterate(ctx, []byte(prefixBalance), func(k, v []byte) error {
		var b core.AccountBalance
		if err := json.Unmarshal(v, &b); err != nil {
			return errors.Wrapf(err, "state: decode balance %x", k)
		}

		b.Balance = zeroIfNil(b.Balance)
		b.Free = zeroIfNil(b.Free)
		b.Reserved = zeroIfNil(b.Reserved)
		return fn(&b)
	})
}
