package lending

import (
	"context"

	"lendbook/core"
	"lendbook/pkg/id"
	"lendbook/pkg/number"
	"lendbook/store/state"

	"github.com/holiman/uint256"
)

func (m *Module) Asset(ctx context.Context, asset core.AssetID) (*core.Asset, error) {
	var a *core.Asset
	err := m.view(ctx, func(st *state.State) error {
		v, found, err := st.Asset(ctx, asset)
		if err != nil {
			return err
		}

		if !found {
			return core.ErrAssetNotFound
		}

		a = v
		return nil
	})

	return a, err
}

func (m *Module) NextAssetID(ctx context.Context) (id core.AssetID, err error) {
	err = m.view(ctx, func(st *state.State) (err error) {
		id, err = st.NextAssetID(ctx)
		return err
	})

	return
}

// Balance holding of account, all zero when it has no record
func (m *Module) Balance(ctx context.Context, asset core.AssetID, account string) (b *core.AccountBalance, err error) {
	err = m.view(ctx, func(st *state.State) (err error) {
		b, err = st.BalanceOrZero(ctx, asset, account)
		return err
	})

	return
}

// Allowance zero when never approved
func (m *Module) Allowance(ctx context.Context, asset core.AssetID, owner, spender string) (*uint256.Int, error) {
	value := number.Zero()
	err := m.view(ctx, func(st *state.State) error {
		a, found, err := st.Allowance(ctx, asset, owner, spender)
		if err != nil {
			return err
		}

		if found {
			value = a.Value
		}

		return nil
	})

	return value, err
}

func (m *Module) Price(ctx context.Context, asset core.AssetID) (price *uint256.Int, err error) {
	err = m.view(ctx, func(st *state.State) (err error) {
		price, err = m.oracle.Price(ctx, st, asset)
		return err
	})

	return
}

// CollateralHash content hash a deposit of (account, asset, orderID) is stored under
func (m *Module) CollateralHash(account string, asset core.AssetID, orderID core.Hash) core.Hash {
	return id.CollateralHash(account, asset, orderID)
}

func (m *Module) Collateral(ctx context.Context, account string, hash core.Hash) (*core.Collateral, error) {
	var c *core.Collateral
	err := m.view(ctx, func(st *state.State) error {
		v, found, err := st.Collateral(ctx, account, hash)
		if err != nil {
			return err
		}

		if !found {
			return core.ErrCollateralNotFound
		}

		c = v
		return nil
	})

	return c, err
}

func (m *Module) Nonce(ctx context.Context) (n uint64, err error) {
	err = m.view(ctx, func(st *state.State) (err error) {
		n, err = st.Nonce(ctx)
		return err
	})

	return
}

func borrowOrder(ctx context.Context, st *state.State, id core.Hash) (*core.BorrowOrder, error) {
	o, found, err := st.BorrowOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, core.ErrOrderNotFound
	}

	return o, nil
}

func (m *Module) BorrowOrder(ctx context.Context, id core.Hash) (o *core.BorrowOrder, err error) {
	err = m.view(ctx, func(st *state.State) (err error) {
		o, err = borrowOrder(ctx, st, id)
		return err
	})

	return
}

func (m *Module) BorrowOrderCount(ctx context.Context) (n uint64, err error) {
	err = m.view(ctx, func(st *state.State) (err error) {
		n, err = st.BorrowOrderCount(ctx)
		return err
	})

	return
}

func (m *Module) OwnedBorrowCount(ctx context.Context, owner string) (n uint64, err error) {
	err = m.view(ctx, func(st *state.State) (err error) {
		n, err = st.OwnedBorrowCount(ctx, owner)
		return err
	})

	return
}

func (m *Module) BorrowOrderByIndex(ctx context.Context, n uint64) (o *core.BorrowOrder, err error) {
	err = m.view(ctx, func(st *state.State) error {
		id, found, err := st.BorrowOrderAt(ctx, n)
		if err != nil {
			return err
		}

		if !found {
			return core.ErrOrderNotFound
		}

		o, err = borrowOrder(ctx, st, id)
		return err
	})

	return
}

func (m *Module) OwnedBorrowOrderByIndex(ctx context.Context, owner string, n uint64) (o *core.BorrowOrder, err error) {
	err = m.view(ctx, func(st *state.State) error {
		id, found, err := st.OwnedBorrowAt(ctx, owner, n)
		if err != nil {
			return err
		}

		if !found {
			return core.ErrOrderNotFound
		}

		o, err = borrowOrder(ctx, st, id)
		return err
	})

	return
}

// BorrowOrders page of the global index, or of owner's index when owner is set
func (m *Module) BorrowOrders(ctx context.Context, owner string, offset, limit uint64) ([]*core.BorrowOrder, error) {
	var orders []*core.BorrowOrder
	err := m.view(ctx, func(st *state.State) error {
		count, at := st.BorrowOrderCount, st.BorrowOrderAt
		if owner != "" {
			count = func(ctx context.Context) (uint64, error) { return st.OwnedBorrowCount(ctx, owner) }
			at = func(ctx context.Context, n uint64) (core.Hash, bool, error) { return st.OwnedBorrowAt(ctx, owner, n) }
		}

		return page(ctx, offset, limit, count, at, func(id core.Hash) error {
			o, err := borrowOrder(ctx, st, id)
			if err != nil {
				return err
			}

			orders = append(orders, o)
			return nil
		})
	})

	return orders, err
}

func supplyOrder(ctx context.Context, st *state.State, id core.Hash) (*core.SupplyOrder, error) {
	o, found, err := st.SupplyOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, core.ErrOrderNotFound
	}

	return o, nil
}

func (m *Module) SupplyOrder(ctx context.Context, id core.Hash) (o *core.SupplyOrder, err error) {
	err = m.view(ctx, func(st *state.State) (err error) {
		o, err = supplyOrder(ctx, st, id)
		return err
	})

	return
}

func (m *Module) SupplyOrderCount(ctx context.Context) (n uint64, err error) {
	err = m.view(ctx, func(st *state.State) (err error) {
		n, err = st.SupplyOrderCount(ctx)
		return err
	})

	return
}

func (m *Module) OwnedSupplyCount(ctx context.Context, owner string) (n uint64, err error) {
	err = m.view(ctx, func(st *state.State) (err error) {
		n, err = st.OwnedSupplyCount(ctx, owner)
		return err
	})

	return
}

func (m *Module) SupplyOrderByIndex(ctx context.Context, n uint64) (o *core.SupplyOrder, err error) {
	err = m.view(ctx, func(st *state.State) error {
		id, found, err := st.SupplyOrderAt(ctx, n)
		if err != nil {
			return err
		}

		if !found {
			return core.ErrOrderNotFound
		}

		o, err = supplyOrder(ctx, st, id)
		return err
	})

	return
}

func (m *Module) OwnedSupplyOrderByIndex(ctx context.Context, owner string, n uint64) (o *core.SupplyOrder, err error) {
	err = m.view(ctx, func(st *state.State) error {
		id, found, err := st.OwnedSupplyAt(ctx, owner, n)
		if err != nil {
			return err
		}

		if !found {
			return core.ErrOrderNotFound
		}

		o, err = supplyOrder(ctx, st, id)
		return err
	})

	return
}

// SupplyOrders page of the global index, or of owner's index when owner is set
func (m *Module) SupplyOrders(ctx context.Context, owner string, offset, limit uint64) ([]*core.SupplyOrder, error) {
	var orders []*core.SupplyOrder
	err := m.view(ctx, func(st *state.State) error {
		count, at := st.SupplyOrderCount, st.SupplyOrderAt
		if owner != "" {
			count = func(ctx context.Context) (uint64, error) { return st.OwnedSupplyCount(ctx, owner) }
			at = func(ctx context.Context, n uint64) (core.Hash, bool, error) { return st.OwnedSupplyAt(ctx, owner, n) }
		}

		return page(ctx, offset, limit, count, at, func(id core.Hash) error {
			o, err := supplyOrder(ctx, st, id)
			if err != nil {
				return err
			}

			orders = append(orders, o)
			return nil
		})
	})

	return orders, err
}

func page(
	ctx context.Context,
	offset, limit uint64,
	count func(context.Context) (uint64, error),
	at func(context.Context, uint64) (core.Hash, bool, error),
	fn func(id core.Hash) error,
) error {
	total, err := count(ctx)
	if err != nil {
		return err
	}

	for n := offset; n < total && n-offset < limit; n++ {
		id, found, err := at(ctx, n)
		if err != nil {
			return err
		}

		if !found {
			break
		}

		if err := fn(id); err != nil {
			return err
		}
	}

	return nil
}
