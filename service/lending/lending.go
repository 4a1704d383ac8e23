package lending

import (
	"context"
	"sync"
	"time"

	"lendbook/core"
	"lendbook/service/collateral"
	"lendbook/service/ledger"
	"lendbook/service/oracle"
	"lendbook/service/order"
	"lendbook/store/kv"
	"lendbook/store/state"

	"github.com/fox-one/pkg/logger"
	"github.com/holiman/uint256"
)

// Module the lending core. Mutating operations run one at a time, each on
// its own transaction; a failed operation writes nothing and emits nothing.
// The sink is called with the write lock held and must not call back into the Module.
type Module struct {
	mu      sync.RWMutex
	store   core.KVStore
	system  *core.System
	sink    core.EventSink
	metrics *Metrics

	ledger     *ledger.Service
	oracle     *oracle.Service
	collateral *collateral.Service
	orders     *order.Service
}

// New new lending module, sink and metrics may be nil
func New(
	store core.KVStore,
	system *core.System,
	entropy core.EntropySource,
	sink core.EventSink,
	metrics *Metrics,
) *Module {
	l := ledger.New()
	o := oracle.New()

	return &Module{
		store:      store,
		system:     system,
		sink:       sink,
		metrics:    metrics,
		ledger:     l,
		oracle:     o,
		collateral: collateral.New(),
		orders:     order.New(l, o, entropy),
	}
}

func (m *Module) exec(ctx context.Context, op string, fn func(st *state.State) error) error {
	start := time.Now()

	m.mu.Lock()
	st := state.New(kv.Begin(m.store))
	err := fn(st)
	if err == nil {
		err = st.Tx().Commit(ctx)
	}

	// events reach the sink in commit order
	if err == nil && m.sink != nil {
		m.sink.Publish(ctx, st.Events()...)
	}
	m.mu.Unlock()

	m.metrics.observe(op, start, err)

	if err != nil {
		log := logger.FromContext(ctx).WithError(err)
		if _, ok := err.(core.ErrorCode); ok {
			log.Debugln(op, "rejected")
		} else {
			log.Errorln(op, "failed")
		}

		return err
	}

	return nil
}

func (m *Module) view(ctx context.Context, fn func(st *state.State) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return fn(state.New(kv.Begin(m.store)))
}

// authorize caller must be signed, caller and every account it names must fit MaxAccountLength
func authorize(caller string, accounts ...string) error {
	if caller == "" {
		return core.ErrUnauthorized
	}

	if len(caller) > core.MaxAccountLength {
		return core.ErrAccountTooLong
	}

	for _, account := range accounts {
		if len(account) > core.MaxAccountLength {
			return core.ErrAccountTooLong
		}
	}

	return nil
}

func (m *Module) requireAdmin(caller string) error {
	if err := authorize(caller); err != nil {
		return err
	}

	if !m.system.IsAdmin(caller) {
		return core.ErrOperationForbidden
	}

	return nil
}

// requireSelf caller acts on account, or is an admin
func (m *Module) requireSelf(caller, account string) error {
	if err := authorize(caller, account); err != nil {
		return err
	}

	if caller != account && !m.system.IsAdmin(caller) {
		return core.ErrOperationForbidden
	}

	return nil
}

func requireAmount(values ...*uint256.Int) error {
	for _, v := range values {
		if v == nil {
			return core.ErrInvalidAmount
		}
	}

	return nil
}

// InitAsset register an asset, its whole supply goes to the calling admin
func (m *Module) InitAsset(ctx context.Context, caller, name, ticker string, totalSupply *uint256.Int) (core.AssetID, error) {
	if err := m.requireAdmin(caller); err != nil {
		return 0, err
	}

	if err := requireAmount(totalSupply); err != nil {
		return 0, err
	}

	var id core.AssetID
	err := m.exec(ctx, "init_asset", func(st *state.State) (err error) {
		id, err = m.ledger.Init(ctx, st, caller, name, ticker, totalSupply)
		return err
	})

	return id, err
}

func (m *Module) Transfer(ctx context.Context, caller string, asset core.AssetID, to string, value *uint256.Int) error {
	if err := authorize(caller, to); err != nil {
		return err
	}

	if err := requireAmount(value); err != nil {
		return err
	}

	return m.exec(ctx, "transfer", func(st *state.State) error {
		return m.ledger.Transfer(ctx, st, asset, caller, to, value)
	})
}

func (m *Module) Approve(ctx context.Context, caller string, asset core.AssetID, spender string, value *uint256.Int) error {
	if err := authorize(caller, spender); err != nil {
		return err
	}

	if err := requireAmount(value); err != nil {
		return err
	}

	return m.exec(ctx, "approve", func(st *state.State) error {
		return m.ledger.Approve(ctx, st, asset, caller, spender, value)
	})
}

// TransferFrom spends the allowance granted by from to to, any signed caller may submit it
func (m *Module) TransferFrom(ctx context.Context, caller string, asset core.AssetID, from, to string, value *uint256.Int) error {
	if err := authorize(caller, from, to); err != nil {
		return err
	}

	if err := requireAmount(value); err != nil {
		return err
	}

	return m.exec(ctx, "transfer_from", func(st *state.State) error {
		return m.ledger.TransferFrom(ctx, st, asset, from, to, value)
	})
}

func (m *Module) Reserve(ctx context.Context, caller string, asset core.AssetID, value *uint256.Int) error {
	if err := authorize(caller); err != nil {
		return err
	}

	if err := requireAmount(value); err != nil {
		return err
	}

	return m.exec(ctx, "reserve", func(st *state.State) error {
		return m.ledger.Reserve(ctx, st, asset, caller, value)
	})
}

func (m *Module) Unreserve(ctx context.Context, caller string, asset core.AssetID, value *uint256.Int) error {
	if err := authorize(caller); err != nil {
		return err
	}

	if err := requireAmount(value); err != nil {
		return err
	}

	return m.exec(ctx, "unreserve", func(st *state.State) error {
		return m.ledger.Unreserve(ctx, st, asset, caller, value)
	})
}

func (m *Module) SetPrice(ctx context.Context, caller string, asset core.AssetID, price *uint256.Int) error {
	if err := m.requireAdmin(caller); err != nil {
		return err
	}

	return m.exec(ctx, "set_price", func(st *state.State) error {
		return m.oracle.SetPrice(ctx, st, asset, price)
	})
}

func (m *Module) AddCollateral(ctx context.Context, caller, account string, amount *uint256.Int, asset core.AssetID, orderID core.Hash) (core.Hash, error) {
	if err := m.requireSelf(caller, account); err != nil {
		return core.Hash{}, err
	}

	if err := requireAmount(amount); err != nil {
		return core.Hash{}, err
	}

	var hash core.Hash
	err := m.exec(ctx, "add_collateral", func(st *state.State) (err error) {
		hash, err = m.collateral.Add(ctx, st, account, amount, asset, orderID)
		return err
	})

	return hash, err
}

func (m *Module) MakeCollateralHot(ctx context.Context, caller, account string, hash core.Hash) error {
	if err := m.requireSelf(caller, account); err != nil {
		return err
	}

	return m.exec(ctx, "make_collateral_hot", func(st *state.State) error {
		return m.collateral.MakeHot(ctx, st, account, hash)
	})
}

func (m *Module) FillCollateral(ctx context.Context, caller, account string, hash core.Hash) error {
	if err := m.requireSelf(caller, account); err != nil {
		return err
	}

	return m.exec(ctx, "fill_collateral", func(st *state.State) error {
		return m.collateral.Fill(ctx, st, account, hash)
	})
}

func (m *Module) CancelCollateral(ctx context.Context, caller, account string, hash core.Hash) error {
	if err := m.requireSelf(caller, account); err != nil {
		return err
	}

	return m.exec(ctx, "cancel_collateral", func(st *state.State) error {
		return m.collateral.Cancel(ctx, st, account, hash)
	})
}

func (m *Module) RemoveCollateral(ctx context.Context, caller, account string, hash core.Hash) error {
	if err := m.requireSelf(caller, account); err != nil {
		return err
	}

	return m.exec(ctx, "remove_collateral", func(st *state.State) error {
		return m.collateral.Remove(ctx, st, account, hash)
	})
}

func (m *Module) CreateBorrow(ctx context.Context, caller string, req *core.BorrowRequest) (core.Hash, error) {
	if err := authorize(caller); err != nil {
		return core.Hash{}, err
	}

	var id core.Hash
	err := m.exec(ctx, "create_borrow", func(st *state.State) error {
		o, err := m.orders.CreateBorrow(ctx, st, caller, req)
		if err != nil {
			return err
		}

		id = o.ID
		return nil
	})

	return id, err
}

func (m *Module) CreateSupply(ctx context.Context, caller string, req *core.SupplyRequest) (core.Hash, error) {
	if err := authorize(caller); err != nil {
		return core.Hash{}, err
	}

	var id core.Hash
	err := m.exec(ctx, "create_supply", func(st *state.State) error {
		o, err := m.orders.CreateSupply(ctx, st, caller, req)
		if err != nil {
			return err
		}

		id = o.ID
		return nil
	})

	return id, err
}

func (m *Module) CancelBorrow(ctx context.Context, caller string, id core.Hash) error {
	if err := authorize(caller); err != nil {
		return err
	}

	return m.exec(ctx, "cancel_borrow", func(st *state.State) error {
		return m.orders.CancelBorrow(ctx, st, caller, id)
	})
}

func (m *Module) CancelSupply(ctx context.Context, caller string, id core.Hash) error {
	if err := authorize(caller); err != nil {
		return err
	}

	return m.exec(ctx, "cancel_supply", func(st *state.State) error {
		return m.orders.CancelSupply(ctx, st, caller, id)
	})
}
