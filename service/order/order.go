package order

import (
	"context"

	"lendbook/core"
	"lendbook/pkg/id"
	"lendbook/pkg/number"
	"lendbook/store/state"

	"github.com/holiman/uint256"
)

// Ledger reservation side of the ledger
type Ledger interface {
	Reserve(ctx context.Context, st *state.State, asset core.AssetID, account string, value *uint256.Int) error
	Unreserve(ctx context.Context, st *state.State, asset core.AssetID, account string, value *uint256.Int) error
}

// Valuer prices amounts in reference units
type Valuer interface {
	Value(ctx context.Context, st *state.State, asset core.AssetID, amount *uint256.Int) (*uint256.Int, error)
}

// Service borrow and supply order book
type Service struct {
	ledger  Ledger
	valuer  Valuer
	entropy core.EntropySource
}

// New new order service
func New(ledger Ledger, valuer Valuer, entropy core.EntropySource) *Service {
	return &Service{
		ledger:  ledger,
		valuer:  valuer,
		entropy: entropy,
	}
}

func requireAsset(ctx context.Context, st *state.State, asset core.AssetID) error {
	ok, err := st.HasAsset(ctx, asset)
	if err != nil {
		return err
	}

	if !ok {
		return core.ErrAssetNotFound
	}

	return nil
}

func requireHolding(ctx context.Context, st *state.State, asset core.AssetID, owner string) error {
	_, found, err := st.Balance(ctx, asset, owner)
	if err != nil {
		return err
	}

	if !found {
		return core.ErrBalanceNotFound
	}

	return nil
}

// nextID derive the id of the next order and advance the nonce
func (s *Service) nextID(ctx context.Context, st *state.State, owner string, exists func(context.Context, core.Hash) (bool, error)) (core.Hash, error) {
	seed, err := s.entropy.Seed(ctx)
	if err != nil {
		return core.Hash{}, err
	}

	nonce, err := st.Nonce(ctx)
	if err != nil {
		return core.Hash{}, err
	}

	orderID := id.OrderID(seed, owner, nonce)
	taken, err := exists(ctx, orderID)
	if err != nil {
		return core.Hash{}, err
	}

	if taken {
		return core.Hash{}, core.ErrOrderConflicts
	}

	st.SetNonce(nonce + 1)
	return orderID, nil
}

// CreateBorrow reserve the offered collateral and list a borrow order
func (s *Service) CreateBorrow(ctx context.Context, st *state.State, owner string, req *core.BorrowRequest) (*core.BorrowOrder, error) {
	if req.BTotal == nil || req.BTotal.IsZero() || req.STotal == nil || req.STotal.IsZero() {
		return nil, core.ErrInvalidAmount
	}

	if err := requireHolding(ctx, st, req.SToken, owner); err != nil {
		return nil, err
	}

	if err := requireAsset(ctx, st, req.BToken); err != nil {
		return nil, err
	}

	if err := requireAsset(ctx, st, req.SToken); err != nil {
		return nil, err
	}

	borrowValue, err := s.valuer.Value(ctx, st, req.BToken, req.BTotal)
	if err != nil {
		return nil, err
	}

	collateralValue, err := s.valuer.Value(ctx, st, req.SToken, req.STotal)
	if err != nil {
		return nil, err
	}

	if collateralValue.Lt(borrowValue) {
		return nil, core.ErrInsufficientCollaterals
	}

	orderID, err := s.nextID(ctx, st, owner, st.HasBorrowOrder)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Reserve(ctx, st, req.SToken, owner, req.STotal); err != nil {
		return nil, err
	}

	o := &core.BorrowOrder{
		ID:       orderID,
		Owner:    owner,
		BTotal:   req.BTotal.Clone(),
		BToken:   req.BToken,
		Already:  number.Zero(),
		Duration: req.Duration,
		STotal:   req.STotal.Clone(),
		SToken:   req.SToken,
		Interest: req.Interest,
	}

	if err := st.InsertBorrowOrder(ctx, o); err != nil {
		return nil, err
	}

	st.Emit(core.CreateBorrowEvent{
		ID:       o.ID,
		Owner:    owner,
		BTotal:   o.BTotal.Clone(),
		BToken:   o.BToken,
		Duration: o.Duration,
		STotal:   o.STotal.Clone(),
		SToken:   o.SToken,
		Interest: o.Interest,
	})

	return o, nil
}

// CreateSupply reserve the supplied funds and list a supply order
func (s *Service) CreateSupply(ctx context.Context, st *state.State, owner string, req *core.SupplyRequest) (*core.SupplyOrder, error) {
	if req.Total == nil || req.Total.IsZero() {
		return nil, core.ErrInvalidAmount
	}

	if len(req.Tokens) == 0 {
		return nil, core.ErrInvalidTokens
	}

	if err := requireHolding(ctx, st, req.SToken, owner); err != nil {
		return nil, err
	}

	if err := requireAsset(ctx, st, req.SToken); err != nil {
		return nil, err
	}

	for _, token := range req.Tokens {
		if err := requireAsset(ctx, st, token); err != nil {
			return nil, err
		}
	}

	orderID, err := s.nextID(ctx, st, owner, st.HasSupplyOrder)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Reserve(ctx, st, req.SToken, owner, req.Total); err != nil {
		return nil, err
	}

	o := &core.SupplyOrder{
		ID:        orderID,
		Owner:     owner,
		Total:     req.Total.Clone(),
		SToken:    req.SToken,
		Tokens:    append([]core.AssetID(nil), req.Tokens...),
		Amortgage: req.Amortgage,
		Duration:  req.Duration,
		Interest:  req.Interest,
	}

	if err := st.InsertSupplyOrder(ctx, o); err != nil {
		return nil, err
	}

	st.Emit(core.CreateSupplyEvent{
		ID:     o.ID,
		Owner:  owner,
		Total:  o.Total.Clone(),
		SToken: o.SToken,
	})

	return o, nil
}

// CancelBorrow release the collateral of an owned borrow order and delist it
func (s *Service) CancelBorrow(ctx context.Context, st *state.State, owner string, orderID core.Hash) error {
	o, found, err := st.BorrowOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if !found {
		return core.ErrOrderNotFound
	}

	if o.Owner != owner {
		return core.ErrOperationForbidden
	}

	if err := s.ledger.Unreserve(ctx, st, o.SToken, o.Owner, o.STotal); err != nil {
		return err
	}

	if err := st.RemoveBorrowOrder(ctx, o); err != nil {
		return err
	}

	st.Emit(core.CancelBorrowEvent{Owner: owner, ID: orderID})
	return nil
}

// CancelSupply release the funds of an owned supply order and delist it
func (s *Service) CancelSupply(ctx context.Context, st *state.State, owner string, orderID core.Hash) error {
	o, found, err := st.SupplyOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if !found {
		return core.ErrOrderNotFound
	}

	if o.Owner != owner {
		return core.ErrOperationForbidden
	}

	if err := s.ledger.Unreserve(ctx, st, o.SToken, o.Owner, o.Total); err != nil {
		return err
	}

	if err := st.RemoveSupplyOrder(ctx, o); err != nil {
		return err
	}

	st.Emit(core.CancelSupplyEvent{Owner: owner, ID: orderID})
	return nil
}
