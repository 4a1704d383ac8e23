package ledger

import (
	"context"

	"lendbook/core"
	"lendbook/pkg/number"
	"lendbook/store/state"

	"github.com/holiman/uint256"
)

// Service balance, free, reserved and allowance bookkeeping.
//
// Every method stages its writes on st and returns before staging anything
// if a precondition or checked arithmetic step fails.
type Service struct{}

// New new ledger service
func New() *Service {
	return &Service{}
}

// Init register a new asset and credit its whole supply to owner
func (s *Service) Init(ctx context.Context, st *state.State, owner, name, ticker string, totalSupply *uint256.Int) (core.AssetID, error) {
	if len(name) > core.MaxAssetNameLength {
		return 0, core.ErrNameTooLong
	}

	if len(ticker) > core.MaxAssetTickerLength {
		return 0, core.ErrTickerTooLong
	}

	if totalSupply == nil {
		return 0, core.ErrInvalidAmount
	}

	id, err := st.AllocAssetID(ctx)
	if err != nil {
		return 0, err
	}

	holding, err := st.BalanceOrZero(ctx, id, owner)
	if err != nil {
		return 0, err
	}

	balance, err := number.Add(holding.Balance, totalSupply)
	if err != nil {
		return 0, err
	}

	free, err := number.Add(holding.Free, totalSupply)
	if err != nil {
		return 0, err
	}

	holding.Balance, holding.Free = balance, free

	asset := &core.Asset{
		ID:          id,
		Name:        name,
		Ticker:      ticker,
		TotalSupply: totalSupply.Clone(),
	}

	if err := st.PutAsset(asset); err != nil {
		return 0, err
	}

	if err := st.PutBalance(holding); err != nil {
		return 0, err
	}

	st.Emit(core.AssetCreatedEvent{
		Asset:       id,
		Owner:       owner,
		Name:        name,
		Ticker:      ticker,
		TotalSupply: totalSupply.Clone(),
	})

	return id, nil
}

// Transfer move value of free balance from one account to another
func (s *Service) Transfer(ctx context.Context, st *state.State, asset core.AssetID, from, to string, value *uint256.Int) error {
	event, err := s.move(ctx, st, asset, from, to, value)
	if err != nil {
		return err
	}

	st.Emit(event)
	return nil
}

func (s *Service) move(ctx context.Context, st *state.State, asset core.AssetID, from, to string, value *uint256.Int) (core.TransferEvent, error) {
	event := core.TransferEvent{
		Asset: asset,
		From:  from,
		To:    to,
		Value: value.Clone(),
	}

	src, found, err := st.Balance(ctx, asset, from)
	if err != nil {
		return event, err
	}

	if !found {
		return event, core.ErrBalanceNotFound
	}

	if src.Balance.Lt(value) {
		return event, core.ErrInsufficientBalance
	}

	if src.Free.Lt(value) {
		return event, core.ErrInsufficientFree
	}

	srcBalance, err := number.Sub(src.Balance, value)
	if err != nil {
		return event, err
	}

	srcFree, err := number.Sub(src.Free, value)
	if err != nil {
		return event, err
	}

	// same record on both sides, crediting it again would mint value
	if from == to {
		return event, nil
	}

	dst, err := st.BalanceOrZero(ctx, asset, to)
	if err != nil {
		return event, err
	}

	dstBalance, err := number.Add(dst.Balance, value)
	if err != nil {
		return event, err
	}

	dstFree, err := number.Add(dst.Free, value)
	if err != nil {
		return event, err
	}

	src.Balance, src.Free = srcBalance, srcFree
	dst.Balance, dst.Free = dstBalance, dstFree

	if err := st.PutBalance(src); err != nil {
		return event, err
	}

	if err := st.PutBalance(dst); err != nil {
		return event, err
	}

	return event, nil
}

// Approve raise the allowance of spender over owner's asset by value.
// Approvals accumulate, they never overwrite.
func (s *Service) Approve(ctx context.Context, st *state.State, asset core.AssetID, owner, spender string, value *uint256.Int) error {
	if _, found, err := st.Balance(ctx, asset, owner); err != nil {
		return err
	} else if !found {
		return core.ErrBalanceNotFound
	}

	allowance, found, err := st.Allowance(ctx, asset, owner, spender)
	if err != nil {
		return err
	}

	if !found {
		allowance = &core.Allowance{
			Asset:   asset,
			Owner:   owner,
			Spender: spender,
			Value:   number.Zero(),
		}
	}

	next, err := number.Add(allowance.Value, value)
	if err != nil {
		return err
	}

	allowance.Value = next
	if err := st.PutAllowance(allowance); err != nil {
		return err
	}

	st.Emit(core.ApprovalEvent{
		Asset:   asset,
		Owner:   owner,
		Spender: spender,
		Value:   value.Clone(),
	})

	return nil
}

// TransferFrom spend the allowance keyed by (asset, from, to) and move value from from to to
func (s *Service) TransferFrom(ctx context.Context, st *state.State, asset core.AssetID, from, to string, value *uint256.Int) error {
	allowance, found, err := st.Allowance(ctx, asset, from, to)
	if err != nil {
		return err
	}

	if !found {
		return core.ErrAllowanceNotFound
	}

	if allowance.Value.Lt(value) {
		return core.ErrInsufficientAllowance
	}

	left, err := number.Sub(allowance.Value, value)
	if err != nil {
		return err
	}

	transfer, err := s.move(ctx, st, asset, from, to, value)
	if err != nil {
		return err
	}

	allowance.Value = left
	if err := st.PutAllowance(allowance); err != nil {
		return err
	}

	st.Emit(core.ApprovalEvent{
		Asset:   asset,
		Owner:   from,
		Spender: to,
		Value:   left.Clone(),
	}, transfer)

	return nil
}

// Reserve move value from free to reserved, balance is unchanged
func (s *Service) Reserve(ctx context.Context, st *state.State, asset core.AssetID, account string, value *uint256.Int) error {
	holding, found, err := st.Balance(ctx, asset, account)
	if err != nil {
		return err
	}

	if !found {
		return core.ErrBalanceNotFound
	}

	if holding.Free.Lt(value) {
		return core.ErrInsufficientFree
	}

	free, err := number.Sub(holding.Free, value)
	if err != nil {
		return err
	}

	reserved, err := number.Add(holding.Reserved, value)
	if err != nil {
		return err
	}

	holding.Free, holding.Reserved = free, reserved
	if err := st.PutBalance(holding); err != nil {
		return err
	}

	st.Emit(core.ReserveEvent{
		Asset:   asset,
		Account: account,
		Value:   value.Clone(),
	})

	return nil
}

// Unreserve move value from reserved back to free
func (s *Service) Unreserve(ctx context.Context, st *state.State, asset core.AssetID, account string, value *uint256.Int) error {
	holding, found, err := st.Balance(ctx, asset, account)
	if err != nil {
		return err
	}

	if !found {
		return core.ErrBalanceNotFound
	}

	if holding.Reserved.Lt(value) {
		return core.ErrInsufficientReserved
	}

	reserved, err := number.Sub(holding.Reserved, value)
	if err != nil {
		return err
	}

	free, err := number.Add(holding.Free, value)
	if err != nil {
		return err
	}

	holding.Free, holding.Reserved = free, reserved
	if err := st.PutBalance(holding); err != nil {
		return err
	}

	st.Emit(core.UnReserveEvent{
		Asset:   asset,
		Account: account,
		Value:   value.Clone(),
	})

	return nil
}
