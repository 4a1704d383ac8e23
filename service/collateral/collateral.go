package collateral

import (
	"context"

	"lendbook/core"
	"lendbook/pkg/id"
	"lendbook/store/state"

	"github.com/holiman/uint256"
)

// Service collateral escrow state machine
//
//	Created -> Hot -> Filled
//	Created -> Canceled
//
// Filled and Canceled entries are removed right after the transition.
type Service struct{}

// New new collateral service
func New() *Service {
	return &Service{}
}

// Add deposit a new collateral in Created state, returns its content hash
func (s *Service) Add(ctx context.Context, st *state.State, account string, amount *uint256.Int, asset core.AssetID, orderID core.Hash) (core.Hash, error) {
	hash := id.CollateralHash(account, asset, orderID)

	exist, err := st.HasCollateral(ctx, account, hash)
	if err != nil {
		return hash, err
	}

	if exist {
		return hash, core.ErrCollateralConflicts
	}

	c := &core.Collateral{
		Account: account,
		Amount:  amount.Clone(),
		Asset:   asset,
		OrderID: orderID,
		Status:  core.CollateralCreated,
		Hash:    hash,
	}

	if err := st.PutCollateral(c); err != nil {
		return hash, err
	}

	st.Emit(core.CollateralCreateEvent{
		Account: account,
		Amount:  amount.Clone(),
		Asset:   asset,
		OrderID: orderID,
		Hash:    hash,
	})

	return hash, nil
}

func (s *Service) transit(ctx context.Context, st *state.State, account string, hash core.Hash, from, to core.CollateralStatus) (*core.Collateral, error) {
	c, found, err := st.Collateral(ctx, account, hash)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, core.ErrCollateralNotFound
	}

	if c.Status != from {
		return nil, core.ErrCollateralStatus
	}

	c.Status = to
	if err := st.PutCollateral(c); err != nil {
		return nil, err
	}

	return c, nil
}

// MakeHot Created -> Hot
func (s *Service) MakeHot(ctx context.Context, st *state.State, account string, hash core.Hash) error {
	if _, err := s.transit(ctx, st, account, hash, core.CollateralCreated, core.CollateralHot); err != nil {
		return err
	}

	st.Emit(core.CollateralHotEvent{Account: account, Hash: hash})
	return nil
}

// Fill Hot -> Filled, then remove
func (s *Service) Fill(ctx context.Context, st *state.State, account string, hash core.Hash) error {
	if _, err := s.transit(ctx, st, account, hash, core.CollateralHot, core.CollateralFilled); err != nil {
		return err
	}

	return s.Remove(ctx, st, account, hash)
}

// Cancel Created -> Canceled, then remove
func (s *Service) Cancel(ctx context.Context, st *state.State, account string, hash core.Hash) error {
	if _, err := s.transit(ctx, st, account, hash, core.CollateralCreated, core.CollateralCanceled); err != nil {
		return err
	}

	return s.Remove(ctx, st, account, hash)
}

// Remove delete a finished collateral
func (s *Service) Remove(ctx context.Context, st *state.State, account string, hash core.Hash) error {
	c, found, err := st.Collateral(ctx, account, hash)
	if err != nil {
		return err
	}

	if !found {
		return core.ErrCollateralNotFound
	}

	if !c.IsFinished() {
		return core.ErrCollateralNotFinished
	}

	st.DeleteCollateral(account, hash)
	st.Emit(core.CollateralRemoveEvent{
		Account: account,
		Hash:    hash,
		Status:  c.Status,
	})

	return nil
}
