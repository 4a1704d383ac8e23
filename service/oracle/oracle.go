package oracle

import (
	"context"

	"lendbook/core"
	"lendbook/pkg/number"
	"lendbook/store/state"

	"github.com/holiman/uint256"
)

// Service admin fed single scalar price per asset
type Service struct{}

// New new oracle service
func New() *Service {
	return &Service{}
}

// SetPrice overwrite the price of a registered asset
func (s *Service) SetPrice(ctx context.Context, st *state.State, asset core.AssetID, price *uint256.Int) error {
	if price == nil || price.IsZero() {
		return core.ErrInvalidPrice
	}

	ok, err := st.HasAsset(ctx, asset)
	if err != nil {
		return err
	}

	if !ok {
		return core.ErrAssetNotFound
	}

	if err := st.PutPrice(&core.Price{Asset: asset, Value: price.Clone()}); err != nil {
		return err
	}

	st.Emit(core.PriceSetEvent{Asset: asset, Price: price.Clone()})
	return nil
}

// Price current price, ErrPriceNotFound when never set
func (s *Service) Price(ctx context.Context, st *state.State, asset core.AssetID) (*uint256.Int, error) {
	p, found, err := st.Price(ctx, asset)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, core.ErrPriceNotFound
	}

	return p.Value, nil
}

// Value amount × price(asset), in reference units scaled by core.PriceScale
func (s *Service) Value(ctx context.Context, st *state.State, asset core.AssetID, amount *uint256.Int) (*uint256.Int, error) {
	price, err := s.Price(ctx, st, asset)
	if err != nil {
		return nil, err
	}

	return number.Mul(amount, price)
}
