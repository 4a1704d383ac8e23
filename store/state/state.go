package state

import (
	"context"
	"encoding/json"

	"lendbook/core"
	"lendbook/store/kv"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

var (
	errCorruptCounter = errors.New("state: corrupt counter")
	errCorruptIndex   = errors.New("state: corrupt order index")
)

// State typed view of the lending maps over one kv transaction.
// Events emitted while running an operation are buffered until the caller
// decides whether to commit.
type State struct {
	tx       *kv.Tx
	events   []core.Event
	borrows  book
	supplies book
}

// New state over tx
func New(tx *kv.Tx) *State {
	return &State{
		tx:       tx,
		borrows:  book{name: bookBorrow},
		supplies: book{name: bookSupply},
	}
}

// Tx underlying transaction
func (s *State) Tx() *kv.Tx {
	return s.tx
}

// Emit buffer events
func (s *State) Emit(events ...core.Event) {
	s.events = append(s.events, events...)
}

// Events buffered events in emission order
func (s *State) Events() []core.Event {
	return s.events
}

func (s *State) read(ctx context.Context, k key, v interface{}) (bool, error) {
	raw, found, err := s.tx.Lookup(ctx, k)
	if err != nil || !found {
		return false, err
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, errors.Wrapf(err, "state: decode %x", []byte(k))
	}

	return true, nil
}

func (s *State) write(k key, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.tx.Put(k, raw)
	return nil
}

func zeroIfNil(v *uint256.Int) *uint256.Int {
	if v == nil {
		return uint256.NewInt(0)
	}

	return v
}

// NextAssetID the id the next registered asset will receive, starts at 1
func (s *State) NextAssetID(ctx context.Context) (core.AssetID, error) {
	n, err := readUint(ctx, s.tx, newKey(keyNextAssetID))
	if err != nil {
		return 0, err
	}

	if n == 0 {
		n = 1
	}

	return core.AssetID(n), nil
}

// AllocAssetID return the next asset id and advance the counter
func (s *State) AllocAssetID(ctx context.Context) (core.AssetID, error) {
	id, err := s.NextAssetID(ctx)
	if err != nil {
		return 0, err
	}

	s.tx.Put(newKey(keyNextAssetID), encodeUint(uint64(id)+1))
	return id, nil
}

func (s *State) Asset(ctx context.Context, id core.AssetID) (*core.Asset, bool, error) {
	var asset core.Asset
	found, err := s.read(ctx, assetKey(id), &asset)
	if err != nil || !found {
		return nil, false, err
	}

	asset.TotalSupply = zeroIfNil(asset.TotalSupply)
	return &asset, true, nil
}

func (s *State) HasAsset(ctx context.Context, id core.AssetID) (bool, error) {
	return s.tx.Has(ctx, assetKey(id))
}

func (s *State) PutAsset(asset *core.Asset) error {
	return s.write(assetKey(asset.ID), asset)
}

// Balance holding of account, found is false when no record exists
func (s *State) Balance(ctx context.Context, asset core.AssetID, account string) (*core.AccountBalance, bool, error) {
	var b core.AccountBalance
	found, err := s.read(ctx, balanceKey(asset, account), &b)
	if err != nil || !found {
		return nil, false, err
	}

	b.Balance = zeroIfNil(b.Balance)
	b.Free = zeroIfNil(b.Free)
	b.Reserved = zeroIfNil(b.Reserved)
	return &b, true, nil
}

// BalanceOrZero holding of account, a zero valued record when absent
func (s *State) BalanceOrZero(ctx context.Context, asset core.AssetID, account string) (*core.AccountBalance, error) {
	b, found, err := s.Balance(ctx, asset, account)
	if err != nil {
		return nil, err
	}

	if !found {
		b = core.NewAccountBalance(asset, account)
	}

	return b, nil
}

func (s *State) PutBalance(b *core.AccountBalance) error {
	return s.write(balanceKey(b.Asset, b.Account), b)
}

func (s *State) Allowance(ctx context.Context, asset core.AssetID, owner, spender string) (*core.Allowance, bool, error) {
	var a core.Allowance
	found, err := s.read(ctx, allowanceKey(asset, owner, spender), &a)
	if err != nil || !found {
		return nil, false, err
	}

	a.Value = zeroIfNil(a.Value)
	return &a, true, nil
}

func (s *State) PutAllowance(a *core.Allowance) error {
	return s.write(allowanceKey(a.Asset, a.Owner, a.Spender), a)
}

func (s *State) Price(ctx context.Context, asset core.AssetID) (*core.Price, bool, error) {
	var p core.Price
	found, err := s.read(ctx, priceKey(asset), &p)
	if err != nil || !found {
		return nil, false, err
	}

	p.Value = zeroIfNil(p.Value)
	return &p, true, nil
}

func (s *State) PutPrice(p *core.Price) error {
	return s.write(priceKey(p.Asset), p)
}

func (s *State) Collateral(ctx context.Context, account string, hash core.Hash) (*core.Collateral, bool, error) {
	var c core.Collateral
	found, err := s.read(ctx, collateralKey(account, hash), &c)
	if err != nil || !found {
		return nil, false, err
	}

	c.Amount = zeroIfNil(c.Amount)
	return &c, true, nil
}

func (s *State) HasCollateral(ctx context.Context, account string, hash core.Hash) (bool, error) {
	return s.tx.Has(ctx, collateralKey(account, hash))
}

func (s *State) PutCollateral(c *core.Collateral) error {
	return s.write(collateralKey(c.Account, c.Hash), c)
}

func (s *State) DeleteCollateral(account string, hash core.Hash) {
	s.tx.Delete(collateralKey(account, hash))
}

// Nonce order id nonce, advanced once per created order
func (s *State) Nonce(ctx context.Context) (uint64, error) {
	return readUint(ctx, s.tx, newKey(keyNonce))
}

func (s *State) SetNonce(n uint64) {
	s.tx.Put(newKey(keyNonce), encodeUint(n))
}
