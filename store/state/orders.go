package state

import (
	"context"

	"lendbook/core"
)

func (s *State) BorrowOrder(ctx context.Context, id core.Hash) (*core.BorrowOrder, bool, error) {
	var o core.BorrowOrder
	found, err := s.read(ctx, s.borrows.recordKey(id), &o)
	if err != nil || !found {
		return nil, false, err
	}

	o.BTotal = zeroIfNil(o.BTotal)
	o.Already = zeroIfNil(o.Already)
	o.STotal = zeroIfNil(o.STotal)
	return &o, true, nil
}

func (s *State) HasBorrowOrder(ctx context.Context, id core.Hash) (bool, error) {
	return s.borrows.has(ctx, s.tx, id)
}

// InsertBorrowOrder write the record and append it to the global and owner indexes
func (s *State) InsertBorrowOrder(ctx context.Context, o *core.BorrowOrder) error {
	if err := s.write(s.borrows.recordKey(o.ID), o); err != nil {
		return err
	}

	return s.borrows.insert(ctx, s.tx, o.Owner, o.ID)
}

// RemoveBorrowOrder delete the record and swap remove it from both indexes
func (s *State) RemoveBorrowOrder(ctx context.Context, o *core.BorrowOrder) error {
	return s.borrows.remove(ctx, s.tx, o.Owner, o.ID)
}

func (s *State) BorrowOrderCount(ctx context.Context) (uint64, error) {
	return s.borrows.count(ctx, s.tx)
}

func (s *State) BorrowOrderAt(ctx context.Context, n uint64) (core.Hash, bool, error) {
	return s.borrows.at(ctx, s.tx, n)
}

func (s *State) OwnedBorrowCount(ctx context.Context, owner string) (uint64, error) {
	return s.borrows.ownedCount(ctx, s.tx, owner)
}

func (s *State) OwnedBorrowAt(ctx context.Context, owner string, n uint64) (core.Hash, bool, error) {
	return s.borrows.ownedAt(ctx, s.tx, owner, n)
}

func (s *State) SupplyOrder(ctx context.Context, id core.Hash) (*core.SupplyOrder, bool, error) {
	var o core.SupplyOrder
	found, err := s.read(ctx, s.supplies.recordKey(id), &o)
	if err != nil || !found {
		return nil, false, err
	}

	o.Total = zeroIfNil(o.Total)
	return &o, true, nil
}

func (s *State) HasSupplyOrder(ctx context.Context, id core.Hash) (bool, error) {
	return s.supplies.has(ctx, s.tx, id)
}

func (s *State) InsertSupplyOrder(ctx context.Context, o *core.SupplyOrder) error {
	if err := s.write(s.supplies.recordKey(o.ID), o); err != nil {
		return err
	}

	return s.supplies.insert(ctx, s.tx, o.Owner, o.ID)
}

func (s *State) RemoveSupplyOrder(ctx context.Context, o *core.SupplyOrder) error {
	return s.supplies.remove(ctx, s.tx, o.Owner, o.ID)
}

func (s *State) SupplyOrderCount(ctx context.Context) (uint64, error) {
	return s.supplies.count(ctx, s.tx)
}

func (s *State) SupplyOrderAt(ctx context.Context, n uint64) (core.Hash, bool, error) {
	return s.supplies.at(ctx, s.tx, n)
}

func (s *State) OwnedSupplyCount(ctx context.Context, owner string) (uint64, error) {
	return s.supplies.ownedCount(ctx, s.tx, owner)
}

func (s *State) OwnedSupplyAt(ctx context.Context, owner string, n uint64) (core.Hash, bool, error) {
	return s.supplies.ownedAt(ctx, s.tx, owner, n)
}
