package state

import (
	"context"

	"lendbook/core"
	"lendbook/store/kv"
)

// book a dense global index and a dense per owner index over order ids,
// plus the reverse maps from id to both positions.
//
//	<p>/<id>                  order record
//	<p>.all.count             global count
//	<p>.all/<n>               global position -> id
//	<p>.all.idx/<id>          id -> global position
//	<p>.own.count/<owner>     owner count
//	<p>.own/<owner><n>        owner position -> id
//	<p>.own.idx/<id>          id -> owner position
type book struct {
	name string
}

func (b book) recordKey(id core.Hash) key {
	return newKey(b.name + "/").hash(id)
}

func (b book) allCountKey() key {
	return newKey(b.name + ".all.count")
}

func (b book) allKey(n uint64) key {
	return newKey(b.name + ".all/").uint(n)
}

func (b book) allIdxKey(id core.Hash) key {
	return newKey(b.name + ".all.idx/").hash(id)
}

func (b book) ownCountKey(owner string) key {
	return newKey(b.name + ".own.count/").str(owner)
}

func (b book) ownKey(owner string, n uint64) key {
	return newKey(b.name + ".own/").str(owner).uint(n)
}

func (b book) ownIdxKey(id core.Hash) key {
	return newKey(b.name + ".own.idx/").hash(id)
}

func (b book) has(ctx context.Context, tx *kv.Tx, id core.Hash) (bool, error) {
	return tx.Has(ctx, b.recordKey(id))
}

func (b book) count(ctx context.Context, tx *kv.Tx) (uint64, error) {
	return readUint(ctx, tx, b.allCountKey())
}

func (b book) ownedCount(ctx context.Context, tx *kv.Tx, owner string) (uint64, error) {
	return readUint(ctx, tx, b.ownCountKey(owner))
}

func (b book) at(ctx context.Context, tx *kv.Tx, n uint64) (core.Hash, bool, error) {
	return readHash(ctx, tx, b.allKey(n))
}

func (b book) ownedAt(ctx context.Context, tx *kv.Tx, owner string, n uint64) (core.Hash, bool, error) {
	return readHash(ctx, tx, b.ownKey(owner, n))
}

// insert appends id to both indexes, the record itself is written by the caller
func (b book) insert(ctx context.Context, tx *kv.Tx, owner string, id core.Hash) error {
	count, err := b.count(ctx, tx)
	if err != nil {
		return err
	}

	owned, err := b.ownedCount(ctx, tx, owner)
	if err != nil {
		return err
	}

	tx.Put(b.allKey(count), id[:])
	tx.Put(b.allIdxKey(id), encodeUint(count))
	tx.Put(b.allCountKey(), encodeUint(count+1))

	tx.Put(b.ownKey(owner, owned), id[:])
	tx.Put(b.ownIdxKey(id), encodeUint(owned))
	tx.Put(b.ownCountKey(owner), encodeUint(owned+1))
	return nil
}

// remove swaps the last id of each index into the slot of id and shrinks the index
func (b book) remove(ctx context.Context, tx *kv.Tx, owner string, id core.Hash) error {
	count, err := b.count(ctx, tx)
	if err != nil {
		return err
	}

	if err := b.swapRemove(ctx, tx, b.allIdxKey(id), count, b.allKey, b.allIdxKey); err != nil {
		return err
	}
	tx.Put(b.allCountKey(), encodeUint(count-1))

	owned, err := b.ownedCount(ctx, tx, owner)
	if err != nil {
		return err
	}

	ownKey := func(n uint64) key { return b.ownKey(owner, n) }
	if err := b.swapRemove(ctx, tx, b.ownIdxKey(id), owned, ownKey, b.ownIdxKey); err != nil {
		return err
	}
	tx.Put(b.ownCountKey(owner), encodeUint(owned-1))

	tx.Delete(b.recordKey(id))
	return nil
}

func (b book) swapRemove(
	ctx context.Context,
	tx *kv.Tx,
	idxKey key,
	count uint64,
	slotKey func(uint64) key,
	reverseKey func(core.Hash) key,
) error {
	raw, found, err := tx.Lookup(ctx, idxKey)
	if err != nil {
		return err
	}

	if !found || count == 0 {
		return errCorruptIndex
	}

	pos, err := decodeUint(raw)
	if err != nil {
		return err
	}

	last := count - 1
	if pos > last {
		return errCorruptIndex
	}

	if pos != last {
		lastID, ok, err := readHash(ctx, tx, slotKey(last))
		if err != nil {
			return err
		}

		if !ok {
			return errCorruptIndex
		}

		tx.Put(slotKey(pos), lastID[:])
		tx.Put(reverseKey(lastID), encodeUint(pos))
	}

	tx.Delete(slotKey(last))
	tx.Delete(idxKey)
	return nil
}

func readUint(ctx context.Context, tx *kv.Tx, k key) (uint64, error) {
	raw, found, err := tx.Lookup(ctx, k)
	if err != nil || !found {
		return 0, err
	}

	return decodeUint(raw)
}

func readHash(ctx context.Context, tx *kv.Tx, k key) (core.Hash, bool, error) {
	var h core.Hash
	raw, found, err := tx.Lookup(ctx, k)
	if err != nil || !found {
		return h, false, err
	}

	if len(raw) != len(h) {
		return h, false, errCorruptIndex
	}

	copy(h[:], raw)
	return h, true, nil
}
