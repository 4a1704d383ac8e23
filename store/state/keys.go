package state

import (
	"encoding/binary"

	"lendbook/core"
)

const (
	prefixAsset      = "tk/"
	keyNextAssetID   = "tkid"
	prefixBalance    = "bl/"
	prefixAllowance  = "al/"
	prefixPrice      = "pr/"
	prefixCollateral = "cl/"
	keyNonce         = "nonce"

	bookBorrow = "bo"
	bookSupply = "so"
)

// MaxKeyLength upper bound of any key built here when accounts fit core.MaxAccountLength
const MaxKeyLength = 320

type key []byte

func newKey(prefix string) key {
	return append(make(key, 0, 64), prefix...)
}

func (k key) uint(v uint64) key {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(k, b[:]...)
}

// str length prefixed so that ("ab","c") and ("a","bc") never share a key
func (k key) str(s string) key {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(b[:], uint64(len(s)))
	k = append(k, b[:n]...)
	return append(k, s...)
}

func (k key) hash(h core.Hash) key {
	return append(k, h[:]...)
}

func assetKey(id core.AssetID) key {
	return newKey(prefixAsset).uint(uint64(id))
}

func balanceKey(asset core.AssetID, account string) key {
	return newKey(prefixBalance).uint(uint64(asset)).str(account)
}

func allowanceKey(asset core.AssetID, owner, spender string) key {
	return newKey(prefixAllowance).uint(uint64(asset)).str(owner).str(spender)
}

func priceKey(asset core.AssetID) key {
	return newKey(prefixPrice).uint(uint64(asset))
}

func collateralKey(account string, hash core.Hash) key {
	return newKey(prefixCollateral).str(account).hash(hash)
}

func encodeUint(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func decodeUint(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, errCorruptCounter
	}

	return binary.BigEndian.Uint64(b), nil
}
