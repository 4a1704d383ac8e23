package id

import (
	"bytes"

	"lendbook/core"

	"github.com/fox-one/msgpack"
	"lukechampine.com/blake3"
)

// Sum blake3 digest of the msgpack framed fields, in order
func Sum(fields ...interface{}) core.Hash {
	var buf bytes.Buffer
	for _, f := range fields {
		b, err := msgpack.Marshal(f)
		if err != nil {
			panic(err)
		}

		buf.Write(b)
	}

	return blake3.Sum256(buf.Bytes())
}

// CollateralHash content hash of a collateral deposit
func CollateralHash(account string, asset core.AssetID, orderID core.Hash) core.Hash {
	return Sum(account, uint64(asset), orderID[:])
}

// OrderID derive an order id from the block seed, the owner and the current nonce
func OrderID(seed core.Hash, owner string, nonce uint64) core.Hash {
	return Sum(seed[:], owner, nonce)
}

// BlockSeed seed of a block, salt keeps it unpredictable to callers
func BlockSeed(salt string, block int64) core.Hash {
	return Sum(salt, block)
}
