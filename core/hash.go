package core

import (
	"encoding/hex"
	"strings"
)

// HashLength digest width in bytes
const HashLength = 32

// Hash fixed width digest, used as order id and collateral content hash
type Hash [HashLength]byte

// HashFromString parse a hex encoded hash, 0x prefix optional
func HashFromString(s string) (Hash, error) {
	var h Hash
	err := h.UnmarshalText([]byte(s))
	return h, err
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether h is the zero digest
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// MarshalText implements encoding.TextMarshaler
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (h *Hash) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "0x")
	if hex.DecodedLen(len(s)) != HashLength {
		return ErrInvalidArgument
	}

	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return ErrInvalidArgument
	}

	return nil
}
