// Package account provides the account-identity types the consensus core
// treats as opaque tags: a PublicKey identifies a forger, a PrivateKey is a
// capability handed to the external block builder. The consensus core never
// signs anything and never inspects a PrivateKey's secret material — it only
// reads the embedded PublicKey.
package account

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// KeySize is the fixed length, in bytes, of a PublicKey.
const KeySize = 32

// ErrInvalidLength is returned when decoding a hex string that does not
// contain exactly KeySize bytes.
var ErrInvalidLength = errors.New("account: public key must be exactly 32 bytes")

// PublicKey is an opaque 32-byte tag that uniquely identifies a forger. The
// consensus core never interprets its bytes beyond equality and hashing.
type PublicKey [KeySize]byte

// Empty reports whether pk is the zero key.
func (pk PublicKey) Empty() bool {
	return pk == PublicKey{}
}

// Bytes returns the raw key bytes.
func (pk PublicKey) Bytes() []byte {
	return pk[:]
}

// String renders the key as a "0x"-prefixed hex string.
func (pk PublicKey) String() string {
	return "0x" + common.Bytes2Hex(pk[:])
}

// Copy returns pk; PublicKey is a value type so this exists only to mirror
// the Copy() convention used across this codebase's other value types.
func (pk PublicKey) Copy() PublicKey {
	return pk
}

// FromString parses a hex-encoded public key, with or without a "0x" prefix.
func FromString(s string) (PublicKey, error) {
	s = strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, err
	}
	if len(raw) != KeySize {
		return PublicKey{}, ErrInvalidLength
	}
	var pk PublicKey
	copy(pk[:], raw)
	return pk, nil
}

// FromBytes wraps a byte slice as a PublicKey, erroring if the length is off.
func FromBytes(raw []byte) (PublicKey, error) {
	if len(raw) != KeySize {
		return PublicKey{}, ErrInvalidLength
	}
	var pk PublicKey
	copy(pk[:], raw)
	return pk, nil
}
