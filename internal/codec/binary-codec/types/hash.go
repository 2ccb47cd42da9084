//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/types/interfaces"
)

// ErrInvalidHashString is returned when a hash field's value isn't a hex
// string of the expected length.
var ErrInvalidHashString = errors.New("invalid hash string")

// fixedHash implements the codec for a fixed-width hash type (Hash128,
// Hash160 and Hash256, which share the same plain big-endian byte
// encoding).
type fixedHash struct {
	byteLen int
}

func (h fixedHash) fromJSON(value any) ([]byte, error) {
	strVal, ok := value.(string)
	if !ok {
		return nil, ErrInvalidHashString
	}
	decoded, err := hex.DecodeString(strVal)
	if err != nil {
		return nil, ErrInvalidHashString
	}
	if len(decoded) != h.byteLen {
		return nil, ErrInvalidHashString
	}
	return decoded, nil
}

func (h fixedHash) toJSON(p interfaces.BinaryParser) (any, error) {
	b, err := p.ReadBytes(h.byteLen)
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// Hash128 represents a fixed 16 byte hash field (e.g. EmailHash).
type Hash128 struct{}

func (h *Hash128) FromJSON(value any) ([]byte, error) { return fixedHash{16}.fromJSON(value) }
func (h *Hash128) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	return fixedHash{16}.toJSON(p)
}

// Hash160 represents a fixed 20 byte hash field (currency codes,
// TakerPaysCurrency, TakerGetsCurrency).
type Hash160 struct{}

func (h *Hash160) FromJSON(value any) ([]byte, error) { return fixedHash{20}.fromJSON(value) }
func (h *Hash160) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	return fixedHash{20}.toJSON(p)
}

// Hash256 represents a fixed 32 byte hash field (ledger hashes,
// transaction hashes, Digest, Amendments entries).
type Hash256 struct{}

func (h *Hash256) FromJSON(value any) ([]byte, error) { return fixedHash{32}.fromJSON(value) }
func (h *Hash256) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	return fixedHash{32}.toJSON(p)
}
