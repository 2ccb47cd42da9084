//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"errors"

	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/types/interfaces"
)

// ErrInvalidVector256 is returned when a Vector256 field's value isn't a
// list of 32-byte hex hashes.
var ErrInvalidVector256 = errors.New("invalid Vector256, expected a list of 32-byte hex strings")

// Vector256 represents a VL-encoded array of fixed 32-byte hashes
// (Amendments, NFTokenOffers).
type Vector256 struct{}

// FromJSON concatenates each 32-byte hash in value into a single blob.
func (v *Vector256) FromJSON(value any) ([]byte, error) {
	items, err := toStringSlice(value)
	if err != nil {
		return nil, ErrInvalidVector256
	}

	out := make([]byte, 0, len(items)*32)
	for _, item := range items {
		decoded, err := hex.DecodeString(item)
		if err != nil || len(decoded) != 32 {
			return nil, ErrInvalidVector256
		}
		out = append(out, decoded...)
	}
	return out, nil
}

// ToJSON reads a VL-prefixed blob and splits it into 32-byte hex
// hashes.
func (v *Vector256) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	length, err := p.ReadVariableLength()
	if err != nil {
		return nil, err
	}
	if length%32 != 0 {
		return nil, ErrInvalidVector256
	}
	raw, err := p.ReadBytes(length)
	if err != nil {
		return nil, err
	}

	hashes := make([]string, 0, length/32)
	for i := 0; i < length; i += 32 {
		hashes = append(hashes, hex.EncodeToString(raw[i:i+32]))
	}
	return hashes, nil
}

func toStringSlice(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("types: expected a list of strings")
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, errors.New("types: expected a list of strings")
	}
}
