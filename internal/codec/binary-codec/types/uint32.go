//revive:disable:var-naming
package types

import (
	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/types/interfaces"
)

// UInt32 represents a 32-bit unsigned integer field.
type UInt32 struct{}

// FromJSON converts value into its 4-byte big-endian wire encoding.
func (u *UInt32) FromJSON(value any) ([]byte, error) {
	n, err := toUint64(value)
	if err != nil {
		return nil, err
	}
	if n > 0xFFFFFFFF {
		return nil, ErrInvalidUIntValue
	}
	return []byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}, nil
}

// ToJSON reads 4 bytes and returns them as a uint32.
func (u *UInt32) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}
