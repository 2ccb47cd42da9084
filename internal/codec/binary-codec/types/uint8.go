//revive:disable:var-naming
package types

import (
	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/types/interfaces"
)

// UInt8 represents an 8-bit unsigned integer field.
type UInt8 struct{}

// FromJSON converts value into its single-byte wire encoding.
func (u *UInt8) FromJSON(value any) ([]byte, error) {
	n, err := toUint64(value)
	if err != nil {
		return nil, err
	}
	if n > 0xFF {
		return nil, ErrInvalidUIntValue
	}
	return []byte{byte(n)}, nil
}

// ToJSON reads a single byte and returns it as an int.
func (u *UInt8) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadByte()
	if err != nil {
		return nil, err
	}
	return int(b), nil
}
