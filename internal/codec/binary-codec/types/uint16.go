//revive:disable:var-naming
package types

import (
	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/definitions"
	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/types/interfaces"
)

// UInt16 represents a 16-bit unsigned integer field. Some UInt16 fields
// (LedgerEntryType, TransactionType) take a name instead of a number and
// resolve it against the type/ledger-entry/transaction registries.
type UInt16 struct{}

// FromJSON converts value into its 2-byte big-endian wire encoding.
// A string value is resolved as a transaction type or ledger entry type
// name; any other value is coerced to an unsigned integer directly.
func (u *UInt16) FromJSON(value any) ([]byte, error) {
	n, err := resolveUInt16(value)
	if err != nil {
		return nil, err
	}
	if n > 0xFFFF {
		return nil, ErrInvalidUIntValue
	}
	return []byte{byte(n >> 8), byte(n)}, nil
}

func resolveUInt16(value any) (uint64, error) {
	name, ok := value.(string)
	if !ok {
		return toUint64(value)
	}

	defs := definitions.Get()
	if code, err := defs.TransactionTypeCode(name); err == nil {
		return uint64(uint16(code)), nil
	}
	if code, err := defs.LedgerEntryTypeCode(name); err == nil {
		return uint64(uint16(code)), nil
	}
	return toUint64(value)
}

// ToJSON reads 2 bytes and returns them as a uint16.
func (u *UInt16) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(2)
	if err != nil {
		return nil, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}
