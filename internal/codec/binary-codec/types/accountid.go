//revive:disable:var-naming
package types

import (
	"errors"

	addresscodec "github.com/austral-labs/xrplgo/internal/codec/address-codec"
	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/types/interfaces"
)

// ErrInvalidAccountID is returned when an AccountID field's value isn't
// a decodable classic address.
var ErrInvalidAccountID = errors.New("invalid AccountID, expected a classic address string")

// AccountID represents the 20-byte account identifier carried by fields
// like Account, Destination, Owner and Issuer. The wire value is the
// raw AccountID bytes; the classic base58-with-checksum address is a
// presentation layer applied only at the FromJSON/ToJSON boundary.
type AccountID struct{}

// FromJSON decodes a classic address string into its 20 raw AccountID
// bytes.
func (a *AccountID) FromJSON(value any) ([]byte, error) {
	address, ok := value.(string)
	if !ok {
		return nil, ErrInvalidAccountID
	}
	accountID, err := addresscodec.DecodeClassicAddress(address)
	if err != nil {
		return nil, ErrInvalidAccountID
	}
	return accountID, nil
}

// ToJSON reads a VL-prefixed AccountID and returns its classic address.
func (a *AccountID) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	length, err := p.ReadVariableLength()
	if err != nil {
		return nil, err
	}
	raw, err := p.ReadBytes(length)
	if err != nil {
		return nil, err
	}
	return addresscodec.EncodeClassicAddress(raw)
}
