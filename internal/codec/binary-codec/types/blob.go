//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"errors"

	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/types/interfaces"
)

// ErrInvalidBlobString is returned when a Blob field's value isn't a hex
// string.
var ErrInvalidBlobString = errors.New("invalid blob string")

// Blob represents a variable-length byte field (SigningPubKey,
// TxnSignature, MemoData, MemoType, ...). VL framing is applied by the
// serializer, not here; FromJSON/ToJSON only handle the raw payload.
type Blob struct{}

// FromJSON hex-decodes value into its raw bytes.
func (b *Blob) FromJSON(value any) ([]byte, error) {
	strVal, ok := value.(string)
	if !ok {
		return nil, ErrInvalidBlobString
	}
	decoded, err := hex.DecodeString(strVal)
	if err != nil {
		return nil, ErrInvalidBlobString
	}
	return decoded, nil
}

// ToJSON reads a VL-prefixed blob and returns it as a hex string.
func (b *Blob) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	length, err := p.ReadVariableLength()
	if err != nil {
		return nil, err
	}
	raw, err := p.ReadBytes(length)
	if err != nil {
		return nil, err
	}
	return hex.EncodeToString(raw), nil
}
