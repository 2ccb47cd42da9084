// Package serdes implements the low level binary framing rippled uses for
// transaction serialization: field ID packing, variable-length prefixes,
// and the parser/serializer primitives the per-type codecs build on.
package serdes

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/definitions"
)

// ErrUnknownFieldName is returned when encoding a field ID for a name
// that isn't in the registry.
var ErrUnknownFieldName = errors.New("serdes: unknown field name")

// FieldIDCodec packs and unpacks rippled field IDs, the 1-3 byte prefix
// that precedes every field's value in the canonical binary format.
type FieldIDCodec struct {
	defs *definitions.Registry
}

// NewFieldIDCodec returns a FieldIDCodec backed by defs.
func NewFieldIDCodec(defs *definitions.Registry) *FieldIDCodec {
	return &FieldIDCodec{defs: defs}
}

// Encode packs the field ID for fieldName into its 1, 2 or 3 byte
// rippled encoding:
//
//	type < 16 && field < 16:  1 byte  (type<<4 | field)
//	type >= 16 && field < 16: 2 bytes (field, type)
//	type < 16 && field >= 16: 2 bytes (type<<4, field)
//	type >= 16 && field >= 16: 3 bytes (0, type, field)
func (c *FieldIDCodec) Encode(fieldName string) ([]byte, error) {
	fi, err := c.defs.GetFieldInstanceByFieldName(fieldName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFieldName, fieldName)
	}
	return encodeFieldHeader(fi.Header), nil
}

func encodeFieldHeader(h definitions.FieldHeader) []byte {
	typeCode, fieldCode := h.TypeCode, h.FieldCode

	switch {
	case typeCode < 16 && fieldCode < 16:
		return []byte{byte(typeCode<<4 | fieldCode)}
	case typeCode >= 16 && fieldCode < 16:
		return []byte{byte(fieldCode), byte(typeCode)}
	case typeCode < 16 && fieldCode >= 16:
		return []byte{byte(typeCode << 4), byte(fieldCode)}
	default:
		return []byte{0, byte(typeCode), byte(fieldCode)}
	}
}

// Decode returns the field name whose field ID is encoded by hexString.
func (c *FieldIDCodec) Decode(hexString string) (string, error) {
	data, err := hex.DecodeString(hexString)
	if err != nil {
		return "", fmt.Errorf("serdes: invalid field ID hex %q: %w", hexString, err)
	}

	parser := NewBinaryParser(data, c.defs)
	fi, err := parser.ReadField()
	if err != nil {
		return "", err
	}
	return fi.FieldName, nil
}
