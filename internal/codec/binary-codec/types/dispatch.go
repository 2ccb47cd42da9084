//revive:disable:var-naming
package types

import (
	"errors"
	"fmt"

	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/types/interfaces"
)

// ErrUnsupportedFieldType is returned when a field references a wire
// type name with no registered codec.
var ErrUnsupportedFieldType = errors.New("types: unsupported field type")

// encodeTypedValue serializes value according to the wire type named by
// fieldType. STObject and STArray are handled by the caller, since they
// need access to the enclosing field map/slice rather than a single
// scalar value.
func encodeTypedValue(fieldType string, value any) ([]byte, error) {
	switch fieldType {
	case "UInt8":
		return (&UInt8{}).FromJSON(value)
	case "UInt16":
		return (&UInt16{}).FromJSON(value)
	case "UInt32":
		return (&UInt32{}).FromJSON(value)
	case "UInt64":
		return (&UInt64{}).FromJSON(value)
	case "Hash128":
		return (&Hash128{}).FromJSON(value)
	case "Hash160":
		return (&Hash160{}).FromJSON(value)
	case "Hash256":
		return (&Hash256{}).FromJSON(value)
	case "Blob":
		return (&Blob{}).FromJSON(value)
	case "AccountID":
		return (&AccountID{}).FromJSON(value)
	case "Amount":
		return (&Amount{}).FromJSON(value)
	case "Vector256":
		return (&Vector256{}).FromJSON(value)
	case "PathSet":
		return (&PathSet{}).FromJSON(value)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFieldType, fieldType)
	}
}

// decodeTypedValue parses the next value off p according to the wire
// type named by fieldType.
func decodeTypedValue(fieldType string, p interfaces.BinaryParser) (any, error) {
	switch fieldType {
	case "UInt8":
		return (&UInt8{}).ToJSON(p)
	case "UInt16":
		return (&UInt16{}).ToJSON(p)
	case "UInt32":
		return (&UInt32{}).ToJSON(p)
	case "UInt64":
		return (&UInt64{}).ToJSON(p)
	case "Hash128":
		return (&Hash128{}).ToJSON(p)
	case "Hash160":
		return (&Hash160{}).ToJSON(p)
	case "Hash256":
		return (&Hash256{}).ToJSON(p)
	case "Blob":
		return (&Blob{}).ToJSON(p)
	case "AccountID":
		return (&AccountID{}).ToJSON(p)
	case "Amount":
		return (&Amount{}).ToJSON(p)
	case "Vector256":
		return (&Vector256{}).ToJSON(p)
	case "PathSet":
		return (&PathSet{}).ToJSON(p)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFieldType, fieldType)
	}
}
