package serdes

import (
	"errors"

	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/definitions"
)

// ErrLengthPrefixTooLong is returned when a VL-encoded field's length
// exceeds rippled's maximum of 918744 bytes.
var ErrLengthPrefixTooLong = errors.New("serdes: variable length prefix too long")

// BinarySerializer accumulates a canonical rippled binary encoding field
// by field into a single sink buffer.
type BinarySerializer struct {
	codec *FieldIDCodec
	sink  []byte
}

// NewBinarySerializer returns a BinarySerializer that packs field IDs
// through codec.
func NewBinarySerializer(codec *FieldIDCodec) *BinarySerializer {
	return &BinarySerializer{codec: codec, sink: []byte{}}
}

// WriteFieldAndValue appends fieldInstance's field ID, a VL length
// prefix when the field is VL-encoded, and value to the sink.
func (s *BinarySerializer) WriteFieldAndValue(fieldInstance definitions.FieldInstance, value []byte) error {
	fieldID := encodeFieldHeader(fieldInstance.Header)
	s.sink = append(s.sink, fieldID...)

	if fieldInstance.IsVLEncoded {
		vl, err := encodeVariableLength(len(value))
		if err != nil {
			return err
		}
		s.sink = append(s.sink, vl...)
	}

	s.sink = append(s.sink, value...)
	return nil
}

// GetSink returns the accumulated bytes written so far.
func (s *BinarySerializer) GetSink() []byte {
	return s.sink
}

// encodeVariableLength packs length into rippled's 1, 2 or 3 byte VL
// prefix.
func encodeVariableLength(length int) ([]byte, error) {
	switch {
	case length <= 192:
		return []byte{byte(length)}, nil
	case length <= 12480:
		length -= 193
		return []byte{byte(193 + (length >> 8)), byte(length & 0xff)}, nil
	case length <= 918744:
		length -= 12481
		return []byte{
			byte(241 + (length >> 16)),
			byte((length >> 8) & 0xff),
			byte(length & 0xff),
		}, nil
	default:
		return nil, ErrLengthPrefixTooLong
	}
}
