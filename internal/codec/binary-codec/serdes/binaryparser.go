package serdes

import (
	"errors"

	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/definitions"
)

// ErrParserOutOfBound is returned when a read runs past the end of the
// underlying buffer.
var ErrParserOutOfBound = errors.New("serdes: parser out of bound")

// BinaryParser walks a buffer of canonical rippled binary data one field
// at a time.
type BinaryParser struct {
	data []byte
	pos  int
	defs *definitions.Registry
}

// NewBinaryParser returns a BinaryParser reading data, resolving field
// IDs against defs.
func NewBinaryParser(data []byte, defs *definitions.Registry) *BinaryParser {
	return &BinaryParser{data: data, defs: defs}
}

// HasMore reports whether unread bytes remain.
func (p *BinaryParser) HasMore() bool {
	return p.pos < len(p.data)
}

// ReadByte consumes and returns the next byte.
func (p *BinaryParser) ReadByte() (byte, error) {
	if p.pos >= len(p.data) {
		return 0, ErrParserOutOfBound
	}
	b := p.data[p.pos]
	p.pos++
	return b, nil
}

// Peek returns the next byte without consuming it.
func (p *BinaryParser) Peek() (byte, error) {
	if p.pos >= len(p.data) {
		return 0, ErrParserOutOfBound
	}
	return p.data[p.pos], nil
}

// ReadBytes consumes and returns the next n bytes.
func (p *BinaryParser) ReadBytes(n int) ([]byte, error) {
	if n < 0 || p.pos+n > len(p.data) {
		return nil, ErrParserOutOfBound
	}
	out := make([]byte, n)
	copy(out, p.data[p.pos:p.pos+n])
	p.pos += n
	return out, nil
}

// ReadVariableLength reads a VL length prefix and returns the decoded
// length, following rippled's 1/2/3 byte length-prefix scheme.
func (p *BinaryParser) ReadVariableLength() (int, error) {
	b0, err := p.ReadByte()
	if err != nil {
		return 0, err
	}

	switch {
	case b0 <= 192:
		return int(b0), nil
	case b0 <= 240:
		b1, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		return 193 + (int(b0)-193)*256 + int(b1), nil
	case b0 <= 254:
		b1, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		b2, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		return 12481 + (int(b0)-241)*65536 + int(b1)*256 + int(b2), nil
	default:
		return 0, ErrLengthPrefixTooLong
	}
}

// ReadField reads a field ID and resolves it to the registered
// FieldInstance.
func (p *BinaryParser) ReadField() (*definitions.FieldInstance, error) {
	b0, err := p.ReadByte()
	if err != nil {
		return nil, err
	}

	typeCode := int32(b0 >> 4)
	fieldCode := int32(b0 & 0x0F)

	if typeCode == 0 {
		b, err := p.ReadByte()
		if err != nil {
			return nil, err
		}
		typeCode = int32(b)
	}
	if fieldCode == 0 {
		b, err := p.ReadByte()
		if err != nil {
			return nil, err
		}
		fieldCode = int32(b)
	}

	header := p.defs.CreateFieldHeader(typeCode, fieldCode)
	name, err := p.defs.GetFieldNameByFieldHeader(header)
	if err != nil {
		return nil, err
	}
	return p.defs.GetFieldInstanceByFieldName(name)
}
