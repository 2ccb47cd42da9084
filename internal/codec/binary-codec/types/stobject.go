//revive:disable:var-naming
package types

import (
	"errors"
	"sort"

	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/definitions"
	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/serdes"
	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/types/interfaces"
)

// objectEndMarker and arrayEndMarker are the single-byte field IDs
// rippled appends to terminate a nested STObject or STArray: the
// ObjectEndMarker/ArrayEndMarker pseudo-fields at nth 1 of their
// respective types.
const (
	objectEndMarker byte = 0xE1
	arrayEndMarker  byte = 0xF1
)

// ErrInvalidNestedObject is returned when an STObject-typed field's
// value isn't a map.
var ErrInvalidNestedObject = errors.New("types: expected an object for a nested STObject field")

// ErrInvalidNestedArray is returned when an STArray-typed field's value
// isn't a list of single-key objects.
var ErrInvalidNestedArray = errors.New("types: expected an array of single-field objects for an STArray field")

// STObject serializes and parses a set of fields in rippled's canonical
// ordinal order: sorted by (type code, field code), with no explicit
// length prefix or end marker at the top level.
type STObject struct {
	serializer *serdes.BinarySerializer
}

// NewSTObject returns an STObject that writes through serializer.
func NewSTObject(serializer *serdes.BinarySerializer) *STObject {
	return &STObject{serializer: serializer}
}

// FromJSON serializes obj's fields into the STObject's serializer, in
// canonical ordinal order, and returns the accumulated bytes.
func (o *STObject) FromJSON(obj map[string]any) ([]byte, error) {
	if err := encodeObjectFields(o.serializer, obj); err != nil {
		return nil, err
	}
	return o.serializer.GetSink(), nil
}

// ToJSON reads fields from p until the input is exhausted or an
// ObjectEndMarker field is encountered, returning them as a map.
func (o *STObject) ToJSON(p interfaces.BinaryParser) (any, error) {
	return decodeObjectFields(p)
}

// encodeObjectFields looks up every field in obj, sorts them by
// Ordinal, and writes each through serializer.
func encodeObjectFields(serializer *serdes.BinarySerializer, obj map[string]any) error {
	defs := definitions.Get()

	type fieldEntry struct {
		fi    *definitions.FieldInstance
		value any
	}

	entries := make([]fieldEntry, 0, len(obj))
	for name, value := range obj {
		fi, err := defs.GetFieldInstanceByFieldName(name)
		if err != nil {
			return err
		}
		entries = append(entries, fieldEntry{fi: fi, value: value})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].fi.Ordinal < entries[j].fi.Ordinal
	})

	for _, e := range entries {
		valueBytes, err := encodeFieldValue(*e.fi, e.value)
		if err != nil {
			return err
		}
		if err := serializer.WriteFieldAndValue(*e.fi, valueBytes); err != nil {
			return err
		}
	}
	return nil
}

// encodeFieldValue serializes a single field's value according to its
// wire type, recursing into nested objects and arrays.
func encodeFieldValue(fi definitions.FieldInstance, value any) ([]byte, error) {
	switch fi.Type {
	case "STObject":
		inner, ok := value.(map[string]any)
		if !ok {
			return nil, ErrInvalidNestedObject
		}
		nested := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get()))
		if err := encodeObjectFields(nested, inner); err != nil {
			return nil, err
		}
		return append(nested.GetSink(), objectEndMarker), nil

	case "STArray":
		items, err := toMapSlice(value)
		if err != nil {
			return nil, err
		}

		var out []byte
		for _, item := range items {
			if len(item) != 1 {
				return nil, ErrInvalidNestedArray
			}
			for innerName, innerValue := range item {
				innerFi, err := definitions.Get().GetFieldInstanceByFieldName(innerName)
				if err != nil {
					return nil, err
				}
				innerBytes, err := encodeFieldValue(*innerFi, innerValue)
				if err != nil {
					return nil, err
				}
				itemSerializer := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get()))
				if err := itemSerializer.WriteFieldAndValue(*innerFi, innerBytes); err != nil {
					return nil, err
				}
				out = append(out, itemSerializer.GetSink()...)
			}
		}
		out = append(out, arrayEndMarker)
		return out, nil

	default:
		return encodeTypedValue(fi.Type, value)
	}
}

// toMapSlice coerces an STArray field's JSON value into a slice of
// single-key objects.
func toMapSlice(value any) ([]map[string]any, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, ErrInvalidNestedArray
	}
	out := make([]map[string]any, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, ErrInvalidNestedArray
		}
		out[i] = m
	}
	return out, nil
}

// decodeObjectFields reads fields off p until it runs out of input or
// hits an ObjectEndMarker, returning them as a map. The same loop
// serves both a top-level object (terminated by end of input) and a
// nested one (terminated by its end marker).
func decodeObjectFields(p interfaces.BinaryParser) (map[string]any, error) {
	result := make(map[string]any)
	for p.HasMore() {
		fi, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		if fi.FieldName == "ObjectEndMarker" {
			return result, nil
		}
		value, err := decodeFieldValue(*fi, p)
		if err != nil {
			return nil, err
		}
		result[fi.FieldName] = value
	}
	return result, nil
}

// decodeArrayFields reads wrapped single-field objects off p until it
// hits an ArrayEndMarker.
func decodeArrayFields(p interfaces.BinaryParser) ([]any, error) {
	var items []any
	for {
		fi, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		if fi.FieldName == "ArrayEndMarker" {
			return items, nil
		}
		value, err := decodeFieldValue(*fi, p)
		if err != nil {
			return nil, err
		}
		items = append(items, map[string]any{fi.FieldName: value})
	}
}

// decodeFieldValue parses a single field's value according to its wire
// type, recursing into nested objects and arrays.
func decodeFieldValue(fi definitions.FieldInstance, p interfaces.BinaryParser) (any, error) {
	switch fi.Type {
	case "STObject":
		return decodeObjectFields(p)
	case "STArray":
		return decodeArrayFields(p)
	}

	switch fi.FieldName {
	case "TransactionType":
		return decodeNamedUInt16(p, definitions.Get().TransactionTypeName)
	case "LedgerEntryType":
		return decodeNamedUInt16(p, definitions.Get().LedgerEntryTypeName)
	}

	return decodeTypedValue(fi.Type, p)
}

// decodeNamedUInt16 reads a 2-byte code and resolves it back to its
// registered name, mirroring the string-to-code resolution UInt16's
// FromJSON applies to these fields.
func decodeNamedUInt16(p interfaces.BinaryParser, lookup func(int32) (string, error)) (any, error) {
	raw, err := p.ReadBytes(2)
	if err != nil {
		return nil, err
	}
	code := int32(raw[0])<<8 | int32(raw[1])
	return lookup(code)
}
