//revive:disable:var-naming
package types

import (
	"errors"
	"fmt"
)

// ErrInvalidUIntValue is returned when a JSON value cannot be coerced
// into an unsigned integer of the expected width.
var ErrInvalidUIntValue = errors.New("invalid value, expected an unsigned integer")

// toUint64 coerces the numeric kinds callers pass for UInt fields (plain
// Go numeric literals, the kinds json.Unmarshal produces, or an
// already-built FlatTransaction) into a uint64.
func toUint64(value any) (uint64, error) {
	switch v := value.(type) {
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint:
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("%w: negative value %d", ErrInvalidUIntValue, v)
		}
		return uint64(v), nil
	case int32:
		if v < 0 {
			return 0, fmt.Errorf("%w: negative value %d", ErrInvalidUIntValue, v)
		}
		return uint64(v), nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("%w: negative value %d", ErrInvalidUIntValue, v)
		}
		return uint64(v), nil
	case float64:
		if v < 0 {
			return 0, fmt.Errorf("%w: negative value %v", ErrInvalidUIntValue, v)
		}
		return uint64(v), nil
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidUIntValue, value)
	}
}
