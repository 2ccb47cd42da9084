//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	addresscodec "github.com/austral-labs/xrplgo/internal/codec/address-codec"
	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/types/interfaces"
)

// Exponent and precision bounds an issued-currency value must satisfy,
// taken from rippled's STAmount.
const (
	MinIOUExponent  = -96
	MaxIOUExponent  = 80
	MaxIOUPrecision = 16

	MinIOUMantissa = 1000000000000000
	MaxIOUMantissa = 9999999999999999
)

// Bit layout constants for the 64-bit amount value field.
const (
	NotXRPBitMask          = 0x80
	PosSignBitMask         = uint64(0x4000000000000000)
	ZeroCurrencyAmountHex  = uint64(0x8000000000000000)
	NativeAmountByteLength = 8
	// CurrencyAmountByteLength is the size of a serialized issued
	// currency amount: 8 byte value + 20 byte currency + 20 byte issuer.
	CurrencyAmountByteLength = 48

	maxDropsValue = 100000000000000000 // 1e17, the maximum possible XRP supply in drops

	valueMask      = uint64(0x3FFFFFFFFFFFFFFF)
	exponentMask   = uint64(0xFF)
	exponentShift  = 54
	mantissaMask   = (uint64(1) << exponentShift) - 1
	exponentBias   = 97
)

// OutOfRangeError reports that an issued-currency value's exponent or
// precision falls outside rippled's representable range.
type OutOfRangeError struct {
	Type string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("amount: value out of range (%s)", e.Type)
}

// Amount represents the Amount field type: either a native XRP amount
// (a plain drops string) or an issued currency amount (a
// currency/issuer/value object).
type Amount struct{}

// FromJSON serializes an XRP drops string or an issued currency object
// into its 8 or 48 byte wire representation.
func (a *Amount) FromJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return encodeXRPAmount(v)
	case map[string]any:
		return encodeIOUAmount(v)
	default:
		return nil, fmt.Errorf("amount: unsupported value type %T", value)
	}
}

// ToJSON reads an 8 or 48 byte Amount and returns a drops string (XRP)
// or a currency/issuer/value map (issued currency).
func (a *Amount) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	first, err := p.Peek()
	if err != nil {
		return nil, err
	}

	if isNative(first) {
		raw, err := p.ReadBytes(NativeAmountByteLength)
		if err != nil {
			return nil, err
		}
		v := binary.BigEndian.Uint64(raw)
		drops := v & valueMask
		return strconv.FormatUint(drops, 10), nil
	}

	raw, err := p.ReadBytes(NativeAmountByteLength)
	if err != nil {
		return nil, err
	}
	v := binary.BigEndian.Uint64(raw)
	positive := isPositive(first)
	mantissa := v & mantissaMask
	expBits := (v >> exponentShift) & exponentMask

	currencyRaw, err := p.ReadBytes(currencyCodeLength)
	if err != nil {
		return nil, err
	}
	issuerRaw, err := p.ReadBytes(currencyCodeLength)
	if err != nil {
		return nil, err
	}
	issuer, err := addresscodec.EncodeClassicAddress(issuerRaw)
	if err != nil {
		return nil, err
	}
	currency := deserializeIssuedCurrencyCode(currencyRaw)

	valueStr := "0"
	if mantissa != 0 {
		exponent := int(expBits) - exponentBias
		valueStr = formatIOUValue(positive, mantissa, exponent)
	}

	return map[string]any{
		"value":    valueStr,
		"currency": currency,
		"issuer":   issuer,
	}, nil
}

func encodeXRPAmount(drops string) ([]byte, error) {
	if err := verifyXrpValue(drops); err != nil {
		return nil, err
	}
	n, err := strconv.ParseUint(drops, 10, 64)
	if err != nil {
		return nil, err
	}
	v := PosSignBitMask | n
	out := make([]byte, NativeAmountByteLength)
	binary.BigEndian.PutUint64(out, v)
	return out, nil
}

func encodeIOUAmount(obj map[string]any) ([]byte, error) {
	currency, _ := obj["currency"].(string)
	issuer, _ := obj["issuer"].(string)
	value, _ := obj["value"].(string)

	if err := verifyIOUValue(value); err != nil {
		return nil, err
	}

	currencyBytes, err := serializeIssuedCurrencyCode(currency)
	if err != nil {
		return nil, err
	}
	issuerBytes, err := addresscodec.DecodeClassicAddress(issuer)
	if err != nil {
		return nil, err
	}

	parts, err := parseDecimal(value)
	if err != nil {
		return nil, err
	}

	var v uint64
	if parts.isZero() {
		v = ZeroCurrencyAmountHex
	} else {
		mantissa, err := parts.normalizedMantissa()
		if err != nil {
			return nil, err
		}
		exponent := parts.adjustedExponent()

		v = uint64(1) << 63
		if !parts.negative {
			v |= PosSignBitMask
		}
		v |= uint64(exponent+exponentBias) << exponentShift
		v |= mantissa
	}

	out := make([]byte, NativeAmountByteLength+2*currencyCodeLength)
	binary.BigEndian.PutUint64(out[:8], v)
	copy(out[8:28], currencyBytes)
	copy(out[28:48], issuerBytes)
	return out, nil
}

// verifyXrpValue checks that drops is a non-negative integer string
// within rippled's maximum XRP supply.
func verifyXrpValue(drops string) error {
	if drops == "" {
		return ErrInvalidDecimalString
	}
	for _, c := range drops {
		if c < '0' || c > '9' {
			return ErrInvalidDecimalString
		}
	}
	n, err := strconv.ParseUint(drops, 10, 64)
	if err != nil {
		return ErrInvalidDecimalString
	}
	if n > maxDropsValue {
		return &OutOfRangeError{Type: "Precision"}
	}
	return nil
}

// verifyIOUValue checks that value's precision and normalized exponent
// fall within rippled's representable range for issued currencies.
func verifyIOUValue(value string) error {
	parts, err := parseDecimal(value)
	if err != nil {
		return err
	}
	if parts.isZero() {
		return nil
	}
	if parts.precision() > MaxIOUPrecision {
		return &OutOfRangeError{Type: "Precision"}
	}
	exp := parts.adjustedExponent()
	if exp < MinIOUExponent || exp > MaxIOUExponent {
		return &OutOfRangeError{Type: "Exponent"}
	}
	return nil
}

// isNative reports whether an amount's first byte marks it as a native
// XRP amount (bit 0x80 clear).
func isNative(firstByte byte) bool {
	return firstByte&NotXRPBitMask == 0
}

// isPositive reports whether an amount's first byte marks it as
// positive (bit 0x40 set).
func isPositive(firstByte byte) bool {
	return firstByte&0x40 != 0
}

// formatIOUValue reconstructs the minimal non-scientific decimal string
// for a 16-digit mantissa and its exponent, trimming the trailing
// zeros normalization introduces.
func formatIOUValue(positive bool, mantissa uint64, exponent int) string {
	digits := strconv.FormatUint(mantissa, 10)

	trimmed := strings.TrimRight(digits, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	stripped := len(digits) - len(trimmed)
	exponent += stripped
	digits = trimmed

	var out string
	switch {
	case exponent >= 0:
		out = digits + strings.Repeat("0", exponent)
	case -exponent < len(digits):
		shift := -exponent
		out = digits[:len(digits)-shift] + "." + digits[len(digits)-shift:]
	default:
		out = "0." + strings.Repeat("0", -exponent-len(digits)) + digits
	}

	if !positive {
		out = "-" + out
	}
	return out
}
