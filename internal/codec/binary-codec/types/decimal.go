//revive:disable:var-naming
package types

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidDecimalString is returned when a value string can't be
// parsed as a (possibly signed, possibly scientific-notation) decimal
// number.
var ErrInvalidDecimalString = errors.New("invalid decimal string")

// decimalParts is a value decomposed as negative * digits * 10^scale,
// with digits holding only the significant digit characters (no
// leading zeros, unless the value is exactly zero).
type decimalParts struct {
	negative bool
	digits   string
	scale    int
}

// parseDecimal parses the XRPL JSON string representation of an amount
// value: an optional leading '-', an integer or decimal-point number,
// and an optional exponent suffix ("1234567.1", "1e-81", "-2").
func parseDecimal(value string) (decimalParts, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimalParts{}, ErrInvalidDecimalString
	}

	negative := false
	if s[0] == '-' {
		negative = true
		s = s[1:]
	} else if s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return decimalParts{}, ErrInvalidDecimalString
	}

	mantissaPart := s
	explicitExp := 0
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		mantissaPart = s[:idx]
		expStr := s[idx+1:]
		exp, err := strconv.Atoi(expStr)
		if err != nil {
			return decimalParts{}, ErrInvalidDecimalString
		}
		explicitExp = exp
	}

	intPart := mantissaPart
	fracPart := ""
	if idx := strings.IndexByte(mantissaPart, '.'); idx >= 0 {
		intPart = mantissaPart[:idx]
		fracPart = mantissaPart[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, c := range intPart + fracPart {
		if c < '0' || c > '9' {
			return decimalParts{}, ErrInvalidDecimalString
		}
	}

	digits := strings.TrimLeft(intPart+fracPart, "0")
	scale := explicitExp - len(fracPart)

	if digits == "" {
		return decimalParts{negative: false, digits: "0", scale: 0}, nil
	}
	return decimalParts{negative: negative, digits: digits, scale: scale}, nil
}

// isZero reports whether the parsed value is exactly zero.
func (d decimalParts) isZero() bool {
	return d.digits == "" || d.digits == "0"
}

// precision returns the number of significant digits.
func (d decimalParts) precision() int {
	return len(d.digits)
}

// adjustedExponent returns the exponent the value would carry once its
// mantissa is normalized to exactly 16 significant digits.
func (d decimalParts) adjustedExponent() int {
	return d.scale + d.precision() - 16
}

// normalizedMantissa returns the value's digits padded or scaled to
// exactly 16 significant digits, as a uint64. Callers must have already
// validated precision() <= 16.
func (d decimalParts) normalizedMantissa() (uint64, error) {
	n := new(big.Int)
	if _, ok := n.SetString(d.digits, 10); !ok {
		return 0, ErrInvalidDecimalString
	}
	pad := 16 - d.precision()
	if pad > 0 {
		n.Mul(n, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(pad)), nil))
	}
	if !n.IsUint64() {
		return 0, ErrInvalidDecimalString
	}
	return n.Uint64(), nil
}
