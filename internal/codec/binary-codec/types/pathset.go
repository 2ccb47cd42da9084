//revive:disable:var-naming
package types

import (
	"errors"

	addresscodec "github.com/austral-labs/xrplgo/internal/codec/address-codec"
	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/types/interfaces"
)

// Path step type bits, from rippled's STPathSet.
const (
	pathStepAccount  = 0x01
	pathStepCurrency = 0x10
	pathStepIssuer   = 0x20
)

const (
	pathSeparatorByte = 0xFF
	pathSetEndByte    = 0x00
)

// ErrInvalidPathSet is returned when a PathSet field's value isn't a
// list of paths, each a list of step objects.
var ErrInvalidPathSet = errors.New("invalid PathSet, expected a list of paths of step objects")

// PathSet represents a payment path set: an ordered list of alternative
// paths, each a sequence of steps naming an account, a currency, an
// issuer, or some combination of the three.
type PathSet struct{}

// FromJSON encodes a list of paths, each a list of step objects with
// optional "account", "currency" and "issuer" keys, into rippled's
// 0xFF-separated, 0x00-terminated wire format.
func (ps *PathSet) FromJSON(value any) ([]byte, error) {
	paths, ok := value.([]any)
	if !ok {
		return nil, ErrInvalidPathSet
	}

	var out []byte
	for i, rawPath := range paths {
		if i > 0 {
			out = append(out, pathSeparatorByte)
		}
		path, ok := rawPath.([]any)
		if !ok {
			return nil, ErrInvalidPathSet
		}
		for _, rawStep := range path {
			step, ok := rawStep.(map[string]any)
			if !ok {
				return nil, ErrInvalidPathSet
			}
			stepBytes, err := encodePathStep(step)
			if err != nil {
				return nil, err
			}
			out = append(out, stepBytes...)
		}
	}
	out = append(out, pathSetEndByte)
	return out, nil
}

func encodePathStep(step map[string]any) ([]byte, error) {
	var typeBits byte
	var fields []byte

	if account, ok := step["account"]; ok {
		addr, ok := account.(string)
		if !ok {
			return nil, ErrInvalidPathSet
		}
		raw, err := addresscodec.DecodeClassicAddress(addr)
		if err != nil {
			return nil, err
		}
		typeBits |= pathStepAccount
		fields = append(fields, raw...)
	}
	if currency, ok := step["currency"]; ok {
		code, ok := currency.(string)
		if !ok {
			return nil, ErrInvalidPathSet
		}
		// XRP in a path step is the all-zero currency code.
		raw := make([]byte, currencyCodeLength)
		if code != "XRP" {
			var err error
			raw, err = serializeIssuedCurrencyCode(code)
			if err != nil {
				return nil, err
			}
		}
		typeBits |= pathStepCurrency
		fields = append(fields, raw...)
	}
	if issuer, ok := step["issuer"]; ok {
		addr, ok := issuer.(string)
		if !ok {
			return nil, ErrInvalidPathSet
		}
		raw, err := addresscodec.DecodeClassicAddress(addr)
		if err != nil {
			return nil, err
		}
		typeBits |= pathStepIssuer
		fields = append(fields, raw...)
	}

	return append([]byte{typeBits}, fields...), nil
}

// ToJSON reads a PathSet off p and returns it as a list of paths, each a
// list of step maps.
func (ps *PathSet) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	var paths []any
	var current []any

	for {
		b, err := p.ReadByte()
		if err != nil {
			return nil, err
		}
		switch b {
		case pathSetEndByte:
			paths = append(paths, current)
			return paths, nil
		case pathSeparatorByte:
			paths = append(paths, current)
			current = nil
			continue
		}

		step := make(map[string]any)
		if b&pathStepAccount != 0 {
			raw, err := p.ReadBytes(currencyCodeLength)
			if err != nil {
				return nil, err
			}
			addr, err := addresscodec.EncodeClassicAddress(raw)
			if err != nil {
				return nil, err
			}
			step["account"] = addr
		}
		if b&pathStepCurrency != 0 {
			raw, err := p.ReadBytes(currencyCodeLength)
			if err != nil {
				return nil, err
			}
			step["currency"] = deserializeIssuedCurrencyCode(raw)
		}
		if b&pathStepIssuer != 0 {
			raw, err := p.ReadBytes(currencyCodeLength)
			if err != nil {
				return nil, err
			}
			addr, err := addresscodec.EncodeClassicAddress(raw)
			if err != nil {
				return nil, err
			}
			step["issuer"] = addr
		}
		current = append(current, step)
	}
}
