// Package binarycodec implements XRPL's canonical binary serialization:
// transaction/ledger-object encoding, and the signing-blob variants
// consumed by the wallet's signing pipeline.
package binarycodec

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/definitions"
	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/serdes"
	"github.com/austral-labs/xrplgo/internal/codec/binary-codec/types"
)

// ErrSigningClaimFieldNotFound is returned when a payment channel claim
// is missing its Channel or Amount field.
var ErrSigningClaimFieldNotFound = errors.New("binarycodec: 'Channel' and 'Amount' fields are both required")

const (
	txMultiSigPrefix          = "534D5400"
	paymentChannelClaimPrefix = "434C4D00"
	txSigPrefix               = "53545800"
)

// Encode serializes a transaction or ledger object, given as a JSON-shaped
// map, into its canonical binary form and returns it as uppercase hex.
// Keys with no registered field are silently dropped, matching rippled's
// tolerance for extra request metadata riding alongside a transaction.
func Encode(value map[string]any) (string, error) {
	defs := definitions.Get()
	for k := range value {
		if _, err := defs.GetFieldInstanceByFieldName(k); err != nil {
			delete(value, k)
		}
	}

	st := types.NewSTObject(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs)))
	b, err := st.FromJSON(value)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// EncodeForMultisigning encodes a transaction for one signer's
// contribution to a multi-signed transaction: only signing fields, with
// SigningPubKey forced empty and the signer's AccountID appended.
func EncodeForMultisigning(value map[string]any, signerAddress string) (string, error) {
	value["SigningPubKey"] = ""

	accountID := &types.AccountID{}
	suffix, err := accountID.FromJSON(signerAddress)
	if err != nil {
		return "", err
	}

	encoded, err := Encode(removeNonSigningFields(value))
	if err != nil {
		return "", err
	}

	return strings.ToUpper(txMultiSigPrefix + encoded + hex.EncodeToString(suffix)), nil
}

// EncodeForSigning encodes a transaction's signing-only fields prefixed
// by the single-signer signing prefix, ready to hash and sign.
func EncodeForSigning(value map[string]any) (string, error) {
	encoded, err := Encode(removeNonSigningFields(value))
	if err != nil {
		return "", err
	}
	return strings.ToUpper(txSigPrefix + encoded), nil
}

// EncodeForSigningClaim encodes a payment channel claim's Channel and
// Amount fields prefixed by the claim signing prefix. The claim amount's
// native/issued-currency marker bit is cleared per rippled's claim wire
// format (it carries only a drops magnitude, not a full Amount).
func EncodeForSigningClaim(value map[string]any) (string, error) {
	if value["Channel"] == nil || value["Amount"] == nil {
		return "", ErrSigningClaimFieldNotFound
	}

	channel, err := (&types.Hash256{}).FromJSON(value["Channel"])
	if err != nil {
		return "", err
	}

	amount, err := (&types.Amount{}).FromJSON(value["Amount"])
	if err != nil {
		return "", err
	}
	if bytes.HasPrefix(amount, []byte{0x40}) {
		amount = bytes.Replace(amount, []byte{0x40}, []byte{0x00}, 1)
	}

	return strings.ToUpper(paymentChannelClaimPrefix + hex.EncodeToString(channel) + hex.EncodeToString(amount)), nil
}

// removeNonSigningFields drops every field whose registry entry marks it
// as excluded from signing blobs (notably TxnSignature).
func removeNonSigningFields(value map[string]any) map[string]any {
	defs := definitions.Get()
	for k := range value {
		fi, err := defs.GetFieldInstanceByFieldName(k)
		if err == nil && !fi.IsSigningField {
			delete(value, k)
		}
	}
	return value
}
