package addresscodec

import (
	"encoding/hex"
	"errors"
)

// Version bytes rippled uses for its base58check-encoded payloads.
const (
	AccountAddressPrefix   byte = 0x00 // 'r...' classic addresses
	AccountPublicKeyPrefix byte = 0x23 // 'a...' account public keys
	AccountSecretKeyPrefix byte = 0x22 // 'p...' account secret keys
	NodePublicKeyPrefix    byte = 0x1C // 'n...' validator/node public keys
	NodePrivateKeyPrefix   byte = 0x20 // 'p...' validator/node private keys
)

// PrivateKeyLength is the length, in bytes, of a raw (prefix-stripped)
// secp256k1 or Ed25519 private key scalar/seed.
const PrivateKeyLength = 32

const accountIDLength = 20

// ErrInvalidAddress is returned when a classic address fails to decode or
// does not carry the account ID version byte.
var ErrInvalidAddress = errors.New("addresscodec: invalid classic address")

// ErrInvalidPublicKey is returned when an encoded public key fails to
// decode or carries an unexpected version byte.
var ErrInvalidPublicKey = errors.New("addresscodec: invalid public key")

// EncodeClassicAddress encodes a 20 byte account ID as a classic 'r...'
// address.
func EncodeClassicAddress(accountID []byte) (string, error) {
	if len(accountID) != accountIDLength {
		return "", ErrInvalidAddress
	}
	return Base58CheckEncode(accountID, AccountAddressPrefix), nil
}

// DecodeClassicAddress recovers the 20 byte account ID encoded in a
// classic address.
func DecodeClassicAddress(address string) ([]byte, error) {
	payload, err := Base58CheckDecode(address, 0)
	if err != nil {
		return nil, ErrInvalidAddress
	}
	if len(payload) != accountIDLength+1 || payload[0] != AccountAddressPrefix {
		return nil, ErrInvalidAddress
	}
	return payload[1:], nil
}

// IsValidClassicAddress reports whether address is a well formed, correctly
// checksummed classic address.
func IsValidClassicAddress(address string) bool {
	_, err := DecodeClassicAddress(address)
	return err == nil
}

// EncodeClassicAddressFromPublicKeyHex derives the classic address for a
// hex-encoded public key (compressed secp256k1 or 0xED-prefixed Ed25519).
func EncodeClassicAddressFromPublicKeyHex(pubKeyHex string) (string, error) {
	pubKeyBytes, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return "", ErrInvalidPublicKey
	}
	return EncodeClassicAddress(Sha256RipeMD160(pubKeyBytes))
}

// EncodeAccountPublicKey encodes a raw public key as an 'a...' account
// public key.
func EncodeAccountPublicKey(pubKeyBytes []byte) (string, error) {
	return Base58CheckEncode(pubKeyBytes, AccountPublicKeyPrefix), nil
}

// DecodeAccountPublicKey recovers the raw public key bytes from an 'a...'
// account public key.
func DecodeAccountPublicKey(encoded string) ([]byte, error) {
	payload, err := Base58CheckDecode(encoded, 0)
	if err != nil || len(payload) < 1 || payload[0] != AccountPublicKeyPrefix {
		return nil, ErrInvalidPublicKey
	}
	return payload[1:], nil
}

// EncodeNodePublicKey encodes a raw public key as an 'n...' validator/node
// public key.
func EncodeNodePublicKey(pubKeyBytes []byte) (string, error) {
	return Base58CheckEncode(pubKeyBytes, NodePublicKeyPrefix), nil
}

// DecodeNodePublicKey recovers the raw public key bytes from an 'n...'
// validator/node public key.
func DecodeNodePublicKey(encoded string) ([]byte, error) {
	payload, err := Base58CheckDecode(encoded, 0)
	if err != nil || len(payload) < 1 || payload[0] != NodePublicKeyPrefix {
		return nil, ErrInvalidPublicKey
	}
	return payload[1:], nil
}
