// Package ed25519 implements the XRPL Ed25519 signing algorithm for key
// derivation and message signing. The transaction signing pipeline
// (wallet / autofill / sign) only wires up secp256k1 keys, matching the
// reference implementation this library was ported from, but the
// Algorithm itself is fully functional so address-codec can encode and
// decode Ed25519 seeds, account keys and node keys.
package ed25519

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"strings"

	xrplcrypto "github.com/austral-labs/xrplgo/internal/crypto"
	"github.com/austral-labs/xrplgo/internal/crypto/common"
)

const keyPrefix byte = 0xED

// edSeedPrefix is the three byte version sequence rippled prepends to
// Ed25519 seeds before base58 encoding, producing seeds that read "sEd...".
var edSeedPrefix = []byte{0x01, 0xE1, 0x4B}

// ErrValidatorNotSupported is returned because rippled validator keys are
// always secp256k1; Ed25519 has no validator key derivation.
var ErrValidatorNotSupported = errors.New("ed25519: validator keypairs are not supported")

// ErrInvalidPrivateKey is returned when a private key is not a 33 byte
// (0xED prefix + 32 byte seed) hex string.
var ErrInvalidPrivateKey = errors.New("ed25519: invalid private key")

var _ xrplcrypto.Algorithm = Algorithm{}

// Algorithm implements xrplcrypto.Algorithm for Ed25519.
type Algorithm struct{}

// ED25519 returns the Ed25519 Algorithm singleton value.
func ED25519() Algorithm {
	return Algorithm{}
}

// Prefix returns the version byte XRPL uses for Ed25519 account keys.
func (Algorithm) Prefix() byte { return keyPrefix }

// FamilySeedPrefix returns the three byte version sequence used for
// Ed25519 seeds.
func (Algorithm) FamilySeedPrefix() []byte {
	out := make([]byte, len(edSeedPrefix))
	copy(out, edSeedPrefix)
	return out
}

// DeriveKeypair derives an Ed25519 keypair from seed entropy. rippled
// feeds the seed through SHA-512-Half to get the 32 byte Ed25519 seed,
// rather than using the raw entropy directly.
func (a Algorithm) DeriveKeypair(seed []byte, validator bool) (privateKeyHex, publicKeyHex string, err error) {
	if validator {
		return "", "", ErrValidatorNotSupported
	}

	rawSeed := common.Sha512Half(seed)
	priv := ed25519.NewKeyFromSeed(rawSeed[:])
	pub := priv.Public().(ed25519.PublicKey)

	privateKeyHex = strings.ToUpper("ED" + hex.EncodeToString(rawSeed[:]))
	publicKeyHex = strings.ToUpper("ED" + hex.EncodeToString(pub))
	return privateKeyHex, publicKeyHex, nil
}

// Sign signs msg with an Ed25519 private key encoded as 0xED || 32 byte
// seed. Unlike secp256k1, Ed25519 signs the message directly; it does
// not hash it first.
func (a Algorithm) Sign(msg, privateKeyHex string) (string, error) {
	keyBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil || len(keyBytes) != 33 {
		return "", ErrInvalidPrivateKey
	}

	priv := ed25519.NewKeyFromSeed(keyBytes[1:])
	sig := ed25519.Sign(priv, []byte(msg))
	return strings.ToUpper(hex.EncodeToString(sig)), nil
}

// Validate reports whether sigHex is a valid Ed25519 signature over msg
// under pubkeyHex (0xED || 32 byte public key).
func (a Algorithm) Validate(msg, pubkeyHex, sigHex string) bool {
	pubBytes, err := hex.DecodeString(pubkeyHex)
	if err != nil || len(pubBytes) != 33 {
		return false
	}
	sigBytes, err := hex.DecodeString(sigHex)
	if err != nil {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubBytes[1:]), []byte(msg), sigBytes)
}
