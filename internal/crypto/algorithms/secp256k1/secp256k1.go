// Package secp256k1 implements the XRPL ECDSA/secp256k1 signing algorithm:
// seed-based keypair derivation, message signing and fully-canonical
// signature enforcement.
package secp256k1

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	xrplcrypto "github.com/austral-labs/xrplgo/internal/crypto"
	"github.com/austral-labs/xrplgo/internal/crypto/common"
)

const (
	keyPrefix        byte = 0x00
	familySeedPrefix byte = 0x21
)

var (
	_ xrplcrypto.Algorithm = Algorithm{}

	// ErrInvalidPrivateKey is returned when a private key is malformed.
	ErrInvalidPrivateKey = errors.New("secp256k1: invalid private key")
	// ErrInvalidMessage is returned when a message to sign/verify is empty.
	ErrInvalidMessage = errors.New("secp256k1: message is required")
	// ErrInvalidSignature is returned when a signature cannot be parsed.
	ErrInvalidSignature = errors.New("secp256k1: invalid signature")
)

// Algorithm implements xrplcrypto.Algorithm for the secp256k1 curve, using
// rippled's deterministic seed-to-keypair derivation scheme (root
// generator plus an account-specific scalar, both SHA-512 derived).
type Algorithm struct{}

// SECP256K1 returns the secp256k1 Algorithm singleton value.
func SECP256K1() Algorithm {
	return Algorithm{}
}

// Prefix returns the version byte used for secp256k1 account keys.
func (Algorithm) Prefix() byte { return keyPrefix }

// FamilySeedPrefix returns the single version byte prepended to
// secp256k1-derived seeds before base58 encoding.
func (Algorithm) FamilySeedPrefix() []byte { return []byte{familySeedPrefix} }

// deriveScalar implements rippled's generateRootDeterministicKey /
// generatePrivateDeterministicKey: repeatedly hash seed||discriminator||i
// with SHA-512 until the top 32 bytes land in [1, curve order).
func deriveScalar(seed []byte, discriminator *uint32) *big.Int {
	order := btcec.S256().N

	for i := uint32(0); ; i++ {
		h := sha512.New()
		h.Write(seed)
		if discriminator != nil {
			h.Write(beUint32(*discriminator))
		}
		h.Write(beUint32(i))

		candidate := new(big.Int).SetBytes(h.Sum(nil)[:32])
		if candidate.Sign() > 0 && candidate.Cmp(order) < 0 {
			return candidate
		}
	}
}

func beUint32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func padTo32(b []byte) []byte {
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

// DeriveKeypair derives an account (or validator) keypair from seed
// entropy. Regular account keys add a second, public-key-derived scalar
// on top of the root generator; validator keys use the root generator
// directly.
func (a Algorithm) DeriveKeypair(seed []byte, validator bool) (privateKeyHex, publicKeyHex string, err error) {
	order := btcec.S256().N
	rootScalar := deriveScalar(seed, nil)

	var privateScalar *big.Int
	if validator {
		privateScalar = rootScalar
	} else {
		rootPriv, _ := btcec.PrivKeyFromBytes(padTo32(rootScalar.Bytes()))
		zero := uint32(0)
		intermediate := deriveScalar(rootPriv.PubKey().SerializeCompressed(), &zero)
		privateScalar = new(big.Int).Add(intermediate, rootScalar)
		privateScalar.Mod(privateScalar, order)
	}

	privBytes := padTo32(privateScalar.Bytes())
	_, pubKey := btcec.PrivKeyFromBytes(privBytes)

	return "00" + strings.ToUpper(hex.EncodeToString(privBytes)),
		strings.ToUpper(hex.EncodeToString(pubKey.SerializeCompressed())),
		nil
}

// Sign signs msg (after SHA-512-Half hashing) with privateKeyHex and
// returns an upper-hex DER-encoded signature. The returned signature is
// canonical but not necessarily fully canonical; callers that need the
// low-S form should use SignCanonical.
func (a Algorithm) Sign(msg, privateKeyHex string) (string, error) {
	if len(privateKeyHex) != 64 && len(privateKeyHex) != 66 {
		return "", ErrInvalidPrivateKey
	}
	if len(msg) == 0 {
		return "", ErrInvalidMessage
	}
	if len(privateKeyHex) == 66 {
		privateKeyHex = privateKeyHex[2:]
	}

	keyBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return "", ErrInvalidPrivateKey
	}

	priv := secp256k1.PrivKeyFromBytes(keyBytes)
	digest := common.Sha512Half([]byte(msg))
	sig := ecdsa.Sign(priv, digest[:])

	derHex, err := xrplcrypto.DERHexFromSig(sig.R().String(), sig.S().String())
	if err != nil {
		return "", err
	}
	return strings.ToUpper(derHex), nil
}

// SignCanonical signs msg and normalizes the resulting signature to the
// fully-canonical (low-S) form rippled requires when tfFullyCanonicalSig
// is set.
func (a Algorithm) SignCanonical(msg, privateKeyHex string) (string, error) {
	sigHex, err := a.Sign(msg, privateKeyHex)
	if err != nil {
		return "", err
	}

	sigBytes, err := hex.DecodeString(sigHex)
	if err != nil {
		return "", ErrInvalidSignature
	}

	switch xrplcrypto.ECDSACanonicality(sigBytes) {
	case xrplcrypto.CanonicityNone:
		return "", ErrInvalidSignature
	case xrplcrypto.CanonicityFullyCanonical:
		return sigHex, nil
	}

	canonical := xrplcrypto.MakeSignatureCanonical(sigBytes)
	if canonical == nil {
		return "", ErrInvalidSignature
	}
	return strings.ToUpper(hex.EncodeToString(canonical)), nil
}

// Validate reports whether sigHex is a valid, fully canonical signature
// over msg under pubkeyHex.
func (a Algorithm) Validate(msg, pubkeyHex, sigHex string) bool {
	return a.ValidateWithCanonicality(msg, pubkeyHex, sigHex, true)
}

// ValidateWithCanonicality validates a signature, optionally relaxing the
// fully-canonical (low-S) requirement.
func (a Algorithm) ValidateWithCanonicality(msg, pubkeyHex, sigHex string, mustBeFullyCanonical bool) bool {
	sigBytes, err := hex.DecodeString(sigHex)
	if err != nil {
		return false
	}

	canonicality := xrplcrypto.ECDSACanonicality(sigBytes)
	if canonicality == xrplcrypto.CanonicityNone {
		return false
	}
	if mustBeFullyCanonical && canonicality != xrplcrypto.CanonicityFullyCanonical {
		return false
	}

	r, s, err := xrplcrypto.DERHexToSig(sigHex)
	if err != nil {
		return false
	}

	var rBytes, sBytes [32]byte
	copy(rBytes[32-len(r):], r)
	copy(sBytes[32-len(s):], s)

	var rScalar, sScalar secp256k1.ModNScalar
	rScalar.SetBytes(&rBytes)
	sScalar.SetBytes(&sBytes)
	parsed := ecdsa.NewSignature(&rScalar, &sScalar)

	digest := common.Sha512Half([]byte(msg))

	pubKeyBytes, err := hex.DecodeString(pubkeyHex)
	if err != nil {
		return false
	}
	pubKey, err := secp256k1.ParsePubKey(pubKeyBytes)
	if err != nil {
		return false
	}

	return parsed.Verify(digest[:], pubKey)
}

// DerivePublicKeyFromPublicGenerator computes the account public key that
// corresponds to a root public generator, without ever materializing the
// private scalar. Used to validate a seed-derived keypair against a known
// public generator.
func (a Algorithm) DerivePublicKeyFromPublicGenerator(rootPubKey []byte) ([]byte, error) {
	curve := btcec.S256()

	root, err := btcec.ParsePubKey(rootPubKey)
	if err != nil {
		return nil, err
	}

	zero := uint32(0)
	scalar := deriveScalar(rootPubKey, &zero)
	sx, sy := curve.ScalarBaseMult(scalar.Bytes())

	var sxField, syField secp256k1.FieldVal
	sxField.SetByteSlice(sx.Bytes())
	syField.SetByteSlice(sy.Bytes())
	scalarPoint := secp256k1.NewPublicKey(&sxField, &syField)

	rx, ry := curve.Add(root.X(), root.Y(), scalarPoint.X(), scalarPoint.Y())

	var rxField, ryField secp256k1.FieldVal
	rxField.SetByteSlice(rx.Bytes())
	ryField.SetByteSlice(ry.Bytes())

	return secp256k1.NewPublicKey(&rxField, &ryField).SerializeCompressed(), nil
}

// DeriveValidatorKeypair derives a validator keypair (root generator
// only, no account-specific scalar) from seed entropy.
func (a Algorithm) DeriveValidatorKeypair(seed []byte) (string, string, error) {
	return a.DeriveKeypair(seed, true)
}

// DeriveAccountKeypair derives a regular account keypair from seed
// entropy.
func (a Algorithm) DeriveAccountKeypair(seed []byte) (string, string, error) {
	return a.DeriveKeypair(seed, false)
}
