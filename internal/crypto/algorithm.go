package crypto

import "errors"

// ErrUnsupportedAlgorithm reports that an operation does not support the
// algorithm of the seed or key it was given. The wallet package wraps it
// in ErrNotSecp256k1, since transaction signing only supports secp256k1;
// the Ed25519 Algorithm itself derives keys and signs.
var ErrUnsupportedAlgorithm = errors.New("crypto: algorithm not supported for this operation")

// Algorithm abstracts over the signing schemes XRPL accounts can use.
// A concrete implementation is keyed off the seed/key version bytes it
// owns, so address-codec can recover the right Algorithm purely from an
// encoded seed's prefix.
type Algorithm interface {
	// Prefix is the version byte used for the algorithm's key material
	// (currently only meaningful for documentation; account keys share
	// AccountID/PublicKey encodings regardless of algorithm).
	Prefix() byte

	// FamilySeedPrefix is the version byte sequence prepended before
	// base58 encoding a seed generated for this algorithm. secp256k1
	// uses a single byte; Ed25519 uses a three byte sequence so that
	// encoded seeds read "sEd...".
	FamilySeedPrefix() []byte

	// DeriveKeypair derives a private/public keypair from seed entropy.
	// validator selects the root-generator-only derivation used for
	// validator keys instead of the two-stage account derivation.
	DeriveKeypair(seed []byte, validator bool) (privateKeyHex, publicKeyHex string, err error)

	// Sign produces a signature over msg using the given private key.
	Sign(msg, privateKeyHex string) (signatureHex string, err error)

	// Validate reports whether sigHex is a valid signature over msg
	// under pubkeyHex.
	Validate(msg, pubkeyHex, sigHex string) bool
}
