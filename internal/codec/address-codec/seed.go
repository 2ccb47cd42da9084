package addresscodec

import (
	"errors"

	xrplcrypto "github.com/austral-labs/xrplgo/internal/crypto"
	ed25519crypto "github.com/austral-labs/xrplgo/internal/crypto/algorithms/ed25519"
	secp256k1crypto "github.com/austral-labs/xrplgo/internal/crypto/algorithms/secp256k1"
)

// ErrInvalidSeed is returned for any seed string that is not a well-formed,
// correctly checksummed, recognized-algorithm XRPL family seed.
var ErrInvalidSeed = errors.New("addresscodec: invalid seed")

const seedEntropyLength = 16

// knownSeedAlgorithms lists the algorithms DecodeSeed recognizes, ed25519
// first since its three byte prefix must be matched before secp256k1's
// single byte prefix is considered.
var knownSeedAlgorithms = []xrplcrypto.Algorithm{
	ed25519crypto.ED25519(),
	secp256k1crypto.SECP256K1(),
}

// EncodeSeed encodes 16 bytes of seed entropy as an XRPL family seed for
// the given algorithm.
func EncodeSeed(entropy []byte, alg xrplcrypto.Algorithm) (string, error) {
	if len(entropy) != seedEntropyLength {
		return "", ErrInvalidSeed
	}
	return Base58CheckEncode(entropy, alg.FamilySeedPrefix()...), nil
}

// DecodeSeed decodes an XRPL family seed, returning its entropy and the
// algorithm it was encoded for.
func DecodeSeed(seed string) ([]byte, xrplcrypto.Algorithm, error) {
	if seed == "" {
		return nil, nil, ErrInvalidSeed
	}

	decoded, err := rippleEncoding.Decode(seed)
	if err != nil || len(decoded) < checksumLength {
		return nil, nil, ErrInvalidSeed
	}

	payloadEnd := len(decoded) - checksumLength
	body, checksum := decoded[:payloadEnd], decoded[payloadEnd:]
	if !bytesEqual(checksum, doubleSha256Checksum(body)) {
		return nil, nil, ErrInvalidSeed
	}

	for _, alg := range knownSeedAlgorithms {
		prefix := alg.FamilySeedPrefix()
		if len(body) != len(prefix)+seedEntropyLength {
			continue
		}
		if bytesEqual(body[:len(prefix)], prefix) {
			entropy := make([]byte, seedEntropyLength)
			copy(entropy, body[len(prefix):])
			return entropy, alg, nil
		}
	}

	return nil, nil, ErrInvalidSeed
}
