// Package addresscodec implements rippled's base58-with-checksum address,
// seed and public key encodings. It never derives keys itself; it only
// encodes/decodes the byte payloads algorithms in internal/crypto produce.
package addresscodec

import (
	"crypto/sha256"

	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/mr-tron/base58"
)

// rippleAlphabet is the XRPL's base58 alphabet. It is a scrambled
// permutation of the usual bitcoin alphabet, so addresses and seeds never
// visually collide with bitcoin-style strings.
const rippleAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

var rippleEncoding = base58.NewEncoding(rippleAlphabet)

const checksumLength = 4

// Sha256RipeMD160 returns RIPEMD-160(SHA-256(data)), rippled's account/node
// ID hash used for classic addresses and node IDs.
func Sha256RipeMD160(data []byte) []byte {
	sum := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

func doubleSha256Checksum(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}

// Base58CheckEncode encodes payload as prefixBytes || payload || checksum
// using the XRPL base58 alphabet, where checksum is the first four bytes
// of SHA-256(SHA-256(prefixBytes || payload)).
func Base58CheckEncode(payload []byte, prefixBytes ...byte) string {
	buf := make([]byte, 0, len(prefixBytes)+len(payload)+checksumLength)
	buf = append(buf, prefixBytes...)
	buf = append(buf, payload...)
	buf = append(buf, doubleSha256Checksum(buf)...)
	return rippleEncoding.Encode(buf)
}

// Base58CheckDecode reverses Base58CheckEncode, validating the checksum
// and stripping prefixLen prefix bytes. It returns the raw payload.
func Base58CheckDecode(encoded string, prefixLen int) ([]byte, error) {
	decoded, err := rippleEncoding.Decode(encoded)
	if err != nil {
		return nil, ErrInvalidSeed
	}
	if len(decoded) < prefixLen+checksumLength {
		return nil, ErrInvalidSeed
	}

	payloadEnd := len(decoded) - checksumLength
	body, checksum := decoded[:payloadEnd], decoded[payloadEnd:]

	want := doubleSha256Checksum(body)
	if !bytesEqual(checksum, want) {
		return nil, ErrInvalidSeed
	}

	return body[prefixLen:], nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
