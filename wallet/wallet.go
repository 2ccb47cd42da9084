// Package wallet implements the XRPL transaction signing pipeline: seed
// decoding, keypair derivation, address computation, autofill of the
// common transaction fields, and transaction/payment-channel-claim
// signing. Only secp256k1 keys can sign; Ed25519 seeds are rejected at
// FromSeed, matching the binary codec and address codec's treatment of
// Ed25519 as identification-only.
package wallet

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	binarycodec "github.com/austral-labs/xrplgo/internal/codec/binary-codec"
	addresscodec "github.com/austral-labs/xrplgo/internal/codec/address-codec"
	xrplcrypto "github.com/austral-labs/xrplgo/internal/crypto"
	"github.com/austral-labs/xrplgo/internal/crypto/algorithms/secp256k1"
	"github.com/austral-labs/xrplgo/internal/crypto/common"
)

// DefaultMaxFeeDrops caps the fee FillAndSign will accept from the
// network before autofilling, absent an explicit override.
const DefaultMaxFeeDrops uint64 = 100

// DefaultLedgerOffset is added to the current ledger index to compute
// LastLedgerSequence when FillAndSign is not given an explicit one.
const DefaultLedgerOffset uint32 = 20

// defaultFlags is the tfFullyCanonicalSig bit rippled has required on
// every transaction since the corresponding amendment went live.
const defaultFlags uint32 = 0x80000000

// ErrFeeAboveMax is returned by FillAndSign when the network-suggested
// fee exceeds the caller's (or the default) maximum.
var ErrFeeAboveMax = errors.New("wallet: network fee exceeds max fee")

// ErrNotSecp256k1 is returned by FromSeed/Random for any seed whose
// algorithm isn't secp256k1: this pipeline only signs with secp256k1
// keys, matching the reference client library it follows.
var ErrNotSecp256k1 = fmt.Errorf("wallet: %w: only secp256k1 seeds can sign transactions", xrplcrypto.ErrUnsupportedAlgorithm)

// AutofillClient is the subset of a transport client FillAndSign needs
// to complete a transaction's Account, Sequence, Fee and
// LastLedgerSequence fields. Both transport.HTTP and transport.WebSocket
// satisfy it.
type AutofillClient interface {
	AccountSequence(ctx context.Context, account string) (uint32, error)
	OpenLedgerFee(ctx context.Context) (uint64, error)
	CurrentLedgerIndex(ctx context.Context) (uint32, error)
}

// AutofillOptions overrides FillAndSign's defaults.
type AutofillOptions struct {
	MaxFeeDrops  uint64 // 0 means DefaultMaxFeeDrops
	LedgerOffset uint32 // 0 means DefaultLedgerOffset
}

// Wallet holds a derived secp256k1 keypair and the classic address it
// controls, and signs transactions on its behalf.
type Wallet struct {
	privateKeyHex string
	publicKeyHex  string
	address       string
}

// FromSeed decodes a family seed and derives its account keypair and
// address. Only secp256k1 seeds are accepted.
func FromSeed(seed string) (*Wallet, error) {
	entropy, alg, err := addresscodec.DecodeSeed(seed)
	if err != nil {
		return nil, err
	}
	if alg.Prefix() != secp256k1.SECP256K1().Prefix() {
		return nil, ErrNotSecp256k1
	}

	priv, pub, err := secp256k1.SECP256K1().DeriveKeypair(entropy, false)
	if err != nil {
		return nil, err
	}

	address, err := addresscodec.EncodeClassicAddressFromPublicKeyHex(pub)
	if err != nil {
		return nil, err
	}

	return &Wallet{privateKeyHex: priv, publicKeyHex: pub, address: address}, nil
}

// Random generates fresh seed entropy and derives a wallet from it.
func Random() (*Wallet, error) {
	entropy, err := xrplcrypto.RandomSeed()
	if err != nil {
		return nil, err
	}
	seed, err := addresscodec.EncodeSeed(entropy, secp256k1.SECP256K1())
	if err != nil {
		return nil, err
	}
	return FromSeed(seed)
}

// Address returns the wallet's classic (base58) account address.
func (w *Wallet) Address() string { return w.address }

// PublicKey returns the wallet's public key as uppercase hex.
func (w *Wallet) PublicKey() string { return w.publicKeyHex }

// Sign serializes tx, signs it with the wallet's private key, and
// returns the fully-signed transaction blob as uppercase hex alongside
// its transaction hash. tx is mutated in place: SigningPubKey and
// TxnSignature are set, and Account is filled in if absent.
func (w *Wallet) Sign(tx map[string]any) (txBlobHex string, txHash string, err error) {
	if _, ok := tx["Account"]; !ok {
		tx["Account"] = w.address
	}
	tx["SigningPubKey"] = w.publicKeyHex
	delete(tx, "TxnSignature")

	signingBlobHex, err := binarycodec.EncodeForSigning(tx)
	if err != nil {
		return "", "", err
	}
	signingBlob, err := hex.DecodeString(signingBlobHex)
	if err != nil {
		return "", "", err
	}

	sigHex, err := secp256k1.SECP256K1().SignCanonical(string(signingBlob), w.privateKeyHex)
	if err != nil {
		return "", "", err
	}
	tx["TxnSignature"] = sigHex

	txBlobHex, err = binarycodec.Encode(tx)
	if err != nil {
		return "", "", err
	}
	txBlob, err := hex.DecodeString(txBlobHex)
	if err != nil {
		return "", "", err
	}

	hash := common.Sha512Half(append(xrplcrypto.HashPrefixTransactionID.Bytes(), txBlob...))
	return strings.ToUpper(txBlobHex), strings.ToUpper(hex.EncodeToString(hash[:])), nil
}

// FillAndSign autofills Flags, Sequence, Fee and LastLedgerSequence from
// the network via client, then signs the transaction. opts may be the
// zero value to take every default.
func (w *Wallet) FillAndSign(ctx context.Context, tx map[string]any, client AutofillClient, opts AutofillOptions) (txBlobHex string, txHash string, err error) {
	if _, ok := tx["Account"]; !ok {
		tx["Account"] = w.address
	}
	if _, ok := tx["Flags"]; !ok {
		tx["Flags"] = defaultFlags
	}

	if _, ok := tx["Sequence"]; !ok {
		seq, err := client.AccountSequence(ctx, w.address)
		if err != nil {
			return "", "", err
		}
		tx["Sequence"] = seq
	}

	if _, ok := tx["Fee"]; !ok {
		feeDrops, err := client.OpenLedgerFee(ctx)
		if err != nil {
			return "", "", err
		}
		maxFee := opts.MaxFeeDrops
		if maxFee == 0 {
			maxFee = DefaultMaxFeeDrops
		}
		if feeDrops > maxFee {
			return "", "", fmt.Errorf("%w: %d drops > max %d drops", ErrFeeAboveMax, feeDrops, maxFee)
		}
		tx["Fee"] = strconv.FormatUint(feeDrops, 10)
	}

	if _, ok := tx["LastLedgerSequence"]; !ok {
		current, err := client.CurrentLedgerIndex(ctx)
		if err != nil {
			return "", "", err
		}
		offset := opts.LedgerOffset
		if offset == 0 {
			offset = DefaultLedgerOffset
		}
		tx["LastLedgerSequence"] = current + offset
	}

	return w.Sign(tx)
}

// SignPaymentChannelClaim signs a payment channel claim authorizing
// amountDrops to be redeemed from channel, for presentation to the
// channel's destination off-ledger.
func (w *Wallet) SignPaymentChannelClaim(channelIDHex string, amountDrops uint64) (string, error) {
	signingBlobHex, err := binarycodec.EncodeForSigningClaim(map[string]any{
		"Channel": channelIDHex,
		"Amount":  strconv.FormatUint(amountDrops, 10),
	})
	if err != nil {
		return "", err
	}
	signingBlob, err := hex.DecodeString(signingBlobHex)
	if err != nil {
		return "", err
	}

	return secp256k1.SECP256K1().SignCanonical(string(signingBlob), w.privateKeyHex)
}
