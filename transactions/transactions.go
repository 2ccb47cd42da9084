// Package transactions builds the JSON-shaped transaction payloads
// (map[string]any, matching the field names the binary codec's registry
// knows) that wallet.Sign and wallet.FillAndSign operate on. Each
// builder fills in Account and the fields specific to its transaction
// type; the other common fields (Fee, Sequence, LastLedgerSequence,
// SigningPubKey, TxnSignature) are left for the wallet's signing
// pipeline to populate.
package transactions

// FlatTransaction is a transaction in its JSON-shaped, pre-serialization
// form: exactly what binarycodec.Encode and binarycodec.EncodeForSigning
// accept.
type FlatTransaction = map[string]any

// IssuedAmount is the JSON shape of a non-XRP Amount field.
type IssuedAmount struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Value    string `json:"value"`
}

func (a IssuedAmount) toMap() map[string]any {
	return map[string]any{"currency": a.Currency, "issuer": a.Issuer, "value": a.Value}
}

// Payment builds a Payment transaction delivering amount (a drops string
// for XRP, or an IssuedAmount for an IOU) from account to destination.
func Payment(account, destination string, amount any) FlatTransaction {
	tx := FlatTransaction{
		"TransactionType": "Payment",
		"Account":         account,
		"Destination":     destination,
		"Amount":          normalizeAmount(amount),
	}
	return tx
}

// PaymentWithPaths builds a cross-currency Payment with an explicit
// SendMax and payment paths.
func PaymentWithPaths(account, destination string, amount, sendMax any, paths []any) FlatTransaction {
	tx := Payment(account, destination, amount)
	tx["SendMax"] = normalizeAmount(sendMax)
	if len(paths) > 0 {
		tx["Paths"] = paths
	}
	return tx
}

// TrustSet builds a TrustSet transaction establishing or modifying a
// trust line to limitAmount.
func TrustSet(account string, limitAmount IssuedAmount) FlatTransaction {
	return FlatTransaction{
		"TransactionType": "TrustSet",
		"Account":         account,
		"LimitAmount":     limitAmount.toMap(),
	}
}

// AccountSet builds an AccountSet transaction. Any of setFlag/clearFlag
// may be 0 to omit them.
func AccountSet(account string, setFlag, clearFlag uint32) FlatTransaction {
	tx := FlatTransaction{
		"TransactionType": "AccountSet",
		"Account":         account,
	}
	if setFlag != 0 {
		tx["SetFlag"] = setFlag
	}
	if clearFlag != 0 {
		tx["ClearFlag"] = clearFlag
	}
	return tx
}

// PaymentChannelCreate builds a PaymentChannelCreate transaction funding
// a new channel to destination with the given settle delay in seconds
// and an amount in drops.
func PaymentChannelCreate(account, destination, amountDrops string, settleDelay uint32, publicKeyHex string) FlatTransaction {
	return FlatTransaction{
		"TransactionType": "PaymentChannelCreate",
		"Account":         account,
		"Destination":     destination,
		"Amount":          amountDrops,
		"SettleDelay":     settleDelay,
		"PublicKey":       publicKeyHex,
	}
}

// PaymentChannelFund builds a PaymentChannelFund transaction adding
// amountDrops to an existing channel.
func PaymentChannelFund(account, channelIDHex, amountDrops string) FlatTransaction {
	return FlatTransaction{
		"TransactionType": "PaymentChannelFund",
		"Account":         account,
		"Channel":         channelIDHex,
		"Amount":          amountDrops,
	}
}

// PaymentChannelClaim builds a PaymentChannelClaim transaction redeeming
// amountDrops from channelIDHex, authorized by a signature produced by
// wallet.SignPaymentChannelClaim over the channel and amount.
func PaymentChannelClaim(account, channelIDHex, amountDrops, signatureHex, publicKeyHex string) FlatTransaction {
	return FlatTransaction{
		"TransactionType": "PaymentChannelClaim",
		"Account":         account,
		"Channel":         channelIDHex,
		"Balance":         amountDrops,
		"Signature":       signatureHex,
		"PublicKey":       publicKeyHex,
	}
}

// NFTokenMint builds an NFTokenMint transaction minting a token
// described by uriHex (the token metadata URI, hex-encoded), with the
// given taxon and transfer fee (in hundredths of a basis point).
func NFTokenMint(account, uriHex string, taxon uint32, transferFee uint16, flags uint32) FlatTransaction {
	tx := FlatTransaction{
		"TransactionType":   "NFTokenMint",
		"Account":           account,
		"NFTokenTaxon":      taxon,
		"TransferFee":       transferFee,
		"Flags":             flags,
	}
	if uriHex != "" {
		tx["URI"] = uriHex
	}
	return tx
}

// WithMemo attaches a single Memo to tx, each field hex-encoded as
// rippled's binary codec expects for Blob fields.
func WithMemo(tx FlatTransaction, memoDataHex, memoTypeHex, memoFormatHex string) FlatTransaction {
	memo := map[string]any{}
	if memoDataHex != "" {
		memo["MemoData"] = memoDataHex
	}
	if memoTypeHex != "" {
		memo["MemoType"] = memoTypeHex
	}
	if memoFormatHex != "" {
		memo["MemoFormat"] = memoFormatHex
	}

	memos, _ := tx["Memos"].([]any)
	tx["Memos"] = append(memos, map[string]any{"Memo": memo})
	return tx
}

// normalizeAmount converts an IssuedAmount to its map form, leaving
// string (XRP drops) amounts untouched.
func normalizeAmount(amount any) any {
	if issued, ok := amount.(IssuedAmount); ok {
		return issued.toMap()
	}
	return amount
}
