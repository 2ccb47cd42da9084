package crypto

// HashPrefix is a 4-byte domain separator prepended to data before hashing,
// so that structurally similar data (a transaction blob, a ledger node, a
// signing blob) never collides across contexts. The last byte is always
// zero; the first three are the ASCII characters rippled documents them
// with in HashPrefix.h.
type HashPrefix [4]byte

// Bytes returns the prefix as a plain byte slice, ready to be prepended to
// a message before hashing or signing.
func (p HashPrefix) Bytes() []byte {
	return p[:]
}

func makeHashPrefix(a, b, c byte) HashPrefix {
	return HashPrefix{a, b, c, 0}
}

var (
	// HashPrefixTransactionID prefixes a signed transaction blob when
	// computing its canonical transaction hash ("TXN").
	HashPrefixTransactionID = makeHashPrefix('T', 'X', 'N')

	// HashPrefixTxNode prefixes a transaction plus metadata node ("SND").
	HashPrefixTxNode = makeHashPrefix('S', 'N', 'D')

	// HashPrefixLeafNode prefixes account state leaf nodes ("MLN").
	HashPrefixLeafNode = makeHashPrefix('M', 'L', 'N')

	// HashPrefixInnerNode prefixes inner nodes of the V1 SHAMap tree ("MIN").
	HashPrefixInnerNode = makeHashPrefix('M', 'I', 'N')

	// HashPrefixLedgerMaster prefixes ledger header signing data ("LWR").
	HashPrefixLedgerMaster = makeHashPrefix('L', 'W', 'R')

	// HashPrefixTxSign prefixes a transaction blob before single-signing
	// ("STX").
	HashPrefixTxSign = makeHashPrefix('S', 'T', 'X')

	// HashPrefixTxMultiSign prefixes a transaction blob plus signer
	// AccountID before multi-signing ("SMT").
	HashPrefixTxMultiSign = makeHashPrefix('S', 'M', 'T')

	// HashPrefixValidation prefixes validation message signing ("VAL").
	HashPrefixValidation = makeHashPrefix('V', 'A', 'L')

	// HashPrefixProposal prefixes consensus proposal signing ("PRP").
	HashPrefixProposal = makeHashPrefix('P', 'R', 'P')

	// HashPrefixManifest prefixes manifest signing ("MAN").
	HashPrefixManifest = makeHashPrefix('M', 'A', 'N')

	// HashPrefixPaymentChannelClaim prefixes a payment channel claim
	// signature payload ("CLM").
	HashPrefixPaymentChannelClaim = makeHashPrefix('C', 'L', 'M')

	// HashPrefixCredential prefixes credential signing ("CRD").
	HashPrefixCredential = makeHashPrefix('C', 'R', 'D')

	// HashPrefixBatch prefixes an inner-batch transaction set signing
	// payload ("BCH").
	HashPrefixBatch = makeHashPrefix('B', 'C', 'H')
)
