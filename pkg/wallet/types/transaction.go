package types

// UnsignedTransaction is the JSON form of a transaction waiting to be signed.
// It carries everything an offline signer needs, plus metadata for the user
// to verify on screen before confirming.
type UnsignedTransaction struct {
	Type      string  `json:"type"`    // TRANSFER, BIP_CREATE, BIP_VOTE
	Network   string  `json:"network"` // MAINNET, TESTNET
	Timestamp uint64  `json:"timestamp,omitempty"`
	Nonce     *uint64 `json:"nonce,omitempty"`
	Recipient string  `json:"recipient,omitempty"`

	// TokenAddress is left empty for native transfers.
	TokenAddress string `json:"token_address,omitempty"`

	// Amount and Fee are decimal token strings ("1.5", "0.001").
	Amount string `json:"amount,omitempty"`
	Fee    string `json:"fee,omitempty"`

	// Message is UTF-8 text, or hex when HexMessage is set.
	Message    string `json:"message,omitempty"`
	HexMessage bool   `json:"hex_message,omitempty"`

	// ReferenceHash names the BIP a vote targets.
	ReferenceHash string `json:"reference_hash,omitempty"`

	// Vote is APPROVAL or DISAPPROVAL for BIP_VOTE transactions.
	Vote string `json:"vote,omitempty"`

	// PayloadRLP is the hex-encoded RLP of a BIP payload, for BIP_CREATE
	// transactions whose payload was produced elsewhere.
	PayloadRLP string `json:"payload_rlp,omitempty"`

	// AccountIndex selects the key under m/44'/60'/0'/0/{index}.
	AccountIndex uint32 `json:"account_index"`
}

// SignedTransaction is the result of the signing process.
type SignedTransaction struct {
	TxHash    string `json:"tx_hash"`
	Sender    string `json:"sender"`
	Signature string `json:"signature"`
	Size      uint32 `json:"size"`
	RawTx     string `json:"raw_tx"` // RLP encoded hex, ready to submit
}
