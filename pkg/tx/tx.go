// Package tx models GoldenEra transactions: the typed record, the versioned
// wire codec, the builder and the signing pipeline glue.
package tx

import (
	"math/big"

	"github.com/GoldenEraGlobal/cryptog/pkg/crypto_util"
	"github.com/GoldenEraGlobal/cryptog/pkg/types"
)

// Tx is an immutable transaction record. Unsigned instances come out of the
// builder; signed instances come out of Builder.Sign or Decode and carry the
// derived sender, canonical hash and size, computed once and frozen.
type Tx struct {
	version       types.TxVersion
	timestamp     uint64
	txType        types.TxType
	network       types.Network
	nonce         *uint64
	recipient     *types.Address
	tokenAddress  *types.Address
	amount        *big.Int
	fee           *big.Int
	message       []byte
	payload       Payload
	referenceHash *types.Hash
	signature     *types.Signature

	// derived, not transmitted
	sender types.Address
	hash   types.Hash
	size   uint32
}

func (t *Tx) Version() types.TxVersion { return t.version }

// Timestamp is milliseconds since the Unix epoch.
func (t *Tx) Timestamp() uint64 { return t.timestamp }

func (t *Tx) Type() types.TxType { return t.txType }

func (t *Tx) Network() types.Network { return t.network }

func (t *Tx) Nonce() *uint64 {
	if t.nonce == nil {
		return nil
	}
	v := *t.nonce
	return &v
}

func (t *Tx) Recipient() *types.Address {
	if t.recipient == nil {
		return nil
	}
	v := *t.recipient
	return &v
}

func (t *Tx) TokenAddress() *types.Address {
	if t.tokenAddress == nil {
		return nil
	}
	v := *t.tokenAddress
	return &v
}

func (t *Tx) Amount() *big.Int {
	if t.amount == nil {
		return nil
	}
	return new(big.Int).Set(t.amount)
}

func (t *Tx) Fee() *big.Int {
	return new(big.Int).Set(t.fee)
}

func (t *Tx) Message() []byte {
	if t.message == nil {
		return nil
	}
	out := make([]byte, len(t.message))
	copy(out, t.message)
	return out
}

func (t *Tx) Payload() Payload { return t.payload }

func (t *Tx) ReferenceHash() *types.Hash {
	if t.referenceHash == nil {
		return nil
	}
	v := *t.referenceHash
	return &v
}

func (t *Tx) Signature() *types.Signature {
	if t.signature == nil {
		return nil
	}
	v := *t.signature
	return &v
}

// Sender is the address recovered from the signature; zero on unsigned
// transactions.
func (t *Tx) Sender() types.Address { return t.sender }

// Hash is the canonical transaction hash: Keccak-256 of the signed encoding.
// Zero on unsigned transactions.
func (t *Tx) Hash() types.Hash { return t.hash }

// Size is the byte length of the signed encoding; zero on unsigned
// transactions.
func (t *Tx) Size() uint32 { return t.size }

// Encode serializes the transaction; with includeSignature the 65-byte
// signature is appended as the final bare string.
func (t *Tx) Encode(includeSignature bool) ([]byte, error) {
	return encodeTx(t, includeSignature)
}

// HashForSigning is Keccak-256 over the encoding with the signature omitted:
// the message actually signed.
func (t *Tx) HashForSigning() (types.Hash, error) {
	unsigned, err := t.Encode(false)
	if err != nil {
		return types.Hash{}, err
	}
	return crypto_util.Keccak256Hash(unsigned), nil
}

// Equal reports field-wise equality of the serialized fields and the derived
// fields.
func (t *Tx) Equal(o *Tx) bool {
	if t == nil || o == nil {
		return t == o
	}
	enc1, err1 := t.Encode(t.signature != nil)
	enc2, err2 := o.Encode(o.signature != nil)
	if err1 != nil || err2 != nil {
		return false
	}
	return string(enc1) == string(enc2) &&
		t.sender == o.sender && t.hash == o.hash && t.size == o.size
}

// seal computes the derived fields of a signed transaction. The signature
// must already be attached.
func (t *Tx) seal() error {
	signingHash, err := t.HashForSigning()
	if err != nil {
		return err
	}
	sender, err := crypto_util.RecoverAddress(signingHash, *t.signature)
	if err != nil {
		return err
	}
	signed, err := t.Encode(true)
	if err != nil {
		return err
	}
	t.sender = sender
	t.hash = crypto_util.Keccak256Hash(signed)
	t.size = uint32(len(signed))
	return nil
}
