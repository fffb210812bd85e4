package tx

import (
	"math/big"
	"time"

	"github.com/GoldenEraGlobal/cryptog/pkg/crypto_util"
	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
	"github.com/GoldenEraGlobal/cryptog/pkg/types"
)

// Builder collects transaction fields and finishes with Sign. It is the only
// mutable intermediate; the Tx it produces is immutable.
type Builder struct {
	timestamp     *uint64
	txType        *types.TxType
	network       *types.Network
	nonce         *uint64
	recipient     *types.Address
	tokenAddress  *types.Address
	amount        *big.Int
	fee           *big.Int
	message       []byte
	payload       Payload
	referenceHash *types.Hash
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Type(t types.TxType) *Builder {
	b.txType = &t
	return b
}

func (b *Builder) Network(n types.Network) *Builder {
	b.network = &n
	return b
}

// Timestamp sets the transaction time in milliseconds since the Unix epoch.
// Unset, it defaults to the wall clock at signing time.
func (b *Builder) Timestamp(ms uint64) *Builder {
	b.timestamp = &ms
	return b
}

func (b *Builder) Nonce(n uint64) *Builder {
	b.nonce = &n
	return b
}

func (b *Builder) Recipient(a types.Address) *Builder {
	b.recipient = &a
	return b
}

func (b *Builder) TokenAddress(a types.Address) *Builder {
	b.tokenAddress = &a
	return b
}

func (b *Builder) Amount(wei *big.Int) *Builder {
	b.amount = new(big.Int).Set(wei)
	return b
}

func (b *Builder) Fee(wei *big.Int) *Builder {
	b.fee = new(big.Int).Set(wei)
	return b
}

// Message attaches arbitrary bytes. A nil slice clears the field.
func (b *Builder) Message(msg []byte) *Builder {
	if msg == nil {
		b.message = nil
		return b
	}
	b.message = make([]byte, len(msg))
	copy(b.message, msg)
	return b
}

// MessageString attaches UTF-8 text.
func (b *Builder) MessageString(msg string) *Builder {
	b.message = []byte(msg)
	return b
}

func (b *Builder) Payload(p Payload) *Builder {
	b.payload = p
	return b
}

func (b *Builder) ReferenceHash(h types.Hash) *Builder {
	b.referenceHash = &h
	return b
}

// BuildUnsigned validates the per-type invariants, applies defaults and
// returns the unsigned record. Its derived fields are zero until signing.
func (b *Builder) BuildUnsigned() (*Tx, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	t := &Tx{
		version:       types.TxV1,
		txType:        *b.txType,
		network:       *b.network,
		nonce:         b.nonce,
		recipient:     b.recipient,
		tokenAddress:  b.tokenAddress,
		amount:        b.amount,
		fee:           b.fee,
		message:       b.message,
		payload:       b.payload,
		referenceHash: b.referenceHash,
	}

	if b.timestamp != nil {
		t.timestamp = *b.timestamp
	} else {
		t.timestamp = uint64(time.Now().UnixMilli())
	}
	if t.fee == nil {
		t.fee = new(big.Int)
	}
	if *b.txType == types.TxTransfer && t.tokenAddress == nil {
		native := types.NativeToken
		t.tokenAddress = &native
	}

	return t, nil
}

// Sign validates, builds the unsigned record, signs its signing hash and
// returns the sealed transaction with sender, canonical hash and size frozen.
func (b *Builder) Sign(priv *crypto_util.PrivateKey) (*Tx, error) {
	t, err := b.BuildUnsigned()
	if err != nil {
		return nil, err
	}

	signingHash, err := t.HashForSigning()
	if err != nil {
		return nil, err
	}
	sig, err := crypto_util.Sign(priv, signingHash)
	if err != nil {
		return nil, err
	}
	t.signature = &sig
	if err := t.seal(); err != nil {
		return nil, err
	}
	return t, nil
}

// validate enforces the per-type field constraints before any key material is
// touched.
func (b *Builder) validate() error {
	if b.txType == nil {
		return errno.ErrMissingField.Withf("type")
	}
	if b.network == nil {
		return errno.ErrMissingField.Withf("network")
	}
	if b.amount != nil && b.amount.Sign() < 0 {
		return errno.ErrInvalidField.Withf("amount is negative")
	}
	if b.fee != nil && b.fee.Sign() < 0 {
		return errno.ErrInvalidField.Withf("fee is negative")
	}

	switch *b.txType {
	case types.TxTransfer:
		if b.recipient == nil {
			return errno.ErrMissingField.Withf("recipient is required for TRANSFER")
		}
		if b.payload != nil {
			return errno.ErrForbiddenField.Withf("payload is not allowed for TRANSFER")
		}
		if b.referenceHash != nil {
			return errno.ErrForbiddenField.Withf("referenceHash is not allowed for TRANSFER")
		}
	case types.TxBipCreate:
		if b.payload == nil {
			return errno.ErrMissingField.Withf("payload is required for BIP_CREATE")
		}
		if b.amount != nil {
			return errno.ErrForbiddenField.Withf("amount is not allowed for BIP_CREATE")
		}
		if b.recipient != nil {
			return errno.ErrForbiddenField.Withf("recipient is not allowed for BIP_CREATE")
		}
		if b.referenceHash != nil {
			return errno.ErrForbiddenField.Withf("referenceHash is not allowed for BIP_CREATE")
		}
	case types.TxBipVote:
		if b.payload == nil {
			return errno.ErrMissingField.Withf("payload is required for BIP_VOTE")
		}
		if _, ok := b.payload.(*Vote); !ok {
			return errno.ErrInvalidField.Withf("BIP_VOTE payload must be a vote, got %s", b.payload.Type())
		}
		if b.referenceHash == nil {
			return errno.ErrMissingField.Withf("referenceHash is required for BIP_VOTE")
		}
		if b.amount != nil {
			return errno.ErrForbiddenField.Withf("amount is not allowed for BIP_VOTE")
		}
	default:
		return errno.ErrUnknownTxType.Withf("code %d", b.txType.Code())
	}
	return nil
}
