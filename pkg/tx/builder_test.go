package tx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoldenEraGlobal/cryptog/pkg/amounts"
	"github.com/GoldenEraGlobal/cryptog/pkg/crypto_util"
	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
	"github.com/GoldenEraGlobal/cryptog/pkg/types"
)

const builderTestKey = "0x1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727"

func builderKey(t *testing.T) *crypto_util.PrivateKey {
	t.Helper()
	priv, err := crypto_util.PrivateKeyFromHex(builderTestKey)
	require.NoError(t, err)
	return priv
}

func refHash() types.Hash {
	h, err := types.HashFromHex("0xabcdef1234567890abcdef1234567890abcdef1234567890abcdef1234567890")
	if err != nil {
		panic(err)
	}
	return h
}

func TestBuilderRejectsInvariantViolations(t *testing.T) {
	recipient := mustAddrHelper("0x1111111111111111111111111111111111111111")
	mint := &TokenMint{
		TokenAddress: mustAddrHelper("0x3333333333333333333333333333333333333333"),
		Recipient:    mustAddrHelper("0x4444444444444444444444444444444444444444"),
		Amount:       amounts.Tokens(1),
	}

	tests := []struct {
		name    string
		build   func() *Builder
		wantErr errno.Errno
	}{
		{
			"missing type",
			func() *Builder { return NewBuilder().Network(types.Mainnet) },
			errno.ErrMissingField,
		},
		{
			"missing network",
			func() *Builder { return NewBuilder().Type(types.TxTransfer).Recipient(recipient) },
			errno.ErrMissingField,
		},
		{
			"transfer without recipient",
			func() *Builder { return NewBuilder().Type(types.TxTransfer).Network(types.Mainnet) },
			errno.ErrMissingField,
		},
		{
			"transfer with payload",
			func() *Builder {
				return NewBuilder().Type(types.TxTransfer).Network(types.Mainnet).
					Recipient(recipient).Payload(mint)
			},
			errno.ErrForbiddenField,
		},
		{
			"transfer with reference hash",
			func() *Builder {
				return NewBuilder().Type(types.TxTransfer).Network(types.Mainnet).
					Recipient(recipient).ReferenceHash(refHash())
			},
			errno.ErrForbiddenField,
		},
		{
			"bip create without payload",
			func() *Builder { return NewBuilder().Type(types.TxBipCreate).Network(types.Mainnet) },
			errno.ErrMissingField,
		},
		{
			"bip create with amount",
			func() *Builder {
				return NewBuilder().Type(types.TxBipCreate).Network(types.Mainnet).
					Payload(mint).Amount(amounts.Tokens(1))
			},
			errno.ErrForbiddenField,
		},
		{
			"bip create with recipient",
			func() *Builder {
				return NewBuilder().Type(types.TxBipCreate).Network(types.Mainnet).
					Payload(mint).Recipient(recipient)
			},
			errno.ErrForbiddenField,
		},
		{
			"bip create with reference hash",
			func() *Builder {
				return NewBuilder().Type(types.TxBipCreate).Network(types.Mainnet).
					Payload(mint).ReferenceHash(refHash())
			},
			errno.ErrForbiddenField,
		},
		{
			"bip vote without payload",
			func() *Builder {
				return NewBuilder().Type(types.TxBipVote).Network(types.Mainnet).
					ReferenceHash(refHash())
			},
			errno.ErrMissingField,
		},
		{
			"bip vote with non-vote payload",
			func() *Builder {
				return NewBuilder().Type(types.TxBipVote).Network(types.Mainnet).
					Payload(mint).ReferenceHash(refHash())
			},
			errno.ErrInvalidField,
		},
		{
			"bip vote without reference hash",
			func() *Builder {
				return NewBuilder().Type(types.TxBipVote).Network(types.Mainnet).
					Payload(&Vote{VoteType: types.VoteApproval})
			},
			errno.ErrMissingField,
		},
		{
			"bip vote with amount",
			func() *Builder {
				return NewBuilder().Type(types.TxBipVote).Network(types.Mainnet).
					Payload(&Vote{VoteType: types.VoteApproval}).
					ReferenceHash(refHash()).Amount(amounts.Tokens(1))
			},
			errno.ErrForbiddenField,
		},
	}

	priv := builderKey(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().BuildUnsigned()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)

			// Sign fails the same way, before touching the key.
			_, err = tt.build().Sign(priv)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestBuilderDefaults(t *testing.T) {
	recipient := mustAddrHelper("0x1111111111111111111111111111111111111111")

	unsigned, err := NewBuilder().
		Type(types.TxTransfer).
		Network(types.Mainnet).
		Recipient(recipient).
		BuildUnsigned()
	require.NoError(t, err)

	assert.Equal(t, types.TxV1, unsigned.Version())
	assert.NotZero(t, unsigned.Timestamp(), "timestamp defaults to the wall clock")
	assert.Zero(t, unsigned.Fee().Sign(), "fee defaults to zero")
	require.NotNil(t, unsigned.TokenAddress())
	assert.True(t, unsigned.TokenAddress().IsNative(), "transfers default to the native token")
	assert.Nil(t, unsigned.Nonce())
	assert.Nil(t, unsigned.Amount())
	assert.Nil(t, unsigned.Signature())
	assert.True(t, unsigned.Hash().IsZero(), "derived fields stay zero until signing")
}

func TestBuilderDoesNotDefaultTokenAddressForBip(t *testing.T) {
	unsigned, err := NewBuilder().
		Type(types.TxBipCreate).
		Network(types.Mainnet).
		Payload(&AddressAliasRemove{Alias: "x"}).
		BuildUnsigned()
	require.NoError(t, err)
	assert.Nil(t, unsigned.TokenAddress())
}

func TestSignSealsDerivedFields(t *testing.T) {
	priv := builderKey(t)

	signed, err := NewBuilder().
		Type(types.TxTransfer).
		Network(types.Mainnet).
		Timestamp(1_702_200_000_000).
		Nonce(1).
		Recipient(mustAddrHelper("0x1111111111111111111111111111111111111111")).
		Amount(amounts.Tokens(100)).
		Fee(amounts.Tokens(1)).
		Sign(priv)
	require.NoError(t, err)

	assert.Equal(t, priv.Address(), signed.Sender())
	assert.False(t, signed.Hash().IsZero())
	require.NotNil(t, signed.Signature())
	assert.Contains(t, []byte{27, 28}, signed.Signature().V())
	assert.True(t, crypto_util.IsLowS(*signed.Signature()))

	encoded, err := signed.Encode(true)
	require.NoError(t, err)
	assert.Equal(t, uint32(len(encoded)), signed.Size())
	assert.Equal(t, crypto_util.Keccak256Hash(encoded), signed.Hash())

	signingHash, err := signed.HashForSigning()
	require.NoError(t, err)
	assert.NotEqual(t, signingHash, signed.Hash(), "canonical hash differs from signing hash")
}

func TestSignIsDeterministic(t *testing.T) {
	priv := builderKey(t)
	build := func() *Builder {
		return NewBuilder().
			Type(types.TxTransfer).
			Network(types.Testnet).
			Timestamp(1_702_200_000_001).
			Nonce(42).
			Recipient(mustAddrHelper("0x2222222222222222222222222222222222222222")).
			Amount(amounts.Tokens(1)).
			MessageString("Hello GoldenEra!")
	}

	tx1, err := build().Sign(priv)
	require.NoError(t, err)
	tx2, err := build().Sign(priv)
	require.NoError(t, err)

	assert.Equal(t, tx1.Signature(), tx2.Signature())
	assert.Equal(t, tx1.Hash(), tx2.Hash())

	enc1, err := tx1.Encode(true)
	require.NoError(t, err)
	enc2, err := tx2.Encode(true)
	require.NoError(t, err)
	assert.Equal(t, enc1, enc2)
}

func TestSigningHashIgnoresSignature(t *testing.T) {
	build := func() *Builder {
		return NewBuilder().
			Type(types.TxBipVote).
			Network(types.Mainnet).
			Timestamp(1_702_200_000_002).
			Nonce(100).
			ReferenceHash(refHash()).
			Payload(&Vote{VoteType: types.VoteApproval})
	}

	priv := builderKey(t)
	signed, err := build().Sign(priv)
	require.NoError(t, err)
	unsigned, err := build().BuildUnsigned()
	require.NoError(t, err)

	h1, err := signed.HashForSigning()
	require.NoError(t, err)
	h2, err := unsigned.HashForSigning()
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}
