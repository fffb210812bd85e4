package types

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
)

func TestAddressHexRoundTrip(t *testing.T) {
	in := "0x1111111111111111111111111111111111111111"
	a, err := AddressFromHex(in)
	require.NoError(t, err)
	assert.Equal(t, in, a.Hex())
	assert.Equal(t, in, a.String())

	// Mixed case parses, output is always lowercase.
	b, err := AddressFromHex("0xAbCdEf1234567890aBcDeF1234567890ABCDEF12")
	require.NoError(t, err)
	assert.Equal(t, "0xabcdef1234567890abcdef1234567890abcdef12", b.Hex())
}

func TestAddressParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr errno.Errno
	}{
		{"odd length", "0x111", errno.ErrHexOddLength},
		{"bad digit", "0x11111111111111111111111111111111111111zz", errno.ErrHexDigit},
		{"too short", "0x1111", errno.ErrHexLength},
		{"too long", "0x111111111111111111111111111111111111111111", errno.ErrHexLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AddressFromHex(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAddressFromBytesEnforcesWidth(t *testing.T) {
	_, err := AddressFromBytes(make([]byte, 19))
	assert.True(t, errors.Is(err, errno.ErrValueLength))
	_, err = AddressFromBytes(make([]byte, 21))
	assert.True(t, errors.Is(err, errno.ErrValueLength))
	_, err = HashFromBytes(make([]byte, 31))
	assert.True(t, errors.Is(err, errno.ErrValueLength))
	_, err = SignatureFromBytes(make([]byte, 64))
	assert.True(t, errors.Is(err, errno.ErrValueLength))
}

func TestNativeTokenSentinel(t *testing.T) {
	assert.True(t, NativeToken.IsNative())
	assert.Equal(t, "0x0000000000000000000000000000000000000000", NativeToken.Hex())

	a, err := AddressFromHex("0x1111111111111111111111111111111111111111")
	require.NoError(t, err)
	assert.False(t, a.IsNative())
}

func TestSignatureComponents(t *testing.T) {
	r := big.NewInt(0x1234)
	s := big.NewInt(0x5678)
	sig := NewSignature(r, s, 27)

	assert.Zero(t, r.Cmp(sig.R()))
	assert.Zero(t, s.Cmp(sig.S()))
	assert.Equal(t, byte(27), sig.V())

	// r and s are left-padded big-endian.
	assert.Equal(t, byte(0x12), sig[30])
	assert.Equal(t, byte(0x34), sig[31])
	assert.Equal(t, byte(0x00), sig[0])
}

func TestHashHexRoundTrip(t *testing.T) {
	in := "0xabcdef1234567890abcdef1234567890abcdef1234567890abcdef1234567890"
	h, err := HashFromHex(in)
	require.NoError(t, err)
	assert.Equal(t, in, h.Hex())
	assert.False(t, h.IsZero())
	assert.True(t, Hash{}.IsZero())
}

func TestTextMarshaling(t *testing.T) {
	a, err := AddressFromHex("0x2222222222222222222222222222222222222222")
	require.NoError(t, err)

	text, err := a.MarshalText()
	require.NoError(t, err)

	var back Address
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, a, back)
}

func TestEnumCodes(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"mainnet", Mainnet.Code(), 1},
		{"testnet", Testnet.Code(), 2},
		{"v1", TxV1.Code(), 1},
		{"transfer", TxTransfer.Code(), 1},
		{"bip create", TxBipCreate.Code(), 2},
		{"bip vote", TxBipVote.Code(), 3},
		{"alias add", PayloadAddressAliasAdd.Code(), 0},
		{"vote payload", PayloadVote.Code(), 9},
		{"disapproval", VoteDisapproval.Code(), 0},
		{"approval", VoteApproval.Code(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEnumFromCodeRejectsUnknown(t *testing.T) {
	_, err := NetworkFromCode(9)
	assert.True(t, errors.Is(err, errno.ErrUnknownNetwork))
	_, err = TxVersionFromCode(2)
	assert.True(t, errors.Is(err, errno.ErrUnknownTxVersion))
	_, err = TxTypeFromCode(0)
	assert.True(t, errors.Is(err, errno.ErrUnknownTxType))
	_, err = VoteTypeFromCode(2)
	assert.True(t, errors.Is(err, errno.ErrUnknownVoteType))
}
