package vectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoldenEraGlobal/cryptog/pkg/bip32"
	"github.com/GoldenEraGlobal/cryptog/pkg/crypto_util"
	"github.com/GoldenEraGlobal/cryptog/pkg/tx"
	"github.com/GoldenEraGlobal/cryptog/pkg/types"
)

func TestGenerateCoversEveryScenario(t *testing.T) {
	vecs, err := Generate(TestMnemonic, TestPassword, 0)
	require.NoError(t, err)

	wantNames := []string{
		"simple_transfer",
		"transfer_with_message",
		"bip_token_mint",
		"bip_token_burn",
		"bip_token_create",
		"bip_token_update",
		"bip_address_alias_add",
		"bip_address_alias_remove",
		"bip_authority_add",
		"bip_authority_remove",
		"bip_network_params_set",
		"bip_vote_approval",
		"bip_vote_disapproval",
	}
	require.Len(t, vecs, len(wantNames))
	for i, v := range vecs {
		assert.Equal(t, wantNames[i], v.Name)
		assert.Equal(t, BaseTimestampMs+uint64(i), v.Timestamp, "timestamps are monotonic from the base")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	first, err := Generate(TestMnemonic, TestPassword, 0)
	require.NoError(t, err)
	second, err := Generate(TestMnemonic, TestPassword, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVectorsRoundTripAndRecover(t *testing.T) {
	priv, err := bip32.DeriveAccount(TestMnemonic, TestPassword, 0)
	require.NoError(t, err)

	vecs, err := Generate(TestMnemonic, TestPassword, 0)
	require.NoError(t, err)

	for _, v := range vecs {
		t.Run(v.Name, func(t *testing.T) {
			raw, err := types.DecodeHex(v.RLPWithSig)
			require.NoError(t, err)
			assert.Equal(t, int(v.Size), len(raw), "size matches the signed encoding length")

			decoded, err := tx.Decode(raw)
			require.NoError(t, err)

			assert.Equal(t, priv.Address(), decoded.Sender(), "sender recovers to the fixture account")
			assert.Equal(t, v.TxHash, decoded.Hash().Hex())
			assert.Equal(t, v.Size, decoded.Size())
			assert.Equal(t, v.Timestamp, decoded.Timestamp())

			signingHash, err := decoded.HashForSigning()
			require.NoError(t, err)
			assert.Equal(t, v.HashForSigning, signingHash.Hex())
			assert.NotEqual(t, v.HashForSigning, v.TxHash, "canonical hash differs from signing hash")

			unsigned, err := decoded.Encode(false)
			require.NoError(t, err)
			assert.Equal(t, v.RLPWithoutSig, types.EncodeHex(unsigned))

			sig := decoded.Signature()
			require.NotNil(t, sig)
			assert.Equal(t, v.Signature, sig.Hex())
			assert.True(t, crypto_util.IsLowS(*sig))
			assert.True(t, crypto_util.ValidateSignature(signingHash, *sig, priv.Address()))

			reencoded, err := decoded.Encode(true)
			require.NoError(t, err)
			assert.Equal(t, v.RLPWithSig, types.EncodeHex(reencoded))
		})
	}
}

func TestKeyDerivationVectors(t *testing.T) {
	keys, err := KeyDerivation(TestMnemonic, TestPassword, 5)
	require.NoError(t, err)
	require.Len(t, keys, 5)

	assert.Equal(t, "0x1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727", keys[0].PrivateKey)
	assert.Equal(t, "0x9858effd232b4033e47d90003d41ec34ecaeda94", keys[0].Address)

	seen := map[string]bool{}
	for i, k := range keys {
		assert.Equal(t, uint32(i), k.Index)
		assert.False(t, seen[k.Address], "addresses are distinct per index")
		seen[k.Address] = true
	}
}
