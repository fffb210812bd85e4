// Package vectors regenerates the compatibility scenarios shared with the
// other GoldenEra client implementations. The output of Generate is compared
// byte-exactly against the reference vectors; any divergence is an interop
// bug.
package vectors

import (
	"math/big"

	"github.com/GoldenEraGlobal/cryptog/pkg/amounts"
	"github.com/GoldenEraGlobal/cryptog/pkg/bip32"
	"github.com/GoldenEraGlobal/cryptog/pkg/crypto_util"
	"github.com/GoldenEraGlobal/cryptog/pkg/tx"
	"github.com/GoldenEraGlobal/cryptog/pkg/types"
)

const (
	// TestMnemonic is the shared fixture phrase of every implementation's
	// vector suite.
	TestMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	TestPassword = ""

	// BaseTimestampMs seeds the per-scenario monotonic timestamps.
	BaseTimestampMs uint64 = 1_702_200_000_000
)

// Vector is one scenario's expected artifacts.
type Vector struct {
	Name           string `json:"name"`
	Timestamp      uint64 `json:"timestamp"`
	HashForSigning string `json:"hashForSigning"`
	TxHash         string `json:"txHash"`
	Signature      string `json:"signature"`
	RLPWithoutSig  string `json:"rlpWithoutSig"`
	RLPWithSig     string `json:"rlpWithSig"`
	Size           uint32 `json:"size"`
}

// KeyVector is one derived account.
type KeyVector struct {
	Index      uint32 `json:"index"`
	PrivateKey string `json:"privateKey"`
	Address    string `json:"address"`
}

type scenario struct {
	name  string
	build func() *tx.Builder
}

func addr(s string) types.Address {
	a, err := types.AddressFromHex(s)
	if err != nil {
		panic(err)
	}
	return a
}

func hash(s string) types.Hash {
	h, err := types.HashFromHex(s)
	if err != nil {
		panic(err)
	}
	return h
}

func mustTokensDecimal(s string) *big.Int {
	v, err := amounts.TokensDecimal(s)
	if err != nil {
		panic(err)
	}
	return v
}

// scenarios lists every compatibility case, in the reference generator's
// order. Timestamps are assigned positionally from BaseTimestampMs.
func scenarios() []scenario {
	return []scenario{
		{"simple_transfer", func() *tx.Builder {
			return tx.NewBuilder().
				Type(types.TxTransfer).
				Network(types.Mainnet).
				Nonce(1).
				Recipient(addr("0x1111111111111111111111111111111111111111")).
				Amount(amounts.Tokens(100)).
				Fee(mustTokensDecimal("0.001"))
		}},
		{"transfer_with_message", func() *tx.Builder {
			return tx.NewBuilder().
				Type(types.TxTransfer).
				Network(types.Testnet).
				Nonce(42).
				Recipient(addr("0x2222222222222222222222222222222222222222")).
				Amount(mustTokensDecimal("1.5")).
				Fee(amounts.Tokens(1)).
				MessageString("Hello GoldenEra!")
		}},
		{"bip_token_mint", func() *tx.Builder {
			return tx.NewBuilder().
				Type(types.TxBipCreate).
				Network(types.Mainnet).
				Nonce(10).
				Fee(mustTokensDecimal("0.01")).
				Payload(&tx.TokenMint{
					TokenAddress: addr("0x3333333333333333333333333333333333333333"),
					Recipient:    addr("0x4444444444444444444444444444444444444444"),
					Amount:       amounts.Tokens(1_000_000),
				})
		}},
		{"bip_token_burn", func() *tx.Builder {
			return tx.NewBuilder().
				Type(types.TxBipCreate).
				Network(types.Mainnet).
				Nonce(11).
				Fee(mustTokensDecimal("0.01")).
				Payload(&tx.TokenBurn{
					TokenAddress: addr("0x5555555555555555555555555555555555555555"),
					Sender:       addr("0x6666666666666666666666666666666666666666"),
					Amount:       amounts.Tokens(500),
				})
		}},
		{"bip_token_create", func() *tx.Builder {
			website := "https://test.token"
			logo := "https://test.token/logo.png"
			return tx.NewBuilder().
				Type(types.TxBipCreate).
				Network(types.Mainnet).
				Nonce(12).
				Fee(mustTokensDecimal("1")).
				Payload(&tx.TokenCreate{
					Name:             "TestToken",
					SmallestUnitName: "TT",
					NumberOfDecimals: 9,
					WebsiteURL:       &website,
					LogoURL:          &logo,
					MaxSupply:        amounts.Tokens(1_000_000_000),
					UserBurnable:     true,
				})
		}},
		{"bip_token_update", func() *tx.Builder {
			name := "UpdatedToken"
			website := "https://updated.token"
			return tx.NewBuilder().
				Type(types.TxBipCreate).
				Network(types.Mainnet).
				Nonce(13).
				Fee(mustTokensDecimal("0.1")).
				Payload(&tx.TokenUpdate{
					TokenAddress: addr("0x7777777777777777777777777777777777777777"),
					Name:         &name,
					WebsiteURL:   &website,
				})
		}},
		{"bip_address_alias_add", func() *tx.Builder {
			return tx.NewBuilder().
				Type(types.TxBipCreate).
				Network(types.Mainnet).
				Nonce(14).
				Fee(mustTokensDecimal("0.01")).
				Payload(&tx.AddressAliasAdd{
					Alias:   "my-alias",
					Address: addr("0x8888888888888888888888888888888888888888"),
				})
		}},
		{"bip_address_alias_remove", func() *tx.Builder {
			return tx.NewBuilder().
				Type(types.TxBipCreate).
				Network(types.Mainnet).
				Nonce(15).
				Fee(mustTokensDecimal("0.01")).
				Payload(&tx.AddressAliasRemove{Alias: "old-alias"})
		}},
		{"bip_authority_add", func() *tx.Builder {
			return tx.NewBuilder().
				Type(types.TxBipCreate).
				Network(types.Mainnet).
				Nonce(16).
				Fee(mustTokensDecimal("0.01")).
				Payload(&tx.AuthorityAdd{
					Address: addr("0x9999999999999999999999999999999999999999"),
				})
		}},
		{"bip_authority_remove", func() *tx.Builder {
			return tx.NewBuilder().
				Type(types.TxBipCreate).
				Network(types.Mainnet).
				Nonce(17).
				Fee(mustTokensDecimal("0.01")).
				Payload(&tx.AuthorityRemove{
					Address: addr("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
				})
		}},
		{"bip_network_params_set", func() *tx.Builder {
			return tx.NewBuilder().
				Type(types.TxBipCreate).
				Network(types.Mainnet).
				Nonce(18).
				Fee(mustTokensDecimal("0.01")).
				Payload(&tx.NetworkParamsSet{
					BlockReward:  amounts.Tokens(50),
					MinTxBaseFee: mustTokensDecimal("0.0001"),
					MinTxByteFee: mustTokensDecimal("0.00001"),
				})
		}},
		{"bip_vote_approval", func() *tx.Builder {
			return tx.NewBuilder().
				Type(types.TxBipVote).
				Network(types.Mainnet).
				Nonce(100).
				Fee(mustTokensDecimal("0.001")).
				ReferenceHash(hash("0xabcdef1234567890abcdef1234567890abcdef1234567890abcdef1234567890")).
				Payload(&tx.Vote{VoteType: types.VoteApproval})
		}},
		{"bip_vote_disapproval", func() *tx.Builder {
			return tx.NewBuilder().
				Type(types.TxBipVote).
				Network(types.Mainnet).
				Nonce(101).
				Fee(mustTokensDecimal("0.001")).
				ReferenceHash(hash("0xfedcba0987654321fedcba0987654321fedcba0987654321fedcba0987654321")).
				Payload(&tx.Vote{VoteType: types.VoteDisapproval})
		}},
	}
}

// SignAll builds and signs every scenario with the given key, assigning
// monotonic timestamps from BaseTimestampMs.
func SignAll(priv *crypto_util.PrivateKey) ([]*tx.Tx, []string, error) {
	scens := scenarios()
	txs := make([]*tx.Tx, 0, len(scens))
	names := make([]string, 0, len(scens))
	ts := BaseTimestampMs
	for _, s := range scens {
		t, err := s.build().Timestamp(ts).Sign(priv)
		if err != nil {
			return nil, nil, err
		}
		ts++
		txs = append(txs, t)
		names = append(names, s.name)
	}
	return txs, names, nil
}

// Generate derives the account key and renders every scenario's artifacts.
func Generate(mnemonic, password string, index uint32) ([]Vector, error) {
	priv, err := bip32.DeriveAccount(mnemonic, password, index)
	if err != nil {
		return nil, err
	}
	txs, names, err := SignAll(priv)
	if err != nil {
		return nil, err
	}

	out := make([]Vector, 0, len(txs))
	for i, t := range txs {
		withoutSig, err := t.Encode(false)
		if err != nil {
			return nil, err
		}
		withSig, err := t.Encode(true)
		if err != nil {
			return nil, err
		}
		signingHash, err := t.HashForSigning()
		if err != nil {
			return nil, err
		}
		out = append(out, Vector{
			Name:           names[i],
			Timestamp:      t.Timestamp(),
			HashForSigning: signingHash.Hex(),
			TxHash:         t.Hash().Hex(),
			Signature:      t.Signature().Hex(),
			RLPWithoutSig:  types.EncodeHex(withoutSig),
			RLPWithSig:     types.EncodeHex(withSig),
			Size:           t.Size(),
		})
	}
	return out, nil
}

// KeyDerivation derives the first count accounts.
func KeyDerivation(mnemonic, password string, count uint32) ([]KeyVector, error) {
	out := make([]KeyVector, 0, count)
	for i := uint32(0); i < count; i++ {
		priv, err := bip32.DeriveAccount(mnemonic, password, i)
		if err != nil {
			return nil, err
		}
		out = append(out, KeyVector{
			Index:      i,
			PrivateKey: priv.Hex(),
			Address:    priv.Address().Hex(),
		})
	}
	return out, nil
}
