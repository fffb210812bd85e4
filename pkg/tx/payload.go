package tx

import (
	"math/big"

	"github.com/GoldenEraGlobal/cryptog/pkg/rlp"
	"github.com/GoldenEraGlobal/cryptog/pkg/types"
)

// Payload is a BIP payload variant. The set is closed: every variant lives in
// this package and carries a stable numeric tag, and encoding dispatches on
// the tag.
type Payload interface {
	Type() types.PayloadType

	// appendFields appends the variant's fields, in wire order, after the
	// tag. Implementing this unexported method seals the set.
	appendFields(dst []byte) []byte
}

// AddressAliasAdd registers a human-readable alias for an address.
// The alias is encoded before the address; the ordering is normative.
type AddressAliasAdd struct {
	Alias   string
	Address types.Address
}

func (p *AddressAliasAdd) Type() types.PayloadType { return types.PayloadAddressAliasAdd }

func (p *AddressAliasAdd) appendFields(dst []byte) []byte {
	dst = rlp.AppendString(dst, p.Alias)
	return rlp.AppendBytes(dst, p.Address.Bytes())
}

// AddressAliasRemove drops an alias registration.
type AddressAliasRemove struct {
	Alias string
}

func (p *AddressAliasRemove) Type() types.PayloadType { return types.PayloadAddressAliasRemove }

func (p *AddressAliasRemove) appendFields(dst []byte) []byte {
	return rlp.AppendString(dst, p.Alias)
}

// AuthorityAdd grants authority status to an address.
type AuthorityAdd struct {
	Address types.Address
}

func (p *AuthorityAdd) Type() types.PayloadType { return types.PayloadAuthorityAdd }

func (p *AuthorityAdd) appendFields(dst []byte) []byte {
	return rlp.AppendBytes(dst, p.Address.Bytes())
}

// AuthorityRemove revokes authority status from an address.
type AuthorityRemove struct {
	Address types.Address
}

func (p *AuthorityRemove) Type() types.PayloadType { return types.PayloadAuthorityRemove }

func (p *AuthorityRemove) appendFields(dst []byte) []byte {
	return rlp.AppendBytes(dst, p.Address.Bytes())
}

// NetworkParamsSet proposes new consensus parameters. Every field is
// optional; omitted parameters are left unchanged by the proposal and encode
// as empty lists.
type NetworkParamsSet struct {
	BlockReward            *big.Int
	BlockRewardPoolAddress *types.Address
	TargetMiningTimeMs     *uint64
	AsertHalfLifeBlocks    *uint64
	MinDifficulty          *big.Int
	MinTxBaseFee           *big.Int
	MinTxByteFee           *big.Int
}

func (p *NetworkParamsSet) Type() types.PayloadType { return types.PayloadNetworkParamsSet }

func (p *NetworkParamsSet) appendFields(dst []byte) []byte {
	dst = rlp.AppendOptionalBigInt(dst, p.BlockReward)
	if p.BlockRewardPoolAddress != nil {
		dst = rlp.AppendOptionalBytes(dst, p.BlockRewardPoolAddress.Bytes())
	} else {
		dst = rlp.AppendEmptyList(dst)
	}
	dst = rlp.AppendOptionalUint64(dst, p.TargetMiningTimeMs)
	dst = rlp.AppendOptionalUint64(dst, p.AsertHalfLifeBlocks)
	dst = rlp.AppendOptionalBigInt(dst, p.MinDifficulty)
	dst = rlp.AppendOptionalBigInt(dst, p.MinTxBaseFee)
	return rlp.AppendOptionalBigInt(dst, p.MinTxByteFee)
}

// TokenBurn destroys an amount of a token held by sender.
type TokenBurn struct {
	TokenAddress types.Address
	Sender       types.Address
	Amount       *big.Int
}

func (p *TokenBurn) Type() types.PayloadType { return types.PayloadTokenBurn }

func (p *TokenBurn) appendFields(dst []byte) []byte {
	dst = rlp.AppendBytes(dst, p.TokenAddress.Bytes())
	dst = rlp.AppendBytes(dst, p.Sender.Bytes())
	return rlp.AppendBigInt(dst, p.Amount)
}

// TokenCreate registers a new token.
type TokenCreate struct {
	Name             string
	SmallestUnitName string
	NumberOfDecimals uint8
	WebsiteURL       *string
	LogoURL          *string
	MaxSupply        *big.Int
	UserBurnable     bool
}

func (p *TokenCreate) Type() types.PayloadType { return types.PayloadTokenCreate }

func (p *TokenCreate) appendFields(dst []byte) []byte {
	dst = rlp.AppendString(dst, p.Name)
	dst = rlp.AppendString(dst, p.SmallestUnitName)
	dst = rlp.AppendUint64(dst, uint64(p.NumberOfDecimals))
	dst = rlp.AppendOptionalString(dst, p.WebsiteURL)
	dst = rlp.AppendOptionalString(dst, p.LogoURL)
	dst = rlp.AppendOptionalBigInt(dst, p.MaxSupply)
	return rlp.AppendBool(dst, p.UserBurnable)
}

// TokenMint issues new units of a token to recipient.
type TokenMint struct {
	TokenAddress types.Address
	Recipient    types.Address
	Amount       *big.Int
}

func (p *TokenMint) Type() types.PayloadType { return types.PayloadTokenMint }

func (p *TokenMint) appendFields(dst []byte) []byte {
	dst = rlp.AppendBytes(dst, p.TokenAddress.Bytes())
	dst = rlp.AppendBytes(dst, p.Recipient.Bytes())
	return rlp.AppendBigInt(dst, p.Amount)
}

// TokenUpdate changes the mutable metadata of a token. Absent fields are left
// unchanged.
type TokenUpdate struct {
	TokenAddress     types.Address
	Name             *string
	SmallestUnitName *string
	WebsiteURL       *string
	LogoURL          *string
}

func (p *TokenUpdate) Type() types.PayloadType { return types.PayloadTokenUpdate }

func (p *TokenUpdate) appendFields(dst []byte) []byte {
	dst = rlp.AppendBytes(dst, p.TokenAddress.Bytes())
	dst = rlp.AppendOptionalString(dst, p.Name)
	dst = rlp.AppendOptionalString(dst, p.SmallestUnitName)
	dst = rlp.AppendOptionalString(dst, p.WebsiteURL)
	return rlp.AppendOptionalString(dst, p.LogoURL)
}

// Vote takes a stance on the BIP named by the transaction's reference hash.
type Vote struct {
	VoteType types.VoteType
}

func (p *Vote) Type() types.PayloadType { return types.PayloadVote }

func (p *Vote) appendFields(dst []byte) []byte {
	return rlp.AppendUint64(dst, p.VoteType.Code())
}
