package tx

import (
	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
	"github.com/GoldenEraGlobal/cryptog/pkg/rlp"
	"github.com/GoldenEraGlobal/cryptog/pkg/types"
)

// EncodePayload renders a payload as a single RLP list: the type tag followed
// by the variant's fields in wire order.
func EncodePayload(p Payload) []byte {
	content := rlp.AppendUint64(nil, p.Type().Code())
	content = p.appendFields(content)
	return rlp.AppendList(nil, content)
}

// DecodePayload parses a payload list. Unknown tags are rejected, including
// the reserved VALIDATOR_ADD and VALIDATOR_REMOVE codes, which have no wire
// arms.
func DecodePayload(raw []byte) (Payload, error) {
	outer := rlp.NewReader(raw)
	list, err := outer.List()
	if err != nil {
		return nil, err
	}
	if err := outer.Finish(); err != nil {
		return nil, err
	}

	code, err := list.Uint64()
	if err != nil {
		return nil, err
	}

	var p Payload
	switch types.PayloadType(code) {
	case types.PayloadAddressAliasAdd:
		p, err = decodeAddressAliasAdd(list)
	case types.PayloadAddressAliasRemove:
		p, err = decodeAddressAliasRemove(list)
	case types.PayloadAuthorityAdd:
		p, err = decodeAuthorityAdd(list)
	case types.PayloadAuthorityRemove:
		p, err = decodeAuthorityRemove(list)
	case types.PayloadNetworkParamsSet:
		p, err = decodeNetworkParamsSet(list)
	case types.PayloadTokenBurn:
		p, err = decodeTokenBurn(list)
	case types.PayloadTokenCreate:
		p, err = decodeTokenCreate(list)
	case types.PayloadTokenMint:
		p, err = decodeTokenMint(list)
	case types.PayloadTokenUpdate:
		p, err = decodeTokenUpdate(list)
	case types.PayloadVote:
		p, err = decodeVote(list)
	default:
		return nil, errno.ErrUnknownPayloadType.Withf("code %d", code)
	}
	if err != nil {
		return nil, err
	}
	if err := list.Finish(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeAddress(list *rlp.Reader) (types.Address, error) {
	b, err := list.Bytes()
	if err != nil {
		return types.Address{}, err
	}
	return types.AddressFromBytes(b)
}

func decodeOptionalAddress(list *rlp.Reader) (*types.Address, error) {
	b, err := list.OptionalBytes()
	if err != nil || b == nil {
		return nil, err
	}
	addr, err := types.AddressFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func decodeAddressAliasAdd(list *rlp.Reader) (Payload, error) {
	alias, err := list.String()
	if err != nil {
		return nil, err
	}
	addr, err := decodeAddress(list)
	if err != nil {
		return nil, err
	}
	return &AddressAliasAdd{Alias: alias, Address: addr}, nil
}

func decodeAddressAliasRemove(list *rlp.Reader) (Payload, error) {
	alias, err := list.String()
	if err != nil {
		return nil, err
	}
	return &AddressAliasRemove{Alias: alias}, nil
}

func decodeAuthorityAdd(list *rlp.Reader) (Payload, error) {
	addr, err := decodeAddress(list)
	if err != nil {
		return nil, err
	}
	return &AuthorityAdd{Address: addr}, nil
}

func decodeAuthorityRemove(list *rlp.Reader) (Payload, error) {
	addr, err := decodeAddress(list)
	if err != nil {
		return nil, err
	}
	return &AuthorityRemove{Address: addr}, nil
}

func decodeNetworkParamsSet(list *rlp.Reader) (Payload, error) {
	p := &NetworkParamsSet{}
	var err error
	if p.BlockReward, err = list.OptionalBigInt(); err != nil {
		return nil, err
	}
	if p.BlockRewardPoolAddress, err = decodeOptionalAddress(list); err != nil {
		return nil, err
	}
	if p.TargetMiningTimeMs, err = list.OptionalUint64(); err != nil {
		return nil, err
	}
	if p.AsertHalfLifeBlocks, err = list.OptionalUint64(); err != nil {
		return nil, err
	}
	if p.MinDifficulty, err = list.OptionalBigInt(); err != nil {
		return nil, err
	}
	if p.MinTxBaseFee, err = list.OptionalBigInt(); err != nil {
		return nil, err
	}
	if p.MinTxByteFee, err = list.OptionalBigInt(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeTokenBurn(list *rlp.Reader) (Payload, error) {
	p := &TokenBurn{}
	var err error
	if p.TokenAddress, err = decodeAddress(list); err != nil {
		return nil, err
	}
	if p.Sender, err = decodeAddress(list); err != nil {
		return nil, err
	}
	if p.Amount, err = list.BigInt(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeTokenCreate(list *rlp.Reader) (Payload, error) {
	p := &TokenCreate{}
	var err error
	if p.Name, err = list.String(); err != nil {
		return nil, err
	}
	if p.SmallestUnitName, err = list.String(); err != nil {
		return nil, err
	}
	decimals, err := list.Uint64()
	if err != nil {
		return nil, err
	}
	if decimals > 0xff {
		return nil, errno.ErrRLPScalarOverflow.Withf("numberOfDecimals %d", decimals)
	}
	p.NumberOfDecimals = uint8(decimals)
	if p.WebsiteURL, err = list.OptionalString(); err != nil {
		return nil, err
	}
	if p.LogoURL, err = list.OptionalString(); err != nil {
		return nil, err
	}
	if p.MaxSupply, err = list.OptionalBigInt(); err != nil {
		return nil, err
	}
	if p.UserBurnable, err = list.Bool(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeTokenMint(list *rlp.Reader) (Payload, error) {
	p := &TokenMint{}
	var err error
	if p.TokenAddress, err = decodeAddress(list); err != nil {
		return nil, err
	}
	if p.Recipient, err = decodeAddress(list); err != nil {
		return nil, err
	}
	if p.Amount, err = list.BigInt(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeTokenUpdate(list *rlp.Reader) (Payload, error) {
	p := &TokenUpdate{}
	var err error
	if p.TokenAddress, err = decodeAddress(list); err != nil {
		return nil, err
	}
	if p.Name, err = list.OptionalString(); err != nil {
		return nil, err
	}
	if p.SmallestUnitName, err = list.OptionalString(); err != nil {
		return nil, err
	}
	if p.WebsiteURL, err = list.OptionalString(); err != nil {
		return nil, err
	}
	if p.LogoURL, err = list.OptionalString(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeVote(list *rlp.Reader) (Payload, error) {
	code, err := list.Uint64()
	if err != nil {
		return nil, err
	}
	voteType, err := types.VoteTypeFromCode(code)
	if err != nil {
		return nil, err
	}
	return &Vote{VoteType: voteType}, nil
}
