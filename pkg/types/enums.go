package types

import "github.com/GoldenEraGlobal/cryptog/pkg/errno"

// Network identifies the chain a transaction is bound to.
type Network uint8

const (
	Mainnet Network = 1
	Testnet Network = 2
)

func (n Network) Code() uint64 { return uint64(n) }

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "MAINNET"
	case Testnet:
		return "TESTNET"
	}
	return "UNKNOWN"
}

// NetworkFromCode maps a wire code back to a Network.
func NetworkFromCode(code uint64) (Network, error) {
	switch code {
	case uint64(Mainnet):
		return Mainnet, nil
	case uint64(Testnet):
		return Testnet, nil
	}
	return 0, errno.ErrUnknownNetwork.Withf("code %d", code)
}

// TxVersion is the transaction serialization version.
type TxVersion uint8

const (
	// TxV1 is the only version currently defined.
	TxV1 TxVersion = 1
)

func (v TxVersion) Code() uint64 { return uint64(v) }

// TxVersionFromCode maps a wire code back to a TxVersion.
func TxVersionFromCode(code uint64) (TxVersion, error) {
	if code == uint64(TxV1) {
		return TxV1, nil
	}
	return 0, errno.ErrUnknownTxVersion.Withf("code %d", code)
}

// TxType identifies the kind of transaction.
type TxType uint8

const (
	TxTransfer  TxType = 1
	TxBipCreate TxType = 2
	TxBipVote   TxType = 3
)

func (t TxType) Code() uint64 { return uint64(t) }

func (t TxType) String() string {
	switch t {
	case TxTransfer:
		return "TRANSFER"
	case TxBipCreate:
		return "BIP_CREATE"
	case TxBipVote:
		return "BIP_VOTE"
	}
	return "UNKNOWN"
}

// TxTypeFromCode maps a wire code back to a TxType.
func TxTypeFromCode(code uint64) (TxType, error) {
	switch code {
	case uint64(TxTransfer):
		return TxTransfer, nil
	case uint64(TxBipCreate):
		return TxBipCreate, nil
	case uint64(TxBipVote):
		return TxBipVote, nil
	}
	return 0, errno.ErrUnknownTxType.Withf("code %d", code)
}

// PayloadType tags a BIP payload variant. Codes are stable across versions.
type PayloadType uint8

const (
	PayloadAddressAliasAdd    PayloadType = 0
	PayloadAddressAliasRemove PayloadType = 1
	PayloadAuthorityAdd       PayloadType = 2
	PayloadAuthorityRemove    PayloadType = 3
	PayloadNetworkParamsSet   PayloadType = 4
	PayloadTokenBurn          PayloadType = 5
	PayloadTokenCreate        PayloadType = 6
	PayloadTokenMint          PayloadType = 7
	PayloadTokenUpdate        PayloadType = 8
	PayloadVote               PayloadType = 9

	// Reserved, no codec support. Decoding either surfaces an unknown
	// payload code error.
	PayloadValidatorAdd    PayloadType = 10
	PayloadValidatorRemove PayloadType = 11
)

func (p PayloadType) Code() uint64 { return uint64(p) }

func (p PayloadType) String() string {
	switch p {
	case PayloadAddressAliasAdd:
		return "ADDRESS_ALIAS_ADD"
	case PayloadAddressAliasRemove:
		return "ADDRESS_ALIAS_REMOVE"
	case PayloadAuthorityAdd:
		return "AUTHORITY_ADD"
	case PayloadAuthorityRemove:
		return "AUTHORITY_REMOVE"
	case PayloadNetworkParamsSet:
		return "NETWORK_PARAMS_SET"
	case PayloadTokenBurn:
		return "TOKEN_BURN"
	case PayloadTokenCreate:
		return "TOKEN_CREATE"
	case PayloadTokenMint:
		return "TOKEN_MINT"
	case PayloadTokenUpdate:
		return "TOKEN_UPDATE"
	case PayloadVote:
		return "VOTE"
	}
	return "UNKNOWN"
}

// VoteType is the stance a VOTE payload takes on a referenced BIP.
type VoteType uint8

const (
	VoteDisapproval VoteType = 0
	VoteApproval    VoteType = 1
)

func (v VoteType) Code() uint64 { return uint64(v) }

func (v VoteType) String() string {
	switch v {
	case VoteDisapproval:
		return "DISAPPROVAL"
	case VoteApproval:
		return "APPROVAL"
	}
	return "UNKNOWN"
}

// VoteTypeFromCode maps a wire code back to a VoteType.
func VoteTypeFromCode(code uint64) (VoteType, error) {
	switch code {
	case uint64(VoteDisapproval):
		return VoteDisapproval, nil
	case uint64(VoteApproval):
		return VoteApproval, nil
	}
	return 0, errno.ErrUnknownVoteType.Withf("code %d", code)
}
