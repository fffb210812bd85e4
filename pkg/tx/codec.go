package tx

import (
	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
	"github.com/GoldenEraGlobal/cryptog/pkg/rlp"
	"github.com/GoldenEraGlobal/cryptog/pkg/types"
)

// encodeTx renders the V1 outer list:
//
//	[ version, timestamp, type, network,
//	  opt(nonce), opt(recipient), opt(tokenAddress),
//	  opt(amount), fee,
//	  opt(message), opt(payloadRaw), opt(referenceHash),
//	  signature? ]
//
// fee is a mandatory unwrapped scalar and the signature, when included, is a
// bare 65-byte string, not list-wrapped.
func encodeTx(t *Tx, includeSignature bool) ([]byte, error) {
	if t.version != types.TxV1 {
		return nil, errno.ErrUnknownTxVersion.Withf("code %d", t.version.Code())
	}

	var content []byte
	content = rlp.AppendUint64(content, t.version.Code())
	content = rlp.AppendUint64(content, t.timestamp)
	content = rlp.AppendUint64(content, t.txType.Code())
	content = rlp.AppendUint64(content, t.network.Code())

	content = rlp.AppendOptionalUint64(content, t.nonce)
	content = appendOptionalAddress(content, t.recipient)
	content = appendOptionalAddress(content, t.tokenAddress)

	content = rlp.AppendOptionalBigInt(content, t.amount)
	content = rlp.AppendBigInt(content, t.fee)

	content = rlp.AppendOptionalBytes(content, t.message)
	if t.payload != nil {
		content = rlp.AppendOptionalRaw(content, EncodePayload(t.payload))
	} else {
		content = rlp.AppendEmptyList(content)
	}
	if t.referenceHash != nil {
		content = rlp.AppendOptionalBytes(content, t.referenceHash.Bytes())
	} else {
		content = rlp.AppendEmptyList(content)
	}

	if includeSignature {
		if t.signature == nil {
			return nil, errno.ErrMissingField.Withf("signature")
		}
		content = rlp.AppendBytes(content, t.signature.Bytes())
	}

	return rlp.AppendList(nil, content), nil
}

func appendOptionalAddress(dst []byte, a *types.Address) []byte {
	if a == nil {
		return rlp.AppendEmptyList(dst)
	}
	return rlp.AppendOptionalBytes(dst, a.Bytes())
}

// Decode parses transaction bytes. Version dispatch happens first; an unknown
// version yields a distinct error and no partial record. For a signed
// encoding the sender is recovered and the canonical hash and size are
// recomputed.
func Decode(data []byte) (*Tx, error) {
	outer := rlp.NewReader(data)
	list, err := outer.List()
	if err != nil {
		return nil, err
	}
	if err := outer.Finish(); err != nil {
		return nil, err
	}

	versionCode, err := list.Uint64()
	if err != nil {
		return nil, err
	}
	version, err := types.TxVersionFromCode(versionCode)
	if err != nil {
		return nil, err
	}

	return decodeV1(version, list)
}

func decodeV1(version types.TxVersion, list *rlp.Reader) (*Tx, error) {
	t := &Tx{version: version}
	var err error

	if t.timestamp, err = list.Uint64(); err != nil {
		return nil, err
	}
	typeCode, err := list.Uint64()
	if err != nil {
		return nil, err
	}
	if t.txType, err = types.TxTypeFromCode(typeCode); err != nil {
		return nil, err
	}
	networkCode, err := list.Uint64()
	if err != nil {
		return nil, err
	}
	if t.network, err = types.NetworkFromCode(networkCode); err != nil {
		return nil, err
	}

	if t.nonce, err = list.OptionalUint64(); err != nil {
		return nil, err
	}
	if t.recipient, err = decodeOptionalAddress(list); err != nil {
		return nil, err
	}
	if t.tokenAddress, err = decodeOptionalAddress(list); err != nil {
		return nil, err
	}

	if t.amount, err = list.OptionalBigInt(); err != nil {
		return nil, err
	}
	if t.fee, err = list.BigInt(); err != nil {
		return nil, err
	}

	if t.message, err = list.OptionalBytes(); err != nil {
		return nil, err
	}
	payloadRaw, err := list.OptionalRaw()
	if err != nil {
		return nil, err
	}
	if payloadRaw != nil {
		if t.payload, err = DecodePayload(payloadRaw); err != nil {
			return nil, err
		}
	}
	refBytes, err := list.OptionalBytes()
	if err != nil {
		return nil, err
	}
	if refBytes != nil {
		ref, err := types.HashFromBytes(refBytes)
		if err != nil {
			return nil, err
		}
		t.referenceHash = &ref
	}

	if list.More() {
		sigBytes, err := list.Bytes()
		if err != nil {
			return nil, err
		}
		sig, err := types.SignatureFromBytes(sigBytes)
		if err != nil {
			return nil, err
		}
		t.signature = &sig
	}
	if err := list.Finish(); err != nil {
		return nil, err
	}

	if t.signature != nil {
		if err := t.seal(); err != nil {
			return nil, err
		}
	}
	return t, nil
}
