package rlp

import (
	"math/big"

	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
)

// Optional fields are wrapped in a one-element list when present and encoded
// as the empty list when absent. Absence and zero are distinct on the wire:
// an absent scalar is 0xc0 while a present zero is the list [0x80].

// AppendOptionalUint64 appends an optional-wrapped 64-bit scalar.
func AppendOptionalUint64(dst []byte, v *uint64) []byte {
	if v == nil {
		return AppendEmptyList(dst)
	}
	return AppendList(dst, AppendUint64(nil, *v))
}

// AppendOptionalBigInt appends an optional-wrapped big integer scalar.
func AppendOptionalBigInt(dst []byte, v *big.Int) []byte {
	if v == nil {
		return AppendEmptyList(dst)
	}
	return AppendList(dst, AppendBigInt(nil, v))
}

// AppendOptionalBytes appends an optional-wrapped byte string. A nil slice is
// absent; a non-nil empty slice is a present empty string.
func AppendOptionalBytes(dst, b []byte) []byte {
	if b == nil {
		return AppendEmptyList(dst)
	}
	return AppendList(dst, AppendBytes(nil, b))
}

// AppendOptionalString appends an optional-wrapped UTF-8 string.
func AppendOptionalString(dst []byte, s *string) []byte {
	if s == nil {
		return AppendEmptyList(dst)
	}
	return AppendList(dst, AppendString(nil, *s))
}

// AppendOptionalRaw appends pre-encoded RLP under the optional wrapping.
func AppendOptionalRaw(dst, raw []byte) []byte {
	if raw == nil {
		return AppendEmptyList(dst)
	}
	return AppendList(dst, raw)
}

// optionalItem unwraps the one-element list convention: the empty list yields
// a nil inner Reader, a one-element list yields a Reader positioned at the
// inner item.
func (r *Reader) optionalItem() (*Reader, error) {
	inner, err := r.List()
	if err != nil {
		return nil, err
	}
	if !inner.More() {
		return nil, nil
	}
	return inner, nil
}

func finishOptional(inner *Reader) error {
	if inner.More() {
		return errno.ErrOptionalArity.Withf("%d trailing bytes", len(inner.Rest()))
	}
	return nil
}

// OptionalUint64 decodes an optional-wrapped 64-bit scalar; nil means absent.
func (r *Reader) OptionalUint64() (*uint64, error) {
	inner, err := r.optionalItem()
	if err != nil || inner == nil {
		return nil, err
	}
	v, err := inner.Uint64()
	if err != nil {
		return nil, err
	}
	if err := finishOptional(inner); err != nil {
		return nil, err
	}
	return &v, nil
}

// OptionalBigInt decodes an optional-wrapped big integer scalar.
func (r *Reader) OptionalBigInt() (*big.Int, error) {
	inner, err := r.optionalItem()
	if err != nil || inner == nil {
		return nil, err
	}
	v, err := inner.BigInt()
	if err != nil {
		return nil, err
	}
	if err := finishOptional(inner); err != nil {
		return nil, err
	}
	return v, nil
}

// OptionalBytes decodes an optional-wrapped byte string. Absent yields nil;
// a present empty string yields a non-nil empty slice.
func (r *Reader) OptionalBytes() ([]byte, error) {
	inner, err := r.optionalItem()
	if err != nil || inner == nil {
		return nil, err
	}
	b, err := inner.Bytes()
	if err != nil {
		return nil, err
	}
	if err := finishOptional(inner); err != nil {
		return nil, err
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// OptionalString decodes an optional-wrapped UTF-8 string.
func (r *Reader) OptionalString() (*string, error) {
	inner, err := r.optionalItem()
	if err != nil || inner == nil {
		return nil, err
	}
	s, err := inner.String()
	if err != nil {
		return nil, err
	}
	if err := finishOptional(inner); err != nil {
		return nil, err
	}
	return &s, nil
}

// OptionalRaw decodes an optional-wrapped item and returns its raw encoding.
func (r *Reader) OptionalRaw() ([]byte, error) {
	inner, err := r.optionalItem()
	if err != nil || inner == nil {
		return nil, err
	}
	raw, err := inner.Raw()
	if err != nil {
		return nil, err
	}
	if err := finishOptional(inner); err != nil {
		return nil, err
	}
	return raw, nil
}
