// Package rlp implements the recursive length prefix encoding used by the
// GoldenEra wire format, including the optional-as-list wrapping convention:
// an optional field is a one-element list when present and the empty list
// (0xc0) when absent.
package rlp

import "math/big"

const (
	// EmptyString is the encoding of a zero-length byte string.
	EmptyString = 0x80
	// EmptyList is the encoding of a zero-element list, also the encoding
	// of every absent optional field.
	EmptyList = 0xc0
)

// AppendBytes appends the RLP encoding of a byte string to dst.
func AppendBytes(dst, b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return append(dst, b[0])
	}
	dst = appendLength(dst, len(b), 0x80)
	return append(dst, b...)
}

// AppendString appends the RLP encoding of the UTF-8 bytes of s.
func AppendString(dst []byte, s string) []byte {
	return AppendBytes(dst, []byte(s))
}

// AppendUint64 appends a scalar: minimal big-endian bytes, zero as the empty
// string.
func AppendUint64(dst []byte, v uint64) []byte {
	switch {
	case v == 0:
		return append(dst, EmptyString)
	case v < 0x80:
		return append(dst, byte(v))
	default:
		return AppendBytes(dst, uintBytes(v))
	}
}

// AppendBigInt appends an unsigned big integer scalar. nil encodes like zero.
func AppendBigInt(dst []byte, v *big.Int) []byte {
	if v == nil || v.Sign() == 0 {
		return append(dst, EmptyString)
	}
	return AppendBytes(dst, v.Bytes())
}

// AppendBool appends the scalar 1 or 0.
func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 0x01)
	}
	return append(dst, EmptyString)
}

// AppendList wraps already-encoded element content into a list.
func AppendList(dst, content []byte) []byte {
	dst = appendLength(dst, len(content), 0xc0)
	return append(dst, content...)
}

// AppendEmptyList appends the empty list, 0xc0.
func AppendEmptyList(dst []byte) []byte {
	return append(dst, EmptyList)
}

// AppendRaw appends pre-encoded RLP verbatim.
func AppendRaw(dst, raw []byte) []byte {
	return append(dst, raw...)
}

func appendLength(dst []byte, length int, offset byte) []byte {
	if length < 56 {
		return append(dst, offset+byte(length))
	}
	lenBytes := uintBytes(uint64(length))
	dst = append(dst, offset+55+byte(len(lenBytes)))
	return append(dst, lenBytes...)
}

// uintBytes converts v to minimal big-endian bytes, no leading zeros.
func uintBytes(v uint64) []byte {
	if v == 0 {
		return nil
	}
	n := 0
	for x := v; x > 0; x >>= 8 {
		n++
	}
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}
