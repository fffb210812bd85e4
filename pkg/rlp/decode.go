package rlp

import (
	"math/big"

	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
)

// Kind classifies the next item in a Reader.
type Kind int

const (
	KindString Kind = iota
	KindList
)

// Reader is a cursor over an RLP-encoded region. List decodes hand back a
// sub-Reader scoped to the list content, so framing errors cannot cross item
// boundaries.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for decoding.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// More reports whether any undecoded bytes remain.
func (r *Reader) More() bool {
	return r.pos < len(r.data)
}

// Rest returns the undecoded remainder without advancing.
func (r *Reader) Rest() []byte {
	return r.data[r.pos:]
}

// Finish reports a framing error if undecoded bytes remain.
func (r *Reader) Finish() error {
	if r.More() {
		return errno.ErrRLPTrailing.Withf("%d bytes", len(r.data)-r.pos)
	}
	return nil
}

// peekHeader decodes the prefix of the next item: its kind, the offset of its
// content and the content length. It validates canonical length encoding.
func (r *Reader) peekHeader() (kind Kind, contentPos, contentLen int, err error) {
	if !r.More() {
		return 0, 0, 0, errno.ErrRLPTruncated.Withf("expected an item at offset %d", r.pos)
	}
	prefix := r.data[r.pos]
	switch {
	case prefix < 0x80:
		return KindString, r.pos, 1, nil
	case prefix <= 0xb7:
		return KindString, r.pos + 1, int(prefix - 0x80), nil
	case prefix <= 0xbf:
		contentLen, err = r.longLength(int(prefix - 0xb7))
		return KindString, r.pos + 1 + int(prefix-0xb7), contentLen, err
	case prefix <= 0xf7:
		return KindList, r.pos + 1, int(prefix - 0xc0), nil
	default:
		contentLen, err = r.longLength(int(prefix - 0xf7))
		return KindList, r.pos + 1 + int(prefix-0xf7), contentLen, err
	}
}

// longLength reads an n-byte big-endian length field and enforces the
// canonical form: no leading zero, value >= 56, value within the input.
func (r *Reader) longLength(n int) (int, error) {
	if r.pos+1+n > len(r.data) {
		return 0, errno.ErrRLPTruncated.Withf("length field needs %d bytes", n)
	}
	lenBytes := r.data[r.pos+1 : r.pos+1+n]
	if lenBytes[0] == 0 {
		return 0, errno.ErrRLPOversizePrefix.Withf("leading zero in length field")
	}
	var length uint64
	for _, b := range lenBytes {
		length = length<<8 | uint64(b)
	}
	if length < 56 {
		return 0, errno.ErrRLPOversizePrefix.Withf("long form used for length %d", length)
	}
	if length > uint64(len(r.data)) {
		return 0, errno.ErrRLPTruncated.Withf("declared length %d exceeds input", length)
	}
	return int(length), nil
}

// Bytes decodes the next item as a byte string.
func (r *Reader) Bytes() ([]byte, error) {
	kind, contentPos, contentLen, err := r.peekHeader()
	if err != nil {
		return nil, err
	}
	if kind != KindString {
		return nil, errno.ErrRLPExpectedString.Withf("offset %d", r.pos)
	}
	end := contentPos + contentLen
	if end > len(r.data) {
		return nil, errno.ErrRLPTruncated.Withf("string needs %d bytes, %d remain", contentLen, len(r.data)-contentPos)
	}
	content := r.data[contentPos:end]
	if contentPos > r.pos && len(content) == 1 && content[0] < 0x80 {
		return nil, errno.ErrRLPOversizePrefix.Withf("single byte 0x%02x must encode as itself", content[0])
	}
	r.pos = end
	return content, nil
}

// String decodes the next item as UTF-8 text.
func (r *Reader) String() (string, error) {
	b, err := r.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Uint64 decodes the next item as a scalar fitting 64 bits.
func (r *Reader) Uint64() (uint64, error) {
	b, err := r.scalarBytes()
	if err != nil {
		return 0, err
	}
	if len(b) > 8 {
		return 0, errno.ErrRLPScalarOverflow.Withf("%d scalar bytes for uint64", len(b))
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

// BigInt decodes the next item as an unbounded unsigned scalar.
func (r *Reader) BigInt() (*big.Int, error) {
	b, err := r.scalarBytes()
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

// Bool decodes the next item as the scalar 1 or 0.
func (r *Reader) Bool() (bool, error) {
	v, err := r.Uint64()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errno.ErrRLPScalarOverflow.Withf("boolean scalar %d", v)
}

func (r *Reader) scalarBytes() ([]byte, error) {
	b, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[0] == 0 {
		return nil, errno.ErrRLPNonMinimal.Withf("%d scalar bytes", len(b))
	}
	return b, nil
}

// List decodes the next item as a list and returns a Reader scoped to its
// content.
func (r *Reader) List() (*Reader, error) {
	kind, contentPos, contentLen, err := r.peekHeader()
	if err != nil {
		return nil, err
	}
	if kind != KindList {
		return nil, errno.ErrRLPExpectedList.Withf("offset %d", r.pos)
	}
	end := contentPos + contentLen
	if end > len(r.data) {
		return nil, errno.ErrRLPTruncated.Withf("list needs %d bytes, %d remain", contentLen, len(r.data)-contentPos)
	}
	content := r.data[contentPos:end]
	r.pos = end
	return NewReader(content), nil
}

// Raw consumes the next item and returns its full encoding, prefix included.
func (r *Reader) Raw() ([]byte, error) {
	_, contentPos, contentLen, err := r.peekHeader()
	if err != nil {
		return nil, err
	}
	end := contentPos + contentLen
	if end > len(r.data) {
		return nil, errno.ErrRLPTruncated.Withf("item needs %d bytes, %d remain", contentLen, len(r.data)-contentPos)
	}
	raw := r.data[r.pos:end]
	r.pos = end
	return raw, nil
}
