// Package types holds the fixed-width byte primitives of the GoldenEra wire
// format: addresses, hashes and signatures, plus their lowercase 0x hex forms.
package types

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
)

const (
	// AddressLength is the byte length of an account or token address.
	AddressLength = 20
	// HashLength is the byte length of a Keccak-256 digest.
	HashLength = 32
	// SignatureLength is the byte length of an ECDSA signature laid out as
	// r(32) || s(32) || v(1).
	SignatureLength = 65
)

// Address is a 20-byte account or token identifier.
type Address [AddressLength]byte

// NativeToken is the all-zero address sentinel denoting the chain's native
// asset.
var NativeToken = Address{}

// AddressFromBytes converts b to an Address. b must be exactly 20 bytes.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, errno.ErrValueLength.Withf("address: got %d bytes, want %d", len(b), AddressLength)
	}
	copy(a[:], b)
	return a, nil
}

// AddressFromHex parses a lowercase or mixed-case 0x-prefixed hex string.
func AddressFromHex(s string) (Address, error) {
	var a Address
	b, err := decodeHex(s, AddressLength)
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

func (a Address) Bytes() []byte { return a[:] }

// Hex returns the lowercase 0x-prefixed form.
func (a Address) Hex() string { return encodeHex(a[:]) }

func (a Address) String() string { return a.Hex() }

// IsNative reports whether a is the NativeToken sentinel.
func (a Address) IsNative() bool { return a == NativeToken }

func (a Address) MarshalText() ([]byte, error) { return []byte(a.Hex()), nil }

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := AddressFromHex(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Hash is a 32-byte Keccak-256 digest.
type Hash [HashLength]byte

// HashFromBytes converts b to a Hash. b must be exactly 32 bytes.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashLength {
		return h, errno.ErrValueLength.Withf("hash: got %d bytes, want %d", len(b), HashLength)
	}
	copy(h[:], b)
	return h, nil
}

// HashFromHex parses a 0x-prefixed 64-digit hex string.
func HashFromHex(s string) (Hash, error) {
	var h Hash
	b, err := decodeHex(s, HashLength)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

func (h Hash) Bytes() []byte { return h[:] }

func (h Hash) Hex() string { return encodeHex(h[:]) }

func (h Hash) String() string { return h.Hex() }

func (h Hash) IsZero() bool { return h == Hash{} }

func (h Hash) MarshalText() ([]byte, error) { return []byte(h.Hex()), nil }

func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := HashFromHex(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Signature is a 65-byte ECDSA signature, r(32) || s(32) || v(1) with
// v in {27, 28}.
type Signature [SignatureLength]byte

// SignatureFromBytes converts b to a Signature. b must be exactly 65 bytes.
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureLength {
		return sig, errno.ErrValueLength.Withf("signature: got %d bytes, want %d", len(b), SignatureLength)
	}
	copy(sig[:], b)
	return sig, nil
}

// SignatureFromHex parses a 0x-prefixed 130-digit hex string.
func SignatureFromHex(s string) (Signature, error) {
	var sig Signature
	b, err := decodeHex(s, SignatureLength)
	if err != nil {
		return sig, err
	}
	copy(sig[:], b)
	return sig, nil
}

// NewSignature assembles a signature from its components. r and s are written
// big-endian, left-padded to 32 bytes.
func NewSignature(r, s *big.Int, v byte) Signature {
	var sig Signature
	r.FillBytes(sig[:32])
	s.FillBytes(sig[32:64])
	sig[64] = v
	return sig
}

// R returns the r component as a big integer.
func (sig Signature) R() *big.Int { return new(big.Int).SetBytes(sig[:32]) }

// S returns the s component as a big integer.
func (sig Signature) S() *big.Int { return new(big.Int).SetBytes(sig[32:64]) }

// V returns the recovery byte, 27 or 28 for a well-formed signature.
func (sig Signature) V() byte { return sig[64] }

func (sig Signature) Bytes() []byte { return sig[:] }

func (sig Signature) Hex() string { return encodeHex(sig[:]) }

func (sig Signature) String() string { return sig.Hex() }

func (sig Signature) IsZero() bool { return sig == Signature{} }

func (sig Signature) MarshalText() ([]byte, error) { return []byte(sig.Hex()), nil }

func (sig *Signature) UnmarshalText(text []byte) error {
	parsed, err := SignatureFromHex(string(text))
	if err != nil {
		return err
	}
	*sig = parsed
	return nil
}

func encodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// decodeHex parses a 0x-prefixed (prefix optional) hex string of exactly
// wantLen bytes.
func decodeHex(s string, wantLen int) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		return nil, errno.ErrHexOddLength.Withf("%d hex digits", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errno.ErrHexDigit.Withf("%q", s)
	}
	if len(b) != wantLen {
		return nil, errno.ErrHexLength.Withf("got %d bytes, want %d", len(b), wantLen)
	}
	return b, nil
}

// DecodeHex parses an arbitrary-length 0x-prefixed hex string. Used for
// message bytes and raw transaction input.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		return nil, errno.ErrHexOddLength.Withf("%d hex digits", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errno.ErrHexDigit.Withf("%q", s)
	}
	return b, nil
}

// EncodeHex renders b as a lowercase 0x-prefixed hex string.
func EncodeHex(b []byte) string { return encodeHex(b) }
