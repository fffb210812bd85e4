package crypto_util

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
	"github.com/GoldenEraGlobal/cryptog/pkg/types"
)

// PrivateKeyLength is the byte length of a raw secp256k1 private key.
const PrivateKeyLength = 32

// PrivateKey wraps a secp256k1 private key. Value is immutable after
// construction; Zeroize wipes the scalar when the caller is done signing.
type PrivateKey struct {
	k *btcec.PrivateKey
}

// PrivateKeyFromBytes builds a key from 32 raw bytes. The scalar must be
// non-zero and below the curve order.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeyLength {
		return nil, errno.ErrInvalidPrivateKey.Withf("got %d bytes, want %d", len(b), PrivateKeyLength)
	}
	d := new(big.Int).SetBytes(b)
	if d.Sign() == 0 || d.Cmp(btcec.S256().N) >= 0 {
		return nil, errno.ErrInvalidPrivateKey
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	return &PrivateKey{k: priv}, nil
}

// PrivateKeyFromHex parses a 0x-prefixed 64-digit hex private key.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	b, err := types.DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return PrivateKeyFromBytes(b)
}

// Bytes returns the 32-byte big-endian scalar.
func (p *PrivateKey) Bytes() []byte {
	return p.k.Serialize()
}

// Hex returns the lowercase 0x-prefixed scalar.
func (p *PrivateKey) Hex() string {
	return types.EncodeHex(p.Bytes())
}

// PublicKeyUncompressed returns the 65-byte uncompressed public key,
// 0x04 tag included.
func (p *PrivateKey) PublicKeyUncompressed() []byte {
	return p.k.PubKey().SerializeUncompressed()
}

// Address derives the account address: Keccak-256 over the 64-byte public key
// (tag stripped), low-order 20 bytes.
func (p *PrivateKey) Address() types.Address {
	addr, _ := PubkeyToAddress(p.PublicKeyUncompressed())
	return addr
}

// Zeroize wipes the key scalar. The key must not be used afterwards.
func (p *PrivateKey) Zeroize() {
	p.k.Zero()
}

// PubkeyToAddress converts an uncompressed public key (65 bytes with the 0x04
// tag, or 64 bytes without) to its 20-byte address.
func PubkeyToAddress(pub []byte) (types.Address, error) {
	if len(pub) == 65 && pub[0] == 0x04 {
		pub = pub[1:]
	}
	if len(pub) != 64 {
		return types.Address{}, errno.ErrValueLength.Withf("public key: got %d bytes", len(pub))
	}
	digest := Keccak256(pub)
	return types.AddressFromBytes(digest[12:])
}
