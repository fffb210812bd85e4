package crypto_util

import (
	"golang.org/x/crypto/sha3"

	"github.com/GoldenEraGlobal/cryptog/pkg/types"
)

// Keccak256 computes the legacy Keccak-256 digest over the concatenation of
// the given slices. This is the only hash the wire format uses.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// Keccak256Hash is Keccak256 returning a fixed-width Hash.
func Keccak256Hash(data ...[]byte) types.Hash {
	var out types.Hash
	copy(out[:], Keccak256(data...))
	return out
}
