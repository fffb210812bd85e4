package crypto_util

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
	"github.com/GoldenEraGlobal/cryptog/pkg/types"
)

// halfN is floor(n/2) of the secp256k1 curve order; a canonical signature has
// s <= halfN.
var halfN = new(big.Int).Rsh(btcec.S256().N, 1)

// Sign produces a deterministic (RFC 6979) low-S signature over a 32-byte
// digest. The result is r(32) || s(32) || v with v in {27, 28}.
func Sign(priv *PrivateKey, digest types.Hash) (types.Signature, error) {
	// Rebuild the key on go-ethereum's own curve value; its pure-Go signer
	// rejects keys whose Curve is not ethcrypto.S256().
	ecdsaKey, err := ethcrypto.ToECDSA(priv.Bytes())
	if err != nil {
		return types.Signature{}, errno.ErrInvalidPrivateKey.Withf("%v", err)
	}
	raw, err := ethcrypto.Sign(digest[:], ecdsaKey)
	if err != nil {
		return types.Signature{}, errno.ErrInvalidSignature.Withf("%v", err)
	}
	// ethcrypto.Sign yields [R || S || recoveryId]; shift v into the
	// 27/28 range the wire format uses.
	var sig types.Signature
	copy(sig[:64], raw[:64])
	sig[64] = raw[64] + 27
	return sig, nil
}

// RecoverAddress recovers the signer address from a digest and a 65-byte
// signature with v in {27, 28}.
func RecoverAddress(digest types.Hash, sig types.Signature) (types.Address, error) {
	if err := checkSignatureValues(sig); err != nil {
		return types.Address{}, err
	}
	raw := make([]byte, types.SignatureLength)
	copy(raw[:64], sig[:64])
	raw[64] = sig[64] - 27
	pub, err := ethcrypto.Ecrecover(digest[:], raw)
	if err != nil {
		return types.Address{}, errno.ErrInvalidSignature.Withf("%v", err)
	}
	return PubkeyToAddress(pub)
}

// ValidateSignature reports whether sig over digest recovers to expected.
func ValidateSignature(digest types.Hash, sig types.Signature, expected types.Address) bool {
	recovered, err := RecoverAddress(digest, sig)
	if err != nil {
		return false
	}
	return recovered == expected
}

// checkSignatureValues enforces the structural contract: v in {27, 28},
// 0 < r < n, 0 < s <= n/2. Raw recovery ids (v in {0, 1}) are out of contract
// and rejected.
func checkSignatureValues(sig types.Signature) error {
	v := sig.V()
	if v != 27 && v != 28 {
		return errno.ErrInvalidSignature.Withf("v = %d", v)
	}
	if !ethcrypto.ValidateSignatureValues(v-27, sig.R(), sig.S(), true) {
		return errno.ErrInvalidSignature.Withf("r or s out of range")
	}
	return nil
}

// IsLowS reports whether the s component is canonical, s <= n/2.
func IsLowS(sig types.Signature) bool {
	return sig.S().Cmp(halfN) <= 0
}
