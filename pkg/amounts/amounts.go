// Package amounts converts between human decimal token amounts and wei, the
// smallest on-chain unit. The wire format itself is decimals-agnostic; these
// helpers never affect encoding.
package amounts

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
)

const (
	// NativeDecimals is the decimal precision of the native token.
	// WeiPerToken is the single source of truth: 10^8 wei per token.
	NativeDecimals int32 = 8
	// MaxDecimals bounds the precision of user-created tokens.
	MaxDecimals int32 = 18
)

// WeiPerToken is 10^NativeDecimals.
var WeiPerToken = new(big.Int).SetUint64(100_000_000)

// Tokens converts a whole number of native tokens to wei.
func Tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), WeiPerToken)
}

// TokensDecimal converts a decimal string of native tokens ("1.5", "0.001")
// to wei.
func TokensDecimal(s string) (*big.Int, error) {
	return Parse(s, NativeDecimals)
}

// Parse converts a decimal string to wei for a token with the given number of
// decimals. Fractional digits beyond the token's precision are rejected, not
// rounded.
func Parse(s string, decimals int32) (*big.Int, error) {
	if decimals < 0 || decimals > MaxDecimals {
		return nil, errno.ErrAmountPrecision.Withf("%d decimals, max %d", decimals, MaxDecimals)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errno.ErrInvalidField.Withf("amount %q: %v", s, err)
	}
	if d.IsNegative() {
		return nil, errno.ErrAmountNegative.Withf("%s", s)
	}
	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, errno.ErrAmountPrecision.Withf("%s with %d decimals", s, decimals)
	}
	return shifted.BigInt(), nil
}

// Format renders wei as a decimal string for a token with the given number of
// decimals, trailing zeros trimmed.
func Format(wei *big.Int, decimals int32) string {
	return decimal.NewFromBigInt(wei, -decimals).String()
}

// FormatNative renders wei as a native-token decimal string.
func FormatNative(wei *big.Int) string {
	return Format(wei, NativeDecimals)
}
