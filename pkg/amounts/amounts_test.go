package amounts

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
)

func TestTokens(t *testing.T) {
	assert.Zero(t, Tokens(0).Sign())
	assert.Zero(t, Tokens(1).Cmp(big.NewInt(100_000_000)))
	assert.Zero(t, Tokens(100).Cmp(big.NewInt(10_000_000_000)))
}

func TestTokensDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1", 100_000_000},
		{"1.5", 150_000_000},
		{"0.001", 100_000},
		{"0.0001", 10_000},
		{"0.00001", 1_000},
		{"0.00000001", 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := TokensDecimal(tt.in)
			require.NoError(t, err)
			assert.Zero(t, got.Cmp(big.NewInt(tt.want)), "got %s", got)
		})
	}
}

func TestTokensDecimalRejectsExcessPrecision(t *testing.T) {
	_, err := TokensDecimal("0.000000001")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrAmountPrecision))
}

func TestTokensDecimalRejectsNegative(t *testing.T) {
	_, err := TokensDecimal("-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrAmountNegative))
}

func TestTokensDecimalRejectsGarbage(t *testing.T) {
	_, err := TokensDecimal("one token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrInvalidField))
}

func TestParseCustomDecimals(t *testing.T) {
	got, err := Parse("1.5", 9)
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(big.NewInt(1_500_000_000)))

	_, err = Parse("1", 19)
	assert.True(t, errors.Is(err, errno.ErrAmountPrecision))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.5", FormatNative(big.NewInt(150_000_000)))
	assert.Equal(t, "0.001", FormatNative(big.NewInt(100_000)))
	assert.Equal(t, "0", FormatNative(new(big.Int)))

	// Round trip at native precision.
	wei, err := TokensDecimal("123.456789")
	require.NoError(t, err)
	assert.Equal(t, "123.456789", FormatNative(wei))
}
