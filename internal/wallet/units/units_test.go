package units_test

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mobile-wallet/internal/wallet/units"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"5", "5"},
		{" 1.25 ", "1.25"},
		{"0.000000000000000001", "0.000000000000000001"},
		{"-3", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := units.ParseAmount(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseAmountInvalid(t *testing.T) {
	for _, raw := range []string{"abc", "1,5", "1.2.3", "five", "1e3"} {
		_, err := units.ParseAmount(raw)
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, units.ErrInvalidAmount), raw)
	}

	_, err := units.ParseAmount("   ")
	assert.Equal(t, units.ErrEmptyAmount, err)
}

func TestToBaseUnits(t *testing.T) {
	amount := decimal.RequireFromString("1.5")

	wei, err := units.ToBaseUnits(amount, 18)
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", wei.String())

	_, err = units.ToBaseUnits(decimal.RequireFromString("0.001"), 2)
	assert.True(t, errors.Is(err, units.ErrTooManyDecimals))
}

func TestFromBaseUnits(t *testing.T) {
	wei, ok := new(big.Int).SetString("10000000000000000000", 10)
	require.True(t, ok)

	assert.Equal(t, "10", units.FromBaseUnits(wei, 18).String())
	assert.Equal(t, "0", units.FromBaseUnits(nil, 18).String())
	assert.Equal(t, "10.0000", units.FormatFixed(units.FromBaseUnits(wei, 18), 4))
}
