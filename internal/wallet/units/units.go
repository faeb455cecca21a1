// Package units converts between human readable token amounts and on-chain base units.
package units

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAmount     = errors.New("empty amount")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrTooManyDecimals = errors.New("amount has more decimal places than the token supports")
)

// ParseAmount parses a decimal amount as typed by a user, e.g. "1.5".
// Surrounding whitespace is ignored; exponent notation and anything else that
// is not a plain decimal number is rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	if strings.ContainsAny(trimmed, "eE") {
		return decimal.Zero, errors.Wrapf(ErrInvalidAmount, "parse %q", raw)
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrInvalidAmount, "parse %q", raw)
	}

	return amount, nil
}

// ToBaseUnits converts amount into the smallest unit of a token with the given decimals,
// e.g. 1.5 with 18 decimals becomes 1500000000000000000.
func ToBaseUnits(amount decimal.Decimal, decimals int32) (*big.Int, error) {
	shifted := amount.Shift(decimals)
	if !shifted.IsInteger() {
		return nil, errors.Wrapf(ErrTooManyDecimals, "%s with %d decimals", amount.String(), decimals)
	}

	return shifted.BigInt(), nil
}

// FromBaseUnits converts an on-chain integer value back to a decimal amount.
func FromBaseUnits(value *big.Int, decimals int32) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(value, -decimals)
}

// FormatFixed renders amount with exactly places decimal places.
func FormatFixed(amount decimal.Decimal, places int32) string {
	return amount.StringFixed(places)
}
