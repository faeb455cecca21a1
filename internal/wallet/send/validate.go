package send

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github/chapool/mobile-wallet/internal/i18n"
	"github/chapool/mobile-wallet/internal/wallet/balance"
	"github/chapool/mobile-wallet/internal/wallet/units"
)

// Kind classifies a validation result.
type Kind int

const (
	KindValid Kind = iota
	// KindNeutral is empty input: not submittable, but no message is shown.
	KindNeutral
	KindBalanceUnavailable
	KindInput
	KindInsufficientBalance
)

// Validation is derived from the form and the balance snapshot, never stored on its own.
type Validation struct {
	Kind      Kind
	MessageID string
	Data      map[string]string
}

func (v Validation) Valid() bool {
	return v.Kind == KindValid
}

// Err maps the validation to the error taxonomy; nil for valid and neutral input.
func (v Validation) Err() error {
	switch v.Kind {
	case KindValid, KindNeutral:
		return nil
	case KindBalanceUnavailable:
		return errors.Wrap(ErrBalanceUnavailable, v.MessageID)
	case KindInsufficientBalance:
		return errors.Wrap(ErrInsufficientBalance, v.MessageID)
	default:
		return errors.Wrap(ErrInput, v.MessageID)
	}
}

// Message renders the user-facing message, empty for valid and neutral input.
func (v Validation) Message(tr Translator) string {
	if v.MessageID == "" {
		return ""
	}
	return tr.Translate(v.MessageID, v.Data)
}

func invalid(kind Kind, messageID string) Validation {
	return Validation{Kind: kind, MessageID: messageID}
}

// ValidateAmount checks a raw amount against the balance snapshot:
//  1. no snapshot: balance unavailable
//  2. empty amount: neutral
//  3. not a decimal number: invalid number
//  4. zero or negative: not positive
//  5. finer than the token's decimals: too many decimal places
//  6. above the balance: insufficient balance
func ValidateAmount(raw string, snapshot *balance.Snapshot, fallbackSymbol string, decimals int32) Validation {
	if snapshot == nil {
		return invalid(KindBalanceUnavailable, i18n.MsgBalanceUnavailable)
	}

	have, err := decimal.NewFromString(snapshot.DisplayValue)
	if err != nil {
		return invalid(KindBalanceUnavailable, i18n.MsgBalanceUnavailable)
	}

	amount, err := units.ParseAmount(raw)
	if errors.Is(err, units.ErrEmptyAmount) {
		return Validation{Kind: KindNeutral}
	}
	if err != nil {
		return invalid(KindInput, i18n.MsgInvalidNumber)
	}

	if !amount.IsPositive() {
		return invalid(KindInput, i18n.MsgAmountNotPositive)
	}

	if !amount.Shift(decimals).IsInteger() {
		return Validation{
			Kind:      KindInput,
			MessageID: i18n.MsgTooManyDecimals,
			Data:      map[string]string{"Decimals": strconv.Itoa(int(decimals))},
		}
	}

	if amount.GreaterThan(have) {
		symbol := snapshot.Symbol
		if symbol == "" {
			symbol = fallbackSymbol
		}
		return Validation{
			Kind:      KindInsufficientBalance,
			MessageID: i18n.MsgInsufficientBalance,
			Data: map[string]string{
				"Balance": have.String(),
				"Symbol":  symbol,
			},
		}
	}

	return Validation{Kind: KindValid}
}

// ValidateRecipient accepts a hex account address; empty input is neutral.
func ValidateRecipient(recipient string) Validation {
	if recipient == "" {
		return Validation{Kind: KindNeutral}
	}
	if !common.IsHexAddress(recipient) {
		return invalid(KindInput, i18n.MsgInvalidRecipient)
	}
	return Validation{Kind: KindValid}
}
