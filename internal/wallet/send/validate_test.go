package send_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github/chapool/mobile-wallet/internal/i18n"
	"github/chapool/mobile-wallet/internal/wallet/balance"
	"github/chapool/mobile-wallet/internal/wallet/send"
)

func TestValidateAmount(t *testing.T) {
	tenS := &balance.Snapshot{DisplayValue: "10.0", Symbol: "S"}

	tests := []struct {
		name      string
		amount    string
		snapshot  *balance.Snapshot
		kind      send.Kind
		messageID string
		sentinel  error
	}{
		{"valid", "5", tenS, send.KindValid, "", nil},
		{"whole balance", "10", tenS, send.KindValid, "", nil},
		{"fraction", "0.000000000000000001", tenS, send.KindValid, "", nil},
		{"trailing zeros past decimals", "1.0000000000000000000", tenS, send.KindValid, "", nil},
		{"finer than decimals", "0.0000000000000000001", tenS, send.KindInput, i18n.MsgTooManyDecimals, send.ErrInput},
		{"surrounding whitespace", " 2.5 ", tenS, send.KindValid, "", nil},
		{"empty", "", tenS, send.KindNeutral, "", nil},
		{"blank", "   ", tenS, send.KindNeutral, "", nil},
		{"letters", "abc", tenS, send.KindInput, i18n.MsgInvalidNumber, send.ErrInput},
		{"trailing garbage", "5abc", tenS, send.KindInput, i18n.MsgInvalidNumber, send.ErrInput},
		{"two dots", "1.2.3", tenS, send.KindInput, i18n.MsgInvalidNumber, send.ErrInput},
		{"zero", "0", tenS, send.KindInput, i18n.MsgAmountNotPositive, send.ErrInput},
		{"zero fraction", "0.000", tenS, send.KindInput, i18n.MsgAmountNotPositive, send.ErrInput},
		{"negative", "-1", tenS, send.KindInput, i18n.MsgAmountNotPositive, send.ErrInput},
		{"over balance", "15", tenS, send.KindInsufficientBalance, i18n.MsgInsufficientBalance, send.ErrInsufficientBalance},
		{"just over balance", "10.000000001", tenS, send.KindInsufficientBalance, i18n.MsgInsufficientBalance, send.ErrInsufficientBalance},
		{"no balance", "1", nil, send.KindBalanceUnavailable, i18n.MsgBalanceUnavailable, send.ErrBalanceUnavailable},
		{"no balance empty amount", "", nil, send.KindBalanceUnavailable, i18n.MsgBalanceUnavailable, send.ErrBalanceUnavailable},
		{"garbled balance", "1", &balance.Snapshot{DisplayValue: "n/a", Symbol: "S"}, send.KindBalanceUnavailable, i18n.MsgBalanceUnavailable, send.ErrBalanceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := send.ValidateAmount(tt.amount, tt.snapshot, "S", 18)
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, tt.messageID, v.MessageID)
			assert.Equal(t, tt.kind == send.KindValid, v.Valid())

			if tt.sentinel == nil {
				assert.NoError(t, v.Err())
			} else {
				assert.True(t, errors.Is(v.Err(), tt.sentinel))
			}
		})
	}
}

func TestValidateAmountInsufficientMessage(t *testing.T) {
	tr := newTranslator(t)

	v := send.ValidateAmount("15", &balance.Snapshot{DisplayValue: "10.0", Symbol: "S"}, "X", 18)
	assert.Equal(t, "insufficient balance: have 10 S", v.Message(tr))

	v = send.ValidateAmount("15", &balance.Snapshot{DisplayValue: "10.5"}, "USDC", 6)
	assert.Equal(t, "insufficient balance: have 10.5 USDC", v.Message(tr))
}

func TestValidateAmountDecimals(t *testing.T) {
	tr := newTranslator(t)
	usdc := &balance.Snapshot{DisplayValue: "100", Symbol: "USDC"}

	assert.True(t, send.ValidateAmount("1.123456", usdc, "USDC", 6).Valid())

	v := send.ValidateAmount("1.1234567", usdc, "USDC", 6)
	assert.Equal(t, send.KindInput, v.Kind)
	assert.Equal(t, "too many decimal places (max 6)", v.Message(tr))

	v = send.ValidateAmount("1.5", usdc, "USDC", 0)
	assert.Equal(t, "too many decimal places (max 0)", v.Message(tr))
	assert.True(t, send.ValidateAmount("2", usdc, "USDC", 0).Valid())
}

func TestValidateRecipient(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, send.KindNeutral, send.ValidateRecipient("").Kind)
	assert.True(t, send.ValidateRecipient(recipient).Valid())
	assert.True(t, send.ValidateRecipient("2222222222222222222222222222222222222222").Valid())

	v := send.ValidateRecipient("0x1234")
	assert.Equal(t, send.KindInput, v.Kind)
	assert.Equal(t, "not a valid address", v.Message(tr))
	assert.True(t, errors.Is(v.Err(), send.ErrInput))
}
