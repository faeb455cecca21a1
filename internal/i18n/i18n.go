package i18n

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// Message IDs of user-facing send flow messages.
const (
	MsgBalanceUnavailable  = "send.balance_unavailable"
	MsgInvalidNumber       = "send.invalid_number"
	MsgAmountNotPositive   = "send.amount_not_positive"
	MsgTooManyDecimals     = "send.too_many_decimals"
	MsgInsufficientBalance = "send.insufficient_balance"
	MsgInvalidRecipient    = "send.invalid_recipient"
	MsgTransactionFailed   = "send.transaction_failed"
)

var english = []*i18n.Message{
	{ID: MsgBalanceUnavailable, Other: "balance unavailable"},
	{ID: MsgInvalidNumber, Other: "not a valid number"},
	{ID: MsgAmountNotPositive, Other: "amount must be positive"},
	{ID: MsgTooManyDecimals, Other: "too many decimal places (max {{.Decimals}})"},
	{ID: MsgInsufficientBalance, Other: "insufficient balance: have {{.Balance}} {{.Symbol}}"},
	{ID: MsgInvalidRecipient, Other: "not a valid address"},
	{ID: MsgTransactionFailed, Other: "transaction failed: {{.Reason}}"},
}

var german = []*i18n.Message{
	{ID: MsgBalanceUnavailable, Other: "Guthaben nicht verfügbar"},
	{ID: MsgInvalidNumber, Other: "keine gültige Zahl"},
	{ID: MsgAmountNotPositive, Other: "Betrag muss positiv sein"},
	{ID: MsgTooManyDecimals, Other: "zu viele Nachkommastellen (max. {{.Decimals}})"},
	{ID: MsgInsufficientBalance, Other: "Guthaben nicht ausreichend: {{.Balance}} {{.Symbol}} verfügbar"},
	{ID: MsgInvalidRecipient, Other: "keine gültige Adresse"},
	{ID: MsgTransactionFailed, Other: "Transaktion fehlgeschlagen: {{.Reason}}"},
}

// Service wraps a go-i18n bundle holding the built-in catalogs.
type Service struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

func New(defaultLanguage string) (*Service, error) {
	tag, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid default language %q", defaultLanguage)
	}

	bundle := i18n.NewBundle(tag)
	if err := bundle.AddMessages(language.English, english...); err != nil {
		return nil, errors.Wrap(err, "failed to add english messages")
	}
	if err := bundle.AddMessages(language.German, german...); err != nil {
		return nil, errors.Wrap(err, "failed to add german messages")
	}

	return &Service{bundle: bundle, defaultLanguage: tag}, nil
}

// Localizer returns a Localizer for the given language preferences, typically
// the raw Accept-Language header. Unknown languages fall back to the default.
func (s *Service) Localizer(langs ...string) *Localizer {
	return &Localizer{
		loc: i18n.NewLocalizer(s.bundle, append(langs, s.defaultLanguage.String())...),
	}
}

// Localizer renders messages for one set of language preferences.
type Localizer struct {
	loc *i18n.Localizer
}

// Translate renders messageID with data. A message that cannot be rendered
// falls back to its ID so callers always get a displayable string.
func (l *Localizer) Translate(messageID string, data map[string]string) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		log.Warn().Err(err).Str("message_id", messageID).Msg("Failed to localize message")
		return messageID
	}

	return msg
}
