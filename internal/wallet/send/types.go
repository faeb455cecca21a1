package send

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github/chapool/mobile-wallet/internal/wallet/balance"
	"github/chapool/mobile-wallet/internal/wallet/transfer"
)

// Error taxonomy of the send flow. Validation errors and submission failures
// wrap one of these; all of them are recoverable by the user.
var (
	ErrInput               = errors.New("invalid input")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceUnavailable  = errors.New("balance unavailable")
	ErrSubmission          = errors.New("submission failed")

	ErrSubmitNotAllowed = errors.New("submit not allowed")
	ErrClosed           = errors.New("send flow is closed")
)

// Status 提交状态
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusFailed
	StatusSucceeded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusFailed:
		return "failed"
	case StatusSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// Form 表单状态
type Form struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

// Translator renders user-facing messages; implemented by i18n.Localizer.
type Translator interface {
	Translate(messageID string, data map[string]string) string
}

// BalanceProvider / GasEstimator / Submitter are the collaborators of the controller.
type (
	BalanceProvider interface {
		FetchBalance(ctx context.Context, address string, tokenID string) (*balance.Snapshot, error)
	}

	GasEstimator interface {
		EstimateGas(ctx context.Context, recipient string, amount string) (string, error)
	}

	Submitter interface {
		SubmitTransfer(ctx context.Context, recipient string, amount string, chainID int64) (*transfer.Receipt, error)
	}
)

// Config 单个发送流程的配置
type Config struct {
	// ID identifies the flow in logs; generated when empty.
	ID      string
	Account string
	TokenID string
	// Symbol is shown when the balance snapshot carries none.
	Symbol  string
	ChainID int64
	// Decimals of the token; amounts with more decimal places are rejected.
	Decimals int32

	BalanceTimeout time.Duration
	GasTimeout     time.Duration
}

// Deps 控制器依赖，全部必填
type Deps struct {
	Balances   BalanceProvider
	Gas        GasEstimator
	Submitter  Submitter
	Translator Translator
}

// View is the presentation snapshot of a flow.
type View struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`

	// RecipientError and AmountError are empty for valid and neutral input.
	RecipientError string `json:"recipientError,omitempty"`
	AmountError    string `json:"amountError,omitempty"`

	// Balance is formatted to 4 decimal places, empty while unavailable.
	Balance string `json:"balance,omitempty"`
	Symbol  string `json:"symbol"`

	GasEstimate string `json:"gasEstimate,omitempty"`
	Estimating  bool   `json:"estimating"`

	Status        Status `json:"-"`
	StatusName    string `json:"status"`
	FailureReason string `json:"failureReason,omitempty"`
	TxHash        string `json:"txHash,omitempty"`

	CanSubmit bool `json:"canSubmit"`
}

// Option 控制器可选项
type Option func(*Controller)
