// Package send implements the send-funds flow: it owns the recipient and amount
// input, validates it against the fetched balance, keeps a gas estimate for the
// current input and submits the transfer.
package send

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github/chapool/mobile-wallet/internal/i18n"
	"github/chapool/mobile-wallet/internal/metrics"
	"github/chapool/mobile-wallet/internal/util"
	"github/chapool/mobile-wallet/internal/wallet/balance"
	"github/chapool/mobile-wallet/internal/wallet/transfer"
	"github/chapool/mobile-wallet/internal/wallet/units"
)

const balanceDisplayPlaces = 4

// Controller 发送流程控制器
//
// All exported methods are safe for concurrent use. Balance fetches, gas
// estimates and submissions run in their own goroutines; their responses are
// tagged with a generation and discarded when superseded.
type Controller struct {
	cfg     Config
	deps    Deps
	metrics *metrics.Service
	onClose func(*transfer.Receipt)
	logger  zerolog.Logger

	ctx    context.Context //nolint:containedctx // cancelled by Close
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu          sync.Mutex
	form        Form
	snapshot    *balance.Snapshot
	amountCheck Validation
	recipCheck  Validation

	balanceGen uint64
	gasGen     uint64
	submitGen  uint64

	gasEstimate string
	estimating  bool

	status  Status
	failure string
	receipt *transfer.Receipt
	// inFlight outlives Open: a reopened flow still waits for the previous
	// transfer call to return before it may submit again.
	inFlight bool

	closed      bool
	subscribers []func(View)

	// publishMu serialises view delivery so subscribers see views in order.
	publishMu sync.Mutex
}

// WithMetrics records flow metrics on m.
func WithMetrics(m *metrics.Service) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// WithOnClose registers fn to be called after a successful submission, the
// signal for the presentation layer to close the flow.
func WithOnClose(fn func(*transfer.Receipt)) Option {
	return func(c *Controller) {
		c.onClose = fn
	}
}

// New 创建发送流程控制器；调用 Open 后开始加载余额
func New(ctx context.Context, cfg Config, deps Deps, opts ...Option) (*Controller, error) {
	if err := util.IsStructInitialized(deps); err != nil {
		return nil, errors.Wrap(err, "send flow dependencies")
	}
	if cfg.Account == "" {
		return nil, errors.New("send flow requires an account")
	}
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}

	flowCtx, cancel := context.WithCancel(ctx)

	c := &Controller{
		cfg:    cfg,
		deps:   deps,
		ctx:    flowCtx,
		cancel: cancel,
		logger: util.LogFromContext(ctx).With().Str("flow_id", cfg.ID).Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.recompute()

	return c, nil
}

func (c *Controller) ID() string {
	return c.cfg.ID
}

// Subscribe registers fn to receive the view after every state change.
// Views are delivered synchronously and in order; fn must not call methods
// that change the flow.
func (c *Controller) Subscribe(fn func(View)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Open resets the form and the submission status and (re)loads the balance.
// The last known balance snapshot stays in place until the fetch resolves.
func (c *Controller) Open() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.form = Form{}
	c.gasGen++
	c.gasEstimate = ""
	c.estimating = false
	c.submitGen++
	c.status = StatusIdle
	c.failure = ""
	c.receipt = nil
	c.recompute()
	c.startBalanceFetch()
	c.mu.Unlock()

	c.metrics.FlowOpened()
	c.logger.Debug().Msg("Send flow opened")
	c.publish()
}

// Refresh re-requests the balance without touching the form.
func (c *Controller) Refresh() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.startBalanceFetch()
	c.mu.Unlock()

	c.publish()
}

func (c *Controller) SetRecipient(recipient string) {
	c.setForm(func(f *Form) { f.Recipient = recipient })
}

func (c *Controller) SetAmount(amount string) {
	c.setForm(func(f *Form) { f.Amount = amount })
}

func (c *Controller) setForm(update func(*Form)) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	prev := c.form
	update(&c.form)
	if c.form == prev {
		c.mu.Unlock()
		return
	}

	c.recompute()

	c.gasGen++
	c.gasEstimate = ""
	c.estimating = false
	if c.form.Recipient != "" && c.form.Amount != "" {
		c.startGasEstimate()
	}
	c.mu.Unlock()

	c.publish()
}

// Submit starts the transfer of the current form. It fails with
// ErrSubmitNotAllowed, leaving the state untouched, unless the input is valid
// and no submission is pending or has succeeded since the last Open.
func (c *Controller) Submit() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if err := c.submittable(); err != nil {
		c.mu.Unlock()
		c.metrics.Submission(metrics.OutcomeRejected)
		return err
	}

	c.status = StatusPending
	c.failure = ""
	c.inFlight = true
	c.submitGen++
	gen := c.submitGen
	form := c.form

	c.wg.Add(1)
	go c.submit(gen, form)
	c.mu.Unlock()

	c.logger.Info().
		Str("recipient", form.Recipient).
		Str("amount", form.Amount).
		Int64("chain_id", c.cfg.ChainID).
		Msg("Submitting transfer")
	c.publish()

	return nil
}

// submittable must be called with mu held.
func (c *Controller) submittable() error {
	if c.inFlight {
		return errors.Wrap(ErrSubmitNotAllowed, "submission in flight")
	}
	switch c.status {
	case StatusPending:
		return errors.Wrap(ErrSubmitNotAllowed, "submission pending")
	case StatusSucceeded:
		return errors.Wrap(ErrSubmitNotAllowed, "already submitted")
	case StatusIdle, StatusFailed:
	}
	if err := c.recipCheck.Err(); err != nil {
		return errors.Wrap(ErrSubmitNotAllowed, err.Error())
	}
	if !c.recipCheck.Valid() {
		return errors.Wrap(ErrSubmitNotAllowed, "recipient missing")
	}
	if err := c.amountCheck.Err(); err != nil {
		return errors.Wrap(ErrSubmitNotAllowed, err.Error())
	}
	if !c.amountCheck.Valid() {
		return errors.Wrap(ErrSubmitNotAllowed, "amount missing")
	}
	return nil
}

func (c *Controller) submit(gen uint64, form Form) {
	defer c.wg.Done()

	// A submission is never cancelled once issued.
	ctx := context.WithoutCancel(c.ctx)

	started := time.Now()
	receipt, err := c.deps.Submitter.SubmitTransfer(ctx, form.Recipient, form.Amount, c.cfg.ChainID)
	c.metrics.ObserveCall("submit_transfer", started)

	if err != nil {
		c.metrics.Submission(metrics.OutcomeFailed)
		c.logger.Warn().Err(errors.Wrap(ErrSubmission, err.Error())).Msg("Transfer failed")
	} else {
		c.metrics.Submission(metrics.OutcomeSucceeded)
		c.logger.Info().Str("tx_hash", receipt.TxHash).Msg("Transfer submitted")
	}

	c.mu.Lock()
	c.inFlight = false
	if gen != c.submitGen || c.closed {
		c.mu.Unlock()
		c.logger.Debug().Msg("Discarding outcome of a submission from a previous opening")
		c.publish()
		return
	}
	if err != nil {
		c.status = StatusFailed
		c.failure = c.deps.Translator.Translate(i18n.MsgTransactionFailed, map[string]string{
			"Reason": err.Error(),
		})
	} else {
		c.status = StatusSucceeded
		c.receipt = receipt
	}
	onClose := c.onClose
	c.mu.Unlock()

	c.publish()

	if err == nil && onClose != nil {
		onClose(receipt)
	}
}

// startBalanceFetch must be called with mu held.
func (c *Controller) startBalanceFetch() {
	c.balanceGen++
	gen := c.balanceGen

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ctx, cancel := withTimeout(c.ctx, c.cfg.BalanceTimeout)
		defer cancel()

		started := time.Now()
		snapshot, err := c.deps.Balances.FetchBalance(ctx, c.cfg.Account, c.cfg.TokenID)
		c.metrics.ObserveCall("fetch_balance", started)

		c.mu.Lock()
		if gen != c.balanceGen || c.closed {
			c.mu.Unlock()
			c.metrics.StaleDiscarded(metrics.KindBalance)
			return
		}
		if err != nil {
			c.snapshot = nil
		} else {
			c.snapshot = snapshot
		}
		c.recompute()
		c.mu.Unlock()

		if err != nil {
			c.logger.Warn().Err(err).Str("token", c.cfg.TokenID).Msg("Failed to fetch balance")
		}
		c.publish()
	}()
}

// startGasEstimate must be called with mu held and gasGen already bumped.
func (c *Controller) startGasEstimate() {
	gen := c.gasGen
	form := c.form
	c.estimating = true

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ctx, cancel := withTimeout(c.ctx, c.cfg.GasTimeout)
		defer cancel()

		started := time.Now()
		estimate, err := c.deps.Gas.EstimateGas(ctx, form.Recipient, form.Amount)
		c.metrics.ObserveCall("estimate_gas", started)

		c.mu.Lock()
		if gen != c.gasGen || form != c.form || c.closed {
			c.mu.Unlock()
			c.metrics.StaleDiscarded(metrics.KindGas)
			return
		}
		c.estimating = false
		if err == nil {
			c.gasEstimate = estimate
		}
		c.mu.Unlock()

		if err != nil {
			c.logger.Debug().Err(err).Msg("Gas estimation failed")
		}
		c.publish()
	}()
}

// recompute must be called with mu held.
func (c *Controller) recompute() {
	c.amountCheck = ValidateAmount(c.form.Amount, c.snapshot, c.cfg.Symbol, c.cfg.Decimals)
	c.recipCheck = ValidateRecipient(c.form.Recipient)
}

// Validation returns the current amount validation.
func (c *Controller) Validation() Validation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.amountCheck
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view()
}

// view must be called with mu held.
func (c *Controller) view() View {
	v := View{
		ID:             c.cfg.ID,
		Recipient:      c.form.Recipient,
		Amount:         c.form.Amount,
		RecipientError: c.recipCheck.Message(c.deps.Translator),
		AmountError:    c.amountCheck.Message(c.deps.Translator),
		Symbol:         c.cfg.Symbol,
		GasEstimate:    c.gasEstimate,
		Estimating:     c.estimating,
		Status:         c.status,
		StatusName:     c.status.String(),
		FailureReason:  c.failure,
		CanSubmit:      !c.closed && c.submittable() == nil,
	}

	if c.snapshot != nil {
		if c.snapshot.Symbol != "" {
			v.Symbol = c.snapshot.Symbol
		}
		if amount, err := units.ParseAmount(c.snapshot.DisplayValue); err == nil {
			v.Balance = units.FormatFixed(amount, balanceDisplayPlaces)
		}
	}
	if c.receipt != nil {
		v.TxHash = c.receipt.TxHash
	}

	return v
}

func (c *Controller) publish() {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	v := c.view()
	subscribers := slices.Clone(c.subscribers)
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(v)
	}
}

// Close stops the flow. Pending balance and gas requests are cancelled, a
// pending submission runs to completion but no longer updates the flow.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.subscribers = nil
	c.cancel()
}

// Wait blocks until all goroutines started by the controller have returned.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
