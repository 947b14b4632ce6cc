package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type CryptoFlowState string

const (
	CryptoNoCurrencySelected CryptoFlowState = "no_currency_selected"
	CryptoCurrencySelected   CryptoFlowState = "currency_selected"
	CryptoTransferring       CryptoFlowState = "transferring"
	CryptoSettled            CryptoFlowState = "settled"
)

const defaultCountdownTick = time.Second

type CryptoFlowConfig struct {
	RequiredNetwork uint64
	TickInterval    time.Duration
}

// CryptoFlow pays one crypto invoice. The payment methods returned by the
// backend and the selected currency live in a CryptoSession that is
// persisted after every change.
type CryptoFlow struct {
	api      ports.BillingAPI
	wallet   ports.WalletProvider
	state    *BillingState
	sessions ports.CryptoSessionRepository
	clock    ports.Clock
	logger   *logrus.Logger
	cfg      CryptoFlowConfig

	mu            sync.Mutex
	session       domain.CryptoSession
	active        bool
	transferring  bool
	settled       bool
	stopCountdown context.CancelFunc
}

// NewCryptoFlow builds a flow. wallet may be nil when no wallet endpoint is
// configured; wallet operations then fail with domain.ErrNoWalletConnected.
func NewCryptoFlow(api ports.BillingAPI, wallet ports.WalletProvider, state *BillingState, sessions ports.CryptoSessionRepository, clock ports.Clock, logger *logrus.Logger, cfg CryptoFlowConfig) *CryptoFlow {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = discardLogger()
	}
	if cfg.RequiredNetwork == 0 {
		cfg.RequiredNetwork = domain.MainnetNetworkID
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultCountdownTick
	}

	return &CryptoFlow{
		api:      api,
		wallet:   wallet,
		state:    state,
		sessions: sessions,
		clock:    clock,
		logger:   logger,
		cfg:      cfg,
	}
}

func (f *CryptoFlow) RequiredNetwork() uint64 {
	return f.cfg.RequiredNetwork
}

// Start fetches fresh payment methods for the invoice. When a price is given
// and nothing is pending yet, the subscription is first switched to that
// price with crypto as payment method so the backend issues an invoice.
func (f *CryptoFlow) Start(ctx context.Context, cmd StartCryptoCommand) (domain.CryptoSession, error) {
	if cmd.Price != nil {
		if err := f.ensureCharge(ctx, *cmd.Price); err != nil {
			return domain.CryptoSession{}, err
		}
	}

	invoice, err := f.payableInvoice(cmd.InvoiceUUID)
	if err != nil {
		return domain.CryptoSession{}, err
	}

	payment, err := f.api.PayInvoice(ctx, invoice.UUID)
	if err != nil {
		f.logger.WithError(err).WithField("invoice", invoice.UUID).Error("pay crypto invoice failed")
		return domain.CryptoSession{}, fmt.Errorf("pay crypto invoice: %w", err)
	}
	if payment.Crypto == nil || len(payment.Crypto.Methods) == 0 {
		f.logger.WithField("invoice", invoice.UUID).Error("pay invoice returned no crypto payment methods")
		return domain.CryptoSession{}, domain.ErrNoCryptoPayment
	}

	now := f.clock.Now().UTC()
	session := domain.CryptoSession{
		InvoiceUUID: invoice.UUID,
		Payment:     *payment.Crypto,
		FetchedAt:   now,
		UpdatedAt:   now,
	}
	session.Payment.InvoiceUUID = invoice.UUID

	if err := f.sessions.Save(ctx, session); err != nil {
		return domain.CryptoSession{}, fmt.Errorf("save crypto session: %w", err)
	}

	f.mu.Lock()
	f.stopCountdownLocked()
	f.session = session
	f.active = true
	f.settled = false
	f.mu.Unlock()

	return session, nil
}

// Resume restores the persisted session of an invoice started earlier. An
// expired session is not restored; Start fetches new payment methods.
func (f *CryptoFlow) Resume(ctx context.Context, invoiceUUID string) (domain.CryptoSession, error) {
	if err := validateCommand(InvoiceCommand{InvoiceUUID: invoiceUUID}); err != nil {
		return domain.CryptoSession{}, err
	}

	session, err := f.sessions.GetByInvoice(ctx, invoiceUUID)
	if err != nil {
		if errors.Is(err, domain.ErrCryptoSessionNotFound) {
			return domain.CryptoSession{}, domain.ErrNoActivePayment
		}
		return domain.CryptoSession{}, fmt.Errorf("load crypto session: %w", err)
	}
	if session.Expired(f.clock.Now()) {
		f.logger.WithField("invoice", invoiceUUID).Warn("crypto session expired")
		return domain.CryptoSession{}, domain.ErrPaymentExpired
	}

	f.mu.Lock()
	f.stopCountdownLocked()
	f.session = session
	f.active = true
	f.settled = false
	f.mu.Unlock()

	return session, nil
}

func (f *CryptoFlow) State() CryptoFlowState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.stateLocked()
}

func (f *CryptoFlow) stateLocked() CryptoFlowState {
	switch {
	case f.settled:
		return CryptoSettled
	case f.transferring:
		return CryptoTransferring
	case f.session.Selected != "":
		return CryptoCurrencySelected
	default:
		return CryptoNoCurrencySelected
	}
}

func (f *CryptoFlow) Session() domain.CryptoSession {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.session
}

// SelectCurrency makes currency the only selected one and discards the
// running countdown.
func (f *CryptoFlow) SelectCurrency(ctx context.Context, cmd SelectCurrencyCommand) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}

	f.mu.Lock()
	if err := f.checkMutableLocked(); err != nil {
		f.mu.Unlock()
		return err
	}
	method, ok := f.session.Payment.Method(cmd.Currency)
	if !ok {
		f.mu.Unlock()
		return domain.ValidationError("currency", fmt.Sprintf("%s is not accepted for this invoice", cmd.Currency))
	}
	if method.Expired(f.clock.Now()) {
		f.mu.Unlock()
		return domain.ErrPaymentExpired
	}

	f.stopCountdownLocked()
	f.session.Selected = cmd.Currency
	f.session.UpdatedAt = f.clock.Now().UTC()
	session := f.session
	f.mu.Unlock()

	return f.save(ctx, session)
}

// Back clears the selection. The invoice stays open.
func (f *CryptoFlow) Back(ctx context.Context) error {
	f.mu.Lock()
	if err := f.checkMutableLocked(); err != nil {
		f.mu.Unlock()
		return err
	}

	f.stopCountdownLocked()
	f.session.Selected = ""
	f.session.UpdatedAt = f.clock.Now().UTC()
	session := f.session
	f.mu.Unlock()

	return f.save(ctx, session)
}

func (f *CryptoFlow) checkMutableLocked() error {
	if !f.active {
		return domain.ErrNoActivePayment
	}
	if f.transferring {
		return domain.ErrTransferInProgress
	}
	if f.settled {
		return domain.ErrInvalidFlowState
	}
	return nil
}

func (f *CryptoFlow) Countdown() time.Duration {
	f.mu.Lock()
	expiresAt := f.session.ExpiresAt()
	f.mu.Unlock()

	return domain.Countdown(expiresAt, f.clock.Now())
}

func (f *CryptoFlow) Progress() float64 {
	return domain.ProgressPercent(f.Countdown())
}

// RunCountdown calls onTick with the remaining time on every tick until ctx
// ends or the countdown is discarded by a new selection, Back or Close.
func (f *CryptoFlow) RunCountdown(ctx context.Context, onTick func(remaining time.Duration)) error {
	tickCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	f.mu.Lock()
	if !f.active {
		f.mu.Unlock()
		return domain.ErrNoActivePayment
	}
	f.stopCountdownLocked()
	f.stopCountdown = cancel
	f.mu.Unlock()

	ticker := time.NewTicker(f.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-tickCtx.Done():
			if err := ctx.Err(); err != nil {
				return err
			}
			return domain.ErrFlowReset
		case <-ticker.C:
			onTick(f.Countdown())
		}
	}
}

func (f *CryptoFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopCountdownLocked()
}

func (f *CryptoFlow) stopCountdownLocked() {
	if f.stopCountdown != nil {
		f.stopCountdown()
		f.stopCountdown = nil
	}
}

// BalanceSufficient reports whether the connected wallet can pay the
// selected method.
func (f *CryptoFlow) BalanceSufficient(ctx context.Context) (bool, error) {
	method, err := f.selectedMethod()
	if err != nil {
		return false, err
	}

	return f.balanceSufficient(ctx, method)
}

func (f *CryptoFlow) balanceSufficient(ctx context.Context, method domain.CryptoPaymentMethod) (bool, error) {
	if !method.Currency.SupportsInAppTransfer() {
		return false, nil
	}
	if f.wallet == nil {
		return false, domain.ErrNoWalletConnected
	}

	if method.Currency.IsNative() {
		balance, err := f.wallet.NativeBalance(ctx)
		if err != nil {
			return false, fmt.Errorf("read native balance: %w", err)
		}
		return domain.BalanceSufficient(method.Currency, method.Amount, balance, nil), nil
	}

	tokens, err := f.wallet.Tokens(ctx)
	if err != nil {
		return false, fmt.Errorf("read token balances: %w", err)
	}
	return domain.BalanceSufficient(method.Currency, method.Amount, decimal.Zero, tokens), nil
}

// NetworkReady reports whether the wallet is on the required network.
func (f *CryptoFlow) NetworkReady(ctx context.Context) (bool, error) {
	if f.wallet == nil {
		return false, domain.ErrNoWalletConnected
	}

	networkID, err := f.wallet.NetworkID(ctx)
	if err != nil {
		return false, fmt.Errorf("read wallet network: %w", err)
	}

	return networkID == f.cfg.RequiredNetwork, nil
}

// SwitchNetwork asks the wallet to move to the required network and reports
// whether it did.
func (f *CryptoFlow) SwitchNetwork(ctx context.Context) (bool, error) {
	if f.wallet == nil {
		return false, domain.ErrNoWalletConnected
	}

	if err := f.wallet.SwitchNetwork(ctx, f.cfg.RequiredNetwork); err != nil {
		f.logger.WithError(err).WithField("network", f.cfg.RequiredNetwork).Error("switch network failed")
		return false, fmt.Errorf("switch network: %w", err)
	}

	return f.NetworkReady(ctx)
}

// Transfer sends the exact amount of the selected method to its address and
// waits for one confirmation. Failures are logged and leave the selection in
// place; nothing is retried.
func (f *CryptoFlow) Transfer(ctx context.Context) (string, error) {
	if f.wallet == nil {
		return "", domain.ErrNoWalletConnected
	}

	f.mu.Lock()
	method, err := f.selectedMethodLocked()
	switch {
	case err != nil:
	case f.transferring:
		err = domain.ErrTransferInProgress
	case !method.Currency.SupportsInAppTransfer():
		err = domain.ErrUnsupportedTransfer
	case method.Expired(f.clock.Now()):
		err = domain.ErrPaymentExpired
	}
	if err != nil {
		f.mu.Unlock()
		return "", err
	}
	f.transferring = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.transferring = false
		f.mu.Unlock()
	}()

	if _, err := f.wallet.Account(ctx); err != nil {
		return "", err
	}

	ready, err := f.NetworkReady(ctx)
	if err != nil {
		return "", err
	}
	if !ready {
		return "", domain.ErrNetworkMismatch
	}

	sufficient, err := f.balanceSufficient(ctx, method)
	if err != nil {
		return "", err
	}
	if !sufficient {
		return "", domain.ErrInsufficientBalance
	}

	fields := logrus.Fields{"currency": method.Currency, "to": method.Address, "amount": method.Amount.String()}

	txHash, err := f.send(ctx, method)
	if err != nil {
		f.logger.WithError(err).WithFields(fields).Error("crypto transfer failed")
		return "", fmt.Errorf("transfer %s: %w", method.Currency.Symbol(), err)
	}

	if err := f.wallet.WaitConfirmed(ctx, txHash); err != nil {
		f.logger.WithError(err).WithFields(fields).WithField("tx", txHash).Error("crypto transfer confirmation failed")
		return txHash, fmt.Errorf("await transfer confirmation: %w", err)
	}

	f.logger.WithFields(fields).WithField("tx", txHash).Info("crypto transfer confirmed")
	return txHash, nil
}

func (f *CryptoFlow) send(ctx context.Context, method domain.CryptoPaymentMethod) (string, error) {
	if method.Currency.IsNative() {
		return f.wallet.TransferNative(ctx, method.Address, method.Amount)
	}

	tokens, err := f.wallet.Tokens(ctx)
	if err != nil {
		return "", fmt.Errorf("read token balances: %w", err)
	}
	token, ok := domain.FindToken(tokens, string(method.Currency))
	if !ok {
		return "", domain.ErrUnsupportedTransfer
	}

	return f.wallet.TransferToken(ctx, token, method.Address, method.Amount)
}

// Refresh re-fetches invoices and moves the flow to settled once the invoice
// is paid. The persisted session is dropped at that point.
func (f *CryptoFlow) Refresh(ctx context.Context) (CryptoFlowState, error) {
	f.mu.Lock()
	if !f.active {
		f.mu.Unlock()
		return CryptoNoCurrencySelected, domain.ErrNoActivePayment
	}
	invoiceUUID := f.session.InvoiceUUID
	f.mu.Unlock()

	if err := f.state.RefreshInvoices(ctx); err != nil {
		return f.State(), err
	}

	invoice, ok := domain.FindInvoice(f.state.Snapshot().Invoices, invoiceUUID)
	if !ok || invoice.Status != domain.InvoiceStatusPaid {
		return f.State(), nil
	}

	f.mu.Lock()
	f.settled = true
	f.stopCountdownLocked()
	f.mu.Unlock()

	if err := f.sessions.Delete(ctx, invoiceUUID); err != nil {
		f.logger.WithError(err).WithField("invoice", invoiceUUID).Warn("drop settled crypto session failed")
	}

	return CryptoSettled, nil
}

// View gathers the panel state. Wallet lookups that fail are logged and left
// unset.
func (f *CryptoFlow) View(ctx context.Context) CryptoView {
	f.mu.Lock()
	session := f.session
	state := f.stateLocked()
	f.mu.Unlock()

	now := f.clock.Now()
	remaining := domain.Countdown(session.ExpiresAt(), now)
	view := CryptoView{
		State:     state,
		Session:   session,
		Remaining: remaining,
		Progress:  domain.ProgressPercent(remaining),
		Expired:   remaining == 0,
	}

	method, ok := session.SelectedMethod()
	if !ok {
		return view
	}
	view.Selected = &method

	if f.wallet == nil || !method.Currency.SupportsInAppTransfer() {
		return view
	}

	if _, err := f.wallet.Account(ctx); err != nil {
		if !errors.Is(err, domain.ErrNoWalletConnected) {
			f.logger.WithError(err).Warn("read wallet account failed")
		}
		return view
	}
	view.WalletConnected = true

	if ready, err := f.NetworkReady(ctx); err != nil {
		f.logger.WithError(err).Warn("read wallet network failed")
	} else {
		view.NetworkReady = &ready
	}

	if sufficient, err := f.balanceSufficient(ctx, method); err != nil {
		f.logger.WithError(err).Warn("read wallet balance failed")
	} else {
		view.BalanceSufficient = &sufficient
	}

	return view
}

func (f *CryptoFlow) selectedMethod() (domain.CryptoPaymentMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.selectedMethodLocked()
}

func (f *CryptoFlow) selectedMethodLocked() (domain.CryptoPaymentMethod, error) {
	if !f.active {
		return domain.CryptoPaymentMethod{}, domain.ErrNoActivePayment
	}
	method, ok := f.session.SelectedMethod()
	if !ok {
		return domain.CryptoPaymentMethod{}, domain.ErrNoCurrencySelected
	}
	return method, nil
}

func (f *CryptoFlow) ensureCharge(ctx context.Context, price domain.Price) error {
	snapshot := f.state.Snapshot()
	if snapshot.Subscription == nil || snapshot.HasPendingInvoice() {
		return nil
	}

	update := domain.SubscriptionUpdate{PriceID: price.ID, PaymentMethod: domain.PaymentMethodCrypto}
	if err := f.api.UpdateSubscription(ctx, snapshot.Subscription.ID, update); err != nil {
		f.logger.WithError(err).WithField("price", price.ID).Error("create crypto charge failed")
		return domain.Wrap(domain.ErrCreateChargeFailed, err)
	}

	if err := f.state.RefreshSubscription(ctx); err != nil {
		return err
	}

	return f.state.RefreshInvoices(ctx)
}

func (f *CryptoFlow) payableInvoice(invoiceUUID string) (domain.Invoice, error) {
	invoices := f.state.Snapshot().Invoices
	if invoiceUUID == "" {
		invoice, ok := domain.PendingCryptoInvoice(invoices)
		if !ok {
			return domain.Invoice{}, domain.ErrNoPendingInvoice
		}
		return invoice, nil
	}

	invoice, ok := domain.FindInvoice(invoices, invoiceUUID)
	if !ok {
		return domain.Invoice{}, domain.ErrInvoiceNotFound
	}
	if !invoice.IsCrypto() || invoice.Status != domain.InvoiceStatusOpen {
		return domain.Invoice{}, domain.ErrNoPendingInvoice
	}

	return invoice, nil
}

func (f *CryptoFlow) save(ctx context.Context, session domain.CryptoSession) error {
	if err := f.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("save crypto session: %w", err)
	}
	return nil
}
