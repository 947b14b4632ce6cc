package application

import (
	"context"
	"sync"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

type CardFlowState string

const (
	CardFlowIdle       CardFlowState = "idle"
	CardFlowCollecting CardFlowState = "collecting"
	CardFlowSubmitting CardFlowState = "submitting"
	CardFlowSuccess    CardFlowState = "success"
	CardFlowError      CardFlowState = "error"
)

// CardFlow adds or replaces the account's default card. Each Submit emits
// exactly one notification.
type CardFlow struct {
	api      ports.BillingAPI
	sdk      ports.PaymentSDK
	state    *BillingState
	notifier ports.Notifier
	logger   *logrus.Logger

	mu      sync.Mutex
	current CardFlowState
	focus   domain.CardField
	lastErr error
}

func NewCardFlow(api ports.BillingAPI, sdk ports.PaymentSDK, state *BillingState, notifier ports.Notifier, logger *logrus.Logger) *CardFlow {
	if logger == nil {
		logger = discardLogger()
	}

	return &CardFlow{
		api:      api,
		sdk:      sdk,
		state:    state,
		notifier: notifier,
		logger:   logger,
		current:  CardFlowIdle,
	}
}

func (f *CardFlow) State() CardFlowState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.current
}

// Err is the failure of the last submit, shown next to the form.
func (f *CardFlow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastErr
}

func (f *CardFlow) Focused() domain.CardField {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.focus
}

// IsUpdate reports whether a submit would replace an existing default card.
func (f *CardFlow) IsUpdate() bool {
	return f.state.Snapshot().DefaultCard != nil
}

func (f *CardFlow) Begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current != CardFlowIdle {
		return domain.ErrInvalidFlowState
	}
	if f.sdk == nil {
		return domain.ErrPaymentSDKUnavailable
	}

	f.current = CardFlowCollecting
	f.focus = ""
	f.lastErr = nil
	return nil
}

func (f *CardFlow) Focus(field domain.CardField) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current == CardFlowCollecting {
		f.focus = field
	}
}

func (f *CardFlow) Blur() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.focus = ""
}

// Reset abandons the flow and returns it to idle.
func (f *CardFlow) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	abandoned := f.current == CardFlowCollecting
	f.current = CardFlowIdle
	f.focus = ""
	f.lastErr = nil
	if abandoned {
		return domain.Abandoned("card entry cancelled")
	}
	return nil
}

// Submit tokenizes card, confirms a setup intent with it and makes it the
// default card, deleting the previous default first. It returns the new
// payment method id.
func (f *CardFlow) Submit(ctx context.Context, card domain.CardDetails) (string, error) {
	f.mu.Lock()
	if f.current != CardFlowCollecting {
		f.mu.Unlock()
		return "", domain.ErrInvalidFlowState
	}
	f.current = CardFlowSubmitting
	f.focus = ""
	f.lastErr = nil
	f.mu.Unlock()

	previous := f.state.Snapshot().DefaultCard

	paymentMethodID, next, err := f.submit(ctx, card, previous)

	f.mu.Lock()
	f.current = next
	f.lastErr = err
	f.mu.Unlock()

	f.notify(previous != nil, err)
	return paymentMethodID, err
}

func (f *CardFlow) submit(ctx context.Context, card domain.CardDetails, previous *domain.DefaultCard) (string, CardFlowState, error) {
	paymentMethodID, err := f.sdk.CreatePaymentMethod(ctx, card)
	if err != nil {
		f.logger.WithError(err).Warn("card tokenization failed")
		return "", CardFlowCollecting, domain.Wrap(domain.ErrCardInputsInvalid, err)
	}

	intent, err := f.api.CreateSetupIntent(ctx)
	if err != nil {
		f.logger.WithError(err).Error("create setup intent failed")
		return "", CardFlowCollecting, domain.Wrap(domain.ErrPaymentMethodAddFailed, err)
	}

	if err := f.sdk.ConfirmSetupIntent(ctx, intent.Secret, paymentMethodID); err != nil {
		f.logger.WithError(err).Error("confirm setup intent failed")
		return "", CardFlowCollecting, domain.Wrap(domain.ErrPaymentMethodAddFailed, err)
	}

	if previous != nil {
		if err := f.api.DeleteCard(ctx, previous.ID); err != nil {
			f.logger.WithError(err).WithField("card", previous.ID).Error("delete previous default card failed")
			return "", CardFlowCollecting, domain.Wrap(domain.ErrPaymentMethodAddFailed, err)
		}
	}

	if err := f.api.SetDefaultCard(ctx, paymentMethodID); err != nil {
		f.logger.WithError(err).WithField("payment_method", paymentMethodID).Error("set default card failed")
		if previous != nil {
			// The previous card is gone; the account has no default card
			// until the flow is reset and run again.
			return "", CardFlowError, domain.Wrap(domain.ErrPaymentMethodAddFailed, err)
		}
		return "", CardFlowCollecting, domain.Wrap(domain.ErrPaymentMethodAddFailed, err)
	}

	if err := f.state.RefreshDefaultCard(ctx); err != nil {
		f.logger.WithError(err).Warn("default card refresh after update failed")
	}

	return paymentMethodID, CardFlowSuccess, nil
}

func (f *CardFlow) notify(isUpdate bool, err error) {
	if f.notifier == nil {
		return
	}

	if err != nil {
		f.notifier.Notify(domain.Notification{Kind: domain.NotificationError, Title: FormatError(err)})
		return
	}

	title := "Card added"
	if isUpdate {
		title = "Card updated"
	}
	f.notifier.Notify(domain.Notification{Kind: domain.NotificationSuccess, Title: title})
}
