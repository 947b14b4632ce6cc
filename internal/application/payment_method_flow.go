package application

import (
	"context"
	"fmt"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

type PaymentPath string

const (
	PaymentPathFree   PaymentPath = "free"
	PaymentPathCard   PaymentPath = "card"
	PaymentPathCrypto PaymentPath = "crypto"
)

type PaymentOutcome struct {
	Path         PaymentPath
	Subscription *domain.Subscription
	Crypto       *domain.CryptoSession
}

// PaymentMethodFlow applies a chosen plan price through the card path, the
// crypto path, or directly when the price is free.
type PaymentMethodFlow struct {
	api    ports.BillingAPI
	state  *BillingState
	crypto *CryptoFlow
	logger *logrus.Logger
}

func NewPaymentMethodFlow(api ports.BillingAPI, state *BillingState, crypto *CryptoFlow, logger *logrus.Logger) *PaymentMethodFlow {
	if logger == nil {
		logger = discardLogger()
	}

	return &PaymentMethodFlow{api: api, state: state, crypto: crypto, logger: logger}
}

func (f *PaymentMethodFlow) Apply(ctx context.Context, cmd ChangePlanCommand) (PaymentOutcome, error) {
	if cmd.Choice.Price.IsFree() && cmd.Method == "" {
		cmd.Method = PaymentChoiceCard
	}
	if err := validateCommand(cmd); err != nil {
		return PaymentOutcome{}, err
	}

	snapshot := f.state.Snapshot()
	if snapshot.Subscription == nil {
		return PaymentOutcome{}, domain.ErrNoSubscription
	}

	if cmd.Choice.Price.IsFree() {
		update := domain.SubscriptionUpdate{PriceID: cmd.Choice.Price.ID}
		if err := f.updateSubscription(ctx, snapshot.Subscription.ID, update); err != nil {
			return PaymentOutcome{}, err
		}
		return PaymentOutcome{Path: PaymentPathFree, Subscription: f.state.Snapshot().Subscription}, nil
	}

	switch cmd.Method {
	case PaymentChoiceCrypto:
		session, err := f.crypto.Start(ctx, StartCryptoCommand{Price: &cmd.Choice.Price})
		if err != nil {
			return PaymentOutcome{}, err
		}
		return PaymentOutcome{Path: PaymentPathCrypto, Subscription: f.state.Snapshot().Subscription, Crypto: &session}, nil
	default:
		if snapshot.DefaultCard == nil {
			return PaymentOutcome{}, domain.ErrNoDefaultCard
		}
		update := domain.SubscriptionUpdate{PriceID: cmd.Choice.Price.ID, PaymentMethod: domain.PaymentMethodStripe}
		if err := f.updateSubscription(ctx, snapshot.Subscription.ID, update); err != nil {
			return PaymentOutcome{}, err
		}
		return PaymentOutcome{Path: PaymentPathCard, Subscription: f.state.Snapshot().Subscription}, nil
	}
}

func (f *PaymentMethodFlow) updateSubscription(ctx context.Context, subscriptionID string, update domain.SubscriptionUpdate) error {
	if err := f.api.UpdateSubscription(ctx, subscriptionID, update); err != nil {
		f.logger.WithError(err).WithFields(logrus.Fields{
			"subscription": subscriptionID,
			"price":        update.PriceID,
		}).Error("update subscription failed")
		return fmt.Errorf("update subscription: %w", err)
	}

	if err := f.state.RefreshSubscription(ctx); err != nil {
		return err
	}

	return f.state.RefreshInvoices(ctx)
}
