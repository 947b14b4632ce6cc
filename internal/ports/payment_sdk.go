package ports

import (
	"context"

	"github.com/bnema/files-billing-cli/internal/domain"
)

type PaymentSDK interface {
	CreatePaymentMethod(ctx context.Context, card domain.CardDetails) (string, error)
	ConfirmSetupIntent(ctx context.Context, clientSecret string, paymentMethodID string) error
}
