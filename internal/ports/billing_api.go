package ports

import (
	"context"
	"io"

	"github.com/bnema/files-billing-cli/internal/domain"
)

// BillingAPI is the remote billing backend. GetSubscription and
// GetDefaultCard return nil without error when the account has none.
type BillingAPI interface {
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	GetSubscription(ctx context.Context) (*domain.Subscription, error)
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	PayInvoice(ctx context.Context, invoiceUUID string) (domain.InvoicePayment, error)
	DownloadInvoice(ctx context.Context, invoiceUUID string, w io.Writer) error
	UpdateSubscription(ctx context.Context, subscriptionID string, update domain.SubscriptionUpdate) error
	CreateSetupIntent(ctx context.Context) (domain.SetupIntent, error)
	GetDefaultCard(ctx context.Context) (*domain.DefaultCard, error)
	SetDefaultCard(ctx context.Context, paymentMethodID string) error
	DeleteCard(ctx context.Context, cardID string) error
}
