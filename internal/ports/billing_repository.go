package ports

import (
	"context"

	"github.com/bnema/files-billing-cli/internal/domain"
)

type BillingStateRepository interface {
	Load(ctx context.Context) (domain.BillingSnapshot, error)
	Save(ctx context.Context, snapshot domain.BillingSnapshot) error
}

type CryptoSessionRepository interface {
	GetByInvoice(ctx context.Context, invoiceUUID string) (domain.CryptoSession, error)
	Save(ctx context.Context, session domain.CryptoSession) error
	Delete(ctx context.Context, invoiceUUID string) error
}
