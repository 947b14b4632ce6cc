package toml

import (
	"context"
	"fmt"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	billingPathKey  = "state.billing_path"
	billingFileName = "billing.toml"
)

type BillingStateRepository struct {
	file stateFile
}

var _ ports.BillingStateRepository = (*BillingStateRepository)(nil)

func NewBillingStateRepository(cfg *viper.Viper) (*BillingStateRepository, error) {
	file, err := openStateFile(cfg, billingPathKey, billingFileName, "billing")
	if err != nil {
		return nil, err
	}

	return &BillingStateRepository{file: file}, nil
}

// Load returns the persisted snapshot, or an empty one before the first
// save.
func (r *BillingStateRepository) Load(ctx context.Context) (domain.BillingSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.BillingSnapshot{}, err
	}

	r.file.mu.RLock()
	defer r.file.mu.RUnlock()

	var doc billingFileSchema
	if err := r.file.read(&doc); err != nil {
		return domain.BillingSnapshot{}, err
	}
	if err := validateVersion("billing", doc.Version, billingSchemaVersion); err != nil {
		return domain.BillingSnapshot{}, err
	}

	snapshot, err := fromBillingSchema(doc)
	if err != nil {
		return domain.BillingSnapshot{}, fmt.Errorf("decode billing state: %w", err)
	}
	return snapshot, nil
}

func (r *BillingStateRepository) Save(ctx context.Context, snapshot domain.BillingSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	return r.file.write(toBillingSchema(snapshot))
}

func toBillingSchema(snapshot domain.BillingSnapshot) billingFileSchema {
	doc := billingFileSchema{
		Version:     billingSchemaVersion,
		RefreshedAt: formatTime(snapshot.RefreshedAt),
		Invoices:    make([]invoiceSchema, 0, len(snapshot.Invoices)),
	}

	if sub := snapshot.Subscription; sub != nil {
		product := productSchema{ID: sub.Product.ID, Name: sub.Product.Name, Description: sub.Product.Description}
		for _, price := range sub.Product.Prices {
			product.Prices = append(product.Prices, toPriceSchema(price))
		}
		doc.Subscription = &subscriptionSchema{
			ID:      sub.ID,
			Status:  string(sub.Status),
			Product: product,
			Price:   toPriceSchema(sub.Price),
		}
	}

	if card := snapshot.DefaultCard; card != nil {
		doc.DefaultCard = &cardSchema{
			ID:       card.ID,
			Brand:    card.Brand,
			LastFour: card.LastFour,
			ExpMonth: card.ExpMonth,
			ExpYear:  card.ExpYear,
		}
	}

	for _, invoice := range snapshot.Invoices {
		doc.Invoices = append(doc.Invoices, invoiceSchema{
			UUID:          invoice.UUID,
			Amount:        invoice.Amount.String(),
			Currency:      invoice.Currency,
			Status:        string(invoice.Status),
			PaymentMethod: string(invoice.PaymentMethod),
			PeriodStart:   formatTime(invoice.PeriodStart),
			Product: invoiceProductSchema{
				ID:    invoice.Product.ID,
				Name:  invoice.Product.Name,
				Price: toPriceSchema(invoice.Product.Price),
			},
		})
	}

	return doc
}

func fromBillingSchema(doc billingFileSchema) (domain.BillingSnapshot, error) {
	refreshedAt, err := parseTime(doc.RefreshedAt, "refreshed_at")
	if err != nil {
		return domain.BillingSnapshot{}, err
	}
	snapshot := domain.BillingSnapshot{RefreshedAt: refreshedAt}

	if entry := doc.Subscription; entry != nil {
		price, err := fromPriceSchema(entry.Price)
		if err != nil {
			return domain.BillingSnapshot{}, err
		}
		sub := &domain.Subscription{
			ID:     entry.ID,
			Status: domain.SubscriptionStatus(entry.Status),
			Price:  price,
			Product: domain.Plan{
				ID:          entry.Product.ID,
				Name:        entry.Product.Name,
				Description: entry.Product.Description,
			},
		}
		for _, priceEntry := range entry.Product.Prices {
			productPrice, err := fromPriceSchema(priceEntry)
			if err != nil {
				return domain.BillingSnapshot{}, err
			}
			sub.Product.Prices = append(sub.Product.Prices, productPrice)
		}
		snapshot.Subscription = sub
	}

	if entry := doc.DefaultCard; entry != nil {
		snapshot.DefaultCard = &domain.DefaultCard{
			ID:       entry.ID,
			Brand:    entry.Brand,
			LastFour: entry.LastFour,
			ExpMonth: entry.ExpMonth,
			ExpYear:  entry.ExpYear,
		}
	}

	for _, entry := range doc.Invoices {
		amount, err := parseDecimal(entry.Amount, "invoice amount")
		if err != nil {
			return domain.BillingSnapshot{}, err
		}
		periodStart, err := parseTime(entry.PeriodStart, "invoice period_start")
		if err != nil {
			return domain.BillingSnapshot{}, err
		}
		price, err := fromPriceSchema(entry.Product.Price)
		if err != nil {
			return domain.BillingSnapshot{}, err
		}
		snapshot.Invoices = append(snapshot.Invoices, domain.Invoice{
			UUID:          entry.UUID,
			Amount:        amount,
			Currency:      entry.Currency,
			Status:        domain.InvoiceStatus(entry.Status),
			PaymentMethod: domain.PaymentMethod(entry.PaymentMethod),
			PeriodStart:   periodStart,
			Product: domain.InvoiceProduct{
				ID:    entry.Product.ID,
				Name:  entry.Product.Name,
				Price: price,
			},
		})
	}

	return snapshot, nil
}
