package toml

import (
	"fmt"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	billingSchemaVersion = 1
	cryptoSchemaVersion  = 1
)

func validateVersion(label string, version, current int) error {
	if version > current {
		return fmt.Errorf("unsupported %s schema version %d (current %d)", label, version, current)
	}
	return nil
}

type billingFileSchema struct {
	Version      int                 `toml:"version"`
	RefreshedAt  string              `toml:"refreshed_at,omitempty"`
	Subscription *subscriptionSchema `toml:"subscription,omitempty"`
	DefaultCard  *cardSchema         `toml:"default_card,omitempty"`
	Invoices     []invoiceSchema     `toml:"invoices"`
}

type priceSchema struct {
	ID            string `toml:"id"`
	UnitAmount    string `toml:"unit_amount"`
	Currency      string `toml:"currency"`
	Interval      string `toml:"interval,omitempty"`
	IntervalCount int    `toml:"interval_count,omitempty"`
}

type productSchema struct {
	ID          string        `toml:"id"`
	Name        string        `toml:"name"`
	Description string        `toml:"description,omitempty"`
	Prices      []priceSchema `toml:"prices,omitempty"`
}

type subscriptionSchema struct {
	ID      string        `toml:"id"`
	Status  string        `toml:"status"`
	Product productSchema `toml:"product"`
	Price   priceSchema   `toml:"price"`
}

type cardSchema struct {
	ID       string `toml:"id"`
	Brand    string `toml:"brand,omitempty"`
	LastFour string `toml:"last_four,omitempty"`
	ExpMonth int    `toml:"exp_month,omitempty"`
	ExpYear  int    `toml:"exp_year,omitempty"`
}

type invoiceSchema struct {
	UUID          string               `toml:"uuid"`
	Amount        string               `toml:"amount"`
	Currency      string               `toml:"currency"`
	Status        string               `toml:"status"`
	PaymentMethod string               `toml:"payment_method"`
	PeriodStart   string               `toml:"period_start,omitempty"`
	Product       invoiceProductSchema `toml:"product"`
}

type invoiceProductSchema struct {
	ID    string      `toml:"id"`
	Name  string      `toml:"name"`
	Price priceSchema `toml:"price"`
}

type cryptoFileSchema struct {
	Version  int                   `toml:"version"`
	Sessions []cryptoSessionSchema `toml:"sessions"`
}

type cryptoSessionSchema struct {
	InvoiceUUID string               `toml:"invoice_uuid"`
	Selected    string               `toml:"selected,omitempty"`
	ExpiresAt   string               `toml:"expires_at"`
	FetchedAt   string               `toml:"fetched_at"`
	UpdatedAt   string               `toml:"updated_at"`
	Methods     []cryptoMethodSchema `toml:"methods"`
}

type cryptoMethodSchema struct {
	Currency  string `toml:"currency"`
	Address   string `toml:"address"`
	Amount    string `toml:"amount"`
	ExpiresAt string `toml:"expires_at"`
}

func toPriceSchema(price domain.Price) priceSchema {
	return priceSchema{
		ID:            price.ID,
		UnitAmount:    price.UnitAmount.String(),
		Currency:      price.Currency,
		Interval:      string(price.Recurring.Interval),
		IntervalCount: price.Recurring.IntervalCount,
	}
}

func fromPriceSchema(entry priceSchema) (domain.Price, error) {
	amount, err := parseDecimal(entry.UnitAmount, "price unit amount")
	if err != nil {
		return domain.Price{}, err
	}

	return domain.Price{
		ID:         entry.ID,
		UnitAmount: amount,
		Currency:   entry.Currency,
		Recurring: domain.Recurring{
			Interval:      domain.Interval(entry.Interval),
			IntervalCount: entry.IntervalCount,
		},
	}, nil
}

func parseDecimal(value, field string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse %s: %w", field, err)
	}
	return parsed, nil
}
