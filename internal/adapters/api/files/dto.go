package files

import (
	"fmt"
	"time"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/shopspring/decimal"
)

type recurringDTO struct {
	Interval      string `json:"interval"`
	IntervalCount int    `json:"interval_count"`
}

type priceDTO struct {
	ID         string          `json:"id"`
	UnitAmount decimal.Decimal `json:"unit_amount"`
	Currency   string          `json:"currency"`
	Recurring  recurringDTO    `json:"recurring"`
}

type productDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Prices      []priceDTO `json:"prices"`
}

type subscriptionDTO struct {
	ID      string     `json:"id"`
	Product productDTO `json:"product"`
	Price   priceDTO   `json:"price"`
	Status  string     `json:"status"`
}

type invoiceProductDTO struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price priceDTO `json:"price"`
}

type invoiceDTO struct {
	UUID          string            `json:"uuid"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	Status        string            `json:"status"`
	PaymentMethod string            `json:"payment_method"`
	PeriodStart   int64             `json:"period_start"`
	Product       invoiceProductDTO `json:"product"`
}

type cryptoMethodDTO struct {
	Currency  string `json:"currency"`
	Address   string `json:"address"`
	Amount    string `json:"amount"`
	ExpiresAt int64  `json:"expires_at"`
}

type cryptoPaymentDTO struct {
	ExpiresAt      int64             `json:"expires_at"`
	PaymentMethods []cryptoMethodDTO `json:"payment_methods"`
}

type invoicePaymentDTO struct {
	UUID   string            `json:"uuid"`
	Crypto *cryptoPaymentDTO `json:"crypto,omitempty"`
}

type setupIntentDTO struct {
	Secret string `json:"secret"`
}

type cardDTO struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	LastFour string `json:"last_four"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
}

type updateSubscriptionRequest struct {
	PriceID       string `json:"price_id"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

type setDefaultCardRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
}

func (p priceDTO) toDomain() domain.Price {
	return domain.Price{
		ID:         p.ID,
		UnitAmount: p.UnitAmount,
		Currency:   p.Currency,
		Recurring: domain.Recurring{
			Interval:      domain.Interval(p.Recurring.Interval),
			IntervalCount: p.Recurring.IntervalCount,
		},
	}
}

func (p productDTO) toDomain() domain.Plan {
	plan := domain.Plan{ID: p.ID, Name: p.Name, Description: p.Description}
	for _, price := range p.Prices {
		plan.Prices = append(plan.Prices, price.toDomain())
	}
	return plan
}

func (s subscriptionDTO) toDomain() domain.Subscription {
	return domain.Subscription{
		ID:      s.ID,
		Product: s.Product.toDomain(),
		Price:   s.Price.toDomain(),
		Status:  domain.SubscriptionStatus(s.Status),
	}
}

func (i invoiceDTO) toDomain() domain.Invoice {
	invoice := domain.Invoice{
		UUID:          i.UUID,
		Amount:        i.Amount,
		Currency:      i.Currency,
		Status:        domain.InvoiceStatus(i.Status),
		PaymentMethod: domain.PaymentMethod(i.PaymentMethod),
		Product: domain.InvoiceProduct{
			ID:    i.Product.ID,
			Name:  i.Product.Name,
			Price: i.Product.Price.toDomain(),
		},
	}
	if i.PeriodStart > 0 {
		invoice.PeriodStart = time.Unix(i.PeriodStart, 0).UTC()
	}
	return invoice
}

// toDomain converts the crypto block. A method without its own expiry
// inherits the payment's.
func (p cryptoPaymentDTO) toDomain(invoiceUUID string) (domain.CryptoPayment, error) {
	payment := domain.CryptoPayment{InvoiceUUID: invoiceUUID, ExpiresAt: unixTime(p.ExpiresAt)}

	for _, method := range p.PaymentMethods {
		amount, err := decimal.NewFromString(method.Amount)
		if err != nil {
			return domain.CryptoPayment{}, fmt.Errorf("parse %s amount %q: %w", method.Currency, method.Amount, err)
		}

		expiresAt := unixTime(method.ExpiresAt)
		if expiresAt.IsZero() {
			expiresAt = payment.ExpiresAt
		}

		payment.Methods = append(payment.Methods, domain.CryptoPaymentMethod{
			Currency:  domain.Currency(method.Currency),
			Address:   method.Address,
			Amount:    amount,
			ExpiresAt: expiresAt,
		})
	}

	return payment, nil
}

func (c cardDTO) toDomain() domain.DefaultCard {
	return domain.DefaultCard{
		ID:       c.ID,
		Brand:    c.Brand,
		LastFour: c.LastFour,
		ExpMonth: c.ExpMonth,
		ExpYear:  c.ExpYear,
	}
}

func unixTime(seconds int64) time.Time {
	if seconds <= 0 {
		return time.Time{}
	}
	return time.Unix(seconds, 0).UTC()
}
