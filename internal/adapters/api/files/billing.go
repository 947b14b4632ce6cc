package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/bnema/files-billing-cli/internal/domain"
)

var errInvoicePDFTooLarge = errors.New("invoice pdf exceeds size limit")

func (c *Client) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	var products []productDTO
	if err := c.do(ctx, http.MethodGet, "billing/products", nil, &products); err != nil {
		return nil, err
	}

	plans := make([]domain.Plan, 0, len(products))
	for _, product := range products {
		plans = append(plans, product.toDomain())
	}
	return plans, nil
}

func (c *Client) GetSubscription(ctx context.Context) (*domain.Subscription, error) {
	var payload subscriptionDTO
	if err := c.do(ctx, http.MethodGet, "billing/subscription", nil, &payload); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	subscription := payload.toDomain()
	return &subscription, nil
}

func (c *Client) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var payload []invoiceDTO
	if err := c.do(ctx, http.MethodGet, "billing/invoices", nil, &payload); err != nil {
		return nil, err
	}

	invoices := make([]domain.Invoice, 0, len(payload))
	for _, invoice := range payload {
		invoices = append(invoices, invoice.toDomain())
	}
	return invoices, nil
}

func (c *Client) PayInvoice(ctx context.Context, invoiceUUID string) (domain.InvoicePayment, error) {
	var payload invoicePaymentDTO
	if err := c.do(ctx, http.MethodPost, invoicePath(invoiceUUID, "pay"), nil, &payload); err != nil {
		return domain.InvoicePayment{}, err
	}

	if payload.UUID == "" {
		payload.UUID = invoiceUUID
	}
	payment := domain.InvoicePayment{UUID: payload.UUID}
	if payload.Crypto != nil {
		crypto, err := payload.Crypto.toDomain(payload.UUID)
		if err != nil {
			return domain.InvoicePayment{}, fmt.Errorf("decode crypto payment: %w", err)
		}
		payment.Crypto = &crypto
	}

	return payment, nil
}

func (c *Client) DownloadInvoice(ctx context.Context, invoiceUUID string, w io.Writer) error {
	resp, cancel, err := c.send(ctx, http.MethodGet, invoicePath(invoiceUUID, "pdf"), nil)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = resp.Body.Close() }()

	n, err := io.Copy(w, io.LimitReader(resp.Body, maxInvoicePDF+1))
	if err != nil {
		return fmt.Errorf("copy invoice pdf: %w", err)
	}
	if n > maxInvoicePDF {
		return errInvoicePDFTooLarge
	}

	return nil
}

func (c *Client) UpdateSubscription(ctx context.Context, subscriptionID string, update domain.SubscriptionUpdate) error {
	body := updateSubscriptionRequest{PriceID: update.PriceID, PaymentMethod: string(update.PaymentMethod)}
	return c.do(ctx, http.MethodPatch, "billing/subscriptions/"+url.PathEscape(subscriptionID), body, nil)
}

func (c *Client) CreateSetupIntent(ctx context.Context) (domain.SetupIntent, error) {
	var payload setupIntentDTO
	if err := c.do(ctx, http.MethodPost, "billing/cards/setup-intent", nil, &payload); err != nil {
		return domain.SetupIntent{}, err
	}
	if payload.Secret == "" {
		return domain.SetupIntent{}, domain.RemoteCallFailure("", "setup intent response missing secret", nil)
	}

	return domain.SetupIntent{Secret: payload.Secret}, nil
}

func (c *Client) GetDefaultCard(ctx context.Context) (*domain.DefaultCard, error) {
	var payload cardDTO
	if err := c.do(ctx, http.MethodGet, "billing/cards/default", nil, &payload); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if payload.ID == "" {
		return nil, nil
	}

	card := payload.toDomain()
	return &card, nil
}

func (c *Client) SetDefaultCard(ctx context.Context, paymentMethodID string) error {
	return c.do(ctx, http.MethodPut, "billing/cards/default", setDefaultCardRequest{PaymentMethodID: paymentMethodID}, nil)
}

func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	return c.do(ctx, http.MethodDelete, "billing/cards/"+url.PathEscape(cardID), nil, nil)
}

func invoicePath(invoiceUUID, action string) string {
	return "billing/invoices/" + url.PathEscape(invoiceUUID) + "/" + action
}
