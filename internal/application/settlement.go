package application

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

type SettlementPath string

const (
	SettlementCardConfirmation SettlementPath = "card_confirmation"
	SettlementCrypto           SettlementPath = "crypto"
)

type Settlement struct {
	Invoice domain.Invoice
	Path    SettlementPath
	Actions []domain.InvoiceAction
}

// InvoiceSettlement works only on the currently known invoice list; it never
// fetches an invoice on its own.
type InvoiceSettlement struct {
	api    ports.BillingAPI
	state  *BillingState
	logger *logrus.Logger
}

func NewInvoiceSettlement(api ports.BillingAPI, state *BillingState, logger *logrus.Logger) *InvoiceSettlement {
	if logger == nil {
		logger = discardLogger()
	}

	return &InvoiceSettlement{api: api, state: state, logger: logger}
}

func (s *InvoiceSettlement) Resolve(cmd InvoiceCommand) (Settlement, error) {
	if err := validateCommand(cmd); err != nil {
		return Settlement{}, err
	}

	invoice, ok := domain.FindInvoice(s.state.Snapshot().Invoices, cmd.InvoiceUUID)
	if !ok {
		return Settlement{}, domain.ErrInvoiceNotFound
	}

	path := SettlementCardConfirmation
	if invoice.IsCrypto() {
		path = SettlementCrypto
	}

	return Settlement{Invoice: invoice, Path: path, Actions: invoice.Actions()}, nil
}

// Pay settles a card invoice and returns it as re-fetched afterwards.
func (s *InvoiceSettlement) Pay(ctx context.Context, cmd InvoiceCommand) (domain.Invoice, error) {
	settlement, err := s.Resolve(cmd)
	if err != nil {
		return domain.Invoice{}, err
	}
	if settlement.Path == SettlementCrypto {
		return domain.Invoice{}, domain.ErrCryptoInvoice
	}
	if !settlement.Invoice.Allows(domain.InvoiceActionPay) {
		return domain.Invoice{}, domain.ValidationError("invoice", fmt.Sprintf("invoice is %s, only open invoices can be paid", settlement.Invoice.Status))
	}

	if _, err := s.api.PayInvoice(ctx, settlement.Invoice.UUID); err != nil {
		s.logger.WithError(err).WithField("invoice", settlement.Invoice.UUID).Error("pay invoice failed")
		return domain.Invoice{}, fmt.Errorf("pay invoice: %w", err)
	}

	if err := s.state.RefreshInvoices(ctx); err != nil {
		return settlement.Invoice, err
	}

	if refreshed, ok := domain.FindInvoice(s.state.Snapshot().Invoices, settlement.Invoice.UUID); ok {
		return refreshed, nil
	}
	return settlement.Invoice, nil
}

// Download streams the PDF of a paid invoice into w.
func (s *InvoiceSettlement) Download(ctx context.Context, cmd InvoiceCommand, w io.Writer) error {
	settlement, err := s.Resolve(cmd)
	if err != nil {
		return err
	}
	if !settlement.Invoice.Allows(domain.InvoiceActionDownload) {
		return domain.ValidationError("invoice", "only paid invoices can be downloaded")
	}

	if err := s.api.DownloadInvoice(ctx, settlement.Invoice.UUID, w); err != nil {
		s.logger.WithError(err).WithField("invoice", settlement.Invoice.UUID).Error("download invoice failed")
		return fmt.Errorf("download invoice: %w", err)
	}

	return nil
}

// Lines lists the known invoices with their actions. A positive limit keeps
// only the first limit lines.
func (s *InvoiceSettlement) Lines(limit int) []InvoiceLine {
	invoices := s.state.Snapshot().Invoices
	if limit > 0 && len(invoices) > limit {
		invoices = invoices[:limit]
	}

	lines := make([]InvoiceLine, 0, len(invoices))
	for _, invoice := range invoices {
		lines = append(lines, InvoiceLine{Invoice: invoice, Actions: invoice.Actions()})
	}
	return lines
}
