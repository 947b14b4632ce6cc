package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusOpen InvoiceStatus = "open"
	InvoiceStatusPaid InvoiceStatus = "paid"
	InvoiceStatusVoid InvoiceStatus = "void"
)

type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodCrypto PaymentMethod = "crypto"
)

type InvoiceAction string

const (
	InvoiceActionPay      InvoiceAction = "pay"
	InvoiceActionDownload InvoiceAction = "download"
)

type InvoiceProduct struct {
	ID    string
	Name  string
	Price Price
}

// Invoice is immutable once fetched. Status changes only by re-fetching.
type Invoice struct {
	UUID          string
	Amount        decimal.Decimal
	Currency      string
	Status        InvoiceStatus
	PaymentMethod PaymentMethod
	PeriodStart   time.Time
	Product       InvoiceProduct
}

func (i Invoice) Actions() []InvoiceAction {
	switch i.Status {
	case InvoiceStatusOpen:
		return []InvoiceAction{InvoiceActionPay}
	case InvoiceStatusPaid:
		return []InvoiceAction{InvoiceActionDownload}
	default:
		return nil
	}
}

func (i Invoice) Allows(action InvoiceAction) bool {
	for _, candidate := range i.Actions() {
		if candidate == action {
			return true
		}
	}
	return false
}

func (i Invoice) IsCrypto() bool {
	return i.PaymentMethod == PaymentMethodCrypto
}

func (i Invoice) AmountLabel() string {
	return fmt.Sprintf("%s %s", i.Amount.StringFixed(2), strings.ToUpper(i.Currency))
}

func FindInvoice(invoices []Invoice, uuid string) (Invoice, bool) {
	for _, invoice := range invoices {
		if invoice.UUID == uuid {
			return invoice, true
		}
	}
	return Invoice{}, false
}

func PendingCryptoInvoice(invoices []Invoice) (Invoice, bool) {
	for _, invoice := range invoices {
		if invoice.IsCrypto() && invoice.Status == InvoiceStatusOpen {
			return invoice, true
		}
	}
	return Invoice{}, false
}

// InvoicePayment is the pay-invoice response. Crypto is set only for crypto
// invoices.
type InvoicePayment struct {
	UUID   string
	Crypto *CryptoPayment
}
