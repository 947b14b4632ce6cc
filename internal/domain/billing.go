package domain

import "time"

// BillingSnapshot is the currently known billing state of the account.
type BillingSnapshot struct {
	Subscription *Subscription
	Invoices     []Invoice
	DefaultCard  *DefaultCard
	RefreshedAt  time.Time
}

func (s BillingSnapshot) HasPendingInvoice() bool {
	for _, invoice := range s.Invoices {
		if invoice.Status == InvoiceStatusOpen {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can never mutate shared state.
func (s BillingSnapshot) Clone() BillingSnapshot {
	clone := BillingSnapshot{RefreshedAt: s.RefreshedAt}
	if s.Subscription != nil {
		sub := *s.Subscription
		sub.Product.Prices = append([]Price(nil), s.Subscription.Product.Prices...)
		clone.Subscription = &sub
	}
	if s.DefaultCard != nil {
		card := *s.DefaultCard
		clone.DefaultCard = &card
	}
	if s.Invoices != nil {
		clone.Invoices = append([]Invoice(nil), s.Invoices...)
	}
	return clone
}
