package application

import (
	"time"

	"github.com/bnema/files-billing-cli/internal/domain"
)

type PlanOption struct {
	Plan    domain.Plan
	Monthly *domain.Price
	Yearly  *domain.Price
	Current bool
}

type PlanChoice struct {
	Plan  domain.Plan
	Price domain.Price
}

type InvoiceLine struct {
	Invoice domain.Invoice
	Actions []domain.InvoiceAction
}

// CryptoView is everything a terminal needs to draw the crypto payment
// panel at one instant. Wallet fields are nil when they could not be
// determined.
type CryptoView struct {
	State             CryptoFlowState
	Session           domain.CryptoSession
	Selected          *domain.CryptoPaymentMethod
	Remaining         time.Duration
	Progress          float64
	Expired           bool
	WalletConnected   bool
	NetworkReady      *bool
	BalanceSufficient *bool
}
