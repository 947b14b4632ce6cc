package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyBitcoin  Currency = "bitcoin"
	CurrencyEthereum Currency = "ethereum"
	CurrencyDAI      Currency = "dai"
	CurrencyUSDC     Currency = "usdc"
)

// PaymentWindow is the span the progress indicator is normalised to.
const PaymentWindow = time.Hour

func (c Currency) Symbol() string {
	switch c {
	case CurrencyBitcoin:
		return "BTC"
	case CurrencyEthereum:
		return "ETH"
	default:
		return strings.ToUpper(string(c))
	}
}

func (c Currency) Label() string {
	if c == "" {
		return ""
	}
	switch c {
	case CurrencyDAI, CurrencyUSDC:
		return strings.ToUpper(string(c))
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// SupportsInAppTransfer is false for chains without an in-app signer.
func (c Currency) SupportsInAppTransfer() bool {
	return c != CurrencyBitcoin
}

func (c Currency) IsNative() bool {
	return c == CurrencyEthereum
}

type CryptoPaymentMethod struct {
	Currency  Currency
	Address   string
	Amount    decimal.Decimal
	ExpiresAt time.Time
}

// Countdown is expires_at minus now in whole seconds, never negative.
func (m CryptoPaymentMethod) Countdown(now time.Time) time.Duration {
	return Countdown(m.ExpiresAt, now)
}

func (m CryptoPaymentMethod) Expired(now time.Time) bool {
	return !now.Before(m.ExpiresAt)
}

type CryptoPayment struct {
	InvoiceUUID string
	Methods     []CryptoPaymentMethod
	ExpiresAt   time.Time
}

func (p CryptoPayment) Method(currency Currency) (CryptoPaymentMethod, bool) {
	for _, method := range p.Methods {
		if method.Currency == currency {
			return method, true
		}
	}
	return CryptoPaymentMethod{}, false
}

func (p CryptoPayment) Currencies() []Currency {
	currencies := make([]Currency, 0, len(p.Methods))
	for _, method := range p.Methods {
		currencies = append(currencies, method.Currency)
	}
	return currencies
}

// CryptoSession is the persisted in-flight selection for one invoice.
type CryptoSession struct {
	InvoiceUUID string
	Payment     CryptoPayment
	Selected    Currency
	FetchedAt   time.Time
	UpdatedAt   time.Time
}

func (s CryptoSession) SelectedMethod() (CryptoPaymentMethod, bool) {
	if s.Selected == "" {
		return CryptoPaymentMethod{}, false
	}
	return s.Payment.Method(s.Selected)
}

// ExpiresAt is the selected method's expiry, falling back to the payment's.
func (s CryptoSession) ExpiresAt() time.Time {
	if method, ok := s.SelectedMethod(); ok && !method.ExpiresAt.IsZero() {
		return method.ExpiresAt
	}
	return s.Payment.ExpiresAt
}

// Expired reports whether the session's payment window has closed. An
// expired session needs a fresh invoice fetch.
func (s CryptoSession) Expired(now time.Time) bool {
	return !s.ExpiresAt().After(now)
}

func Countdown(expiresAt, now time.Time) time.Duration {
	remaining := expiresAt.Unix() - now.Unix()
	if remaining < 0 {
		return 0
	}
	return time.Duration(remaining) * time.Second
}

// ProgressPercent maps the remaining time onto PaymentWindow, clamped to
// [0, 100].
func ProgressPercent(remaining time.Duration) float64 {
	percent := remaining.Seconds() / PaymentWindow.Seconds() * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// FormatCountdown renders d as mm:ss.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
