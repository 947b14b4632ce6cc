package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceActionsByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status InvoiceStatus
		want   []InvoiceAction
	}{
		{name: "open invoice can be paid", status: InvoiceStatusOpen, want: []InvoiceAction{InvoiceActionPay}},
		{name: "paid invoice can be downloaded", status: InvoiceStatusPaid, want: []InvoiceAction{InvoiceActionDownload}},
		{name: "void invoice has no action", status: InvoiceStatusVoid, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice := Invoice{UUID: "inv-1", Status: tt.status}
			assert.Equal(t, tt.want, invoice.Actions())
		})
	}
}

func TestPaidInvoiceDoesNotAllowPay(t *testing.T) {
	invoice := Invoice{UUID: "inv-1", Status: InvoiceStatusPaid}

	assert.True(t, invoice.Allows(InvoiceActionDownload))
	assert.False(t, invoice.Allows(InvoiceActionPay))
}

func TestInvoiceAmountLabel(t *testing.T) {
	invoice := Invoice{Amount: decimal.RequireFromString("5"), Currency: "usd"}

	assert.Equal(t, "5.00 USD", invoice.AmountLabel())
}

func TestPendingCryptoInvoiceSkipsCardAndPaidInvoices(t *testing.T) {
	invoices := []Invoice{
		{UUID: "card", Status: InvoiceStatusOpen, PaymentMethod: PaymentMethodStripe},
		{UUID: "paid", Status: InvoiceStatusPaid, PaymentMethod: PaymentMethodCrypto},
		{UUID: "crypto", Status: InvoiceStatusOpen, PaymentMethod: PaymentMethodCrypto},
	}

	invoice, ok := PendingCryptoInvoice(invoices)
	require.True(t, ok)
	assert.Equal(t, "crypto", invoice.UUID)

	_, ok = PendingCryptoInvoice(invoices[:2])
	assert.False(t, ok)
}

func TestCountdownNeverNegative(t *testing.T) {
	expiresAt := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{name: "ten minutes left", now: expiresAt.Add(-10 * time.Minute), want: 10 * time.Minute},
		{name: "sub-second now is truncated", now: expiresAt.Add(-30*time.Second + 400*time.Millisecond), want: 30 * time.Second},
		{name: "at expiry", now: expiresAt, want: 0},
		{name: "past expiry", now: expiresAt.Add(time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := CryptoPaymentMethod{ExpiresAt: expiresAt}
			got := method.Countdown(tt.now)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, time.Duration(0))
		})
	}
}

func TestProgressPercentClamped(t *testing.T) {
	assert.InDelta(t, 50.0, ProgressPercent(30*time.Minute), 0.0001)
	assert.Equal(t, 100.0, ProgressPercent(2*time.Hour))
	assert.Equal(t, 0.0, ProgressPercent(-time.Minute))
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "09:05", FormatCountdown(9*time.Minute+5*time.Second))
	assert.Equal(t, "00:00", FormatCountdown(-time.Second))
	assert.Equal(t, "75:00", FormatCountdown(75*time.Minute))
}

func TestBalanceSufficient(t *testing.T) {
	tokens := []Token{
		{Symbol: "DAI", Balance: decimal.RequireFromString("10")},
		{Symbol: "USDC", Balance: decimal.RequireFromString("3.5")},
	}
	native := decimal.RequireFromString("0.5")

	tests := []struct {
		name     string
		currency Currency
		required string
		want     bool
	}{
		{name: "native balance above amount", currency: CurrencyEthereum, required: "0.4", want: true},
		{name: "native balance below amount", currency: CurrencyEthereum, required: "0.6", want: false},
		{name: "native balance equal to amount", currency: CurrencyEthereum, required: "0.5", want: false},
		{name: "token matched case-insensitively", currency: CurrencyDAI, required: "10", want: true},
		{name: "token balance too low", currency: CurrencyUSDC, required: "4", want: false},
		{name: "unknown token", currency: Currency("tether"), required: "1", want: false},
		{name: "bitcoin is never sufficient", currency: CurrencyBitcoin, required: "0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BalanceSufficient(tt.currency, decimal.RequireFromString(tt.required), native, tokens)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCryptoSessionSelectedMethod(t *testing.T) {
	expires := time.Unix(1_700_000_000, 0)
	session := CryptoSession{
		Payment: CryptoPayment{
			ExpiresAt: expires,
			Methods: []CryptoPaymentMethod{
				{Currency: CurrencyEthereum, Address: "0xabc", Amount: decimal.RequireFromString("0.1"), ExpiresAt: expires.Add(-time.Minute)},
			},
		},
	}

	_, ok := session.SelectedMethod()
	assert.False(t, ok)
	assert.Equal(t, expires, session.ExpiresAt())

	session.Selected = CurrencyEthereum
	method, ok := session.SelectedMethod()
	require.True(t, ok)
	assert.Equal(t, "0xabc", method.Address)
	assert.Equal(t, expires.Add(-time.Minute), session.ExpiresAt())
}

func TestCryptoSessionExpired(t *testing.T) {
	expires := time.Unix(1_700_000_000, 0)
	session := CryptoSession{Payment: CryptoPayment{ExpiresAt: expires}}

	assert.False(t, session.Expired(expires.Add(-time.Second)))
	assert.True(t, session.Expired(expires))
	assert.True(t, session.Expired(expires.Add(time.Hour)))
}

func TestPriceLabel(t *testing.T) {
	assert.Equal(t, "Free", Price{UnitAmount: decimal.Zero, Currency: "usd"}.Label())
	assert.Equal(t, "4.99 USD", Price{UnitAmount: decimal.RequireFromString("4.99"), Currency: "usd"}.Label())
}

func TestPlanPriceForInterval(t *testing.T) {
	plan := Plan{ID: "pro", Prices: []Price{
		{ID: "pro-month", Recurring: Recurring{Interval: IntervalMonth}},
		{ID: "pro-year", Recurring: Recurring{Interval: IntervalYear}},
	}}

	price, ok := plan.PriceFor(IntervalYear)
	require.True(t, ok)
	assert.Equal(t, "pro-year", price.ID)

	_, ok = Plan{ID: "free"}.PriceFor(IntervalMonth)
	assert.False(t, ok)
}

func TestErrorMatchesSentinelThroughWrapping(t *testing.T) {
	cause := errors.New("card number is incorrect")
	err := fmt.Errorf("submit card: %w", Wrap(ErrCardInputsInvalid, cause))

	assert.ErrorIs(t, err, ErrCardInputsInvalid)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrPaymentMethodAddFailed)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "card_inputs_invalid", CodeOf(err))
	assert.Equal(t, "submit card: Card inputs invalid", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	err := ValidationError("plan", "already on this plan")

	assert.Equal(t, "plan: already on this plan", err.Error())
	assert.ErrorIs(t, err, ValidationError("plan", ""))
	assert.NotErrorIs(t, err, ValidationError("interval", ""))
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	original := BillingSnapshot{
		Subscription: &Subscription{ID: "sub-1"},
		DefaultCard:  &DefaultCard{ID: "pm-1"},
		Invoices:     []Invoice{{UUID: "inv-1", Status: InvoiceStatusOpen}},
	}

	clone := original.Clone()
	clone.Subscription.ID = "changed"
	clone.DefaultCard.ID = "changed"
	clone.Invoices[0].Status = InvoiceStatusPaid

	assert.Equal(t, "sub-1", original.Subscription.ID)
	assert.Equal(t, "pm-1", original.DefaultCard.ID)
	assert.Equal(t, InvoiceStatusOpen, original.Invoices[0].Status)
	assert.True(t, original.HasPendingInvoice())
}
