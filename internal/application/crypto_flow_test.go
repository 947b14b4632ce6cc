package application

import (
	"context"
	"errors"
	"testing"
	"time"

	tomlrepo "github.com/bnema/files-billing-cli/internal/adapters/repo/toml"
	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cryptoFlowFixture struct {
	flow     *CryptoFlow
	api      *mocks.MockBillingAPI
	wallet   *mocks.MockWalletProvider
	state    *BillingState
	sessions *tomlrepo.CryptoSessionRepository
	clock    *fixedClock
	hook     *logrustest.Hook
}

func newCryptoFlowFixture(t *testing.T, snapshot domain.BillingSnapshot) cryptoFlowFixture {
	t.Helper()

	api := mocks.NewMockBillingAPI(t)
	wallet := mocks.NewMockWalletProvider(t)
	repo := newStateRepo(t)
	sessions := newSessionRepo(t)
	clock := newFixedClock(testNow)
	logger, hook := newTestLogger()
	state := NewBillingState(api, repo, clock, logger)
	seedState(t, state, repo, snapshot)

	flow := NewCryptoFlow(api, wallet, state, sessions, clock, logger, CryptoFlowConfig{
		RequiredNetwork: domain.MainnetNetworkID,
		TickInterval:    5 * time.Millisecond,
	})

	return cryptoFlowFixture{flow: flow, api: api, wallet: wallet, state: state, sessions: sessions, clock: clock, hook: hook}
}

func pendingCryptoInvoice() domain.Invoice {
	return domain.Invoice{
		UUID:          "inv-crypto",
		Amount:        decimal.RequireFromString("4.99"),
		Currency:      "usd",
		Status:        domain.InvoiceStatusOpen,
		PaymentMethod: domain.PaymentMethodCrypto,
	}
}

func cryptoPayment() *domain.CryptoPayment {
	expiresAt := testNow.Add(30 * time.Minute)
	return &domain.CryptoPayment{
		ExpiresAt: expiresAt,
		Methods: []domain.CryptoPaymentMethod{
			{Currency: domain.CurrencyBitcoin, Address: "bc1qxyz", Amount: decimal.RequireFromString("0.0001"), ExpiresAt: expiresAt},
			{Currency: domain.CurrencyEthereum, Address: "0xeth", Amount: decimal.RequireFromString("0.4"), ExpiresAt: expiresAt},
			{Currency: domain.CurrencyDAI, Address: "0xdai", Amount: decimal.RequireFromString("4.99"), ExpiresAt: expiresAt},
		},
	}
}

// startedFixture returns a flow that already holds payment methods for the
// pending crypto invoice.
func startedFixture(t *testing.T) cryptoFlowFixture {
	t.Helper()

	f := newCryptoFlowFixture(t, domain.BillingSnapshot{
		Subscription: freeSubscription(),
		Invoices:     []domain.Invoice{pendingCryptoInvoice()},
	})
	f.api.EXPECT().PayInvoice(mockAnyContext(), "inv-crypto").Return(domain.InvoicePayment{UUID: "inv-crypto", Crypto: cryptoPayment()}, nil).Once()

	_, err := f.flow.Start(context.Background(), StartCryptoCommand{})
	require.NoError(t, err)
	return f
}

func selectCurrency(t *testing.T, f cryptoFlowFixture, currency domain.Currency) {
	t.Helper()
	require.NoError(t, f.flow.SelectCurrency(context.Background(), SelectCurrencyCommand{Currency: currency}))
}

func TestCryptoFlowStartWithPendingInvoicePaysIt(t *testing.T) {
	f := startedFixture(t)

	session := f.flow.Session()
	assert.Equal(t, "inv-crypto", session.InvoiceUUID)
	assert.Len(t, session.Payment.Methods, 3)
	assert.Equal(t, CryptoNoCurrencySelected, f.flow.State())

	stored, err := f.sessions.GetByInvoice(context.Background(), "inv-crypto")
	require.NoError(t, err)
	assert.Len(t, stored.Payment.Methods, 3)
}

func TestCryptoFlowStartCreatesChargeWhenNothingPending(t *testing.T) {
	f := newCryptoFlowFixture(t, domain.BillingSnapshot{Subscription: freeSubscription()})
	plan := proPlan()

	f.api.EXPECT().UpdateSubscription(mockAnyContext(), "sub-1", domain.SubscriptionUpdate{
		PriceID:       "pro-month",
		PaymentMethod: domain.PaymentMethodCrypto,
	}).Return(nil).Once()
	f.api.EXPECT().GetSubscription(mockAnyContext()).Return(&domain.Subscription{ID: "sub-1", Product: plan, Price: plan.Prices[0]}, nil).Once()
	f.api.EXPECT().ListInvoices(mockAnyContext()).Return([]domain.Invoice{pendingCryptoInvoice()}, nil).Once()
	f.api.EXPECT().PayInvoice(mockAnyContext(), "inv-crypto").Return(domain.InvoicePayment{UUID: "inv-crypto", Crypto: cryptoPayment()}, nil).Once()

	session, err := f.flow.Start(context.Background(), StartCryptoCommand{Price: &plan.Prices[0]})
	require.NoError(t, err)
	assert.Equal(t, "inv-crypto", session.InvoiceUUID)
	assert.Equal(t, "pro", f.state.Snapshot().Subscription.Product.ID)
}

func TestCryptoFlowStartSkipsChargeWhenInvoicePending(t *testing.T) {
	f := newCryptoFlowFixture(t, domain.BillingSnapshot{
		Subscription: freeSubscription(),
		Invoices:     []domain.Invoice{pendingCryptoInvoice()},
	})
	price := proPlan().Prices[0]
	f.api.EXPECT().PayInvoice(mockAnyContext(), "inv-crypto").Return(domain.InvoicePayment{UUID: "inv-crypto", Crypto: cryptoPayment()}, nil).Once()

	_, err := f.flow.Start(context.Background(), StartCryptoCommand{Price: &price})
	require.NoError(t, err)
	f.api.AssertNotCalled(t, "UpdateSubscription", mock.Anything, mock.Anything, mock.Anything)
}

func TestCryptoFlowStartChargeFailure(t *testing.T) {
	f := newCryptoFlowFixture(t, domain.BillingSnapshot{Subscription: freeSubscription()})
	price := proPlan().Prices[0]
	f.api.EXPECT().UpdateSubscription(mockAnyContext(), "sub-1", mock.Anything).Return(errors.New("declined")).Once()

	_, err := f.flow.Start(context.Background(), StartCryptoCommand{Price: &price})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCreateChargeFailed)
	assert.Equal(t, "There was a problem creating a charge", FormatError(err))
	assert.Equal(t, logrus.ErrorLevel, f.hook.LastEntry().Level)
}

func TestCryptoFlowStartWithoutPendingInvoice(t *testing.T) {
	f := newCryptoFlowFixture(t, domain.BillingSnapshot{
		Invoices: []domain.Invoice{{UUID: "card", Status: domain.InvoiceStatusOpen, PaymentMethod: domain.PaymentMethodStripe}},
	})

	_, err := f.flow.Start(context.Background(), StartCryptoCommand{})
	assert.ErrorIs(t, err, domain.ErrNoPendingInvoice)

	_, err = f.flow.Start(context.Background(), StartCryptoCommand{InvoiceUUID: "missing"})
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)

	_, err = f.flow.Start(context.Background(), StartCryptoCommand{InvoiceUUID: "card"})
	assert.ErrorIs(t, err, domain.ErrNoPendingInvoice)
}

func TestCryptoFlowStartRejectsResponseWithoutMethods(t *testing.T) {
	f := newCryptoFlowFixture(t, domain.BillingSnapshot{Invoices: []domain.Invoice{pendingCryptoInvoice()}})
	f.api.EXPECT().PayInvoice(mockAnyContext(), "inv-crypto").Return(domain.InvoicePayment{UUID: "inv-crypto"}, nil).Once()

	_, err := f.flow.Start(context.Background(), StartCryptoCommand{})
	assert.ErrorIs(t, err, domain.ErrNoCryptoPayment)
}

func TestCryptoFlowSelectingTwiceKeepsOnlyLastCurrency(t *testing.T) {
	f := startedFixture(t)

	selectCurrency(t, f, domain.CurrencyEthereum)
	selectCurrency(t, f, domain.CurrencyDAI)

	assert.Equal(t, domain.CurrencyDAI, f.flow.Session().Selected)
	assert.Equal(t, CryptoCurrencySelected, f.flow.State())

	stored, err := f.sessions.GetByInvoice(context.Background(), "inv-crypto")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyDAI, stored.Selected)
}

func TestCryptoFlowSelectUnknownCurrency(t *testing.T) {
	f := startedFixture(t)

	err := f.flow.SelectCurrency(context.Background(), SelectCurrencyCommand{Currency: domain.CurrencyUSDC})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ValidationError("currency", ""))
	assert.Equal(t, CryptoNoCurrencySelected, f.flow.State())
}

func TestCryptoFlowBackClearsSelection(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyEthereum)

	require.NoError(t, f.flow.Back(context.Background()))

	assert.Equal(t, CryptoNoCurrencySelected, f.flow.State())
	assert.Equal(t, domain.InvoiceStatusOpen, f.state.Snapshot().Invoices[0].Status)
}

func TestCryptoFlowResumeRestoresSelection(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyEthereum)

	other := NewCryptoFlow(f.api, f.wallet, f.state, f.sessions, f.clock, nil, CryptoFlowConfig{})
	session, err := other.Resume(context.Background(), "inv-crypto")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyEthereum, session.Selected)
	assert.Equal(t, CryptoCurrencySelected, other.State())

	_, err = other.Resume(context.Background(), "unknown")
	assert.ErrorIs(t, err, domain.ErrNoActivePayment)
}

func TestCryptoFlowResumeRejectsExpiredSession(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyEthereum)
	f.clock.Advance(2 * time.Hour)

	other := NewCryptoFlow(f.api, f.wallet, f.state, f.sessions, f.clock, nil, CryptoFlowConfig{})
	_, err := other.Resume(context.Background(), "inv-crypto")
	assert.ErrorIs(t, err, domain.ErrPaymentExpired)

	err = other.SelectCurrency(context.Background(), SelectCurrencyCommand{Currency: domain.CurrencyBitcoin})
	assert.ErrorIs(t, err, domain.ErrNoActivePayment)
}

func TestCryptoFlowSelectCurrencyAfterExpiry(t *testing.T) {
	f := startedFixture(t)
	f.clock.Advance(30 * time.Minute)

	err := f.flow.SelectCurrency(context.Background(), SelectCurrencyCommand{Currency: domain.CurrencyEthereum})
	assert.ErrorIs(t, err, domain.ErrPaymentExpired)
	assert.Equal(t, CryptoNoCurrencySelected, f.flow.State())

	stored, err := f.sessions.GetByInvoice(context.Background(), "inv-crypto")
	require.NoError(t, err)
	assert.Empty(t, stored.Selected)
}

func TestCryptoFlowCountdownClampsAtZero(t *testing.T) {
	f := startedFixture(t)

	assert.Equal(t, 30*time.Minute, f.flow.Countdown())
	assert.InDelta(t, 50.0, f.flow.Progress(), 0.0001)

	f.clock.Advance(45 * time.Minute)
	assert.Equal(t, time.Duration(0), f.flow.Countdown())
	assert.Equal(t, 0.0, f.flow.Progress())
}

func TestCryptoFlowRunCountdownTicksUntilCancelled(t *testing.T) {
	f := startedFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	ticks := make(chan time.Duration, 16)
	done := make(chan error, 1)
	go func() {
		done <- f.flow.RunCountdown(ctx, func(remaining time.Duration) {
			select {
			case ticks <- remaining:
			default:
			}
		})
	}()

	select {
	case remaining := <-ticks:
		assert.Equal(t, 30*time.Minute, remaining)
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not tick")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not stop")
	}
}

func TestCryptoFlowNewSelectionDiscardsCountdown(t *testing.T) {
	f := startedFixture(t)

	started := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- f.flow.RunCountdown(context.Background(), func(time.Duration) {
			select {
			case started <- struct{}{}:
			default:
			}
		})
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not tick")
	}

	selectCurrency(t, f, domain.CurrencyEthereum)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, domain.ErrFlowReset)
		assert.Equal(t, domain.KindUserAbandoned, domain.KindOf(err))
	case <-time.After(2 * time.Second):
		t.Fatal("countdown survived a new selection")
	}
}

func TestCryptoFlowBalanceSufficientForNativeAsset(t *testing.T) {
	tests := []struct {
		name     string
		required string
		want     bool
	}{
		{name: "balance above required amount", required: "0.4", want: true},
		{name: "balance below required amount", required: "0.6", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expiresAt := testNow.Add(time.Hour)
			f := newCryptoFlowFixture(t, domain.BillingSnapshot{Invoices: []domain.Invoice{pendingCryptoInvoice()}})
			f.api.EXPECT().PayInvoice(mockAnyContext(), "inv-crypto").Return(domain.InvoicePayment{
				UUID: "inv-crypto",
				Crypto: &domain.CryptoPayment{ExpiresAt: expiresAt, Methods: []domain.CryptoPaymentMethod{
					{Currency: domain.CurrencyEthereum, Address: "0xeth", Amount: decimal.RequireFromString(tt.required), ExpiresAt: expiresAt},
				}},
			}, nil).Once()
			_, err := f.flow.Start(context.Background(), StartCryptoCommand{})
			require.NoError(t, err)
			selectCurrency(t, f, domain.CurrencyEthereum)

			f.wallet.EXPECT().NativeBalance(mockAnyContext()).Return(decimal.RequireFromString("0.5"), nil).Once()

			got, err := f.flow.BalanceSufficient(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCryptoFlowBalanceSufficientForToken(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyDAI)

	f.wallet.EXPECT().Tokens(mockAnyContext()).Return([]domain.Token{
		{Symbol: "DAI", Balance: decimal.RequireFromString("4.99")},
	}, nil).Once()

	got, err := f.flow.BalanceSufficient(context.Background())
	require.NoError(t, err)
	assert.True(t, got)
}

func TestCryptoFlowBitcoinIsNeverSufficientOrTransferable(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyBitcoin)

	got, err := f.flow.BalanceSufficient(context.Background())
	require.NoError(t, err)
	assert.False(t, got)

	_, err = f.flow.Transfer(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnsupportedTransfer)
}

func TestCryptoFlowTransferNativeAwaitsConfirmation(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyEthereum)

	f.wallet.EXPECT().Account(mockAnyContext()).Return("0xme", nil).Once()
	f.wallet.EXPECT().NetworkID(mockAnyContext()).Return(uint64(1), nil).Once()
	f.wallet.EXPECT().NativeBalance(mockAnyContext()).Return(decimal.RequireFromString("1"), nil).Once()
	f.wallet.EXPECT().TransferNative(mockAnyContext(), "0xeth", mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(decimal.RequireFromString("0.4"))
	})).Run(func(context.Context, string, decimal.Decimal) {
		assert.Equal(t, CryptoTransferring, f.flow.State())
	}).Return("0xhash", nil).Once()
	f.wallet.EXPECT().WaitConfirmed(mockAnyContext(), "0xhash").Return(nil).Once()

	hash, err := f.flow.Transfer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0xhash", hash)
	assert.Equal(t, CryptoCurrencySelected, f.flow.State())
}

func TestCryptoFlowTransferTokenUsesWalletToken(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyDAI)

	dai := domain.Token{Symbol: "DAI", Address: "0x6b17", Decimals: 18, Balance: decimal.RequireFromString("10")}
	f.wallet.EXPECT().Account(mockAnyContext()).Return("0xme", nil).Once()
	f.wallet.EXPECT().NetworkID(mockAnyContext()).Return(uint64(1), nil).Once()
	f.wallet.EXPECT().Tokens(mockAnyContext()).Return([]domain.Token{dai}, nil).Twice()
	f.wallet.EXPECT().TransferToken(mockAnyContext(), dai, "0xdai", mock.Anything).Return("0xtoken", nil).Once()
	f.wallet.EXPECT().WaitConfirmed(mockAnyContext(), "0xtoken").Return(nil).Once()

	hash, err := f.flow.Transfer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0xtoken", hash)
}

func TestCryptoFlowTransferFailureIsLoggedAndKeepsSelection(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyEthereum)

	f.wallet.EXPECT().Account(mockAnyContext()).Return("0xme", nil).Once()
	f.wallet.EXPECT().NetworkID(mockAnyContext()).Return(uint64(1), nil).Once()
	f.wallet.EXPECT().NativeBalance(mockAnyContext()).Return(decimal.RequireFromString("1"), nil).Once()
	f.wallet.EXPECT().TransferNative(mockAnyContext(), "0xeth", mock.Anything).Return("", errors.New("nonce too low")).Once()

	_, err := f.flow.Transfer(context.Background())
	require.Error(t, err)
	assert.Equal(t, CryptoCurrencySelected, f.flow.State())
	require.NotNil(t, f.hook.LastEntry())
	assert.Equal(t, "crypto transfer failed", f.hook.LastEntry().Message)
	f.wallet.AssertNotCalled(t, "WaitConfirmed", mock.Anything, mock.Anything)
}

func TestCryptoFlowTransferRequiresRightNetwork(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyEthereum)

	f.wallet.EXPECT().Account(mockAnyContext()).Return("0xme", nil).Once()
	f.wallet.EXPECT().NetworkID(mockAnyContext()).Return(uint64(137), nil).Once()

	_, err := f.flow.Transfer(context.Background())
	assert.ErrorIs(t, err, domain.ErrNetworkMismatch)
}

func TestCryptoFlowTransferWithoutWallet(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyEthereum)

	f.wallet.EXPECT().Account(mockAnyContext()).Return("", domain.ErrNoWalletConnected).Once()

	_, err := f.flow.Transfer(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoWalletConnected)
	assert.Equal(t, CryptoCurrencySelected, f.flow.State())
}

func TestCryptoFlowTransferInsufficientBalance(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyEthereum)

	f.wallet.EXPECT().Account(mockAnyContext()).Return("0xme", nil).Once()
	f.wallet.EXPECT().NetworkID(mockAnyContext()).Return(uint64(1), nil).Once()
	f.wallet.EXPECT().NativeBalance(mockAnyContext()).Return(decimal.RequireFromString("0.1"), nil).Once()

	_, err := f.flow.Transfer(context.Background())
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestCryptoFlowTransferAfterExpiry(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyEthereum)
	f.clock.Advance(31 * time.Minute)

	_, err := f.flow.Transfer(context.Background())
	assert.ErrorIs(t, err, domain.ErrPaymentExpired)
}

func TestCryptoFlowTransferWithoutSelection(t *testing.T) {
	f := startedFixture(t)

	_, err := f.flow.Transfer(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoCurrencySelected)
}

func TestCryptoFlowSwitchNetwork(t *testing.T) {
	f := startedFixture(t)

	f.wallet.EXPECT().SwitchNetwork(mockAnyContext(), uint64(1)).Return(nil).Once()
	f.wallet.EXPECT().NetworkID(mockAnyContext()).Return(uint64(1), nil).Once()

	ready, err := f.flow.SwitchNetwork(context.Background())
	require.NoError(t, err)
	assert.True(t, ready)
}

func TestCryptoFlowRefreshSettlesPaidInvoice(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyEthereum)

	open := pendingCryptoInvoice()
	paid := open
	paid.Status = domain.InvoiceStatusPaid

	f.api.EXPECT().ListInvoices(mockAnyContext()).Return([]domain.Invoice{open}, nil).Once()
	state, err := f.flow.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CryptoCurrencySelected, state)

	f.api.EXPECT().ListInvoices(mockAnyContext()).Return([]domain.Invoice{paid}, nil).Once()
	state, err = f.flow.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CryptoSettled, state)
	assert.Equal(t, CryptoSettled, f.flow.State())

	_, err = f.sessions.GetByInvoice(context.Background(), "inv-crypto")
	assert.ErrorIs(t, err, domain.ErrCryptoSessionNotFound)

	assert.ErrorIs(t, f.flow.Back(context.Background()), domain.ErrInvalidFlowState)
}

func TestCryptoFlowViewReportsWalletReadiness(t *testing.T) {
	f := startedFixture(t)
	selectCurrency(t, f, domain.CurrencyEthereum)

	f.wallet.EXPECT().Account(mockAnyContext()).Return("0xme", nil).Once()
	f.wallet.EXPECT().NetworkID(mockAnyContext()).Return(uint64(5), nil).Once()
	f.wallet.EXPECT().NativeBalance(mockAnyContext()).Return(decimal.RequireFromString("0.5"), nil).Once()

	view := f.flow.View(context.Background())
	assert.Equal(t, CryptoCurrencySelected, view.State)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "0xeth", view.Selected.Address)
	assert.True(t, view.WalletConnected)
	require.NotNil(t, view.NetworkReady)
	assert.False(t, *view.NetworkReady)
	require.NotNil(t, view.BalanceSufficient)
	assert.True(t, *view.BalanceSufficient)
	assert.Equal(t, 30*time.Minute, view.Remaining)
	assert.False(t, view.Expired)
}

func TestCryptoFlowWithoutWalletProvider(t *testing.T) {
	f := startedFixture(t)
	flow := NewCryptoFlow(f.api, nil, f.state, f.sessions, f.clock, nil, CryptoFlowConfig{})
	_, err := flow.Resume(context.Background(), "inv-crypto")
	require.NoError(t, err)
	require.NoError(t, flow.SelectCurrency(context.Background(), SelectCurrencyCommand{Currency: domain.CurrencyEthereum}))

	_, err = flow.Transfer(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoWalletConnected)

	view := flow.View(context.Background())
	assert.False(t, view.WalletConnected)
	assert.Nil(t, view.NetworkReady)
}
