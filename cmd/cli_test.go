package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "tok-123"

// fakeFilesAPI serves the billing endpoints from in-memory state.
type fakeFilesAPI struct {
	t *testing.T

	mu           sync.Mutex
	subscription string
	invoices     map[string]string
	order        []string
	card         string
	crypto       string
	updates      []string
	defaultCards []string
	deletedCards []string
	// delay slows the subscription endpoint so spinners get to draw a frame.
	delay time.Duration
}

func newFakeFilesAPI(t *testing.T) *fakeFilesAPI {
	t.Helper()

	api := &fakeFilesAPI{
		t:            t,
		subscription: `{"id":"sub-1","status":"active","product":{"id":"free","name":"Free"},"price":{"id":"free-month","unit_amount":"0","currency":"usd","recurring":{"interval":"month","interval_count":1}}}`,
		invoices:     map[string]string{},
		card:         `{"id":"card-1","brand":"visa","last_four":"4242","exp_month":12,"exp_year":2030}`,
	}
	api.addInvoice("inv-open", "open", "stripe")
	api.addInvoice("inv-paid", "paid", "stripe")
	return api
}

func (f *fakeFilesAPI) addInvoice(uuid, status, method string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.invoices[uuid]; !ok {
		f.order = append(f.order, uuid)
	}
	f.invoices[uuid] = fmt.Sprintf(`{"uuid":%q,"amount":"4.99","currency":"usd","status":%q,"payment_method":%q,"period_start":1767225600,"product":{"id":"pro","name":"Pro"}}`, uuid, status, method)
}

func (f *fakeFilesAPI) start() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /billing/products", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[
			{"id":"free","name":"Free","prices":[{"id":"free-month","unit_amount":"0","currency":"usd","recurring":{"interval":"month"}}]},
			{"id":"pro","name":"Pro","description":"1 TB","prices":[
				{"id":"pro-month","unit_amount":"4.99","currency":"usd","recurring":{"interval":"month"}},
				{"id":"pro-year","unit_amount":"49.99","currency":"usd","recurring":{"interval":"year"}}
			]}
		]`)
	})
	mux.HandleFunc("GET /billing/subscription", func(w http.ResponseWriter, _ *http.Request) {
		if f.delay > 0 {
			time.Sleep(f.delay)
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		_, _ = io.WriteString(w, f.subscription)
	})
	mux.HandleFunc("PATCH /billing/subscriptions/{id}", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.updates = append(f.updates, r.PathValue("id")+" "+string(body))
		f.subscription = `{"id":"sub-1","status":"active","product":{"id":"pro","name":"Pro"},"price":{"id":"pro-year","unit_amount":"49.99","currency":"usd","recurring":{"interval":"year"}}}`
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /billing/invoices", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		items := make([]string, 0, len(f.order))
		for _, uuid := range f.order {
			items = append(items, f.invoices[uuid])
		}
		_, _ = io.WriteString(w, "["+strings.Join(items, ",")+"]")
	})
	mux.HandleFunc("POST /billing/invoices/{uuid}/pay", func(w http.ResponseWriter, r *http.Request) {
		uuid := r.PathValue("uuid")
		f.mu.Lock()
		crypto := f.crypto
		f.mu.Unlock()
		if crypto != "" {
			_, _ = fmt.Fprintf(w, `{"uuid":%q,"crypto":%s}`, uuid, crypto)
			return
		}
		f.addInvoice(uuid, "paid", "stripe")
		_, _ = fmt.Fprintf(w, `{"uuid":%q}`, uuid)
	})
	mux.HandleFunc("GET /billing/invoices/{uuid}/pdf", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "%PDF-1.7 invoice")
	})
	mux.HandleFunc("POST /billing/cards/setup-intent", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"secret":"seti_1_secret_abc"}`)
	})
	mux.HandleFunc("GET /billing/cards/default", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.card == "" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":{"code":"not_found","message":"no card"}}`)
			return
		}
		_, _ = io.WriteString(w, f.card)
	})
	mux.HandleFunc("PUT /billing/cards/default", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PaymentMethodID string `json:"payment_method_id"`
		}
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
		f.mu.Lock()
		defer f.mu.Unlock()
		f.defaultCards = append(f.defaultCards, req.PaymentMethodID)
		f.card = fmt.Sprintf(`{"id":%q,"brand":"mastercard","last_four":"4444","exp_month":1,"exp_year":2031}`, req.PaymentMethodID)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("DELETE /billing/cards/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.deletedCards = append(f.deletedCards, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"code":"unauthorized","message":"bad token"}}`)
			return
		}
		assert.NotEmpty(f.t, r.Header.Get("X-Request-Id"))
		mux.ServeHTTP(w, r)
	}))
	f.t.Cleanup(server.Close)

	return server
}

func TestVersionSkipsConfigLoading(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FB_API_URL", "not a url")

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestInvalidConfigIsReported(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FB_API_URL", "not a url")

	_, _, err := executeCLI(t, home, "billing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestUnknownSecretsBackendIsRejected(t *testing.T) {
	home := setupHome(t, newFakeFilesAPI(t).start())
	t.Setenv("FB_SECRETS_BACKEND", "vault")

	_, _, err := executeCLI(t, home, "auth", "clear")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestAuthSetTokenRejectsBlankToken(t *testing.T) {
	home := setupHome(t, newFakeFilesAPI(t).start())

	_, _, err := executeCLI(t, home, "auth", "set-token", "--token", "   ")
	require.Error(t, err)
	assert.Equal(t, "token: is required", err.Error())
}

func TestAuthSetTokenReadsStdin(t *testing.T) {
	home := setupHome(t, newFakeFilesAPI(t).start())

	stdout, _, err := executeCLIWithInput(t, home, strings.NewReader(testToken+"\n"), "auth", "set-token")
	require.NoError(t, err)
	assert.Contains(t, stdout, "API token stored")

	stdout, _, err = executeCLI(t, home, "billing")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Plan: Free")
}

func TestBillingRequiresToken(t *testing.T) {
	home := setupHome(t, newFakeFilesAPI(t).start())

	_, _, err := executeCLI(t, home, "billing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestBillingShowsOverviewAndSpinner(t *testing.T) {
	api := newFakeFilesAPI(t)
	api.delay = 200 * time.Millisecond
	home := loggedInHome(t, api.start())

	stdout, stderr, err := executeCLI(t, home, "billing")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Plan: Free")
	assert.Contains(t, stdout, "card: visa •••• 4242 (12/30)")
	assert.Contains(t, stdout, "invoices: 2")
	assert.Contains(t, stdout, "(1 open)")
	assert.Contains(t, stderr, "Fetching billing state")
}

func TestBillingJSONOutput(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())

	stdout, _, err := executeCLI(t, home, "billing", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Subscription\"")
	assert.Contains(t, stdout, "\"UUID\": \"inv-open\"")
}

func TestAuthClearDropsCachedState(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())

	_, _, err := executeCLI(t, home, "billing")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "auth", "clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "API token removed")

	_, _, err = executeCLI(t, home, "billing")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestConfigFileProvidesAPIURL(t *testing.T) {
	server := newFakeFilesAPI(t).start()
	home := t.TempDir()
	t.Setenv("FB_SECRETS_BACKEND", "file")
	t.Setenv("FB_API_URL", "")
	writeConfig(t, home, fmt.Sprintf("[api]\nbase_url = %q\ntimeout = \"5s\"\n", server.URL))

	_, _, err := executeCLI(t, home, "auth", "set-token", "--token", testToken)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "plans")
	require.NoError(t, err)
	assert.Contains(t, stdout, "plans: 2")
}

func TestPlansMarksCurrentPlan(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())

	stdout, _, err := executeCLI(t, home, "plans")
	require.NoError(t, err)
	assert.Contains(t, stdout, "plans: 2")
	assert.Contains(t, stdout, "Free (free) Current plan")
	assert.Contains(t, stdout, "Pro (pro)")
	assert.Contains(t, stdout, "monthly: 4.99 USD")
	assert.Contains(t, stdout, "yearly:  49.99 USD")
}

func TestPlansSelectChargesDefaultCard(t *testing.T) {
	api := newFakeFilesAPI(t)
	home := loggedInHome(t, api.start())

	stdout, _, err := executeCLI(t, home, "plans", "select", "--plan", "pro", "--interval", "year", "--method", "card")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Subscribed to Pro, charged to the default card")
	assert.Equal(t, []string{`sub-1 {"price_id":"pro-year","payment_method":"stripe"}`}, api.updates)
}

func TestPlansSelectRequiresMethodForPaidPlan(t *testing.T) {
	api := newFakeFilesAPI(t)
	home := loggedInHome(t, api.start())

	_, _, err := executeCLI(t, home, "plans", "select", "--plan", "pro")
	require.Error(t, err)
	assert.Equal(t, "method: is required", err.Error())
	assert.Empty(t, api.updates)
}

func TestPlansSelectRejectsCurrentPlan(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())

	_, _, err := executeCLI(t, home, "plans", "select", "--plan", "free")
	require.Error(t, err)
	assert.Equal(t, "plan: already on this plan", err.Error())
}

func TestInvoicesListsActions(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())

	stdout, _, err := executeCLI(t, home, "invoices")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[Pay now]")
	assert.Contains(t, stdout, "[View PDF]")
	assert.Contains(t, stdout, "4.99 USD")

	stdout, _, err = executeCLI(t, home, "invoices", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[Pay now]")
	assert.NotContains(t, stdout, "[View PDF]")
}

func TestInvoicesRejectsNegativeLimit(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())

	_, _, err := executeCLI(t, home, "invoices", "--limit", "-1")
	require.Error(t, err)
	assert.Equal(t, "limit: must be at least 0", err.Error())
}

func TestInvoicesPayByCard(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())

	stdout, _, err := executeCLI(t, home, "invoices", "pay", "--invoice", "inv-open")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Invoice inv-open: paid (4.99 USD)")
}

func TestInvoicesPayUnknownInvoice(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())

	_, _, err := executeCLI(t, home, "invoices", "pay", "--invoice", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestInvoicesDownloadWritesFile(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())
	out := filepath.Join(t.TempDir(), "paid.pdf")

	stdout, _, err := executeCLI(t, home, "invoices", "download", "--invoice", "inv-paid", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 invoice", string(data))
}

func TestInvoicesDownloadRejectsOpenInvoice(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())
	dir := t.TempDir()

	_, _, err := executeCLI(t, home, "invoices", "download", "--invoice", "inv-open", "--out", filepath.Join(dir, "open.pdf"))
	require.Error(t, err)
	assert.Equal(t, "invoice: only paid invoices can be downloaded", err.Error())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCryptoSelectionPersistsAcrossInvocations(t *testing.T) {
	api := newFakeFilesAPI(t)
	api.addInvoice("inv-crypto", "open", "crypto")
	expiresAt := time.Now().Add(30 * time.Minute).Unix()
	api.crypto = fmt.Sprintf(`{"expires_at":%d,"payment_methods":[
		{"currency":"bitcoin","address":"bc1qaddr","amount":"0.0001"},
		{"currency":"ethereum","address":"0xethaddr","amount":"0.0021"}
	]}`, expiresAt)
	home := loggedInHome(t, api.start())

	stdout, _, err := executeCLI(t, home, "crypto", "start")
	require.NoError(t, err)
	assert.Contains(t, stdout, "invoice inv-crypto")
	assert.Contains(t, stdout, "Choose a currency:")
	assert.Contains(t, stdout, "ethereum")

	stdout, _, err = executeCLI(t, home, "crypto", "select", "--currency", "ethereum")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Send 0.0021 ETH")
	assert.Contains(t, stdout, "to: 0xethaddr")
	assert.Contains(t, stdout, "wallet: not connected")

	_, _, err = executeCLI(t, home, "crypto", "transfer")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoWalletConnected)

	stdout, _, err = executeCLI(t, home, "crypto", "select", "--currency", "bitcoin")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Send 0.0001 BTC")
	assert.Contains(t, stdout, "Send the amount from your own wallet")

	stdout, _, err = executeCLI(t, home, "crypto", "back")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Choose a currency:")
}

func TestCryptoSelectRejectsUnknownCurrency(t *testing.T) {
	api := newFakeFilesAPI(t)
	api.addInvoice("inv-crypto", "open", "crypto")
	api.crypto = fmt.Sprintf(`{"expires_at":%d,"payment_methods":[{"currency":"dai","address":"0xdai","amount":"4.99"}]}`, time.Now().Add(time.Hour).Unix())
	home := loggedInHome(t, api.start())

	_, _, err := executeCLI(t, home, "crypto", "start", "--invoice", "inv-crypto")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "crypto", "select", "--currency", "usdc")
	require.Error(t, err)
	assert.Equal(t, "currency: usdc is not accepted for this invoice", err.Error())
}

func TestCryptoSelectRejectsExpiredPayment(t *testing.T) {
	api := newFakeFilesAPI(t)
	api.addInvoice("inv-crypto", "open", "crypto")
	api.crypto = fmt.Sprintf(`{"expires_at":%d,"payment_methods":[{"currency":"dai","address":"0xdai","amount":"4.99"}]}`, time.Now().Add(-time.Minute).Unix())
	home := loggedInHome(t, api.start())

	_, _, err := executeCLI(t, home, "crypto", "start")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "crypto", "select", "--currency", "dai")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentExpired)
}

func TestCryptoCommandsNeedStartedPayment(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())

	_, _, err := executeCLI(t, home, "crypto", "back")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoActivePayment)
}

func TestCryptoSwitchNetworkWithoutWallet(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())

	_, _, err := executeCLI(t, home, "crypto", "switch-network")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoWalletConnected)
}

func TestFailingCommandClosesWallet(t *testing.T) {
	rpcServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(rpcServer.Close)

	home := loggedInHome(t, newFakeFilesAPI(t).start())
	t.Setenv("HOME", home)
	t.Setenv("FB_WALLET_RPC", rpcServer.URL)

	root, app := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"crypto", "switch-network"})

	err := run(context.Background(), root, app)
	require.Error(t, err)
	require.NotNil(t, app.crypto)
	assert.Empty(t, app.closers)
}

func TestInvoicesPayCryptoInvoiceStartsCryptoPayment(t *testing.T) {
	api := newFakeFilesAPI(t)
	api.addInvoice("inv-crypto", "open", "crypto")
	api.crypto = fmt.Sprintf(`{"expires_at":%d,"payment_methods":[{"currency":"dai","address":"0xdai","amount":"4.99"}]}`, time.Now().Add(time.Hour).Unix())
	home := loggedInHome(t, api.start())

	stdout, _, err := executeCLI(t, home, "invoices", "pay", "--invoice", "inv-crypto")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Crypto payment")
	assert.Contains(t, stdout, "dai")
}

func TestCardAddRequiresPaymentSDK(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())

	_, _, err := executeCLI(t, home, "card", "add", "--number", "4242424242424242", "--exp", "12/30", "--cvc", "123")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentSDKUnavailable)
}

func TestCardAddNeedsDetailsWithoutTerminal(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())
	t.Setenv("FB_STRIPE_KEY", "pk_test_123")

	_, _, err := executeCLI(t, home, "card", "add")
	require.Error(t, err)
	assert.ErrorIs(t, err, errCardDetailsRequired)
}

func TestCardAddRejectsBadExpiry(t *testing.T) {
	home := loggedInHome(t, newFakeFilesAPI(t).start())
	t.Setenv("FB_STRIPE_KEY", "pk_test_123")

	_, _, err := executeCLI(t, home, "card", "add", "--number", "4242424242424242", "--exp", "13/30", "--cvc", "123")
	require.Error(t, err)
	assert.Equal(t, "expiry: must be MM/YY", err.Error())
}

func TestCardUpdateReplacesDefaultCard(t *testing.T) {
	api := newFakeFilesAPI(t)
	home := loggedInHome(t, api.start())

	stripeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer pk_test_123", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/v1/payment_methods":
			_, _ = io.WriteString(w, `{"id":"pm_new","object":"payment_method","type":"card"}`)
		case "/v1/setup_intents/seti_1/confirm":
			_, _ = io.WriteString(w, `{"id":"seti_1","object":"setup_intent","status":"succeeded"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(stripeServer.Close)
	t.Setenv("FB_STRIPE_KEY", "pk_test_123")
	t.Setenv("FB_STRIPE_API_URL", stripeServer.URL)

	stdout, _, err := executeCLI(t, home, "card", "update", "--number", "5555 5555 5555 4444", "--exp", "01/31", "--cvc", "123")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Card updated")
	assert.Equal(t, []string{"card-1"}, api.deletedCards)
	assert.Equal(t, []string{"pm_new"}, api.defaultCards)
}

func TestCardAddLeavesCardChecksToProvider(t *testing.T) {
	api := newFakeFilesAPI(t)
	home := loggedInHome(t, api.start())

	var paths []string
	stripeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = io.WriteString(w, `{"error":{"type":"card_error","code":"incorrect_number","message":"Your card number is incorrect."}}`)
	}))
	t.Cleanup(stripeServer.Close)
	t.Setenv("FB_STRIPE_KEY", "pk_test_123")
	t.Setenv("FB_STRIPE_API_URL", stripeServer.URL)

	_, _, err := executeCLI(t, home, "card", "add", "--exp", "12/30")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCardInputsInvalid)
	assert.Equal(t, []string{"/v1/payment_methods"}, paths)
	assert.Empty(t, api.defaultCards)
}

func TestCardFromInputOnlyParsesExpiry(t *testing.T) {
	card, err := cardFromInput(" 4242 4242 4242 4242 ", "12/30", "")
	require.NoError(t, err)
	assert.Equal(t, "4242424242424242", card.Number)
	assert.Empty(t, card.CVC)
	assert.Equal(t, int64(12), card.ExpMonth)

	card, err = cardFromInput("", "01/31", "123")
	require.NoError(t, err)
	assert.Empty(t, card.Number)
}

func TestCardUpdateRequiresExistingCard(t *testing.T) {
	api := newFakeFilesAPI(t)
	api.card = ""
	home := loggedInHome(t, api.start())
	t.Setenv("FB_STRIPE_KEY", "pk_test_123")

	_, _, err := executeCLI(t, home, "card", "update", "--number", "4242424242424242", "--exp", "12/30", "--cvc", "123")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoDefaultCard)
}

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		raw   string
		month int64
		year  int64
		ok    bool
	}{
		{raw: "12/30", month: 12, year: 2030, ok: true},
		{raw: "01/2031", month: 1, year: 2031, ok: true},
		{raw: " 7 / 29 ", month: 7, year: 2029, ok: true},
		{raw: "00/30"},
		{raw: "13/30"},
		{raw: "12-30"},
		{raw: "12/300"},
		{raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			month, year, err := parseExpiry(tt.raw)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.month, month)
			assert.Equal(t, tt.year, year)
		})
	}
}

func setupHome(t *testing.T, server *httptest.Server) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("FB_API_URL", server.URL)
	t.Setenv("FB_SECRETS_BACKEND", "file")
	t.Setenv("FB_STRIPE_KEY", "")
	t.Setenv("FB_WALLET_RPC", "")
	return home
}

func loggedInHome(t *testing.T, server *httptest.Server) string {
	t.Helper()

	home := setupHome(t, server)
	_, _, err := executeCLI(t, home, "auth", "set-token", "--token", testToken)
	require.NoError(t, err)
	return home
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()

	dir := filepath.Join(home, configDirName)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o600))
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, &bytes.Buffer{}, args...)
}

func executeCLIWithInput(t *testing.T, home string, in io.Reader, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root, app := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(in)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := run(context.Background(), root, app)
	return stdout.String(), stderr.String(), err
}

func TestErrorMessageAddsRefreshHintForUnknownInvoice(t *testing.T) {
	assert.Equal(t, "invoice not found, run `fb invoices` to refresh the list", errorMessage(domain.ErrInvoiceNotFound))
	assert.Equal(t, "Your card was declined", errorMessage(domain.RemoteCallFailure("card_declined", "", nil)))
	assert.Contains(t, errorMessage(domain.ErrPaymentExpired), "run `fb crypto start`")
}
