package toml

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCryptoRepo(t *testing.T) *CryptoSessionRepository {
	t.Helper()

	config := viper.New()
	config.Set(cryptoPathKey, filepath.Join(t.TempDir(), "crypto.toml"))

	repo, err := NewCryptoSessionRepository(config)
	require.NoError(t, err)
	return repo
}

func sampleSession(invoiceUUID string) domain.CryptoSession {
	expiresAt := time.Date(2026, 2, 14, 13, 0, 0, 0, time.UTC)
	return domain.CryptoSession{
		InvoiceUUID: invoiceUUID,
		FetchedAt:   time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
		Payment: domain.CryptoPayment{
			InvoiceUUID: invoiceUUID,
			ExpiresAt:   expiresAt,
			Methods: []domain.CryptoPaymentMethod{
				{Currency: domain.CurrencyEthereum, Address: "0xabc", Amount: decimal.RequireFromString("0.0042"), ExpiresAt: expiresAt},
				{Currency: domain.CurrencyBitcoin, Address: "bc1qxyz", Amount: decimal.RequireFromString("0.0001"), ExpiresAt: expiresAt},
			},
		},
	}
}

func TestCryptoSessionRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newCryptoRepo(t)
	want := sampleSession("inv-1")
	want.Selected = domain.CurrencyEthereum

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.GetByInvoice(context.Background(), "inv-1")
	require.NoError(t, err)

	assert.Equal(t, want.InvoiceUUID, got.InvoiceUUID)
	assert.Equal(t, want.Selected, got.Selected)
	assert.Equal(t, want.FetchedAt, got.FetchedAt)
	assert.Equal(t, want.Payment.ExpiresAt, got.Payment.ExpiresAt)
	assert.Equal(t, "inv-1", got.Payment.InvoiceUUID)
	require.Len(t, got.Payment.Methods, 2)
	assert.Equal(t, domain.CurrencyEthereum, got.Payment.Methods[0].Currency)
	assert.Equal(t, "0xabc", got.Payment.Methods[0].Address)
	assert.Equal(t, "0.0042", got.Payment.Methods[0].Amount.String())
	assert.Equal(t, want.Payment.Methods[1].ExpiresAt, got.Payment.Methods[1].ExpiresAt)
}

func TestCryptoSessionRepositorySaveReplacesSameInvoice(t *testing.T) {
	t.Parallel()

	repo := newCryptoRepo(t)
	first := sampleSession("inv-1")
	first.Selected = domain.CurrencyEthereum
	require.NoError(t, repo.Save(context.Background(), first))

	second := sampleSession("inv-1")
	second.Selected = domain.CurrencyBitcoin
	require.NoError(t, repo.Save(context.Background(), second))
	require.NoError(t, repo.Save(context.Background(), sampleSession("inv-2")))

	got, err := repo.GetByInvoice(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyBitcoin, got.Selected)

	doc, err := repo.readSchema()
	require.NoError(t, err)
	assert.Len(t, doc.Sessions, 2)
}

func TestCryptoSessionRepositorySavePrunesExpiredSessions(t *testing.T) {
	t.Parallel()

	repo := newCryptoRepo(t)
	require.NoError(t, repo.Save(context.Background(), sampleSession("inv-old")))

	later := sampleSession("inv-new")
	later.UpdatedAt = later.Payment.ExpiresAt.Add(time.Minute)
	require.NoError(t, repo.Save(context.Background(), later))

	_, err := repo.GetByInvoice(context.Background(), "inv-old")
	assert.ErrorIs(t, err, domain.ErrCryptoSessionNotFound)

	got, err := repo.GetByInvoice(context.Background(), "inv-new")
	require.NoError(t, err)
	assert.Equal(t, "inv-new", got.InvoiceUUID)
}

func TestCryptoSessionRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newCryptoRepo(t)
	require.NoError(t, repo.Save(context.Background(), sampleSession("inv-1")))
	require.NoError(t, repo.Save(context.Background(), sampleSession("inv-2")))

	require.NoError(t, repo.Delete(context.Background(), "inv-1"))
	require.NoError(t, repo.Delete(context.Background(), "missing"))

	_, err := repo.GetByInvoice(context.Background(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrCryptoSessionNotFound)

	_, err = repo.GetByInvoice(context.Background(), "inv-2")
	assert.NoError(t, err)
}

func TestCryptoSessionRepositoryMissingSession(t *testing.T) {
	t.Parallel()

	repo := newCryptoRepo(t)

	_, err := repo.GetByInvoice(context.Background(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrCryptoSessionNotFound)
}
