package application

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tomlrepo "github.com/bnema/files-billing-cli/internal/adapters/repo/toml"
	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock(now time.Time) *fixedClock {
	return &fixedClock{now: now}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func newTestLogger() (*logrus.Logger, *logrustest.Hook) {
	logger, hook := logrustest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func newStateRepo(t *testing.T) *tomlrepo.BillingStateRepository {
	t.Helper()
	return newStateRepoAt(t, filepath.Join(t.TempDir(), "billing.toml"))
}

func newStateRepoAt(t *testing.T, path string) *tomlrepo.BillingStateRepository {
	t.Helper()

	config := viper.New()
	config.Set("state.billing_path", path)

	repo, err := tomlrepo.NewBillingStateRepository(config)
	require.NoError(t, err)
	return repo
}

func newSessionRepo(t *testing.T) *tomlrepo.CryptoSessionRepository {
	t.Helper()

	config := viper.New()
	config.Set("state.crypto_path", filepath.Join(t.TempDir(), "crypto.toml"))

	repo, err := tomlrepo.NewCryptoSessionRepository(config)
	require.NoError(t, err)
	return repo
}

// seedState persists snapshot and loads it into a fresh BillingState.
func seedState(t *testing.T, state *BillingState, repo *tomlrepo.BillingStateRepository, snapshot domain.BillingSnapshot) {
	t.Helper()

	require.NoError(t, repo.Save(context.Background(), snapshot))
	require.NoError(t, state.Load(context.Background()))
}

func usd(amount string) domain.Price {
	return domain.Price{ID: "price-" + amount, UnitAmount: decimal.RequireFromString(amount), Currency: "usd"}
}

func proPlan() domain.Plan {
	return domain.Plan{
		ID:   "pro",
		Name: "Pro",
		Prices: []domain.Price{
			{ID: "pro-month", UnitAmount: decimal.RequireFromString("4.99"), Currency: "usd", Recurring: domain.Recurring{Interval: domain.IntervalMonth, IntervalCount: 1}},
			{ID: "pro-year", UnitAmount: decimal.RequireFromString("49.90"), Currency: "usd", Recurring: domain.Recurring{Interval: domain.IntervalYear, IntervalCount: 1}},
		},
	}
}

func freePlan() domain.Plan {
	return domain.Plan{
		ID:   "free",
		Name: "Free",
		Prices: []domain.Price{
			{ID: "free-month", UnitAmount: decimal.Zero, Currency: "usd", Recurring: domain.Recurring{Interval: domain.IntervalMonth, IntervalCount: 1}},
		},
	}
}

func freeSubscription() *domain.Subscription {
	plan := freePlan()
	return &domain.Subscription{ID: "sub-1", Product: plan, Price: plan.Prices[0], Status: domain.SubscriptionStatusActive}
}
