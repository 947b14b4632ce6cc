package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	filesapi "github.com/bnema/files-billing-cli/internal/adapters/api/files"
	"github.com/bnema/files-billing-cli/internal/adapters/notify/terminal"
	stripesdk "github.com/bnema/files-billing-cli/internal/adapters/payments/stripe"
	tomlrepo "github.com/bnema/files-billing-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/files-billing-cli/internal/adapters/secrets/chain"
	"github.com/bnema/files-billing-cli/internal/adapters/wallet/ethrpc"
	"github.com/bnema/files-billing-cli/internal/application"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/bnema/files-billing-cli/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type app struct {
	cfg    config
	logger *logrus.Logger

	state       *application.BillingState
	credentials *application.CredentialService
	plans       *application.PlanSelection
	payments    *application.PaymentMethodFlow
	cards       *application.CardFlow
	crypto      *application.CryptoFlow
	invoices    *application.InvoiceSettlement

	closers []func()
}

// close releases connections opened while wiring. It is safe to call on a
// partially wired app.
func (a *app) close() {
	if a.crypto != nil {
		a.crypto.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func wireApp(ctx context.Context, cmd *cobra.Command, logLevel string) (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v, cfg, err := loadConfig(homeDir)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(logLevel) != "" {
		cfg.Log.Level = logLevel
	}

	a := &app{cfg: cfg, logger: newLogger(cmd.ErrOrStderr(), cfg.Log.Level)}

	billingRepo, err := tomlrepo.NewBillingStateRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire billing repository: %w", err)
	}
	cryptoRepo, err := tomlrepo.NewCryptoSessionRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire crypto session repository: %w", err)
	}

	secretStore, err := chainstore.ForBackend(cfg.Secrets.Backend, cfg.Secrets.Dir, cfg.Secrets.PassPrefix)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	api := &filesapi.Client{
		BaseURL:        cfg.API.BaseURL,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.API.Timeout,
		UserAgent:      "fb/" + version.Version,
	}

	clock := ports.SystemClock{}
	a.state = application.NewBillingState(api, billingRepo, clock, a.logger)
	a.credentials = application.NewCredentialService(secretStore, a.state)
	api.Token = a.credentials.Token

	var sdk ports.PaymentSDK
	if cfg.Stripe.PublishableKey != "" {
		stripeSDK, err := stripesdk.New(stripesdk.Config{
			PublishableKey: cfg.Stripe.PublishableKey,
			APIURL:         cfg.Stripe.APIURL,
			HTTPClient:     &http.Client{Timeout: cfg.API.Timeout},
			Logger:         a.logger,
		})
		if err != nil {
			return nil, fmt.Errorf("wire payment sdk: %w", err)
		}
		sdk = stripeSDK
	}

	var wallet ports.WalletProvider
	if cfg.Wallet.RPCURL != "" {
		provider, err := ethrpc.Dial(ctx, ethrpc.Config{
			RPCURL:       cfg.Wallet.RPCURL,
			Tokens:       cfg.Wallet.Tokens,
			PollInterval: cfg.Wallet.PollInterval,
		})
		if err != nil {
			return nil, fmt.Errorf("wire wallet provider: %w", err)
		}
		a.closers = append(a.closers, provider.Close)
		wallet = provider
	}

	a.plans = application.NewPlanSelection(api, a.state, a.logger)
	a.cards = application.NewCardFlow(api, sdk, a.state, terminal.New(cmd.OutOrStdout(), cmd.ErrOrStderr()), a.logger)
	a.crypto = application.NewCryptoFlow(api, wallet, a.state, cryptoRepo, clock, a.logger, application.CryptoFlowConfig{
		RequiredNetwork: cfg.Wallet.NetworkID,
	})
	a.payments = application.NewPaymentMethodFlow(api, a.state, a.crypto, a.logger)
	a.invoices = application.NewInvoiceSettlement(api, a.state, a.logger)

	if err := a.state.Load(ctx); err != nil {
		a.close()
		return nil, err
	}

	return a, nil
}

func newLogger(out io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.WarnLevel
	}
	logger.SetLevel(parsed)

	return logger
}
