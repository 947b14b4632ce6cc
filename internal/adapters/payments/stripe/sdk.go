package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/sirupsen/logrus"
	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const clientSecretMarker = "_secret_"

type Config struct {
	PublishableKey string
	// APIURL overrides the Stripe API endpoint, e.g. for a local mock.
	APIURL     string
	HTTPClient *http.Client
	Logger     *logrus.Logger
}

// SDK tokenizes cards and confirms setup intents with a publishable key,
// the same calls a browser integration makes.
type SDK struct {
	api *client.API
}

var _ ports.PaymentSDK = (*SDK)(nil)

func New(cfg Config) (*SDK, error) {
	if strings.TrimSpace(cfg.PublishableKey) == "" {
		return nil, errors.New("stripe publishable key is required")
	}

	backendConfig := &stripeapi.BackendConfig{
		HTTPClient:        cfg.HTTPClient,
		MaxNetworkRetries: stripeapi.Int64(0),
	}
	if cfg.APIURL != "" {
		backendConfig.URL = stripeapi.String(cfg.APIURL)
	}
	if cfg.Logger != nil {
		backendConfig.LeveledLogger = cfg.Logger
	}

	backend := stripeapi.GetBackendWithConfig(stripeapi.APIBackend, backendConfig)
	api := &client.API{}
	api.Init(cfg.PublishableKey, &stripeapi.Backends{API: backend, Connect: backend, Uploads: backend})

	return &SDK{api: api}, nil
}

func (s *SDK) CreatePaymentMethod(ctx context.Context, card domain.CardDetails) (string, error) {
	params := &stripeapi.PaymentMethodParams{
		Type: stripeapi.String(string(stripeapi.PaymentMethodTypeCard)),
		Card: &stripeapi.PaymentMethodCardParams{
			Number:   stripeapi.String(card.Number),
			ExpMonth: stripeapi.Int64(card.ExpMonth),
			ExpYear:  stripeapi.Int64(card.ExpYear),
			CVC:      stripeapi.String(card.CVC),
		},
	}
	params.Context = ctx

	method, err := s.api.PaymentMethods.New(params)
	if err != nil {
		return "", translateError(ctx, "create payment method", err)
	}

	return method.ID, nil
}

func (s *SDK) ConfirmSetupIntent(ctx context.Context, clientSecret string, paymentMethodID string) error {
	intentID, err := setupIntentID(clientSecret)
	if err != nil {
		return err
	}

	params := &stripeapi.SetupIntentConfirmParams{PaymentMethod: stripeapi.String(paymentMethodID)}
	params.Context = ctx
	params.AddExtra("client_secret", clientSecret)

	intent, err := s.api.SetupIntents.Confirm(intentID, params)
	if err != nil {
		return translateError(ctx, "confirm setup intent", err)
	}

	switch intent.Status {
	case stripeapi.SetupIntentStatusSucceeded, stripeapi.SetupIntentStatusProcessing:
		return nil
	default:
		return domain.RemoteCallFailure("setup_intent_"+string(intent.Status),
			fmt.Sprintf("setup intent is %s", intent.Status), nil)
	}
}

// setupIntentID extracts "seti_123" from "seti_123_secret_abc".
func setupIntentID(clientSecret string) (string, error) {
	id, _, ok := strings.Cut(clientSecret, clientSecretMarker)
	if !ok || id == "" {
		return "", domain.RemoteCallFailure("invalid_setup_intent", "setup intent secret is malformed", nil)
	}
	return id, nil
}

func translateError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var stripeErr *stripeapi.Error
	if errors.As(err, &stripeErr) {
		return domain.RemoteCallFailure(string(stripeErr.Code), stripeErr.Msg, fmt.Errorf("%s: %w", op, err))
	}

	return domain.RemoteCallFailure("", "", fmt.Errorf("%s: %w", op, err))
}
