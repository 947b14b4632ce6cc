package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
)

const APITokenKey = "files-billing/api_token"

// CredentialService stores the API token and drops the cached billing state
// whenever the token changes, since it may belong to another account.
type CredentialService struct {
	store ports.SecretStore
	state *BillingState
}

func NewCredentialService(store ports.SecretStore, state *BillingState) *CredentialService {
	return &CredentialService{store: store, state: state}
}

func (s *CredentialService) SetToken(ctx context.Context, cmd SetTokenCommand) error {
	cmd.Token = strings.TrimSpace(cmd.Token)
	if err := validateCommand(cmd); err != nil {
		return err
	}

	previous, err := s.store.Get(ctx, APITokenKey)
	hadPrevious := err == nil

	if err := s.store.Put(ctx, APITokenKey, cmd.Token); err != nil {
		return fmt.Errorf("store api token: %w", err)
	}

	if err := s.state.Reset(ctx); err != nil {
		var rollbackErr error
		if hadPrevious {
			rollbackErr = s.store.Put(ctx, APITokenKey, previous)
		} else {
			rollbackErr = s.store.Delete(ctx, APITokenKey)
		}
		if rollbackErr != nil {
			return fmt.Errorf("reset billing state and rollback api token: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("reset billing state: %w", err)
	}

	return nil
}

func (s *CredentialService) ClearToken(ctx context.Context) error {
	if err := s.store.Delete(ctx, APITokenKey); err != nil {
		return fmt.Errorf("delete api token: %w", err)
	}

	if err := s.state.Reset(ctx); err != nil {
		return fmt.Errorf("reset billing state: %w", err)
	}

	return nil
}

// Token returns the stored API token or domain.ErrNotAuthenticated.
func (s *CredentialService) Token(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, APITokenKey)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", domain.Wrap(domain.ErrNotAuthenticated, err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.ErrNotAuthenticated
	}

	return token, nil
}
