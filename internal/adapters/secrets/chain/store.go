package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/files-billing-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/files-billing-cli/internal/adapters/secrets/pass"
	"github.com/bnema/files-billing-cli/internal/ports"
)

const (
	BackendAuto = "auto"
	BackendFile = "file"
	BackendPass = "pass"
)

// Store reads and writes through primary and falls back to fallback when
// primary fails. Deletes go to both so a stale copy cannot resurface.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// ForBackend returns the secret store named by backend. auto prefers pass
// and falls back to files below fileRoot.
func ForBackend(backend, fileRoot, passPrefix string) (ports.SecretStore, error) {
	switch backend {
	case BackendFile:
		return filestore.NewStore(fileRoot), nil
	case BackendPass:
		return passstore.NewStore(passPrefix), nil
	case BackendAuto, "":
		return NewStore(passstore.NewStore(passPrefix), filestore.NewStore(fileRoot))
	default:
		return nil, fmt.Errorf("unknown secrets backend %q", backend)
	}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if isContextError(err) {
		return err
	}

	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isContextError(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr != nil {
		return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
	}

	return fallbackValue, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if isContextError(err) {
		return err
	}
	if errors.Is(err, passstore.ErrUnavailable) {
		err = nil
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case err != nil && fallbackErr != nil:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
	case err != nil:
		return fmt.Errorf("primary backend delete failed: %w", err)
	case fallbackErr != nil:
		return fmt.Errorf("fallback backend delete failed: %w", fallbackErr)
	}

	return nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
