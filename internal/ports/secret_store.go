package ports

import "context"

// SecretStore holds the API token. Get wraps domain.ErrSecretNotFound when
// key was never stored, and Delete of a missing key is not an error.
type SecretStore interface {
	Put(ctx context.Context, key string, value string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
