package ports

import (
	"context"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/shopspring/decimal"
)

// WalletProvider wraps a connected wallet. Account returns
// domain.ErrNoWalletConnected when no account is unlocked.
type WalletProvider interface {
	Account(ctx context.Context) (string, error)
	NetworkID(ctx context.Context) (uint64, error)
	NativeBalance(ctx context.Context) (decimal.Decimal, error)
	Tokens(ctx context.Context) ([]domain.Token, error)
	TransferNative(ctx context.Context, to string, amount decimal.Decimal) (string, error)
	TransferToken(ctx context.Context, token domain.Token, to string, amount decimal.Decimal) (string, error)
	WaitConfirmed(ctx context.Context, txHash string) error
	SwitchNetwork(ctx context.Context, networkID uint64) error
}
