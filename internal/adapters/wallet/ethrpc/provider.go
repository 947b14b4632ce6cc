package ethrpc

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/shopspring/decimal"
)

const (
	nativeDecimals      = 18
	defaultPollInterval = 2 * time.Second

	// EIP-1193 "user rejected request".
	userRejectedCode = 4001
)

type TokenConfig struct {
	Symbol   string `mapstructure:"symbol" validate:"required"`
	Address  string `mapstructure:"address" validate:"required"`
	Decimals int32  `mapstructure:"decimals" validate:"gte=0"`
}

type Config struct {
	RPCURL       string
	Tokens       []TokenConfig
	PollInterval time.Duration
}

// Provider drives a wallet that exposes the standard Ethereum JSON-RPC
// methods and signs eth_sendTransaction requests itself.
type Provider struct {
	rpc    *rpc.Client
	eth    *ethclient.Client
	tokens []TokenConfig
	poll   time.Duration
}

var _ ports.WalletProvider = (*Provider)(nil)

func Dial(ctx context.Context, cfg Config) (*Provider, error) {
	if strings.TrimSpace(cfg.RPCURL) == "" {
		return nil, errors.New("wallet rpc url is required")
	}
	for _, token := range cfg.Tokens {
		if !common.IsHexAddress(token.Address) {
			return nil, fmt.Errorf("token %s: invalid contract address %q", token.Symbol, token.Address)
		}
	}

	client, err := rpc.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial wallet rpc: %w", err)
	}

	poll := cfg.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}

	return &Provider{rpc: client, eth: ethclient.NewClient(client), tokens: cfg.Tokens, poll: poll}, nil
}

func (p *Provider) Close() {
	p.rpc.Close()
}

func (p *Provider) Account(ctx context.Context) (string, error) {
	account, err := p.account(ctx)
	if err != nil {
		return "", err
	}
	return account.Hex(), nil
}

func (p *Provider) account(ctx context.Context) (common.Address, error) {
	var accounts []common.Address
	if err := p.rpc.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return common.Address{}, translateError(ctx, "eth_accounts", err)
	}
	if len(accounts) == 0 {
		return common.Address{}, domain.ErrNoWalletConnected
	}
	return accounts[0], nil
}

func (p *Provider) NetworkID(ctx context.Context) (uint64, error) {
	chainID, err := p.eth.ChainID(ctx)
	if err != nil {
		return 0, translateError(ctx, "eth_chainId", err)
	}
	return chainID.Uint64(), nil
}

func (p *Provider) NativeBalance(ctx context.Context) (decimal.Decimal, error) {
	account, err := p.account(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	wei, err := p.eth.BalanceAt(ctx, account, nil)
	if err != nil {
		return decimal.Zero, translateError(ctx, "eth_getBalance", err)
	}

	return decimal.NewFromBigInt(wei, -nativeDecimals), nil
}

// Tokens reads the balance of every configured ERC-20 token.
func (p *Provider) Tokens(ctx context.Context) ([]domain.Token, error) {
	account, err := p.account(ctx)
	if err != nil {
		return nil, err
	}

	data, err := packBalanceOf(account)
	if err != nil {
		return nil, fmt.Errorf("encode balanceOf: %w", err)
	}

	tokens := make([]domain.Token, 0, len(p.tokens))
	for _, cfg := range p.tokens {
		contract := common.HexToAddress(cfg.Address)
		out, err := p.eth.CallContract(ctx, ethereum.CallMsg{From: account, To: &contract, Data: data}, nil)
		if err != nil {
			return nil, translateError(ctx, "eth_call balanceOf "+cfg.Symbol, err)
		}

		raw, err := unpackBalance(out)
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", cfg.Symbol, err)
		}

		tokens = append(tokens, domain.Token{
			Symbol:   cfg.Symbol,
			Address:  contract.Hex(),
			Decimals: cfg.Decimals,
			Balance:  decimal.NewFromBigInt(raw, -cfg.Decimals),
		})
	}

	return tokens, nil
}

func (p *Provider) TransferNative(ctx context.Context, to string, amount decimal.Decimal) (string, error) {
	recipient, err := parseAddress(to)
	if err != nil {
		return "", err
	}

	return p.sendTransaction(ctx, transactionArgs{
		To:    &recipient,
		Value: (*hexutil.Big)(baseUnits(amount, nativeDecimals)),
	})
}

func (p *Provider) TransferToken(ctx context.Context, token domain.Token, to string, amount decimal.Decimal) (string, error) {
	recipient, err := parseAddress(to)
	if err != nil {
		return "", err
	}
	contract, err := parseAddress(token.Address)
	if err != nil {
		return "", err
	}

	data, err := packTransfer(recipient, baseUnits(amount, token.Decimals))
	if err != nil {
		return "", fmt.Errorf("encode transfer: %w", err)
	}

	input := hexutil.Bytes(data)
	return p.sendTransaction(ctx, transactionArgs{To: &contract, Data: &input})
}

type transactionArgs struct {
	From  common.Address  `json:"from"`
	To    *common.Address `json:"to"`
	Value *hexutil.Big    `json:"value,omitempty"`
	Data  *hexutil.Bytes  `json:"data,omitempty"`
}

func (p *Provider) sendTransaction(ctx context.Context, args transactionArgs) (string, error) {
	from, err := p.account(ctx)
	if err != nil {
		return "", err
	}
	args.From = from

	var hash common.Hash
	if err := p.rpc.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return "", translateError(ctx, "eth_sendTransaction", err)
	}

	return hash.Hex(), nil
}

type receipt struct {
	Status      hexutil.Uint64 `json:"status"`
	BlockNumber *hexutil.Big   `json:"blockNumber"`
}

// WaitConfirmed polls for the receipt until the transaction is mined in one
// block. A reverted transaction is an error.
func (p *Provider) WaitConfirmed(ctx context.Context, txHash string) error {
	hash := common.HexToHash(txHash)
	ticker := time.NewTicker(p.poll)
	defer ticker.Stop()

	for {
		var r *receipt
		if err := p.rpc.CallContext(ctx, &r, "eth_getTransactionReceipt", hash); err != nil {
			return translateError(ctx, "eth_getTransactionReceipt", err)
		}
		if r != nil && r.BlockNumber != nil {
			if r.Status == 0 {
				return domain.RemoteCallFailure("transaction_reverted", fmt.Sprintf("transaction %s reverted", txHash), nil)
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *Provider) SwitchNetwork(ctx context.Context, networkID uint64) error {
	params := map[string]string{"chainId": hexutil.EncodeUint64(networkID)}
	if err := p.rpc.CallContext(ctx, nil, "wallet_switchEthereumChain", params); err != nil {
		return translateError(ctx, "wallet_switchEthereumChain", err)
	}
	return nil
}

func parseAddress(value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, domain.ValidationError("address", fmt.Sprintf("%q is not an ethereum address", value))
	}
	return common.HexToAddress(value), nil
}

// baseUnits converts amount to the token's smallest unit, truncating below
// one unit.
func baseUnits(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).BigInt()
}

func translateError(ctx context.Context, method string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		if rpcErr.ErrorCode() == userRejectedCode {
			return &domain.Error{Kind: domain.KindUserAbandoned, Code: "user_rejected", Message: "The request was rejected in the wallet", Err: err}
		}
		return domain.RemoteCallFailure(fmt.Sprintf("rpc_%d", rpcErr.ErrorCode()), rpcErr.Error(), fmt.Errorf("%s: %w", method, err))
	}

	return domain.RemoteCallFailure("", "", fmt.Errorf("%s: %w", method, err))
}
