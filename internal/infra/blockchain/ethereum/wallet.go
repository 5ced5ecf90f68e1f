package ethereum

import (
	"context"

	"github.com/gabapcia/txledger/internal/coordinator"
	"github.com/gabapcia/txledger/internal/pkg/transport/jsonrpc"
)

// DefaultGasLimit is the gas sent with a plain value transfer (21000).
const DefaultGasLimit = "0x5208"

// WalletOption configures a wallet gateway.
type WalletOption func(*wallet)

// WithGasLimit overrides the hex-encoded gas limit sent with value transfers.
func WithGasLimit(gas string) WalletOption {
	return func(w *wallet) {
		w.gas = gas
	}
}

// wallet implements coordinator.WalletGateway over an EIP-1193 style
// JSON-RPC provider.
type wallet struct {
	conn jsonrpc.Client // Provider handle; nil when no provider is configured
	gas  string         // Gas limit for value transfers, hex-encoded
}

// Ensure wallet implements the coordinator.WalletGateway interface at compile time.
var _ coordinator.WalletGateway = (*wallet)(nil)

// NewWallet creates a wallet gateway using the provided JSON-RPC connection.
// A nil conn yields a gateway that reports itself unavailable.
func NewWallet(conn jsonrpc.Client, opts ...WalletOption) *wallet {
	w := &wallet{
		conn: conn,
		gas:  DefaultGasLimit,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Available implements coordinator.WalletGateway.
func (w *wallet) Available() bool {
	return w.conn != nil
}

// AuthorizedAccounts implements coordinator.WalletGateway using eth_accounts.
func (w *wallet) AuthorizedAccounts(ctx context.Context) ([]coordinator.Account, error) {
	if !w.Available() {
		return nil, coordinator.ErrProviderUnavailable
	}

	accounts, err := fetchAccounts(ctx, w.conn, "eth_accounts")
	if err != nil {
		return nil, walletError(err)
	}

	return accounts, nil
}

// RequestAuthorization implements coordinator.WalletGateway using
// eth_requestAccounts, which prompts the user.
func (w *wallet) RequestAuthorization(ctx context.Context) ([]coordinator.Account, error) {
	if !w.Available() {
		return nil, coordinator.ErrProviderUnavailable
	}

	accounts, err := fetchAccounts(ctx, w.conn, "eth_requestAccounts")
	if err != nil {
		return nil, walletError(err)
	}

	return accounts, nil
}

// SubmitValueTransfer implements coordinator.WalletGateway using
// eth_sendTransaction with {from, to, gas, value}.
func (w *wallet) SubmitValueTransfer(ctx context.Context, from, to coordinator.Account, valueHex string) (string, error) {
	if !w.Available() {
		return "", coordinator.ErrProviderUnavailable
	}

	hash, err := sendTransaction(ctx, w.conn, TransactionArgs{
		From:  string(from),
		To:    string(to),
		Gas:   w.gas,
		Value: valueHex,
	})
	if err != nil {
		return "", walletError(err)
	}

	return hash, nil
}
