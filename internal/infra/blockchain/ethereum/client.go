// Package ethereum implements the coordinator's WalletGateway and Ledger for
// Ethereum-compatible wallet providers, talking JSON-RPC through a single
// provider handle. Provider errors are translated into the coordinator's
// sentinel errors so callers never inspect JSON-RPC codes themselves.
package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txledger/internal/coordinator"
	"github.com/gabapcia/txledger/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// codeUserRejected is the EIP-1193 provider error code for a request the user
// declined in the wallet.
const codeUserRejected = 4001

// TransactionArgs is the parameter object of eth_sendTransaction and eth_call.
type TransactionArgs struct {
	From  string        `json:"from,omitempty"`
	To    string        `json:"to"`
	Gas   string        `json:"gas,omitempty"`
	Value string        `json:"value,omitempty"`
	Data  hexutil.Bytes `json:"data,omitempty"`
}

// errMalformedResult is returned when a provider answers with a result that
// cannot be decoded.
var errMalformedResult = errors.New("malformed provider result")

func userRejected(err error) bool {
	var rpcErr *jsonrpc.Error
	return errors.As(err, &rpcErr) && rpcErr.Code == codeUserRejected
}

// answeredByProvider reports whether the provider was reached and answered
// with an error or an undecodable result.
func answeredByProvider(err error) bool {
	return errors.Is(err, jsonrpc.ErrProviderReturnedError) || errors.Is(err, errMalformedResult)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// walletError maps a failed wallet request to the coordinator's taxonomy.
func walletError(err error) error {
	switch {
	case userRejected(err):
		return fmt.Errorf("%w: %w", coordinator.ErrUserRejected, err)
	case answeredByProvider(err):
		return fmt.Errorf("%w: %w", coordinator.ErrWalletRequest, err)
	case isContextErr(err):
		return err
	default:
		return fmt.Errorf("%w: %w", coordinator.ErrProviderUnavailable, err)
	}
}

// chainError maps a failed ledger call to the coordinator's taxonomy. kind is
// ErrChainRead or ErrChainWrite.
func chainError(kind, err error) error {
	switch {
	case userRejected(err):
		return fmt.Errorf("%w: %w", coordinator.ErrUserRejected, err)
	case answeredByProvider(err):
		return fmt.Errorf("%w: %w", kind, err)
	case isContextErr(err):
		return err
	default:
		return fmt.Errorf("%w: %w: %w", kind, coordinator.ErrProviderUnavailable, err)
	}
}

// fetchAccounts calls an account-listing method (eth_accounts or
// eth_requestAccounts).
func fetchAccounts(ctx context.Context, conn jsonrpc.Client, method string) ([]coordinator.Account, error) {
	data, err := conn.Fetch(ctx, method)
	if err != nil {
		return nil, err
	}

	var accounts []coordinator.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errMalformedResult, method, err)
	}

	return accounts, nil
}

// sendTransaction submits args through eth_sendTransaction and returns the
// transaction hash.
func sendTransaction(ctx context.Context, conn jsonrpc.Client, args TransactionArgs) (string, error) {
	data, err := conn.Fetch(ctx, "eth_sendTransaction", args)
	if err != nil {
		return "", err
	}

	var hash string
	if err := json.Unmarshal(data, &hash); err != nil {
		return "", fmt.Errorf("%w: eth_sendTransaction: %w", errMalformedResult, err)
	}

	return hash, nil
}
