package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txledger/internal/coordinator"
	"github.com/gabapcia/txledger/internal/pkg/resilience/retry"
	"github.com/gabapcia/txledger/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrInvalidContractAddress is returned by NewLedger for a malformed
// contract address.
var ErrInvalidContractAddress = errors.New("invalid contract address")

// DefaultPollInterval is how often AwaitInclusion asks for the receipt.
const DefaultPollInterval = 2 * time.Second

// LedgerOption configures a ledger client.
type LedgerOption func(*ledger)

// WithPollInterval sets how often AwaitInclusion polls for the receipt.
func WithPollInterval(d time.Duration) LedgerOption {
	return func(l *ledger) {
		l.pollInterval = d
	}
}

// ledger implements coordinator.Ledger for the transfer-ledger contract.
//
// Reads are unsigned eth_calls. Writes are signed by whichever account the
// provider currently reports as authorized, looked up on every call.
type ledger struct {
	conn         jsonrpc.Client // Provider handle shared with the wallet gateway
	contract     common.Address // Deployed contract address
	pollInterval time.Duration  // Receipt polling interval
}

// Ensure ledger implements the coordinator.Ledger interface at compile time.
var _ coordinator.Ledger = (*ledger)(nil)

// NewLedger creates a ledger client for the contract deployed at
// contractAddress, reached through conn.
func NewLedger(conn jsonrpc.Client, contractAddress string, opts ...LedgerOption) (*ledger, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidContractAddress, contractAddress)
	}

	l := &ledger{
		conn:         conn,
		contract:     common.HexToAddress(contractAddress),
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// errNoProvider is returned by every call made without a provider handle.
var errNoProvider = fmt.Errorf("%w: no provider configured", coordinator.ErrProviderUnavailable)

// call performs a read-only contract call against the latest block.
func (l *ledger) call(ctx context.Context, method string) ([]byte, error) {
	if l.conn == nil {
		return nil, errNoProvider
	}

	input, err := contractABI.Pack(method)
	if err != nil {
		return nil, err
	}

	data, err := l.conn.Fetch(ctx, "eth_call", TransactionArgs{
		To:   l.contract.Hex(),
		Data: input,
	}, "latest")
	if err != nil {
		return nil, err
	}

	var output hexutil.Bytes
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("%w: eth_call: %w", errMalformedResult, err)
	}

	return output, nil
}

// ListRecords implements coordinator.Ledger.
func (l *ledger) ListRecords(ctx context.Context) ([]coordinator.TransferRecord, error) {
	output, err := l.call(ctx, methodGetAllTransactions)
	if err != nil {
		return nil, chainError(coordinator.ErrChainRead, err)
	}

	records, err := unpackRecords(output)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", coordinator.ErrChainRead, methodGetAllTransactions, err)
	}

	return records, nil
}

// RecordCount implements coordinator.Ledger.
func (l *ledger) RecordCount(ctx context.Context) (uint64, error) {
	output, err := l.call(ctx, methodGetTransactionCount)
	if err != nil {
		return 0, chainError(coordinator.ErrChainRead, err)
	}

	count, err := unpackCount(output)
	if err != nil {
		return 0, fmt.Errorf("%w: decoding %s: %w", coordinator.ErrChainRead, methodGetTransactionCount, err)
	}

	return count, nil
}

// AppendRecord implements coordinator.Ledger.
func (l *ledger) AppendRecord(ctx context.Context, req coordinator.AppendRequest) (coordinator.InclusionHandle, error) {
	if !common.IsHexAddress(string(req.Receiver)) {
		return coordinator.InclusionHandle{}, fmt.Errorf("%w: invalid receiver %q", coordinator.ErrChainWrite, req.Receiver)
	}

	if l.conn == nil {
		return coordinator.InclusionHandle{}, fmt.Errorf("%w: %w", coordinator.ErrChainWrite, errNoProvider)
	}

	accounts, err := fetchAccounts(ctx, l.conn, "eth_accounts")
	if err != nil {
		return coordinator.InclusionHandle{}, chainError(coordinator.ErrChainWrite, err)
	}

	if len(accounts) == 0 {
		return coordinator.InclusionHandle{}, fmt.Errorf("%w: %w", coordinator.ErrChainWrite, coordinator.ErrNotConnected)
	}

	input, err := contractABI.Pack(methodAddToBlockchain,
		common.HexToAddress(string(req.Receiver)),
		req.Amount,
		req.Message,
		req.Keyword,
	)
	if err != nil {
		return coordinator.InclusionHandle{}, fmt.Errorf("%w: encoding %s: %w", coordinator.ErrChainWrite, methodAddToBlockchain, err)
	}

	hash, err := sendTransaction(ctx, l.conn, TransactionArgs{
		From: string(accounts[0]),
		To:   l.contract.Hex(),
		Data: input,
	})
	if err != nil {
		return coordinator.InclusionHandle{}, chainError(coordinator.ErrChainWrite, err)
	}

	return coordinator.InclusionHandle{TxHash: hash}, nil
}

// AwaitInclusion implements coordinator.Ledger. It polls for the receipt at
// the configured interval until it is available or ctx is done.
func (l *ledger) AwaitInclusion(ctx context.Context, handle coordinator.InclusionHandle) (coordinator.Inclusion, error) {
	if l.conn == nil {
		return coordinator.Inclusion{}, fmt.Errorf("%w: %w", coordinator.ErrChainRead, errNoProvider)
	}

	poller := retry.New(
		retry.WithAttempts(0),
		retry.WithDelay(l.pollInterval),
		retry.WithMaxDelay(l.pollInterval),
		retry.WithConstantDelay(),
		retry.WithRetryIf(func(err error) bool { return errors.Is(err, errReceiptPending) }),
	)

	var receipt ReceiptResponse
	err := poller.Execute(ctx, func() error {
		var err error
		receipt, err = l.getTransactionReceipt(ctx, handle.TxHash)
		return err
	})
	if err != nil {
		return coordinator.Inclusion{}, chainError(coordinator.ErrChainRead, err)
	}

	if receipt.Status == receiptStatusFailed {
		return coordinator.Inclusion{}, fmt.Errorf("%w: transaction %s reverted in block %d", coordinator.ErrChainWrite, handle.TxHash, receipt.BlockNumber)
	}

	return receipt.toCoordinatorInclusion(), nil
}
