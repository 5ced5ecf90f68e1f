package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txledger/internal/coordinator"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// errReceiptPending is returned while a transaction has not been mined.
var errReceiptPending = errors.New("transaction receipt not available yet")

// receiptStatusFailed is the receipt status of a reverted transaction.
const receiptStatusFailed = 0

// ReceiptResponse is the subset of eth_getTransactionReceipt's result the
// ledger needs.
type ReceiptResponse struct {
	TransactionHash string         `json:"transactionHash"`
	BlockHash       string         `json:"blockHash"`
	BlockNumber     hexutil.Uint64 `json:"blockNumber"`
	GasUsed         hexutil.Uint64 `json:"gasUsed"`
	Status          hexutil.Uint64 `json:"status"`
}

// toCoordinatorInclusion converts a receipt to a coordinator.Inclusion.
func (r ReceiptResponse) toCoordinatorInclusion() coordinator.Inclusion {
	return coordinator.Inclusion{
		TxHash:      r.TransactionHash,
		BlockNumber: uint64(r.BlockNumber),
	}
}

// getTransactionReceipt fetches the receipt of txHash. It returns
// errReceiptPending while the node has no receipt for it.
func (l *ledger) getTransactionReceipt(ctx context.Context, txHash string) (ReceiptResponse, error) {
	data, err := l.conn.Fetch(ctx, "eth_getTransactionReceipt", txHash)
	if err != nil {
		return ReceiptResponse{}, err
	}

	var receipt *ReceiptResponse
	if err := json.Unmarshal(data, &receipt); err != nil {
		return ReceiptResponse{}, fmt.Errorf("%w: eth_getTransactionReceipt: %w", errMalformedResult, err)
	}

	if receipt == nil {
		return ReceiptResponse{}, errReceiptPending
	}

	return *receipt, nil
}
