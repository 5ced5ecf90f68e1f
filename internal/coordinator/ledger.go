package coordinator

import (
	"context"
	"math/big"
)

// AppendRequest holds the arguments of a ledger append.
type AppendRequest struct {
	Receiver Account  // Account the transfer is addressed to
	Amount   *big.Int // Amount in base units (wei)
	Message  string   // Message attached to the record
	Keyword  string   // Keyword attached to the record
}

// InclusionHandle identifies a submitted ledger call that has not
// necessarily been mined yet.
type InclusionHandle struct {
	TxHash string
}

// Inclusion describes a ledger call that has been mined.
type Inclusion struct {
	TxHash      string
	BlockNumber uint64
}

// Ledger is the transfer-ledger contract's read/write surface.
type Ledger interface {
	// ListRecords returns every record in ledger order.
	// Fails with ErrChainRead.
	ListRecords(ctx context.Context) ([]TransferRecord, error)

	// AppendRecord submits a state-changing append signed by the currently
	// authorized account and returns a handle to await its inclusion.
	// Fails with ErrChainWrite or ErrUserRejected.
	AppendRecord(ctx context.Context, req AppendRequest) (InclusionHandle, error)

	// RecordCount returns the number of records in the ledger.
	// Fails with ErrChainRead.
	RecordCount(ctx context.Context) (uint64, error)

	// AwaitInclusion blocks until the call behind handle is mined or ctx is
	// done. A reverted call fails with ErrChainWrite.
	AwaitInclusion(ctx context.Context, handle InclusionHandle) (Inclusion, error)
}
