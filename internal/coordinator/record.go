package coordinator

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a wallet address as returned by the wallet provider.
// The zero value means no account is connected.
type Account string

// TransferRecord is one entry of the on-chain transfer ledger.
type TransferRecord struct {
	Sender    Account         // Account that appended the record
	Receiver  Account         // Account the value was sent to
	Amount    decimal.Decimal // Amount in display units (ether, not wei)
	Message   string          // Free-form message attached by the sender
	Keyword   string          // Keyword attached by the sender
	Timestamp time.Time       // Block time at which the record was appended (UTC)
}
