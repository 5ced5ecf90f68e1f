package ethereum

import (
	_ "embed"
	"math/big"
	"strings"
	"time"

	"github.com/gabapcia/txledger/internal/coordinator"
	"github.com/gabapcia/txledger/internal/pkg/units"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Contract method names.
const (
	methodAddToBlockchain     = "addToBlockchain"
	methodGetAllTransactions  = "getAllTransactions"
	methodGetTransactionCount = "getTransactionCount"
)

//go:embed transactions.abi.json
var transactionsABI string

// contractABI is the parsed transfer-ledger contract interface.
var contractABI = mustParseABI(transactionsABI)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}

	return parsed
}

// transferStruct mirrors the contract's TransferStruct tuple.
type transferStruct struct {
	Sender    common.Address
	Receiver  common.Address
	Amount    *big.Int
	Message   string
	Timestamp *big.Int
	Keyword   string
}

// toCoordinatorRecord converts the on-chain tuple to a coordinator.TransferRecord.
// Amounts are converted from wei to ether and timestamps from epoch seconds to UTC.
func (t transferStruct) toCoordinatorRecord() coordinator.TransferRecord {
	var timestamp time.Time
	if t.Timestamp != nil {
		timestamp = time.Unix(t.Timestamp.Int64(), 0).UTC()
	}

	return coordinator.TransferRecord{
		Sender:    coordinator.Account(t.Sender.Hex()),
		Receiver:  coordinator.Account(t.Receiver.Hex()),
		Amount:    units.FromWei(t.Amount),
		Message:   t.Message,
		Keyword:   t.Keyword,
		Timestamp: timestamp,
	}
}

// unpackRecords decodes the return data of getAllTransactions.
func unpackRecords(data []byte) ([]coordinator.TransferRecord, error) {
	out, err := contractABI.Unpack(methodGetAllTransactions, data)
	if err != nil {
		return nil, err
	}

	tuples := *abi.ConvertType(out[0], new([]transferStruct)).(*[]transferStruct)

	records := make([]coordinator.TransferRecord, len(tuples))
	for i, t := range tuples {
		records[i] = t.toCoordinatorRecord()
	}

	return records, nil
}

// unpackCount decodes the return data of getTransactionCount.
func unpackCount(data []byte) (uint64, error) {
	out, err := contractABI.Unpack(methodGetTransactionCount, data)
	if err != nil {
		return 0, err
	}

	count := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return count.Uint64(), nil
}
