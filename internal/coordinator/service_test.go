package coordinator

import (
	"slices"
	"testing"
	"time"

	"github.com/gabapcia/txledger/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init("error")
}

const (
	senderAccount   Account = "0xAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAa"
	receiverAccount Account = "0xBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBb"
)

// knownRecords is the record sequence a connected fixture starts with.
var knownRecords = []TransferRecord{
	{
		Sender:    senderAccount,
		Receiver:  receiverAccount,
		Amount:    decimal.RequireFromString("1.25"),
		Message:   "rent",
		Keyword:   "home",
		Timestamp: time.Unix(1690000000, 0).UTC(),
	},
}

// fixture bundles a service with the mocks behind it.
type fixture struct {
	svc     *service
	wallet  *WalletGatewayMock
	ledger  *LedgerMock
	cache   *CacheMock
	alerter *AlerterMock
}

func newFixture(t *testing.T, opts ...Option) fixture {
	t.Helper()

	f := fixture{
		wallet:  NewWalletGatewayMock(t),
		ledger:  NewLedgerMock(t),
		cache:   NewCacheMock(t),
		alerter: NewAlerterMock(t),
	}
	f.svc = New(f.wallet, f.ledger, f.cache, append([]Option{WithAlerter(f.alerter)}, opts...)...)

	return f
}

// connect puts the fixture's session in the connected state with a valid
// draft and the known records loaded.
func (f fixture) connect(amount string) {
	f.svc.update(func(st *State) {
		st.Account = senderAccount
		st.Records = slices.Clone(knownRecords)
		st.Draft = DraftForm{
			Receiver: string(receiverAccount),
			Amount:   amount,
			Keyword:  "gift",
			Message:  "hi",
		}
	})
}

func TestNew(t *testing.T) {
	t.Run("default configuration", func(t *testing.T) {
		svc := New(NewWalletGatewayMock(t), NewLedgerMock(t), NewCacheMock(t))

		assert.Equal(t, 5*time.Minute, svc.cfg.inclusionTimeout)
		assert.False(t, svc.cfg.clearDraftOnSuccess)
		assert.False(t, svc.cfg.refreshRecordsAfterSubmit)
		assert.IsType(t, logAlerter{}, svc.cfg.alerter)
		assert.NotNil(t, svc.watchers)
		assert.Equal(t, State{}, svc.State())
	})

	t.Run("options override defaults", func(t *testing.T) {
		alerter := NewAlerterMock(t)

		svc := New(NewWalletGatewayMock(t), NewLedgerMock(t), NewCacheMock(t),
			WithAlerter(alerter),
			WithInclusionTimeout(time.Second),
			WithClearDraftOnSuccess(true),
			WithRefreshRecordsAfterSubmit(true),
		)

		assert.Same(t, alerter, svc.cfg.alerter)
		assert.Equal(t, time.Second, svc.cfg.inclusionTimeout)
		assert.True(t, svc.cfg.clearDraftOnSuccess)
		assert.True(t, svc.cfg.refreshRecordsAfterSubmit)
	})
}
