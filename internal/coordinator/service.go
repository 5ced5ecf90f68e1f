// Package coordinator drives the lifecycle of a ledger transfer: it restores
// and authorizes the wallet session, submits the native-currency transfer and
// the ledger append, waits for inclusion, and keeps the record list and the
// cached record count in sync. Consumers read its state through snapshots and
// never mutate it directly.
package coordinator

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Service is the transaction lifecycle coordinator.
type Service interface {
	// Bootstrap restores an existing session: it loads the cached record
	// count, then concurrently (a) reads the already-authorized accounts and,
	// if any, fetches the record list, and (b) fetches the ledger's record
	// count and caches it. Failures of either branch are joined and returned
	// without stopping the other. Having no authorized account is not an
	// error.
	Bootstrap(ctx context.Context) error

	// Connect prompts the wallet for authorization and stores the first
	// authorized account. Calling it again re-confirms the same account.
	Connect(ctx context.Context) (Account, error)

	// SetDraftField edits one field of the staged transfer.
	SetDraftField(field DraftField, value string) error

	// ClearDraft resets the staged transfer.
	ClearDraft()

	// Submit sends the staged transfer: value transfer through the wallet,
	// ledger append, inclusion wait, record count refresh. Failures of any
	// step return a *TransactionError and leave the state idle.
	Submit(ctx context.Context) (Submission, error)

	// RefreshRecords replaces the record list with the ledger's current one.
	RefreshRecords(ctx context.Context) error

	// State returns a snapshot of the session.
	State() State

	// Watch streams state snapshots until ctx is done.
	Watch(ctx context.Context) <-chan State
}

// config holds optional coordinator settings.
type config struct {
	alerter                   Alerter       // shows blocking user-facing messages
	inclusionTimeout          time.Duration // upper bound for AwaitInclusion
	clearDraftOnSuccess       bool          // reset the draft after a successful submission
	refreshRecordsAfterSubmit bool          // re-fetch the record list after a successful submission
}

// Option configures the coordinator.
type Option func(*config)

// WithAlerter sets the Alerter used for missing-wallet prompts.
// Default: log the message at warn level.
func WithAlerter(a Alerter) Option {
	return func(c *config) {
		c.alerter = a
	}
}

// WithInclusionTimeout bounds how long Submit waits for the ledger append to
// be mined. Default: 5 minutes.
func WithInclusionTimeout(d time.Duration) Option {
	return func(c *config) {
		c.inclusionTimeout = d
	}
}

// WithClearDraftOnSuccess makes Submit reset the draft after a successful
// submission. Default: false, the draft is kept so it can be resubmitted.
func WithClearDraftOnSuccess(b bool) Option {
	return func(c *config) {
		c.clearDraftOnSuccess = b
	}
}

// WithRefreshRecordsAfterSubmit makes Submit re-fetch the record list once
// the append is mined. Default: false, only the record count is refreshed.
func WithRefreshRecordsAfterSubmit(b bool) Option {
	return func(c *config) {
		c.refreshRecordsAfterSubmit = b
	}
}

// service is the default Service implementation.
type service struct {
	wallet WalletGateway
	ledger Ledger
	cache  Cache
	cfg    config

	metrics instruments

	// inFlight is the single-slot submission guard.
	inFlight atomic.Bool

	mu            sync.Mutex // protects the fields below
	state         State
	watchers      map[uint64]chan State
	nextWatcherID uint64
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// New creates a coordinator over the given wallet, ledger and cache.
func New(wallet WalletGateway, ledger Ledger, cache Cache, opts ...Option) *service {
	cfg := config{
		alerter:          logAlerter{},
		inclusionTimeout: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		wallet:   wallet,
		ledger:   ledger,
		cache:    cache,
		cfg:      cfg,
		metrics:  newInstruments(),
		watchers: make(map[uint64]chan State),
	}
}
