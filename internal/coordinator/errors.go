package coordinator

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable is returned when no wallet provider is configured
	// or the provider cannot be reached.
	ErrProviderUnavailable = errors.New("wallet provider unavailable")

	// ErrUserRejected is returned when the user declines a wallet prompt.
	ErrUserRejected = errors.New("request rejected by user")

	// ErrWalletRequest is returned when the wallet answers a request with an
	// error other than a user rejection (e.g. insufficient funds).
	ErrWalletRequest = errors.New("wallet request failed")

	// ErrChainRead is returned when reading from the ledger contract fails,
	// either at the RPC layer or while decoding the result.
	ErrChainRead = errors.New("chain read failed")

	// ErrChainWrite is returned when a state-changing ledger call cannot be
	// submitted or is reverted.
	ErrChainWrite = errors.New("chain write failed")

	// ErrTransactionFailed matches every *TransactionError returned by Submit.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrSubmissionInProgress is returned by Submit while another submission
	// is still in flight.
	ErrSubmissionInProgress = errors.New("a submission is already in progress")

	// ErrNotConnected is returned when an operation needs an authorized
	// account and the session has none.
	ErrNotConnected = errors.New("no account connected")

	// ErrInvalidDraft is returned when the draft fails validation.
	ErrInvalidDraft = errors.New("invalid draft")

	// ErrUnknownDraftField is returned by SetDraftField for a field name the
	// draft does not have.
	ErrUnknownDraftField = errors.New("unknown draft field")

	// ErrInclusionTimeout is returned when a submitted record is not mined
	// before the configured inclusion timeout.
	ErrInclusionTimeout = errors.New("timed out waiting for inclusion")

	// ErrCacheMiss is returned by Cache.Get when the key is absent.
	ErrCacheMiss = errors.New("cache miss")
)

// TransactionError reports the submission stage at which Submit failed.
//
// It matches ErrTransactionFailed with errors.Is and unwraps to the
// underlying cause, so callers can check both:
//
//	errors.Is(err, coordinator.ErrTransactionFailed)
//	errors.Is(err, coordinator.ErrUserRejected)
type TransactionError struct {
	Stage SubmissionState // State the submission was in when it failed
	Err   error           // Underlying cause
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s while %s: %s", ErrTransactionFailed, e.Stage, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransactionFailed.
func (e *TransactionError) Is(target error) bool {
	return target == ErrTransactionFailed
}
