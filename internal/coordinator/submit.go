package coordinator

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/txledger/internal/pkg/logger"
	"github.com/gabapcia/txledger/internal/pkg/units"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Submission describes a transfer that was sent and whose ledger record was
// mined.
type Submission struct {
	ID                uuid.UUID // Time-ordered identifier used to correlate logs
	ValueTransferHash string    // Hash of the native-currency transfer
	RecordTxHash      string    // Hash of the ledger append
	BlockNumber       uint64    // Block in which the ledger append was mined
}

// Submit implements Service.
//
// Preconditions (wallet present, no other submission running, valid draft,
// connected account, amount convertible to wei) are checked before any state change and their errors
// are returned as is. Once the wallet has been asked to transfer value,
// failures are returned as *TransactionError.
func (s *service) Submit(ctx context.Context) (Submission, error) {
	if !s.wallet.Available() {
		s.cfg.alerter.Alert(ctx, missingWalletMessage)
		return Submission{}, ErrProviderUnavailable
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return Submission{}, ErrSubmissionInProgress
	}
	defer s.inFlight.Store(false)

	snapshot := s.State()
	if err := snapshot.Draft.validate(); err != nil {
		return Submission{}, err
	}

	if !snapshot.Connected() {
		return Submission{}, ErrNotConnected
	}

	wei, err := units.ParseWei(snapshot.Draft.Amount)
	if err != nil {
		return Submission{}, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Submission{}, err
	}

	ctx = logger.Derive(ctx, "submission.id", id.String())
	ctx, span := tracer.Start(ctx, "coordinator.Submit", trace.WithAttributes(
		attribute.String("submission.id", id.String()),
		attribute.String("submission.receiver", snapshot.Draft.Receiver),
	))

	startedAt := time.Now()
	sub, err := s.submit(ctx, id, snapshot.Account, snapshot.Draft, wei)
	s.metrics.recordSubmission(ctx, startedAt, err)
	endSpan(span, err)

	return sub, err
}

// submit runs the state machine for an already validated draft. The state is
// idle again when it returns.
func (s *service) submit(ctx context.Context, id uuid.UUID, from Account, draft DraftForm, wei *big.Int) (Submission, error) {
	defer s.setSubmissionState(SubmissionIdle)

	sub := Submission{ID: id}

	s.setSubmissionState(SubmissionAwaitingAuthorization)
	logger.Info(ctx, "requesting value transfer", "from", from, "to", draft.Receiver, "amount", draft.Amount, "value.wei", wei.String())

	hash, err := s.wallet.SubmitValueTransfer(ctx, from, Account(draft.Receiver), hexutil.EncodeBig(wei))
	if err != nil {
		return Submission{}, s.fail(ctx, SubmissionAwaitingAuthorization, err)
	}
	sub.ValueTransferHash = hash

	s.setSubmissionState(SubmissionAwaitingChainConfirmation)

	handle, err := s.ledger.AppendRecord(ctx, AppendRequest{
		Receiver: Account(draft.Receiver),
		Amount:   wei,
		Message:  draft.Message,
		Keyword:  draft.Keyword,
	})
	if err != nil {
		return Submission{}, s.fail(ctx, SubmissionAwaitingChainConfirmation, err)
	}
	sub.RecordTxHash = handle.TxHash

	logger.Info(ctx, "waiting for record inclusion", "tx.hash", handle.TxHash)

	inclusion, err := s.awaitInclusion(ctx, handle)
	if err != nil {
		return Submission{}, s.fail(ctx, SubmissionAwaitingChainConfirmation, err)
	}
	sub.BlockNumber = inclusion.BlockNumber

	s.setSubmissionState(SubmissionIdle)
	logger.Info(ctx, "record included", "tx.hash", inclusion.TxHash, "block.number", inclusion.BlockNumber)

	// The transfer is final at this point; refresh failures only leave
	// stale hints behind and are logged by the helpers.
	_ = s.syncRecordCount(ctx)

	if s.cfg.refreshRecordsAfterSubmit {
		_ = s.RefreshRecords(ctx)
	}

	if s.cfg.clearDraftOnSuccess {
		s.ClearDraft()
	}

	return sub, nil
}

// awaitInclusion waits for handle to be mined for at most the configured
// inclusion timeout.
func (s *service) awaitInclusion(ctx context.Context, handle InclusionHandle) (Inclusion, error) {
	waitCtx, cancel := context.WithTimeout(ctx, s.cfg.inclusionTimeout)
	defer cancel()

	inclusion, err := s.ledger.AwaitInclusion(waitCtx, handle)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return Inclusion{}, fmt.Errorf("%w: %s after %s", ErrInclusionTimeout, handle.TxHash, s.cfg.inclusionTimeout)
	}

	return inclusion, err
}

func (s *service) fail(ctx context.Context, stage SubmissionState, err error) error {
	logger.Error(ctx, "submission failed", "stage", stage.String(), "error", err)
	return &TransactionError{Stage: stage, Err: err}
}
