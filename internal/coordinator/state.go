package coordinator

import (
	"context"
	"slices"

	"github.com/gabapcia/txledger/internal/pkg/x/chflow"
)

// SubmissionState is the stage of the transfer submission state machine.
type SubmissionState uint8

const (
	// SubmissionIdle means no submission is running.
	SubmissionIdle SubmissionState = iota

	// SubmissionAwaitingAuthorization means the wallet has been asked to
	// approve the value transfer.
	SubmissionAwaitingAuthorization

	// SubmissionAwaitingChainConfirmation means the ledger append was sent
	// and the coordinator is waiting for it to be mined.
	SubmissionAwaitingChainConfirmation
)

func (s SubmissionState) String() string {
	switch s {
	case SubmissionIdle:
		return "idle"
	case SubmissionAwaitingAuthorization:
		return "awaiting authorization"
	case SubmissionAwaitingChainConfirmation:
		return "awaiting chain confirmation"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session as seen by consumers.
type State struct {
	Account          Account          // Connected account, empty when none
	Draft            DraftForm        // Staged transfer input
	Submission       SubmissionState  // Current submission stage
	Records          []TransferRecord // Last fetched ledger records
	RecordCount      uint64           // Last known ledger record count (a hint, may be stale)
	RecordCountKnown bool             // Whether RecordCount has been loaded from cache or ledger
}

// Connected reports whether an account is authorized in this session.
func (s State) Connected() bool {
	return s.Account != ""
}

// Loading reports whether a submission is in progress.
func (s State) Loading() bool {
	return s.Submission != SubmissionIdle
}

func (s State) clone() State {
	s.Records = slices.Clone(s.Records)
	return s
}

// State returns a snapshot of the current session state.
func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

// Watch returns a channel that receives the current state immediately and a
// new snapshot after every change. A slow reader only sees the latest
// snapshot. The channel is closed when ctx is done.
func (s *service) Watch(ctx context.Context) <-chan State {
	ch := make(chan State, 1)

	s.mu.Lock()
	id := s.nextWatcherID
	s.nextWatcherID++
	s.watchers[id] = ch
	chflow.Offer(ch, s.state.clone())
	s.mu.Unlock()

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.watchers, id)
		close(ch)
	}()

	return ch
}

// update applies fn to the state and notifies watchers.
func (s *service) update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)

	snapshot := s.state.clone()
	for _, ch := range s.watchers {
		chflow.Offer(ch, snapshot)
	}
}

func (s *service) setSubmissionState(stage SubmissionState) {
	s.update(func(st *State) {
		st.Submission = stage
	})
}
