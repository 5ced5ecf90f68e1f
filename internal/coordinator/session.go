package coordinator

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/txledger/internal/pkg/logger"
)

// Bootstrap implements Service.
func (s *service) Bootstrap(ctx context.Context) (err error) {
	ctx, span := tracer.Start(ctx, "coordinator.Bootstrap")
	defer func() { endSpan(span, err) }()

	s.loadCachedRecordCount(ctx)

	var wg sync.WaitGroup
	var sessionErr, countErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		sessionErr = s.restoreSession(ctx)
	}()
	go func() {
		defer wg.Done()
		countErr = s.syncRecordCount(ctx)
	}()
	wg.Wait()

	return errors.Join(sessionErr, countErr)
}

// restoreSession adopts the first already-authorized account, if any, and
// loads the record list for it.
func (s *service) restoreSession(ctx context.Context) error {
	if !s.wallet.Available() {
		s.cfg.alerter.Alert(ctx, missingWalletMessage)
		return ErrProviderUnavailable
	}

	accounts, err := s.wallet.AuthorizedAccounts(ctx)
	if err != nil {
		logger.Error(ctx, "failed to query authorized accounts", "error", err)
		return err
	}

	if len(accounts) == 0 {
		logger.Info(ctx, "no authorized account found")
		return nil
	}

	s.update(func(st *State) {
		st.Account = accounts[0]
	})

	logger.Info(ctx, "session restored", "account", accounts[0])
	return s.RefreshRecords(ctx)
}

// Connect implements Service.
func (s *service) Connect(ctx context.Context) (account Account, err error) {
	ctx, span := tracer.Start(ctx, "coordinator.Connect")
	defer func() { endSpan(span, err) }()

	if !s.wallet.Available() {
		s.cfg.alerter.Alert(ctx, missingWalletMessage)
		return "", ErrProviderUnavailable
	}

	accounts, err := s.wallet.RequestAuthorization(ctx)
	if err != nil {
		logger.Error(ctx, "wallet authorization failed", "error", err)
		return "", err
	}

	if len(accounts) == 0 {
		logger.Warn(ctx, "wallet authorized no account")
		return "", ErrNotConnected
	}

	account = accounts[0]
	s.update(func(st *State) {
		st.Account = account
	})

	logger.Info(ctx, "account connected", "account", account)
	return account, nil
}

// RefreshRecords implements Service.
func (s *service) RefreshRecords(ctx context.Context) (err error) {
	ctx, span := tracer.Start(ctx, "coordinator.RefreshRecords")
	defer func() { endSpan(span, err) }()

	records, err := s.ledger.ListRecords(ctx)
	if err != nil {
		logger.Error(ctx, "failed to fetch records", "error", err)
		return err
	}

	s.update(func(st *State) {
		st.Records = records
	})

	logger.Debug(ctx, "records refreshed", "records.count", len(records))
	return nil
}
