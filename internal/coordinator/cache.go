package coordinator

import (
	"context"
	"errors"
	"strconv"

	"github.com/gabapcia/txledger/internal/pkg/logger"
)

// RecordCountKey is the cache key under which the last known ledger record
// count is stored, as a decimal string.
const RecordCountKey = "transactionCount"

// Cache is a durable key/value store that survives restarts.
//
// Values are hints: nothing read from the cache is used to decide whether an
// operation is correct.
type Cache interface {
	// Get returns the value stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key with no expiration, overwriting any
	// previous value.
	Set(ctx context.Context, key, value string) error
}

// loadCachedRecordCount seeds the state's record count from the cache.
// Misses and unreadable values leave the state untouched.
func (s *service) loadCachedRecordCount(ctx context.Context) {
	raw, err := s.cache.Get(ctx, RecordCountKey)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			logger.Warn(ctx, "failed to read cached record count", "error", err)
		}
		return
	}

	count, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		logger.Warn(ctx, "ignoring malformed cached record count", "cache.value", raw, "error", err)
		return
	}

	s.update(func(st *State) {
		st.RecordCount = count
		st.RecordCountKnown = true
	})
}

// syncRecordCount fetches the ledger's record count, publishes it, and
// writes it to the cache. Only the ledger read can fail the call: a cache
// write failure is logged and ignored.
func (s *service) syncRecordCount(ctx context.Context) error {
	count, err := s.ledger.RecordCount(ctx)
	if err != nil {
		logger.Error(ctx, "failed to fetch record count", "error", err)
		return err
	}

	s.update(func(st *State) {
		st.RecordCount = count
		st.RecordCountKnown = true
	})

	if err := s.cache.Set(ctx, RecordCountKey, strconv.FormatUint(count, 10)); err != nil {
		logger.Warn(ctx, "failed to cache record count", "record.count", count, "error", err)
	}

	return nil
}
