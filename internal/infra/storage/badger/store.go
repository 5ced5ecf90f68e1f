// Package badger provides a local, embedded implementation of the
// coordinator's persistent cache backed by BadgerDB. Values survive process
// restarts as long as the data directory is kept.
package badger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabapcia/txledger/internal/coordinator"
	"github.com/gabapcia/txledger/internal/pkg/logger"

	badgerdb "github.com/dgraph-io/badger/v3"
)

// store implements coordinator.Cache on top of a BadgerDB instance.
type store struct {
	db *badgerdb.DB
}

// Ensure store implements the coordinator.Cache interface at compile time.
var _ coordinator.Cache = (*store)(nil)

// Open opens (or creates) the database stored in dir.
func Open(dir string) (*store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating badger directory: %w", err)
	}

	opts := badgerdb.DefaultOptions(dir).
		WithLogger(badgerLogger{}).
		WithSyncWrites(true).
		// The cache holds a handful of small keys.
		WithValueLogFileSize(16 << 20).
		WithMemTableSize(8 << 20)

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger at %s: %w", dir, err)
	}

	return &store{db: db}, nil
}

// Close flushes pending writes and releases the database.
func (s *store) Close() error {
	return s.db.Close()
}

// Get implements coordinator.Cache.
func (s *store) Get(_ context.Context, key string) (string, error) {
	var value []byte
	err := s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badgerdb.ErrKeyNotFound) {
			return "", coordinator.ErrCacheMiss
		}

		return "", err
	}

	return string(value), nil
}

// Set implements coordinator.Cache. Values never expire.
func (s *store) Set(_ context.Context, key, value string) error {
	return s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

// badgerLogger routes BadgerDB's internal logging through the global logger.
// Info and debug chatter is demoted to debug.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...any) {
	logger.Error(context.Background(), formatBadger(format, args...), "component", "badger")
}

func (badgerLogger) Warningf(format string, args ...any) {
	logger.Warn(context.Background(), formatBadger(format, args...), "component", "badger")
}

func (badgerLogger) Infof(format string, args ...any) {
	logger.Debug(context.Background(), formatBadger(format, args...), "component", "badger")
}

func (badgerLogger) Debugf(format string, args ...any) {
	logger.Debug(context.Background(), formatBadger(format, args...), "component", "badger")
}

func formatBadger(format string, args ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
