// Command txledger sends native-currency transfers through a wallet provider
// and records them on the transfer-ledger contract.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txledger/internal/config"
	"github.com/gabapcia/txledger/internal/coordinator"
	"github.com/gabapcia/txledger/internal/handlers/cli"
	"github.com/gabapcia/txledger/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/txledger/internal/infra/storage/badger"
	"github.com/gabapcia/txledger/internal/infra/storage/redis"
	"github.com/gabapcia/txledger/internal/pkg/logger"
	"github.com/gabapcia/txledger/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/txledger/internal/pkg/transport/http"
	"github.com/gabapcia/txledger/internal/pkg/transport/jsonrpc"

	"github.com/pterm/pterm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		pterm.Error.Println(err.Error())
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, shutdown(context.Background()))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	cache, closeCache, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	// A nil provider handle makes the wallet report itself unavailable.
	var conn jsonrpc.Client
	if cfg.WalletRPCURL != "" {
		httpClient := transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.RPCTimeout),
			transporthttp.WithRetryMax(cfg.RPCRetryMax),
			transporthttp.WithLogger(logger.Leveled()),
		)
		conn = jsonrpc.NewClient(httpClient, cfg.WalletRPCURL)
	}

	wallet := ethereum.NewWallet(conn, ethereum.WithGasLimit(cfg.GasLimit))

	ledger, err := ethereum.NewLedger(conn, cfg.ContractAddress, ethereum.WithPollInterval(cfg.InclusionPollInterval))
	if err != nil {
		return err
	}

	svc := coordinator.New(wallet, ledger, cache,
		coordinator.WithAlerter(cli.NewAlerter()),
		coordinator.WithInclusionTimeout(cfg.InclusionTimeout),
		coordinator.WithClearDraftOnSuccess(cfg.ClearDraftOnSuccess),
		coordinator.WithRefreshRecordsAfterSubmit(cfg.RefreshRecordsAfterSubmit),
	)

	return cli.Run(ctx, svc)
}

// openCache opens the configured persistent cache backend.
func openCache(ctx context.Context, cfg config.Config) (coordinator.Cache, func() error, error) {
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		c, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}

		return c, c.Close, nil
	default:
		s, err := badger.Open(cfg.BadgerPath)
		if err != nil {
			return nil, nil, err
		}

		return s, s.Close, nil
	}
}
