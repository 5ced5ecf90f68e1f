// Package config loads txledger's settings from TXLEDGER_* environment
// variables and validates them.
package config

import (
	"time"

	"github.com/gabapcia/txledger/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix of every setting.
const Prefix = "TXLEDGER"

// Cache backends.
const (
	CacheBackendBadger = "badger"
	CacheBackendRedis  = "redis"
)

// Config holds every runtime setting.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"txledger" validate:"required"`

	// WalletRPCURL is the wallet provider endpoint. Empty means no wallet
	// is available.
	WalletRPCURL    string        `envconfig:"WALLET_RPC_URL" validate:"omitempty,url"`
	ContractAddress string        `envconfig:"CONTRACT_ADDRESS" validate:"required,eth_addr"`
	RPCTimeout      time.Duration `envconfig:"RPC_TIMEOUT" default:"10s" validate:"gt=0"`
	RPCRetryMax     int           `envconfig:"RPC_RETRY_MAX" default:"0" validate:"gte=0"`
	GasLimit        string        `envconfig:"GAS_LIMIT" default:"0x5208" validate:"startswith=0x,hexadecimal"`

	InclusionTimeout          time.Duration `envconfig:"INCLUSION_TIMEOUT" default:"5m" validate:"gt=0"`
	InclusionPollInterval     time.Duration `envconfig:"INCLUSION_POLL_INTERVAL" default:"2s" validate:"gt=0"`
	ClearDraftOnSuccess       bool          `envconfig:"CLEAR_DRAFT_ON_SUCCESS" default:"false"`
	RefreshRecordsAfterSubmit bool          `envconfig:"REFRESH_RECORDS_AFTER_SUBMIT" default:"false"`

	CacheBackend  string `envconfig:"CACHE_BACKEND" default:"badger" validate:"oneof=badger redis"`
	BadgerPath    string `envconfig:"BADGER_PATH" default:".txledger/cache" validate:"required_if=CacheBackend badger"`
	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"required_if=CacheBackend redis"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
