// Package http provides a configurable HTTP client for talking to wallet
// providers and chain nodes. It wraps the retryablehttp.Client from HashiCorp
// and exposes functional options for timeouts, transport-level retries and
// logging.
package http

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration                // maximum duration for a single HTTP request
	retryWaitMin time.Duration                // minimum delay between retry attempts
	retryWaitMax time.Duration                // maximum delay between retry attempts
	retryMax     int                          // maximum number of retry attempts
	logger       retryablehttp.LeveledLogger // optional request logger
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, default values are used:
//
//   - timeout:      10 seconds
//   - retryWaitMin: 500 milliseconds
//   - retryWaitMax: 2 seconds
//   - retryMax:     0 retries
//
// Retries are off by default: eth_sendTransaction is not idempotent, and a
// request replayed after a lost response would prompt the wallet twice.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      10 * time.Second,
		retryWaitMin: 500 * time.Millisecond,
		retryWaitMax: 2 * time.Second,
		retryMax:     0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	if cfg.logger != nil {
		client.Logger = cfg.logger
	}
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Wallet prompts block the request until the user answers, so keep this
// generous when talking to an interactive wallet bridge.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Default: 0.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithLogger routes retryablehttp request logs to the given leveled logger.
func WithLogger(l retryablehttp.LeveledLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}
