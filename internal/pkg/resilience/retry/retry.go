// Package retry provides a configurable mechanism for re-running an operation
// until it succeeds, the attempts run out, or the context ends. It wraps the
// retry-go package from Avast behind a small interface with functional options.
//
// Within txledger it drives polling loops (e.g. waiting for a transaction
// receipt), not the replay of failed submissions:
//
//	r := retry.New(
//	    retry.WithAttempts(0), // until ctx is done
//	    retry.WithDelay(2*time.Second),
//	    retry.WithConstantDelay(),
//	    retry.WithRetryIf(func(err error) bool { return errors.Is(err, errPending) }),
//	)
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs operation until it returns nil, returns an error that is
	// not retryable, exhausts the configured attempts, or ctx is done.
	//
	// When ctx ends first the returned error is the context's error
	// (context.Canceled or context.DeadlineExceeded).
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint             // maximum number of attempts; 0 means unlimited
	delay       time.Duration    // base delay between attempts
	maxDelay    time.Duration    // cap on the delay between attempts
	constant    bool             // use a fixed delay instead of exponential backoff
	lastErrOnly bool             // whether to return only the last error
	retryIf     func(error) bool // decides whether an error is worth another attempt
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates and returns a Retry implementation configured with
// the provided options.
//
// Default configuration:
//   - attempts:    3
//   - delay:       1 second, exponential backoff
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - retryIf:     every error is retried
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	delayType := retry.BackOffDelay
	maxDelay := r.cfg.maxDelay
	if r.cfg.constant {
		delayType = retry.FixedDelay
		// retry-go caps every delay type at MaxDelay.
		maxDelay = max(maxDelay, r.cfg.delay)
	}

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}
	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}

	err := retry.Do(operation, options...)
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	return err
}

// WithAttempts sets the maximum number of attempts (including the initial
// one). Zero retries until the context is done.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithConstantDelay waits exactly the base delay between attempts instead of
// backing off exponentially. The base delay is never capped by WithMaxDelay.
func WithConstantDelay() Option {
	return func(c *config) {
		c.constant = true
	}
}

// WithLastErrorOnly sets whether to return only the last error.
// When false, the errors of all attempts are combined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf restricts retries to errors for which fn returns true; any
// other error is returned immediately.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}
