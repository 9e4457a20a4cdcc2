// Package retry runs fallible operations with exponential backoff on top of
// avast/retry-go. The service only retries while starting up, when Postgres
// or Redis may still be coming online; monitoring passes never retry in-line
// because the next pass already does.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithDelay(2*time.Second))
//	err := r.Execute(ctx, func() error { return pool.Ping(ctx) })
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds or gives up.
type Retry interface {
	// Execute calls operation until it returns nil, the attempts run out or
	// ctx is done. operation must be safe to repeat.
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc observes a failed attempt before the backoff sleep. n counts
// from zero.
type OnRetryFunc func(n uint, err error)

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	onRetry     OnRetryFunc
}

// Option customizes a Retry built by New.
type Option func(*config)

// WithAttempts caps the total number of calls, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) { c.attempts = n }
}

// WithDelay sets the first backoff delay. Later delays double from it.
func WithDelay(d time.Duration) Option {
	return func(c *config) { c.delay = d }
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) { c.maxDelay = d }
}

// WithLastErrorOnly chooses between returning the final error and joining
// the errors of every attempt.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) { c.lastErrOnly = b }
}

// WithOnRetry registers f to observe failed attempts.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) { c.onRetry = f }
}

type backoff struct {
	options []retry.Option
}

var _ Retry = (*backoff)(nil)

// New returns a Retry using exponential backoff. Unless overridden it makes 3
// attempts, starts at 1s, caps the delay at 5s and reports the last error only.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	options := []retry.Option{
		retry.Attempts(cfg.attempts),
		retry.Delay(cfg.delay),
		retry.MaxDelay(cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(cfg.lastErrOnly),
	}
	if cfg.onRetry != nil {
		options = append(options, retry.OnRetry(retry.OnRetryFunc(cfg.onRetry)))
	}

	return &backoff{options: options}
}

func (b *backoff) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation, append(b.options[:len(b.options):len(b.options)], retry.Context(ctx))...)
}
