// Package http builds the retrying HTTP clients used to reach external APIs.
// Retries are opt-in: the indexer runs with a single attempt so one slow
// wallet never stretches a monitoring pass.
package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultWaitMin  = time.Second
	defaultWaitMax  = 5 * time.Second
	defaultAttempts = 0
)

type settings struct {
	timeout   time.Duration
	waitMin   time.Duration
	waitMax   time.Duration
	retries   int
	transport http.RoundTripper
}

// Option customizes a client built by NewClient.
type Option func(*settings)

// WithTimeout bounds a single request attempt.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithBackoff sets the bounds of the wait between attempts.
func WithBackoff(minWait, maxWait time.Duration) Option {
	return func(s *settings) {
		s.waitMin = minWait
		s.waitMax = max(minWait, maxWait)
	}
}

// WithRetryMax sets how many extra attempts follow a failed one.
// Negative values mean no retries.
func WithRetryMax(n int) Option {
	return func(s *settings) { s.retries = max(n, 0) }
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *settings) { s.transport = rt }
}

// NewClient returns a retryablehttp.Client with logging disabled. Once every
// attempt is spent the final response is returned as is, so callers still
// see the upstream status code.
func NewClient(opts ...Option) *retryablehttp.Client {
	s := settings{
		timeout: defaultTimeout,
		waitMin: defaultWaitMin,
		waitMax: defaultWaitMax,
		retries: defaultAttempts,
	}
	for _, opt := range opts {
		opt(&s)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.RetryMax = s.retries
	client.RetryWaitMin, client.RetryWaitMax = s.waitMin, s.waitMax
	client.HTTPClient.Timeout = s.timeout
	if s.transport != nil {
		client.HTTPClient.Transport = s.transport
	}

	return client
}
