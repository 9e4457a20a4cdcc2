package txmonitor

import "time"

// DefaultUSDCMint is the mainnet USDC token mint.
const DefaultUSDCMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"

const (
	defaultPollInterval      = 60 * time.Second
	defaultWalletFetchLimit  = 5
	defaultPaymentFetchLimit = 10
	defaultSeedFetchLimit    = 50
	defaultPruneEvery        = 1440
	defaultRetention         = 7 * 24 * time.Hour
	defaultWorkers           = 4
)

// config holds tunables for the engine.
type config struct {
	pollInterval      time.Duration // delay between the start of two passes
	walletFetchLimit  int           // transactions fetched per watched address per pass
	paymentFetchLimit int           // transactions fetched for the payment wallet per pass
	seedFetchLimit    int           // transactions marked seen when seeding an address
	pruneEvery        int           // passes between two prunes; zero disables pruning
	retention         time.Duration // age after which ledger entries are pruned
	workers           int           // addresses polled concurrently within a pass
	paymentWallet     string        // address receiving subscription payments; empty disables payments
	usdcMint          string        // token mint accepted as payment
	passGuard         PassGuard     // cross-instance pass coordination
}

func defaultConfig() config {
	return config{
		pollInterval:      defaultPollInterval,
		walletFetchLimit:  defaultWalletFetchLimit,
		paymentFetchLimit: defaultPaymentFetchLimit,
		seedFetchLimit:    defaultSeedFetchLimit,
		pruneEvery:        defaultPruneEvery,
		retention:         defaultRetention,
		workers:           defaultWorkers,
		usdcMint:          DefaultUSDCMint,
		passGuard:         nopPassGuard{},
	}
}

// leaseTTL is how long a pass lease is held before it expires on its own.
func (c config) leaseTTL() time.Duration {
	return 2 * c.pollInterval
}

// Option configures the engine.
type Option func(*config)

// WithPollInterval sets the delay between passes. Defaults to 60s.
// Non-positive values are ignored.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithWalletFetchLimit sets how many transactions are fetched per watched
// address on each pass. Defaults to 5.
func WithWalletFetchLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.walletFetchLimit = n
		}
	}
}

// WithPaymentFetchLimit sets how many transactions are fetched for the
// payment wallet on each pass. Defaults to 10.
func WithPaymentFetchLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.paymentFetchLimit = n
		}
	}
}

// WithSeedFetchLimit sets how many historical transactions are marked seen
// when an address is seeded. Defaults to 50.
func WithSeedFetchLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.seedFetchLimit = n
		}
	}
}

// WithPruneEvery sets how many passes separate two prunes. Defaults to 1440,
// roughly one day at the default interval. Zero disables pruning.
func WithPruneEvery(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.pruneEvery = n
		}
	}
}

// WithRetention sets the age after which ledger entries are pruned.
// Defaults to 7 days.
func WithRetention(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.retention = d
		}
	}
}

// WithWorkers bounds how many addresses are polled concurrently within a
// pass. Defaults to 4.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithPaymentWallet enables payment monitoring on address.
func WithPaymentWallet(address string) Option {
	return func(c *config) {
		c.paymentWallet = address
	}
}

// WithUSDCMint overrides the token mint accepted as payment.
func WithUSDCMint(mint string) Option {
	return func(c *config) {
		if mint != "" {
			c.usdcMint = mint
		}
	}
}

// WithPassGuard installs a lease so only one instance runs each pass.
func WithPassGuard(g PassGuard) Option {
	return func(c *config) {
		if g != nil {
			c.passGuard = g
		}
	}
}
