// Package txmonitor implements the transaction discovery and deduplication
// engine. It periodically polls the indexer for every watched wallet and for
// the payment wallet, records each signature in a durable ledger before acting
// on it, delivers wallet alerts and converts qualifying USDC payments into
// subscription tier upgrades.
package txmonitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/alertforge/internal/pkg/logger"
)

// Service defines the engine lifecycle and its on-demand operations.
type Service interface {
	// Start seeds the ledger with the recent history of every active wallet,
	// runs the first polling pass immediately and then one pass per interval
	// in a background goroutine.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	// Call Close to stop the background loop.
	Start(ctx context.Context) error

	// Close cancels the background loop, abandoning any in-flight pass, and
	// waits for it to exit. It is safe to call Close even if the service was
	// never started.
	Close()

	// SeedWallet marks the recent history of address as seen without sending
	// any alert, so a newly registered wallet does not replay its past.
	// It returns how many signatures were recorded.
	SeedWallet(ctx context.Context, address string) (int, error)

	// RunPass executes a single polling pass over every active wallet and the
	// payment wallet and returns what happened.
	RunPass(ctx context.Context) PassReport

	// RunGuardedPass runs a pass only while holding the pass lease, so it
	// never overlaps a pass of a running engine. ran is false when another
	// instance holds the lease.
	RunGuardedPass(ctx context.Context) (report PassReport, ran bool, err error)

	// Prune removes ledger entries older than the configured retention and
	// returns how many were deleted.
	Prune(ctx context.Context) (int64, error)
}

// closeFunc defines a cleanup routine to stop background goroutines.
type closeFunc func()

// service is the internal implementation of the Service interface.
type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool       // ensures Start is called only once
	closeFunc closeFunc  // cancels the loop and waits for it

	fetcher     TransactionFetcher
	ledger      SignatureLedger
	wallets     WalletStorage
	subscribers SubscriberStorage
	dispatcher  Dispatcher

	cfg  config
	inst instruments

	passes uint64 // number of passes run by the loop; only touched by the loop goroutine
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// Start launches the monitoring loop.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if s.cfg.paymentWallet == "" {
		logger.Warn(ctx, "payment wallet not configured, payment monitoring disabled")
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		s.run(ctx)
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true
	return nil
}

// Close stops the monitoring loop.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// run seeds the ledger once and then polls until ctx is canceled.
//
// The first pass starts right after seeding. Passes never overlap because
// the next tick is only consumed after the current pass returns.
func (s *service) run(ctx context.Context) {
	logger.Info(ctx, "seeding signature ledger", "engine.state", "seeding")
	seeded := s.seedAll(ctx)
	logger.Info(ctx, "signature ledger seeded", "engine.state", "seeding", "seed.count", seeded)

	ticker := time.NewTicker(s.cfg.pollInterval)
	defer ticker.Stop()

	for {
		s.tick(ctx)

		select {
		case <-ctx.Done():
			logger.Info(ctx, "monitoring loop stopped")
			return
		case <-ticker.C:
		}
	}
}

// tick runs one scheduled pass and, every pruneEvery passes, a prune.
// Both are skipped when another instance holds the pass lease.
func (s *service) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	release, acquired, err := s.acquirePass(ctx)
	if err != nil {
		logger.Warn(ctx, "failed to acquire pass lease, skipping pass", "error", err)
		return
	}
	if !acquired {
		logger.Debug(ctx, "pass lease held by another instance, skipping pass")
		return
	}
	defer release(context.WithoutCancel(ctx))

	s.passes++
	logger.Debug(ctx, "starting polling pass", "engine.state", "polling", "pass.number", s.passes)
	s.RunPass(ctx)

	if s.cfg.pruneEvery > 0 && s.passes%uint64(s.cfg.pruneEvery) == 0 {
		logger.Info(ctx, "pruning signature ledger", "engine.state", "pruning", "prune.retention", s.cfg.retention.String())
		if _, err := s.Prune(ctx); err != nil {
			logger.Error(ctx, "ledger prune failed, retrying at the next scheduled prune", "error", err)
		}
	}
}

// RunGuardedPass implements Service.
func (s *service) RunGuardedPass(ctx context.Context) (PassReport, bool, error) {
	release, acquired, err := s.acquirePass(ctx)
	if err != nil || !acquired {
		return PassReport{}, false, err
	}
	defer release(context.WithoutCancel(ctx))

	return s.RunPass(ctx), true, nil
}

// acquirePass takes the pass lease for twice the poll interval, so a pass
// overrunning its interval still holds the lease until it finishes.
func (s *service) acquirePass(ctx context.Context) (func(context.Context), bool, error) {
	release, acquired, err := s.cfg.passGuard.Acquire(ctx, s.cfg.leaseTTL())
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrPassLease, err)
	}
	return release, acquired, nil
}

// New creates a new engine. Behavior not covered by the required
// collaborators is tuned with Options; see the With* functions for defaults.
func New(
	fetcher TransactionFetcher,
	ledger SignatureLedger,
	wallets WalletStorage,
	subscribers SubscriberStorage,
	dispatcher Dispatcher,
	opts ...Option,
) *service {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		fetcher:     fetcher,
		ledger:      ledger,
		wallets:     wallets,
		subscribers: subscribers,
		dispatcher:  dispatcher,
		cfg:         cfg,
		inst:        newInstruments(),
	}
}
