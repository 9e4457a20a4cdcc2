package txmonitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/alertforge/internal/pkg/logger"
	"github.com/gabapcia/alertforge/internal/pkg/types"
	"github.com/gabapcia/alertforge/internal/pkg/x/chflow"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SeedWallet fetches the recent history of address and records every
// signature without alerting.
//
// Marking continues past individual ledger failures; the returned count only
// includes signatures that were recorded and the error joins the failures.
func (s *service) SeedWallet(ctx context.Context, address string) (int, error) {
	ctx = logger.WithFields(ctx, "wallet.address", address)

	txs, err := s.fetcher.FetchTransactions(ctx, address, s.cfg.seedFetchLimit)
	if err != nil {
		s.inst.fetchFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("fetch.kind", "seed")))
		return 0, fmt.Errorf("%w: %w", ErrTransientFetch, err)
	}

	var (
		seeded int
		errs   []error
	)
	for _, tx := range txs {
		if tx.Signature == "" {
			continue
		}

		if err := s.ledger.MarkSeen(ctx, tx.Signature, address); err != nil {
			errs = append(errs, fmt.Errorf("%w: mark %s: %w", ErrPersistence, tx.Signature, err))
			continue
		}
		seeded++
	}

	logger.Debug(ctx, "wallet history seeded", "seed.count", seeded)
	return seeded, errors.Join(errs...)
}

// seedAll seeds every distinct active address and returns the total number
// of recorded signatures. Failures are logged per address and never stop
// the remaining addresses from being seeded.
func (s *service) seedAll(ctx context.Context) int {
	wallets, err := s.wallets.ListActiveWallets(ctx)
	if err != nil {
		logger.Error(ctx, "failed to list active wallets for seeding", "error", fmt.Errorf("%w: %w", ErrPersistence, err))
		return 0
	}

	addresses := types.NewSet[string]()
	for _, w := range wallets {
		if w.Address != "" {
			addresses.Add(w.Address)
		}
	}

	counts := make(chan int, addresses.Len())
	chflow.ForEach(ctx, s.cfg.workers, types.Sorted(addresses), func(ctx context.Context, address string) {
		n, err := s.SeedWallet(ctx, address)
		if err != nil {
			logger.Warn(ctx, "failed to seed wallet history", "wallet.address", address, "error", err)
		}
		counts <- n
	})
	close(counts)

	var total int
	for n := range counts {
		total += n
	}
	return total
}
