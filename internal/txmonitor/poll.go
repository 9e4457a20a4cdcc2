package txmonitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/alertforge/internal/pkg/logger"
	"github.com/gabapcia/alertforge/internal/pkg/types"
	"github.com/gabapcia/alertforge/internal/pkg/x/chflow"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// walletGroup is a watched address together with every distinct destination
// that should be alerted about it.
type walletGroup struct {
	address      string
	destinations []string
}

// newPassID returns a time-ordered identifier for a pass.
func newPassID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// RunPass executes one polling pass. Failures are recorded per address and
// per payment in the returned report and never abort the pass.
//
// The payment wallet is checked first. A payer's watched wallet carries the
// same transaction as the payment wallet and the ledger is keyed by
// signature alone, so whichever side claims it first is the only one to act.
func (s *service) RunPass(ctx context.Context) PassReport {
	report := PassReport{ID: newPassID()}

	ctx = logger.WithFields(ctx, "pass.id", report.ID)
	ctx, span := s.inst.tracer.Start(ctx, "txmonitor.pass", trace.WithAttributes(attribute.String("pass.id", report.ID)))
	defer span.End()

	report.Payments = s.pollPayments(ctx)
	report.Wallets = s.pollWallets(ctx)

	if err := report.Err(); err != nil {
		span.RecordError(err)
	}

	logger.Info(ctx, "polling pass finished",
		"pass.wallets", len(report.Wallets),
		"pass.alerts", report.AlertsSent(),
		"pass.payments", len(report.Payments.Payments),
	)
	return report
}

// pollWallets checks every active address once, fanning alerts out to all of
// its destinations.
func (s *service) pollWallets(ctx context.Context) []WalletReport {
	wallets, err := s.wallets.ListActiveWallets(ctx)
	if err != nil {
		logger.Error(ctx, "failed to list active wallets", "error", fmt.Errorf("%w: %w", ErrPersistence, err))
		return nil
	}

	groups := groupByAddress(ctx, wallets)
	reports := make([]WalletReport, len(groups))

	indexes := make([]int, len(groups))
	for i := range indexes {
		indexes[i] = i
	}

	chflow.ForEach(ctx, s.cfg.workers, indexes, func(ctx context.Context, i int) {
		reports[i] = s.checkWallet(ctx, groups[i])
	})

	return reports
}

// groupByAddress collapses wallets sharing an address into one group,
// keeping the order in which addresses first appear. Wallets without a
// destination are skipped.
func groupByAddress(ctx context.Context, wallets []WatchedWallet) []walletGroup {
	var (
		groups []walletGroup
		index  = make(map[string]int)
		seen   = make(map[string]types.Set[string])
	)

	for _, w := range wallets {
		if w.Address == "" {
			continue
		}
		if w.Destination == "" {
			logger.Warn(ctx, "watched wallet has no destination, skipping", "wallet.address", w.Address, "wallet.id", w.ID)
			continue
		}

		i, ok := index[w.Address]
		if !ok {
			i = len(groups)
			index[w.Address] = i
			seen[w.Address] = types.NewSet[string]()
			groups = append(groups, walletGroup{address: w.Address})
		}

		if seen[w.Address].Has(w.Destination) {
			continue
		}
		seen[w.Address].Add(w.Destination)
		groups[i].destinations = append(groups[i].destinations, w.Destination)
	}

	return groups
}

// checkWallet fetches the latest transactions of one address and alerts
// every destination about each transaction not yet in the ledger.
func (s *service) checkWallet(ctx context.Context, g walletGroup) WalletReport {
	ctx = logger.WithFields(ctx, "wallet.address", g.address)
	report := WalletReport{Address: g.address, Destinations: len(g.destinations)}

	txs, err := s.fetcher.FetchTransactions(ctx, g.address, s.cfg.walletFetchLimit)
	if err != nil {
		report.Err = fmt.Errorf("%w: %w", ErrTransientFetch, err)
		s.inst.fetchFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("fetch.kind", "wallet")))
		logger.Warn(ctx, "failed to fetch wallet transactions", "error", report.Err)
		return report
	}
	report.Fetched = len(txs)

	var errs []error
	for _, tx := range txs {
		proceed, err := s.claim(ctx, tx.Signature, g.address)
		if err != nil {
			errs = append(errs, err)
		}
		if !proceed {
			continue
		}
		report.New++

		alert := WalletAlert{Tx: tx, Address: g.address}
		for _, destination := range g.destinations {
			if err := s.dispatch(ctx, alert, destination); err != nil {
				errs = append(errs, err)
				continue
			}
			report.Alerts++
		}
	}

	report.Err = errors.Join(errs...)
	return report
}

// claim decides whether the engine should act on signature and records it
// in the ledger before any side effect happens.
//
// It returns false for empty signatures, signatures already recorded and
// signatures whose ledger lookup failed. A failed write still returns true
// together with the error: a duplicate alert is preferred over a lost one.
func (s *service) claim(ctx context.Context, signature, wallet string) (bool, error) {
	if signature == "" {
		logger.Debug(ctx, "skipping transaction without signature")
		return false, nil
	}

	seen, err := s.ledger.IsSeen(ctx, signature)
	if err != nil {
		err = fmt.Errorf("%w: lookup %s: %w", ErrPersistence, signature, err)
		logger.Error(ctx, "failed to check signature ledger, skipping transaction", "tx.signature", signature, "error", err)
		return false, err
	}
	if seen {
		return false, nil
	}

	if err := s.ledger.MarkSeen(ctx, signature, wallet); err != nil {
		err = fmt.Errorf("%w: mark %s: %w", ErrPersistence, signature, err)
		logger.Error(ctx, "failed to record signature, acting on it anyway", "tx.signature", signature, "error", err)
		return true, err
	}

	return true, nil
}

// dispatch renders alert for destination and sends it once.
func (s *service) dispatch(ctx context.Context, alert Alert, destination string) error {
	kind := "wallet"
	if _, ok := alert.(PaymentAlert); ok {
		kind = "payment"
	}
	attrs := metric.WithAttributes(attribute.String("alert.kind", kind))

	if err := s.dispatcher.Send(ctx, alert.Message(destination)); err != nil {
		err = fmt.Errorf("%w: %w", ErrDispatch, err)
		s.inst.dispatchFailures.Add(ctx, 1, attrs)
		logger.Error(ctx, "failed to deliver alert", "alert.kind", kind, "alert.destination", destination, "error", err)
		return err
	}

	s.inst.alertsSent.Add(ctx, 1, attrs)
	return nil
}
