package txmonitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/alertforge/internal/pkg/logger"
	"github.com/gabapcia/alertforge/internal/subscription"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// pollPayments checks the payment wallet for new USDC transfers and applies
// the tier each one buys.
//
// A transaction's signature is recorded once, before any of its transfers
// is evaluated, regardless of how many transfers it contains.
func (s *service) pollPayments(ctx context.Context) PaymentReport {
	var report PaymentReport
	if s.cfg.paymentWallet == "" {
		return report
	}

	ctx = logger.WithFields(ctx, "wallet.address", s.cfg.paymentWallet, "wallet.kind", "payment")

	txs, err := s.fetcher.FetchTransactions(ctx, s.cfg.paymentWallet, s.cfg.paymentFetchLimit)
	if err != nil {
		report.Err = fmt.Errorf("%w: %w", ErrTransientFetch, err)
		s.inst.fetchFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("fetch.kind", "payment")))
		logger.Warn(ctx, "failed to fetch payment wallet transactions", "error", report.Err)
		return report
	}
	report.Fetched = len(txs)

	var errs []error
	for _, tx := range txs {
		proceed, err := s.claim(ctx, tx.Signature, s.cfg.paymentWallet)
		if err != nil {
			errs = append(errs, err)
		}
		if !proceed {
			continue
		}
		report.New++

		for _, transfer := range tx.TokenTransfers {
			if !s.isPayment(transfer) {
				continue
			}

			result := s.applyPayment(ctx, tx.Signature, transfer)
			if result.Err != nil {
				errs = append(errs, result.Err)
			}
			report.Payments = append(report.Payments, result)
		}
	}

	report.Err = errors.Join(errs...)
	return report
}

// isPayment reports whether transfer moves USDC into the payment wallet.
func (s *service) isPayment(transfer TokenTransfer) bool {
	return transfer.Mint == s.cfg.usdcMint && transfer.ToUserAccount == s.cfg.paymentWallet
}

// applyPayment evaluates a single transfer, upgrades its payer when the
// amount buys a higher tier and notifies them.
//
// The payer is identified by matching the transfer source against watched
// wallet addresses. Transfers from addresses nobody watches are recorded in
// the report and otherwise ignored.
func (s *service) applyPayment(ctx context.Context, signature string, transfer TokenTransfer) PaymentResult {
	result := PaymentResult{
		Signature: signature,
		Payer:     transfer.FromUserAccount,
		Amount:    transfer.TokenAmount,
	}

	ctx = logger.WithFields(ctx, "tx.signature", signature, "payment.payer", result.Payer, "payment.amount", result.Amount.String())

	tier, ok := subscription.Evaluate(transfer.TokenAmount)
	if !ok {
		logger.Info(ctx, "payment too low for any tier")
		return result
	}

	subscriber, err := s.subscribers.FindSubscriberByWallet(ctx, transfer.FromUserAccount)
	if errors.Is(err, ErrSubscriberNotFound) {
		logger.Warn(ctx, "payment from a wallet nobody watches")
		return result
	}
	if err != nil {
		result.Err = fmt.Errorf("%w: find payer: %w", ErrPersistence, err)
		logger.Error(ctx, "failed to resolve payer", "error", result.Err)
		return result
	}

	result.Tier = subscriber.Tier
	if tier.Outranks(subscriber.Tier) {
		upgraded, err := s.subscribers.UpgradeTier(ctx, subscriber.UserID, tier)
		if err != nil {
			result.Err = fmt.Errorf("%w: upgrade tier: %w", ErrPersistence, err)
			logger.Error(ctx, "failed to upgrade tier", "user.id", subscriber.UserID, "error", result.Err)
			return result
		}
		result.Upgraded = upgraded
	}
	result.Tier = subscription.Upgrade(subscriber.Tier, tier)

	s.inst.paymentsApplied.Add(ctx, 1, metric.WithAttributes(attribute.String("payment.tier", result.Tier.String())))
	logger.Info(ctx, "payment applied", "user.id", subscriber.UserID, "payment.tier", result.Tier.String(), "payment.upgraded", result.Upgraded)

	if subscriber.Destination == "" {
		logger.Warn(ctx, "payer has no destination, confirmation not sent", "user.id", subscriber.UserID)
		return result
	}

	alert := PaymentAlert{Amount: transfer.TokenAmount, Tier: result.Tier, Upgraded: result.Upgraded}
	if err := s.dispatch(ctx, alert, subscriber.Destination); err != nil {
		result.Err = err
		return result
	}
	result.Notified = true

	return result
}
