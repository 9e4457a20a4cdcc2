package txmonitor

import (
	"context"
	"time"

	"github.com/gabapcia/alertforge/internal/subscription"
)

// TransactionFetcher retrieves the most recent transactions touching an address.
//
// Implementations must return transactions newest first and must tolerate
// malformed records by decoding missing fields to zero values instead of
// failing the whole batch.
type TransactionFetcher interface {
	// FetchTransactions returns at most limit transactions for address.
	//
	// Any returned error is treated as transient: the caller skips the address
	// for the current pass and tries again on the next one.
	FetchTransactions(ctx context.Context, address string, limit int) ([]Transaction, error)
}

// SignatureLedger is the durable record of every transaction signature the
// engine has already acted on. It is the sole deduplication authority.
//
// Entries survive restarts and are only removed by Prune.
type SignatureLedger interface {
	// IsSeen reports whether signature has been recorded.
	IsSeen(ctx context.Context, signature string) (bool, error)

	// MarkSeen records signature as observed on wallet.
	//
	// It is insert-or-ignore: marking an already recorded signature must
	// succeed without changing the stored entry.
	MarkSeen(ctx context.Context, signature, wallet string) error

	// Prune deletes every entry created at or before now minus retention and
	// returns how many entries were removed.
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

// WalletStorage exposes the set of wallets the engine must poll.
type WalletStorage interface {
	// ListActiveWallets returns every wallet with Active set. The same address
	// may appear more than once when several users watch it.
	ListActiveWallets(ctx context.Context) ([]WatchedWallet, error)
}

// SubscriberStorage resolves payers and applies tier upgrades.
type SubscriberStorage interface {
	// FindSubscriberByWallet returns the owner of the first watched wallet
	// matching address. It returns ErrSubscriberNotFound when nobody watches it.
	FindSubscriberByWallet(ctx context.Context, address string) (Subscriber, error)

	// UpgradeTier sets the user's tier to tier only if tier outranks the tier
	// currently stored. It reports whether the stored tier changed.
	UpgradeTier(ctx context.Context, userID int64, tier subscription.Tier) (bool, error)
}

// PassGuard coordinates polling passes across several engine instances
// sharing the same ledger.
type PassGuard interface {
	// Acquire attempts to take the pass lease for ttl. It returns a release
	// function and true when this instance may run the pass.
	Acquire(ctx context.Context, ttl time.Duration) (release func(context.Context), acquired bool, err error)
}

// nopPassGuard always grants the lease. It is the default for single-instance
// deployments.
type nopPassGuard struct{}

func (nopPassGuard) Acquire(context.Context, time.Duration) (func(context.Context), bool, error) {
	return func(context.Context) {}, true, nil
}
