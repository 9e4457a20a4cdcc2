package postgres

import (
	"context"
	"fmt"

	"github.com/gabapcia/alertforge/internal/subscription"
	"github.com/gabapcia/alertforge/internal/txmonitor"
	"github.com/gabapcia/alertforge/internal/walletregistry"

	"github.com/jackc/pgx/v5"
)

// Store persists users and their watched wallets. It serves both the
// registry and the monitoring engine.
type Store struct {
	pool *Pool
}

// Compile-time checks for every interface Store serves.
var (
	_ walletregistry.Storage      = (*Store)(nil)
	_ txmonitor.WalletStorage     = (*Store)(nil)
	_ txmonitor.SubscriberStorage = (*Store)(nil)
)

// NewStore creates a new PostgreSQL user and wallet store.
func NewStore(pool *Pool) *Store {
	return &Store{pool: pool}
}

// tierRankSQL maps the stored tier to its rank so upgrades can be guarded in SQL.
const tierRankSQL = `CASE subscription_tier WHEN 'free' THEN 0 WHEN 'pro' THEN 1 WHEN 'premium' THEN 2 ELSE -1 END`

func scanUser(row pgx.Row) (walletregistry.User, error) {
	var (
		user walletregistry.User
		tier string
	)
	if err := row.Scan(&user.ID, &user.ChatID, &tier); err != nil {
		return walletregistry.User{}, err
	}

	parsed, err := subscription.ParseTier(tier)
	if err != nil {
		return walletregistry.User{}, fmt.Errorf("user %d: %w", user.ID, err)
	}
	user.Tier = parsed

	return user, nil
}

func scanWallet(row pgx.Row) (walletregistry.Wallet, error) {
	var w walletregistry.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Address, &w.Active, &w.CreatedAt)
	return w, err
}

// UpsertUser returns the user owning chatID, creating it on the free tier.
func (s *Store) UpsertUser(ctx context.Context, chatID string) (walletregistry.User, error) {
	return scanUser(s.pool.QueryRow(ctx, `
		INSERT INTO users (chat_id) VALUES ($1)
		ON CONFLICT (chat_id) DO UPDATE SET chat_id = EXCLUDED.chat_id
		RETURNING id, chat_id, subscription_tier
	`, chatID))
}

// FindUserByChatID returns walletregistry.ErrUserNotFound when no user owns chatID.
func (s *Store) FindUserByChatID(ctx context.Context, chatID string) (walletregistry.User, error) {
	user, err := scanUser(s.pool.QueryRow(ctx, `
		SELECT id, chat_id, subscription_tier FROM users WHERE chat_id = $1
	`, chatID))
	if isNotFoundError(err) {
		return walletregistry.User{}, walletregistry.ErrUserNotFound
	}

	return user, err
}

// FindWallet returns the user's wallet row for address, active or not.
func (s *Store) FindWallet(ctx context.Context, userID int64, address string) (walletregistry.Wallet, error) {
	wallet, err := scanWallet(s.pool.QueryRow(ctx, `
		SELECT id, user_id, wallet_address, is_active, created_at
		FROM watched_wallets
		WHERE user_id = $1 AND wallet_address = $2
	`, userID, address))
	if isNotFoundError(err) {
		return walletregistry.Wallet{}, walletregistry.ErrWalletNotFound
	}

	return wallet, err
}

// CountActiveWallets returns how many wallets the user actively watches.
func (s *Store) CountActiveWallets(ctx context.Context, userID int64) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM watched_wallets WHERE user_id = $1 AND is_active
	`, userID).Scan(&n)

	return n, err
}

// ActivateWallet inserts the wallet or reactivates a soft-deleted row.
func (s *Store) ActivateWallet(ctx context.Context, userID int64, address, chatID string) (walletregistry.Wallet, error) {
	return scanWallet(s.pool.QueryRow(ctx, `
		INSERT INTO watched_wallets (user_id, wallet_address, chat_id, is_active)
		VALUES ($1, $2, NULLIF($3, ''), TRUE)
		ON CONFLICT (user_id, wallet_address) DO UPDATE
		SET is_active  = TRUE,
		    chat_id    = COALESCE(EXCLUDED.chat_id, watched_wallets.chat_id),
		    updated_at = NOW()
		RETURNING id, user_id, wallet_address, is_active, created_at
	`, userID, address, chatID))
}

// DeactivateWallet soft-deletes the user's active wallet row.
func (s *Store) DeactivateWallet(ctx context.Context, userID int64, address string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE watched_wallets
		SET is_active = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND wallet_address = $2 AND is_active
	`, userID, address)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return walletregistry.ErrWalletNotFound
	}

	return nil
}

// ListActiveWalletsByUser returns the user's active wallets, oldest first.
func (s *Store) ListActiveWalletsByUser(ctx context.Context, userID int64) ([]walletregistry.Wallet, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, wallet_address, is_active, created_at
		FROM watched_wallets
		WHERE user_id = $1 AND is_active
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (walletregistry.Wallet, error) {
		return scanWallet(row)
	})
}

// ListActiveWallets returns every active wallet with its resolved
// destination: the wallet's own chat, falling back to the owner's chat.
func (s *Store) ListActiveWallets(ctx context.Context) ([]txmonitor.WatchedWallet, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT w.id, w.user_id, w.wallet_address,
		       COALESCE(NULLIF(w.chat_id, ''), u.chat_id, ''), w.is_active
		FROM watched_wallets w
		JOIN users u ON u.id = w.user_id
		WHERE w.is_active
		ORDER BY w.id
	`)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (txmonitor.WatchedWallet, error) {
		var w txmonitor.WatchedWallet
		err := row.Scan(&w.ID, &w.UserID, &w.Address, &w.Destination, &w.Active)
		return w, err
	})
}

// FindSubscriberByWallet returns the owner of the first wallet row matching
// address, preferring active rows.
func (s *Store) FindSubscriberByWallet(ctx context.Context, address string) (txmonitor.Subscriber, error) {
	user, err := scanUser(s.pool.QueryRow(ctx, `
		SELECT u.id, u.chat_id, u.subscription_tier
		FROM watched_wallets w
		JOIN users u ON u.id = w.user_id
		WHERE w.wallet_address = $1
		ORDER BY w.is_active DESC, w.id
		LIMIT 1
	`, address))
	if isNotFoundError(err) {
		return txmonitor.Subscriber{}, txmonitor.ErrSubscriberNotFound
	}
	if err != nil {
		return txmonitor.Subscriber{}, err
	}

	return txmonitor.Subscriber{
		UserID:      user.ID,
		Destination: user.ChatID,
		Tier:        user.Tier,
	}, nil
}

// UpgradeTier raises the user's tier only when tier outranks the stored one,
// so concurrent or replayed payments can never lower it.
func (s *Store) UpgradeTier(ctx context.Context, userID int64, tier subscription.Tier) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users
		SET subscription_tier = $2, updated_at = NOW()
		WHERE id = $1 AND `+tierRankSQL+` < $3
	`, userID, string(tier), tier.Rank())
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
