package walletregistry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/alertforge/internal/pkg/logger"
	"github.com/gabapcia/alertforge/internal/pkg/validator"
	"github.com/gabapcia/alertforge/internal/subscription"
)

// User is a registered subscriber identified by the chat it talks from.
type User struct {
	ID     int64
	ChatID string
	Tier   subscription.Tier
}

// Wallet is a wallet watched by a user. Inactive wallets are soft-deleted.
type Wallet struct {
	ID        int64
	UserID    int64
	Address   string
	Active    bool
	CreatedAt time.Time
}

// Overview summarizes a user's subscription.
type Overview struct {
	User    User
	Limit   int
	Wallets []Wallet
}

// WalletRequest is the validated input of a watch or unwatch command.
type WalletRequest struct {
	ChatID  string `validate:"required"`
	Address string `validate:"required,solana_address"`
}

// Storage defines the persistence interface for users and their wallets.
type Storage interface {
	// UpsertUser returns the user owning chatID, creating it on the free tier
	// when it does not exist. It must be safe to call concurrently.
	UpsertUser(ctx context.Context, chatID string) (User, error)

	// FindUserByChatID returns ErrUserNotFound when no user owns chatID.
	FindUserByChatID(ctx context.Context, chatID string) (User, error)

	// FindWallet returns the user's wallet row for address, active or not.
	// It returns ErrWalletNotFound when no row exists.
	FindWallet(ctx context.Context, userID int64, address string) (Wallet, error)

	// CountActiveWallets returns how many wallets the user actively watches.
	CountActiveWallets(ctx context.Context, userID int64) (int, error)

	// ActivateWallet inserts the wallet or reactivates a soft-deleted row.
	// chatID is recorded as the wallet's alert destination.
	ActivateWallet(ctx context.Context, userID int64, address, chatID string) (Wallet, error)

	// DeactivateWallet soft-deletes the wallet. It returns ErrWalletNotFound
	// when the user has no active row for address.
	DeactivateWallet(ctx context.Context, userID int64, address string) error

	// ListActiveWalletsByUser returns the user's active wallets, oldest first.
	ListActiveWalletsByUser(ctx context.Context, userID int64) ([]Wallet, error)
}

// buildWalletRequest constructs and validates a WalletRequest. It returns an
// error if validation fails.
func buildWalletRequest(chatID, address string) (WalletRequest, error) {
	req := WalletRequest{
		ChatID:  chatID,
		Address: address,
	}

	return req, validator.Validate(req)
}

// StartWatching validates the request, enforces the tier limit, seeds the
// wallet's history and finally activates it.
//
// Seeding happens before activation so the engine never sees the wallet
// without its history already recorded.
func (s *service) StartWatching(ctx context.Context, chatID, address string) (Wallet, error) {
	req, err := buildWalletRequest(chatID, address)
	if err != nil {
		return Wallet{}, err
	}

	user, err := s.storage.UpsertUser(ctx, req.ChatID)
	if err != nil {
		return Wallet{}, err
	}

	ctx = logger.WithFields(ctx, "user.id", user.ID, "wallet.address", req.Address)

	if !validator.IsOnCurve(req.Address) {
		logger.Warn(ctx, "address is off the ed25519 curve and is likely a program-derived account")
	}

	existing, err := s.storage.FindWallet(ctx, user.ID, req.Address)
	switch {
	case errors.Is(err, ErrWalletNotFound):
	case err != nil:
		return Wallet{}, err
	case existing.Active:
		return existing, ErrAlreadyWatching
	}

	active, err := s.storage.CountActiveWallets(ctx, user.ID)
	if err != nil {
		return Wallet{}, err
	}

	if limit := user.Tier.WalletLimit(); active >= limit {
		return Wallet{}, fmt.Errorf("%w: %s allows %d", ErrWalletLimitReached, user.Tier, limit)
	}

	seeded, err := s.seeder.SeedWallet(ctx, req.Address)
	if err != nil {
		logger.Warn(ctx, "wallet history could not be seeded, not activating", "error", err)
		return Wallet{}, fmt.Errorf("%w: %w", ErrSeedFailed, err)
	}

	wallet, err := s.storage.ActivateWallet(ctx, user.ID, req.Address, req.ChatID)
	if err != nil {
		return Wallet{}, err
	}

	logger.Info(ctx, "wallet watch started", "seed.count", seeded)
	return wallet, nil
}

// StopWatching soft-deletes the user's wallet.
func (s *service) StopWatching(ctx context.Context, chatID, address string) error {
	req, err := buildWalletRequest(chatID, address)
	if err != nil {
		return err
	}

	user, err := s.storage.FindUserByChatID(ctx, req.ChatID)
	if err != nil {
		return err
	}

	if err := s.storage.DeactivateWallet(ctx, user.ID, req.Address); err != nil {
		return err
	}

	logger.Info(ctx, "wallet watch stopped", "user.id", user.ID, "wallet.address", req.Address)
	return nil
}

// ListWallets returns the user's subscription overview.
func (s *service) ListWallets(ctx context.Context, chatID string) (Overview, error) {
	if chatID == "" {
		return Overview{}, fmt.Errorf("%w: chat id is required", validator.ErrValidationFailed)
	}

	user, err := s.storage.FindUserByChatID(ctx, chatID)
	if err != nil {
		return Overview{}, err
	}

	wallets, err := s.storage.ListActiveWalletsByUser(ctx, user.ID)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		User:    user,
		Limit:   user.Tier.WalletLimit(),
		Wallets: wallets,
	}, nil
}

// RegisterUser creates the user owning chatID when needed.
func (s *service) RegisterUser(ctx context.Context, chatID string) (User, error) {
	if chatID == "" {
		return User{}, fmt.Errorf("%w: chat id is required", validator.ErrValidationFailed)
	}

	user, err := s.storage.UpsertUser(ctx, chatID)
	if err != nil {
		return User{}, err
	}

	logger.Debug(ctx, "user registered", "user.id", user.ID)
	return user, nil
}
