// Package walletregistry manages which wallets each user watches. It owns
// user registration, tier wallet limits, soft deletion and the seeding of a
// wallet's history before it becomes visible to the monitoring engine.
package walletregistry

import (
	"context"
	"errors"
)

var (
	// ErrUserNotFound is returned when no user is registered for a chat.
	ErrUserNotFound = errors.New("user not found")

	// ErrWalletNotFound is returned when the user does not actively watch the wallet.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrAlreadyWatching is returned when the user already actively watches the wallet.
	ErrAlreadyWatching = errors.New("wallet already watched")

	// ErrWalletLimitReached is returned when the user's tier allows no more active wallets.
	ErrWalletLimitReached = errors.New("wallet limit reached for tier")

	// ErrSeedFailed is returned when the wallet's history could not be recorded.
	// The wallet is not activated so its past transactions are never alerted.
	ErrSeedFailed = errors.New("failed to seed wallet history")
)

// Service defines the interface for registering users and the wallets they
// want to be alerted about.
//
// Implementations are responsible for validating input and delegating
// persistence to the configured Storage.
type Service interface {
	// RegisterUser creates the user owning chatID if it does not exist yet and
	// returns it. Calling it again for the same chat is a no-op.
	RegisterUser(ctx context.Context, chatID string) (User, error)

	// StartWatching activates monitoring of address for the user owning chatID,
	// registering the user first when needed.
	//
	// Returns:
	//   - ErrAlreadyWatching if the wallet is already active for this user.
	//   - ErrWalletLimitReached if the user's tier allows no more wallets.
	//   - ErrSeedFailed if the wallet's history could not be recorded.
	//   - a validator.ErrValidationFailed chain for malformed input.
	StartWatching(ctx context.Context, chatID, address string) (Wallet, error)

	// StopWatching deactivates monitoring of address for the user owning chatID.
	// The wallet row is kept so it can be reactivated later.
	//
	// Returns ErrUserNotFound or ErrWalletNotFound when there is nothing to stop.
	StopWatching(ctx context.Context, chatID, address string) error

	// ListWallets returns the user's tier, its wallet limit and every wallet
	// the user actively watches.
	ListWallets(ctx context.Context, chatID string) (Overview, error)
}

// Seeder records the recent history of a wallet as already seen.
type Seeder interface {
	SeedWallet(ctx context.Context, address string) (int, error)
}

// nopSeeder records nothing. It is used when the registry runs without an engine.
type nopSeeder struct{}

func (nopSeeder) SeedWallet(context.Context, string) (int, error) { return 0, nil }

// service is the concrete implementation of the Service interface.
// It uses a Storage backend to persist users and wallets.
type service struct {
	storage Storage
	seeder  Seeder
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// Option configures the registry.
type Option func(*service)

// WithSeeder sets the component used to seed a wallet's history before it is
// activated. Without it wallets are activated unseeded.
func WithSeeder(s Seeder) Option {
	return func(svc *service) {
		if s != nil {
			svc.seeder = s
		}
	}
}

// New creates a new instance of the walletregistry service using the
// provided Storage implementation.
//
// This constructor is intended to be used by dependency injection
// during application wiring.
func New(storage Storage, opts ...Option) *service {
	svc := &service{
		storage: storage,
		seeder:  nopSeeder{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}
