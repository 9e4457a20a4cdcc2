// Package subscription models the paid tiers a user can hold and the rules
// that map stablecoin payments to them.
package subscription

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnknownTier is returned by ParseTier for values outside the tier set.
var ErrUnknownTier = errors.New("unknown subscription tier")

// Tier is a subscription level. Tiers are totally ordered: Free < Pro < Premium.
type Tier string

const (
	Free    Tier = "free"
	Pro     Tier = "pro"
	Premium Tier = "premium"
)

var (
	// ProThreshold is the smallest payment, in USDC, that grants Pro.
	ProThreshold = decimal.NewFromInt(10)

	// PremiumThreshold is the smallest payment, in USDC, that grants Premium.
	PremiumThreshold = decimal.NewFromInt(30)
)

// walletLimits is the number of active wallets each tier may watch.
var walletLimits = map[Tier]int{
	Free:    1,
	Pro:     5,
	Premium: 20,
}

// ParseTier converts a stored tier value into a Tier.
// An empty value is treated as Free, matching rows created before a tier was set.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(s); t {
	case "":
		return Free, nil
	case Free, Pro, Premium:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
}

// Rank returns the position of t in the tier order. Unknown tiers rank below Free.
func (t Tier) Rank() int {
	switch t {
	case Free:
		return 0
	case Pro:
		return 1
	case Premium:
		return 2
	default:
		return -1
	}
}

// Outranks reports whether t is strictly higher than other.
func (t Tier) Outranks(other Tier) bool {
	return t.Rank() > other.Rank()
}

// WalletLimit returns how many active wallets a user on this tier may watch.
func (t Tier) WalletLimit() int {
	return walletLimits[t]
}

// DisplayName returns the capitalized tier name used in user-facing messages.
func (t Tier) DisplayName() string {
	switch t {
	case Free:
		return "Free"
	case Pro:
		return "Pro"
	case Premium:
		return "Premium"
	default:
		return string(t)
	}
}

// String implements fmt.Stringer.
func (t Tier) String() string {
	return string(t)
}

// Evaluate maps a payment amount to the tier it buys. Thresholds are inclusive
// lower bounds checked from the highest tier down. The boolean is false when
// the amount is too low to qualify for any paid tier.
func Evaluate(amount decimal.Decimal) (Tier, bool) {
	switch {
	case amount.GreaterThanOrEqual(PremiumThreshold):
		return Premium, true
	case amount.GreaterThanOrEqual(ProThreshold):
		return Pro, true
	default:
		return "", false
	}
}

// Upgrade returns the higher of current and candidate, so applying it never
// lowers a user's tier.
func Upgrade(current, candidate Tier) Tier {
	if candidate.Outranks(current) {
		return candidate
	}
	return current
}
