package txmonitor

import (
	"errors"

	"github.com/gabapcia/alertforge/internal/subscription"

	"github.com/shopspring/decimal"
)

// PassReport summarizes a single polling pass.
type PassReport struct {
	ID       string
	Wallets  []WalletReport
	Payments PaymentReport
}

// Err joins every error recorded during the pass.
func (r PassReport) Err() error {
	errs := make([]error, 0, len(r.Wallets)+1)
	for _, w := range r.Wallets {
		errs = append(errs, w.Err)
	}
	errs = append(errs, r.Payments.Err)
	return errors.Join(errs...)
}

// AlertsSent returns the number of wallet alerts delivered during the pass.
func (r PassReport) AlertsSent() int {
	var n int
	for _, w := range r.Wallets {
		n += w.Alerts
	}
	return n
}

// WalletReport describes what happened to one watched address during a pass.
//
// A non-nil Err never aborts the pass; it records which step failed for
// this address only.
type WalletReport struct {
	Address      string
	Destinations int // distinct chats watching the address
	Fetched      int // transactions returned by the indexer
	New          int // transactions not previously in the ledger
	Alerts       int // notifications delivered
	Err          error
}

// PaymentReport describes the payment wallet check of a pass.
type PaymentReport struct {
	Fetched  int
	New      int
	Payments []PaymentResult
	Err      error
}

// PaymentResult is the outcome of a single USDC transfer into the payment wallet.
type PaymentResult struct {
	Signature string
	Payer     string
	Amount    decimal.Decimal
	Tier      subscription.Tier // tier held after the payment; empty when the amount did not qualify
	Upgraded  bool
	Notified  bool
	Err       error
}
