package txmonitor

import (
	"fmt"
	"strings"

	"github.com/gabapcia/alertforge/internal/subscription"

	"github.com/shopspring/decimal"
)

const (
	// lamportsExponent scales lamports into SOL (1 SOL = 1e9 lamports).
	lamportsExponent = -9

	// explorerTxURL is the public explorer link prefix for a signature.
	explorerTxURL = "https://solscan.io/tx/"

	// unknownType is shown when the indexer did not classify the transaction.
	unknownType = "UNKNOWN"

	addressEdge      = 8
	signaturePreview = 20
)

// Alert is a notification produced by the engine. The set of implementations
// is closed to this package: WalletAlert and PaymentAlert.
type Alert interface {
	// Format renders the alert body.
	Format() string

	// Message wraps the rendered body with the delivery options of the variant.
	Message(destination string) Message

	sealed()
}

// WalletAlert reports new activity on a watched wallet.
type WalletAlert struct {
	Tx      Transaction
	Address string // the watched address the alert is about
}

// PaymentAlert confirms a qualifying stablecoin payment.
//
// Tier is the tier the payer holds after the payment. Upgraded is false when
// the payer already held an equal or higher tier.
type PaymentAlert struct {
	Amount   decimal.Decimal
	Tier     subscription.Tier
	Upgraded bool
}

var (
	_ Alert = WalletAlert{}
	_ Alert = PaymentAlert{}
)

func (WalletAlert) sealed()  {}
func (PaymentAlert) sealed() {}

// Format renders the wallet alert in Markdown.
//
// The direction is RECEIVED only for a strictly positive balance change; a
// zero or negative change is reported as SENT.
func (a WalletAlert) Format() string {
	return FormatWalletAlert(a.Tx, a.Address)
}

// Message returns a Markdown message with link previews disabled.
func (a WalletAlert) Message(destination string) Message {
	return Message{
		Destination:        destination,
		Text:               a.Format(),
		Markdown:           true,
		DisableLinkPreview: true,
	}
}

// Format renders the payment confirmation.
func (a PaymentAlert) Format() string {
	var b strings.Builder
	b.WriteString("PAYMENT CONFIRMED\n\n")
	if a.Upgraded {
		fmt.Fprintf(&b, "Upgraded to %s\n", a.Tier.DisplayName())
	} else {
		fmt.Fprintf(&b, "Your plan stays %s\n", a.Tier.DisplayName())
	}
	fmt.Fprintf(&b, "%s USDC received\n\n", a.Amount.String())
	if a.Upgraded {
		b.WriteString("You can now monitor more wallets!\n")
	}
	b.WriteString("Use /list to see your limits.")
	return b.String()
}

// Message returns a plain-text message.
func (a PaymentAlert) Message(destination string) Message {
	return Message{
		Destination: destination,
		Text:        a.Format(),
	}
}

// FormatWalletAlert renders tx as seen from watchedAddress. It never fails:
// missing fields render as zero values and an empty type renders as UNKNOWN.
func FormatWalletAlert(tx Transaction, watchedAddress string) string {
	txType := tx.Type
	if txType == "" {
		txType = unknownType
	}

	delta := tx.balanceChangeFor(watchedAddress)
	direction := "SENT"
	if delta > 0 {
		direction = "RECEIVED"
	}

	return fmt.Sprintf(
		"ALERT FORGE - Wallet Alert\n\n"+
			"Wallet: `%s`\n"+
			"Type: `%s`\n"+
			"%s: %s SOL\n"+
			"Fee: %s SOL\n"+
			"Sig: `%s...`\n\n"+
			"[View on Solscan](%s%s)",
		shortAddress(watchedAddress),
		codeSpanSafe(txType),
		direction, lamportsToSOL(delta).Abs().StringFixed(4),
		lamportsToSOL(tx.Fee).StringFixed(6),
		truncate(tx.Signature, signaturePreview),
		explorerTxURL, tx.Signature,
	)
}

// codeSpanSafe makes s safe to place inside a Markdown code span, where
// Telegram gives no meaning to any character but the closing backtick.
func codeSpanSafe(s string) string {
	return strings.ReplaceAll(s, "`", "'")
}

// lamportsToSOL converts an integer lamport amount into SOL without
// floating-point rounding.
func lamportsToSOL(lamports int64) decimal.Decimal {
	return decimal.New(lamports, lamportsExponent)
}

// shortAddress shows the first and last eight characters of an address.
// Addresses too short to elide are returned unchanged.
func shortAddress(address string) string {
	if len(address) <= 2*addressEdge {
		return address
	}
	return address[:addressEdge] + "..." + address[len(address)-addressEdge:]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
